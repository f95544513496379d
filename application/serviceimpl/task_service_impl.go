package serviceimpl

import (
	"context"
	"errors"
	"time"

	"taskapi/domain/apperr"
	"taskapi/domain/dto"
	"taskapi/domain/models"
	"taskapi/domain/ports"
	"taskapi/domain/repositories"
	"taskapi/domain/services"
	"taskapi/domain/validation"
	"taskapi/pkg/logger"
)

const (
	DefaultListLimit = 100
	MaxListLimit     = 1000
)

type TaskServiceImpl struct {
	taskRepo repositories.TaskRepository
	cache    ports.TaskCache          // optional, nil disables caching
	events   ports.TaskEventPublisher // optional, nil disables publishing
	now      func() time.Time
}

func NewTaskService(taskRepo repositories.TaskRepository, cache ports.TaskCache, events ports.TaskEventPublisher) services.TaskService {
	return &TaskServiceImpl{
		taskRepo: taskRepo,
		cache:    cache,
		events:   events,
		now:      time.Now,
	}
}

// CreateTask validates the input fail-fast: the first failing field is
// returned and nothing is persisted.
func (s *TaskServiceImpl) CreateTask(ctx context.Context, req *dto.CreateTaskRequest) (*models.Task, error) {
	title, err := validation.NormalizeTitle(req.Title)
	if err != nil {
		return nil, err
	}

	description, err := validation.NormalizeDescription(req.Description)
	if err != nil {
		return nil, err
	}

	assignedTo, err := validation.NormalizeAssignedTo(req.AssignedTo)
	if err != nil {
		return nil, err
	}

	status := models.StatusPending
	if req.Status != "" {
		if status, err = validation.ParseStatus(req.Status); err != nil {
			return nil, err
		}
	}

	priority := models.PriorityMedium
	if req.Priority != "" {
		if priority, err = validation.ParsePriority(req.Priority); err != nil {
			return nil, err
		}
	}

	if err := validation.ValidateDueDate(req.DueDate, s.now()); err != nil {
		return nil, err
	}

	task := &models.Task{
		Title:       title,
		Description: description,
		Status:      status,
		Priority:    priority,
		DueDate:     req.DueDate,
		AssignedTo:  assignedTo,
	}

	if err := s.taskRepo.Create(ctx, task); err != nil {
		logger.ErrorContext(ctx, "Failed to create task", "error", err)
		return nil, err
	}

	logger.InfoContext(ctx, "Task created", "task_id", task.ID, "status", task.Status, "priority", task.Priority)
	s.publish(ctx, ports.TaskCreated, task)

	return task, nil
}

func (s *TaskServiceImpl) GetTask(ctx context.Context, id int64) (*models.Task, error) {
	if s.cache != nil {
		if task, ok := s.cache.Get(ctx, id); ok {
			return task, nil
		}
	}

	task, err := s.taskRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		s.cache.Set(ctx, task)
	}
	return task, nil
}

// ListTasks rejects out-of-range pagination values rather than clamping
// them. An empty result set is not an error.
func (s *TaskServiceImpl) ListTasks(ctx context.Context, filter repositories.TaskFilter, skip, limit int) ([]*models.Task, int64, error) {
	if skip < 0 {
		return nil, 0, apperr.InvalidQuery("skip", "must be greater than or equal to 0")
	}
	if limit < 1 || limit > MaxListLimit {
		return nil, 0, apperr.InvalidQuery("limit", "must be between 1 and 1000")
	}

	tasks, err := s.taskRepo.List(ctx, filter, skip, limit)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to list tasks", "skip", skip, "limit", limit, "error", err)
		return nil, 0, err
	}

	total, err := s.taskRepo.Count(ctx, filter)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to count tasks", "error", err)
		return nil, 0, err
	}

	return tasks, total, nil
}

// UpdateTask merges the supplied fields over the stored task, revalidates
// them with the creation rules and refreshes updated_at. Due dates are
// checked against "now" at update time, not creation time.
func (s *TaskServiceImpl) UpdateTask(ctx context.Context, id int64, req *dto.UpdateTaskRequest) (*models.Task, error) {
	task, err := s.taskRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, apperr.ErrTaskNotFound) {
			logger.WarnContext(ctx, "Task not found for update", "task_id", id)
		}
		return nil, err
	}

	if req.Title != nil {
		title, err := validation.NormalizeTitle(*req.Title)
		if err != nil {
			return nil, err
		}
		task.Title = title
	}
	if req.Description != nil {
		description, err := validation.NormalizeDescription(*req.Description)
		if err != nil {
			return nil, err
		}
		task.Description = description
	}
	if req.AssignedTo != nil {
		assignedTo, err := validation.NormalizeAssignedTo(*req.AssignedTo)
		if err != nil {
			return nil, err
		}
		task.AssignedTo = assignedTo
	}
	if req.Status != nil {
		status, err := validation.ParseStatus(*req.Status)
		if err != nil {
			return nil, err
		}
		task.Status = status
	}
	if req.Priority != nil {
		priority, err := validation.ParsePriority(*req.Priority)
		if err != nil {
			return nil, err
		}
		task.Priority = priority
	}
	if req.DueDate != nil {
		if err := validation.ValidateDueDate(req.DueDate, s.now()); err != nil {
			return nil, err
		}
		task.DueDate = req.DueDate
	}

	task.UpdatedAt = s.now()

	if err := s.taskRepo.Update(ctx, task); err != nil {
		if errors.Is(err, apperr.ErrTaskNotFound) {
			logger.WarnContext(ctx, "Task disappeared during update", "task_id", id)
			return nil, err
		}
		logger.ErrorContext(ctx, "Failed to update task", "task_id", id, "error", err)
		return nil, err
	}

	if s.cache != nil {
		s.cache.Invalidate(ctx, id)
	}

	logger.InfoContext(ctx, "Task updated", "task_id", id)
	s.publish(ctx, ports.TaskUpdated, task)

	return task, nil
}

func (s *TaskServiceImpl) DeleteTask(ctx context.Context, id int64) error {
	task, err := s.taskRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, apperr.ErrTaskNotFound) {
			logger.WarnContext(ctx, "Task not found for deletion", "task_id", id)
		}
		return err
	}

	if err := s.taskRepo.Delete(ctx, id); err != nil {
		if !errors.Is(err, apperr.ErrTaskNotFound) {
			logger.ErrorContext(ctx, "Failed to delete task", "task_id", id, "error", err)
		}
		return err
	}

	if s.cache != nil {
		s.cache.Invalidate(ctx, id)
	}

	logger.InfoContext(ctx, "Task deleted", "task_id", id)
	s.publish(ctx, ports.TaskDeleted, task)

	return nil
}

func (s *TaskServiceImpl) publish(ctx context.Context, event ports.TaskEvent, task *models.Task) {
	if s.events != nil {
		s.events.Publish(ctx, event, task)
	}
}
