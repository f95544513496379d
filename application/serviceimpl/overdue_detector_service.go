package serviceimpl

import (
	"context"
	"time"

	"taskapi/domain/repositories"
	"taskapi/pkg/logger"
	"taskapi/pkg/scheduler"
)

// OverdueDetectorConfig controls how often open tasks past their due date
// are reported.
type OverdueDetectorConfig struct {
	CheckInterval time.Duration // default: 5m
}

// OverdueDetectorService periodically logs pending and in-progress tasks
// whose due date has passed. It never mutates task state; there is no
// enforced workflow on status transitions.
type OverdueDetectorService struct {
	config    OverdueDetectorConfig
	taskRepo  repositories.TaskRepository
	scheduler scheduler.EventScheduler
}

func NewOverdueDetectorService(
	config OverdueDetectorConfig,
	taskRepo repositories.TaskRepository,
	eventScheduler scheduler.EventScheduler,
) *OverdueDetectorService {
	service := &OverdueDetectorService{
		config:    config,
		taskRepo:  taskRepo,
		scheduler: eventScheduler,
	}

	if service.config.CheckInterval == 0 {
		service.config.CheckInterval = 5 * time.Minute
	}

	return service
}

// RegisterDetectorJob registers the periodic check with the scheduler.
func (s *OverdueDetectorService) RegisterDetectorJob() error {
	return s.scheduler.AddEvery("overdue_detector", s.config.CheckInterval, func() {
		s.RunDetection(context.Background())
	})
}

// RunDetection scans for overdue open tasks and logs a summary.
func (s *OverdueDetectorService) RunDetection(ctx context.Context) {
	tasks, err := s.taskRepo.ListOverdue(ctx, time.Now())
	if err != nil {
		logger.ErrorContext(ctx, "Overdue detection failed", "error", err)
		return
	}

	if len(tasks) == 0 {
		return
	}

	for _, task := range tasks {
		logger.WarnContext(ctx, "Task overdue",
			"task_id", task.ID,
			"title", task.Title,
			"status", task.Status,
			"priority", task.Priority,
			"due_date", task.DueDate,
		)
	}

	logger.InfoContext(ctx, "Overdue detection completed", "overdue_count", len(tasks))
}
