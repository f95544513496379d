package postgres

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"taskapi/domain/apperr"
	"taskapi/domain/models"
	"taskapi/domain/repositories"
)

type TaskRepositoryImpl struct {
	db *gorm.DB
}

func NewTaskRepository(db *gorm.DB) repositories.TaskRepository {
	return &TaskRepositoryImpl{db: db}
}

func (r *TaskRepositoryImpl) Create(ctx context.Context, task *models.Task) error {
	if err := r.db.WithContext(ctx).Create(task).Error; err != nil {
		return apperr.Storage("create task", err)
	}
	return nil
}

func (r *TaskRepositoryImpl) GetByID(ctx context.Context, id int64) (*models.Task, error) {
	var task models.Task
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&task).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.ErrTaskNotFound
		}
		return nil, apperr.Storage("get task", err)
	}
	return &task, nil
}

func (r *TaskRepositoryImpl) List(ctx context.Context, filter repositories.TaskFilter, offset, limit int) ([]*models.Task, error) {
	var tasks []*models.Task
	err := r.applyFilter(r.db.WithContext(ctx), filter).
		Order("id ASC").
		Offset(offset).
		Limit(limit).
		Find(&tasks).Error
	if err != nil {
		return nil, apperr.Storage("list tasks", err)
	}
	return tasks, nil
}

func (r *TaskRepositoryImpl) Count(ctx context.Context, filter repositories.TaskFilter) (int64, error) {
	var count int64
	err := r.applyFilter(r.db.WithContext(ctx), filter).
		Model(&models.Task{}).
		Count(&count).Error
	if err != nil {
		return 0, apperr.Storage("count tasks", err)
	}
	return count, nil
}

// Update persists the fully merged task in a single UPDATE statement, so
// concurrent updates against one id cannot interleave mid-merge. The row is
// reloaded afterwards to hand back exactly the stored state.
func (r *TaskRepositoryImpl) Update(ctx context.Context, task *models.Task) error {
	result := r.db.WithContext(ctx).
		Model(&models.Task{}).
		Where("id = ?", task.ID).
		Select("*").
		Omit("id", "created_at").
		Updates(task)
	if result.Error != nil {
		return apperr.Storage("update task", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperr.ErrTaskNotFound
	}

	if err := r.db.WithContext(ctx).Where("id = ?", task.ID).First(task).Error; err != nil {
		return apperr.Storage("reload task", err)
	}
	return nil
}

func (r *TaskRepositoryImpl) Delete(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.Task{})
	if result.Error != nil {
		return apperr.Storage("delete task", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperr.ErrTaskNotFound
	}
	return nil
}

// ListOverdue returns open tasks whose due date has passed. Completed and
// cancelled tasks are excluded.
func (r *TaskRepositoryImpl) ListOverdue(ctx context.Context, before time.Time) ([]*models.Task, error) {
	var tasks []*models.Task
	err := r.db.WithContext(ctx).
		Where("due_date IS NOT NULL AND due_date < ?", before).
		Where("status IN ?", []models.TaskStatus{models.StatusPending, models.StatusInProgress}).
		Order("due_date ASC").
		Find(&tasks).Error
	if err != nil {
		return nil, apperr.Storage("list overdue tasks", err)
	}
	return tasks, nil
}

func (r *TaskRepositoryImpl) applyFilter(db *gorm.DB, filter repositories.TaskFilter) *gorm.DB {
	if filter.Status != nil {
		db = db.Where("status = ?", *filter.Status)
	}
	if filter.Priority != nil {
		db = db.Where("priority = ?", *filter.Priority)
	}
	return db
}
