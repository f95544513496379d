package repositories

import (
	"context"
	"time"

	"taskapi/domain/models"
)

// TaskFilter narrows a List call. Nil members match everything.
type TaskFilter struct {
	Status   *models.TaskStatus
	Priority *models.TaskPriority
}

// TaskRepository is the storage contract for tasks. Implementations return
// apperr.ErrTaskNotFound for missing ids and wrap any other fault in
// apperr.StorageError. List results are ordered by id ascending so
// pagination stays deterministic across calls.
type TaskRepository interface {
	Create(ctx context.Context, task *models.Task) error
	GetByID(ctx context.Context, id int64) (*models.Task, error)
	List(ctx context.Context, filter TaskFilter, offset, limit int) ([]*models.Task, error)
	Count(ctx context.Context, filter TaskFilter) (int64, error)
	Update(ctx context.Context, task *models.Task) error
	Delete(ctx context.Context, id int64) error
	ListOverdue(ctx context.Context, before time.Time) ([]*models.Task, error)
}
