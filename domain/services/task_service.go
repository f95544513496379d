package services

import (
	"context"

	"taskapi/domain/dto"
	"taskapi/domain/models"
	"taskapi/domain/repositories"
)

// TaskService orchestrates validation and persistence. It is the only
// component that calls both the validation package and the repository.
type TaskService interface {
	CreateTask(ctx context.Context, req *dto.CreateTaskRequest) (*models.Task, error)
	GetTask(ctx context.Context, id int64) (*models.Task, error)
	ListTasks(ctx context.Context, filter repositories.TaskFilter, skip, limit int) ([]*models.Task, int64, error)
	UpdateTask(ctx context.Context, id int64, req *dto.UpdateTaskRequest) (*models.Task, error)
	DeleteTask(ctx context.Context, id int64) error
}
