package ports

import (
	"context"

	"taskapi/domain/models"
)

// TaskCache is an optional read-through cache in front of GetTask lookups.
// A cache miss or cache fault must never fail the request; callers fall back
// to the repository.
type TaskCache interface {
	Get(ctx context.Context, id int64) (*models.Task, bool)
	Set(ctx context.Context, task *models.Task)
	Invalidate(ctx context.Context, id int64)
}
