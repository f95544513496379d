package ports

import (
	"context"

	"taskapi/domain/models"
)

// TaskEvent names a lifecycle change on a task.
type TaskEvent string

const (
	TaskCreated TaskEvent = "created"
	TaskUpdated TaskEvent = "updated"
	TaskDeleted TaskEvent = "deleted"
)

// TaskEventPublisher broadcasts task lifecycle events to interested
// consumers. Publishing is fire-and-forget; a failed publish is logged by
// the implementation and never fails the originating request.
type TaskEventPublisher interface {
	Publish(ctx context.Context, event TaskEvent, task *models.Task)
}
