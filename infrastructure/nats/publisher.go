package nats

import (
	"context"
	"encoding/json"
	"time"

	"taskapi/domain/models"
	"taskapi/domain/ports"
	"taskapi/pkg/logger"
)

const subjectPrefix = "tasks."

// taskEventMessage is the wire format published on tasks.* subjects.
type taskEventMessage struct {
	Event      string     `json:"event"`
	TaskID     int64      `json:"task_id"`
	Title      string     `json:"title"`
	Status     string     `json:"status"`
	Priority   string     `json:"priority"`
	OccurredAt time.Time  `json:"occurred_at"`
	DueDate    *time.Time `json:"due_date,omitempty"`
}

// EventPublisher publishes task lifecycle events to NATS. Fire-and-forget:
// a failed publish is logged and never fails the originating request.
type EventPublisher struct {
	client *Client
}

func NewEventPublisher(client *Client) ports.TaskEventPublisher {
	return &EventPublisher{client: client}
}

func (p *EventPublisher) Publish(ctx context.Context, event ports.TaskEvent, task *models.Task) {
	msg := taskEventMessage{
		Event:      string(event),
		TaskID:     task.ID,
		Title:      task.Title,
		Status:     string(task.Status),
		Priority:   string(task.Priority),
		OccurredAt: time.Now().UTC(),
		DueDate:    task.DueDate,
	}

	data, err := json.Marshal(msg)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to marshal task event", "task_id", task.ID, "error", err)
		return
	}

	subject := subjectPrefix + string(event)
	if err := p.client.conn.Publish(subject, data); err != nil {
		logger.WarnContext(ctx, "Failed to publish task event",
			"subject", subject,
			"task_id", task.ID,
			"error", err,
		)
		return
	}

	logger.DebugContext(ctx, "Task event published", "subject", subject, "task_id", task.ID)
}
