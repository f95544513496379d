package redis

import (
	"context"
	"encoding/json"
	"strconv"
	"time"

	"taskapi/domain/models"
	"taskapi/domain/ports"
	"taskapi/pkg/logger"
)

const taskCacheTTL = 5 * time.Minute

// TaskCache is a read-through cache for single-task lookups. Cache faults
// are logged and treated as misses; the repository stays authoritative.
type TaskCache struct {
	client *Client
}

func NewTaskCache(client *Client) ports.TaskCache {
	return &TaskCache{client: client}
}

func (c *TaskCache) Get(ctx context.Context, id int64) (*models.Task, bool) {
	raw, err := c.client.Get(ctx, taskKey(id))
	if err != nil {
		if !IsNil(err) {
			logger.WarnContext(ctx, "Task cache read failed", "task_id", id, "error", err)
		}
		return nil, false
	}

	var task models.Task
	if err := json.Unmarshal([]byte(raw), &task); err != nil {
		logger.WarnContext(ctx, "Task cache entry corrupt, dropping", "task_id", id, "error", err)
		c.Invalidate(ctx, id)
		return nil, false
	}
	return &task, true
}

func (c *TaskCache) Set(ctx context.Context, task *models.Task) {
	data, err := json.Marshal(task)
	if err != nil {
		return
	}
	if err := c.client.Set(ctx, taskKey(task.ID), data, taskCacheTTL); err != nil {
		logger.WarnContext(ctx, "Task cache write failed", "task_id", task.ID, "error", err)
	}
}

func (c *TaskCache) Invalidate(ctx context.Context, id int64) {
	if err := c.client.Del(ctx, taskKey(id)); err != nil {
		logger.WarnContext(ctx, "Task cache invalidation failed", "task_id", id, "error", err)
	}
}

func taskKey(id int64) string {
	return "task:" + strconv.FormatInt(id, 10)
}
