package dto

import (
	"time"
)

type CreateTaskRequest struct {
	Title       string     `json:"title" validate:"required,max=200"`
	Description string     `json:"description" validate:"omitempty,max=1000"`
	Status      string     `json:"status" validate:"omitempty,oneof=pending in_progress completed cancelled"`
	Priority    string     `json:"priority" validate:"omitempty,oneof=low medium high urgent"`
	DueDate     *time.Time `json:"due_date"`
	AssignedTo  string     `json:"assigned_to" validate:"omitempty,max=100"`
}

// UpdateTaskRequest carries a partial field set. A nil pointer means the
// field was not supplied and the stored value is left untouched; clearing a
// field through PUT is not supported.
type UpdateTaskRequest struct {
	Title       *string    `json:"title" validate:"omitempty,max=200"`
	Description *string    `json:"description" validate:"omitempty,max=1000"`
	Status      *string    `json:"status" validate:"omitempty,oneof=pending in_progress completed cancelled"`
	Priority    *string    `json:"priority" validate:"omitempty,oneof=low medium high urgent"`
	DueDate     *time.Time `json:"due_date"`
	AssignedTo  *string    `json:"assigned_to" validate:"omitempty,max=100"`
}

// Empty reports whether the request supplies no fields at all. An empty
// update is still legal and only refreshes updated_at.
func (r *UpdateTaskRequest) Empty() bool {
	return r.Title == nil && r.Description == nil && r.Status == nil &&
		r.Priority == nil && r.DueDate == nil && r.AssignedTo == nil
}

type TaskResponse struct {
	ID          int64      `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Status      string     `json:"status"`
	Priority    string     `json:"priority"`
	DueDate     *time.Time `json:"due_date"`
	AssignedTo  string     `json:"assigned_to"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}
