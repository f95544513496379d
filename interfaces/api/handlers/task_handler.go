package handlers

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"taskapi/domain/apperr"
	"taskapi/domain/dto"
	"taskapi/domain/repositories"
	"taskapi/domain/services"
	"taskapi/domain/validation"
	"taskapi/pkg/logger"
	"taskapi/pkg/utils"
)

type TaskHandler struct {
	taskService services.TaskService
}

func NewTaskHandler(taskService services.TaskService) *TaskHandler {
	return &TaskHandler{
		taskService: taskService,
	}
}

func (h *TaskHandler) CreateTask(c *fiber.Ctx) error {
	ctx := c.UserContext()

	var req dto.CreateTaskRequest
	if err := c.BodyParser(&req); err != nil {
		logger.WarnContext(ctx, "Invalid request body", "error", err)
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	if err := utils.ValidateStruct(&req); err != nil {
		details := utils.GetValidationErrors(err)
		logger.WarnContext(ctx, "Validation failed", "errors", details)
		return utils.ValidationErrorResponse(c, "", details)
	}

	task, err := h.taskService.CreateTask(ctx, &req)
	if err != nil {
		logger.WarnContext(ctx, "Task creation failed", "error", err)
		return taskErrorResponse(c, err)
	}

	logger.InfoContext(ctx, "Task created", "task_id", task.ID)
	return utils.CreatedResponse(c, dto.TaskToTaskResponse(task))
}

func (h *TaskHandler) GetTask(c *fiber.Ctx) error {
	ctx := c.UserContext()

	taskID, err := parseTaskID(c)
	if err != nil {
		logger.WarnContext(ctx, "Invalid task ID", "task_id", c.Params("id"))
		return utils.BadRequestResponse(c, "Invalid task ID")
	}

	task, err := h.taskService.GetTask(ctx, taskID)
	if err != nil {
		return taskErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, dto.TaskToTaskResponse(task))
}

func (h *TaskHandler) UpdateTask(c *fiber.Ctx) error {
	ctx := c.UserContext()

	taskID, err := parseTaskID(c)
	if err != nil {
		logger.WarnContext(ctx, "Invalid task ID", "task_id", c.Params("id"))
		return utils.BadRequestResponse(c, "Invalid task ID")
	}

	var req dto.UpdateTaskRequest
	if err := c.BodyParser(&req); err != nil {
		logger.WarnContext(ctx, "Invalid request body", "error", err)
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	if err := utils.ValidateStruct(&req); err != nil {
		details := utils.GetValidationErrors(err)
		logger.WarnContext(ctx, "Validation failed", "errors", details)
		return utils.ValidationErrorResponse(c, "", details)
	}

	task, err := h.taskService.UpdateTask(ctx, taskID, &req)
	if err != nil {
		logger.WarnContext(ctx, "Task update failed", "task_id", taskID, "error", err)
		return taskErrorResponse(c, err)
	}

	logger.InfoContext(ctx, "Task updated", "task_id", taskID)
	return utils.SuccessResponse(c, dto.TaskToTaskResponse(task))
}

func (h *TaskHandler) DeleteTask(c *fiber.Ctx) error {
	ctx := c.UserContext()

	taskID, err := parseTaskID(c)
	if err != nil {
		logger.WarnContext(ctx, "Invalid task ID", "task_id", c.Params("id"))
		return utils.BadRequestResponse(c, "Invalid task ID")
	}

	if err := h.taskService.DeleteTask(ctx, taskID); err != nil {
		logger.WarnContext(ctx, "Task deletion failed", "task_id", taskID, "error", err)
		return taskErrorResponse(c, err)
	}

	logger.InfoContext(ctx, "Task deleted", "task_id", taskID)
	return utils.SuccessResponse(c, dto.MessageResponse{Message: "Task deleted successfully"})
}

func (h *TaskHandler) ListTasks(c *fiber.Ctx) error {
	ctx := c.UserContext()

	skip, limit, err := parsePagination(c)
	if err != nil {
		logger.WarnContext(ctx, "Invalid pagination parameters", "error", err)
		return utils.InvalidQueryResponse(c, err.Error())
	}

	var filter repositories.TaskFilter
	if raw := c.Query("status"); raw != "" {
		status, err := validation.ParseStatus(raw)
		if err != nil {
			return utils.ValidationErrorResponse(c, err.Error(), nil)
		}
		filter.Status = &status
	}
	if raw := c.Query("priority"); raw != "" {
		priority, err := validation.ParsePriority(raw)
		if err != nil {
			return utils.ValidationErrorResponse(c, err.Error(), nil)
		}
		filter.Priority = &priority
	}

	return h.listTasks(c, filter, skip, limit)
}

func (h *TaskHandler) ListTasksByStatus(c *fiber.Ctx) error {
	ctx := c.UserContext()

	status, err := validation.ParseStatus(c.Params("status"))
	if err != nil {
		logger.WarnContext(ctx, "Invalid status filter", "status", c.Params("status"))
		return utils.ValidationErrorResponse(c, err.Error(), nil)
	}

	skip, limit, err := parsePagination(c)
	if err != nil {
		logger.WarnContext(ctx, "Invalid pagination parameters", "error", err)
		return utils.InvalidQueryResponse(c, err.Error())
	}

	return h.listTasks(c, repositories.TaskFilter{Status: &status}, skip, limit)
}

func (h *TaskHandler) ListTasksByPriority(c *fiber.Ctx) error {
	ctx := c.UserContext()

	priority, err := validation.ParsePriority(c.Params("priority"))
	if err != nil {
		logger.WarnContext(ctx, "Invalid priority filter", "priority", c.Params("priority"))
		return utils.ValidationErrorResponse(c, err.Error(), nil)
	}

	skip, limit, err := parsePagination(c)
	if err != nil {
		logger.WarnContext(ctx, "Invalid pagination parameters", "error", err)
		return utils.InvalidQueryResponse(c, err.Error())
	}

	return h.listTasks(c, repositories.TaskFilter{Priority: &priority}, skip, limit)
}

func (h *TaskHandler) listTasks(c *fiber.Ctx, filter repositories.TaskFilter, skip, limit int) error {
	ctx := c.UserContext()

	tasks, total, err := h.taskService.ListTasks(ctx, filter, skip, limit)
	if err != nil {
		return taskErrorResponse(c, err)
	}

	return utils.PaginatedSuccessResponse(c, dto.TasksToTaskResponses(tasks), total, skip, limit)
}

func parseTaskID(c *fiber.Ctx) (int64, error) {
	return strconv.ParseInt(c.Params("id"), 10, 64)
}

func parsePagination(c *fiber.Ctx) (skip, limit int, err error) {
	skip, err = strconv.Atoi(c.Query("skip", "0"))
	if err != nil {
		return 0, 0, apperr.InvalidQuery("skip", "must be an integer")
	}
	limit, err = strconv.Atoi(c.Query("limit", "100"))
	if err != nil {
		return 0, 0, apperr.InvalidQuery("limit", "must be an integer")
	}
	return skip, limit, nil
}

// taskErrorResponse maps domain errors onto the status codes of the HTTP
// contract: NotFound 404, invalid fields 422, invalid query 422, anything
// else (storage faults included) 500.
func taskErrorResponse(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, apperr.ErrTaskNotFound):
		return utils.NotFoundResponse(c, "Task not found")
	case apperr.IsFieldError(err):
		return utils.ValidationErrorResponse(c, err.Error(), nil)
	case apperr.IsQueryError(err):
		return utils.InvalidQueryResponse(c, err.Error())
	default:
		logger.ErrorContext(c.UserContext(), "Unhandled task error", "error", err)
		return utils.InternalServerErrorResponse(c)
	}
}
