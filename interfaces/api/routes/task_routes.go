package routes

import (
	"github.com/gofiber/fiber/v2"

	"taskapi/interfaces/api/handlers"
)

func SetupTaskRoutes(app *fiber.App, h *handlers.Handlers) {
	tasks := app.Group("/tasks")
	tasks.Post("/", h.TaskHandler.CreateTask)
	tasks.Get("/", h.TaskHandler.ListTasks)
	tasks.Get("/status/:status", h.TaskHandler.ListTasksByStatus)
	tasks.Get("/priority/:priority", h.TaskHandler.ListTasksByPriority)
	tasks.Get("/:id", h.TaskHandler.GetTask)
	tasks.Put("/:id", h.TaskHandler.UpdateTask)
	tasks.Delete("/:id", h.TaskHandler.DeleteTask)
}
