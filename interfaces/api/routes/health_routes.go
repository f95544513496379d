package routes

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"taskapi/domain/dto"
)

const apiVersion = "1.0.0"

func SetupHealthRoutes(app *fiber.App) {
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(dto.HealthResponse{
			Status:    "healthy",
			Timestamp: time.Now().UTC(),
		})
	})

	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(dto.APIInfo{
			Name:        "Task Management API",
			Version:     apiVersion,
			Description: "A simple task management API built with Fiber and GORM",
			Endpoints: []string{
				"GET / - API Information",
				"GET /health - Health Check",
				"POST /tasks - Create Task",
				"GET /tasks - List Tasks",
				"GET /tasks/:id - Get Task",
				"PUT /tasks/:id - Update Task",
				"DELETE /tasks/:id - Delete Task",
				"GET /tasks/status/:status - Get Tasks by Status",
				"GET /tasks/priority/:priority - Get Tasks by Priority",
			},
		})
	})
}
