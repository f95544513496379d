package routes

import (
	"github.com/gofiber/fiber/v2"

	"taskapi/interfaces/api/handlers"
)

func SetupRoutes(app *fiber.App, h *handlers.Handlers) {
	SetupHealthRoutes(app)
	SetupTaskRoutes(app, h)
}
