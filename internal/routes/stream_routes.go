package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/13132klain/ufa-backend/internal/controllers"
)

func SetupRoutesStream(app *fiber.App, streams controllers.Streams) {
	app.Get("/stream/:entity", controllers.StreamHandler(streams))
}
