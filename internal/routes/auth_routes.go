package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/13132klain/ufa-backend/internal/controllers"
	"github.com/13132klain/ufa-backend/internal/services"
)

func SetupRoutesAuth(app *fiber.App, auth *services.AuthService) {
	group := app.Group("/auth")

	group.Post("/login", controllers.LoginHandler(auth))
}
