package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/13132klain/ufa-backend/internal/controllers"
	"github.com/13132klain/ufa-backend/internal/services"
)

func SetupRoutesRegistration(app *fiber.App, registrations *services.RegistrationService, requireAuth fiber.Handler) {
	group := app.Group("/admin/registrations", requireAuth)

	group.Get("/", controllers.ListRegistrationsHandler(registrations))
	group.Get("/export", controllers.ExportRegistrationsHandler(registrations))
	group.Patch("/:registration_id/status", controllers.UpdateRegistrationStatusHandler(registrations))
	group.Post("/:registration_id/check-in", controllers.CheckInRegistrationHandler(registrations))
	group.Delete("/:registration_id", controllers.DeleteRegistrationHandler(registrations))
}
