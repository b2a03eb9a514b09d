package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/13132klain/ufa-backend/internal/controllers"
	"github.com/13132klain/ufa-backend/internal/services"
)

func SetupRoutesEvent(app *fiber.App, events *services.EventService, registrations *services.RegistrationService, requireAuth fiber.Handler) {
	event := app.Group("/events")

	// Public surface
	event.Get("/", controllers.ListEventsHandler(events))
	event.Get("/:event_id", controllers.GetEventHandler(events))
	event.Get("/:event_id/calendar", controllers.EventCalendarLinksHandler(events))
	event.Get("/:event_id/calendar.ics", controllers.EventICSHandler(events))
	event.Post("/:event_id/register", controllers.RegisterForEventHandler(registrations))

	// Dashboard surface
	event.Post("/", requireAuth, controllers.CreateEventHandler(events))
	event.Patch("/:event_id", requireAuth, controllers.UpdateEventHandler(events))
	event.Delete("/:event_id", requireAuth, controllers.DeleteEventHandler(events))
}
