package controllers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/13132klain/ufa-backend/internal/calendar"
	"github.com/13132klain/ufa-backend/internal/services"
)

// EventCalendarLinksHandler godoc
// @Summary Add-to-calendar links for an event
// @Tags events
// @Produce json
// @Param event_id path string true "Event ID"
// @Success 200 {object} calendar.Links
// @Failure 404 {object} map[string]string "Event not found"
// @Router /events/{event_id}/calendar [get]
func EventCalendarLinksHandler(svc *services.EventService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ev, err := svc.Get(c.Context(), c.Params("event_id"))
		if err != nil {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "event not found"})
		}
		return c.JSON(calendar.LinksFor(*ev))
	}
}

// EventICSHandler godoc
// @Summary Download an event as an .ics file
// @Tags events
// @Produce text/calendar
// @Param event_id path string true "Event ID"
// @Success 200 {string} string "iCalendar document"
// @Failure 404 {object} map[string]string "Event not found"
// @Router /events/{event_id}/calendar.ics [get]
func EventICSHandler(svc *services.EventService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ev, err := svc.Get(c.Context(), c.Params("event_id"))
		if err != nil {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "event not found"})
		}

		c.Set(fiber.HeaderContentType, "text/calendar; charset=utf-8")
		c.Set(fiber.HeaderContentDisposition, `attachment; filename="event.ics"`)
		return c.SendString(calendar.ICS(*ev))
	}
}
