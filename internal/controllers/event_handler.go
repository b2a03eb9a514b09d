package controllers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/13132klain/ufa-backend/dto"
	"github.com/13132klain/ufa-backend/internal/services"
)

// ListEventsHandler godoc
// @Summary List all events
// @Tags events
// @Produce json
// @Success 200 {array} models.Event
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /events [get]
func ListEventsHandler(svc *services.EventService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		events, err := svc.List(c.Context())
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
		}
		return c.JSON(events)
	}
}

// GetEventHandler godoc
// @Summary Get one event
// @Tags events
// @Produce json
// @Param event_id path string true "Event ID"
// @Success 200 {object} models.Event
// @Failure 404 {object} map[string]string "Event not found"
// @Router /events/{event_id} [get]
func GetEventHandler(svc *services.EventService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ev, err := svc.Get(c.Context(), c.Params("event_id"))
		if err != nil {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "event not found"})
		}
		return c.JSON(ev)
	}
}

// CreateEventHandler godoc
// @Summary Create a new event
// @Tags events
// @Accept json
// @Produce json
// @Param body body dto.EventRequest true "Event details"
// @Success 201 {object} map[string]string "ID of the created event"
// @Failure 400 {object} map[string]string "Bad request (invalid input)"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /events [post]
func CreateEventHandler(svc *services.EventService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body dto.EventRequest
		if err := c.BodyParser(&body); err != nil {
			return c.Status(fiber.StatusBadRequest).
				JSON(fiber.Map{"error": "invalid request body"})
		}
		if body.Title == "" {
			return c.Status(fiber.StatusBadRequest).
				JSON(fiber.Map{"error": "title is required"})
		}

		id, err := svc.Create(c.Context(), body)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
		}
		return c.Status(fiber.StatusCreated).JSON(fiber.Map{"id": id})
	}
}

// UpdateEventHandler godoc
// @Summary Update an event
// @Tags events
// @Accept json
// @Param event_id path string true "Event ID"
// @Param body body dto.EventUpdate true "Fields to change"
// @Success 204 "Updated"
// @Failure 400 {object} map[string]string "Bad request (invalid input)"
// @Router /events/{event_id} [patch]
func UpdateEventHandler(svc *services.EventService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body dto.EventUpdate
		if err := c.BodyParser(&body); err != nil {
			return c.Status(fiber.StatusBadRequest).
				JSON(fiber.Map{"error": "invalid request body"})
		}
		if err := svc.Update(c.Context(), c.Params("event_id"), body); err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}

// DeleteEventHandler godoc
// @Summary Delete an event
// @Tags events
// @Param event_id path string true "Event ID"
// @Success 204 "Deleted"
// @Router /events/{event_id} [delete]
func DeleteEventHandler(svc *services.EventService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := svc.Delete(c.Context(), c.Params("event_id")); err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}
