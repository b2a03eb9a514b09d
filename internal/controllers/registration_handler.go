package controllers

import (
	"bytes"
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/13132klain/ufa-backend/dto"
	"github.com/13132klain/ufa-backend/internal/services"
)

// RegisterForEventHandler godoc
// @Summary Register a participant for an event
// @Description Signs the participant up and returns a confirmation code. Duplicate emails for the same event are rejected.
// @Tags registrations
// @Accept json
// @Produce json
// @Param event_id path string true "Event ID"
// @Param body body dto.RegistrationRequest true "Participant details"
// @Success 201 {object} dto.RegistrationResult
// @Failure 400 {object} map[string]string "Bad request (invalid input)"
// @Failure 409 {object} dto.RegistrationResult "Already registered"
// @Router /events/{event_id}/register [post]
func RegisterForEventHandler(svc *services.RegistrationService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body dto.RegistrationRequest
		if err := c.BodyParser(&body); err != nil {
			return c.Status(fiber.StatusBadRequest).
				JSON(fiber.Map{"error": "invalid request body"})
		}
		if body.Name == "" || body.Email == "" {
			return c.Status(fiber.StatusBadRequest).
				JSON(fiber.Map{"error": "name and email are required"})
		}

		result, err := svc.Register(c.Context(), c.Params("event_id"), body)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
		}
		if !result.Success {
			return c.Status(fiber.StatusConflict).JSON(result)
		}
		return c.Status(fiber.StatusCreated).JSON(result)
	}
}

func ListRegistrationsHandler(svc *services.RegistrationService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var (
			regs any
			err  error
		)
		if eventID := c.Query("event_id"); eventID != "" {
			regs, err = svc.ListByEvent(c.Context(), eventID)
		} else {
			regs, err = svc.List(c.Context())
		}
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
		}
		return c.JSON(regs)
	}
}

// UpdateRegistrationStatusHandler godoc
// @Summary Move a registration between pending, confirmed and cancelled
// @Tags registrations
// @Accept json
// @Param registration_id path string true "Registration ID"
// @Param body body dto.RegistrationStatusUpdate true "New status"
// @Success 204 "Updated"
// @Failure 409 {object} map[string]string "Cancelled registrations stay cancelled"
// @Router /admin/registrations/{registration_id}/status [patch]
func UpdateRegistrationStatusHandler(svc *services.RegistrationService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body dto.RegistrationStatusUpdate
		if err := c.BodyParser(&body); err != nil {
			return c.Status(fiber.StatusBadRequest).
				JSON(fiber.Map{"error": "invalid request body"})
		}

		err := svc.UpdateStatus(c.Context(), c.Params("registration_id"), body.Status)
		switch {
		case errors.Is(err, services.ErrCancelled):
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": err.Error()})
		case err != nil:
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}

// CheckInRegistrationHandler godoc
// @Summary Mark a confirmed participant as present
// @Tags registrations
// @Param registration_id path string true "Registration ID"
// @Success 204 "Checked in"
// @Failure 409 {object} map[string]string "Not confirmed or already inside"
// @Router /admin/registrations/{registration_id}/check-in [post]
func CheckInRegistrationHandler(svc *services.RegistrationService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		err := svc.CheckIn(c.Context(), c.Params("registration_id"))
		switch {
		case errors.Is(err, services.ErrNotConfirmed), errors.Is(err, services.ErrAlreadyInside):
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": err.Error()})
		case err != nil:
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}

func DeleteRegistrationHandler(svc *services.RegistrationService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := svc.Delete(c.Context(), c.Params("registration_id")); err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}

// ExportRegistrationsHandler godoc
// @Summary Download the participant list as CSV
// @Tags registrations
// @Produce text/csv
// @Param event_id query string false "Limit to one event"
// @Success 200 {string} string "CSV document"
// @Router /admin/registrations/export [get]
func ExportRegistrationsHandler(svc *services.RegistrationService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var buf bytes.Buffer
		if err := svc.ExportCSV(c.Context(), &buf, c.Query("event_id")); err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
		}

		c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
		c.Set(fiber.HeaderContentDisposition, `attachment; filename="registrations.csv"`)
		return c.Send(buf.Bytes())
	}
}
