package controllers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/13132klain/ufa-backend/dto"
	"github.com/13132klain/ufa-backend/internal/services"
)

func ListDonationsHandler(svc *services.DonationService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		donations, err := svc.List(c.Context())
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
		}
		return c.JSON(donations)
	}
}

func GetDonationHandler(svc *services.DonationService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		d, err := svc.Get(c.Context(), c.Params("donation_id"))
		if err != nil {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "donation not found"})
		}
		return c.JSON(d)
	}
}

// CreateDonationHandler godoc
// @Summary Record a donation intent
// @Description Creates a pending donation; payment settlement moves it to completed or failed
// @Tags donations
// @Accept json
// @Produce json
// @Param body body dto.DonationRequest true "Donation details"
// @Success 201 {object} map[string]string "ID of the created donation"
// @Failure 400 {object} map[string]string "Bad request (invalid input)"
// @Router /donations [post]
func CreateDonationHandler(svc *services.DonationService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body dto.DonationRequest
		if err := c.BodyParser(&body); err != nil {
			return c.Status(fiber.StatusBadRequest).
				JSON(fiber.Map{"error": "invalid request body"})
		}
		if body.Amount <= 0 {
			return c.Status(fiber.StatusBadRequest).
				JSON(fiber.Map{"error": "amount must be positive"})
		}

		id, err := svc.Create(c.Context(), body)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
		}
		return c.Status(fiber.StatusCreated).JSON(fiber.Map{"id": id})
	}
}

func UpdateDonationHandler(svc *services.DonationService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body dto.DonationUpdate
		if err := c.BodyParser(&body); err != nil {
			return c.Status(fiber.StatusBadRequest).
				JSON(fiber.Map{"error": "invalid request body"})
		}
		if err := svc.Update(c.Context(), c.Params("donation_id"), body); err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}

func DeleteDonationHandler(svc *services.DonationService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := svc.Delete(c.Context(), c.Params("donation_id")); err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}
