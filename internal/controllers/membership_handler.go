package controllers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/13132klain/ufa-backend/dto"
	"github.com/13132klain/ufa-backend/internal/services"
)

// SubmitMembershipHandler godoc
// @Summary Submit a membership application
// @Tags memberships
// @Accept json
// @Produce json
// @Param body body dto.MembershipRequest true "Applicant details"
// @Success 201 {object} map[string]string "ID of the application"
// @Failure 400 {object} map[string]string "Bad request (invalid input)"
// @Router /memberships [post]
func SubmitMembershipHandler(svc *services.MembershipService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body dto.MembershipRequest
		if err := c.BodyParser(&body); err != nil {
			return c.Status(fiber.StatusBadRequest).
				JSON(fiber.Map{"error": "invalid request body"})
		}
		if body.FirstName == "" || body.LastName == "" || body.Email == "" {
			return c.Status(fiber.StatusBadRequest).
				JSON(fiber.Map{"error": "first name, last name and email are required"})
		}

		id, err := svc.Submit(c.Context(), body)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
		}
		return c.Status(fiber.StatusCreated).JSON(fiber.Map{"id": id})
	}
}

func ListMembershipsHandler(svc *services.MembershipService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		memberships, err := svc.List(c.Context())
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
		}
		return c.JSON(memberships)
	}
}

func GetMembershipHandler(svc *services.MembershipService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		m, err := svc.Get(c.Context(), c.Params("membership_id"))
		if err != nil {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "membership application not found"})
		}
		return c.JSON(m)
	}
}

// ReviewMembershipHandler godoc
// @Summary Approve or reject a membership application
// @Tags memberships
// @Accept json
// @Param membership_id path string true "Membership ID"
// @Param body body dto.MembershipReview true "Review decision"
// @Success 204 "Reviewed"
// @Router /admin/memberships/{membership_id}/review [post]
func ReviewMembershipHandler(svc *services.MembershipService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body dto.MembershipReview
		if err := c.BodyParser(&body); err != nil {
			return c.Status(fiber.StatusBadRequest).
				JSON(fiber.Map{"error": "invalid request body"})
		}

		reviewer, _ := c.Locals("user_id").(string)
		if err := svc.Review(c.Context(), c.Params("membership_id"), body.Approve, reviewer); err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}

func DeleteMembershipHandler(svc *services.MembershipService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := svc.Delete(c.Context(), c.Params("membership_id")); err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}
