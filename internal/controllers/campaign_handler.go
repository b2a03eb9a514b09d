package controllers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/13132klain/ufa-backend/dto"
	"github.com/13132klain/ufa-backend/internal/services"
)

func ListCampaignsHandler(svc *services.CampaignService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		campaigns, err := svc.List(c.Context())
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
		}
		return c.JSON(campaigns)
	}
}

// GetCampaignHandler godoc
// @Summary Get one campaign with its funding progress
// @Tags campaigns
// @Produce json
// @Param campaign_id path string true "Campaign ID"
// @Success 200 {object} map[string]interface{} "Campaign plus progress percentage"
// @Failure 404 {object} map[string]string "Campaign not found"
// @Router /campaigns/{campaign_id} [get]
func GetCampaignHandler(svc *services.CampaignService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		campaign, err := svc.Get(c.Context(), c.Params("campaign_id"))
		if err != nil {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "campaign not found"})
		}
		return c.JSON(fiber.Map{
			"campaign": campaign,
			"progress": services.CampaignProgress(campaign.CurrentAmount, campaign.TargetAmount),
		})
	}
}

func CreateCampaignHandler(svc *services.CampaignService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body dto.CampaignRequest
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

func UpdateCampaignHandler(svc *services.CampaignService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body dto.CampaignUpdate
		if err := c.BodyParser(&body); err != nil {
			return c.Status(fiber.StatusBadRequest).
				JSON(fiber.Map{"error": "invalid request body"})
		}
		if err := svc.Update(c.Context(), c.Params("campaign_id"), body); err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}

func DeleteCampaignHandler(svc *services.CampaignService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := svc.Delete(c.Context(), c.Params("campaign_id")); err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}
