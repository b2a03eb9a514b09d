package controllers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/13132klain/ufa-backend/dto"
	"github.com/13132klain/ufa-backend/internal/services"
)

func ListLeadersHandler(svc *services.LeaderService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		leaders, err := svc.List(c.Context())
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
		}
		return c.JSON(leaders)
	}
}

func GetLeaderHandler(svc *services.LeaderService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		leader, err := svc.Get(c.Context(), c.Params("leader_id"))
		if err != nil {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "leader not found"})
		}
		return c.JSON(leader)
	}
}

func CreateLeaderHandler(svc *services.LeaderService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body dto.LeaderRequest
		if err := c.BodyParser(&body); err != nil {
			return c.Status(fiber.StatusBadRequest).
				JSON(fiber.Map{"error": "invalid request body"})
		}
		if body.Name == "" {
			return c.Status(fiber.StatusBadRequest).
				JSON(fiber.Map{"error": "name is required"})
		}

		id, err := svc.Create(c.Context(), body)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
		}
		return c.Status(fiber.StatusCreated).JSON(fiber.Map{"id": id})
	}
}

func UpdateLeaderHandler(svc *services.LeaderService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body dto.LeaderUpdate
		if err := c.BodyParser(&body); err != nil {
			return c.Status(fiber.StatusBadRequest).
				JSON(fiber.Map{"error": "invalid request body"})
		}
		if err := svc.Update(c.Context(), c.Params("leader_id"), body); err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}

func DeleteLeaderHandler(svc *services.LeaderService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := svc.Delete(c.Context(), c.Params("leader_id")); err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}
