package controllers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/13132klain/ufa-backend/dto"
	"github.com/13132klain/ufa-backend/internal/services"
)

func ListNewsHandler(svc *services.NewsService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		items, err := svc.List(c.Context())
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
		}
		return c.JSON(items)
	}
}

func GetNewsHandler(svc *services.NewsService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		item, err := svc.Get(c.Context(), c.Params("news_id"))
		if err != nil {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "news item not found"})
		}
		return c.JSON(item)
	}
}

func CreateNewsHandler(svc *services.NewsService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body dto.NewsRequest
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

func UpdateNewsHandler(svc *services.NewsService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body dto.NewsUpdate
		if err := c.BodyParser(&body); err != nil {
			return c.Status(fiber.StatusBadRequest).
				JSON(fiber.Map{"error": "invalid request body"})
		}
		if err := svc.Update(c.Context(), c.Params("news_id"), body); err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}

func DeleteNewsHandler(svc *services.NewsService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := svc.Delete(c.Context(), c.Params("news_id")); err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}
