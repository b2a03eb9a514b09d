package controllers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/13132klain/ufa-backend/dto"
	"github.com/13132klain/ufa-backend/internal/services"
)

func ListResourcesHandler(svc *services.ResourceService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		resources, err := svc.List(c.Context())
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
		}
		return c.JSON(resources)
	}
}

func GetResourceHandler(svc *services.ResourceService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		res, err := svc.Get(c.Context(), c.Params("resource_id"))
		if err != nil {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "resource not found"})
		}
		return c.JSON(res)
	}
}

func CreateResourceHandler(svc *services.ResourceService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body dto.ResourceRequest
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

func UpdateResourceHandler(svc *services.ResourceService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body dto.ResourceUpdate
		if err := c.BodyParser(&body); err != nil {
			return c.Status(fiber.StatusBadRequest).
				JSON(fiber.Map{"error": "invalid request body"})
		}
		if err := svc.Update(c.Context(), c.Params("resource_id"), body); err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}

func DeleteResourceHandler(svc *services.ResourceService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := svc.Delete(c.Context(), c.Params("resource_id")); err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}

// DownloadResourceHandler godoc
// @Summary Record a download and return the file URL
// @Tags resources
// @Produce json
// @Param resource_id path string true "Resource ID"
// @Success 200 {object} map[string]interface{} "File URL and running download count"
// @Failure 404 {object} map[string]string "Resource not found"
// @Router /resources/{resource_id}/download [post]
func DownloadResourceHandler(svc *services.ResourceService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		res, err := svc.RecordDownload(c.Context(), c.Params("resource_id"))
		if err != nil {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "resource not found"})
		}
		return c.JSON(fiber.Map{
			"url":           res.URL,
			"downloadCount": res.DownloadCount,
		})
	}
}
