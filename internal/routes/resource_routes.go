package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/13132klain/ufa-backend/internal/controllers"
	"github.com/13132klain/ufa-backend/internal/services"
)

func SetupRoutesResource(app *fiber.App, resources *services.ResourceService, requireAuth fiber.Handler) {
	group := app.Group("/resources")

	group.Get("/", controllers.ListResourcesHandler(resources))
	group.Get("/:resource_id", controllers.GetResourceHandler(resources))
	group.Post("/:resource_id/download", controllers.DownloadResourceHandler(resources))

	group.Post("/", requireAuth, controllers.CreateResourceHandler(resources))
	group.Patch("/:resource_id", requireAuth, controllers.UpdateResourceHandler(resources))
	group.Delete("/:resource_id", requireAuth, controllers.DeleteResourceHandler(resources))
}
