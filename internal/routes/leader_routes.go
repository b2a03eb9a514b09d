package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/13132klain/ufa-backend/internal/controllers"
	"github.com/13132klain/ufa-backend/internal/services"
)

func SetupRoutesLeader(app *fiber.App, leaders *services.LeaderService, requireAuth fiber.Handler) {
	group := app.Group("/leaders")

	group.Get("/", controllers.ListLeadersHandler(leaders))
	group.Get("/:leader_id", controllers.GetLeaderHandler(leaders))

	group.Post("/", requireAuth, controllers.CreateLeaderHandler(leaders))
	group.Patch("/:leader_id", requireAuth, controllers.UpdateLeaderHandler(leaders))
	group.Delete("/:leader_id", requireAuth, controllers.DeleteLeaderHandler(leaders))
}
