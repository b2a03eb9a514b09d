package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/13132klain/ufa-backend/internal/controllers"
	"github.com/13132klain/ufa-backend/internal/services"
)

func SetupRoutesMembership(app *fiber.App, memberships *services.MembershipService, requireAuth fiber.Handler) {
	app.Post("/memberships", controllers.SubmitMembershipHandler(memberships))

	admin := app.Group("/admin/memberships", requireAuth)
	admin.Get("/", controllers.ListMembershipsHandler(memberships))
	admin.Get("/:membership_id", controllers.GetMembershipHandler(memberships))
	admin.Post("/:membership_id/review", controllers.ReviewMembershipHandler(memberships))
	admin.Delete("/:membership_id", controllers.DeleteMembershipHandler(memberships))
}
