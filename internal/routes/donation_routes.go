package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/13132klain/ufa-backend/internal/controllers"
	"github.com/13132klain/ufa-backend/internal/services"
)

func SetupRoutesDonation(app *fiber.App, donations *services.DonationService, campaigns *services.CampaignService, requireAuth fiber.Handler) {
	donation := app.Group("/donations")

	// Donors create their own record; everything else is dashboard-only.
	donation.Post("/", controllers.CreateDonationHandler(donations))
	donation.Get("/", requireAuth, controllers.ListDonationsHandler(donations))
	donation.Get("/:donation_id", requireAuth, controllers.GetDonationHandler(donations))
	donation.Patch("/:donation_id", requireAuth, controllers.UpdateDonationHandler(donations))
	donation.Delete("/:donation_id", requireAuth, controllers.DeleteDonationHandler(donations))

	campaign := app.Group("/campaigns")
	campaign.Get("/", controllers.ListCampaignsHandler(campaigns))
	campaign.Get("/:campaign_id", controllers.GetCampaignHandler(campaigns))
	campaign.Post("/", requireAuth, controllers.CreateCampaignHandler(campaigns))
	campaign.Patch("/:campaign_id", requireAuth, controllers.UpdateCampaignHandler(campaigns))
	campaign.Delete("/:campaign_id", requireAuth, controllers.DeleteCampaignHandler(campaigns))
}
