// @title United Future Alliance API
// @version 1.0
// @description Backend for the UFA public site and admin dashboard.
// @host localhost:8000
// @BasePath /

package main

import (
	"context"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"

	"github.com/13132klain/ufa-backend/bootstrap"
	"github.com/13132klain/ufa-backend/config"
	"github.com/13132klain/ufa-backend/database"
	"github.com/13132klain/ufa-backend/internal/controllers"
	"github.com/13132klain/ufa-backend/internal/middleware"
	"github.com/13132klain/ufa-backend/internal/mpesa"
	"github.com/13132klain/ufa-backend/internal/repository"
	"github.com/13132klain/ufa-backend/internal/routes"
	"github.com/13132klain/ufa-backend/internal/services"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️ Warning: .env file not found, using system environment variables")
	}

	cfg := config.LoadConfig()
	if cfg.JWTSecret == "" {
		log.Fatal("JWT_SECRET is required")
	}

	// Content repositories: MongoDB when reachable, in-memory otherwise.
	// The site stays up either way; only durability differs.
	var (
		eventRepo      repository.EventRepository
		newsRepo       repository.NewsRepository
		leaderRepo     repository.LeaderRepository
		resourceRepo   repository.ResourceRepository
		donationRepo   repository.DonationRepository
		campaignRepo   repository.CampaignRepository
		membershipRepo repository.MembershipRepository
		remoteRegs     repository.RegistrationRepository
	)

	client, err := database.ConnectMongo(cfg.MongoURI)
	if err != nil {
		log.Println("⚠️ MongoDB unreachable, serving from memory:", err)
		eventRepo = repository.NewMemoryEventRepository()
		newsRepo = repository.NewMemoryNewsRepository()
		leaderRepo = repository.NewMemoryLeaderRepository()
		resourceRepo = repository.NewMemoryResourceRepository()
		donationRepo = repository.NewMemoryDonationRepository()
		campaignRepo = repository.NewMemoryCampaignRepository()
		membershipRepo = repository.NewMemoryMembershipRepository()
	} else {
		defer client.Disconnect(context.Background())
		db := client.Database(cfg.MongoDB)
		if err := bootstrap.EnsureIndexes(db); err != nil {
			log.Fatalf("ensure indexes failed: %v", err)
		}
		eventRepo = repository.NewMongoEventRepository(db)
		newsRepo = repository.NewMongoNewsRepository(db)
		leaderRepo = repository.NewMongoLeaderRepository(db)
		resourceRepo = repository.NewMongoResourceRepository(db)
		donationRepo = repository.NewMongoDonationRepository(db)
		campaignRepo = repository.NewMongoCampaignRepository(db)
		membershipRepo = repository.NewMongoMembershipRepository(db)
		remoteRegs = repository.NewMongoRegistrationRepository(db)
	}

	// Registrations always have a durable local tier.
	local, err := database.OpenLocal(cfg.DataDir)
	if err != nil {
		log.Fatalf("open local store failed: %v", err)
	}
	defer local.Close()
	registrationStore := repository.NewFallbackRegistrationStore(
		remoteRegs,
		repository.NewSQLiteRegistrationRepository(local),
	)

	// Services
	eventSvc := services.NewEventService(eventRepo)
	newsSvc := services.NewNewsService(newsRepo)
	leaderSvc := services.NewLeaderService(leaderRepo)
	resourceSvc := services.NewResourceService(resourceRepo)
	campaignSvc := services.NewCampaignService(campaignRepo)
	donationSvc := services.NewDonationService(donationRepo, campaignSvc)
	membershipSvc := services.NewMembershipService(membershipRepo)
	registrationSvc := services.NewRegistrationService(registrationStore, eventRepo)

	users := repository.NewMemoryUserRepository(services.SeedUsers(cfg.AdminPassword))
	authSvc := services.NewAuthService(users, cfg.JWTSecret)

	var gateway mpesa.Gateway
	if cfg.Mpesa.Simulate {
		log.Println("payments: using the simulated M-Pesa gateway")
		gateway = mpesa.NewSimulatedGateway()
	} else {
		gateway = mpesa.NewDarajaGateway(mpesa.DarajaConfig{
			BaseURL:        cfg.Mpesa.BaseURL,
			ConsumerKey:    cfg.Mpesa.ConsumerKey,
			ConsumerSecret: cfg.Mpesa.ConsumerSecret,
			ShortCode:      cfg.Mpesa.ShortCode,
			Passkey:        cfg.Mpesa.Passkey,
			CallbackURL:    cfg.Mpesa.CallbackURL,
		})
	}
	paymentSvc := services.NewPaymentService(gateway, donationSvc)

	// Fiber app
	app := fiber.New()
	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PATCH,PUT,DELETE,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))

	app.Get("/healthz", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	requireAuth := middleware.RequireAuth(cfg.JWTSecret)

	routes.SetupRoutesAuth(app, authSvc)
	routes.SetupRoutesEvent(app, eventSvc, registrationSvc, requireAuth)
	routes.SetupRoutesNews(app, newsSvc, requireAuth)
	routes.SetupRoutesLeader(app, leaderSvc, requireAuth)
	routes.SetupRoutesResource(app, resourceSvc, requireAuth)
	routes.SetupRoutesDonation(app, donationSvc, campaignSvc, requireAuth)
	routes.SetupRoutesRegistration(app, registrationSvc, requireAuth)
	routes.SetupRoutesMembership(app, membershipSvc, requireAuth)
	routes.SetupRoutesPayment(app, paymentSvc)
	routes.SetupRoutesStream(app, controllers.Streams{
		Events:        eventSvc,
		News:          newsSvc,
		Leaders:       leaderSvc,
		Resources:     resourceSvc,
		Donations:     donationSvc,
		Campaigns:     campaignSvc,
		Registrations: registrationSvc,
		Memberships:   membershipSvc,
	})

	log.Fatal(app.Listen(":" + cfg.Port))
}
