package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/13132klain/ufa-backend/internal/controllers"
	"github.com/13132klain/ufa-backend/internal/services"
)

func SetupRoutesNews(app *fiber.App, news *services.NewsService, requireAuth fiber.Handler) {
	group := app.Group("/news")

	group.Get("/", controllers.ListNewsHandler(news))
	group.Get("/:news_id", controllers.GetNewsHandler(news))

	group.Post("/", requireAuth, controllers.CreateNewsHandler(news))
	group.Patch("/:news_id", requireAuth, controllers.UpdateNewsHandler(news))
	group.Delete("/:news_id", requireAuth, controllers.DeleteNewsHandler(news))
}
