package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/13132klain/ufa-backend/internal/controllers"
	"github.com/13132klain/ufa-backend/internal/services"
)

func SetupRoutesPayment(app *fiber.App, payments *services.PaymentService) {
	group := app.Group("/payments/mpesa")

	group.Post("/", controllers.InitiatePaymentHandler(payments))
	group.Post("/callback", controllers.PaymentCallbackHandler(payments))
	group.Get("/:checkout_id", controllers.PaymentStatusHandler(payments))
	group.Post("/:checkout_id/retry", controllers.RetryPaymentHandler(payments))
}
