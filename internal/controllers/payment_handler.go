package controllers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/13132klain/ufa-backend/dto"
	"github.com/13132klain/ufa-backend/internal/mpesa"
	"github.com/13132klain/ufa-backend/internal/services"
)

// InitiatePaymentHandler godoc
// @Summary Start an M-Pesa STK push
// @Description Pops a payment prompt on the donor's phone and returns the checkout request ID to poll
// @Tags payments
// @Accept json
// @Produce json
// @Param body body dto.PaymentRequest true "Phone, amount and optional donation ID"
// @Success 202 {object} dto.PaymentResponse
// @Failure 400 {object} map[string]string "Invalid phone or amount"
// @Router /payments/mpesa [post]
func InitiatePaymentHandler(svc *services.PaymentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body dto.PaymentRequest
		if err := c.BodyParser(&body); err != nil {
			return c.Status(fiber.StatusBadRequest).
				JSON(fiber.Map{"error": "invalid request body"})
		}

		resp, err := svc.InitiatePush(c.Context(), body)
		if errors.Is(err, mpesa.ErrInvalidPhone) {
			return c.Status(fiber.StatusBadRequest).
				JSON(fiber.Map{"error": "enter a valid Kenyan phone number, e.g. 0712345678"})
		}
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		}
		return c.Status(fiber.StatusAccepted).JSON(resp)
	}
}

// PaymentCallbackHandler godoc
// @Summary Daraja result hook
// @Description Receives the asynchronous STK push outcome and settles the linked donation
// @Tags payments
// @Accept json
// @Success 200 {object} map[string]string "Acknowledged"
// @Router /payments/mpesa/callback [post]
func PaymentCallbackHandler(svc *services.PaymentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body dto.STKCallback
		if err := c.BodyParser(&body); err != nil {
			return c.Status(fiber.StatusBadRequest).
				JSON(fiber.Map{"error": "invalid request body"})
		}

		cb := body.Body.StkCallback
		receipt := ""
		for _, item := range cb.CallbackMetadata.Item {
			if item.Name == "MpesaReceiptNumber" {
				receipt, _ = item.Value.(string)
			}
		}

		err := svc.HandleCallback(c.Context(), cb.CheckoutRequestID, cb.ResultCode, receipt)
		if errors.Is(err, services.ErrPaymentNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "payment not found"})
		}
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
		}
		// Daraja expects this exact acknowledgement shape.
		return c.JSON(fiber.Map{"ResultCode": 0, "ResultDesc": "Accepted"})
	}
}

// PaymentStatusHandler godoc
// @Summary Poll a payment's state
// @Tags payments
// @Produce json
// @Param checkout_id path string true "Checkout request ID"
// @Success 200 {object} dto.PaymentStatusResponse
// @Failure 404 {object} map[string]string "Unknown checkout request"
// @Router /payments/mpesa/{checkout_id} [get]
func PaymentStatusHandler(svc *services.PaymentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		status, err := svc.Status(c.Params("checkout_id"))
		if errors.Is(err, services.ErrPaymentNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "payment not found"})
		}
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
		}
		return c.JSON(status)
	}
}

// RetryPaymentHandler godoc
// @Summary Clear a failed payment so the donor can try again
// @Tags payments
// @Param checkout_id path string true "Checkout request ID"
// @Success 204 "Reset"
// @Failure 409 {object} map[string]string "Payment is not failed"
// @Router /payments/mpesa/{checkout_id}/retry [post]
func RetryPaymentHandler(svc *services.PaymentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		err := svc.Retry(c.Params("checkout_id"))
		if errors.Is(err, services.ErrPaymentNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "payment not found"})
		}
		if err != nil {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": err.Error()})
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}
