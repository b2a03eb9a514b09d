package controllers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/13132klain/ufa-backend/dto"
	"github.com/13132klain/ufa-backend/internal/services"
)

// LoginHandler godoc
// @Summary Sign a dashboard user in
// @Tags auth
// @Accept json
// @Produce json
// @Param body body dto.LoginRequest true "Credentials"
// @Success 200 {object} dto.LoginResponse
// @Failure 401 {object} map[string]string "Invalid email or password"
// @Router /auth/login [post]
func LoginHandler(svc *services.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body dto.LoginRequest
		if err := c.BodyParser(&body); err != nil {
			return c.Status(fiber.StatusBadRequest).
				JSON(fiber.Map{"error": "invalid request body"})
		}

		token, user, err := svc.Login(c.Context(), body.Email, body.Password)
		if errors.Is(err, services.ErrInvalidCredentials) {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": err.Error()})
		}
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
		}

		user.PasswordHash = ""
		return c.JSON(dto.LoginResponse{Token: token, User: *user})
	}
}
