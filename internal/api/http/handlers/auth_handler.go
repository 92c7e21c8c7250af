package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/kawaf/petcafe-service/internal/api/dto"
	"github.com/kawaf/petcafe-service/internal/auth"
	"github.com/kawaf/petcafe-service/internal/service"
	"github.com/kawaf/petcafe-service/pkg/util"
)

// AuthHandler exposes login and password rotation.
type AuthHandler struct {
	auth     *service.AuthService
	resolver *auth.Resolver
}

// NewAuthHandler constructs handler.
func NewAuthHandler(authService *service.AuthService, resolver *auth.Resolver) *AuthHandler {
	return &AuthHandler{auth: authService, resolver: resolver}
}

// Login handles POST /api/user/login.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return util.NewValidationError("invalid payload", nil)
	}
	if req.Email == "" || req.Password == "" {
		return util.NewValidationError("email and password are required", nil)
	}

	user, token, _, err := h.auth.Login(c.Context(), req.Email, req.Password)
	if err != nil {
		return err
	}

	return c.Status(http.StatusOK).JSON(dto.LoginResponse{
		Token: token,
		User: dto.LoginUser{
			Email: user.Email,
			Role:  string(user.Role),
			Name:  user.Name,
		},
	})
}

// ChangePassword handles POST /api/user/change-password. The subject
// is taken from the verified token, never from the payload.
func (h *AuthHandler) ChangePassword(c *fiber.Ctx) error {
	status, claims := h.resolver.ResolveClaims(c)
	if !status.IsAuthenticated {
		return util.NewUnauthorized("authentication required")
	}

	var req dto.ChangePasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return util.NewValidationError("invalid payload", nil)
	}
	if req.CurrentPassword == "" || req.NewPassword == "" {
		return util.NewValidationError("current and new passwords are required", nil)
	}

	if err := h.auth.ChangePassword(c.Context(), claims.UserID, req.CurrentPassword, req.NewPassword); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": "password updated successfully"})
}
