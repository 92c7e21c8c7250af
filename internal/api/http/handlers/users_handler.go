package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/kawaf/petcafe-service/internal/api/dto"
	"github.com/kawaf/petcafe-service/internal/auth"
	"github.com/kawaf/petcafe-service/internal/domain"
	"github.com/kawaf/petcafe-service/internal/service"
	"github.com/kawaf/petcafe-service/pkg/util"
)

// UsersHandler manages user account endpoints. All of them are
// ADMIN-only; the policy check lives in the service.
type UsersHandler struct {
	users    *service.UserService
	resolver *auth.Resolver
}

// NewUsersHandler constructs handler.
func NewUsersHandler(users *service.UserService, resolver *auth.Resolver) *UsersHandler {
	return &UsersHandler{users: users, resolver: resolver}
}

// List handles GET /api/user.
func (h *UsersHandler) List(c *fiber.Ctx) error {
	status := h.resolver.Resolve(c)
	users, err := h.users.List(c.Context(), status)
	if err != nil {
		return err
	}
	return c.JSON(dto.NewUserList(users))
}

// Create handles POST /api/user. The policy gate runs before any
// payload inspection.
func (h *UsersHandler) Create(c *fiber.Ctx) error {
	status := h.resolver.Resolve(c)
	if !auth.CanManageUsers(status.Role) {
		return util.NewForbidden("admin access only")
	}

	var req dto.UserCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return util.NewValidationError("invalid payload", nil)
	}
	if req.Email == "" || req.Password == "" || req.Name == "" {
		return util.NewValidationError("email, password, and name are required", nil)
	}

	user, err := h.users.Create(c.Context(), status, service.UserCreateInput{
		Email:    req.Email,
		Name:     req.Name,
		Password: req.Password,
		Role:     domain.Role(req.Role),
	})
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(dto.NewUserResponse(user))
}

// Update handles PUT /api/user/:id.
func (h *UsersHandler) Update(c *fiber.Ctx) error {
	status := h.resolver.Resolve(c)
	if !auth.CanManageUsers(status.Role) {
		return util.NewForbidden("admin access only")
	}
	id, err := parseID(c, "user")
	if err != nil {
		return err
	}

	var req dto.UserUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return util.NewValidationError("invalid payload", nil)
	}

	input := service.UserUpdateInput{Email: req.Email, Name: req.Name}
	if req.Role != nil {
		role := domain.Role(*req.Role)
		input.Role = &role
	}

	user, err := h.users.Update(c.Context(), status, id, input)
	if err != nil {
		return err
	}
	return c.JSON(dto.NewUserResponse(user))
}

// Delete handles DELETE /api/user/:id.
func (h *UsersHandler) Delete(c *fiber.Ctx) error {
	status := h.resolver.Resolve(c)
	if !auth.CanManageUsers(status.Role) {
		return util.NewForbidden("admin access only")
	}
	id, err := parseID(c, "user")
	if err != nil {
		return err
	}
	if err := h.users.Delete(c.Context(), status, id); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": "user deleted successfully"})
}
