package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/kawaf/petcafe-service/internal/api/dto"
	"github.com/kawaf/petcafe-service/internal/auth"
	"github.com/kawaf/petcafe-service/internal/service"
	"github.com/kawaf/petcafe-service/pkg/util"
)

// MenuHandler manages menu item endpoints.
type MenuHandler struct {
	menu     *service.MenuService
	resolver *auth.Resolver
}

// NewMenuHandler constructs handler.
func NewMenuHandler(menu *service.MenuService, resolver *auth.Resolver) *MenuHandler {
	return &MenuHandler{menu: menu, resolver: resolver}
}

// List handles GET /api/menu.
func (h *MenuHandler) List(c *fiber.Ctx) error {
	status := h.resolver.Resolve(c)
	items, err := h.menu.List(c.Context(), status)
	if err != nil {
		return err
	}
	return c.JSON(dto.NewMenuItemList(items))
}

// Get handles GET /api/menu/:id.
func (h *MenuHandler) Get(c *fiber.Ctx) error {
	_ = h.resolver.Resolve(c)
	id, err := parseID(c, "menu item")
	if err != nil {
		return err
	}
	item, err := h.menu.Get(c.Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(dto.NewMenuItemResponse(item))
}

// Create handles POST /api/menu. The policy gate runs before any
// payload inspection; name and a non-negative price are required.
func (h *MenuHandler) Create(c *fiber.Ctx) error {
	status := h.resolver.Resolve(c)
	if !auth.CanMutateMenuItems(status.Role) {
		return util.NewUnauthorized("authentication required")
	}

	var payload dto.MenuPayload
	if err := c.BodyParser(&payload); err != nil {
		return util.NewValidationError("invalid payload", nil)
	}
	if payload.Name == nil || *payload.Name == "" || payload.Price == nil {
		return util.NewValidationError("name and price are required", nil)
	}
	if payload.Price.Float() < 0 {
		return util.NewValidationError("price cannot be negative", nil)
	}

	input := service.MenuCreateInput{
		Name:        *payload.Name,
		Description: payload.Description,
		Price:       string(*payload.Price),
		PhotoURL:    payload.PhotoURL,
		IsAvailable: payload.IsAvailable,
	}
	if payload.Popularity != nil {
		pop := int(*payload.Popularity)
		input.Popularity = &pop
	}

	item, err := h.menu.Create(c.Context(), status, input)
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(dto.NewMenuItemResponse(item))
}

// Update handles PUT /api/menu/:id.
func (h *MenuHandler) Update(c *fiber.Ctx) error {
	status := h.resolver.Resolve(c)
	if !auth.CanMutateMenuItems(status.Role) {
		return util.NewUnauthorized("authentication required")
	}
	id, err := parseID(c, "menu item")
	if err != nil {
		return err
	}

	var payload dto.MenuPayload
	if err := c.BodyParser(&payload); err != nil {
		return util.NewValidationError("invalid payload", nil)
	}
	if payload.Price != nil && payload.Price.Float() < 0 {
		return util.NewValidationError("price cannot be negative", nil)
	}

	input := service.MenuUpdateInput{
		Name:        payload.Name,
		Description: payload.Description,
		PhotoURL:    payload.PhotoURL,
		IsAvailable: payload.IsAvailable,
	}
	if payload.Price != nil {
		price := string(*payload.Price)
		input.Price = &price
	}
	if payload.Popularity != nil {
		pop := int(*payload.Popularity)
		input.Popularity = &pop
	}

	item, err := h.menu.Update(c.Context(), status, id, input)
	if err != nil {
		return err
	}
	return c.JSON(dto.NewMenuItemResponse(item))
}

// Delete handles DELETE /api/menu/:id.
func (h *MenuHandler) Delete(c *fiber.Ctx) error {
	status := h.resolver.Resolve(c)
	if !auth.CanMutateMenuItems(status.Role) {
		return util.NewUnauthorized("authentication required")
	}
	id, err := parseID(c, "menu item")
	if err != nil {
		return err
	}
	if err := h.menu.Delete(c.Context(), status, id); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": "menu item deleted successfully"})
}
