package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/kawaf/petcafe-service/internal/api/dto"
	"github.com/kawaf/petcafe-service/internal/auth"
	"github.com/kawaf/petcafe-service/internal/service"
	"github.com/kawaf/petcafe-service/pkg/util"
)

// EventsHandler manages event endpoints.
type EventsHandler struct {
	events   *service.EventService
	resolver *auth.Resolver
}

// NewEventsHandler constructs handler.
func NewEventsHandler(events *service.EventService, resolver *auth.Resolver) *EventsHandler {
	return &EventsHandler{events: events, resolver: resolver}
}

// List handles GET /api/events.
func (h *EventsHandler) List(c *fiber.Ctx) error {
	status := h.resolver.Resolve(c)
	items, err := h.events.List(c.Context(), status)
	if err != nil {
		return err
	}
	return c.JSON(dto.NewEventList(items))
}

// Get handles GET /api/events/:id.
func (h *EventsHandler) Get(c *fiber.Ctx) error {
	_ = h.resolver.Resolve(c)
	id, err := parseID(c, "event")
	if err != nil {
		return err
	}
	event, err := h.events.Get(c.Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(dto.NewEventResponse(event))
}

// Create handles POST /api/events. The policy gate runs before any
// payload inspection; a title and a parseable date are required.
func (h *EventsHandler) Create(c *fiber.Ctx) error {
	status := h.resolver.Resolve(c)
	if !auth.CanMutateEvents(status.Role) {
		return util.NewUnauthorized("authentication required")
	}

	var payload dto.EventPayload
	if err := c.BodyParser(&payload); err != nil {
		return util.NewValidationError("invalid payload", nil)
	}
	date, ok := payload.ParseDate()
	if payload.Title == nil || *payload.Title == "" || !ok {
		return util.NewValidationError("missing required fields: title and a valid date", nil)
	}

	event, err := h.events.Create(c.Context(), status, service.EventCreateInput{
		Title:       *payload.Title,
		Description: payload.Description,
		Date:        date,
		PhotoURL:    payload.PhotoURL,
		Location:    payload.Location,
	})
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(dto.NewEventResponse(event))
}

// Update handles PUT /api/events/:id. A provided date must parse.
func (h *EventsHandler) Update(c *fiber.Ctx) error {
	status := h.resolver.Resolve(c)
	if !auth.CanMutateEvents(status.Role) {
		return util.NewUnauthorized("authentication required")
	}
	id, err := parseID(c, "event")
	if err != nil {
		return err
	}

	var payload dto.EventPayload
	if err := c.BodyParser(&payload); err != nil {
		return util.NewValidationError("invalid payload", nil)
	}

	input := service.EventUpdateInput{
		Title:       payload.Title,
		Description: payload.Description,
		PhotoURL:    payload.PhotoURL,
		Location:    payload.Location,
	}
	if payload.Date != nil {
		date, ok := payload.ParseDate()
		if !ok {
			return util.NewValidationError("invalid date format", nil)
		}
		input.Date = &date
	}

	event, err := h.events.Update(c.Context(), status, id, input)
	if err != nil {
		return err
	}
	return c.JSON(dto.NewEventResponse(event))
}

// Delete handles DELETE /api/events/:id.
func (h *EventsHandler) Delete(c *fiber.Ctx) error {
	status := h.resolver.Resolve(c)
	if !auth.CanMutateEvents(status.Role) {
		return util.NewUnauthorized("authentication required")
	}
	id, err := parseID(c, "event")
	if err != nil {
		return err
	}
	if err := h.events.Delete(c.Context(), status, id); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": "event deleted successfully"})
}
