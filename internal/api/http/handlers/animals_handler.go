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

// AnimalsHandler manages animal endpoints.
type AnimalsHandler struct {
	animals  *service.AnimalService
	resolver *auth.Resolver
}

// NewAnimalsHandler constructs handler.
func NewAnimalsHandler(animals *service.AnimalService, resolver *auth.Resolver) *AnimalsHandler {
	return &AnimalsHandler{animals: animals, resolver: resolver}
}

// List handles GET /api/animals. Public; the result set narrows for
// callers without view-all privilege.
func (h *AnimalsHandler) List(c *fiber.Ctx) error {
	status := h.resolver.Resolve(c)
	animals, err := h.animals.List(c.Context(), status)
	if err != nil {
		return err
	}
	return c.JSON(dto.NewAnimalList(animals))
}

// Get handles GET /api/animals/:id. Auth is resolved for uniformity
// even though single reads are public.
func (h *AnimalsHandler) Get(c *fiber.Ctx) error {
	_ = h.resolver.Resolve(c)
	id, err := parseID(c, "animal")
	if err != nil {
		return err
	}
	animal, err := h.animals.Get(c.Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(dto.NewAnimalResponse(animal))
}

// Create handles POST /api/animals. The policy gate runs before any
// payload inspection.
func (h *AnimalsHandler) Create(c *fiber.Ctx) error {
	status := h.resolver.Resolve(c)
	if !auth.CanMutateAnimals(status.Role) {
		return util.NewUnauthorized("authentication required")
	}

	var payload dto.AnimalPayload
	if err := c.BodyParser(&payload); err != nil {
		return util.NewValidationError("invalid payload", nil)
	}
	if payload.Name == nil || *payload.Name == "" {
		return util.NewValidationError("missing required field: name", nil)
	}

	input, err := animalInput(payload)
	if err != nil {
		return err
	}
	animal, err := h.animals.Create(c.Context(), status, service.AnimalCreateInput{
		Name:        *payload.Name,
		PhotoURL:    input.PhotoURL,
		Age:         input.Age,
		Weight:      input.Weight,
		Sex:         input.Sex,
		Temperament: input.Temperament,
		Story:       input.Story,
		IsAdopted:   input.IsAdopted,
	})
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(dto.NewAnimalResponse(animal))
}

// Update handles PUT /api/animals/:id.
func (h *AnimalsHandler) Update(c *fiber.Ctx) error {
	status := h.resolver.Resolve(c)
	if !auth.CanMutateAnimals(status.Role) {
		return util.NewUnauthorized("authentication required")
	}
	id, err := parseID(c, "animal")
	if err != nil {
		return err
	}

	var payload dto.AnimalPayload
	if err := c.BodyParser(&payload); err != nil {
		return util.NewValidationError("invalid payload", nil)
	}

	input, err := animalInput(payload)
	if err != nil {
		return err
	}
	animal, err := h.animals.Update(c.Context(), status, id, input)
	if err != nil {
		return err
	}
	return c.JSON(dto.NewAnimalResponse(animal))
}

// Delete handles DELETE /api/animals/:id.
func (h *AnimalsHandler) Delete(c *fiber.Ctx) error {
	status := h.resolver.Resolve(c)
	if !auth.CanMutateAnimals(status.Role) {
		return util.NewUnauthorized("authentication required")
	}
	id, err := parseID(c, "animal")
	if err != nil {
		return err
	}
	if err := h.animals.Delete(c.Context(), status, id); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": "animal deleted successfully"})
}

func animalInput(payload dto.AnimalPayload) (service.AnimalUpdateInput, error) {
	input := service.AnimalUpdateInput{
		Name:        payload.Name,
		PhotoURL:    payload.PhotoURL,
		Temperament: payload.Temperament,
		Story:       payload.Story,
		IsAdopted:   payload.IsAdopted,
	}
	if payload.Age != nil {
		age := int(*payload.Age)
		input.Age = &age
	}
	if payload.Weight != nil {
		weight := float64(*payload.Weight)
		input.Weight = &weight
	}
	if payload.Sex != nil {
		sex := domain.AnimalSex(*payload.Sex)
		if sex != domain.AnimalSexMale && sex != domain.AnimalSexFemale {
			return input, util.NewValidationError("sex must be MALE or FEMALE", nil)
		}
		input.Sex = &sex
	}
	return input, nil
}
