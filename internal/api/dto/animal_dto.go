package dto

import (
	"time"

	"github.com/kawaf/petcafe-service/internal/domain"
)

// AnimalPayload covers create and update requests; all fields are
// optional so updates stay partial.
type AnimalPayload struct {
	Name        *string    `json:"name"`
	PhotoURL    *string    `json:"photoUrl"`
	Age         *FlexInt   `json:"age"`
	Weight      *FlexFloat `json:"weight"`
	Sex         *string    `json:"sex"`
	Temperament *string    `json:"temperament"`
	Story       *string    `json:"story"`
	IsAdopted   *bool      `json:"isAdopted"`
}

// AnimalResponse is the wire shape for an animal record.
type AnimalResponse struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	PhotoURL    *string   `json:"photoUrl"`
	Age         *int      `json:"age"`
	Weight      *float64  `json:"weight"`
	Sex         *string   `json:"sex"`
	Temperament *string   `json:"temperament"`
	Story       *string   `json:"story"`
	IsAdopted   bool      `json:"isAdopted"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// NewAnimalResponse maps a domain animal to its wire shape.
func NewAnimalResponse(a *domain.Animal) AnimalResponse {
	var sex *string
	if a.Sex != nil {
		s := string(*a.Sex)
		sex = &s
	}
	return AnimalResponse{
		ID:          a.ID,
		Name:        a.Name,
		PhotoURL:    a.PhotoURL,
		Age:         a.Age,
		Weight:      a.Weight,
		Sex:         sex,
		Temperament: a.Temperament,
		Story:       a.Story,
		IsAdopted:   a.IsAdopted,
		CreatedAt:   a.CreatedAt,
		UpdatedAt:   a.UpdatedAt,
	}
}

// NewAnimalList maps a slice of domain animals.
func NewAnimalList(animals []domain.Animal) []AnimalResponse {
	out := make([]AnimalResponse, 0, len(animals))
	for i := range animals {
		out = append(out, NewAnimalResponse(&animals[i]))
	}
	return out
}
