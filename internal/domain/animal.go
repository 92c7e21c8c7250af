package domain

import "time"

// AnimalSex enumerates the accepted sex values for an animal record.
type AnimalSex string

const (
	AnimalSexMale   AnimalSex = "MALE"
	AnimalSexFemale AnimalSex = "FEMALE"
)

// Animal is a cafe resident available (or not) for adoption.
type Animal struct {
	ID          int64
	Name        string
	PhotoURL    *string
	Age         *int
	Weight      *float64
	Sex         *AnimalSex
	Temperament *string
	Story       *string
	IsAdopted   bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
