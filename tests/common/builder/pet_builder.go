//go:build unit

package builder

import (
	reqdto "lardocepet-api/internal/handler/dto/request"
	"lardocepet-api/internal/usecase/shared"
)

type PetBuilder struct {
	ID      int64
	TutorID int64
	Nome    string
	Especie string
}

func NewPetBuilder() *PetBuilder {
	return &PetBuilder{
		ID:      100,
		TutorID: 1,
		Nome:    "Rex",
		Especie: "cachorro",
	}
}

func (b *PetBuilder) WithID(id int64) *PetBuilder {
	b.ID = id
	return b
}

func (b *PetBuilder) WithTutorID(id int64) *PetBuilder {
	b.TutorID = id
	return b
}

func (b *PetBuilder) WithName(name string) *PetBuilder {
	b.Nome = name
	return b
}

func (b *PetBuilder) WithSpecies(especie string) *PetBuilder {
	b.Especie = especie
	return b
}

func (b *PetBuilder) Build() *shared.Pet {
	return &shared.Pet{
		ID:      b.ID,
		TutorID: b.TutorID,
		Nome:    b.Nome,
		Especie: b.Especie,
	}
}

func (b *PetBuilder) BuildCreateRequestDTO() reqdto.CreatePetRequest {
	return reqdto.CreatePetRequest{
		IDTutor: b.TutorID,
		Nome:    b.Nome,
		Especie: b.Especie,
	}
}
