package request

import (
	"lardocepet-api/internal/domain/booking"
	"lardocepet-api/internal/usecase/commands"
)

type CreateBookingRequest struct {
	IDTutor     int64        `json:"id_tutor" binding:"required"`
	IDAnfitriao int64        `json:"id_anfitriao" binding:"required"`
	DataInicio  booking.Date `json:"data_inicio" binding:"required"`
	DataFim     booking.Date `json:"data_fim" binding:"required"`
	PetsTutor   []int64      `json:"pets_tutor" binding:"required"`
	QtdPets     int          `json:"qtd_pets"`
}

func (r CreateBookingRequest) ToInput() commands.CreateBookingInput {
	return commands.CreateBookingInput{
		TutorID:    r.IDTutor,
		HostID:     r.IDAnfitriao,
		DataInicio: r.DataInicio,
		DataFim:    r.DataFim,
		PetIDs:     r.PetsTutor,
		QtdPets:    r.QtdPets,
	}
}

type UpdateBookingRequest struct {
	DataInicio *booking.Date `json:"data_inicio,omitempty"`
	DataFim    *booking.Date `json:"data_fim,omitempty"`
	Status     *string       `json:"status,omitempty"`
	PetsTutor  []int64       `json:"pets_tutor,omitempty"`
}

func (r UpdateBookingRequest) ToInput() commands.UpdateBookingInput {
	in := commands.UpdateBookingInput{
		DataInicio: r.DataInicio,
		DataFim:    r.DataFim,
		PetIDs:     r.PetsTutor,
	}
	if r.Status != nil {
		st := booking.Status(*r.Status)
		in.Status = &st
	}
	return in
}

func (r UpdateBookingRequest) StatusValid() bool {
	if r.Status == nil {
		return true
	}
	return booking.Status(*r.Status).IsValid()
}
