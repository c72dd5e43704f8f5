//go:build unit

package builder

import (
	"time"

	"lardocepet-api/internal/domain/booking"
	reqdto "lardocepet-api/internal/handler/dto/request"
	"lardocepet-api/internal/usecase/commands"
	"lardocepet-api/internal/usecase/shared"
)

// Default periods are fixed well in the future so validator tests can pin
// "today" below them with a mock clock.
type BookingBuilder struct {
	ID         int64
	TutorID    int64
	HostID     int64
	DataInicio booking.Date
	DataFim    booking.Date
	Status     booking.Status
	PetIDs     []int64
	QtdPets    int
}

func NewBookingBuilder() *BookingBuilder {
	return &BookingBuilder{
		ID:         1000,
		TutorID:    1,
		HostID:     10,
		DataInicio: booking.NewDate(2030, time.June, 10),
		DataFim:    booking.NewDate(2030, time.June, 15),
		Status:     booking.StatusPendente,
		PetIDs:     []int64{100},
		QtdPets:    1,
	}
}

func (b *BookingBuilder) WithID(id int64) *BookingBuilder {
	b.ID = id
	return b
}

func (b *BookingBuilder) WithTutorID(id int64) *BookingBuilder {
	b.TutorID = id
	return b
}

func (b *BookingBuilder) WithHostID(id int64) *BookingBuilder {
	b.HostID = id
	return b
}

func (b *BookingBuilder) WithPeriod(start, end booking.Date) *BookingBuilder {
	b.DataInicio = start
	b.DataFim = end
	return b
}

func (b *BookingBuilder) WithStatus(status booking.Status) *BookingBuilder {
	b.Status = status
	return b
}

func (b *BookingBuilder) WithPets(ids ...int64) *BookingBuilder {
	b.PetIDs = ids
	b.QtdPets = len(ids)
	return b
}

func (b *BookingBuilder) WithQtdPets(n int) *BookingBuilder {
	b.QtdPets = n
	return b
}

func (b *BookingBuilder) Build() *shared.Booking {
	return &shared.Booking{
		ID:         b.ID,
		TutorID:    b.TutorID,
		HostID:     b.HostID,
		DataInicio: b.DataInicio,
		DataFim:    b.DataFim,
		Status:     b.Status,
		PetIDs:     b.PetIDs,
		QtdPets:    b.QtdPets,
	}
}

func (b *BookingBuilder) BuildInput() commands.BookingInput {
	return commands.BookingInput{
		TutorID:    b.TutorID,
		HostID:     b.HostID,
		DataInicio: b.DataInicio,
		DataFim:    b.DataFim,
		PetIDs:     b.PetIDs,
		QtdPets:    b.QtdPets,
	}
}

func (b *BookingBuilder) BuildCreateInput() commands.CreateBookingInput {
	return commands.CreateBookingInput{
		TutorID:    b.TutorID,
		HostID:     b.HostID,
		DataInicio: b.DataInicio,
		DataFim:    b.DataFim,
		PetIDs:     b.PetIDs,
		QtdPets:    b.QtdPets,
	}
}

func (b *BookingBuilder) BuildCreateRequestDTO() reqdto.CreateBookingRequest {
	return reqdto.CreateBookingRequest{
		IDTutor:     b.TutorID,
		IDAnfitriao: b.HostID,
		DataInicio:  b.DataInicio,
		DataFim:     b.DataFim,
		PetsTutor:   b.PetIDs,
		QtdPets:     b.QtdPets,
	}
}
