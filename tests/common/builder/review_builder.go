//go:build unit

package builder

import (
	reqdto "lardocepet-api/internal/handler/dto/request"
	"lardocepet-api/internal/usecase/commands"
	"lardocepet-api/internal/usecase/shared"
)

type ReviewBuilder struct {
	ID         int64
	BookingID  int64
	RaterID    int64
	RatedID    int64
	Nota       int
	Comentario *string
}

func NewReviewBuilder() *ReviewBuilder {
	comment := "Cuidou muito bem do Rex!"
	return &ReviewBuilder{
		ID:         500,
		BookingID:  1000,
		RaterID:    1,
		RatedID:    10,
		Nota:       5,
		Comentario: &comment,
	}
}

func (b *ReviewBuilder) WithID(id int64) *ReviewBuilder {
	b.ID = id
	return b
}

func (b *ReviewBuilder) WithBookingID(id int64) *ReviewBuilder {
	b.BookingID = id
	return b
}

func (b *ReviewBuilder) WithRaterID(id int64) *ReviewBuilder {
	b.RaterID = id
	return b
}

func (b *ReviewBuilder) WithRatedID(id int64) *ReviewBuilder {
	b.RatedID = id
	return b
}

func (b *ReviewBuilder) WithNota(nota int) *ReviewBuilder {
	b.Nota = nota
	return b
}

func (b *ReviewBuilder) WithComment(comment string) *ReviewBuilder {
	b.Comentario = &comment
	return b
}

func (b *ReviewBuilder) WithoutComment() *ReviewBuilder {
	b.Comentario = nil
	return b
}

func (b *ReviewBuilder) Build() *shared.Review {
	return &shared.Review{
		ID:         b.ID,
		BookingID:  b.BookingID,
		RaterID:    b.RaterID,
		RatedID:    b.RatedID,
		Nota:       b.Nota,
		Comentario: b.Comentario,
	}
}

func (b *ReviewBuilder) BuildInput() commands.ReviewInput {
	return commands.ReviewInput{
		BookingID: b.BookingID,
		RaterID:   b.RaterID,
		RatedID:   b.RatedID,
		Nota:      b.Nota,
	}
}

func (b *ReviewBuilder) BuildCreateInput() commands.CreateReviewInput {
	return commands.CreateReviewInput{
		BookingID:  b.BookingID,
		RaterID:    b.RaterID,
		RatedID:    b.RatedID,
		Nota:       b.Nota,
		Comentario: b.Comentario,
	}
}

func (b *ReviewBuilder) BuildCreateRequestDTO() reqdto.CreateReviewRequest {
	return reqdto.CreateReviewRequest{
		IDReserva:   b.BookingID,
		IDAvaliador: b.RaterID,
		IDAvaliado:  b.RatedID,
		Nota:        b.Nota,
		Comentario:  b.Comentario,
	}
}
