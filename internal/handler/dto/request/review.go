package request

import "lardocepet-api/internal/usecase/commands"

type CreateReviewRequest struct {
	IDReserva   int64   `json:"id_reserva" binding:"required"`
	IDAvaliador int64   `json:"id_avaliador" binding:"required"`
	IDAvaliado  int64   `json:"id_avaliado" binding:"required"`
	Nota        int     `json:"nota" binding:"required"`
	Comentario  *string `json:"comentario,omitempty"`
}

func (r CreateReviewRequest) ToInput() commands.CreateReviewInput {
	return commands.CreateReviewInput{
		BookingID:  r.IDReserva,
		RaterID:    r.IDAvaliador,
		RatedID:    r.IDAvaliado,
		Nota:       r.Nota,
		Comentario: r.Comentario,
	}
}
