// Package shared holds the record shapes exchanged with the store gateway and
// the ports usecases consume them through. JSON tags follow the store's
// column names, which the API also exposes verbatim.
package shared

import (
	"lardocepet-api/internal/domain/booking"
)

type Host struct {
	ID              int64    `json:"id_anfitriao"`
	Descricao       *string  `json:"descricao,omitempty"`
	CapacidadeMax   int      `json:"capacidade_maxima"`
	Especies        []string `json:"especie"`
	TamanhoPet      *string  `json:"tamanho_pet,omitempty"`
	Preco           float64  `json:"preco"`
	Status          string   `json:"status"`
	FotosURLs       []string `json:"fotos_urls,omitempty"`
}

type Pet struct {
	ID          int64    `json:"id_pet"`
	TutorID     int64    `json:"id_tutor"`
	Nome        string   `json:"nome"`
	Especie     string   `json:"especie"`
	Raca        *string  `json:"raca,omitempty"`
	Idade       *int     `json:"idade,omitempty"`
	IdadeUnit   *string  `json:"idade_unidade,omitempty"`
	Peso        *float64 `json:"peso,omitempty"`
	PesoUnit    *string  `json:"peso_unidade,omitempty"`
	Observacoes *string  `json:"observacoes,omitempty"`
	FotosURLs   []string `json:"fotos_urls,omitempty"`
}

type Booking struct {
	ID          int64          `json:"id_reserva"`
	TutorID     int64          `json:"id_tutor"`
	HostID      int64          `json:"id_anfitriao"`
	DataInicio  booking.Date   `json:"data_inicio"`
	DataFim     booking.Date   `json:"data_fim"`
	Status      booking.Status `json:"status"`
	PetIDs      []int64        `json:"pets_tutor"`
	ValorDiaria float64        `json:"valor_diaria"`
	QtdPets     int            `json:"qtd_pets"`
	QtdDias     int            `json:"qtd_dias"`
	ValorTotal  float64        `json:"valor_total_reserva"`
}

// Period returns the stay range; ok is false when the stored dates are
// malformed, in which case the booking cannot take part in conflict checks.
func (b *Booking) Period() (booking.DateRange, bool) {
	rng, err := booking.NewDateRange(b.DataInicio, b.DataFim)
	if err != nil {
		return booking.DateRange{}, false
	}
	return rng, true
}

type Review struct {
	ID         int64   `json:"id_avaliacao"`
	BookingID  int64   `json:"id_reserva"`
	RaterID    int64   `json:"id_avaliador"`
	RatedID    int64   `json:"id_avaliado"`
	Nota       int     `json:"nota"`
	Comentario *string `json:"comentario,omitempty"`
}

// Insert payloads: same wire shape minus the store-assigned id.

type NewBooking struct {
	TutorID     int64          `json:"id_tutor"`
	HostID      int64          `json:"id_anfitriao"`
	DataInicio  booking.Date   `json:"data_inicio"`
	DataFim     booking.Date   `json:"data_fim"`
	Status      booking.Status `json:"status"`
	PetIDs      []int64        `json:"pets_tutor"`
	ValorDiaria float64        `json:"valor_diaria"`
	QtdPets     int            `json:"qtd_pets"`
	QtdDias     int            `json:"qtd_dias"`
	ValorTotal  float64        `json:"valor_total_reserva"`
}

type NewReview struct {
	BookingID  int64   `json:"id_reserva"`
	RaterID    int64   `json:"id_avaliador"`
	RatedID    int64   `json:"id_avaliado"`
	Nota       int     `json:"nota"`
	Comentario *string `json:"comentario,omitempty"`
}

type NewHost struct {
	ID            int64    `json:"id_anfitriao"`
	Descricao     *string  `json:"descricao,omitempty"`
	CapacidadeMax int      `json:"capacidade_maxima"`
	Especies      []string `json:"especie,omitempty"`
	TamanhoPet    *string  `json:"tamanho_pet,omitempty"`
	Preco         *float64 `json:"preco,omitempty"`
	Status        string   `json:"status"`
	FotosURLs     []string `json:"fotos_urls,omitempty"`
}

type NewPet struct {
	TutorID     int64    `json:"id_tutor"`
	Nome        string   `json:"nome"`
	Especie     string   `json:"especie"`
	Raca        *string  `json:"raca,omitempty"`
	Idade       *int     `json:"idade,omitempty"`
	IdadeUnit   *string  `json:"idade_unidade,omitempty"`
	Peso        *float64 `json:"peso,omitempty"`
	PesoUnit    *string  `json:"peso_unidade,omitempty"`
	Observacoes *string  `json:"observacoes,omitempty"`
	FotosURLs   []string `json:"fotos_urls,omitempty"`
}
