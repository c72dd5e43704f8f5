package request

import "lardocepet-api/internal/usecase/shared"

type CreatePetRequest struct {
	IDTutor      int64    `json:"id_tutor" binding:"required"`
	Nome         string   `json:"nome" binding:"required"`
	Especie      string   `json:"especie" binding:"required"`
	Raca         *string  `json:"raca,omitempty"`
	Idade        *int     `json:"idade,omitempty"`
	IdadeUnidade *string  `json:"idade_unidade,omitempty"`
	Peso         *float64 `json:"peso,omitempty"`
	PesoUnidade  *string  `json:"peso_unidade,omitempty"`
	Observacoes  *string  `json:"observacoes,omitempty"`
	FotosURLs    []string `json:"fotos_urls,omitempty"`
}

func (r CreatePetRequest) ToRecord() shared.NewPet {
	return shared.NewPet{
		TutorID:     r.IDTutor,
		Nome:        r.Nome,
		Especie:     r.Especie,
		Raca:        r.Raca,
		Idade:       r.Idade,
		IdadeUnit:   r.IdadeUnidade,
		Peso:        r.Peso,
		PesoUnit:    r.PesoUnidade,
		Observacoes: r.Observacoes,
		FotosURLs:   r.FotosURLs,
	}
}

type UpdatePetRequest struct {
	Nome         *string  `json:"nome,omitempty"`
	Especie      *string  `json:"especie,omitempty"`
	Raca         *string  `json:"raca,omitempty"`
	Idade        *int     `json:"idade,omitempty"`
	IdadeUnidade *string  `json:"idade_unidade,omitempty"`
	Peso         *float64 `json:"peso,omitempty"`
	PesoUnidade  *string  `json:"peso_unidade,omitempty"`
	Observacoes  *string  `json:"observacoes,omitempty"`
	FotosURLs    []string `json:"fotos_urls,omitempty"`
}

func (r UpdatePetRequest) ToFields() map[string]any {
	fields := map[string]any{}
	if r.Nome != nil {
		fields["nome"] = *r.Nome
	}
	if r.Especie != nil {
		fields["especie"] = *r.Especie
	}
	if r.Raca != nil {
		fields["raca"] = *r.Raca
	}
	if r.Idade != nil {
		fields["idade"] = *r.Idade
	}
	if r.IdadeUnidade != nil {
		fields["idade_unidade"] = *r.IdadeUnidade
	}
	if r.Peso != nil {
		fields["peso"] = *r.Peso
	}
	if r.PesoUnidade != nil {
		fields["peso_unidade"] = *r.PesoUnidade
	}
	if r.Observacoes != nil {
		fields["observacoes"] = *r.Observacoes
	}
	if r.FotosURLs != nil {
		fields["fotos_urls"] = r.FotosURLs
	}
	return fields
}
