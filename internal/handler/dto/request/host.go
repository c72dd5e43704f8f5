package request

import "lardocepet-api/internal/usecase/shared"

type CreateHostRequest struct {
	IDAnfitriao      int64    `json:"id_anfitriao" binding:"required"`
	Descricao        *string  `json:"descricao,omitempty"`
	CapacidadeMaxima int      `json:"capacidade_maxima" binding:"required,min=1"`
	Especie          []string `json:"especie,omitempty"`
	TamanhoPet       *string  `json:"tamanho_pet,omitempty"`
	Preco            *float64 `json:"preco,omitempty"`
	Status           string   `json:"status,omitempty"`
	FotosURLs        []string `json:"fotos_urls,omitempty"`
}

func (r CreateHostRequest) ToRecord() shared.NewHost {
	status := r.Status
	if status == "" {
		status = "pendente"
	}
	return shared.NewHost{
		ID:            r.IDAnfitriao,
		Descricao:     r.Descricao,
		CapacidadeMax: r.CapacidadeMaxima,
		Especies:      r.Especie,
		TamanhoPet:    r.TamanhoPet,
		Preco:         r.Preco,
		Status:        status,
		FotosURLs:     r.FotosURLs,
	}
}

type UpdateHostRequest struct {
	Descricao        *string  `json:"descricao,omitempty"`
	CapacidadeMaxima *int     `json:"capacidade_maxima,omitempty" binding:"omitempty,min=1"`
	Especie          []string `json:"especie,omitempty"`
	TamanhoPet       *string  `json:"tamanho_pet,omitempty"`
	Preco            *float64 `json:"preco,omitempty"`
	Status           *string  `json:"status,omitempty"`
	FotosURLs        []string `json:"fotos_urls,omitempty"`
}

// ToFields builds the PATCH payload from the fields the caller actually sent.
func (r UpdateHostRequest) ToFields() map[string]any {
	fields := map[string]any{}
	if r.Descricao != nil {
		fields["descricao"] = *r.Descricao
	}
	if r.CapacidadeMaxima != nil {
		fields["capacidade_maxima"] = *r.CapacidadeMaxima
	}
	if r.Especie != nil {
		fields["especie"] = r.Especie
	}
	if r.TamanhoPet != nil {
		fields["tamanho_pet"] = *r.TamanhoPet
	}
	if r.Preco != nil {
		fields["preco"] = *r.Preco
	}
	if r.Status != nil {
		fields["status"] = *r.Status
	}
	if r.FotosURLs != nil {
		fields["fotos_urls"] = r.FotosURLs
	}
	return fields
}
