//go:build unit

package builder

import (
	reqdto "lardocepet-api/internal/handler/dto/request"
	"lardocepet-api/internal/usecase/shared"
)

type HostBuilder struct {
	ID            int64
	CapacidadeMax int
	Especies      []string
	Preco         float64
	Status        string
}

func NewHostBuilder() *HostBuilder {
	return &HostBuilder{
		ID:            10,
		CapacidadeMax: 3,
		Especies:      []string{"cachorro", "gato"},
		Preco:         80,
		Status:        "ativo",
	}
}

func (b *HostBuilder) WithID(id int64) *HostBuilder {
	b.ID = id
	return b
}

func (b *HostBuilder) WithCapacity(n int) *HostBuilder {
	b.CapacidadeMax = n
	return b
}

func (b *HostBuilder) WithSpecies(names ...string) *HostBuilder {
	b.Especies = names
	return b
}

func (b *HostBuilder) WithPrice(p float64) *HostBuilder {
	b.Preco = p
	return b
}

func (b *HostBuilder) WithStatus(status string) *HostBuilder {
	b.Status = status
	return b
}

func (b *HostBuilder) Build() *shared.Host {
	return &shared.Host{
		ID:            b.ID,
		CapacidadeMax: b.CapacidadeMax,
		Especies:      b.Especies,
		Preco:         b.Preco,
		Status:        b.Status,
	}
}

func (b *HostBuilder) BuildCreateRequestDTO() reqdto.CreateHostRequest {
	return reqdto.CreateHostRequest{
		IDAnfitriao:      b.ID,
		CapacidadeMaxima: b.CapacidadeMax,
		Especie:          b.Especies,
		Preco:            &b.Preco,
		Status:           b.Status,
	}
}
