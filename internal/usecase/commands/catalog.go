package commands

import (
	"context"

	"lardocepet-api/internal/usecase/shared"
)

// Host and pet management is plain passthrough: the workflow that vets hosts
// and the pet profile editor live outside this service, so no business
// validation happens here beyond request shape.

type HostCommands interface {
	CreateHost(ctx context.Context, in shared.NewHost) (*shared.Host, error)
	UpdateHost(ctx context.Context, id int64, fields map[string]any) (*shared.Host, error)
	DeleteHost(ctx context.Context, id int64) error
}

type hostCommandsImpl struct {
	writer shared.HostWriter
}

func NewHostCommands(writer shared.HostWriter) HostCommands {
	return &hostCommandsImpl{writer: writer}
}

func (c *hostCommandsImpl) CreateHost(ctx context.Context, in shared.NewHost) (*shared.Host, error) {
	return c.writer.Create(ctx, in)
}

func (c *hostCommandsImpl) UpdateHost(ctx context.Context, id int64, fields map[string]any) (*shared.Host, error) {
	return c.writer.Update(ctx, id, fields)
}

func (c *hostCommandsImpl) DeleteHost(ctx context.Context, id int64) error {
	return c.writer.Delete(ctx, id)
}

type PetCommands interface {
	CreatePet(ctx context.Context, in shared.NewPet) (*shared.Pet, error)
	UpdatePet(ctx context.Context, id int64, fields map[string]any) (*shared.Pet, error)
	DeletePet(ctx context.Context, id int64) error
}

type petCommandsImpl struct {
	writer shared.PetWriter
}

func NewPetCommands(writer shared.PetWriter) PetCommands {
	return &petCommandsImpl{writer: writer}
}

func (c *petCommandsImpl) CreatePet(ctx context.Context, in shared.NewPet) (*shared.Pet, error) {
	return c.writer.Create(ctx, in)
}

func (c *petCommandsImpl) UpdatePet(ctx context.Context, id int64, fields map[string]any) (*shared.Pet, error) {
	return c.writer.Update(ctx, id, fields)
}

func (c *petCommandsImpl) DeletePet(ctx context.Context, id int64) error {
	return c.writer.Delete(ctx, id)
}
