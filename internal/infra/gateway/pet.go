package gateway

import (
	"context"

	"lardocepet-api/internal/infra"
	"lardocepet-api/internal/infra/supabase"
	"lardocepet-api/internal/usecase/shared"
)

const petsTable = "pets"

type PetStore struct {
	client *supabase.Client
}

func NewPetStore(client *supabase.Client) *PetStore {
	return &PetStore{client: client}
}

func (s *PetStore) FindByID(ctx context.Context, id int64) (*shared.Pet, error) {
	var rows []shared.Pet
	if err := s.client.Select(ctx, petsTable, []supabase.Filter{supabase.Eq("id_pet", id)}, &rows); err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, infra.WrapGatewayErr(infra.KindNotFound, "pet not found", nil)
	}
	return &rows[0], nil
}

func (s *PetStore) List(ctx context.Context) ([]shared.Pet, error) {
	var rows []shared.Pet
	if err := s.client.Select(ctx, petsTable, nil, &rows); err != nil {
		return nil, err
	}
	return rows, nil
}

func (s *PetStore) ListByTutor(ctx context.Context, tutorID int64) ([]shared.Pet, error) {
	var rows []shared.Pet
	if err := s.client.Select(ctx, petsTable, []supabase.Filter{supabase.Eq("id_tutor", tutorID)}, &rows); err != nil {
		return nil, err
	}
	return rows, nil
}

func (s *PetStore) Create(ctx context.Context, in shared.NewPet) (*shared.Pet, error) {
	var rows []shared.Pet
	if err := s.client.Insert(ctx, petsTable, in, &rows); err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, infra.WrapGatewayErr(infra.KindBadResponse, "insert returned no pet representation", nil)
	}
	return &rows[0], nil
}

func (s *PetStore) Update(ctx context.Context, id int64, fields map[string]any) (*shared.Pet, error) {
	var rows []shared.Pet
	if err := s.client.Update(ctx, petsTable, []supabase.Filter{supabase.Eq("id_pet", id)}, fields, &rows); err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, infra.WrapGatewayErr(infra.KindNotFound, "pet not found", nil)
	}
	return &rows[0], nil
}

func (s *PetStore) Delete(ctx context.Context, id int64) error {
	return s.client.Delete(ctx, petsTable, []supabase.Filter{supabase.Eq("id_pet", id)})
}
