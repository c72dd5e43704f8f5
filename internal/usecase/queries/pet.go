package queries

import (
	"context"

	"lardocepet-api/internal/usecase/shared"
)

type PetQueries interface {
	GetByID(ctx context.Context, id int64) (*shared.Pet, error)
	List(ctx context.Context) ([]shared.Pet, error)
	ListByTutor(ctx context.Context, tutorID int64) ([]shared.Pet, error)
}

type petQueriesImpl struct {
	pets shared.PetReader
}

func NewPetQueries(pets shared.PetReader) PetQueries {
	return &petQueriesImpl{pets: pets}
}

func (q *petQueriesImpl) GetByID(ctx context.Context, id int64) (*shared.Pet, error) {
	return q.pets.FindByID(ctx, id)
}

func (q *petQueriesImpl) List(ctx context.Context) ([]shared.Pet, error) {
	return q.pets.List(ctx)
}

func (q *petQueriesImpl) ListByTutor(ctx context.Context, tutorID int64) ([]shared.Pet, error) {
	return q.pets.ListByTutor(ctx, tutorID)
}
