package queries

import (
	"context"

	"lardocepet-api/internal/usecase/shared"
)

type HostQueries interface {
	GetByID(ctx context.Context, id int64) (*shared.Host, error)
	List(ctx context.Context) ([]shared.Host, error)
}

type hostQueriesImpl struct {
	hosts shared.HostReader
}

func NewHostQueries(hosts shared.HostReader) HostQueries {
	return &hostQueriesImpl{hosts: hosts}
}

func (q *hostQueriesImpl) GetByID(ctx context.Context, id int64) (*shared.Host, error) {
	return q.hosts.FindByID(ctx, id)
}

func (q *hostQueriesImpl) List(ctx context.Context) ([]shared.Host, error) {
	return q.hosts.List(ctx)
}
