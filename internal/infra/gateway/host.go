// Package gateway implements the store ports on top of the supabase client,
// one typed store per table.
package gateway

import (
	"context"

	"lardocepet-api/internal/infra"
	"lardocepet-api/internal/infra/supabase"
	"lardocepet-api/internal/usecase/shared"
)

const hostsTable = "anfitrioes"

type HostStore struct {
	client *supabase.Client
}

func NewHostStore(client *supabase.Client) *HostStore {
	return &HostStore{client: client}
}

func (s *HostStore) FindByID(ctx context.Context, id int64) (*shared.Host, error) {
	var rows []shared.Host
	if err := s.client.Select(ctx, hostsTable, []supabase.Filter{supabase.Eq("id_anfitriao", id)}, &rows); err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, infra.WrapGatewayErr(infra.KindNotFound, "host not found", nil)
	}
	return &rows[0], nil
}

func (s *HostStore) List(ctx context.Context) ([]shared.Host, error) {
	var rows []shared.Host
	if err := s.client.Select(ctx, hostsTable, nil, &rows); err != nil {
		return nil, err
	}
	return rows, nil
}

func (s *HostStore) Create(ctx context.Context, in shared.NewHost) (*shared.Host, error) {
	var rows []shared.Host
	if err := s.client.Insert(ctx, hostsTable, in, &rows); err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, infra.WrapGatewayErr(infra.KindBadResponse, "insert returned no host representation", nil)
	}
	return &rows[0], nil
}

func (s *HostStore) Update(ctx context.Context, id int64, fields map[string]any) (*shared.Host, error) {
	var rows []shared.Host
	if err := s.client.Update(ctx, hostsTable, []supabase.Filter{supabase.Eq("id_anfitriao", id)}, fields, &rows); err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, infra.WrapGatewayErr(infra.KindNotFound, "host not found", nil)
	}
	return &rows[0], nil
}

func (s *HostStore) Delete(ctx context.Context, id int64) error {
	return s.client.Delete(ctx, hostsTable, []supabase.Filter{supabase.Eq("id_anfitriao", id)})
}
