package gateway

import (
	"context"

	"lardocepet-api/internal/domain/booking"
	"lardocepet-api/internal/infra"
	"lardocepet-api/internal/infra/supabase"
	"lardocepet-api/internal/usecase/shared"
)

const bookingsTable = "reservas"

type BookingStore struct {
	client *supabase.Client
}

func NewBookingStore(client *supabase.Client) *BookingStore {
	return &BookingStore{client: client}
}

func (s *BookingStore) FindByID(ctx context.Context, id int64) (*shared.Booking, error) {
	var rows []shared.Booking
	if err := s.client.Select(ctx, bookingsTable, []supabase.Filter{supabase.Eq("id_reserva", id)}, &rows); err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, infra.WrapGatewayErr(infra.KindNotFound, "booking not found", nil)
	}
	return &rows[0], nil
}

func (s *BookingStore) List(ctx context.Context) ([]shared.Booking, error) {
	return s.selectBookings(ctx, nil)
}

func (s *BookingStore) ListByTutor(ctx context.Context, tutorID int64) ([]shared.Booking, error) {
	return s.selectBookings(ctx, []supabase.Filter{supabase.Eq("id_tutor", tutorID)})
}

func (s *BookingStore) ListByHost(ctx context.Context, hostID int64) ([]shared.Booking, error) {
	return s.selectBookings(ctx, []supabase.Filter{supabase.Eq("id_anfitriao", hostID)})
}

func (s *BookingStore) ListByStatus(ctx context.Context, status string) ([]shared.Booking, error) {
	return s.selectBookings(ctx, []supabase.Filter{supabase.Eq("status", status)})
}

func (s *BookingStore) ActiveByHost(ctx context.Context, hostID int64) ([]shared.Booking, error) {
	return s.selectBookings(ctx, []supabase.Filter{
		supabase.Eq("id_anfitriao", hostID),
		activeStatusFilter(),
	})
}

func (s *BookingStore) ActiveByTutor(ctx context.Context, tutorID int64) ([]shared.Booking, error) {
	return s.selectBookings(ctx, []supabase.Filter{
		supabase.Eq("id_tutor", tutorID),
		activeStatusFilter(),
	})
}

func (s *BookingStore) Create(ctx context.Context, in shared.NewBooking) (*shared.Booking, error) {
	var rows []shared.Booking
	if err := s.client.Insert(ctx, bookingsTable, in, &rows); err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, infra.WrapGatewayErr(infra.KindBadResponse, "insert returned no booking representation", nil)
	}
	return &rows[0], nil
}

func (s *BookingStore) Update(ctx context.Context, id int64, fields map[string]any) (*shared.Booking, error) {
	var rows []shared.Booking
	if err := s.client.Update(ctx, bookingsTable, []supabase.Filter{supabase.Eq("id_reserva", id)}, fields, &rows); err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, infra.WrapGatewayErr(infra.KindNotFound, "booking not found", nil)
	}
	return &rows[0], nil
}

func (s *BookingStore) Delete(ctx context.Context, id int64) error {
	return s.client.Delete(ctx, bookingsTable, []supabase.Filter{supabase.Eq("id_reserva", id)})
}

func (s *BookingStore) selectBookings(ctx context.Context, filters []supabase.Filter) ([]shared.Booking, error) {
	var rows []shared.Booking
	if err := s.client.Select(ctx, bookingsTable, filters, &rows); err != nil {
		return nil, err
	}
	return rows, nil
}

func activeStatusFilter() supabase.Filter {
	statuses := booking.ActiveStatuses()
	names := make([]string, len(statuses))
	for i, st := range statuses {
		names[i] = st.String()
	}
	return supabase.In("status", names...)
}
