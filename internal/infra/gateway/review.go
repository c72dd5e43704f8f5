package gateway

import (
	"context"

	"lardocepet-api/internal/infra"
	"lardocepet-api/internal/infra/supabase"
	"lardocepet-api/internal/usecase/shared"
)

const reviewsTable = "avaliacoes"

type ReviewStore struct {
	client *supabase.Client
}

func NewReviewStore(client *supabase.Client) *ReviewStore {
	return &ReviewStore{client: client}
}

func (s *ReviewStore) FindByID(ctx context.Context, id int64) (*shared.Review, error) {
	var rows []shared.Review
	if err := s.client.Select(ctx, reviewsTable, []supabase.Filter{supabase.Eq("id_avaliacao", id)}, &rows); err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, infra.WrapGatewayErr(infra.KindNotFound, "review not found", nil)
	}
	return &rows[0], nil
}

func (s *ReviewStore) List(ctx context.Context) ([]shared.Review, error) {
	return s.selectReviews(ctx, nil)
}

func (s *ReviewStore) ListByBooking(ctx context.Context, bookingID int64) ([]shared.Review, error) {
	return s.selectReviews(ctx, []supabase.Filter{supabase.Eq("id_reserva", bookingID)})
}

func (s *ReviewStore) ListByRater(ctx context.Context, raterID int64) ([]shared.Review, error) {
	return s.selectReviews(ctx, []supabase.Filter{supabase.Eq("id_avaliador", raterID)})
}

func (s *ReviewStore) ListByRated(ctx context.Context, ratedID int64) ([]shared.Review, error) {
	return s.selectReviews(ctx, []supabase.Filter{supabase.Eq("id_avaliado", ratedID)})
}

func (s *ReviewStore) FindByBookingAndRater(ctx context.Context, bookingID, raterID int64) ([]shared.Review, error) {
	return s.selectReviews(ctx, []supabase.Filter{
		supabase.Eq("id_reserva", bookingID),
		supabase.Eq("id_avaliador", raterID),
	})
}

func (s *ReviewStore) Create(ctx context.Context, in shared.NewReview) (*shared.Review, error) {
	var rows []shared.Review
	if err := s.client.Insert(ctx, reviewsTable, in, &rows); err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, infra.WrapGatewayErr(infra.KindBadResponse, "insert returned no review representation", nil)
	}
	return &rows[0], nil
}

func (s *ReviewStore) Delete(ctx context.Context, id int64) error {
	return s.client.Delete(ctx, reviewsTable, []supabase.Filter{supabase.Eq("id_avaliacao", id)})
}

func (s *ReviewStore) selectReviews(ctx context.Context, filters []supabase.Filter) ([]shared.Review, error) {
	var rows []shared.Review
	if err := s.client.Select(ctx, reviewsTable, filters, &rows); err != nil {
		return nil, err
	}
	return rows, nil
}
