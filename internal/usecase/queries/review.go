package queries

import (
	"context"
	"math"

	"lardocepet-api/internal/usecase/shared"
)

// UserRatingSummary is the aggregate the profile page shows.
type UserRatingSummary struct {
	UserID int64   `json:"id_usuario"`
	Media  float64 `json:"media_avaliacoes"`
	Total  int     `json:"total_avaliacoes"`
}

type ReviewQueries interface {
	GetByID(ctx context.Context, id int64) (*shared.Review, error)
	List(ctx context.Context) ([]shared.Review, error)
	ListByBooking(ctx context.Context, bookingID int64) ([]shared.Review, error)
	ListByRater(ctx context.Context, raterID int64) ([]shared.Review, error)
	ListByRated(ctx context.Context, ratedID int64) ([]shared.Review, error)
	RatingSummary(ctx context.Context, userID int64) (*UserRatingSummary, error)
}

type reviewQueriesImpl struct {
	reviews shared.ReviewReader
}

func NewReviewQueries(reviews shared.ReviewReader) ReviewQueries {
	return &reviewQueriesImpl{reviews: reviews}
}

func (q *reviewQueriesImpl) GetByID(ctx context.Context, id int64) (*shared.Review, error) {
	return q.reviews.FindByID(ctx, id)
}

func (q *reviewQueriesImpl) List(ctx context.Context) ([]shared.Review, error) {
	return q.reviews.List(ctx)
}

func (q *reviewQueriesImpl) ListByBooking(ctx context.Context, bookingID int64) ([]shared.Review, error) {
	return q.reviews.ListByBooking(ctx, bookingID)
}

func (q *reviewQueriesImpl) ListByRater(ctx context.Context, raterID int64) ([]shared.Review, error) {
	return q.reviews.ListByRater(ctx, raterID)
}

func (q *reviewQueriesImpl) ListByRated(ctx context.Context, ratedID int64) ([]shared.Review, error) {
	return q.reviews.ListByRated(ctx, ratedID)
}

// RatingSummary averages the scores a user has received, rounded to two
// decimals. A user with no reviews has a zero average, not an error.
func (q *reviewQueriesImpl) RatingSummary(ctx context.Context, userID int64) (*UserRatingSummary, error) {
	received, err := q.reviews.ListByRated(ctx, userID)
	if err != nil {
		return nil, err
	}

	summary := &UserRatingSummary{UserID: userID, Total: len(received)}
	if len(received) == 0 {
		return summary, nil
	}

	sum := 0
	for _, r := range received {
		sum += r.Nota
	}
	summary.Media = math.Round(float64(sum)/float64(len(received))*100) / 100
	return summary, nil
}
