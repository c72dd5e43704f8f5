// Package queries holds the read-side services: thin, filterable passthroughs
// to the record store.
package queries

import (
	"context"

	"lardocepet-api/internal/usecase/shared"
)

type BookingQueries interface {
	GetByID(ctx context.Context, id int64) (*shared.Booking, error)
	List(ctx context.Context) ([]shared.Booking, error)
	ListByTutor(ctx context.Context, tutorID int64) ([]shared.Booking, error)
	ListByHost(ctx context.Context, hostID int64) ([]shared.Booking, error)
	ListByStatus(ctx context.Context, status string) ([]shared.Booking, error)
}

type bookingQueriesImpl struct {
	bookings shared.BookingReader
}

func NewBookingQueries(bookings shared.BookingReader) BookingQueries {
	return &bookingQueriesImpl{bookings: bookings}
}

func (q *bookingQueriesImpl) GetByID(ctx context.Context, id int64) (*shared.Booking, error) {
	return q.bookings.FindByID(ctx, id)
}

func (q *bookingQueriesImpl) List(ctx context.Context) ([]shared.Booking, error) {
	return q.bookings.List(ctx)
}

func (q *bookingQueriesImpl) ListByTutor(ctx context.Context, tutorID int64) ([]shared.Booking, error) {
	return q.bookings.ListByTutor(ctx, tutorID)
}

func (q *bookingQueriesImpl) ListByHost(ctx context.Context, hostID int64) ([]shared.Booking, error) {
	return q.bookings.ListByHost(ctx, hostID)
}

func (q *bookingQueriesImpl) ListByStatus(ctx context.Context, status string) ([]shared.Booking, error) {
	return q.bookings.ListByStatus(ctx, status)
}
