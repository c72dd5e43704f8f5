package shared

import "context"

//go:generate mockgen -source=ports.go -destination=../../../tests/mock/shared/ports.go -package=sharedmock

// Readers return GatewayError(KindNotFound) for single-record lookups that
// match nothing; list lookups return empty slices. Transport failures surface
// as KindUpstream/KindBadResponse and abort the caller's check pipeline.

type HostReader interface {
	FindByID(ctx context.Context, id int64) (*Host, error)
	List(ctx context.Context) ([]Host, error)
}

type PetReader interface {
	FindByID(ctx context.Context, id int64) (*Pet, error)
	List(ctx context.Context) ([]Pet, error)
	ListByTutor(ctx context.Context, tutorID int64) ([]Pet, error)
}

type BookingReader interface {
	FindByID(ctx context.Context, id int64) (*Booking, error)
	List(ctx context.Context) ([]Booking, error)
	ListByTutor(ctx context.Context, tutorID int64) ([]Booking, error)
	ListByHost(ctx context.Context, hostID int64) ([]Booking, error)
	ListByStatus(ctx context.Context, status string) ([]Booking, error)
	// ActiveByHost and ActiveByTutor restrict to the active status set at the
	// store, in store order.
	ActiveByHost(ctx context.Context, hostID int64) ([]Booking, error)
	ActiveByTutor(ctx context.Context, tutorID int64) ([]Booking, error)
}

type ReviewReader interface {
	FindByID(ctx context.Context, id int64) (*Review, error)
	List(ctx context.Context) ([]Review, error)
	ListByBooking(ctx context.Context, bookingID int64) ([]Review, error)
	ListByRater(ctx context.Context, raterID int64) ([]Review, error)
	ListByRated(ctx context.Context, ratedID int64) ([]Review, error)
	// FindByBookingAndRater backs the one-review-per-(booking, rater) rule.
	FindByBookingAndRater(ctx context.Context, bookingID, raterID int64) ([]Review, error)
}

type BookingWriter interface {
	Create(ctx context.Context, in NewBooking) (*Booking, error)
	Update(ctx context.Context, id int64, fields map[string]any) (*Booking, error)
	Delete(ctx context.Context, id int64) error
}

type ReviewWriter interface {
	Create(ctx context.Context, in NewReview) (*Review, error)
	Delete(ctx context.Context, id int64) error
}

type HostWriter interface {
	Create(ctx context.Context, in NewHost) (*Host, error)
	Update(ctx context.Context, id int64, fields map[string]any) (*Host, error)
	Delete(ctx context.Context, id int64) error
}

type PetWriter interface {
	Create(ctx context.Context, in NewPet) (*Pet, error)
	Update(ctx context.Context, id int64, fields map[string]any) (*Pet, error)
	Delete(ctx context.Context, id int64) error
}
