package commands

import (
	"context"

	"lardocepet-api/internal/domain/booking"
	domreview "lardocepet-api/internal/domain/review"
	"lardocepet-api/internal/infra"
	"lardocepet-api/internal/pkg/errs"
	"lardocepet-api/internal/usecase/shared"
)

type ReviewInput struct {
	BookingID int64
	RaterID   int64
	RatedID   int64
	Nota      int
}

// ReviewValidator enforces review eligibility: completed booking, both sides
// participants, no self-review, one review per (booking, rater). Structurally
// the same fetch-then-check pipeline as the booking validator; on success it
// hands back the fetched booking so the caller persists against it without a
// second lookup.
type ReviewValidator struct {
	bookings shared.BookingReader
	reviews  shared.ReviewReader
}

func NewReviewValidator(bookings shared.BookingReader, reviews shared.ReviewReader) *ReviewValidator {
	return &ReviewValidator{bookings: bookings, reviews: reviews}
}

func (v *ReviewValidator) Validate(ctx context.Context, in ReviewInput) (*shared.Booking, *Rejection, error) {
	// 1. Score range, before any fetch.
	if _, err := domreview.NewNota(in.Nota); err != nil {
		return nil, reject(ClassInvalidInput, "score must be between 1 and 5"), nil
	}

	// 2. Booking exists.
	bookingRec, err := v.bookings.FindByID(ctx, in.BookingID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, reject(ClassNotFound, "booking not found"), nil
		}
		return nil, nil, errs.Mark(err, ErrStoreUnavailable)
	}

	// 3. Only completed stays can be reviewed.
	if bookingRec.Status != booking.StatusConcluida {
		return nil, reject(ClassConflict, "only completed bookings can be reviewed"), nil
	}

	// 4-6. Participant identity.
	if in.RaterID != bookingRec.TutorID && in.RaterID != bookingRec.HostID {
		return nil, reject(ClassForbidden, "you did not participate in this booking"), nil
	}
	if in.RatedID != bookingRec.TutorID && in.RatedID != bookingRec.HostID {
		return nil, reject(ClassInvalidInput, "rated user did not participate in this booking"), nil
	}
	if in.RaterID == in.RatedID {
		return nil, reject(ClassInvalidInput, "cannot review yourself"), nil
	}

	// 7. One review per (booking, rater).
	existing, err := v.reviews.FindByBookingAndRater(ctx, in.BookingID, in.RaterID)
	if err != nil {
		return nil, nil, errs.Mark(err, ErrStoreUnavailable)
	}
	if len(existing) > 0 {
		return nil, reject(ClassConflict, "you have already reviewed this booking"), nil
	}

	return bookingRec, nil, nil
}
