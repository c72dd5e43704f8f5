package commands

import (
	"context"
	"log/slog"

	domreview "lardocepet-api/internal/domain/review"
	"lardocepet-api/internal/pkg/errs"
	"lardocepet-api/internal/usecase/shared"
)

var ErrReviewNotFound = errs.New("review not found")

type CreateReviewInput struct {
	BookingID  int64
	RaterID    int64
	RatedID    int64
	Nota       int
	Comentario *string
}

type ReviewCommands interface {
	// CreateReview validates eligibility and persists the review. A non-nil
	// Rejection is a refused submission; an error is a store failure. The
	// duplicate check is idempotent-reject: once a review exists for the
	// (booking, rater) pair, every resubmission is refused.
	CreateReview(ctx context.Context, in CreateReviewInput) (*shared.Review, *Rejection, error)
	DeleteReview(ctx context.Context, id int64) error
}

type reviewCommandsImpl struct {
	validator *ReviewValidator
	writer    shared.ReviewWriter
	logger    *slog.Logger
}

func NewReviewCommands(validator *ReviewValidator, writer shared.ReviewWriter, logger *slog.Logger) ReviewCommands {
	return &reviewCommandsImpl{validator: validator, writer: writer, logger: logger}
}

func (c *reviewCommandsImpl) CreateReview(ctx context.Context, in CreateReviewInput) (*shared.Review, *Rejection, error) {
	_, rejection, err := c.validator.Validate(ctx, ReviewInput{
		BookingID: in.BookingID,
		RaterID:   in.RaterID,
		RatedID:   in.RatedID,
		Nota:      in.Nota,
	})
	if err != nil {
		return nil, nil, err
	}
	if rejection != nil {
		return nil, rejection, nil
	}

	var comentario *string
	if in.Comentario != nil {
		comment, cerr := domreview.NewComment(*in.Comentario)
		if cerr != nil {
			return nil, reject(ClassInvalidInput, "comment is too long"), nil
		}
		if !comment.IsEmpty() {
			text := comment.String()
			comentario = &text
		}
	}

	created, err := c.writer.Create(ctx, shared.NewReview{
		BookingID:  in.BookingID,
		RaterID:    in.RaterID,
		RatedID:    in.RatedID,
		Nota:       in.Nota,
		Comentario: comentario,
	})
	if err != nil {
		return nil, nil, err
	}

	c.logger.Info("review created",
		"review_id", created.ID, "booking_id", created.BookingID, "rater_id", created.RaterID)
	return created, nil, nil
}

func (c *reviewCommandsImpl) DeleteReview(ctx context.Context, id int64) error {
	return c.writer.Delete(ctx, id)
}
