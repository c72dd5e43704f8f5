package commands

import (
	"context"
	"log/slog"

	"lardocepet-api/internal/domain/booking"
	"lardocepet-api/internal/pkg/errs"
	"lardocepet-api/internal/usecase/shared"
)

var ErrBookingNotFound = errs.New("booking not found")

type CreateBookingInput struct {
	TutorID    int64
	HostID     int64
	DataInicio booking.Date
	DataFim    booking.Date
	PetIDs     []int64
	QtdPets    int
}

type UpdateBookingInput struct {
	DataInicio *booking.Date
	DataFim    *booking.Date
	Status     *booking.Status
	PetIDs     []int64
}

type BookingCommands interface {
	// CreateBooking validates the candidate and persists it when accepted. A
	// non-nil Rejection means the booking was refused by a business rule; an
	// error means the store could not be consulted or written.
	CreateBooking(ctx context.Context, in CreateBookingInput) (*shared.Booking, *Rejection, error)
	UpdateBooking(ctx context.Context, id int64, in UpdateBookingInput) (*shared.Booking, error)
	DeleteBooking(ctx context.Context, id int64) error
}

type bookingCommandsImpl struct {
	validator *BookingValidator
	hosts     shared.HostReader
	writer    shared.BookingWriter
	pricing   booking.PriceCalculator
	logger    *slog.Logger
}

func NewBookingCommands(
	validator *BookingValidator,
	hosts shared.HostReader,
	writer shared.BookingWriter,
	pricing booking.PriceCalculator,
	logger *slog.Logger,
) BookingCommands {
	return &bookingCommandsImpl{
		validator: validator,
		hosts:     hosts,
		writer:    writer,
		pricing:   pricing,
		logger:    logger,
	}
}

// CreateBooking runs validate-then-insert. The two steps are not atomic: a
// concurrent submission for the same host and period can pass validation on
// both sides before either insert lands. The store is expected to carry a
// range-exclusion constraint on (host, period); when it does, the losing
// insert surfaces as a duplicate-key conflict rather than a double booking.
func (c *bookingCommandsImpl) CreateBooking(ctx context.Context, in CreateBookingInput) (*shared.Booking, *Rejection, error) {
	rejection, err := c.validator.Validate(ctx, BookingInput{
		TutorID:    in.TutorID,
		HostID:     in.HostID,
		DataInicio: in.DataInicio,
		DataFim:    in.DataFim,
		PetIDs:     in.PetIDs,
		QtdPets:    in.QtdPets,
	})
	if err != nil {
		return nil, nil, err
	}
	if rejection != nil {
		c.logger.Info("booking rejected",
			"tutor_id", in.TutorID, "host_id", in.HostID,
			"class", string(rejection.Class), "reason", rejection.Reason)
		return nil, rejection, nil
	}

	hostRec, err := c.hosts.FindByID(ctx, in.HostID)
	if err != nil {
		return nil, nil, errs.Mark(err, ErrStoreUnavailable)
	}
	period, err := booking.NewDateRange(in.DataInicio, in.DataFim)
	if err != nil {
		// Unreachable after validation; kept for safety of the quote below.
		return nil, reject(ClassInvalidInput, "end date must be after start date"), nil
	}
	quote := c.pricing.Quote(hostRec.Preco, in.QtdPets, period)

	created, err := c.writer.Create(ctx, shared.NewBooking{
		TutorID:     in.TutorID,
		HostID:      in.HostID,
		DataInicio:  in.DataInicio,
		DataFim:     in.DataFim,
		Status:      booking.StatusPendente,
		PetIDs:      in.PetIDs,
		ValorDiaria: quote.ValorDiaria,
		QtdPets:     quote.QtdPets,
		QtdDias:     quote.QtdDias,
		ValorTotal:  quote.ValorTotal,
	})
	if err != nil {
		return nil, nil, err
	}

	c.logger.Info("booking created",
		"booking_id", created.ID, "tutor_id", created.TutorID, "host_id", created.HostID,
		"period", period.String(), "total", created.ValorTotal)
	return created, nil, nil
}

func (c *bookingCommandsImpl) UpdateBooking(ctx context.Context, id int64, in UpdateBookingInput) (*shared.Booking, error) {
	fields := map[string]any{}
	if in.DataInicio != nil {
		fields["data_inicio"] = in.DataInicio.String()
	}
	if in.DataFim != nil {
		fields["data_fim"] = in.DataFim.String()
	}
	if in.Status != nil {
		fields["status"] = in.Status.String()
	}
	if in.PetIDs != nil {
		fields["pets_tutor"] = in.PetIDs
	}
	if len(fields) == 0 {
		return nil, errs.New("no fields to update")
	}
	return c.writer.Update(ctx, id, fields)
}

func (c *bookingCommandsImpl) DeleteBooking(ctx context.Context, id int64) error {
	return c.writer.Delete(ctx, id)
}
