//go:build unit

package commands_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"lardocepet-api/internal/domain/booking"
	"lardocepet-api/internal/pkg/clock"
	"lardocepet-api/internal/usecase/commands"
	"lardocepet-api/internal/usecase/shared"
	"lardocepet-api/tests/common/builder"
	sharedmock "lardocepet-api/tests/mock/shared"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type BookingCommandsTestSuite struct {
	suite.Suite
	ctrl     *gomock.Controller
	hosts    *sharedmock.MockHostReader
	pets     *sharedmock.MockPetReader
	bookings *sharedmock.MockBookingReader
	writer   *sharedmock.MockBookingWriter
	commands commands.BookingCommands
}

func (s *BookingCommandsTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.hosts = sharedmock.NewMockHostReader(s.ctrl)
	s.pets = sharedmock.NewMockPetReader(s.ctrl)
	s.bookings = sharedmock.NewMockBookingReader(s.ctrl)
	s.writer = sharedmock.NewMockBookingWriter(s.ctrl)

	validator := commands.NewBookingValidator(s.hosts, s.pets, s.bookings,
		clock.NewMockClock(time.Date(2030, time.June, 1, 12, 0, 0, 0, time.UTC)))
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	s.commands = commands.NewBookingCommands(validator, s.hosts, s.writer,
		booking.NewDefaultPriceCalculator(), logger)
}

func (s *BookingCommandsTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestBookingCommandsSuite(t *testing.T) {
	suite.Run(t, new(BookingCommandsTestSuite))
}

func (s *BookingCommandsTestSuite) TestCreateBooking() {
	s.Run("accepted booking is priced and persisted as pendente", func() {
		b := builder.NewBookingBuilder().WithPets(100, 101)
		host := builder.NewHostBuilder().WithPrice(80).Build()

		// Validation pass, then a re-fetch for the quote.
		s.hosts.EXPECT().FindByID(gomock.Any(), b.HostID).Return(host, nil).Times(2)
		s.pets.EXPECT().FindByID(gomock.Any(), int64(100)).
			Return(builder.NewPetBuilder().WithID(100).Build(), nil)
		s.pets.EXPECT().FindByID(gomock.Any(), int64(101)).
			Return(builder.NewPetBuilder().WithID(101).WithName("Luna").Build(), nil)
		s.bookings.EXPECT().ActiveByHost(gomock.Any(), b.HostID).Return(nil, nil)
		s.bookings.EXPECT().ActiveByTutor(gomock.Any(), b.TutorID).Return(nil, nil)

		var inserted shared.NewBooking
		s.writer.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, in shared.NewBooking) (*shared.Booking, error) {
				inserted = in
				return b.Build(), nil
			})

		created, rejection, err := s.commands.CreateBooking(context.Background(), b.BuildCreateInput())

		s.Require().NoError(err)
		s.Nil(rejection)
		s.NotNil(created)

		s.Equal(booking.StatusPendente, inserted.Status)
		s.Equal(float64(80), inserted.ValorDiaria)
		s.Equal(2, inserted.QtdPets)
		s.Equal(5, inserted.QtdDias)
		// 80 per night, 5 nights, 2 pets.
		s.InDelta(800, inserted.ValorTotal, 1e-9)
	})

	s.Run("rejection short-circuits the insert", func() {
		in := builder.NewBookingBuilder().WithPets().BuildCreateInput()

		created, rejection, err := s.commands.CreateBooking(context.Background(), in)

		s.Require().NoError(err)
		s.Nil(created)
		s.Require().NotNil(rejection)
		s.Equal("select at least one pet", rejection.Reason)
	})
}

func (s *BookingCommandsTestSuite) TestUpdateBooking() {
	s.Run("only sent fields are patched", func() {
		status := booking.StatusConfirmada
		updated := builder.NewBookingBuilder().WithStatus(status).Build()
		s.writer.EXPECT().Update(gomock.Any(), int64(1000), map[string]any{"status": "confirmada"}).
			Return(updated, nil)

		got, err := s.commands.UpdateBooking(context.Background(), 1000,
			commands.UpdateBookingInput{Status: &status})

		s.Require().NoError(err)
		s.Equal(updated, got)
	})

	s.Run("empty update is refused", func() {
		_, err := s.commands.UpdateBooking(context.Background(), 1000, commands.UpdateBookingInput{})

		s.Error(err)
	})
}
