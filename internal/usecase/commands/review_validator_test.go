//go:build unit

package commands_test

import (
	"context"
	"errors"
	"testing"

	"lardocepet-api/internal/domain/booking"
	"lardocepet-api/internal/infra"
	"lardocepet-api/internal/usecase/commands"
	"lardocepet-api/internal/usecase/shared"
	"lardocepet-api/tests/common/builder"
	sharedmock "lardocepet-api/tests/mock/shared"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ReviewValidatorTestSuite struct {
	suite.Suite
	ctrl      *gomock.Controller
	bookings  *sharedmock.MockBookingReader
	reviews   *sharedmock.MockReviewReader
	validator *commands.ReviewValidator
}

func (s *ReviewValidatorTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.bookings = sharedmock.NewMockBookingReader(s.ctrl)
	s.reviews = sharedmock.NewMockReviewReader(s.ctrl)
	s.validator = commands.NewReviewValidator(s.bookings, s.reviews)
}

func (s *ReviewValidatorTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestReviewValidatorSuite(t *testing.T) {
	suite.Run(t, new(ReviewValidatorTestSuite))
}

// completedBooking is the default review target: tutor 1 reviewed host 10.
func completedBooking() *shared.Booking {
	return builder.NewBookingBuilder().WithStatus(booking.StatusConcluida).Build()
}

func (s *ReviewValidatorTestSuite) expectBooking(b *shared.Booking) {
	s.bookings.EXPECT().FindByID(gomock.Any(), b.ID).Return(b, nil)
}

func (s *ReviewValidatorTestSuite) expectNoExistingReview(bookingID, raterID int64) {
	s.reviews.EXPECT().FindByBookingAndRater(gomock.Any(), bookingID, raterID).Return(nil, nil)
}

func (s *ReviewValidatorTestSuite) validate(in commands.ReviewInput) (*shared.Booking, *commands.Rejection, error) {
	return s.validator.Validate(context.Background(), in)
}

func (s *ReviewValidatorTestSuite) TestAccepted() {
	s.Run("tutor reviews host", func() {
		in := builder.NewReviewBuilder().BuildInput()
		target := completedBooking()
		s.expectBooking(target)
		s.expectNoExistingReview(in.BookingID, in.RaterID)

		got, rejection, err := s.validate(in)

		s.Require().NoError(err)
		s.Nil(rejection)
		s.Equal(target, got)
	})

	s.Run("host reviews tutor", func() {
		in := builder.NewReviewBuilder().WithRaterID(10).WithRatedID(1).BuildInput()
		s.expectBooking(completedBooking())
		s.expectNoExistingReview(in.BookingID, in.RaterID)

		got, rejection, err := s.validate(in)

		s.Require().NoError(err)
		s.Nil(rejection)
		s.NotNil(got)
	})
}

func (s *ReviewValidatorTestSuite) TestScoreRangeCheckedBeforeAnyFetch() {
	for _, nota := range []int{0, 6, -3} {
		in := builder.NewReviewBuilder().WithNota(nota).BuildInput()

		got, rejection, err := s.validate(in)

		s.Require().NoError(err)
		s.Require().NotNil(rejection)
		s.Nil(got)
		s.Equal(commands.ClassInvalidInput, rejection.Class)
		s.Equal("score must be between 1 and 5", rejection.Reason)
	}
}

func (s *ReviewValidatorTestSuite) TestBookingExistence() {
	in := builder.NewReviewBuilder().BuildInput()
	s.bookings.EXPECT().FindByID(gomock.Any(), in.BookingID).
		Return(nil, infra.WrapGatewayErr(infra.KindNotFound, "booking not found", nil))

	got, rejection, err := s.validate(in)

	s.Require().NoError(err)
	s.Require().NotNil(rejection)
	s.Nil(got)
	s.Equal(commands.ClassNotFound, rejection.Class)
	s.Equal("booking not found", rejection.Reason)
}

func (s *ReviewValidatorTestSuite) TestOnlyCompletedBookings() {
	for _, status := range []booking.Status{
		booking.StatusPendente,
		booking.StatusConfirmada,
		booking.StatusEmAndamento,
		booking.StatusCancelada,
	} {
		s.Run(status.String(), func() {
			in := builder.NewReviewBuilder().BuildInput()
			s.expectBooking(builder.NewBookingBuilder().WithStatus(status).Build())

			_, rejection, err := s.validate(in)

			s.Require().NoError(err)
			s.Require().NotNil(rejection)
			s.Equal(commands.ClassConflict, rejection.Class)
			s.Equal("only completed bookings can be reviewed", rejection.Reason)
		})
	}
}

func (s *ReviewValidatorTestSuite) TestParticipantChecks() {
	s.Run("rater outside the booking", func() {
		in := builder.NewReviewBuilder().WithRaterID(42).BuildInput()
		s.expectBooking(completedBooking())

		_, rejection, err := s.validate(in)

		s.Require().NoError(err)
		s.Require().NotNil(rejection)
		s.Equal(commands.ClassForbidden, rejection.Class)
		s.Equal("you did not participate in this booking", rejection.Reason)
	})

	s.Run("rated outside the booking", func() {
		in := builder.NewReviewBuilder().WithRatedID(42).BuildInput()
		s.expectBooking(completedBooking())

		_, rejection, err := s.validate(in)

		s.Require().NoError(err)
		s.Require().NotNil(rejection)
		s.Equal(commands.ClassInvalidInput, rejection.Class)
		s.Equal("rated user did not participate in this booking", rejection.Reason)
	})

	s.Run("self-review", func() {
		in := builder.NewReviewBuilder().WithRaterID(1).WithRatedID(1).BuildInput()
		s.expectBooking(completedBooking())

		_, rejection, err := s.validate(in)

		s.Require().NoError(err)
		s.Require().NotNil(rejection)
		s.Equal(commands.ClassInvalidInput, rejection.Class)
		s.Equal("cannot review yourself", rejection.Reason)
	})
}

func (s *ReviewValidatorTestSuite) TestDuplicateReviewAlwaysRejected() {
	in := builder.NewReviewBuilder().BuildInput()
	existing := builder.NewReviewBuilder().Build()

	// Resubmitting after a review exists is rejected every time, with the
	// same verdict.
	for i := 0; i < 2; i++ {
		s.expectBooking(completedBooking())
		s.reviews.EXPECT().FindByBookingAndRater(gomock.Any(), in.BookingID, in.RaterID).
			Return([]shared.Review{*existing}, nil)

		_, rejection, err := s.validate(in)

		s.Require().NoError(err)
		s.Require().NotNil(rejection)
		s.Equal(commands.ClassConflict, rejection.Class)
		s.Equal("you have already reviewed this booking", rejection.Reason)
	}
}

func (s *ReviewValidatorTestSuite) TestStoreFailures() {
	upstream := infra.WrapGatewayErr(infra.KindUpstream, "record store unreachable", errors.New("dial tcp: timeout"))

	s.Run("booking fetch fails", func() {
		in := builder.NewReviewBuilder().BuildInput()
		s.bookings.EXPECT().FindByID(gomock.Any(), in.BookingID).Return(nil, upstream)

		_, rejection, err := s.validate(in)

		s.Require().ErrorIs(err, commands.ErrStoreUnavailable)
		s.Nil(rejection)
	})

	s.Run("duplicate lookup fails", func() {
		in := builder.NewReviewBuilder().BuildInput()
		s.expectBooking(completedBooking())
		s.reviews.EXPECT().FindByBookingAndRater(gomock.Any(), in.BookingID, in.RaterID).
			Return(nil, upstream)

		_, rejection, err := s.validate(in)

		s.Require().ErrorIs(err, commands.ErrStoreUnavailable)
		s.Nil(rejection)
	})
}
