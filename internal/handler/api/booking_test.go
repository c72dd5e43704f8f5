//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"lardocepet-api/internal/handler/api"
	"lardocepet-api/internal/infra"
	"lardocepet-api/internal/usecase/commands"
	"lardocepet-api/internal/usecase/shared"
	"lardocepet-api/tests/common/builder"
	commonhttp "lardocepet-api/tests/common/httptest"
	commandsmock "lardocepet-api/tests/mock/commands"
	queriesmock "lardocepet-api/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type BookingHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockBookingCommands
	mockQueries  *queriesmock.MockBookingQueries
	handler      *api.BookingHandler
}

func (s *BookingHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockBookingCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockBookingQueries(s.mockCtrl)
	s.handler = api.NewBookingHandler(s.mockCommands, s.mockQueries)

	s.router.POST("/reservas", s.handler.Create)
	s.router.GET("/reservas/:id", s.handler.Get)
	s.router.GET("/reservas/tutor/:id_tutor", s.handler.ListByTutor)
	s.router.GET("/reservas/status/:status", s.handler.ListByStatus)
	s.router.PATCH("/reservas/:id", s.handler.Update)
	s.router.DELETE("/reservas/:id", s.handler.Delete)
}

func (s *BookingHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestBookingHandlerSuite(t *testing.T) {
	suite.Run(t, new(BookingHandlerTestSuite))
}

func (s *BookingHandlerTestSuite) TestCreate() {
	url := "/reservas"
	reqBody := builder.NewBookingBuilder().BuildCreateRequestDTO()

	s.Run("201 for an accepted booking", func() {
		created := builder.NewBookingBuilder().Build()
		s.mockCommands.EXPECT().CreateBooking(gomock.Any(), gomock.Any()).
			Return(created, nil, nil)

		rec := commonhttp.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody)

		var got shared.Booking
		commonhttp.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &got)
		s.Equal(created.ID, got.ID)
	})

	s.Run("rejection classes map to their status codes", func() {
		cases := []struct {
			class  commands.RejectionClass
			reason string
			status int
		}{
			{commands.ClassInvalidInput, "select at least one pet", http.StatusBadRequest},
			{commands.ClassNotFound, "host not found", http.StatusNotFound},
			{commands.ClassForbidden, "you did not participate in this booking", http.StatusForbidden},
			{commands.ClassConflict, "host not available", http.StatusConflict},
		}
		for _, tc := range cases {
			s.mockCommands.EXPECT().CreateBooking(gomock.Any(), gomock.Any()).
				Return(nil, &commands.Rejection{Class: tc.class, Reason: tc.reason}, nil)

			rec := commonhttp.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody)

			commonhttp.AssertErrorResponse(s.T(), rec, tc.status, tc.reason)
		}
	})

	s.Run("503 when the store is unavailable", func() {
		s.mockCommands.EXPECT().CreateBooking(gomock.Any(), gomock.Any()).
			Return(nil, nil, commands.ErrStoreUnavailable)

		rec := commonhttp.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody)

		commonhttp.AssertErrorResponse(s.T(), rec, http.StatusServiceUnavailable, "record store unavailable")
	})

	s.Run("400 for malformed body", func() {
		rec := commonhttp.PerformRequest(s.T(), s.router, http.MethodPost, url,
			map[string]any{"id_tutor": "not-a-number"})

		commonhttp.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "invalid request format")
	})
}

func (s *BookingHandlerTestSuite) TestGet() {
	s.Run("200 with the booking", func() {
		target := builder.NewBookingBuilder().Build()
		s.mockQueries.EXPECT().GetByID(gomock.Any(), int64(1000)).Return(target, nil)

		rec := commonhttp.PerformRequest(s.T(), s.router, http.MethodGet, "/reservas/1000", nil)

		var got shared.Booking
		commonhttp.AssertSuccessResponse(s.T(), rec, http.StatusOK, &got)
		s.Equal(target.ID, got.ID)
	})

	s.Run("404 for a missing booking", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), int64(9999)).
			Return(nil, infra.WrapGatewayErr(infra.KindNotFound, "booking not found", nil))

		rec := commonhttp.PerformRequest(s.T(), s.router, http.MethodGet, "/reservas/9999", nil)

		commonhttp.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "record not found")
	})

	s.Run("503 when the store cannot be reached", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), int64(1000)).
			Return(nil, infra.WrapGatewayErr(infra.KindUpstream, "record store unreachable", nil))

		rec := commonhttp.PerformRequest(s.T(), s.router, http.MethodGet, "/reservas/1000", nil)

		commonhttp.AssertErrorResponse(s.T(), rec, http.StatusServiceUnavailable, "record store unavailable")
	})

	s.Run("400 for a non-numeric id", func() {
		rec := commonhttp.PerformRequest(s.T(), s.router, http.MethodGet, "/reservas/abc", nil)

		commonhttp.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "invalid id in path")
	})
}

func (s *BookingHandlerTestSuite) TestFilteredLists() {
	s.Run("by tutor", func() {
		s.mockQueries.EXPECT().ListByTutor(gomock.Any(), int64(1)).
			Return([]shared.Booking{*builder.NewBookingBuilder().Build()}, nil)

		rec := commonhttp.PerformRequest(s.T(), s.router, http.MethodGet, "/reservas/tutor/1", nil)

		var got []shared.Booking
		commonhttp.AssertSuccessResponse(s.T(), rec, http.StatusOK, &got)
		s.Len(got, 1)
	})

	s.Run("by status", func() {
		s.mockQueries.EXPECT().ListByStatus(gomock.Any(), "pendente").
			Return([]shared.Booking{}, nil)

		rec := commonhttp.PerformRequest(s.T(), s.router, http.MethodGet, "/reservas/status/pendente", nil)

		var got []shared.Booking
		commonhttp.AssertSuccessResponse(s.T(), rec, http.StatusOK, &got)
		s.Empty(got)
	})
}

func (s *BookingHandlerTestSuite) TestUpdate() {
	s.Run("200 on success", func() {
		updated := builder.NewBookingBuilder().Build()
		s.mockCommands.EXPECT().UpdateBooking(gomock.Any(), int64(1000), gomock.Any()).
			Return(updated, nil)

		rec := commonhttp.PerformRequest(s.T(), s.router, http.MethodPatch, "/reservas/1000",
			map[string]any{"status": "confirmada"})

		var got shared.Booking
		commonhttp.AssertSuccessResponse(s.T(), rec, http.StatusOK, &got)
	})

	s.Run("400 for an unknown status value", func() {
		rec := commonhttp.PerformRequest(s.T(), s.router, http.MethodPatch, "/reservas/1000",
			map[string]any{"status": "whatever"})

		commonhttp.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "invalid booking status")
	})
}

func (s *BookingHandlerTestSuite) TestDelete() {
	s.mockCommands.EXPECT().DeleteBooking(gomock.Any(), int64(1000)).Return(nil)

	rec := commonhttp.PerformRequest(s.T(), s.router, http.MethodDelete, "/reservas/1000", nil)

	s.Equal(http.StatusNoContent, rec.Code)
}
