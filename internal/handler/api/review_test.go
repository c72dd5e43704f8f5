//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"lardocepet-api/internal/handler/api"
	"lardocepet-api/internal/usecase/commands"
	"lardocepet-api/internal/usecase/queries"
	"lardocepet-api/internal/usecase/shared"
	"lardocepet-api/tests/common/builder"
	commonhttp "lardocepet-api/tests/common/httptest"
	commandsmock "lardocepet-api/tests/mock/commands"
	queriesmock "lardocepet-api/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ReviewHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockReviewCommands
	mockQueries  *queriesmock.MockReviewQueries
	handler      *api.ReviewHandler
}

func (s *ReviewHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockReviewCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockReviewQueries(s.mockCtrl)
	s.handler = api.NewReviewHandler(s.mockCommands, s.mockQueries)

	s.router.POST("/avaliacoes", s.handler.Create)
	s.router.GET("/avaliacoes/:id", s.handler.Get)
	s.router.GET("/avaliacoes/avaliado/:id_avaliado", s.handler.ListByRated)
	s.router.GET("/avaliacoes/media/:id_usuario", s.handler.RatingSummary)
	s.router.DELETE("/avaliacoes/:id", s.handler.Delete)
}

func (s *ReviewHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestReviewHandlerSuite(t *testing.T) {
	suite.Run(t, new(ReviewHandlerTestSuite))
}

func (s *ReviewHandlerTestSuite) TestCreate() {
	url := "/avaliacoes"
	reqBody := builder.NewReviewBuilder().BuildCreateRequestDTO()

	s.Run("201 for an eligible review", func() {
		created := builder.NewReviewBuilder().Build()
		s.mockCommands.EXPECT().CreateReview(gomock.Any(), gomock.Any()).
			Return(created, nil, nil)

		rec := commonhttp.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody)

		var got shared.Review
		commonhttp.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &got)
		s.Equal(created.ID, got.ID)
	})

	s.Run("409 for a booking not yet completed", func() {
		s.mockCommands.EXPECT().CreateReview(gomock.Any(), gomock.Any()).
			Return(nil, &commands.Rejection{
				Class:  commands.ClassConflict,
				Reason: "only completed bookings can be reviewed",
			}, nil)

		rec := commonhttp.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody)

		commonhttp.AssertErrorResponse(s.T(), rec, http.StatusConflict, "only completed bookings can be reviewed")
	})

	s.Run("403 for a non-participant rater", func() {
		s.mockCommands.EXPECT().CreateReview(gomock.Any(), gomock.Any()).
			Return(nil, &commands.Rejection{
				Class:  commands.ClassForbidden,
				Reason: "you did not participate in this booking",
			}, nil)

		rec := commonhttp.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody)

		commonhttp.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "you did not participate in this booking")
	})

	s.Run("409 for a duplicate review", func() {
		s.mockCommands.EXPECT().CreateReview(gomock.Any(), gomock.Any()).
			Return(nil, &commands.Rejection{
				Class:  commands.ClassConflict,
				Reason: "you have already reviewed this booking",
			}, nil)

		rec := commonhttp.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody)

		commonhttp.AssertErrorResponse(s.T(), rec, http.StatusConflict, "you have already reviewed this booking")
	})

	s.Run("503 when the store is unavailable", func() {
		s.mockCommands.EXPECT().CreateReview(gomock.Any(), gomock.Any()).
			Return(nil, nil, commands.ErrStoreUnavailable)

		rec := commonhttp.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody)

		commonhttp.AssertErrorResponse(s.T(), rec, http.StatusServiceUnavailable, "record store unavailable")
	})

	s.Run("400 for missing required fields", func() {
		rec := commonhttp.PerformRequest(s.T(), s.router, http.MethodPost, url,
			map[string]any{"nota": 5})

		commonhttp.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "invalid request format")
	})
}

func (s *ReviewHandlerTestSuite) TestRatingSummary() {
	s.mockQueries.EXPECT().RatingSummary(gomock.Any(), int64(10)).
		Return(&queries.UserRatingSummary{UserID: 10, Media: 4.33, Total: 3}, nil)

	rec := commonhttp.PerformRequest(s.T(), s.router, http.MethodGet, "/avaliacoes/media/10", nil)

	var got queries.UserRatingSummary
	commonhttp.AssertSuccessResponse(s.T(), rec, http.StatusOK, &got)
	s.Equal(int64(10), got.UserID)
	s.InDelta(4.33, got.Media, 1e-9)
	s.Equal(3, got.Total)
}

func (s *ReviewHandlerTestSuite) TestListByRated() {
	s.mockQueries.EXPECT().ListByRated(gomock.Any(), int64(10)).
		Return([]shared.Review{*builder.NewReviewBuilder().Build()}, nil)

	rec := commonhttp.PerformRequest(s.T(), s.router, http.MethodGet, "/avaliacoes/avaliado/10", nil)

	var got []shared.Review
	commonhttp.AssertSuccessResponse(s.T(), rec, http.StatusOK, &got)
	s.Len(got, 1)
}

func (s *ReviewHandlerTestSuite) TestDelete() {
	s.mockCommands.EXPECT().DeleteReview(gomock.Any(), int64(500)).Return(nil)

	rec := commonhttp.PerformRequest(s.T(), s.router, http.MethodDelete, "/avaliacoes/500", nil)

	s.Equal(http.StatusNoContent, rec.Code)
}
