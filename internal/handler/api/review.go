package api

import (
	"net/http"

	reqdto "lardocepet-api/internal/handler/dto/request"
	"lardocepet-api/internal/handler/httperr"
	"lardocepet-api/internal/usecase/commands"
	"lardocepet-api/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type ReviewHandler struct {
	commands commands.ReviewCommands
	queries  queries.ReviewQueries
}

func NewReviewHandler(cmds commands.ReviewCommands, qrys queries.ReviewQueries) *ReviewHandler {
	return &ReviewHandler{commands: cmds, queries: qrys}
}

func (h *ReviewHandler) Create(c *gin.Context) {
	var req reqdto.CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "invalid request format", nil)
		return
	}

	created, rejection, err := h.commands.CreateReview(c.Request.Context(), req.ToInput())
	if err != nil {
		respondError(c, err)
		return
	}
	if rejection != nil {
		httperr.AbortWithRejection(c, rejection)
		return
	}

	c.JSON(http.StatusCreated, created)
}

func (h *ReviewHandler) List(c *gin.Context) {
	reviews, err := h.queries.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, reviews)
}

func (h *ReviewHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	reviewRec, err := h.queries.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, reviewRec)
}

func (h *ReviewHandler) ListByBooking(c *gin.Context) {
	bookingID, ok := pathID(c, "id_reserva")
	if !ok {
		return
	}
	reviews, err := h.queries.ListByBooking(c.Request.Context(), bookingID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, reviews)
}

func (h *ReviewHandler) ListByRater(c *gin.Context) {
	raterID, ok := pathID(c, "id_avaliador")
	if !ok {
		return
	}
	reviews, err := h.queries.ListByRater(c.Request.Context(), raterID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, reviews)
}

func (h *ReviewHandler) ListByRated(c *gin.Context) {
	ratedID, ok := pathID(c, "id_avaliado")
	if !ok {
		return
	}
	reviews, err := h.queries.ListByRated(c.Request.Context(), ratedID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, reviews)
}

func (h *ReviewHandler) RatingSummary(c *gin.Context) {
	userID, ok := pathID(c, "id_usuario")
	if !ok {
		return
	}
	summary, err := h.queries.RatingSummary(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}

func (h *ReviewHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.commands.DeleteReview(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
