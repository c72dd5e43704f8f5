package api

import (
	"net/http"

	reqdto "lardocepet-api/internal/handler/dto/request"
	"lardocepet-api/internal/handler/httperr"
	"lardocepet-api/internal/usecase/commands"
	"lardocepet-api/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type BookingHandler struct {
	commands commands.BookingCommands
	queries  queries.BookingQueries
}

func NewBookingHandler(cmds commands.BookingCommands, qrys queries.BookingQueries) *BookingHandler {
	return &BookingHandler{commands: cmds, queries: qrys}
}

// Create validates the candidate booking against the business rules and
// persists it when accepted.
func (h *BookingHandler) Create(c *gin.Context) {
	var req reqdto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "invalid request format", nil)
		return
	}

	created, rejection, err := h.commands.CreateBooking(c.Request.Context(), req.ToInput())
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

func (h *BookingHandler) List(c *gin.Context) {
	bookings, err := h.queries.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, bookings)
}

func (h *BookingHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	bookingRec, err := h.queries.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, bookingRec)
}

func (h *BookingHandler) ListByTutor(c *gin.Context) {
	tutorID, ok := pathID(c, "id_tutor")
	if !ok {
		return
	}
	bookings, err := h.queries.ListByTutor(c.Request.Context(), tutorID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, bookings)
}

func (h *BookingHandler) ListByHost(c *gin.Context) {
	hostID, ok := pathID(c, "id_anfitriao")
	if !ok {
		return
	}
	bookings, err := h.queries.ListByHost(c.Request.Context(), hostID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, bookings)
}

func (h *BookingHandler) ListByStatus(c *gin.Context) {
	bookings, err := h.queries.ListByStatus(c.Request.Context(), c.Param("status"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, bookings)
}

// Update is a passthrough for the externally driven lifecycle transitions
// (confirmation, completion, cancellation) and date edits.
func (h *BookingHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req reqdto.UpdateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "invalid request format", nil)
		return
	}
	if !req.StatusValid() {
		httperr.AbortWithError(c, http.StatusBadRequest, errInvalidBookingStatus, "invalid booking status", nil)
		return
	}

	updated, err := h.commands.UpdateBooking(c.Request.Context(), id, req.ToInput())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (h *BookingHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.commands.DeleteBooking(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
