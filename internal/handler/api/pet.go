package api

import (
	"net/http"

	reqdto "lardocepet-api/internal/handler/dto/request"
	"lardocepet-api/internal/handler/httperr"
	"lardocepet-api/internal/usecase/commands"
	"lardocepet-api/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type PetHandler struct {
	commands commands.PetCommands
	queries  queries.PetQueries
}

func NewPetHandler(cmds commands.PetCommands, qrys queries.PetQueries) *PetHandler {
	return &PetHandler{commands: cmds, queries: qrys}
}

func (h *PetHandler) Create(c *gin.Context) {
	var req reqdto.CreatePetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "invalid request format", nil)
		return
	}
	created, err := h.commands.CreatePet(c.Request.Context(), req.ToRecord())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *PetHandler) List(c *gin.Context) {
	pets, err := h.queries.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, pets)
}

func (h *PetHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	petRec, err := h.queries.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, petRec)
}

func (h *PetHandler) ListByTutor(c *gin.Context) {
	tutorID, ok := pathID(c, "id_tutor")
	if !ok {
		return
	}
	pets, err := h.queries.ListByTutor(c.Request.Context(), tutorID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, pets)
}

func (h *PetHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req reqdto.UpdatePetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "invalid request format", nil)
		return
	}
	updated, err := h.commands.UpdatePet(c.Request.Context(), id, req.ToFields())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (h *PetHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.commands.DeletePet(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
