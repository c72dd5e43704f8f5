package api

import (
	"net/http"

	reqdto "lardocepet-api/internal/handler/dto/request"
	"lardocepet-api/internal/handler/httperr"
	"lardocepet-api/internal/usecase/commands"
	"lardocepet-api/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type HostHandler struct {
	commands commands.HostCommands
	queries  queries.HostQueries
}

func NewHostHandler(cmds commands.HostCommands, qrys queries.HostQueries) *HostHandler {
	return &HostHandler{commands: cmds, queries: qrys}
}

func (h *HostHandler) Create(c *gin.Context) {
	var req reqdto.CreateHostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "invalid request format", nil)
		return
	}
	created, err := h.commands.CreateHost(c.Request.Context(), req.ToRecord())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *HostHandler) List(c *gin.Context) {
	hosts, err := h.queries.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, hosts)
}

func (h *HostHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	hostRec, err := h.queries.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, hostRec)
}

func (h *HostHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req reqdto.UpdateHostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "invalid request format", nil)
		return
	}
	updated, err := h.commands.UpdateHost(c.Request.Context(), id, req.ToFields())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (h *HostHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.commands.DeleteHost(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
