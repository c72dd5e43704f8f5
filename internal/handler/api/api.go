package api

import (
	"errors"
	"net/http"
	"strconv"

	"lardocepet-api/internal/handler/httperr"
	"lardocepet-api/internal/infra"
	"lardocepet-api/internal/pkg/errs"
	"lardocepet-api/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

var errInvalidBookingStatus = errs.New("invalid booking status")

func pathID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "invalid id in path", nil)
		return 0, false
	}
	return id, true
}

// respondError maps gateway/usecase failures that are not validation
// rejections. Upstream unavailability is always a 503, never a 404: callers
// must be able to tell "store down" from "record missing".
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, commands.ErrStoreUnavailable) || infra.IsUnavailable(err):
		httperr.AbortWithError(c, http.StatusServiceUnavailable, err, "record store unavailable, try again later", nil)
	case infra.IsKind(err, infra.KindNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "record not found", nil)
	case infra.IsKind(err, infra.KindDuplicateKey):
		httperr.AbortWithError(c, http.StatusConflict, err, "record already exists", nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
	}
}
