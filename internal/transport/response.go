package transport

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/cmvn/prestamos-gota-a-gota/internal/entity"

	"github.com/gin-gonic/gin"
)

// respondError maps domain sentinel errors to HTTP status codes.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, entity.ErrClienteNotFound),
		errors.Is(err, entity.ErrPrestamoNotFound),
		errors.Is(err, entity.ErrPagoNotFound),
		errors.Is(err, entity.ErrCobranzaNotFound),
		errors.Is(err, entity.ErrCobradorNotFound),
		errors.Is(err, entity.ErrRutaNotFound),
		errors.Is(err, entity.ErrUsuarioNotFound),
		errors.Is(err, entity.ErrNotificacionNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, entity.ErrCedulaAlreadyExists),
		errors.Is(err, entity.ErrEmailAlreadyInUse):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, entity.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
	case errors.Is(err, entity.ErrInactiveUsuario),
		errors.Is(err, entity.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	case errors.Is(err, entity.ErrInvalidFrecuencia),
		errors.Is(err, entity.ErrInvalidPlazo),
		errors.Is(err, entity.ErrInvalidInput):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}

func parseIDParam(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid " + name})
		return 0, false
	}
	return id, true
}

func parsePagination(c *gin.Context) (limit, offset int) {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "100"))
	if err != nil || limit <= 0 {
		limit = 100
	}
	offset, err = strconv.Atoi(c.DefaultQuery("offset", "0"))
	if err != nil || offset < 0 {
		offset = 0
	}
	return limit, offset
}
