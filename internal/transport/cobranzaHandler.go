package transport

import (
	"net/http"
	"time"

	"github.com/cmvn/prestamos-gota-a-gota/internal/service"

	"github.com/gin-gonic/gin"
)

type CobranzaHandler struct {
	cobranzaService service.CobranzaService
}

func NewCobranzaHandler(cobranzaService service.CobranzaService) *CobranzaHandler {
	return &CobranzaHandler{cobranzaService: cobranzaService}
}

func (h *CobranzaHandler) CreateCobranza(c *gin.Context) {
	var req service.CreateCobranzaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	cobranza, err := h.cobranzaService.CreateCobranza(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, cobranza)
}

func (h *CobranzaHandler) GetCobranza(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	cobranza, err := h.cobranzaService.GetCobranza(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, cobranza)
}

func (h *CobranzaHandler) UpdateCobranza(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req service.UpdateCobranzaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	cobranza, err := h.cobranzaService.UpdateCobranza(c.Request.Context(), id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, cobranza)
}

func (h *CobranzaHandler) GetCobranzasByCobrador(c *gin.Context) {
	cobradorID, ok := parseIDParam(c, "cobrador_id")
	if !ok {
		return
	}

	fecha, ok := parseFechaQuery(c, "fecha", time.Now())
	if !ok {
		return
	}

	cobranzas, err := h.cobranzaService.GetCobranzasByCobrador(c.Request.Context(), cobradorID, fecha)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, cobranzas)
}

func (h *CobranzaHandler) GetResumen(c *gin.Context) {
	hasta, ok := parseFechaQuery(c, "hasta", time.Now())
	if !ok {
		return
	}
	desde, ok := parseFechaQuery(c, "desde", hasta.AddDate(0, 0, -7))
	if !ok {
		return
	}

	resumen, err := h.cobranzaService.GetResumen(c.Request.Context(), desde, hasta)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resumen)
}

func (h *CobranzaHandler) AsignarCobranzas(c *gin.Context) {
	var req service.AsignarCobranzasRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	cobranzas, err := h.cobranzaService.AsignarCobranzas(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, cobranzas)
}

func (h *CobranzaHandler) GetRutasDelDia(c *gin.Context) {
	fecha, ok := parseFechaQuery(c, "fecha", time.Now())
	if !ok {
		return
	}

	rutas, err := h.cobranzaService.GetRutasDelDia(c.Request.Context(), fecha)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, rutas)
}

func parseFechaQuery(c *gin.Context, name string, fallback time.Time) (time.Time, bool) {
	raw := c.Query(name)
	if raw == "" {
		return fallback, true
	}

	fecha, err := time.Parse("2006-01-02", raw)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid " + name + ", expected YYYY-MM-DD"})
		return time.Time{}, false
	}
	return fecha, true
}
