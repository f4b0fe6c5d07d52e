package transport

import (
	"net/http"

	"github.com/cmvn/prestamos-gota-a-gota/internal/service"

	"github.com/gin-gonic/gin"
)

type RutaHandler struct {
	rutaService service.RutaService
}

func NewRutaHandler(rutaService service.RutaService) *RutaHandler {
	return &RutaHandler{rutaService: rutaService}
}

func (h *RutaHandler) CreateRuta(c *gin.Context) {
	var req service.CreateRutaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ruta, err := h.rutaService.CreateRuta(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, ruta)
}

func (h *RutaHandler) GetRuta(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	ruta, err := h.rutaService.GetRuta(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, ruta)
}

func (h *RutaHandler) GetRutasByCobrador(c *gin.Context) {
	cobradorID, ok := parseIDParam(c, "cobrador_id")
	if !ok {
		return
	}

	rutas, err := h.rutaService.GetRutasByCobrador(c.Request.Context(), cobradorID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, rutas)
}

func (h *RutaHandler) UpdateRuta(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req service.UpdateRutaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ruta, err := h.rutaService.UpdateRuta(c.Request.Context(), id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, ruta)
}

func (h *RutaHandler) DeleteRuta(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.rutaService.DeleteRuta(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "ruta deleted"})
}
