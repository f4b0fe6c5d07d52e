package transport

import (
	"net/http"

	"github.com/cmvn/prestamos-gota-a-gota/internal/service"

	"github.com/gin-gonic/gin"
)

type PrestamoHandler struct {
	prestamoService service.PrestamoService
	pagoService     service.PagoService
}

func NewPrestamoHandler(prestamoService service.PrestamoService, pagoService service.PagoService) *PrestamoHandler {
	return &PrestamoHandler{
		prestamoService: prestamoService,
		pagoService:     pagoService,
	}
}

func (h *PrestamoHandler) CreatePrestamo(c *gin.Context) {
	var req service.CreatePrestamoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	prestamo, err := h.prestamoService.CreatePrestamo(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, prestamo)
}

func (h *PrestamoHandler) GetPrestamo(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	prestamo, err := h.prestamoService.GetPrestamo(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, prestamo)
}

func (h *PrestamoHandler) GetAllPrestamos(c *gin.Context) {
	limit, offset := parsePagination(c)

	prestamos, err := h.prestamoService.GetAllPrestamos(c.Request.Context(), limit, offset)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, prestamos)
}

func (h *PrestamoHandler) GetPrestamosByCliente(c *gin.Context) {
	clienteID, ok := parseIDParam(c, "cliente_id")
	if !ok {
		return
	}

	prestamos, err := h.prestamoService.GetPrestamosByCliente(c.Request.Context(), clienteID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, prestamos)
}

func (h *PrestamoHandler) UpdatePrestamo(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req service.UpdatePrestamoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	prestamo, err := h.prestamoService.UpdatePrestamo(c.Request.Context(), id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, prestamo)
}

func (h *PrestamoHandler) DeletePrestamo(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.prestamoService.DeletePrestamo(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "prestamo deleted"})
}

func (h *PrestamoHandler) GetPagosByPrestamo(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	pagos, err := h.pagoService.GetPagosByPrestamo(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, pagos)
}
