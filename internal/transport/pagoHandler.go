package transport

import (
	"net/http"

	"github.com/cmvn/prestamos-gota-a-gota/internal/service"

	"github.com/gin-gonic/gin"
)

type PagoHandler struct {
	pagoService service.PagoService
}

func NewPagoHandler(pagoService service.PagoService) *PagoHandler {
	return &PagoHandler{pagoService: pagoService}
}

func (h *PagoHandler) GetPago(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	pago, err := h.pagoService.GetPago(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, pago)
}

func (h *PagoHandler) UpdatePago(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req service.UpdatePagoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	pago, err := h.pagoService.UpdatePago(c.Request.Context(), id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, pago)
}

func (h *PagoHandler) GetPagosAtrasados(c *gin.Context) {
	pagos, err := h.pagoService.GetPagosAtrasados(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, pagos)
}
