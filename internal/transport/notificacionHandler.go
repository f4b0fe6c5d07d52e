package transport

import (
	"net/http"

	"github.com/cmvn/prestamos-gota-a-gota/internal/service"

	"github.com/gin-gonic/gin"
)

type NotificacionHandler struct {
	notificacionService service.NotificacionService
}

func NewNotificacionHandler(notificacionService service.NotificacionService) *NotificacionHandler {
	return &NotificacionHandler{notificacionService: notificacionService}
}

func (h *NotificacionHandler) CrearNotificacion(c *gin.Context) {
	var req service.CrearNotificacionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	notificacion, err := h.notificacionService.CrearNotificacion(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, notificacion)
}

func (h *NotificacionHandler) GetNotificacion(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	notificacion, err := h.notificacionService.GetNotificacion(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, notificacion)
}

func (h *NotificacionHandler) GetNotificacionesByUsuario(c *gin.Context) {
	usuarioID, ok := parseIDParam(c, "usuario_id")
	if !ok {
		return
	}

	notificaciones, err := h.notificacionService.GetNotificacionesByUsuario(c.Request.Context(), usuarioID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, notificaciones)
}

func (h *NotificacionHandler) EnviarNotificacion(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	notificacion, err := h.notificacionService.EnviarNotificacion(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, notificacion)
}

func (h *NotificacionHandler) MarcarLeida(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	notificacion, err := h.notificacionService.MarcarLeida(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, notificacion)
}

func (h *NotificacionHandler) GetResumen(c *gin.Context) {
	resumen, err := h.notificacionService.GetResumen(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resumen)
}

func (h *NotificacionHandler) ReenviarFallidas(c *gin.Context) {
	reenviadas, err := h.notificacionService.ReenviarFallidas(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"reenviadas": reenviadas})
}
