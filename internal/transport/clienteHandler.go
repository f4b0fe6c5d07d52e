package transport

import (
	"net/http"

	"github.com/cmvn/prestamos-gota-a-gota/internal/service"

	"github.com/gin-gonic/gin"
)

type ClienteHandler struct {
	clienteService service.ClienteService
}

func NewClienteHandler(clienteService service.ClienteService) *ClienteHandler {
	return &ClienteHandler{clienteService: clienteService}
}

func (h *ClienteHandler) CreateCliente(c *gin.Context) {
	var req service.CreateClienteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	cliente, err := h.clienteService.CreateCliente(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, cliente)
}

func (h *ClienteHandler) GetCliente(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	cliente, err := h.clienteService.GetCliente(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, cliente)
}

func (h *ClienteHandler) GetClienteByCedula(c *gin.Context) {
	cliente, err := h.clienteService.GetClienteByCedula(c.Request.Context(), c.Param("cedula"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, cliente)
}

func (h *ClienteHandler) GetAllClientes(c *gin.Context) {
	limit, offset := parsePagination(c)

	clientes, err := h.clienteService.GetAllClientes(c.Request.Context(), limit, offset)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, clientes)
}

func (h *ClienteHandler) UpdateCliente(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req service.UpdateClienteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	cliente, err := h.clienteService.UpdateCliente(c.Request.Context(), id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, cliente)
}

func (h *ClienteHandler) DeleteCliente(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.clienteService.DeleteCliente(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "cliente deleted"})
}
