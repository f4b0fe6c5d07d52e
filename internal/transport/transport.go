package transport

import (
	"net/http"

	"github.com/cmvn/prestamos-gota-a-gota/internal/transport/middleware"
	"github.com/cmvn/prestamos-gota-a-gota/pkg/auth"

	"github.com/gin-gonic/gin"
)

type Handlers struct {
	Cliente      *ClienteHandler
	Usuario      *UsuarioHandler
	Prestamo     *PrestamoHandler
	Pago         *PagoHandler
	Cobranza     *CobranzaHandler
	Ruta         *RutaHandler
	Notificacion *NotificacionHandler
}

func InitRoutes(h *Handlers, tokens *auth.TokenManager) *gin.Engine {

	router := gin.New()

	// Middleware
	router.Use(gin.Recovery())
	router.Use(middleware.CORS())
	router.Use(middleware.Logger())
	router.Use(middleware.Timeout(30))

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// API routes
	api := router.Group("/api/v1")

	// Login is the only open endpoint besides the health check.
	api.POST("/auth/login", h.Usuario.Login)

	protected := api.Group("")
	protected.Use(middleware.Auth(tokens))
	{
		clientes := protected.Group("/clientes")
		{
			clientes.POST("", h.Cliente.CreateCliente)
			clientes.GET("", h.Cliente.GetAllClientes)
			clientes.GET("/:id", h.Cliente.GetCliente)
			clientes.GET("/cedula/:cedula", h.Cliente.GetClienteByCedula)
			clientes.PUT("/:id", h.Cliente.UpdateCliente)
			clientes.DELETE("/:id", h.Cliente.DeleteCliente)
		}

		usuarios := protected.Group("/usuarios")
		{
			usuarios.POST("", h.Usuario.RegisterUsuario)
			usuarios.GET("", h.Usuario.GetAllUsuarios)
			usuarios.GET("/:id", h.Usuario.GetUsuario)
			usuarios.PUT("/:id", h.Usuario.UpdateUsuario)
			usuarios.DELETE("/:id", h.Usuario.DeleteUsuario)
		}

		prestamos := protected.Group("/prestamos")
		{
			prestamos.POST("", h.Prestamo.CreatePrestamo)
			prestamos.GET("", h.Prestamo.GetAllPrestamos)
			prestamos.GET("/:id", h.Prestamo.GetPrestamo)
			prestamos.GET("/:id/pagos", h.Prestamo.GetPagosByPrestamo)
			prestamos.GET("/cliente/:cliente_id", h.Prestamo.GetPrestamosByCliente)
			prestamos.PUT("/:id", h.Prestamo.UpdatePrestamo)
			prestamos.DELETE("/:id", h.Prestamo.DeletePrestamo)
		}

		pagos := protected.Group("/pagos")
		{
			pagos.GET("/atrasados", h.Pago.GetPagosAtrasados)
			pagos.GET("/:id", h.Pago.GetPago)
			pagos.PUT("/:id", h.Pago.UpdatePago)
		}

		cobranzas := protected.Group("/cobranzas")
		{
			cobranzas.POST("", h.Cobranza.CreateCobranza)
			cobranzas.GET("/resumen", h.Cobranza.GetResumen)
			cobranzas.GET("/rutas-del-dia", h.Cobranza.GetRutasDelDia)
			cobranzas.POST("/asignar", h.Cobranza.AsignarCobranzas)
			cobranzas.GET("/cobrador/:cobrador_id", h.Cobranza.GetCobranzasByCobrador)
			cobranzas.GET("/:id", h.Cobranza.GetCobranza)
			cobranzas.PATCH("/:id", h.Cobranza.UpdateCobranza)
		}

		rutas := protected.Group("/rutas")
		{
			rutas.POST("", h.Ruta.CreateRuta)
			rutas.GET("/cobrador/:cobrador_id", h.Ruta.GetRutasByCobrador)
			rutas.GET("/:id", h.Ruta.GetRuta)
			rutas.PUT("/:id", h.Ruta.UpdateRuta)
			rutas.DELETE("/:id", h.Ruta.DeleteRuta)
		}

		notificaciones := protected.Group("/notificaciones")
		{
			notificaciones.POST("", h.Notificacion.CrearNotificacion)
			notificaciones.GET("/resumen", h.Notificacion.GetResumen)
			notificaciones.POST("/reenviar-fallidas", h.Notificacion.ReenviarFallidas)
			notificaciones.GET("/usuario/:usuario_id", h.Notificacion.GetNotificacionesByUsuario)
			notificaciones.GET("/:id", h.Notificacion.GetNotificacion)
			notificaciones.POST("/:id/enviar", h.Notificacion.EnviarNotificacion)
			notificaciones.POST("/:id/leer", h.Notificacion.MarcarLeida)
		}
	}

	return router
}
