package service

import (
	"context"
	"time"

	"github.com/cmvn/prestamos-gota-a-gota/internal/entity"
)

type ClienteService interface {
	CreateCliente(ctx context.Context, req *CreateClienteRequest) (*entity.Cliente, error)
	GetCliente(ctx context.Context, id int64) (*entity.Cliente, error)
	GetClienteByCedula(ctx context.Context, cedula string) (*entity.Cliente, error)
	GetAllClientes(ctx context.Context, limit, offset int) ([]*entity.Cliente, error)
	UpdateCliente(ctx context.Context, id int64, req *UpdateClienteRequest) (*entity.Cliente, error)
	DeleteCliente(ctx context.Context, id int64) error
}

type UsuarioService interface {
	RegisterUsuario(ctx context.Context, req *RegisterUsuarioRequest) (*entity.Usuario, error)
	Login(ctx context.Context, req *LoginRequest) (*LoginResponse, error)
	GetUsuario(ctx context.Context, id int64) (*entity.Usuario, error)
	GetAllUsuarios(ctx context.Context, limit, offset int) ([]*entity.Usuario, error)
	UpdateUsuario(ctx context.Context, id int64, req *UpdateUsuarioRequest) (*entity.Usuario, error)
	DeleteUsuario(ctx context.Context, id int64) error
}

type PrestamoService interface {
	// CreatePrestamo computes the totals and installment schedule and
	// persists everything atomically.
	CreatePrestamo(ctx context.Context, req *CreatePrestamoRequest) (*entity.PrestamoDetalle, error)
	GetPrestamo(ctx context.Context, id int64) (*entity.PrestamoDetalle, error)
	GetAllPrestamos(ctx context.Context, limit, offset int) ([]*entity.Prestamo, error)
	GetPrestamosByCliente(ctx context.Context, clienteID int64) ([]*entity.Prestamo, error)
	UpdatePrestamo(ctx context.Context, id int64, req *UpdatePrestamoRequest) (*entity.Prestamo, error)
	DeletePrestamo(ctx context.Context, id int64) error
}

type PagoService interface {
	GetPago(ctx context.Context, id int64) (*entity.Pago, error)
	GetPagosByPrestamo(ctx context.Context, prestamoID int64) ([]*entity.Pago, error)
	// UpdatePago marks completion dates and closes the loan when the last
	// installment is paid.
	UpdatePago(ctx context.Context, id int64, req *UpdatePagoRequest) (*entity.Pago, error)
	GetPagosAtrasados(ctx context.Context) ([]*entity.Pago, error)
}

type CobranzaService interface {
	CreateCobranza(ctx context.Context, req *CreateCobranzaRequest) (*entity.Cobranza, error)
	GetCobranza(ctx context.Context, id int64) (*entity.Cobranza, error)
	UpdateCobranza(ctx context.Context, id int64, req *UpdateCobranzaRequest) (*entity.Cobranza, error)
	GetCobranzasByCobrador(ctx context.Context, cobradorID int64, fecha time.Time) ([]*entity.Cobranza, error)
	GetResumen(ctx context.Context, desde, hasta time.Time) (*entity.CobranzaResumen, error)
	AsignarCobranzas(ctx context.Context, req *AsignarCobranzasRequest) ([]*entity.Cobranza, error)
	GetRutasDelDia(ctx context.Context, fecha time.Time) ([]*entity.RutaCobranza, error)
}

type RutaService interface {
	CreateRuta(ctx context.Context, req *CreateRutaRequest) (*entity.Ruta, error)
	GetRuta(ctx context.Context, id int64) (*entity.Ruta, error)
	GetRutasByCobrador(ctx context.Context, cobradorID int64) ([]*entity.Ruta, error)
	UpdateRuta(ctx context.Context, id int64, req *UpdateRutaRequest) (*entity.Ruta, error)
	DeleteRuta(ctx context.Context, id int64) error
}

type NotificacionService interface {
	CrearNotificacion(ctx context.Context, req *CrearNotificacionRequest) (*entity.Notificacion, error)
	GetNotificacion(ctx context.Context, id int64) (*entity.Notificacion, error)
	GetNotificacionesByUsuario(ctx context.Context, usuarioID int64) ([]*entity.Notificacion, error)
	// EnviarNotificacion dispatches through the channel provider and
	// records the outcome on the notification itself.
	EnviarNotificacion(ctx context.Context, id int64) (*entity.Notificacion, error)
	MarcarLeida(ctx context.Context, id int64) (*entity.Notificacion, error)
	GetResumen(ctx context.Context) (*entity.NotificacionResumen, error)
	// ReenviarFallidas retries every failed notification in id order and
	// returns how many came back as enviada.
	ReenviarFallidas(ctx context.Context) (int, error)
}
