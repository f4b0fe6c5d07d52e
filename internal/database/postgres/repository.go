package repository

import (
	"context"
	"time"

	"github.com/cmvn/prestamos-gota-a-gota/internal/entity"
)

type ClienteRepository interface {
	Create(ctx context.Context, cliente *entity.Cliente) error
	GetByID(ctx context.Context, id int64) (*entity.Cliente, error)
	GetByCedula(ctx context.Context, cedula string) (*entity.Cliente, error)
	GetAll(ctx context.Context, limit, offset int) ([]*entity.Cliente, error)
	Update(ctx context.Context, cliente *entity.Cliente) error
	Delete(ctx context.Context, id int64) error
}

type UsuarioRepository interface {
	Create(ctx context.Context, usuario *entity.Usuario) error
	GetByID(ctx context.Context, id int64) (*entity.Usuario, error)
	GetByEmail(ctx context.Context, email string) (*entity.Usuario, error)
	GetAll(ctx context.Context, limit, offset int) ([]*entity.Usuario, error)
	Update(ctx context.Context, usuario *entity.Usuario) error
	Delete(ctx context.Context, id int64) error
}

type PrestamoRepository interface {
	// CreateWithPagos persists the loan and its installment schedule in a
	// single transaction.
	CreateWithPagos(ctx context.Context, prestamo *entity.Prestamo, pagos []*entity.Pago) error
	GetByID(ctx context.Context, id int64) (*entity.Prestamo, error)
	GetAll(ctx context.Context, limit, offset int) ([]*entity.Prestamo, error)
	GetByCliente(ctx context.Context, clienteID int64) ([]*entity.Prestamo, error)
	Update(ctx context.Context, prestamo *entity.Prestamo) error
	UpdateEstado(ctx context.Context, id int64, estado entity.EstadoPrestamo) error
	Delete(ctx context.Context, id int64) error
}

type PagoRepository interface {
	Create(ctx context.Context, pago *entity.Pago) error
	GetByID(ctx context.Context, id int64) (*entity.Pago, error)
	GetByPrestamo(ctx context.Context, prestamoID int64) ([]*entity.Pago, error)
	Update(ctx context.Context, pago *entity.Pago) error
	CountPendientes(ctx context.Context, prestamoID int64) (int, error)
	GetAtrasados(ctx context.Context, before time.Time) ([]*entity.Pago, error)
}

type CobranzaRepository interface {
	Create(ctx context.Context, cobranza *entity.Cobranza) error
	GetByID(ctx context.Context, id int64) (*entity.Cobranza, error)
	Update(ctx context.Context, cobranza *entity.Cobranza) error
	GetByCobradorAndFecha(ctx context.Context, cobradorID int64, desde, hasta time.Time) ([]*entity.Cobranza, error)
	// GetByFecha returns the day's collections ordered by zona, cobrador
	// and orden_ruta, for route grouping.
	GetByFecha(ctx context.Context, desde, hasta time.Time) ([]*entity.Cobranza, error)
	GetResumen(ctx context.Context, desde, hasta time.Time) (*entity.CobranzaResumen, error)
	Reasignar(ctx context.Context, ids []int64, cobradorID int64, fechaProgramada *time.Time) ([]*entity.Cobranza, error)
}

type RutaRepository interface {
	Create(ctx context.Context, ruta *entity.Ruta) error
	GetByID(ctx context.Context, id int64) (*entity.Ruta, error)
	GetByCobrador(ctx context.Context, cobradorID int64) ([]*entity.Ruta, error)
	Update(ctx context.Context, ruta *entity.Ruta) error
	Delete(ctx context.Context, id int64) error
}

type NotificacionRepository interface {
	Create(ctx context.Context, notificacion *entity.Notificacion) error
	GetByID(ctx context.Context, id int64) (*entity.Notificacion, error)
	Update(ctx context.Context, notificacion *entity.Notificacion) error
	GetByUsuario(ctx context.Context, usuarioID int64) ([]*entity.Notificacion, error)
	// GetByEstado returns records in primary-key order; the retry sweep
	// depends on that ordering.
	GetByEstado(ctx context.Context, estado entity.EstadoNotificacion) ([]*entity.Notificacion, error)
	CountByEstado(ctx context.Context) (map[entity.EstadoNotificacion]int, error)
	CountByTipo(ctx context.Context) (map[entity.TipoNotificacion]int, error)
	CountByCanal(ctx context.Context) (map[entity.CanalNotificacion]int, error)
}
