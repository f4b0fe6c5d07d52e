package entity

import "time"

type EstadoPago string

const (
	PagoPendiente EstadoPago = "pendiente"
	PagoPagado    EstadoPago = "pagado"
	PagoAtrasado  EstadoPago = "atrasado"
)

type Pago struct {
	ID              int64      `json:"id" db:"id"`
	PrestamoID      int64      `json:"prestamo_id" db:"prestamo_id"`
	NumeroCuota     int        `json:"numero_cuota" db:"numero_cuota"`
	Monto           float64    `json:"monto" db:"monto"`
	FechaProgramada time.Time  `json:"fecha_programada" db:"fecha_programada"`
	FechaPago       *time.Time `json:"fecha_pago,omitempty" db:"fecha_pago"`
	Estado          EstadoPago `json:"estado" db:"estado"`
}
