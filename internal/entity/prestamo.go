package entity

import "time"

type FrecuenciaPago string

const (
	FrecuenciaDiario    FrecuenciaPago = "diario"
	FrecuenciaSemanal   FrecuenciaPago = "semanal"
	FrecuenciaQuincenal FrecuenciaPago = "quincenal"
	FrecuenciaMensual   FrecuenciaPago = "mensual"
)

type EstadoPrestamo string

const (
	PrestamoPendiente  EstadoPrestamo = "pendiente"
	PrestamoActivo     EstadoPrestamo = "activo"
	PrestamoCompletado EstadoPrestamo = "completado"
	PrestamoAtrasado   EstadoPrestamo = "atrasado"
	PrestamoCancelado  EstadoPrestamo = "cancelado"
)

type Prestamo struct {
	ID             int64          `json:"id" db:"id"`
	ClienteID      int64          `json:"cliente_id" db:"cliente_id"`
	Monto          float64        `json:"monto" db:"monto"`
	Interes        float64        `json:"interes" db:"interes"` // tasa en porcentaje
	Plazo          int            `json:"plazo" db:"plazo"`     // número de cuotas
	FrecuenciaPago FrecuenciaPago `json:"frecuencia_pago" db:"frecuencia_pago"`
	FechaInicio    time.Time      `json:"fecha_inicio" db:"fecha_inicio"`
	FechaFin       *time.Time     `json:"fecha_fin,omitempty" db:"fecha_fin"`
	Estado         EstadoPrestamo `json:"estado" db:"estado"`
	MontoTotal     float64        `json:"monto_total" db:"monto_total"`
	ValorCuota     float64        `json:"valor_cuota" db:"valor_cuota"`
}

type PrestamoDetalle struct {
	Prestamo
	Pagos []*Pago `json:"pagos"`
}
