package entity

import "time"

type EstadoCobranza string

const (
	CobranzaPendiente    EstadoCobranza = "pendiente"
	CobranzaEnProceso    EstadoCobranza = "en_proceso"
	CobranzaCompletada   EstadoCobranza = "completada"
	CobranzaFallida      EstadoCobranza = "fallida"
	CobranzaReprogramada EstadoCobranza = "reprogramada"
)

type MetodoPago string

const (
	MetodoEfectivo      MetodoPago = "efectivo"
	MetodoTransferencia MetodoPago = "transferencia"
	MetodoDeposito      MetodoPago = "deposito"
	MetodoPagoMovil     MetodoPago = "pago_movil"
)

type Cobranza struct {
	ID                 int64          `json:"id" db:"id"`
	PagoID             int64          `json:"pago_id" db:"pago_id"`
	CobradorID         int64          `json:"cobrador_id" db:"cobrador_id"`
	MontoEsperado      float64        `json:"monto_esperado" db:"monto_esperado"`
	MontoRecibido      *float64       `json:"monto_recibido,omitempty" db:"monto_recibido"`
	MetodoPago         *MetodoPago    `json:"metodo_pago,omitempty" db:"metodo_pago"`
	Estado             EstadoCobranza `json:"estado" db:"estado"`
	Zona               string         `json:"zona" db:"zona"`
	DireccionCobro     string         `json:"direccion_cobro" db:"direccion_cobro"`
	RutaID             *int64         `json:"ruta_id,omitempty" db:"ruta_id"`
	OrdenRuta          *int           `json:"orden_ruta,omitempty" db:"orden_ruta"`
	NumeroRecibo       *string        `json:"numero_recibo,omitempty" db:"numero_recibo"`
	FechaProgramada    time.Time      `json:"fecha_programada" db:"fecha_programada"`
	FechaRealizada     *time.Time     `json:"fecha_realizada,omitempty" db:"fecha_realizada"`
	FechaCreacion      time.Time      `json:"fecha_creacion" db:"fecha_creacion"`
	FechaActualizacion *time.Time     `json:"fecha_actualizacion,omitempty" db:"fecha_actualizacion"`
	Intentos           int            `json:"intentos" db:"intentos"`
	Notas              *string        `json:"notas,omitempty" db:"notas"`
	RequiereSupervisor bool           `json:"requiere_supervisor" db:"requiere_supervisor"`
}

// CobranzaResumen agrega las cobranzas de un rango de fechas.
type CobranzaResumen struct {
	TotalPendientes    int                    `json:"total_pendientes"`
	TotalCompletadas   int                    `json:"total_completadas"`
	TotalFallidas      int                    `json:"total_fallidas"`
	MontoTotalEsperado float64                `json:"monto_total_esperado"`
	MontoTotalRecibido float64                `json:"monto_total_recibido"`
	PorZona            map[string]int         `json:"por_zona"`
	PorCobrador        map[string]int         `json:"por_cobrador"`
	PorEstado          map[EstadoCobranza]int `json:"por_estado"`
}

// RutaCobranza agrupa las cobranzas de un día por zona y cobrador.
type RutaCobranza struct {
	ID         int         `json:"id"`
	Fecha      time.Time   `json:"fecha"`
	CobradorID int64       `json:"cobrador_id"`
	Zona       string      `json:"zona"`
	Cobranzas  []*Cobranza `json:"cobranzas"`
}
