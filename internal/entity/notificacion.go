package entity

import "time"

type TipoNotificacion string

const (
	TipoSistema  TipoNotificacion = "sistema"
	TipoPago     TipoNotificacion = "pago"
	TipoPrestamo TipoNotificacion = "prestamo"
	TipoCobranza TipoNotificacion = "cobranza"
	TipoAlerta   TipoNotificacion = "alerta"
)

type CanalNotificacion string

const (
	CanalEmail    CanalNotificacion = "email"
	CanalSMS      CanalNotificacion = "sms"
	CanalWhatsApp CanalNotificacion = "whatsapp"
	CanalTelegram CanalNotificacion = "telegram"
	CanalPush     CanalNotificacion = "push"
)

type EstadoNotificacion string

const (
	NotificacionPendiente EstadoNotificacion = "pendiente"
	NotificacionEnviada   EstadoNotificacion = "enviada"
	NotificacionFallida   EstadoNotificacion = "fallida"
	NotificacionLeida     EstadoNotificacion = "leida"
)

func Tipos() []TipoNotificacion {
	return []TipoNotificacion{TipoSistema, TipoPago, TipoPrestamo, TipoCobranza, TipoAlerta}
}

func Canales() []CanalNotificacion {
	return []CanalNotificacion{CanalEmail, CanalSMS, CanalWhatsApp, CanalTelegram, CanalPush}
}

type Notificacion struct {
	ID               int64              `json:"id" db:"id"`
	Tipo             TipoNotificacion   `json:"tipo" db:"tipo"`
	Canal            CanalNotificacion  `json:"canal" db:"canal"`
	Titulo           string             `json:"titulo" db:"titulo"`
	Mensaje          string             `json:"mensaje" db:"mensaje"`
	DatosAdicionales JSONMap            `json:"datos_adicionales,omitempty" db:"datos_adicionales"`
	UsuarioID        int64              `json:"usuario_id" db:"usuario_id"`
	PrestamoID       *int64             `json:"prestamo_id,omitempty" db:"prestamo_id"`
	PagoID           *int64             `json:"pago_id,omitempty" db:"pago_id"`
	CobranzaID       *int64             `json:"cobranza_id,omitempty" db:"cobranza_id"`
	Estado           EstadoNotificacion `json:"estado" db:"estado"`
	FechaCreacion    time.Time          `json:"fecha_creacion" db:"fecha_creacion"`
	FechaEnvio       *time.Time         `json:"fecha_envio,omitempty" db:"fecha_envio"`
	FechaLectura     *time.Time         `json:"fecha_lectura,omitempty" db:"fecha_lectura"`
}

// NotificacionResumen agrega los totales por estado, tipo y canal.
// Todos los miembros de los enums aparecen aunque su conteo sea cero.
type NotificacionResumen struct {
	TotalPendientes int            `json:"total_pendientes"`
	TotalEnviadas   int            `json:"total_enviadas"`
	TotalFallidas   int            `json:"total_fallidas"`
	TotalLeidas     int            `json:"total_leidas"`
	PorTipo         map[string]int `json:"por_tipo"`
	PorCanal        map[string]int `json:"por_canal"`
}
