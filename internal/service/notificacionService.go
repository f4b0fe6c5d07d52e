package service

import (
	"context"
	"time"

	repository "github.com/cmvn/prestamos-gota-a-gota/internal/database/postgres"
	"github.com/cmvn/prestamos-gota-a-gota/internal/entity"
	"github.com/cmvn/prestamos-gota-a-gota/internal/notifier"

	"github.com/sirupsen/logrus"
)

type CrearNotificacionRequest struct {
	Tipo             entity.TipoNotificacion  `json:"tipo" binding:"required,oneof=sistema pago prestamo cobranza alerta"`
	Canal            entity.CanalNotificacion `json:"canal" binding:"required,oneof=email sms whatsapp telegram push"`
	Titulo           string                   `json:"titulo" binding:"required,min=1,max=255"`
	Mensaje          string                   `json:"mensaje" binding:"required"`
	DatosAdicionales entity.JSONMap           `json:"datos_adicionales,omitempty"`
	UsuarioID        int64                    `json:"usuario_id" binding:"required"`
	PrestamoID       *int64                   `json:"prestamo_id,omitempty"`
	PagoID           *int64                   `json:"pago_id,omitempty"`
	CobranzaID       *int64                   `json:"cobranza_id,omitempty"`
}

// ProviderResolver selects the delivery provider for a channel.
// *notifier.Factory is the production implementation.
type ProviderResolver interface {
	Resolve(canal entity.CanalNotificacion) notifier.Provider
}

type notificacionService struct {
	notificacionRepo repository.NotificacionRepository
	usuarioRepo      repository.UsuarioRepository
	factory          ProviderResolver
}

func NewNotificacionService(
	notificacionRepo repository.NotificacionRepository,
	usuarioRepo repository.UsuarioRepository,
	factory ProviderResolver,
) NotificacionService {
	return &notificacionService{
		notificacionRepo: notificacionRepo,
		usuarioRepo:      usuarioRepo,
		factory:          factory,
	}
}

func (s *notificacionService) CrearNotificacion(ctx context.Context, req *CrearNotificacionRequest) (*entity.Notificacion, error) {
	if _, err := s.usuarioRepo.GetByID(ctx, req.UsuarioID); err != nil {
		return nil, err
	}

	notificacion := &entity.Notificacion{
		Tipo:             req.Tipo,
		Canal:            req.Canal,
		Titulo:           req.Titulo,
		Mensaje:          req.Mensaje,
		DatosAdicionales: req.DatosAdicionales,
		UsuarioID:        req.UsuarioID,
		PrestamoID:       req.PrestamoID,
		PagoID:           req.PagoID,
		CobranzaID:       req.CobranzaID,
	}

	if err := s.notificacionRepo.Create(ctx, notificacion); err != nil {
		return nil, err
	}

	return notificacion, nil
}

func (s *notificacionService) GetNotificacion(ctx context.Context, id int64) (*entity.Notificacion, error) {
	return s.notificacionRepo.GetByID(ctx, id)
}

func (s *notificacionService) GetNotificacionesByUsuario(ctx context.Context, usuarioID int64) ([]*entity.Notificacion, error) {
	return s.notificacionRepo.GetByUsuario(ctx, usuarioID)
}

// EnviarNotificacion dispatches the notification through its channel
// provider. Success moves it to enviada, stamping fecha_envio only on the
// first successful delivery. Failure moves it to fallida and records the
// provider error under datos_adicionales["error"].
func (s *notificacionService) EnviarNotificacion(ctx context.Context, id int64) (*entity.Notificacion, error) {
	notificacion, err := s.notificacionRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	usuario, err := s.usuarioRepo.GetByID(ctx, notificacion.UsuarioID)
	if err != nil {
		return nil, err
	}

	provider := s.factory.Resolve(notificacion.Canal)
	sendErr := provider.Send(ctx, usuario.Email, notificacion.Titulo, notificacion.Mensaje, notificacion.DatosAdicionales)

	if sendErr != nil {
		notificacion.Estado = entity.NotificacionFallida
		notificacion.DatosAdicionales = notificacion.DatosAdicionales.Merge(entity.JSONMap{
			"error": sendErr.Error(),
		})

		logrus.WithFields(logrus.Fields{
			"notificacion_id": notificacion.ID,
			"canal":           notificacion.Canal,
		}).WithError(sendErr).Warn("notification delivery failed")
	} else {
		notificacion.Estado = entity.NotificacionEnviada
		if notificacion.FechaEnvio == nil {
			now := time.Now()
			notificacion.FechaEnvio = &now
		}
	}

	if err := s.notificacionRepo.Update(ctx, notificacion); err != nil {
		return nil, err
	}

	return notificacion, nil
}

func (s *notificacionService) MarcarLeida(ctx context.Context, id int64) (*entity.Notificacion, error) {
	notificacion, err := s.notificacionRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	notificacion.Estado = entity.NotificacionLeida
	if notificacion.FechaLectura == nil {
		now := time.Now()
		notificacion.FechaLectura = &now
	}

	if err := s.notificacionRepo.Update(ctx, notificacion); err != nil {
		return nil, err
	}

	return notificacion, nil
}

// GetResumen reports totals per state plus breakdowns per tipo and canal.
// Every enum member appears in the breakdowns even with a zero count.
func (s *notificacionService) GetResumen(ctx context.Context) (*entity.NotificacionResumen, error) {
	porEstado, err := s.notificacionRepo.CountByEstado(ctx)
	if err != nil {
		return nil, err
	}

	porTipo, err := s.notificacionRepo.CountByTipo(ctx)
	if err != nil {
		return nil, err
	}

	porCanal, err := s.notificacionRepo.CountByCanal(ctx)
	if err != nil {
		return nil, err
	}

	resumen := &entity.NotificacionResumen{
		TotalPendientes: porEstado[entity.NotificacionPendiente],
		TotalEnviadas:   porEstado[entity.NotificacionEnviada],
		TotalFallidas:   porEstado[entity.NotificacionFallida],
		TotalLeidas:     porEstado[entity.NotificacionLeida],
		PorTipo:         make(map[string]int, len(entity.Tipos())),
		PorCanal:        make(map[string]int, len(entity.Canales())),
	}

	for _, tipo := range entity.Tipos() {
		resumen.PorTipo[string(tipo)] = porTipo[tipo]
	}
	for _, canal := range entity.Canales() {
		resumen.PorCanal[string(canal)] = porCanal[canal]
	}

	return resumen, nil
}

// ReenviarFallidas retries every failed notification one at a time in id
// order and returns how many transitioned to enviada. A notification that
// fails again simply stays fallida; there is no backoff or attempt limit.
func (s *notificacionService) ReenviarFallidas(ctx context.Context) (int, error) {
	fallidas, err := s.notificacionRepo.GetByEstado(ctx, entity.NotificacionFallida)
	if err != nil {
		return 0, err
	}

	reenviadas := 0
	for _, notificacion := range fallidas {
		enviada, err := s.EnviarNotificacion(ctx, notificacion.ID)
		if err != nil {
			logrus.WithError(err).WithField("notificacion_id", notificacion.ID).
				Warn("retry sweep could not process notification")
			continue
		}
		if enviada.Estado == entity.NotificacionEnviada {
			reenviadas++
		}
	}

	return reenviadas, nil
}
