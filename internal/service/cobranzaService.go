package service

import (
	"context"
	"time"

	repository "github.com/cmvn/prestamos-gota-a-gota/internal/database/postgres"
	"github.com/cmvn/prestamos-gota-a-gota/internal/entity"

	"github.com/google/uuid"
)

type CreateCobranzaRequest struct {
	PagoID             int64     `json:"pago_id" binding:"required"`
	CobradorID         int64     `json:"cobrador_id" binding:"required"`
	MontoEsperado      float64   `json:"monto_esperado" binding:"required,gt=0"`
	Zona               string    `json:"zona" binding:"required"`
	DireccionCobro     string    `json:"direccion_cobro" binding:"required"`
	RutaID             *int64    `json:"ruta_id,omitempty"`
	OrdenRuta          *int      `json:"orden_ruta,omitempty"`
	FechaProgramada    time.Time `json:"fecha_programada" binding:"required"`
	RequiereSupervisor bool      `json:"requiere_supervisor"`
}

type UpdateCobranzaRequest struct {
	Estado        *entity.EstadoCobranza `json:"estado,omitempty" binding:"omitempty,oneof=pendiente en_proceso completada fallida reprogramada"`
	MontoRecibido *float64               `json:"monto_recibido,omitempty" binding:"omitempty,gte=0"`
	MetodoPago    *entity.MetodoPago     `json:"metodo_pago,omitempty" binding:"omitempty,oneof=efectivo transferencia deposito pago_movil"`
	Notas         *string                `json:"notas,omitempty"`
	OrdenRuta     *int                   `json:"orden_ruta,omitempty"`
}

type AsignarCobranzasRequest struct {
	CobranzaIDs     []int64    `json:"cobranza_ids" binding:"required,min=1"`
	CobradorID      int64      `json:"cobrador_id" binding:"required"`
	FechaProgramada *time.Time `json:"fecha_programada,omitempty"`
}

type cobranzaService struct {
	cobranzaRepo repository.CobranzaRepository
	usuarioRepo  repository.UsuarioRepository
	pagoRepo     repository.PagoRepository
}

func NewCobranzaService(
	cobranzaRepo repository.CobranzaRepository,
	usuarioRepo repository.UsuarioRepository,
	pagoRepo repository.PagoRepository,
) CobranzaService {
	return &cobranzaService{
		cobranzaRepo: cobranzaRepo,
		usuarioRepo:  usuarioRepo,
		pagoRepo:     pagoRepo,
	}
}

func (s *cobranzaService) CreateCobranza(ctx context.Context, req *CreateCobranzaRequest) (*entity.Cobranza, error) {
	if _, err := s.usuarioRepo.GetByID(ctx, req.CobradorID); err != nil {
		return nil, entity.ErrCobradorNotFound
	}
	if _, err := s.pagoRepo.GetByID(ctx, req.PagoID); err != nil {
		return nil, err
	}

	cobranza := &entity.Cobranza{
		PagoID:             req.PagoID,
		CobradorID:         req.CobradorID,
		MontoEsperado:      req.MontoEsperado,
		Zona:               req.Zona,
		DireccionCobro:     req.DireccionCobro,
		RutaID:             req.RutaID,
		OrdenRuta:          req.OrdenRuta,
		FechaProgramada:    req.FechaProgramada,
		RequiereSupervisor: req.RequiereSupervisor,
	}

	if err := s.cobranzaRepo.Create(ctx, cobranza); err != nil {
		return nil, err
	}

	return cobranza, nil
}

func (s *cobranzaService) GetCobranza(ctx context.Context, id int64) (*entity.Cobranza, error) {
	return s.cobranzaRepo.GetByID(ctx, id)
}

func (s *cobranzaService) UpdateCobranza(ctx context.Context, id int64, req *UpdateCobranzaRequest) (*entity.Cobranza, error) {
	cobranza, err := s.cobranzaRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.MontoRecibido != nil {
		cobranza.MontoRecibido = req.MontoRecibido
	}
	if req.MetodoPago != nil {
		cobranza.MetodoPago = req.MetodoPago
	}
	if req.Notas != nil {
		cobranza.Notas = req.Notas
	}
	if req.OrdenRuta != nil {
		cobranza.OrdenRuta = req.OrdenRuta
	}
	if req.Estado != nil && *req.Estado != cobranza.Estado {
		cobranza.Estado = *req.Estado
		cobranza.Intentos++

		// Completion stamps the visit date and issues a receipt number.
		if *req.Estado == entity.CobranzaCompletada {
			now := time.Now()
			cobranza.FechaRealizada = &now
			if cobranza.NumeroRecibo == nil {
				recibo := uuid.New().String()
				cobranza.NumeroRecibo = &recibo
			}
		}
	}

	if err := s.cobranzaRepo.Update(ctx, cobranza); err != nil {
		return nil, err
	}

	return cobranza, nil
}

func (s *cobranzaService) GetCobranzasByCobrador(ctx context.Context, cobradorID int64, fecha time.Time) ([]*entity.Cobranza, error) {
	if _, err := s.usuarioRepo.GetByID(ctx, cobradorID); err != nil {
		return nil, entity.ErrCobradorNotFound
	}

	desde, hasta := rangoDia(fecha)
	return s.cobranzaRepo.GetByCobradorAndFecha(ctx, cobradorID, desde, hasta)
}

func (s *cobranzaService) GetResumen(ctx context.Context, desde, hasta time.Time) (*entity.CobranzaResumen, error) {
	return s.cobranzaRepo.GetResumen(ctx, desde, hasta)
}

func (s *cobranzaService) AsignarCobranzas(ctx context.Context, req *AsignarCobranzasRequest) ([]*entity.Cobranza, error) {
	if _, err := s.usuarioRepo.GetByID(ctx, req.CobradorID); err != nil {
		return nil, entity.ErrCobradorNotFound
	}

	return s.cobranzaRepo.Reasignar(ctx, req.CobranzaIDs, req.CobradorID, req.FechaProgramada)
}

// GetRutasDelDia groups the day's collections into one route per
// zona+cobrador pair, keeping the orden_ruta ordering inside each group.
func (s *cobranzaService) GetRutasDelDia(ctx context.Context, fecha time.Time) ([]*entity.RutaCobranza, error) {
	desde, hasta := rangoDia(fecha)
	cobranzas, err := s.cobranzaRepo.GetByFecha(ctx, desde, hasta)
	if err != nil {
		return nil, err
	}

	var rutas []*entity.RutaCobranza
	var actual *entity.RutaCobranza
	for _, cobranza := range cobranzas {
		if actual == nil || actual.Zona != cobranza.Zona || actual.CobradorID != cobranza.CobradorID {
			actual = &entity.RutaCobranza{
				ID:         len(rutas) + 1,
				Fecha:      desde,
				CobradorID: cobranza.CobradorID,
				Zona:       cobranza.Zona,
			}
			rutas = append(rutas, actual)
		}
		actual.Cobranzas = append(actual.Cobranzas, cobranza)
	}

	return rutas, nil
}

func rangoDia(fecha time.Time) (time.Time, time.Time) {
	desde := time.Date(fecha.Year(), fecha.Month(), fecha.Day(), 0, 0, 0, 0, fecha.Location())
	return desde, desde.Add(24 * time.Hour)
}
