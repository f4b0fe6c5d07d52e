package service

import (
	"context"
	"time"

	repository "github.com/cmvn/prestamos-gota-a-gota/internal/database/postgres"
	"github.com/cmvn/prestamos-gota-a-gota/internal/entity"
)

type CreatePrestamoRequest struct {
	ClienteID      int64                 `json:"cliente_id" binding:"required"`
	Monto          float64               `json:"monto" binding:"required,gt=0"`
	Interes        float64               `json:"interes" binding:"required,gte=0"`
	Plazo          int                   `json:"plazo" binding:"required,min=1"`
	FrecuenciaPago entity.FrecuenciaPago `json:"frecuencia_pago" binding:"required,oneof=diario semanal quincenal mensual"`
	FechaInicio    time.Time             `json:"fecha_inicio" binding:"required"`
}

type UpdatePrestamoRequest struct {
	Estado *entity.EstadoPrestamo `json:"estado,omitempty" binding:"omitempty,oneof=pendiente activo completado atrasado cancelado"`
}

type prestamoService struct {
	prestamoRepo repository.PrestamoRepository
	pagoRepo     repository.PagoRepository
}

func NewPrestamoService(prestamoRepo repository.PrestamoRepository, pagoRepo repository.PagoRepository) PrestamoService {
	return &prestamoService{
		prestamoRepo: prestamoRepo,
		pagoRepo:     pagoRepo,
	}
}

// intervaloCuota returns how far apart two consecutive installments fall.
func intervaloCuota(frecuencia entity.FrecuenciaPago) (time.Duration, error) {
	switch frecuencia {
	case entity.FrecuenciaDiario:
		return 24 * time.Hour, nil
	case entity.FrecuenciaSemanal:
		return 7 * 24 * time.Hour, nil
	case entity.FrecuenciaQuincenal:
		return 15 * 24 * time.Hour, nil
	case entity.FrecuenciaMensual:
		return 30 * 24 * time.Hour, nil
	default:
		return 0, entity.ErrInvalidFrecuencia
	}
}

func (s *prestamoService) CreatePrestamo(ctx context.Context, req *CreatePrestamoRequest) (*entity.PrestamoDetalle, error) {
	intervalo, err := intervaloCuota(req.FrecuenciaPago)
	if err != nil {
		return nil, err
	}
	if req.Plazo < 1 {
		return nil, entity.ErrInvalidPlazo
	}

	montoTotal := req.Monto * (1 + req.Interes/100)
	valorCuota := montoTotal / float64(req.Plazo)
	fechaFin := req.FechaInicio.Add(time.Duration(req.Plazo) * intervalo)

	prestamo := &entity.Prestamo{
		ClienteID:      req.ClienteID,
		Monto:          req.Monto,
		Interes:        req.Interes,
		Plazo:          req.Plazo,
		FrecuenciaPago: req.FrecuenciaPago,
		FechaInicio:    req.FechaInicio,
		FechaFin:       &fechaFin,
		Estado:         entity.PrestamoActivo,
		MontoTotal:     montoTotal,
		ValorCuota:     valorCuota,
	}

	pagos := make([]*entity.Pago, 0, req.Plazo)
	for i := 1; i <= req.Plazo; i++ {
		pagos = append(pagos, &entity.Pago{
			NumeroCuota:     i,
			Monto:           valorCuota,
			FechaProgramada: req.FechaInicio.Add(time.Duration(i) * intervalo),
			Estado:          entity.PagoPendiente,
		})
	}

	if err := s.prestamoRepo.CreateWithPagos(ctx, prestamo, pagos); err != nil {
		return nil, err
	}

	return &entity.PrestamoDetalle{Prestamo: *prestamo, Pagos: pagos}, nil
}

func (s *prestamoService) GetPrestamo(ctx context.Context, id int64) (*entity.PrestamoDetalle, error) {
	prestamo, err := s.prestamoRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	pagos, err := s.pagoRepo.GetByPrestamo(ctx, id)
	if err != nil {
		return nil, err
	}

	return &entity.PrestamoDetalle{Prestamo: *prestamo, Pagos: pagos}, nil
}

func (s *prestamoService) GetAllPrestamos(ctx context.Context, limit, offset int) ([]*entity.Prestamo, error) {
	return s.prestamoRepo.GetAll(ctx, limit, offset)
}

func (s *prestamoService) GetPrestamosByCliente(ctx context.Context, clienteID int64) ([]*entity.Prestamo, error) {
	return s.prestamoRepo.GetByCliente(ctx, clienteID)
}

func (s *prestamoService) UpdatePrestamo(ctx context.Context, id int64, req *UpdatePrestamoRequest) (*entity.Prestamo, error) {
	prestamo, err := s.prestamoRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Estado != nil {
		prestamo.Estado = *req.Estado
		if err := s.prestamoRepo.UpdateEstado(ctx, id, *req.Estado); err != nil {
			return nil, err
		}
	}

	return prestamo, nil
}

func (s *prestamoService) DeletePrestamo(ctx context.Context, id int64) error {
	return s.prestamoRepo.Delete(ctx, id)
}
