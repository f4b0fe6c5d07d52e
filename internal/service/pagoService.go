package service

import (
	"context"
	"time"

	repository "github.com/cmvn/prestamos-gota-a-gota/internal/database/postgres"
	"github.com/cmvn/prestamos-gota-a-gota/internal/entity"

	"github.com/sirupsen/logrus"
)

type UpdatePagoRequest struct {
	Estado    *entity.EstadoPago `json:"estado,omitempty" binding:"omitempty,oneof=pendiente pagado atrasado"`
	Monto     *float64           `json:"monto,omitempty" binding:"omitempty,gt=0"`
	FechaPago *time.Time         `json:"fecha_pago,omitempty"`
}

type pagoService struct {
	pagoRepo     repository.PagoRepository
	prestamoRepo repository.PrestamoRepository
}

func NewPagoService(pagoRepo repository.PagoRepository, prestamoRepo repository.PrestamoRepository) PagoService {
	return &pagoService{
		pagoRepo:     pagoRepo,
		prestamoRepo: prestamoRepo,
	}
}

func (s *pagoService) GetPago(ctx context.Context, id int64) (*entity.Pago, error) {
	return s.pagoRepo.GetByID(ctx, id)
}

func (s *pagoService) GetPagosByPrestamo(ctx context.Context, prestamoID int64) ([]*entity.Pago, error) {
	if _, err := s.prestamoRepo.GetByID(ctx, prestamoID); err != nil {
		return nil, err
	}
	return s.pagoRepo.GetByPrestamo(ctx, prestamoID)
}

func (s *pagoService) UpdatePago(ctx context.Context, id int64, req *UpdatePagoRequest) (*entity.Pago, error) {
	pago, err := s.pagoRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Monto != nil {
		pago.Monto = *req.Monto
	}
	if req.FechaPago != nil {
		pago.FechaPago = req.FechaPago
	}
	if req.Estado != nil {
		// fecha_pago is stamped the first time the installment is marked
		// pagado and never overwritten afterwards.
		if *req.Estado == entity.PagoPagado && pago.FechaPago == nil {
			now := time.Now()
			pago.FechaPago = &now
		}
		pago.Estado = *req.Estado
	}

	if err := s.pagoRepo.Update(ctx, pago); err != nil {
		return nil, err
	}

	if pago.Estado == entity.PagoPagado {
		if err := s.checkPrestamoCompletado(ctx, pago.PrestamoID); err != nil {
			logrus.WithError(err).WithField("prestamo_id", pago.PrestamoID).
				Warn("failed to check prestamo completion")
		}
	}

	return pago, nil
}

// checkPrestamoCompletado closes the loan once no pending installments remain.
func (s *pagoService) checkPrestamoCompletado(ctx context.Context, prestamoID int64) error {
	pendientes, err := s.pagoRepo.CountPendientes(ctx, prestamoID)
	if err != nil {
		return err
	}
	if pendientes > 0 {
		return nil
	}
	return s.prestamoRepo.UpdateEstado(ctx, prestamoID, entity.PrestamoCompletado)
}

func (s *pagoService) GetPagosAtrasados(ctx context.Context) ([]*entity.Pago, error) {
	return s.pagoRepo.GetAtrasados(ctx, time.Now())
}
