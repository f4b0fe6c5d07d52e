package service

import (
	"context"
	"sort"
	"testing"
	"time"

	"github.com/cmvn/prestamos-gota-a-gota/internal/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePrestamoRepo struct {
	prestamos map[int64]*entity.Prestamo
	nextID    int64
}

func newFakePrestamoRepo() *fakePrestamoRepo {
	return &fakePrestamoRepo{prestamos: make(map[int64]*entity.Prestamo), nextID: 1}
}

func (r *fakePrestamoRepo) CreateWithPagos(_ context.Context, p *entity.Prestamo, pagos []*entity.Pago) error {
	p.ID = r.nextID
	r.nextID++
	for i, pago := range pagos {
		pago.ID = int64(i + 1)
		pago.PrestamoID = p.ID
	}
	copia := *p
	r.prestamos[p.ID] = &copia
	return nil
}

func (r *fakePrestamoRepo) GetByID(_ context.Context, id int64) (*entity.Prestamo, error) {
	p, ok := r.prestamos[id]
	if !ok {
		return nil, entity.ErrPrestamoNotFound
	}
	copia := *p
	return &copia, nil
}

func (r *fakePrestamoRepo) GetAll(_ context.Context, _, _ int) ([]*entity.Prestamo, error) {
	var out []*entity.Prestamo
	for _, p := range r.prestamos {
		copia := *p
		out = append(out, &copia)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *fakePrestamoRepo) GetByCliente(_ context.Context, clienteID int64) ([]*entity.Prestamo, error) {
	var out []*entity.Prestamo
	for _, p := range r.prestamos {
		if p.ClienteID == clienteID {
			copia := *p
			out = append(out, &copia)
		}
	}
	return out, nil
}

func (r *fakePrestamoRepo) Update(_ context.Context, p *entity.Prestamo) error {
	if _, ok := r.prestamos[p.ID]; !ok {
		return entity.ErrPrestamoNotFound
	}
	copia := *p
	r.prestamos[p.ID] = &copia
	return nil
}

func (r *fakePrestamoRepo) UpdateEstado(_ context.Context, id int64, estado entity.EstadoPrestamo) error {
	p, ok := r.prestamos[id]
	if !ok {
		return entity.ErrPrestamoNotFound
	}
	p.Estado = estado
	return nil
}

func (r *fakePrestamoRepo) Delete(_ context.Context, id int64) error {
	if _, ok := r.prestamos[id]; !ok {
		return entity.ErrPrestamoNotFound
	}
	delete(r.prestamos, id)
	return nil
}

type fakePagoRepo struct {
	pagos  map[int64]*entity.Pago
	nextID int64
}

func newFakePagoRepo() *fakePagoRepo {
	return &fakePagoRepo{pagos: make(map[int64]*entity.Pago), nextID: 1}
}

func (r *fakePagoRepo) Create(_ context.Context, p *entity.Pago) error {
	p.ID = r.nextID
	r.nextID++
	copia := *p
	r.pagos[p.ID] = &copia
	return nil
}

func (r *fakePagoRepo) GetByID(_ context.Context, id int64) (*entity.Pago, error) {
	p, ok := r.pagos[id]
	if !ok {
		return nil, entity.ErrPagoNotFound
	}
	copia := *p
	return &copia, nil
}

func (r *fakePagoRepo) GetByPrestamo(_ context.Context, prestamoID int64) ([]*entity.Pago, error) {
	var out []*entity.Pago
	for _, p := range r.pagos {
		if p.PrestamoID == prestamoID {
			copia := *p
			out = append(out, &copia)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].NumeroCuota < out[j].NumeroCuota })
	return out, nil
}

func (r *fakePagoRepo) Update(_ context.Context, p *entity.Pago) error {
	if _, ok := r.pagos[p.ID]; !ok {
		return entity.ErrPagoNotFound
	}
	copia := *p
	r.pagos[p.ID] = &copia
	return nil
}

func (r *fakePagoRepo) CountPendientes(_ context.Context, prestamoID int64) (int, error) {
	count := 0
	for _, p := range r.pagos {
		if p.PrestamoID == prestamoID && p.Estado == entity.PagoPendiente {
			count++
		}
	}
	return count, nil
}

func (r *fakePagoRepo) GetAtrasados(_ context.Context, before time.Time) ([]*entity.Pago, error) {
	var out []*entity.Pago
	for _, p := range r.pagos {
		if p.Estado == entity.PagoPendiente && p.FechaProgramada.Before(before) {
			copia := *p
			out = append(out, &copia)
		}
	}
	return out, nil
}

func TestCreatePrestamoSchedule(t *testing.T) {
	inicio := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name       string
		frecuencia entity.FrecuenciaPago
		paso       time.Duration
	}{
		{name: "diario", frecuencia: entity.FrecuenciaDiario, paso: 24 * time.Hour},
		{name: "semanal", frecuencia: entity.FrecuenciaSemanal, paso: 7 * 24 * time.Hour},
		{name: "quincenal", frecuencia: entity.FrecuenciaQuincenal, paso: 15 * 24 * time.Hour},
		{name: "mensual", frecuencia: entity.FrecuenciaMensual, paso: 30 * 24 * time.Hour},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewPrestamoService(newFakePrestamoRepo(), newFakePagoRepo())

			detalle, err := svc.CreatePrestamo(context.Background(), &CreatePrestamoRequest{
				ClienteID:      1,
				Monto:          100000,
				Interes:        20,
				Plazo:          10,
				FrecuenciaPago: tt.frecuencia,
				FechaInicio:    inicio,
			})
			require.NoError(t, err)

			assert.Equal(t, entity.PrestamoActivo, detalle.Estado)
			assert.InDelta(t, 120000, detalle.MontoTotal, 0.001)
			assert.InDelta(t, 12000, detalle.ValorCuota, 0.001)

			require.Len(t, detalle.Pagos, 10)
			for i, pago := range detalle.Pagos {
				assert.Equal(t, i+1, pago.NumeroCuota)
				assert.Equal(t, entity.PagoPendiente, pago.Estado)
				assert.InDelta(t, 12000, pago.Monto, 0.001)

				esperada := inicio.Add(time.Duration(i+1) * tt.paso)
				assert.True(t, pago.FechaProgramada.Equal(esperada),
					"cuota %d expected %s got %s", i+1, esperada, pago.FechaProgramada)
			}

			require.NotNil(t, detalle.FechaFin)
			assert.True(t, detalle.FechaFin.Equal(inicio.Add(10*tt.paso)))
		})
	}
}

func TestCreatePrestamoInvalidFrecuencia(t *testing.T) {
	svc := NewPrestamoService(newFakePrestamoRepo(), newFakePagoRepo())

	_, err := svc.CreatePrestamo(context.Background(), &CreatePrestamoRequest{
		ClienteID:      1,
		Monto:          1000,
		Interes:        10,
		Plazo:          5,
		FrecuenciaPago: entity.FrecuenciaPago("anual"),
		FechaInicio:    time.Now(),
	})
	assert.ErrorIs(t, err, entity.ErrInvalidFrecuencia)
}

func TestUpdatePagoCompletesPrestamo(t *testing.T) {
	prestamoRepo := newFakePrestamoRepo()
	pagoRepo := newFakePagoRepo()

	prestamo := &entity.Prestamo{ClienteID: 1, Estado: entity.PrestamoActivo}
	require.NoError(t, prestamoRepo.CreateWithPagos(context.Background(), prestamo, nil))

	var pagoIDs []int64
	for i := 1; i <= 2; i++ {
		pago := &entity.Pago{
			PrestamoID:      prestamo.ID,
			NumeroCuota:     i,
			Monto:           500,
			FechaProgramada: time.Now(),
			Estado:          entity.PagoPendiente,
		}
		require.NoError(t, pagoRepo.Create(context.Background(), pago))
		pagoIDs = append(pagoIDs, pago.ID)
	}

	svc := NewPagoService(pagoRepo, prestamoRepo)
	pagado := entity.PagoPagado

	primero, err := svc.UpdatePago(context.Background(), pagoIDs[0], &UpdatePagoRequest{Estado: &pagado})
	require.NoError(t, err)
	require.NotNil(t, primero.FechaPago)

	actual, err := prestamoRepo.GetByID(context.Background(), prestamo.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.PrestamoActivo, actual.Estado, "loan stays active while installments remain")

	_, err = svc.UpdatePago(context.Background(), pagoIDs[1], &UpdatePagoRequest{Estado: &pagado})
	require.NoError(t, err)

	actual, err = prestamoRepo.GetByID(context.Background(), prestamo.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.PrestamoCompletado, actual.Estado)
}

func TestUpdatePagoFechaPagoSetOnce(t *testing.T) {
	prestamoRepo := newFakePrestamoRepo()
	pagoRepo := newFakePagoRepo()

	prestamo := &entity.Prestamo{ClienteID: 1}
	require.NoError(t, prestamoRepo.CreateWithPagos(context.Background(), prestamo, nil))

	pago := &entity.Pago{PrestamoID: prestamo.ID, NumeroCuota: 1, Monto: 500, FechaProgramada: time.Now(), Estado: entity.PagoPendiente}
	require.NoError(t, pagoRepo.Create(context.Background(), pago))

	svc := NewPagoService(pagoRepo, prestamoRepo)
	pagado := entity.PagoPagado

	primero, err := svc.UpdatePago(context.Background(), pago.ID, &UpdatePagoRequest{Estado: &pagado})
	require.NoError(t, err)
	require.NotNil(t, primero.FechaPago)

	segundo, err := svc.UpdatePago(context.Background(), pago.ID, &UpdatePagoRequest{Estado: &pagado})
	require.NoError(t, err)
	require.NotNil(t, segundo.FechaPago)
	assert.True(t, primero.FechaPago.Equal(*segundo.FechaPago))
}
