package service

import (
	"context"
	"sort"
	"testing"
	"time"

	"github.com/cmvn/prestamos-gota-a-gota/internal/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCobranzaRepo struct {
	cobranzas map[int64]*entity.Cobranza
	nextID    int64
}

func newFakeCobranzaRepo() *fakeCobranzaRepo {
	return &fakeCobranzaRepo{cobranzas: make(map[int64]*entity.Cobranza), nextID: 1}
}

func (r *fakeCobranzaRepo) Create(_ context.Context, c *entity.Cobranza) error {
	c.ID = r.nextID
	r.nextID++
	c.Estado = entity.CobranzaPendiente
	c.FechaCreacion = time.Now()
	copia := *c
	r.cobranzas[c.ID] = &copia
	return nil
}

func (r *fakeCobranzaRepo) GetByID(_ context.Context, id int64) (*entity.Cobranza, error) {
	c, ok := r.cobranzas[id]
	if !ok {
		return nil, entity.ErrCobranzaNotFound
	}
	copia := *c
	return &copia, nil
}

func (r *fakeCobranzaRepo) Update(_ context.Context, c *entity.Cobranza) error {
	if _, ok := r.cobranzas[c.ID]; !ok {
		return entity.ErrCobranzaNotFound
	}
	copia := *c
	r.cobranzas[c.ID] = &copia
	return nil
}

func (r *fakeCobranzaRepo) GetByCobradorAndFecha(_ context.Context, cobradorID int64, desde, hasta time.Time) ([]*entity.Cobranza, error) {
	var out []*entity.Cobranza
	for _, c := range r.cobranzas {
		if c.CobradorID == cobradorID && !c.FechaProgramada.Before(desde) && c.FechaProgramada.Before(hasta) {
			copia := *c
			out = append(out, &copia)
		}
	}
	return out, nil
}

func (r *fakeCobranzaRepo) GetByFecha(_ context.Context, desde, hasta time.Time) ([]*entity.Cobranza, error) {
	var out []*entity.Cobranza
	for _, c := range r.cobranzas {
		if !c.FechaProgramada.Before(desde) && c.FechaProgramada.Before(hasta) {
			copia := *c
			out = append(out, &copia)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Zona != out[j].Zona {
			return out[i].Zona < out[j].Zona
		}
		if out[i].CobradorID != out[j].CobradorID {
			return out[i].CobradorID < out[j].CobradorID
		}
		oi, oj := 0, 0
		if out[i].OrdenRuta != nil {
			oi = *out[i].OrdenRuta
		}
		if out[j].OrdenRuta != nil {
			oj = *out[j].OrdenRuta
		}
		return oi < oj
	})
	return out, nil
}

func (r *fakeCobranzaRepo) GetResumen(_ context.Context, _, _ time.Time) (*entity.CobranzaResumen, error) {
	return &entity.CobranzaResumen{}, nil
}

func (r *fakeCobranzaRepo) Reasignar(_ context.Context, ids []int64, cobradorID int64, fechaProgramada *time.Time) ([]*entity.Cobranza, error) {
	var out []*entity.Cobranza
	for _, id := range ids {
		c, ok := r.cobranzas[id]
		if !ok {
			continue
		}
		c.CobradorID = cobradorID
		if fechaProgramada != nil {
			c.FechaProgramada = *fechaProgramada
		}
		copia := *c
		out = append(out, &copia)
	}
	return out, nil
}

func setupCobranzaService() (CobranzaService, *fakeCobranzaRepo, *fakePagoRepo) {
	cobranzaRepo := newFakeCobranzaRepo()
	pagoRepo := newFakePagoRepo()
	usuarios := newFakeUsuarioRepo(
		&entity.Usuario{ID: 1, Email: "uno@example.com", IsActive: true},
		&entity.Usuario{ID: 2, Email: "dos@example.com", IsActive: true},
	)
	return NewCobranzaService(cobranzaRepo, usuarios, pagoRepo), cobranzaRepo, pagoRepo
}

func crearCobranza(t *testing.T, svc CobranzaService, pagoRepo *fakePagoRepo, cobradorID int64, zona string, orden int, fecha time.Time) *entity.Cobranza {
	t.Helper()

	pago := &entity.Pago{PrestamoID: 1, NumeroCuota: 1, Monto: 500, FechaProgramada: fecha, Estado: entity.PagoPendiente}
	require.NoError(t, pagoRepo.Create(context.Background(), pago))

	cobranza, err := svc.CreateCobranza(context.Background(), &CreateCobranzaRequest{
		PagoID:          pago.ID,
		CobradorID:      cobradorID,
		MontoEsperado:   500,
		Zona:            zona,
		DireccionCobro:  "Calle 1 #2-3",
		OrdenRuta:       &orden,
		FechaProgramada: fecha,
	})
	require.NoError(t, err)
	return cobranza
}

func TestCreateCobranzaCobradorNotFound(t *testing.T) {
	svc, _, pagoRepo := setupCobranzaService()

	pago := &entity.Pago{PrestamoID: 1, NumeroCuota: 1, Monto: 500, FechaProgramada: time.Now(), Estado: entity.PagoPendiente}
	require.NoError(t, pagoRepo.Create(context.Background(), pago))

	_, err := svc.CreateCobranza(context.Background(), &CreateCobranzaRequest{
		PagoID:          pago.ID,
		CobradorID:      99,
		MontoEsperado:   500,
		Zona:            "norte",
		DireccionCobro:  "Calle 1",
		FechaProgramada: time.Now(),
	})
	assert.ErrorIs(t, err, entity.ErrCobradorNotFound)
}

func TestUpdateCobranzaCompletada(t *testing.T) {
	svc, _, pagoRepo := setupCobranzaService()
	cobranza := crearCobranza(t, svc, pagoRepo, 1, "norte", 1, time.Now())

	completada := entity.CobranzaCompletada
	recibido := 500.0
	efectivo := entity.MetodoEfectivo

	actualizada, err := svc.UpdateCobranza(context.Background(), cobranza.ID, &UpdateCobranzaRequest{
		Estado:        &completada,
		MontoRecibido: &recibido,
		MetodoPago:    &efectivo,
	})
	require.NoError(t, err)

	assert.Equal(t, entity.CobranzaCompletada, actualizada.Estado)
	require.NotNil(t, actualizada.FechaRealizada)
	require.NotNil(t, actualizada.NumeroRecibo)
	_, err = uuid.Parse(*actualizada.NumeroRecibo)
	assert.NoError(t, err, "numero_recibo must be a uuid")
	assert.Equal(t, 1, actualizada.Intentos)
}

func TestUpdateCobranzaReciboNotRegenerated(t *testing.T) {
	svc, repo, pagoRepo := setupCobranzaService()
	cobranza := crearCobranza(t, svc, pagoRepo, 1, "norte", 1, time.Now())

	completada := entity.CobranzaCompletada
	primera, err := svc.UpdateCobranza(context.Background(), cobranza.ID, &UpdateCobranzaRequest{Estado: &completada})
	require.NoError(t, err)
	require.NotNil(t, primera.NumeroRecibo)

	pendiente := entity.CobranzaPendiente
	_, err = svc.UpdateCobranza(context.Background(), cobranza.ID, &UpdateCobranzaRequest{Estado: &pendiente})
	require.NoError(t, err)

	segunda, err := svc.UpdateCobranza(context.Background(), cobranza.ID, &UpdateCobranzaRequest{Estado: &completada})
	require.NoError(t, err)
	require.NotNil(t, segunda.NumeroRecibo)
	assert.Equal(t, *primera.NumeroRecibo, *segunda.NumeroRecibo)

	guardada, err := repo.GetByID(context.Background(), cobranza.ID)
	require.NoError(t, err)
	assert.Equal(t, *primera.NumeroRecibo, *guardada.NumeroRecibo)
}

func TestAsignarCobranzas(t *testing.T) {
	svc, _, pagoRepo := setupCobranzaService()
	primera := crearCobranza(t, svc, pagoRepo, 1, "norte", 1, time.Now())
	segunda := crearCobranza(t, svc, pagoRepo, 1, "norte", 2, time.Now())

	nuevaFecha := time.Now().AddDate(0, 0, 1)
	reasignadas, err := svc.AsignarCobranzas(context.Background(), &AsignarCobranzasRequest{
		CobranzaIDs:     []int64{primera.ID, segunda.ID},
		CobradorID:      2,
		FechaProgramada: &nuevaFecha,
	})
	require.NoError(t, err)

	require.Len(t, reasignadas, 2)
	for _, c := range reasignadas {
		assert.Equal(t, int64(2), c.CobradorID)
		assert.True(t, c.FechaProgramada.Equal(nuevaFecha))
	}
}

func TestAsignarCobranzasCobradorNotFound(t *testing.T) {
	svc, _, _ := setupCobranzaService()

	_, err := svc.AsignarCobranzas(context.Background(), &AsignarCobranzasRequest{
		CobranzaIDs: []int64{1},
		CobradorID:  99,
	})
	assert.ErrorIs(t, err, entity.ErrCobradorNotFound)
}

func TestGetRutasDelDia(t *testing.T) {
	svc, _, pagoRepo := setupCobranzaService()
	hoy := time.Date(2026, 5, 10, 9, 0, 0, 0, time.UTC)

	crearCobranza(t, svc, pagoRepo, 1, "norte", 2, hoy)
	crearCobranza(t, svc, pagoRepo, 1, "norte", 1, hoy)
	crearCobranza(t, svc, pagoRepo, 2, "norte", 1, hoy)
	crearCobranza(t, svc, pagoRepo, 1, "sur", 1, hoy)
	crearCobranza(t, svc, pagoRepo, 1, "sur", 1, hoy.AddDate(0, 0, 1)) // mañana, fuera del día

	rutas, err := svc.GetRutasDelDia(context.Background(), hoy)
	require.NoError(t, err)

	require.Len(t, rutas, 3)

	assert.Equal(t, "norte", rutas[0].Zona)
	assert.Equal(t, int64(1), rutas[0].CobradorID)
	require.Len(t, rutas[0].Cobranzas, 2)
	assert.Equal(t, 1, *rutas[0].Cobranzas[0].OrdenRuta)
	assert.Equal(t, 2, *rutas[0].Cobranzas[1].OrdenRuta)

	assert.Equal(t, "norte", rutas[1].Zona)
	assert.Equal(t, int64(2), rutas[1].CobradorID)
	require.Len(t, rutas[1].Cobranzas, 1)

	assert.Equal(t, "sur", rutas[2].Zona)
	assert.Equal(t, int64(1), rutas[2].CobradorID)
	require.Len(t, rutas[2].Cobranzas, 1)
}
