package service

import (
	"context"
	"errors"
	"sort"
	"testing"
	"time"

	"github.com/cmvn/prestamos-gota-a-gota/internal/entity"
	"github.com/cmvn/prestamos-gota-a-gota/internal/notifier"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeNotificacionRepo struct {
	notificaciones map[int64]*entity.Notificacion
	nextID         int64
}

func newFakeNotificacionRepo() *fakeNotificacionRepo {
	return &fakeNotificacionRepo{notificaciones: make(map[int64]*entity.Notificacion), nextID: 1}
}

func (r *fakeNotificacionRepo) Create(_ context.Context, n *entity.Notificacion) error {
	n.ID = r.nextID
	r.nextID++
	n.Estado = entity.NotificacionPendiente
	n.FechaCreacion = time.Now()
	copia := *n
	r.notificaciones[n.ID] = &copia
	return nil
}

func (r *fakeNotificacionRepo) GetByID(_ context.Context, id int64) (*entity.Notificacion, error) {
	n, ok := r.notificaciones[id]
	if !ok {
		return nil, entity.ErrNotificacionNotFound
	}
	copia := *n
	return &copia, nil
}

func (r *fakeNotificacionRepo) Update(_ context.Context, n *entity.Notificacion) error {
	if _, ok := r.notificaciones[n.ID]; !ok {
		return entity.ErrNotificacionNotFound
	}
	copia := *n
	r.notificaciones[n.ID] = &copia
	return nil
}

func (r *fakeNotificacionRepo) GetByUsuario(_ context.Context, usuarioID int64) ([]*entity.Notificacion, error) {
	var out []*entity.Notificacion
	for _, n := range r.notificaciones {
		if n.UsuarioID == usuarioID {
			copia := *n
			out = append(out, &copia)
		}
	}
	return out, nil
}

func (r *fakeNotificacionRepo) GetByEstado(_ context.Context, estado entity.EstadoNotificacion) ([]*entity.Notificacion, error) {
	var out []*entity.Notificacion
	for _, n := range r.notificaciones {
		if n.Estado == estado {
			copia := *n
			out = append(out, &copia)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *fakeNotificacionRepo) CountByEstado(_ context.Context) (map[entity.EstadoNotificacion]int, error) {
	counts := make(map[entity.EstadoNotificacion]int)
	for _, n := range r.notificaciones {
		counts[n.Estado]++
	}
	return counts, nil
}

func (r *fakeNotificacionRepo) CountByTipo(_ context.Context) (map[entity.TipoNotificacion]int, error) {
	counts := make(map[entity.TipoNotificacion]int)
	for _, n := range r.notificaciones {
		counts[n.Tipo]++
	}
	return counts, nil
}

func (r *fakeNotificacionRepo) CountByCanal(_ context.Context) (map[entity.CanalNotificacion]int, error) {
	counts := make(map[entity.CanalNotificacion]int)
	for _, n := range r.notificaciones {
		counts[n.Canal]++
	}
	return counts, nil
}

type fakeUsuarioRepo struct {
	usuarios map[int64]*entity.Usuario
}

func newFakeUsuarioRepo(usuarios ...*entity.Usuario) *fakeUsuarioRepo {
	r := &fakeUsuarioRepo{usuarios: make(map[int64]*entity.Usuario)}
	for _, u := range usuarios {
		r.usuarios[u.ID] = u
	}
	return r
}

func (r *fakeUsuarioRepo) Create(_ context.Context, u *entity.Usuario) error {
	r.usuarios[u.ID] = u
	return nil
}

func (r *fakeUsuarioRepo) GetByID(_ context.Context, id int64) (*entity.Usuario, error) {
	u, ok := r.usuarios[id]
	if !ok {
		return nil, entity.ErrUsuarioNotFound
	}
	return u, nil
}

func (r *fakeUsuarioRepo) GetByEmail(_ context.Context, email string) (*entity.Usuario, error) {
	for _, u := range r.usuarios {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, entity.ErrUsuarioNotFound
}

func (r *fakeUsuarioRepo) GetAll(_ context.Context, _, _ int) ([]*entity.Usuario, error) {
	var out []*entity.Usuario
	for _, u := range r.usuarios {
		out = append(out, u)
	}
	return out, nil
}

func (r *fakeUsuarioRepo) Update(_ context.Context, u *entity.Usuario) error {
	if _, ok := r.usuarios[u.ID]; !ok {
		return entity.ErrUsuarioNotFound
	}
	r.usuarios[u.ID] = u
	return nil
}

func (r *fakeUsuarioRepo) Delete(_ context.Context, id int64) error {
	if _, ok := r.usuarios[id]; !ok {
		return entity.ErrUsuarioNotFound
	}
	delete(r.usuarios, id)
	return nil
}

type stubProvider struct {
	err      error
	sent     int
	destinos []string
}

func (p *stubProvider) Send(_ context.Context, destino, _, _ string, _ entity.JSONMap) error {
	p.sent++
	p.destinos = append(p.destinos, destino)
	return p.err
}

type stubResolver struct {
	provider notifier.Provider
}

func (r *stubResolver) Resolve(_ entity.CanalNotificacion) notifier.Provider {
	return r.provider
}

func setupNotificacionService(provider notifier.Provider) (NotificacionService, *fakeNotificacionRepo) {
	repo := newFakeNotificacionRepo()
	usuarios := newFakeUsuarioRepo(&entity.Usuario{ID: 1, Email: "cobrador@example.com", Nombre: "Pedro", IsActive: true})
	svc := NewNotificacionService(repo, usuarios, &stubResolver{provider: provider})
	return svc, repo
}

func crearPendiente(t *testing.T, svc NotificacionService) *entity.Notificacion {
	t.Helper()
	n, err := svc.CrearNotificacion(context.Background(), &CrearNotificacionRequest{
		Tipo:      entity.TipoPago,
		Canal:     entity.CanalEmail,
		Titulo:    "Pago recibido",
		Mensaje:   "Se registro el pago de la cuota 3",
		UsuarioID: 1,
	})
	require.NoError(t, err)
	require.Equal(t, entity.NotificacionPendiente, n.Estado)
	return n
}

func TestEnviarNotificacionSuccess(t *testing.T) {
	provider := &stubProvider{}
	svc, _ := setupNotificacionService(provider)
	n := crearPendiente(t, svc)

	enviada, err := svc.EnviarNotificacion(context.Background(), n.ID)
	require.NoError(t, err)

	assert.Equal(t, entity.NotificacionEnviada, enviada.Estado)
	require.NotNil(t, enviada.FechaEnvio)
	assert.Equal(t, 1, provider.sent)
	assert.Equal(t, []string{"cobrador@example.com"}, provider.destinos)
}

func TestEnviarNotificacionFechaEnvioSetOnce(t *testing.T) {
	provider := &stubProvider{}
	svc, _ := setupNotificacionService(provider)
	n := crearPendiente(t, svc)

	primera, err := svc.EnviarNotificacion(context.Background(), n.ID)
	require.NoError(t, err)
	require.NotNil(t, primera.FechaEnvio)

	segunda, err := svc.EnviarNotificacion(context.Background(), n.ID)
	require.NoError(t, err)
	require.NotNil(t, segunda.FechaEnvio)
	assert.True(t, primera.FechaEnvio.Equal(*segunda.FechaEnvio), "fecha_envio must keep the first delivery timestamp")
}

func TestEnviarNotificacionFailure(t *testing.T) {
	provider := &stubProvider{err: errors.New("smtp: connection refused")}
	svc, _ := setupNotificacionService(provider)

	n, err := svc.CrearNotificacion(context.Background(), &CrearNotificacionRequest{
		Tipo:             entity.TipoAlerta,
		Canal:            entity.CanalEmail,
		Titulo:           "Cuota vencida",
		Mensaje:          "La cuota 5 esta vencida",
		DatosAdicionales: entity.JSONMap{"prestamo": "PR-9"},
		UsuarioID:        1,
	})
	require.NoError(t, err)

	fallida, err := svc.EnviarNotificacion(context.Background(), n.ID)
	require.NoError(t, err)

	assert.Equal(t, entity.NotificacionFallida, fallida.Estado)
	assert.Nil(t, fallida.FechaEnvio)
	assert.Equal(t, "smtp: connection refused", fallida.DatosAdicionales["error"])
	assert.Equal(t, "PR-9", fallida.DatosAdicionales["prestamo"], "existing metadata must survive the error merge")
}

func TestEnviarNotificacionNotFound(t *testing.T) {
	svc, _ := setupNotificacionService(&stubProvider{})

	_, err := svc.EnviarNotificacion(context.Background(), 999)
	assert.ErrorIs(t, err, entity.ErrNotificacionNotFound)
}

func TestMarcarLeida(t *testing.T) {
	svc, _ := setupNotificacionService(&stubProvider{})
	n := crearPendiente(t, svc)

	leida, err := svc.MarcarLeida(context.Background(), n.ID)
	require.NoError(t, err)

	assert.Equal(t, entity.NotificacionLeida, leida.Estado)
	require.NotNil(t, leida.FechaLectura)

	otraVez, err := svc.MarcarLeida(context.Background(), n.ID)
	require.NoError(t, err)
	assert.True(t, leida.FechaLectura.Equal(*otraVez.FechaLectura))
}

func TestGetResumenZeroFilled(t *testing.T) {
	svc, _ := setupNotificacionService(&stubProvider{})
	crearPendiente(t, svc)

	resumen, err := svc.GetResumen(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 1, resumen.TotalPendientes)
	assert.Equal(t, 0, resumen.TotalEnviadas)
	assert.Equal(t, 0, resumen.TotalFallidas)
	assert.Equal(t, 0, resumen.TotalLeidas)

	assert.Len(t, resumen.PorTipo, len(entity.Tipos()))
	assert.Len(t, resumen.PorCanal, len(entity.Canales()))
	for _, tipo := range entity.Tipos() {
		_, ok := resumen.PorTipo[string(tipo)]
		assert.True(t, ok, "tipo %s missing from resumen", tipo)
	}
	for _, canal := range entity.Canales() {
		_, ok := resumen.PorCanal[string(canal)]
		assert.True(t, ok, "canal %s missing from resumen", canal)
	}

	assert.Equal(t, 1, resumen.PorTipo[string(entity.TipoPago)])
	assert.Equal(t, 1, resumen.PorCanal[string(entity.CanalEmail)])
}

type flakyProvider struct {
	failFor map[string]bool
	sent    []string
}

func (p *flakyProvider) Send(_ context.Context, _, titulo, _ string, _ entity.JSONMap) error {
	p.sent = append(p.sent, titulo)
	if p.failFor[titulo] {
		return errors.New("provider unavailable")
	}
	return nil
}

func TestReenviarFallidas(t *testing.T) {
	provider := &flakyProvider{failFor: map[string]bool{"segunda": true}}
	repo := newFakeNotificacionRepo()
	usuarios := newFakeUsuarioRepo(&entity.Usuario{ID: 1, Email: "cobrador@example.com", IsActive: true})
	svc := NewNotificacionService(repo, usuarios, &stubResolver{provider: provider})

	for _, titulo := range []string{"primera", "segunda", "tercera"} {
		n, err := svc.CrearNotificacion(context.Background(), &CrearNotificacionRequest{
			Tipo:      entity.TipoSistema,
			Canal:     entity.CanalEmail,
			Titulo:    titulo,
			Mensaje:   "m",
			UsuarioID: 1,
		})
		require.NoError(t, err)

		n.Estado = entity.NotificacionFallida
		require.NoError(t, repo.Update(context.Background(), n))
	}

	reenviadas, err := svc.ReenviarFallidas(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 2, reenviadas)
	assert.Equal(t, []string{"primera", "segunda", "tercera"}, provider.sent, "sweep must follow id order")

	todaviaFallidas, err := repo.GetByEstado(context.Background(), entity.NotificacionFallida)
	require.NoError(t, err)
	require.Len(t, todaviaFallidas, 1)
	assert.Equal(t, "segunda", todaviaFallidas[0].Titulo)
}

func TestReenviarFallidasEmpty(t *testing.T) {
	svc, _ := setupNotificacionService(&stubProvider{})

	reenviadas, err := svc.ReenviarFallidas(context.Background())
	require.NoError(t, err)
	assert.Zero(t, reenviadas)
}
