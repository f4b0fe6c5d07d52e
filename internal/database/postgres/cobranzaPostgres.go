package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/lib/pq"

	"github.com/cmvn/prestamos-gota-a-gota/internal/entity"
)

type cobranzaRepository struct {
	db *sql.DB
}

func NewCobranzaRepository(db *sql.DB) CobranzaRepository {
	return &cobranzaRepository{db: db}
}

const cobranzaColumns = `
	id, pago_id, cobrador_id, monto_esperado, monto_recibido, metodo_pago,
	estado, zona, direccion_cobro, ruta_id, orden_ruta, numero_recibo,
	fecha_programada, fecha_realizada, fecha_creacion, fecha_actualizacion,
	intentos, notas, requiere_supervisor
`

func (r *cobranzaRepository) Create(ctx context.Context, cobranza *entity.Cobranza) error {
	query := `
		INSERT INTO cobranzas (
			pago_id, cobrador_id, monto_esperado, estado, zona, direccion_cobro,
			ruta_id, orden_ruta, fecha_programada, fecha_creacion, intentos, requiere_supervisor
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING id
	`

	now := time.Now()
	err := r.db.QueryRowContext(ctx, query,
		cobranza.PagoID,
		cobranza.CobradorID,
		cobranza.MontoEsperado,
		entity.CobranzaPendiente,
		cobranza.Zona,
		cobranza.DireccionCobro,
		cobranza.RutaID,
		cobranza.OrdenRuta,
		cobranza.FechaProgramada,
		now,
		0,
		cobranza.RequiereSupervisor,
	).Scan(&cobranza.ID)

	if err != nil {
		return fmt.Errorf("failed to create cobranza: %w", err)
	}

	cobranza.Estado = entity.CobranzaPendiente
	cobranza.FechaCreacion = now
	cobranza.Intentos = 0
	return nil
}

func (r *cobranzaRepository) GetByID(ctx context.Context, id int64) (*entity.Cobranza, error) {
	query := `SELECT ` + cobranzaColumns + ` FROM cobranzas WHERE id = $1`

	var cobranza entity.Cobranza
	err := r.db.QueryRowContext(ctx, query, id).Scan(cobranzaFields(&cobranza)...)

	if err == sql.ErrNoRows {
		return nil, entity.ErrCobranzaNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get cobranza: %w", err)
	}

	return &cobranza, nil
}

func (r *cobranzaRepository) Update(ctx context.Context, cobranza *entity.Cobranza) error {
	query := `
		UPDATE cobranzas
		SET cobrador_id = $1, monto_esperado = $2, monto_recibido = $3, metodo_pago = $4,
		    estado = $5, zona = $6, direccion_cobro = $7, ruta_id = $8, orden_ruta = $9,
		    numero_recibo = $10, fecha_programada = $11, fecha_realizada = $12,
		    fecha_actualizacion = $13, intentos = $14, notas = $15, requiere_supervisor = $16
		WHERE id = $17
	`

	now := time.Now()
	result, err := r.db.ExecContext(ctx, query,
		cobranza.CobradorID,
		cobranza.MontoEsperado,
		cobranza.MontoRecibido,
		cobranza.MetodoPago,
		cobranza.Estado,
		cobranza.Zona,
		cobranza.DireccionCobro,
		cobranza.RutaID,
		cobranza.OrdenRuta,
		cobranza.NumeroRecibo,
		cobranza.FechaProgramada,
		cobranza.FechaRealizada,
		now,
		cobranza.Intentos,
		cobranza.Notas,
		cobranza.RequiereSupervisor,
		cobranza.ID,
	)

	if err != nil {
		return fmt.Errorf("failed to update cobranza: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return entity.ErrCobranzaNotFound
	}

	cobranza.FechaActualizacion = &now
	return nil
}

func (r *cobranzaRepository) GetByCobradorAndFecha(ctx context.Context, cobradorID int64, desde, hasta time.Time) ([]*entity.Cobranza, error) {
	query := `
		SELECT ` + cobranzaColumns + `
		FROM cobranzas
		WHERE cobrador_id = $1 AND fecha_programada >= $2 AND fecha_programada < $3
		ORDER BY fecha_programada
	`

	rows, err := r.db.QueryContext(ctx, query, cobradorID, desde, hasta)
	if err != nil {
		return nil, fmt.Errorf("failed to query cobranzas by cobrador: %w", err)
	}
	defer rows.Close()

	return scanCobranzas(rows)
}

func (r *cobranzaRepository) GetByFecha(ctx context.Context, desde, hasta time.Time) ([]*entity.Cobranza, error) {
	query := `
		SELECT ` + cobranzaColumns + `
		FROM cobranzas
		WHERE fecha_programada >= $1 AND fecha_programada < $2
		ORDER BY zona, cobrador_id, orden_ruta
	`

	rows, err := r.db.QueryContext(ctx, query, desde, hasta)
	if err != nil {
		return nil, fmt.Errorf("failed to query cobranzas by fecha: %w", err)
	}
	defer rows.Close()

	return scanCobranzas(rows)
}

// GetResumen aggregates collections over a date range: counts per estado
// (zero-filled), total amounts and counts per zona and cobrador.
func (r *cobranzaRepository) GetResumen(ctx context.Context, desde, hasta time.Time) (*entity.CobranzaResumen, error) {
	resumen := &entity.CobranzaResumen{
		PorZona:     make(map[string]int),
		PorCobrador: make(map[string]int),
		PorEstado:   make(map[entity.EstadoCobranza]int),
	}

	for _, estado := range []entity.EstadoCobranza{
		entity.CobranzaPendiente,
		entity.CobranzaEnProceso,
		entity.CobranzaCompletada,
		entity.CobranzaFallida,
		entity.CobranzaReprogramada,
	} {
		resumen.PorEstado[estado] = 0
	}

	query := `
		SELECT estado, COUNT(*)
		FROM cobranzas
		WHERE fecha_programada >= $1 AND fecha_programada <= $2
		GROUP BY estado
	`
	rows, err := r.db.QueryContext(ctx, query, desde, hasta)
	if err != nil {
		return nil, fmt.Errorf("failed to query cobranza estados: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var estado entity.EstadoCobranza
		var count int
		if err := rows.Scan(&estado, &count); err != nil {
			return nil, fmt.Errorf("failed to scan estado count: %w", err)
		}
		resumen.PorEstado[estado] = count
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating estado counts: %w", err)
	}

	resumen.TotalPendientes = resumen.PorEstado[entity.CobranzaPendiente]
	resumen.TotalCompletadas = resumen.PorEstado[entity.CobranzaCompletada]
	resumen.TotalFallidas = resumen.PorEstado[entity.CobranzaFallida]

	query = `
		SELECT COALESCE(SUM(monto_esperado), 0), COALESCE(SUM(monto_recibido), 0)
		FROM cobranzas
		WHERE fecha_programada >= $1 AND fecha_programada <= $2
	`
	err = r.db.QueryRowContext(ctx, query, desde, hasta).Scan(
		&resumen.MontoTotalEsperado,
		&resumen.MontoTotalRecibido,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query cobranza montos: %w", err)
	}

	query = `
		SELECT zona, COUNT(*)
		FROM cobranzas
		WHERE fecha_programada >= $1 AND fecha_programada <= $2
		GROUP BY zona
	`
	zonaRows, err := r.db.QueryContext(ctx, query, desde, hasta)
	if err != nil {
		return nil, fmt.Errorf("failed to query cobranza zonas: %w", err)
	}
	defer zonaRows.Close()

	for zonaRows.Next() {
		var zona string
		var count int
		if err := zonaRows.Scan(&zona, &count); err != nil {
			return nil, fmt.Errorf("failed to scan zona count: %w", err)
		}
		resumen.PorZona[zona] = count
	}
	if err := zonaRows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating zona counts: %w", err)
	}

	query = `
		SELECT u.nombre, COUNT(c.id)
		FROM cobranzas c
		JOIN usuarios u ON c.cobrador_id = u.id
		WHERE c.fecha_programada >= $1 AND c.fecha_programada <= $2
		GROUP BY u.nombre
	`
	cobradorRows, err := r.db.QueryContext(ctx, query, desde, hasta)
	if err != nil {
		return nil, fmt.Errorf("failed to query cobranza cobradores: %w", err)
	}
	defer cobradorRows.Close()

	for cobradorRows.Next() {
		var nombre string
		var count int
		if err := cobradorRows.Scan(&nombre, &count); err != nil {
			return nil, fmt.Errorf("failed to scan cobrador count: %w", err)
		}
		resumen.PorCobrador[nombre] = count
	}
	if err := cobradorRows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating cobrador counts: %w", err)
	}

	return resumen, nil
}

// Reasignar moves a batch of collections to another cobrador, optionally
// rescheduling them, and returns the updated rows.
func (r *cobranzaRepository) Reasignar(ctx context.Context, ids []int64, cobradorID int64, fechaProgramada *time.Time) ([]*entity.Cobranza, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	query := `UPDATE cobranzas SET cobrador_id = $1, fecha_actualizacion = $2`
	args := []interface{}{cobradorID, time.Now()}

	if fechaProgramada != nil {
		query += fmt.Sprintf(", fecha_programada = $%d", len(args)+1)
		args = append(args, *fechaProgramada)
	}

	query += ` WHERE id IN (`
	for i, id := range ids {
		if i > 0 {
			query += ","
		}
		query += fmt.Sprintf("$%d", len(args)+1)
		args = append(args, id)
	}
	query += ")"

	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		return nil, fmt.Errorf("failed to reasignar cobranzas: %w", err)
	}

	selectQuery := `SELECT ` + cobranzaColumns + ` FROM cobranzas WHERE id = ANY($1) ORDER BY id`
	rows, err := tx.QueryContext(ctx, selectQuery, pq.Array(ids))
	if err != nil {
		return nil, fmt.Errorf("failed to reload cobranzas: %w", err)
	}
	defer rows.Close()

	cobranzas, err := scanCobranzas(rows)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return cobranzas, nil
}

func cobranzaFields(c *entity.Cobranza) []interface{} {
	return []interface{}{
		&c.ID,
		&c.PagoID,
		&c.CobradorID,
		&c.MontoEsperado,
		&c.MontoRecibido,
		&c.MetodoPago,
		&c.Estado,
		&c.Zona,
		&c.DireccionCobro,
		&c.RutaID,
		&c.OrdenRuta,
		&c.NumeroRecibo,
		&c.FechaProgramada,
		&c.FechaRealizada,
		&c.FechaCreacion,
		&c.FechaActualizacion,
		&c.Intentos,
		&c.Notas,
		&c.RequiereSupervisor,
	}
}

func scanCobranzas(rows *sql.Rows) ([]*entity.Cobranza, error) {
	var cobranzas []*entity.Cobranza
	for rows.Next() {
		var cobranza entity.Cobranza
		if err := rows.Scan(cobranzaFields(&cobranza)...); err != nil {
			return nil, fmt.Errorf("failed to scan cobranza: %w", err)
		}
		cobranzas = append(cobranzas, &cobranza)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating cobranzas: %w", err)
	}

	return cobranzas, nil
}
