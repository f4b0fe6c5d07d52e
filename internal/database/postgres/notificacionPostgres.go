package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/cmvn/prestamos-gota-a-gota/internal/entity"
)

type notificacionRepository struct {
	db *sql.DB
}

func NewNotificacionRepository(db *sql.DB) NotificacionRepository {
	return &notificacionRepository{db: db}
}

const notificacionColumns = `
	id, tipo, canal, titulo, mensaje, datos_adicionales, usuario_id,
	prestamo_id, pago_id, cobranza_id, estado, fecha_creacion, fecha_envio, fecha_lectura
`

func (r *notificacionRepository) Create(ctx context.Context, notificacion *entity.Notificacion) error {
	query := `
		INSERT INTO notificaciones (
			tipo, canal, titulo, mensaje, datos_adicionales, usuario_id,
			prestamo_id, pago_id, cobranza_id, estado, fecha_creacion
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id
	`

	now := time.Now()
	err := r.db.QueryRowContext(ctx, query,
		notificacion.Tipo,
		notificacion.Canal,
		notificacion.Titulo,
		notificacion.Mensaje,
		notificacion.DatosAdicionales,
		notificacion.UsuarioID,
		notificacion.PrestamoID,
		notificacion.PagoID,
		notificacion.CobranzaID,
		entity.NotificacionPendiente,
		now,
	).Scan(&notificacion.ID)

	if err != nil {
		return fmt.Errorf("failed to create notificacion: %w", err)
	}

	notificacion.Estado = entity.NotificacionPendiente
	notificacion.FechaCreacion = now
	return nil
}

func (r *notificacionRepository) GetByID(ctx context.Context, id int64) (*entity.Notificacion, error) {
	query := `SELECT ` + notificacionColumns + ` FROM notificaciones WHERE id = $1`

	var notificacion entity.Notificacion
	err := r.db.QueryRowContext(ctx, query, id).Scan(notificacionFields(&notificacion)...)

	if err == sql.ErrNoRows {
		return nil, entity.ErrNotificacionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get notificacion: %w", err)
	}

	return &notificacion, nil
}

func (r *notificacionRepository) Update(ctx context.Context, notificacion *entity.Notificacion) error {
	query := `
		UPDATE notificaciones
		SET estado = $1, datos_adicionales = $2, fecha_envio = $3, fecha_lectura = $4
		WHERE id = $5
	`

	result, err := r.db.ExecContext(ctx, query,
		notificacion.Estado,
		notificacion.DatosAdicionales,
		notificacion.FechaEnvio,
		notificacion.FechaLectura,
		notificacion.ID,
	)

	if err != nil {
		return fmt.Errorf("failed to update notificacion: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return entity.ErrNotificacionNotFound
	}

	return nil
}

func (r *notificacionRepository) GetByUsuario(ctx context.Context, usuarioID int64) ([]*entity.Notificacion, error) {
	query := `
		SELECT ` + notificacionColumns + `
		FROM notificaciones
		WHERE usuario_id = $1
		ORDER BY fecha_creacion DESC
	`

	rows, err := r.db.QueryContext(ctx, query, usuarioID)
	if err != nil {
		return nil, fmt.Errorf("failed to query notificaciones by usuario: %w", err)
	}
	defer rows.Close()

	return scanNotificaciones(rows)
}

func (r *notificacionRepository) GetByEstado(ctx context.Context, estado entity.EstadoNotificacion) ([]*entity.Notificacion, error) {
	query := `
		SELECT ` + notificacionColumns + `
		FROM notificaciones
		WHERE estado = $1
		ORDER BY id
	`

	rows, err := r.db.QueryContext(ctx, query, estado)
	if err != nil {
		return nil, fmt.Errorf("failed to query notificaciones by estado: %w", err)
	}
	defer rows.Close()

	return scanNotificaciones(rows)
}

func (r *notificacionRepository) CountByEstado(ctx context.Context) (map[entity.EstadoNotificacion]int, error) {
	query := `SELECT estado, COUNT(*) FROM notificaciones GROUP BY estado`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to count notificaciones by estado: %w", err)
	}
	defer rows.Close()

	counts := make(map[entity.EstadoNotificacion]int)
	for rows.Next() {
		var estado entity.EstadoNotificacion
		var count int
		if err := rows.Scan(&estado, &count); err != nil {
			return nil, fmt.Errorf("failed to scan estado count: %w", err)
		}
		counts[estado] = count
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating estado counts: %w", err)
	}

	return counts, nil
}

func (r *notificacionRepository) CountByTipo(ctx context.Context) (map[entity.TipoNotificacion]int, error) {
	query := `SELECT tipo, COUNT(*) FROM notificaciones GROUP BY tipo`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to count notificaciones by tipo: %w", err)
	}
	defer rows.Close()

	counts := make(map[entity.TipoNotificacion]int)
	for rows.Next() {
		var tipo entity.TipoNotificacion
		var count int
		if err := rows.Scan(&tipo, &count); err != nil {
			return nil, fmt.Errorf("failed to scan tipo count: %w", err)
		}
		counts[tipo] = count
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating tipo counts: %w", err)
	}

	return counts, nil
}

func (r *notificacionRepository) CountByCanal(ctx context.Context) (map[entity.CanalNotificacion]int, error) {
	query := `SELECT canal, COUNT(*) FROM notificaciones GROUP BY canal`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to count notificaciones by canal: %w", err)
	}
	defer rows.Close()

	counts := make(map[entity.CanalNotificacion]int)
	for rows.Next() {
		var canal entity.CanalNotificacion
		var count int
		if err := rows.Scan(&canal, &count); err != nil {
			return nil, fmt.Errorf("failed to scan canal count: %w", err)
		}
		counts[canal] = count
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating canal counts: %w", err)
	}

	return counts, nil
}

func notificacionFields(n *entity.Notificacion) []interface{} {
	return []interface{}{
		&n.ID,
		&n.Tipo,
		&n.Canal,
		&n.Titulo,
		&n.Mensaje,
		&n.DatosAdicionales,
		&n.UsuarioID,
		&n.PrestamoID,
		&n.PagoID,
		&n.CobranzaID,
		&n.Estado,
		&n.FechaCreacion,
		&n.FechaEnvio,
		&n.FechaLectura,
	}
}

func scanNotificaciones(rows *sql.Rows) ([]*entity.Notificacion, error) {
	var notificaciones []*entity.Notificacion
	for rows.Next() {
		var notificacion entity.Notificacion
		if err := rows.Scan(notificacionFields(&notificacion)...); err != nil {
			return nil, fmt.Errorf("failed to scan notificacion: %w", err)
		}
		notificaciones = append(notificaciones, &notificacion)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating notificaciones: %w", err)
	}

	return notificaciones, nil
}
