package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/cmvn/prestamos-gota-a-gota/internal/entity"
)

type rutaRepository struct {
	db *sql.DB
}

func NewRutaRepository(db *sql.DB) RutaRepository {
	return &rutaRepository{db: db}
}

func (r *rutaRepository) Create(ctx context.Context, ruta *entity.Ruta) error {
	query := `
		INSERT INTO rutas (nombre, zona, cobrador_id, descripcion, activa)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`

	err := r.db.QueryRowContext(ctx, query,
		ruta.Nombre,
		ruta.Zona,
		ruta.CobradorID,
		ruta.Descripcion,
		true,
	).Scan(&ruta.ID)

	if err != nil {
		return fmt.Errorf("failed to create ruta: %w", err)
	}

	ruta.Activa = true
	return nil
}

func (r *rutaRepository) GetByID(ctx context.Context, id int64) (*entity.Ruta, error) {
	query := `
		SELECT id, nombre, zona, cobrador_id, descripcion, activa
		FROM rutas
		WHERE id = $1
	`

	var ruta entity.Ruta
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&ruta.ID,
		&ruta.Nombre,
		&ruta.Zona,
		&ruta.CobradorID,
		&ruta.Descripcion,
		&ruta.Activa,
	)

	if err == sql.ErrNoRows {
		return nil, entity.ErrRutaNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get ruta: %w", err)
	}

	return &ruta, nil
}

func (r *rutaRepository) GetByCobrador(ctx context.Context, cobradorID int64) ([]*entity.Ruta, error) {
	query := `
		SELECT id, nombre, zona, cobrador_id, descripcion, activa
		FROM rutas
		WHERE cobrador_id = $1
		ORDER BY id
	`

	rows, err := r.db.QueryContext(ctx, query, cobradorID)
	if err != nil {
		return nil, fmt.Errorf("failed to query rutas by cobrador: %w", err)
	}
	defer rows.Close()

	var rutas []*entity.Ruta
	for rows.Next() {
		var ruta entity.Ruta
		err := rows.Scan(
			&ruta.ID,
			&ruta.Nombre,
			&ruta.Zona,
			&ruta.CobradorID,
			&ruta.Descripcion,
			&ruta.Activa,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan ruta: %w", err)
		}
		rutas = append(rutas, &ruta)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rutas: %w", err)
	}

	return rutas, nil
}

func (r *rutaRepository) Update(ctx context.Context, ruta *entity.Ruta) error {
	query := `
		UPDATE rutas
		SET nombre = $1, zona = $2, cobrador_id = $3, descripcion = $4, activa = $5
		WHERE id = $6
	`

	result, err := r.db.ExecContext(ctx, query,
		ruta.Nombre,
		ruta.Zona,
		ruta.CobradorID,
		ruta.Descripcion,
		ruta.Activa,
		ruta.ID,
	)

	if err != nil {
		return fmt.Errorf("failed to update ruta: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return entity.ErrRutaNotFound
	}

	return nil
}

func (r *rutaRepository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM rutas WHERE id = $1`
	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete ruta: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return entity.ErrRutaNotFound
	}

	return nil
}
