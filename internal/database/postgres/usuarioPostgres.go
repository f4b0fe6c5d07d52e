package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/cmvn/prestamos-gota-a-gota/internal/entity"
)

type usuarioRepository struct {
	db *sql.DB
}

func NewUsuarioRepository(db *sql.DB) UsuarioRepository {
	return &usuarioRepository{db: db}
}

func (r *usuarioRepository) Create(ctx context.Context, usuario *entity.Usuario) error {
	query := `
		INSERT INTO usuarios (email, nombre, hashed_password, rol_id, is_active, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`

	now := time.Now()
	err := r.db.QueryRowContext(ctx, query,
		usuario.Email,
		usuario.Nombre,
		usuario.HashedPassword,
		usuario.RolID,
		true,
		now,
	).Scan(&usuario.ID)

	if err != nil {
		return fmt.Errorf("failed to create usuario: %w", err)
	}

	usuario.IsActive = true
	usuario.CreatedAt = now
	return nil
}

func (r *usuarioRepository) GetByID(ctx context.Context, id int64) (*entity.Usuario, error) {
	query := `
		SELECT id, email, nombre, hashed_password, rol_id, is_active, created_at, updated_at
		FROM usuarios
		WHERE id = $1
	`

	var usuario entity.Usuario
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&usuario.ID,
		&usuario.Email,
		&usuario.Nombre,
		&usuario.HashedPassword,
		&usuario.RolID,
		&usuario.IsActive,
		&usuario.CreatedAt,
		&usuario.UpdatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, entity.ErrUsuarioNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get usuario: %w", err)
	}

	return &usuario, nil
}

func (r *usuarioRepository) GetByEmail(ctx context.Context, email string) (*entity.Usuario, error) {
	query := `
		SELECT id, email, nombre, hashed_password, rol_id, is_active, created_at, updated_at
		FROM usuarios
		WHERE email = $1
	`

	var usuario entity.Usuario
	err := r.db.QueryRowContext(ctx, query, email).Scan(
		&usuario.ID,
		&usuario.Email,
		&usuario.Nombre,
		&usuario.HashedPassword,
		&usuario.RolID,
		&usuario.IsActive,
		&usuario.CreatedAt,
		&usuario.UpdatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, entity.ErrUsuarioNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get usuario by email: %w", err)
	}

	return &usuario, nil
}

func (r *usuarioRepository) GetAll(ctx context.Context, limit, offset int) ([]*entity.Usuario, error) {
	query := `
		SELECT id, email, nombre, hashed_password, rol_id, is_active, created_at, updated_at
		FROM usuarios
		ORDER BY id
		LIMIT $1 OFFSET $2
	`

	rows, err := r.db.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query usuarios: %w", err)
	}
	defer rows.Close()

	var usuarios []*entity.Usuario
	for rows.Next() {
		var usuario entity.Usuario
		err := rows.Scan(
			&usuario.ID,
			&usuario.Email,
			&usuario.Nombre,
			&usuario.HashedPassword,
			&usuario.RolID,
			&usuario.IsActive,
			&usuario.CreatedAt,
			&usuario.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan usuario: %w", err)
		}
		usuarios = append(usuarios, &usuario)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating usuarios: %w", err)
	}

	return usuarios, nil
}

func (r *usuarioRepository) Update(ctx context.Context, usuario *entity.Usuario) error {
	query := `
		UPDATE usuarios
		SET email = $1, nombre = $2, hashed_password = $3, rol_id = $4, is_active = $5, updated_at = $6
		WHERE id = $7
	`

	now := time.Now()
	result, err := r.db.ExecContext(ctx, query,
		usuario.Email,
		usuario.Nombre,
		usuario.HashedPassword,
		usuario.RolID,
		usuario.IsActive,
		now,
		usuario.ID,
	)

	if err != nil {
		return fmt.Errorf("failed to update usuario: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return entity.ErrUsuarioNotFound
	}

	usuario.UpdatedAt = &now
	return nil
}

func (r *usuarioRepository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM usuarios WHERE id = $1`
	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete usuario: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return entity.ErrUsuarioNotFound
	}

	return nil
}
