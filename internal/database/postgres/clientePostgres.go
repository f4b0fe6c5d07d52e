package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/cmvn/prestamos-gota-a-gota/internal/entity"
)

type clienteRepository struct {
	db *sql.DB
}

func NewClienteRepository(db *sql.DB) ClienteRepository {
	return &clienteRepository{db: db}
}

func (r *clienteRepository) Create(ctx context.Context, cliente *entity.Cliente) error {
	var existing int64
	query := `SELECT COUNT(*) FROM clientes WHERE cedula = $1`
	if err := r.db.QueryRowContext(ctx, query, cliente.Cedula).Scan(&existing); err != nil {
		return fmt.Errorf("failed to check cedula: %w", err)
	}
	if existing > 0 {
		return entity.ErrCedulaAlreadyExists
	}

	query = `
		INSERT INTO clientes (cedula, nombre, apellido, telefono, direccion, email, fecha_registro, activo)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id
	`

	now := time.Now()
	err := r.db.QueryRowContext(ctx, query,
		cliente.Cedula,
		cliente.Nombre,
		cliente.Apellido,
		cliente.Telefono,
		cliente.Direccion,
		cliente.Email,
		now,
		true,
	).Scan(&cliente.ID)

	if err != nil {
		return fmt.Errorf("failed to create cliente: %w", err)
	}

	cliente.FechaRegistro = now
	cliente.Activo = true
	return nil
}

func (r *clienteRepository) GetByID(ctx context.Context, id int64) (*entity.Cliente, error) {
	query := `
		SELECT id, cedula, nombre, apellido, telefono, direccion, email, fecha_registro, activo
		FROM clientes
		WHERE id = $1
	`

	var cliente entity.Cliente
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&cliente.ID,
		&cliente.Cedula,
		&cliente.Nombre,
		&cliente.Apellido,
		&cliente.Telefono,
		&cliente.Direccion,
		&cliente.Email,
		&cliente.FechaRegistro,
		&cliente.Activo,
	)

	if err == sql.ErrNoRows {
		return nil, entity.ErrClienteNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get cliente: %w", err)
	}

	return &cliente, nil
}

func (r *clienteRepository) GetByCedula(ctx context.Context, cedula string) (*entity.Cliente, error) {
	query := `
		SELECT id, cedula, nombre, apellido, telefono, direccion, email, fecha_registro, activo
		FROM clientes
		WHERE cedula = $1
	`

	var cliente entity.Cliente
	err := r.db.QueryRowContext(ctx, query, cedula).Scan(
		&cliente.ID,
		&cliente.Cedula,
		&cliente.Nombre,
		&cliente.Apellido,
		&cliente.Telefono,
		&cliente.Direccion,
		&cliente.Email,
		&cliente.FechaRegistro,
		&cliente.Activo,
	)

	if err == sql.ErrNoRows {
		return nil, entity.ErrClienteNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get cliente by cedula: %w", err)
	}

	return &cliente, nil
}

func (r *clienteRepository) GetAll(ctx context.Context, limit, offset int) ([]*entity.Cliente, error) {
	query := `
		SELECT id, cedula, nombre, apellido, telefono, direccion, email, fecha_registro, activo
		FROM clientes
		ORDER BY id
		LIMIT $1 OFFSET $2
	`

	rows, err := r.db.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query clientes: %w", err)
	}
	defer rows.Close()

	var clientes []*entity.Cliente
	for rows.Next() {
		var cliente entity.Cliente
		err := rows.Scan(
			&cliente.ID,
			&cliente.Cedula,
			&cliente.Nombre,
			&cliente.Apellido,
			&cliente.Telefono,
			&cliente.Direccion,
			&cliente.Email,
			&cliente.FechaRegistro,
			&cliente.Activo,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan cliente: %w", err)
		}
		clientes = append(clientes, &cliente)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating clientes: %w", err)
	}

	return clientes, nil
}

func (r *clienteRepository) Update(ctx context.Context, cliente *entity.Cliente) error {
	query := `
		UPDATE clientes
		SET cedula = $1, nombre = $2, apellido = $3, telefono = $4, direccion = $5, email = $6, activo = $7
		WHERE id = $8
	`

	result, err := r.db.ExecContext(ctx, query,
		cliente.Cedula,
		cliente.Nombre,
		cliente.Apellido,
		cliente.Telefono,
		cliente.Direccion,
		cliente.Email,
		cliente.Activo,
		cliente.ID,
	)

	if err != nil {
		return fmt.Errorf("failed to update cliente: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return entity.ErrClienteNotFound
	}

	return nil
}

func (r *clienteRepository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM clientes WHERE id = $1`
	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete cliente: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return entity.ErrClienteNotFound
	}

	return nil
}
