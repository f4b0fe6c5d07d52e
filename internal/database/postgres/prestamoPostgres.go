package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/cmvn/prestamos-gota-a-gota/internal/entity"
)

type prestamoRepository struct {
	db *sql.DB
}

func NewPrestamoRepository(db *sql.DB) PrestamoRepository {
	return &prestamoRepository{db: db}
}

// CreateWithPagos creates the loan and its installment schedule atomically.
func (r *prestamoRepository) CreateWithPagos(ctx context.Context, prestamo *entity.Prestamo, pagos []*entity.Pago) error {
	tx, err := r.db.BeginTx(ctx, &sql.TxOptions{
		Isolation: sql.LevelReadCommitted,
	})
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var clienteExists int
	query := `SELECT COUNT(*) FROM clientes WHERE id = $1`
	if err := tx.QueryRowContext(ctx, query, prestamo.ClienteID).Scan(&clienteExists); err != nil {
		return fmt.Errorf("failed to check cliente: %w", err)
	}
	if clienteExists == 0 {
		return entity.ErrClienteNotFound
	}

	query = `
		INSERT INTO prestamos (
			cliente_id, monto, interes, plazo, frecuencia_pago,
			fecha_inicio, fecha_fin, estado, monto_total, valor_cuota
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id
	`

	err = tx.QueryRowContext(ctx, query,
		prestamo.ClienteID,
		prestamo.Monto,
		prestamo.Interes,
		prestamo.Plazo,
		prestamo.FrecuenciaPago,
		prestamo.FechaInicio,
		prestamo.FechaFin,
		prestamo.Estado,
		prestamo.MontoTotal,
		prestamo.ValorCuota,
	).Scan(&prestamo.ID)

	if err != nil {
		return fmt.Errorf("failed to create prestamo: %w", err)
	}

	query = `
		INSERT INTO pagos (prestamo_id, numero_cuota, monto, fecha_programada, estado)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`

	for _, pago := range pagos {
		pago.PrestamoID = prestamo.ID
		err = tx.QueryRowContext(ctx, query,
			pago.PrestamoID,
			pago.NumeroCuota,
			pago.Monto,
			pago.FechaProgramada,
			pago.Estado,
		).Scan(&pago.ID)
		if err != nil {
			return fmt.Errorf("failed to create pago %d: %w", pago.NumeroCuota, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

func (r *prestamoRepository) GetByID(ctx context.Context, id int64) (*entity.Prestamo, error) {
	query := `
		SELECT id, cliente_id, monto, interes, plazo, frecuencia_pago,
		       fecha_inicio, fecha_fin, estado, monto_total, valor_cuota
		FROM prestamos
		WHERE id = $1
	`

	var prestamo entity.Prestamo
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&prestamo.ID,
		&prestamo.ClienteID,
		&prestamo.Monto,
		&prestamo.Interes,
		&prestamo.Plazo,
		&prestamo.FrecuenciaPago,
		&prestamo.FechaInicio,
		&prestamo.FechaFin,
		&prestamo.Estado,
		&prestamo.MontoTotal,
		&prestamo.ValorCuota,
	)

	if err == sql.ErrNoRows {
		return nil, entity.ErrPrestamoNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get prestamo: %w", err)
	}

	return &prestamo, nil
}

func (r *prestamoRepository) GetAll(ctx context.Context, limit, offset int) ([]*entity.Prestamo, error) {
	query := `
		SELECT id, cliente_id, monto, interes, plazo, frecuencia_pago,
		       fecha_inicio, fecha_fin, estado, monto_total, valor_cuota
		FROM prestamos
		ORDER BY id
		LIMIT $1 OFFSET $2
	`

	rows, err := r.db.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query prestamos: %w", err)
	}
	defer rows.Close()

	return scanPrestamos(rows)
}

func (r *prestamoRepository) GetByCliente(ctx context.Context, clienteID int64) ([]*entity.Prestamo, error) {
	query := `
		SELECT id, cliente_id, monto, interes, plazo, frecuencia_pago,
		       fecha_inicio, fecha_fin, estado, monto_total, valor_cuota
		FROM prestamos
		WHERE cliente_id = $1
		ORDER BY fecha_inicio DESC
	`

	rows, err := r.db.QueryContext(ctx, query, clienteID)
	if err != nil {
		return nil, fmt.Errorf("failed to query prestamos by cliente: %w", err)
	}
	defer rows.Close()

	return scanPrestamos(rows)
}

func scanPrestamos(rows *sql.Rows) ([]*entity.Prestamo, error) {
	var prestamos []*entity.Prestamo
	for rows.Next() {
		var prestamo entity.Prestamo
		err := rows.Scan(
			&prestamo.ID,
			&prestamo.ClienteID,
			&prestamo.Monto,
			&prestamo.Interes,
			&prestamo.Plazo,
			&prestamo.FrecuenciaPago,
			&prestamo.FechaInicio,
			&prestamo.FechaFin,
			&prestamo.Estado,
			&prestamo.MontoTotal,
			&prestamo.ValorCuota,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan prestamo: %w", err)
		}
		prestamos = append(prestamos, &prestamo)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating prestamos: %w", err)
	}

	return prestamos, nil
}

func (r *prestamoRepository) Update(ctx context.Context, prestamo *entity.Prestamo) error {
	query := `
		UPDATE prestamos
		SET monto = $1, interes = $2, plazo = $3, frecuencia_pago = $4,
		    fecha_fin = $5, estado = $6, monto_total = $7, valor_cuota = $8
		WHERE id = $9
	`

	result, err := r.db.ExecContext(ctx, query,
		prestamo.Monto,
		prestamo.Interes,
		prestamo.Plazo,
		prestamo.FrecuenciaPago,
		prestamo.FechaFin,
		prestamo.Estado,
		prestamo.MontoTotal,
		prestamo.ValorCuota,
		prestamo.ID,
	)

	if err != nil {
		return fmt.Errorf("failed to update prestamo: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return entity.ErrPrestamoNotFound
	}

	return nil
}

func (r *prestamoRepository) UpdateEstado(ctx context.Context, id int64, estado entity.EstadoPrestamo) error {
	query := `UPDATE prestamos SET estado = $1 WHERE id = $2`
	result, err := r.db.ExecContext(ctx, query, estado, id)
	if err != nil {
		return fmt.Errorf("failed to update prestamo estado: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return entity.ErrPrestamoNotFound
	}

	return nil
}

func (r *prestamoRepository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM prestamos WHERE id = $1`
	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete prestamo: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return entity.ErrPrestamoNotFound
	}

	return nil
}
