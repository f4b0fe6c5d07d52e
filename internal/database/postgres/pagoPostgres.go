package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/cmvn/prestamos-gota-a-gota/internal/entity"
)

type pagoRepository struct {
	db *sql.DB
}

func NewPagoRepository(db *sql.DB) PagoRepository {
	return &pagoRepository{db: db}
}

func (r *pagoRepository) Create(ctx context.Context, pago *entity.Pago) error {
	query := `
		INSERT INTO pagos (prestamo_id, numero_cuota, monto, fecha_programada, fecha_pago, estado)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`

	err := r.db.QueryRowContext(ctx, query,
		pago.PrestamoID,
		pago.NumeroCuota,
		pago.Monto,
		pago.FechaProgramada,
		pago.FechaPago,
		pago.Estado,
	).Scan(&pago.ID)

	if err != nil {
		return fmt.Errorf("failed to create pago: %w", err)
	}

	return nil
}

func (r *pagoRepository) GetByID(ctx context.Context, id int64) (*entity.Pago, error) {
	query := `
		SELECT id, prestamo_id, numero_cuota, monto, fecha_programada, fecha_pago, estado
		FROM pagos
		WHERE id = $1
	`

	var pago entity.Pago
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&pago.ID,
		&pago.PrestamoID,
		&pago.NumeroCuota,
		&pago.Monto,
		&pago.FechaProgramada,
		&pago.FechaPago,
		&pago.Estado,
	)

	if err == sql.ErrNoRows {
		return nil, entity.ErrPagoNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get pago: %w", err)
	}

	return &pago, nil
}

func (r *pagoRepository) GetByPrestamo(ctx context.Context, prestamoID int64) ([]*entity.Pago, error) {
	query := `
		SELECT id, prestamo_id, numero_cuota, monto, fecha_programada, fecha_pago, estado
		FROM pagos
		WHERE prestamo_id = $1
		ORDER BY numero_cuota
	`

	rows, err := r.db.QueryContext(ctx, query, prestamoID)
	if err != nil {
		return nil, fmt.Errorf("failed to query pagos by prestamo: %w", err)
	}
	defer rows.Close()

	return scanPagos(rows)
}

func (r *pagoRepository) Update(ctx context.Context, pago *entity.Pago) error {
	query := `
		UPDATE pagos
		SET numero_cuota = $1, monto = $2, fecha_programada = $3, fecha_pago = $4, estado = $5
		WHERE id = $6
	`

	result, err := r.db.ExecContext(ctx, query,
		pago.NumeroCuota,
		pago.Monto,
		pago.FechaProgramada,
		pago.FechaPago,
		pago.Estado,
		pago.ID,
	)

	if err != nil {
		return fmt.Errorf("failed to update pago: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return entity.ErrPagoNotFound
	}

	return nil
}

func (r *pagoRepository) CountPendientes(ctx context.Context, prestamoID int64) (int, error) {
	query := `SELECT COUNT(*) FROM pagos WHERE prestamo_id = $1 AND estado = 'pendiente'`
	var count int
	err := r.db.QueryRowContext(ctx, query, prestamoID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count pagos pendientes: %w", err)
	}
	return count, nil
}

func (r *pagoRepository) GetAtrasados(ctx context.Context, before time.Time) ([]*entity.Pago, error) {
	query := `
		SELECT id, prestamo_id, numero_cuota, monto, fecha_programada, fecha_pago, estado
		FROM pagos
		WHERE estado = 'pendiente' AND fecha_programada < $1
		ORDER BY fecha_programada
	`

	rows, err := r.db.QueryContext(ctx, query, before)
	if err != nil {
		return nil, fmt.Errorf("failed to query pagos atrasados: %w", err)
	}
	defer rows.Close()

	return scanPagos(rows)
}

func scanPagos(rows *sql.Rows) ([]*entity.Pago, error) {
	var pagos []*entity.Pago
	for rows.Next() {
		var pago entity.Pago
		err := rows.Scan(
			&pago.ID,
			&pago.PrestamoID,
			&pago.NumeroCuota,
			&pago.Monto,
			&pago.FechaProgramada,
			&pago.FechaPago,
			&pago.Estado,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan pago: %w", err)
		}
		pagos = append(pagos, &pago)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating pagos: %w", err)
	}

	return pagos, nil
}
