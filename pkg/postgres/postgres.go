package postgres

import (
	"database/sql"
	"fmt"
	"log"

	"github.com/cmvn/prestamos-gota-a-gota/config"

	_ "github.com/lib/pq"
)

func NewPostgresDB(cfg *config.DatabaseConfig) (*sql.DB, error) {
	connStr := fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		cfg.Host, cfg.Port, cfg.User, cfg.Password, cfg.DBName, cfg.SSLMode,
	)

	db, err := sql.Open("postgres", connStr)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	db.SetMaxOpenConns(cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	log.Println("Successfully connected to PostgreSQL")
	return db, nil
}

func RunMigrations(db *sql.DB) error {
	migrations := []string{
		`CREATE TABLE IF NOT EXISTS roles (
			id SERIAL PRIMARY KEY,
			nombre VARCHAR(50) UNIQUE NOT NULL,
			descripcion TEXT
		)`,

		`CREATE TABLE IF NOT EXISTS usuarios (
			id SERIAL PRIMARY KEY,
			email VARCHAR(255) UNIQUE NOT NULL,
			nombre VARCHAR(255) NOT NULL,
			hashed_password VARCHAR(255) NOT NULL,
			rol_id INTEGER REFERENCES roles(id),
			is_active BOOLEAN DEFAULT TRUE,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			updated_at TIMESTAMP
		)`,

		`CREATE TABLE IF NOT EXISTS clientes (
			id SERIAL PRIMARY KEY,
			cedula VARCHAR(20) UNIQUE NOT NULL,
			nombre VARCHAR(100) NOT NULL,
			apellido VARCHAR(100) NOT NULL,
			telefono VARCHAR(20) NOT NULL,
			direccion TEXT NOT NULL,
			email VARCHAR(255),
			fecha_registro TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			activo BOOLEAN DEFAULT TRUE
		)`,

		`CREATE TABLE IF NOT EXISTS prestamos (
			id SERIAL PRIMARY KEY,
			cliente_id INTEGER NOT NULL REFERENCES clientes(id),
			monto NUMERIC(12, 2) NOT NULL,
			interes NUMERIC(5, 2) NOT NULL,
			plazo INTEGER NOT NULL,
			frecuencia_pago VARCHAR(20) NOT NULL,
			fecha_inicio TIMESTAMP NOT NULL,
			fecha_fin TIMESTAMP NOT NULL,
			estado VARCHAR(20) NOT NULL DEFAULT 'activo',
			monto_total NUMERIC(12, 2) NOT NULL,
			valor_cuota NUMERIC(12, 2) NOT NULL
		)`,

		`CREATE TABLE IF NOT EXISTS pagos (
			id SERIAL PRIMARY KEY,
			prestamo_id INTEGER NOT NULL REFERENCES prestamos(id) ON DELETE CASCADE,
			numero_cuota INTEGER NOT NULL,
			monto NUMERIC(12, 2) NOT NULL,
			fecha_programada TIMESTAMP NOT NULL,
			fecha_pago TIMESTAMP,
			estado VARCHAR(20) NOT NULL DEFAULT 'pendiente'
		)`,

		`CREATE TABLE IF NOT EXISTS rutas (
			id SERIAL PRIMARY KEY,
			nombre VARCHAR(100) NOT NULL,
			zona VARCHAR(100) NOT NULL,
			cobrador_id INTEGER NOT NULL REFERENCES usuarios(id),
			descripcion TEXT,
			activa BOOLEAN DEFAULT TRUE
		)`,

		`CREATE TABLE IF NOT EXISTS cobranzas (
			id SERIAL PRIMARY KEY,
			pago_id INTEGER NOT NULL REFERENCES pagos(id),
			cobrador_id INTEGER NOT NULL REFERENCES usuarios(id),
			monto_esperado NUMERIC(12, 2) NOT NULL,
			monto_recibido NUMERIC(12, 2),
			metodo_pago VARCHAR(20),
			estado VARCHAR(20) NOT NULL DEFAULT 'pendiente',
			zona VARCHAR(100) NOT NULL,
			direccion_cobro TEXT NOT NULL,
			ruta_id INTEGER REFERENCES rutas(id),
			orden_ruta INTEGER,
			numero_recibo VARCHAR(64),
			fecha_programada TIMESTAMP NOT NULL,
			fecha_realizada TIMESTAMP,
			fecha_creacion TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			fecha_actualizacion TIMESTAMP,
			intentos INTEGER NOT NULL DEFAULT 0,
			notas TEXT,
			requiere_supervisor BOOLEAN DEFAULT FALSE
		)`,

		`CREATE TABLE IF NOT EXISTS notificaciones (
			id SERIAL PRIMARY KEY,
			tipo VARCHAR(20) NOT NULL,
			canal VARCHAR(20) NOT NULL,
			titulo VARCHAR(255) NOT NULL,
			mensaje TEXT NOT NULL,
			datos_adicionales JSONB,
			usuario_id INTEGER NOT NULL REFERENCES usuarios(id),
			prestamo_id INTEGER REFERENCES prestamos(id),
			pago_id INTEGER REFERENCES pagos(id),
			cobranza_id INTEGER REFERENCES cobranzas(id),
			estado VARCHAR(20) NOT NULL DEFAULT 'pendiente',
			fecha_creacion TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			fecha_envio TIMESTAMP,
			fecha_lectura TIMESTAMP
		)`,

		// Indexes
		`CREATE INDEX IF NOT EXISTS idx_prestamos_cliente_id ON prestamos(cliente_id)`,
		`CREATE INDEX IF NOT EXISTS idx_prestamos_estado ON prestamos(estado)`,
		`CREATE INDEX IF NOT EXISTS idx_pagos_prestamo_id ON pagos(prestamo_id)`,
		`CREATE INDEX IF NOT EXISTS idx_pagos_estado_fecha ON pagos(estado, fecha_programada)`,
		`CREATE INDEX IF NOT EXISTS idx_cobranzas_cobrador_fecha ON cobranzas(cobrador_id, fecha_programada)`,
		`CREATE INDEX IF NOT EXISTS idx_cobranzas_estado ON cobranzas(estado)`,
		`CREATE INDEX IF NOT EXISTS idx_notificaciones_usuario_id ON notificaciones(usuario_id)`,
		`CREATE INDEX IF NOT EXISTS idx_notificaciones_estado ON notificaciones(estado)`,
	}

	for _, migration := range migrations {
		if _, err := db.Exec(migration); err != nil {
			return fmt.Errorf("failed to execute migration: %v", err)
		}
	}

	log.Println("Database migrations completed successfully")
	return nil
}
