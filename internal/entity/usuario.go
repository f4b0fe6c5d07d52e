package entity

import "time"

type Usuario struct {
	ID             int64      `json:"id" db:"id"`
	Email          string     `json:"email" db:"email"`
	Nombre         string     `json:"nombre" db:"nombre"`
	HashedPassword string     `json:"-" db:"hashed_password"`
	RolID          int64      `json:"rol_id" db:"rol_id"`
	IsActive       bool       `json:"is_active" db:"is_active"`
	CreatedAt      time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt      *time.Time `json:"updated_at,omitempty" db:"updated_at"`
}

type Rol struct {
	ID          int64  `json:"id" db:"id"`
	Nombre      string `json:"nombre" db:"nombre"`
	Descripcion string `json:"descripcion" db:"descripcion"`
}
