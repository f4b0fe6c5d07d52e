package entity

import "time"

type Cliente struct {
	ID            int64     `json:"id" db:"id"`
	Cedula        string    `json:"cedula" db:"cedula"`
	Nombre        string    `json:"nombre" db:"nombre"`
	Apellido      string    `json:"apellido" db:"apellido"`
	Telefono      string    `json:"telefono" db:"telefono"`
	Direccion     string    `json:"direccion" db:"direccion"`
	Email         string    `json:"email" db:"email"`
	FechaRegistro time.Time `json:"fecha_registro" db:"fecha_registro"`
	Activo        bool      `json:"activo" db:"activo"`
}
