package entity

type Ruta struct {
	ID          int64   `json:"id" db:"id"`
	Nombre      string  `json:"nombre" db:"nombre"`
	Zona        string  `json:"zona" db:"zona"`
	CobradorID  int64   `json:"cobrador_id" db:"cobrador_id"`
	Descripcion *string `json:"descripcion,omitempty" db:"descripcion"`
	Activa      bool    `json:"activa" db:"activa"`
}
