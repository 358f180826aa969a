package domain

import "time"

// Teacher (profesor) is a member of the teaching staff.
type Teacher struct {
	ID              int64     `json:"id"`
	Nombre          string    `json:"nombre"`
	Especialidad    string    `json:"especialidad"`
	Email           string    `json:"email"`
	ExperienciaAnos int       `json:"experiencia_anos"`
	Telefono        *string   `json:"telefono"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}
