package domain

import "time"

// Student (alumno) is an enrolled learner.
type Student struct {
	ID              int64     `json:"id"`
	Nombre          string    `json:"nombre"`
	Email           string    `json:"email"`
	FechaNacimiento time.Time `json:"fecha_nacimiento"`
	Activo          bool      `json:"activo"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}
