package domain

import "time"

// Subject (asignatura) is a course taught during an academic year.
type Subject struct {
	ID             int64     `json:"id"`
	Nombre         string    `json:"nombre"`
	Codigo         string    `json:"codigo"`
	Descripcion    *string   `json:"descripcion"`
	Curso          int       `json:"curso"`
	Creditos       float64   `json:"creditos"`
	HorasSemanales int       `json:"horas_semanales"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}
