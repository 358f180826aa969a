package domain

import "time"

// Exam (examen) records a single evaluation. It references the student who
// sat it, the teacher who graded it and the subject it belongs to; the
// referenced rows live and die independently of the exam.
type Exam struct {
	ID              int64     `json:"id"`
	DiaExamen       time.Time `json:"dia_examen"`
	Tema            string    `json:"tema"`
	Aprobado        bool      `json:"aprobado"`
	Nota            *float64  `json:"nota"`
	DuracionMinutos int       `json:"duracion_minutos"`
	AlumnoID        int64     `json:"alumno_id"`
	ProfesorID      int64     `json:"profesor_id"`
	AsignaturaID    int64     `json:"asignatura_id"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`

	// Eager-loaded relations, present on reads that join them.
	Alumno     *Student `json:"alumno,omitempty"`
	Profesor   *Teacher `json:"profesor,omitempty"`
	Asignatura *Subject `json:"asignatura,omitempty"`
}
