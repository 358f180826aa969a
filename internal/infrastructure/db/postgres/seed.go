package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/crypto/bcrypt"
)

// Seed inserts the development fixture data: an admin account plus one
// alumno, profesor and asignatura with a few exams between them. Inserts
// are idempotent, so re-running against a seeded database is a no-op.
func Seed(ctx context.Context, pool *pgxpool.Pool) error {
	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	_, err = pool.Exec(ctx,
		`INSERT INTO users (name, email, password) VALUES ($1, $2, $3)
		ON CONFLICT (email) DO NOTHING`,
		"Admin", "admin@example.com", string(hash))
	if err != nil {
		return fmt.Errorf("seed users: %w", err)
	}

	_, err = pool.Exec(ctx,
		`INSERT INTO alumnos (nombre, email, fecha_nacimiento, activo) VALUES ($1, $2, $3, $4)
		ON CONFLICT (email) DO NOTHING`,
		"Alumno Test", "alumno@test.com", time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC), true)
	if err != nil {
		return fmt.Errorf("seed alumnos: %w", err)
	}

	_, err = pool.Exec(ctx,
		`INSERT INTO profesores (nombre, especialidad, email, experiencia_anos) VALUES ($1, $2, $3, $4)
		ON CONFLICT (email) DO NOTHING`,
		"Profesor Test", "Informática", "profe@test.com", 5)
	if err != nil {
		return fmt.Errorf("seed profesores: %w", err)
	}

	_, err = pool.Exec(ctx,
		`INSERT INTO asignaturas (nombre, codigo, descripcion, curso, creditos, horas_semanales) VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (codigo) DO NOTHING`,
		"Matemáticas", "MAT101", "Matemáticas básicas", 1, 6.0, 4)
	if err != nil {
		return fmt.Errorf("seed asignaturas: %w", err)
	}

	return seedExams(ctx, pool)
}

func seedExams(ctx context.Context, pool *pgxpool.Pool) error {
	var count int
	if err := pool.QueryRow(ctx, `SELECT count(*) FROM examenes`).Scan(&count); err != nil {
		return fmt.Errorf("seed examenes: %w", err)
	}
	if count > 0 {
		return nil
	}

	exams := []struct {
		dia      time.Time
		tema     string
		aprobado bool
		nota     float64
		duracion int
	}{
		{time.Date(2026, 6, 23, 10, 0, 0, 0, time.UTC), "Programación Orientada a Objetos", true, 8.50, 90},
		{time.Date(2026, 6, 25, 9, 30, 0, 0, time.UTC), "Cálculo Diferencial", false, 4.25, 120},
		{time.Date(2026, 7, 1, 11, 0, 0, 0, time.UTC), "Diseño de Bases de Datos Relacionales", true, 10.00, 60},
	}

	for _, e := range exams {
		_, err := pool.Exec(ctx,
			`INSERT INTO examenes (dia_examen, tema, aprobado, nota, duracion_minutos, alumno_id, profesor_id, asignatura_id)
			SELECT $1, $2, $3, $4, $5, a.id, p.id, s.id
			FROM alumnos a, profesores p, asignaturas s
			WHERE a.email = 'alumno@test.com' AND p.email = 'profe@test.com' AND s.codigo = 'MAT101'`,
			e.dia, e.tema, e.aprobado, e.nota, e.duracion)
		if err != nil {
			return fmt.Errorf("seed examenes: %w", err)
		}
	}
	return nil
}
