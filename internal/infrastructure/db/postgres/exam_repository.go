package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/sistema-academico/academia-api/internal/core/domain"
)

// examSelect joins the three referenced tables so every read returns the
// exam with its alumno, profesor and asignatura loaded.
const examSelect = `SELECT
	e.id, e.dia_examen, e.tema, e.aprobado, e.nota, e.duracion_minutos,
	e.alumno_id, e.profesor_id, e.asignatura_id, e.created_at, e.updated_at,
	a.id, a.nombre, a.email, a.fecha_nacimiento, a.activo, a.created_at, a.updated_at,
	p.id, p.nombre, p.especialidad, p.email, p.experiencia_anos, p.telefono, p.created_at, p.updated_at,
	s.id, s.nombre, s.codigo, s.descripcion, s.curso, s.creditos, s.horas_semanales, s.created_at, s.updated_at
FROM examenes e
JOIN alumnos a ON a.id = e.alumno_id
JOIN profesores p ON p.id = e.profesor_id
JOIN asignaturas s ON s.id = e.asignatura_id`

// ExamRepository persists examenes in PostgreSQL.
type ExamRepository struct {
	pool *pgxpool.Pool
}

func NewExamRepository(pool *pgxpool.Pool) *ExamRepository {
	return &ExamRepository{pool: pool}
}

func (r *ExamRepository) List(ctx context.Context) ([]domain.Exam, error) {
	return r.list(ctx, examSelect+` ORDER BY e.id`)
}

func (r *ExamRepository) ListByStudent(ctx context.Context, studentID int64) ([]domain.Exam, error) {
	return r.list(ctx, examSelect+` WHERE e.alumno_id = $1 ORDER BY e.id`, studentID)
}

func (r *ExamRepository) ListBySubject(ctx context.Context, subjectID int64) ([]domain.Exam, error) {
	return r.list(ctx, examSelect+` WHERE e.asignatura_id = $1 ORDER BY e.id`, subjectID)
}

func (r *ExamRepository) list(ctx context.Context, query string, args ...any) ([]domain.Exam, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list examenes: %w", err)
	}
	defer rows.Close()

	exams := []domain.Exam{}
	for rows.Next() {
		var e domain.Exam
		if err := scanExam(rows, &e); err != nil {
			return nil, err
		}
		exams = append(exams, e)
	}
	return exams, rows.Err()
}

func (r *ExamRepository) Create(ctx context.Context, exam *domain.Exam) (*domain.Exam, error) {
	query := `INSERT INTO examenes (dia_examen, tema, aprobado, nota, duracion_minutos, alumno_id, profesor_id, asignatura_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id`

	var id int64
	err := r.pool.QueryRow(ctx, query,
		exam.DiaExamen,
		exam.Tema,
		exam.Aprobado,
		exam.Nota,
		exam.DuracionMinutos,
		exam.AlumnoID,
		exam.ProfesorID,
		exam.AsignaturaID,
	).Scan(&id)
	if err != nil {
		return nil, fmt.Errorf("insert examen: %w", err)
	}

	// Read back through the join so relations are loaded.
	return r.FindByID(ctx, id)
}

func (r *ExamRepository) FindByID(ctx context.Context, id int64) (*domain.Exam, error) {
	row := r.pool.QueryRow(ctx, examSelect+` WHERE e.id = $1`, id)

	var e domain.Exam
	if err := scanExam(row, &e); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrExamNotFound
		}
		return nil, err
	}
	return &e, nil
}

func (r *ExamRepository) Update(ctx context.Context, exam *domain.Exam) error {
	query := `UPDATE examenes SET dia_examen = $2, tema = $3, aprobado = $4, nota = $5,
		duracion_minutos = $6, alumno_id = $7, profesor_id = $8, asignatura_id = $9, updated_at = now()
		WHERE id = $1`

	tag, err := r.pool.Exec(ctx, query,
		exam.ID,
		exam.DiaExamen,
		exam.Tema,
		exam.Aprobado,
		exam.Nota,
		exam.DuracionMinutos,
		exam.AlumnoID,
		exam.ProfesorID,
		exam.AsignaturaID,
	)
	if err != nil {
		return fmt.Errorf("update examen: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrExamNotFound
	}
	return nil
}

func (r *ExamRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM examenes WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete examen: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrExamNotFound
	}
	return nil
}

func scanExam(row pgx.Row, e *domain.Exam) error {
	var (
		alumno     domain.Student
		profesor   domain.Teacher
		asignatura domain.Subject
	)
	err := row.Scan(
		&e.ID, &e.DiaExamen, &e.Tema, &e.Aprobado, &e.Nota, &e.DuracionMinutos,
		&e.AlumnoID, &e.ProfesorID, &e.AsignaturaID, &e.CreatedAt, &e.UpdatedAt,
		&alumno.ID, &alumno.Nombre, &alumno.Email, &alumno.FechaNacimiento, &alumno.Activo, &alumno.CreatedAt, &alumno.UpdatedAt,
		&profesor.ID, &profesor.Nombre, &profesor.Especialidad, &profesor.Email, &profesor.ExperienciaAnos, &profesor.Telefono, &profesor.CreatedAt, &profesor.UpdatedAt,
		&asignatura.ID, &asignatura.Nombre, &asignatura.Codigo, &asignatura.Descripcion, &asignatura.Curso, &asignatura.Creditos, &asignatura.HorasSemanales, &asignatura.CreatedAt, &asignatura.UpdatedAt,
	)
	if err != nil {
		return err
	}
	e.Alumno = &alumno
	e.Profesor = &profesor
	e.Asignatura = &asignatura
	return nil
}
