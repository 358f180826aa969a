package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/sistema-academico/academia-api/internal/core/domain"
)

const subjectColumns = `id, nombre, codigo, descripcion, curso, creditos, horas_semanales, created_at, updated_at`

// SubjectRepository persists asignaturas in PostgreSQL.
type SubjectRepository struct {
	pool *pgxpool.Pool
}

func NewSubjectRepository(pool *pgxpool.Pool) *SubjectRepository {
	return &SubjectRepository{pool: pool}
}

func (r *SubjectRepository) List(ctx context.Context) ([]domain.Subject, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+subjectColumns+` FROM asignaturas ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list asignaturas: %w", err)
	}
	defer rows.Close()

	subjects := []domain.Subject{}
	for rows.Next() {
		var s domain.Subject
		if err := scanSubject(rows, &s); err != nil {
			return nil, err
		}
		subjects = append(subjects, s)
	}
	return subjects, rows.Err()
}

func (r *SubjectRepository) Create(ctx context.Context, subject *domain.Subject) (*domain.Subject, error) {
	query := `INSERT INTO asignaturas (nombre, codigo, descripcion, curso, creditos, horas_semanales)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at`

	created := *subject
	err := r.pool.QueryRow(ctx, query,
		subject.Nombre, subject.Codigo, subject.Descripcion, subject.Curso, subject.Creditos, subject.HorasSemanales,
	).Scan(&created.ID, &created.CreatedAt, &created.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, domain.ErrCodigoTaken
		}
		return nil, fmt.Errorf("insert asignatura: %w", err)
	}
	return &created, nil
}

func (r *SubjectRepository) FindByID(ctx context.Context, id int64) (*domain.Subject, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+subjectColumns+` FROM asignaturas WHERE id = $1`, id)

	var s domain.Subject
	if err := scanSubject(row, &s); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrSubjectNotFound
		}
		return nil, err
	}
	return &s, nil
}

func (r *SubjectRepository) Update(ctx context.Context, subject *domain.Subject) error {
	query := `UPDATE asignaturas SET nombre = $2, codigo = $3, descripcion = $4, curso = $5, creditos = $6, horas_semanales = $7, updated_at = now()
		WHERE id = $1`

	tag, err := r.pool.Exec(ctx, query,
		subject.ID, subject.Nombre, subject.Codigo, subject.Descripcion, subject.Curso, subject.Creditos, subject.HorasSemanales)
	if err != nil {
		return fmt.Errorf("update asignatura: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrSubjectNotFound
	}
	return nil
}

func (r *SubjectRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM asignaturas WHERE id = $1`, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrReferencedByExams
		}
		return fmt.Errorf("delete asignatura: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrSubjectNotFound
	}
	return nil
}

func (r *SubjectRepository) CodigoTaken(ctx context.Context, codigo string, excludeID int64) (bool, error) {
	var taken bool
	err := r.pool.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM asignaturas WHERE codigo = $1 AND id <> $2)`, codigo, excludeID,
	).Scan(&taken)
	if err != nil {
		return false, fmt.Errorf("check asignatura codigo: %w", err)
	}
	return taken, nil
}

func (r *SubjectRepository) ExistsByID(ctx context.Context, id int64) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM asignaturas WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check asignatura: %w", err)
	}
	return exists, nil
}

func scanSubject(row pgx.Row, s *domain.Subject) error {
	return row.Scan(
		&s.ID,
		&s.Nombre,
		&s.Codigo,
		&s.Descripcion,
		&s.Curso,
		&s.Creditos,
		&s.HorasSemanales,
		&s.CreatedAt,
		&s.UpdatedAt,
	)
}
