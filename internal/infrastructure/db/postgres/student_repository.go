package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/sistema-academico/academia-api/internal/core/domain"
)

const studentColumns = `id, nombre, email, fecha_nacimiento, activo, created_at, updated_at`

// StudentRepository persists alumnos in PostgreSQL.
type StudentRepository struct {
	pool *pgxpool.Pool
}

func NewStudentRepository(pool *pgxpool.Pool) *StudentRepository {
	return &StudentRepository{pool: pool}
}

func (r *StudentRepository) List(ctx context.Context) ([]domain.Student, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+studentColumns+` FROM alumnos ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list alumnos: %w", err)
	}
	defer rows.Close()

	students := []domain.Student{}
	for rows.Next() {
		var s domain.Student
		if err := scanStudent(rows, &s); err != nil {
			return nil, err
		}
		students = append(students, s)
	}
	return students, rows.Err()
}

func (r *StudentRepository) Create(ctx context.Context, student *domain.Student) (*domain.Student, error) {
	query := `INSERT INTO alumnos (nombre, email, fecha_nacimiento, activo)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at, updated_at`

	created := *student
	err := r.pool.QueryRow(ctx, query,
		student.Nombre, student.Email, student.FechaNacimiento, student.Activo,
	).Scan(&created.ID, &created.CreatedAt, &created.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, domain.ErrEmailTaken
		}
		return nil, fmt.Errorf("insert alumno: %w", err)
	}
	return &created, nil
}

func (r *StudentRepository) FindByID(ctx context.Context, id int64) (*domain.Student, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+studentColumns+` FROM alumnos WHERE id = $1`, id)

	var s domain.Student
	if err := scanStudent(row, &s); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrStudentNotFound
		}
		return nil, err
	}
	return &s, nil
}

func (r *StudentRepository) Update(ctx context.Context, student *domain.Student) error {
	query := `UPDATE alumnos SET nombre = $2, email = $3, fecha_nacimiento = $4, activo = $5, updated_at = now()
		WHERE id = $1`

	tag, err := r.pool.Exec(ctx, query,
		student.ID, student.Nombre, student.Email, student.FechaNacimiento, student.Activo)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrEmailTaken
		}
		return fmt.Errorf("update alumno: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrStudentNotFound
	}
	return nil
}

func (r *StudentRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM alumnos WHERE id = $1`, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrReferencedByExams
		}
		return fmt.Errorf("delete alumno: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrStudentNotFound
	}
	return nil
}

func (r *StudentRepository) EmailTaken(ctx context.Context, email string, excludeID int64) (bool, error) {
	var taken bool
	err := r.pool.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM alumnos WHERE email = $1 AND id <> $2)`, email, excludeID,
	).Scan(&taken)
	if err != nil {
		return false, fmt.Errorf("check alumno email: %w", err)
	}
	return taken, nil
}

func (r *StudentRepository) ExistsByID(ctx context.Context, id int64) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM alumnos WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check alumno: %w", err)
	}
	return exists, nil
}

func scanStudent(row pgx.Row, s *domain.Student) error {
	return row.Scan(
		&s.ID,
		&s.Nombre,
		&s.Email,
		&s.FechaNacimiento,
		&s.Activo,
		&s.CreatedAt,
		&s.UpdatedAt,
	)
}
