package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/sistema-academico/academia-api/internal/core/domain"
)

const teacherColumns = `id, nombre, especialidad, email, experiencia_anos, telefono, created_at, updated_at`

// TeacherRepository persists profesores in PostgreSQL.
type TeacherRepository struct {
	pool *pgxpool.Pool
}

func NewTeacherRepository(pool *pgxpool.Pool) *TeacherRepository {
	return &TeacherRepository{pool: pool}
}

func (r *TeacherRepository) List(ctx context.Context) ([]domain.Teacher, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+teacherColumns+` FROM profesores ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list profesores: %w", err)
	}
	defer rows.Close()

	teachers := []domain.Teacher{}
	for rows.Next() {
		var t domain.Teacher
		if err := scanTeacher(rows, &t); err != nil {
			return nil, err
		}
		teachers = append(teachers, t)
	}
	return teachers, rows.Err()
}

func (r *TeacherRepository) Create(ctx context.Context, teacher *domain.Teacher) (*domain.Teacher, error) {
	query := `INSERT INTO profesores (nombre, especialidad, email, experiencia_anos, telefono)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, updated_at`

	created := *teacher
	err := r.pool.QueryRow(ctx, query,
		teacher.Nombre, teacher.Especialidad, teacher.Email, teacher.ExperienciaAnos, teacher.Telefono,
	).Scan(&created.ID, &created.CreatedAt, &created.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, domain.ErrEmailTaken
		}
		return nil, fmt.Errorf("insert profesor: %w", err)
	}
	return &created, nil
}

func (r *TeacherRepository) FindByID(ctx context.Context, id int64) (*domain.Teacher, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+teacherColumns+` FROM profesores WHERE id = $1`, id)

	var t domain.Teacher
	if err := scanTeacher(row, &t); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrTeacherNotFound
		}
		return nil, err
	}
	return &t, nil
}

func (r *TeacherRepository) Update(ctx context.Context, teacher *domain.Teacher) error {
	query := `UPDATE profesores SET nombre = $2, especialidad = $3, email = $4, experiencia_anos = $5, telefono = $6, updated_at = now()
		WHERE id = $1`

	tag, err := r.pool.Exec(ctx, query,
		teacher.ID, teacher.Nombre, teacher.Especialidad, teacher.Email, teacher.ExperienciaAnos, teacher.Telefono)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrEmailTaken
		}
		return fmt.Errorf("update profesor: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrTeacherNotFound
	}
	return nil
}

func (r *TeacherRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM profesores WHERE id = $1`, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrReferencedByExams
		}
		return fmt.Errorf("delete profesor: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrTeacherNotFound
	}
	return nil
}

func (r *TeacherRepository) EmailTaken(ctx context.Context, email string, excludeID int64) (bool, error) {
	var taken bool
	err := r.pool.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM profesores WHERE email = $1 AND id <> $2)`, email, excludeID,
	).Scan(&taken)
	if err != nil {
		return false, fmt.Errorf("check profesor email: %w", err)
	}
	return taken, nil
}

func (r *TeacherRepository) ExistsByID(ctx context.Context, id int64) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM profesores WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check profesor: %w", err)
	}
	return exists, nil
}

func scanTeacher(row pgx.Row, t *domain.Teacher) error {
	return row.Scan(
		&t.ID,
		&t.Nombre,
		&t.Especialidad,
		&t.Email,
		&t.ExperienciaAnos,
		&t.Telefono,
		&t.CreatedAt,
		&t.UpdatedAt,
	)
}
