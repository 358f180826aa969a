package ports

import (
	"context"

	"github.com/sistema-academico/academia-api/internal/core/domain"
	"github.com/sistema-academico/academia-api/internal/validation"
)

// The resource services share one shape: list, validated create, get by id,
// validated partial update, hard delete. Create applies the full rule set;
// Update validates only the fields present in the payload.

type StudentService interface {
	List(ctx context.Context) ([]domain.Student, error)
	Create(ctx context.Context, payload validation.Payload) (*domain.Student, error)
	Get(ctx context.Context, id int64) (*domain.Student, error)
	Update(ctx context.Context, id int64, payload validation.Payload) (*domain.Student, error)
	Delete(ctx context.Context, id int64) error
}

type TeacherService interface {
	List(ctx context.Context) ([]domain.Teacher, error)
	Create(ctx context.Context, payload validation.Payload) (*domain.Teacher, error)
	Get(ctx context.Context, id int64) (*domain.Teacher, error)
	Update(ctx context.Context, id int64, payload validation.Payload) (*domain.Teacher, error)
	Delete(ctx context.Context, id int64) error
}

type SubjectService interface {
	List(ctx context.Context) ([]domain.Subject, error)
	Create(ctx context.Context, payload validation.Payload) (*domain.Subject, error)
	Get(ctx context.Context, id int64) (*domain.Subject, error)
	Update(ctx context.Context, id int64, payload validation.Payload) (*domain.Subject, error)
	Delete(ctx context.Context, id int64) error
}

type ExamService interface {
	List(ctx context.Context) ([]domain.Exam, error)
	Create(ctx context.Context, payload validation.Payload) (*domain.Exam, error)
	Get(ctx context.Context, id int64) (*domain.Exam, error)
	Update(ctx context.Context, id int64, payload validation.Payload) (*domain.Exam, error)
	Delete(ctx context.Context, id int64) error
	// ListByStudent returns the student's exams with profesor and asignatura
	// loaded. Unknown student ids fail with domain.ErrStudentNotFound; a
	// known student with no exams yields an empty slice.
	ListByStudent(ctx context.Context, studentID int64) ([]domain.Exam, error)
	// ListBySubject mirrors ListByStudent for asignaturas.
	ListBySubject(ctx context.Context, subjectID int64) ([]domain.Exam, error)
}
