package ports

import (
	"context"

	"github.com/sistema-academico/academia-api/internal/core/domain"
)

// ExamRepository persists examen rows. Read operations eager-load the
// related alumno, profesor and asignatura.
type ExamRepository interface {
	List(ctx context.Context) ([]domain.Exam, error)
	Create(ctx context.Context, exam *domain.Exam) (*domain.Exam, error)
	FindByID(ctx context.Context, id int64) (*domain.Exam, error)
	Update(ctx context.Context, exam *domain.Exam) error
	Delete(ctx context.Context, id int64) error
	ListByStudent(ctx context.Context, studentID int64) ([]domain.Exam, error)
	ListBySubject(ctx context.Context, subjectID int64) ([]domain.Exam, error)
}
