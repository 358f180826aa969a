package ports

import (
	"context"

	"github.com/sistema-academico/academia-api/internal/core/domain"
)

// StudentRepository persists alumno rows.
type StudentRepository interface {
	List(ctx context.Context) ([]domain.Student, error)
	Create(ctx context.Context, student *domain.Student) (*domain.Student, error)
	FindByID(ctx context.Context, id int64) (*domain.Student, error)
	Update(ctx context.Context, student *domain.Student) error
	Delete(ctx context.Context, id int64) error
	EmailTaken(ctx context.Context, email string, excludeID int64) (bool, error)
	ExistsByID(ctx context.Context, id int64) (bool, error)
}
