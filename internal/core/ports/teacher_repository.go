package ports

import (
	"context"

	"github.com/sistema-academico/academia-api/internal/core/domain"
)

// TeacherRepository persists profesor rows.
type TeacherRepository interface {
	List(ctx context.Context) ([]domain.Teacher, error)
	Create(ctx context.Context, teacher *domain.Teacher) (*domain.Teacher, error)
	FindByID(ctx context.Context, id int64) (*domain.Teacher, error)
	Update(ctx context.Context, teacher *domain.Teacher) error
	Delete(ctx context.Context, id int64) error
	EmailTaken(ctx context.Context, email string, excludeID int64) (bool, error)
	ExistsByID(ctx context.Context, id int64) (bool, error)
}
