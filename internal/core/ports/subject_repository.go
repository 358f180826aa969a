package ports

import (
	"context"

	"github.com/sistema-academico/academia-api/internal/core/domain"
)

// SubjectRepository persists asignatura rows.
type SubjectRepository interface {
	List(ctx context.Context) ([]domain.Subject, error)
	Create(ctx context.Context, subject *domain.Subject) (*domain.Subject, error)
	FindByID(ctx context.Context, id int64) (*domain.Subject, error)
	Update(ctx context.Context, subject *domain.Subject) error
	Delete(ctx context.Context, id int64) error
	// CodigoTaken reports whether another subject already uses the code.
	CodigoTaken(ctx context.Context, codigo string, excludeID int64) (bool, error)
	ExistsByID(ctx context.Context, id int64) (bool, error)
}
