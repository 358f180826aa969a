package ports

import (
	"context"
	"time"

	"github.com/sistema-academico/academia-api/internal/core/domain"
)

// UserRepository persists account records.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByID(ctx context.Context, id int64) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	Update(ctx context.Context, user *domain.User) error
	// EmailTaken reports whether another user already owns the email.
	// excludeID ignores one record, for update-in-place checks; pass 0 to
	// check against everyone.
	EmailTaken(ctx context.Context, email string, excludeID int64) (bool, error)
}

// TokenRepository persists personal access tokens. Tokens are immutable
// except for the last-used stamp; revocation is deletion.
type TokenRepository interface {
	Create(ctx context.Context, token *domain.AccessToken) (*domain.AccessToken, error)
	FindByID(ctx context.Context, id int64) (*domain.AccessToken, error)
	TouchLastUsed(ctx context.Context, id int64, at time.Time) error
	DeleteByUser(ctx context.Context, userID int64) error
	DeleteByUserAndName(ctx context.Context, userID int64, name string) error
}
