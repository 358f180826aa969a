package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/sistema-academico/academia-api/internal/core/domain"
)

// TokenRepository persists personal access tokens in PostgreSQL.
type TokenRepository struct {
	pool *pgxpool.Pool
}

func NewTokenRepository(pool *pgxpool.Pool) *TokenRepository {
	return &TokenRepository{pool: pool}
}

func (r *TokenRepository) Create(ctx context.Context, token *domain.AccessToken) (*domain.AccessToken, error) {
	query := `INSERT INTO personal_access_tokens (user_id, name, token, abilities, expires_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, updated_at`

	created := *token
	err := r.pool.QueryRow(ctx, query,
		token.UserID,
		token.Name,
		token.TokenHash,
		token.Abilities,
		token.ExpiresAt,
	).Scan(&created.ID, &created.CreatedAt, &created.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("insert token: %w", err)
	}
	return &created, nil
}

func (r *TokenRepository) FindByID(ctx context.Context, id int64) (*domain.AccessToken, error) {
	query := `SELECT id, user_id, name, token, abilities, last_used_at, expires_at, created_at, updated_at
		FROM personal_access_tokens WHERE id = $1`

	var token domain.AccessToken
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&token.ID,
		&token.UserID,
		&token.Name,
		&token.TokenHash,
		&token.Abilities,
		&token.LastUsedAt,
		&token.ExpiresAt,
		&token.CreatedAt,
		&token.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrTokenNotFound
		}
		return nil, fmt.Errorf("find token: %w", err)
	}
	return &token, nil
}

func (r *TokenRepository) TouchLastUsed(ctx context.Context, id int64, at time.Time) error {
	query := `UPDATE personal_access_tokens SET last_used_at = $2, updated_at = now() WHERE id = $1`

	if _, err := r.pool.Exec(ctx, query, id, at); err != nil {
		return fmt.Errorf("touch token: %w", err)
	}
	return nil
}

func (r *TokenRepository) DeleteByUser(ctx context.Context, userID int64) error {
	query := `DELETE FROM personal_access_tokens WHERE user_id = $1`

	if _, err := r.pool.Exec(ctx, query, userID); err != nil {
		return fmt.Errorf("delete user tokens: %w", err)
	}
	return nil
}

func (r *TokenRepository) DeleteByUserAndName(ctx context.Context, userID int64, name string) error {
	query := `DELETE FROM personal_access_tokens WHERE user_id = $1 AND name = $2`

	if _, err := r.pool.Exec(ctx, query, userID, name); err != nil {
		return fmt.Errorf("delete device tokens: %w", err)
	}
	return nil
}
