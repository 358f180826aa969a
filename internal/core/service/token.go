package service

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/sistema-academico/academia-api/internal/core/domain"
)

const tokenSecretLength = 40

const tokenAlphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// newTokenSecret produces the random half of a plaintext token.
func newTokenSecret() string {
	buf := make([]byte, tokenSecretLength)
	if _, err := rand.Read(buf); err != nil {
		panic(fmt.Sprintf("token secret: %v", err))
	}
	for i, b := range buf {
		buf[i] = tokenAlphabet[int(b)%len(tokenAlphabet)]
	}
	return string(buf)
}

// hashTokenSecret is the persisted form of a token secret.
func hashTokenSecret(secret string) string {
	sum := sha256.Sum256([]byte(secret))
	return hex.EncodeToString(sum[:])
}

// mintToken stores a new token for the device and returns its one-time
// plaintext form "<id>|<secret>".
func (s *AuthService) mintToken(ctx context.Context, userID int64, deviceName string) (string, error) {
	secret := newTokenSecret()

	token := &domain.AccessToken{
		UserID:    userID,
		Name:      deviceName,
		TokenHash: hashTokenSecret(secret),
		Abilities: []string{domain.AbilityAll},
	}
	if s.tokenTTL > 0 {
		expires := time.Now().UTC().Add(s.tokenTTL)
		token.ExpiresAt = &expires
	}

	created, err := s.tokenRepo.Create(ctx, token)
	if err != nil {
		return "", fmt.Errorf("mint token: %w", err)
	}

	return fmt.Sprintf("%d|%s", created.ID, secret), nil
}

// Resolve validates a plaintext bearer token and returns its owner and the
// persisted token record. The last-used stamp is bumped on success.
func (s *AuthService) Resolve(ctx context.Context, plaintext string) (*domain.User, *domain.AccessToken, error) {
	id, secret, ok := splitPlaintext(plaintext)
	if !ok {
		return nil, nil, domain.ErrTokenNotFound
	}

	token, err := s.tokenRepo.FindByID(ctx, id)
	if err != nil {
		return nil, nil, err
	}

	candidate := hashTokenSecret(secret)
	if subtle.ConstantTimeCompare([]byte(candidate), []byte(token.TokenHash)) != 1 {
		return nil, nil, domain.ErrTokenNotFound
	}

	now := time.Now().UTC()
	if token.Expired(now) {
		return nil, nil, domain.ErrTokenExpired
	}

	user, err := s.userRepo.FindByID(ctx, token.UserID)
	if err != nil {
		return nil, nil, err
	}

	if err := s.tokenRepo.TouchLastUsed(ctx, token.ID, now); err != nil {
		s.logger.Warn().Err(err).Int64("token_id", token.ID).Msg("last-used stamp not updated")
	}
	token.LastUsedAt = &now

	return user, token, nil
}

func splitPlaintext(plaintext string) (int64, string, bool) {
	idPart, secret, found := strings.Cut(plaintext, "|")
	if !found || secret == "" {
		return 0, "", false
	}
	id, err := strconv.ParseInt(idPart, 10, 64)
	if err != nil || id <= 0 {
		return 0, "", false
	}
	return id, secret, true
}
