package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/sistema-academico/academia-api/internal/core/domain"
	"github.com/sistema-academico/academia-api/internal/validation"
)

type stubUserRepo struct {
	users  map[int64]*domain.User
	nextID int64
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[int64]*domain.User), nextID: 1}
}

func cloneUser(u *domain.User) *domain.User {
	if u == nil {
		return nil
	}
	clone := *u
	return &clone
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	for _, u := range r.users {
		if u.Email == user.Email {
			return nil, domain.ErrEmailTaken
		}
	}
	copy := cloneUser(user)
	copy.ID = r.nextID
	r.nextID++
	r.users[copy.ID] = cloneUser(copy)
	return copy, nil
}

func (r *stubUserRepo) FindByID(_ context.Context, id int64) (*domain.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return cloneUser(u), nil
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) Update(_ context.Context, user *domain.User) error {
	if _, ok := r.users[user.ID]; !ok {
		return domain.ErrUserNotFound
	}
	r.users[user.ID] = cloneUser(user)
	return nil
}

func (r *stubUserRepo) EmailTaken(_ context.Context, email string, excludeID int64) (bool, error) {
	for _, u := range r.users {
		if u.Email == email && u.ID != excludeID {
			return true, nil
		}
	}
	return false, nil
}

type stubTokenRepo struct {
	tokens map[int64]*domain.AccessToken
	nextID int64
}

func newStubTokenRepo() *stubTokenRepo {
	return &stubTokenRepo{tokens: make(map[int64]*domain.AccessToken), nextID: 1}
}

func cloneToken(t *domain.AccessToken) *domain.AccessToken {
	if t == nil {
		return nil
	}
	clone := *t
	return &clone
}

func (r *stubTokenRepo) Create(_ context.Context, token *domain.AccessToken) (*domain.AccessToken, error) {
	copy := cloneToken(token)
	copy.ID = r.nextID
	r.nextID++
	r.tokens[copy.ID] = cloneToken(copy)
	return copy, nil
}

func (r *stubTokenRepo) FindByID(_ context.Context, id int64) (*domain.AccessToken, error) {
	t, ok := r.tokens[id]
	if !ok {
		return nil, domain.ErrTokenNotFound
	}
	return cloneToken(t), nil
}

func (r *stubTokenRepo) TouchLastUsed(_ context.Context, id int64, at time.Time) error {
	t, ok := r.tokens[id]
	if !ok {
		return domain.ErrTokenNotFound
	}
	t.LastUsedAt = &at
	return nil
}

func (r *stubTokenRepo) DeleteByUser(_ context.Context, userID int64) error {
	for id, t := range r.tokens {
		if t.UserID == userID {
			delete(r.tokens, id)
		}
	}
	return nil
}

func (r *stubTokenRepo) DeleteByUserAndName(_ context.Context, userID int64, name string) error {
	for id, t := range r.tokens {
		if t.UserID == userID && t.Name == name {
			delete(r.tokens, id)
		}
	}
	return nil
}

func newTestAuthService(users *stubUserRepo, tokens *stubTokenRepo, ttl time.Duration) *AuthService {
	return NewAuthService(users, tokens, ttl, zerolog.Nop())
}

func registerPayload() validation.Payload {
	return validation.Payload{
		"name":                  "Ana García",
		"email":                 "ana@example.com",
		"password":              "secreto123",
		"password_confirmation": "secreto123",
		"device_name":           "iphone-de-ana",
	}
}

func TestAuthService_Register_Success(t *testing.T) {
	users := newStubUserRepo()
	tokens := newStubTokenRepo()
	svc := newTestAuthService(users, tokens, 0)

	user, plaintext, err := svc.Register(context.Background(), registerPayload())
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if user.PasswordHash == "secreto123" {
		t.Fatalf("expected password to be hashed")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("secreto123")); err != nil {
		t.Fatalf("stored hash does not match password: %v", err)
	}

	// Plaintext token is "<id>|<40-char secret>".
	idPart, secret, found := strings.Cut(plaintext, "|")
	if !found || idPart == "" {
		t.Fatalf("malformed token %q", plaintext)
	}
	if len(secret) != 40 {
		t.Fatalf("expected 40-char secret, got %d", len(secret))
	}

	stored := tokens.tokens[1]
	if stored == nil {
		t.Fatalf("expected token persisted")
	}
	if stored.TokenHash == secret {
		t.Fatalf("expected secret to be hashed at rest")
	}
	if stored.Name != "iphone-de-ana" {
		t.Fatalf("unexpected device name: %q", stored.Name)
	}
	if !stored.Can("anything") {
		t.Fatalf("expected wildcard abilities by default")
	}
	if stored.ExpiresAt != nil {
		t.Fatalf("expected no expiry with zero TTL")
	}
}

func TestAuthService_Register_Validation(t *testing.T) {
	svc := newTestAuthService(newStubUserRepo(), newStubTokenRepo(), 0)

	payload := registerPayload()
	payload["password_confirmation"] = "distinto"
	delete(payload, "name")

	_, _, err := svc.Register(context.Background(), payload)

	var verrs validation.Errors
	if !errors.As(err, &verrs) {
		t.Fatalf("expected validation.Errors, got %v", err)
	}
	if _, ok := verrs["name"]; !ok {
		t.Fatalf("expected error on name, got %v", verrs)
	}
	if _, ok := verrs["password"]; !ok {
		t.Fatalf("expected error on password confirmation, got %v", verrs)
	}
}

func TestAuthService_Register_DuplicateEmail(t *testing.T) {
	users := newStubUserRepo()
	tokens := newStubTokenRepo()
	svc := newTestAuthService(users, tokens, 0)

	if _, _, err := svc.Register(context.Background(), registerPayload()); err != nil {
		t.Fatalf("first Register failed: %v", err)
	}

	_, _, err := svc.Register(context.Background(), registerPayload())
	var verrs validation.Errors
	if !errors.As(err, &verrs) {
		t.Fatalf("expected validation.Errors, got %v", err)
	}
	if _, ok := verrs["email"]; !ok {
		t.Fatalf("expected uniqueness error on email, got %v", verrs)
	}
	if len(users.users) != 1 {
		t.Fatalf("duplicate registration must not create a second user")
	}
}

func TestAuthService_Login_WrongCredentialsIndistinguishable(t *testing.T) {
	users := newStubUserRepo()
	svc := newTestAuthService(users, newStubTokenRepo(), 0)

	if _, _, err := svc.Register(context.Background(), registerPayload()); err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	login := func(email, password string) error {
		_, _, err := svc.Login(context.Background(), validation.Payload{
			"email":       email,
			"password":    password,
			"device_name": "web",
		})
		return err
	}

	unknownErr := login("nadie@example.com", "secreto123")
	wrongErr := login("ana@example.com", "equivocada")

	if !errors.Is(unknownErr, domain.ErrInvalidCredentials) {
		t.Fatalf("unknown email: expected ErrInvalidCredentials, got %v", unknownErr)
	}
	if !errors.Is(wrongErr, domain.ErrInvalidCredentials) {
		t.Fatalf("wrong password: expected ErrInvalidCredentials, got %v", wrongErr)
	}
}

func TestAuthService_Login_KeepsOtherDeviceTokens(t *testing.T) {
	users := newStubUserRepo()
	tokens := newStubTokenRepo()
	svc := newTestAuthService(users, tokens, 0)

	if _, _, err := svc.Register(context.Background(), registerPayload()); err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	_, _, err := svc.Login(context.Background(), validation.Payload{
		"email":       "ana@example.com",
		"password":    "secreto123",
		"device_name": "portatil",
	})
	if err != nil {
		t.Fatalf("Login failed: %v", err)
	}

	if len(tokens.tokens) != 2 {
		t.Fatalf("expected 2 live tokens after second login, got %d", len(tokens.tokens))
	}
}

func TestAuthService_Logout_RevokesAllSessions(t *testing.T) {
	users := newStubUserRepo()
	tokens := newStubTokenRepo()
	svc := newTestAuthService(users, tokens, 0)

	user, _, err := svc.Register(context.Background(), registerPayload())
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}
	if _, _, err := svc.Login(context.Background(), validation.Payload{
		"email":       "ana@example.com",
		"password":    "secreto123",
		"device_name": "portatil",
	}); err != nil {
		t.Fatalf("Login failed: %v", err)
	}

	if err := svc.Logout(context.Background(), user.ID); err != nil {
		t.Fatalf("Logout failed: %v", err)
	}
	if len(tokens.tokens) != 0 {
		t.Fatalf("expected all tokens revoked, %d remain", len(tokens.tokens))
	}
}

func TestAuthService_RefreshToken_RotatesOnlyNamedDevice(t *testing.T) {
	users := newStubUserRepo()
	tokens := newStubTokenRepo()
	svc := newTestAuthService(users, tokens, 0)

	user, oldToken, err := svc.Register(context.Background(), registerPayload())
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}
	if _, _, err := svc.Login(context.Background(), validation.Payload{
		"email":       "ana@example.com",
		"password":    "secreto123",
		"device_name": "portatil",
	}); err != nil {
		t.Fatalf("Login failed: %v", err)
	}

	newToken, err := svc.RefreshToken(context.Background(), user, validation.Payload{
		"device_name": "iphone-de-ana",
	})
	if err != nil {
		t.Fatalf("RefreshToken failed: %v", err)
	}
	if newToken == oldToken {
		t.Fatalf("expected a fresh token value")
	}

	// The old iphone token no longer resolves; the portatil one survives.
	if _, _, err := svc.Resolve(context.Background(), oldToken); !errors.Is(err, domain.ErrTokenNotFound) {
		t.Fatalf("expected old token revoked, got %v", err)
	}
	if len(tokens.tokens) != 2 {
		t.Fatalf("expected 2 live tokens (portatil + rotated), got %d", len(tokens.tokens))
	}
}

func TestAuthService_UpdateProfile_PasswordOnlyWhenFilled(t *testing.T) {
	users := newStubUserRepo()
	svc := newTestAuthService(users, newStubTokenRepo(), 0)

	user, _, err := svc.Register(context.Background(), registerPayload())
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}
	originalHash := users.users[user.ID].PasswordHash

	updated, err := svc.UpdateProfile(context.Background(), user, validation.Payload{
		"name":  "Ana María García",
		"email": "ana@example.com",
	})
	if err != nil {
		t.Fatalf("UpdateProfile failed: %v", err)
	}
	if updated.Name != "Ana María García" {
		t.Fatalf("name not updated: %q", updated.Name)
	}
	if users.users[user.ID].PasswordHash != originalHash {
		t.Fatalf("password must not change when not supplied")
	}

	if _, err := svc.UpdateProfile(context.Background(), updated, validation.Payload{
		"name":                  updated.Name,
		"email":                 updated.Email,
		"password":              "nuevosecreto",
		"password_confirmation": "nuevosecreto",
	}); err != nil {
		t.Fatalf("UpdateProfile with password failed: %v", err)
	}
	if users.users[user.ID].PasswordHash == originalHash {
		t.Fatalf("expected password hash to change")
	}
}

func TestAuthService_Resolve(t *testing.T) {
	users := newStubUserRepo()
	tokens := newStubTokenRepo()
	svc := newTestAuthService(users, tokens, 0)

	registered, plaintext, err := svc.Register(context.Background(), registerPayload())
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	user, token, err := svc.Resolve(context.Background(), plaintext)
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if user.ID != registered.ID {
		t.Fatalf("resolved wrong user: %d", user.ID)
	}
	if token.LastUsedAt == nil {
		t.Fatalf("expected last-used stamp after resolve")
	}

	for _, bad := range []string{"", "sin-barra", "abc|secreto", "999|secreto"} {
		if _, _, err := svc.Resolve(context.Background(), bad); !errors.Is(err, domain.ErrTokenNotFound) {
			t.Fatalf("plaintext %q: expected ErrTokenNotFound, got %v", bad, err)
		}
	}

	// Right id, wrong secret.
	idPart, _, _ := strings.Cut(plaintext, "|")
	forged := idPart + "|" + strings.Repeat("x", 40)
	if _, _, err := svc.Resolve(context.Background(), forged); !errors.Is(err, domain.ErrTokenNotFound) {
		t.Fatalf("forged secret: expected ErrTokenNotFound, got %v", err)
	}
}

func TestAuthService_Resolve_Expired(t *testing.T) {
	users := newStubUserRepo()
	tokens := newStubTokenRepo()
	svc := newTestAuthService(users, tokens, time.Nanosecond)

	_, plaintext, err := svc.Register(context.Background(), registerPayload())
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	time.Sleep(time.Millisecond)

	if _, _, err := svc.Resolve(context.Background(), plaintext); !errors.Is(err, domain.ErrTokenExpired) {
		t.Fatalf("expected ErrTokenExpired, got %v", err)
	}
}
