package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/sistema-academico/academia-api/internal/api/metrics"
	"github.com/sistema-academico/academia-api/internal/core/domain"
	"github.com/sistema-academico/academia-api/internal/core/ports"
	"github.com/sistema-academico/academia-api/internal/validation"
)

// AuthService implements registration, login, logout, token refresh and
// profile updates. It also acts as the TokenResolver for the auth middleware.
type AuthService struct {
	userRepo  ports.UserRepository
	tokenRepo ports.TokenRepository
	tokenTTL  time.Duration
	logger    zerolog.Logger
}

// NewAuthService wires the credential and token stores. tokenTTL <= 0 mints
// tokens without an expiry.
func NewAuthService(userRepo ports.UserRepository, tokenRepo ports.TokenRepository, tokenTTL time.Duration, logger zerolog.Logger) *AuthService {
	return &AuthService{
		userRepo:  userRepo,
		tokenRepo: tokenRepo,
		tokenTTL:  tokenTTL,
		logger:    logger,
	}
}

func (s *AuthService) registerRules() validation.RuleSet {
	return validation.RuleSet{
		validation.F("name", validation.Required(), validation.String(), validation.MaxLen(255)),
		validation.F("email",
			validation.Required(), validation.String(), validation.Email(), validation.MaxLen(255),
			validation.Unique(s.emailTaken(0)),
		),
		validation.F("password", validation.Required(), validation.String(), validation.MinLen(8), validation.Confirmed()),
		validation.F("device_name", validation.Required(), validation.String(), validation.MaxLen(255)),
	}
}

func loginRules() validation.RuleSet {
	return validation.RuleSet{
		validation.F("email", validation.Required(), validation.String(), validation.Email()),
		validation.F("password", validation.Required(), validation.String()),
		validation.F("device_name", validation.Required(), validation.String(), validation.MaxLen(255)),
	}
}

func refreshRules() validation.RuleSet {
	return validation.RuleSet{
		validation.F("device_name", validation.Required(), validation.String(), validation.MaxLen(255)),
	}
}

func (s *AuthService) profileRules(currentID int64) validation.RuleSet {
	return validation.RuleSet{
		validation.F("name", validation.Required(), validation.String(), validation.MaxLen(255)),
		validation.F("email",
			validation.Required(), validation.String(), validation.Email(), validation.MaxLen(255),
			validation.Unique(s.emailTaken(currentID)),
		),
		validation.F("password", validation.Nullable(), validation.String(), validation.MinLen(8), validation.Confirmed()),
	}
}

// emailTaken adapts the user store's uniqueness check into a lookup rule.
func (s *AuthService) emailTaken(excludeID int64) validation.LookupFunc {
	return func(ctx context.Context, value any) (bool, error) {
		email, _ := value.(string)
		return s.userRepo.EmailTaken(ctx, email, excludeID)
	}
}

func (s *AuthService) Register(ctx context.Context, payload validation.Payload) (*domain.User, string, error) {
	if errs, err := validation.Evaluate(ctx, s.registerRules(), payload, false); err != nil {
		return nil, "", err
	} else if errs != nil {
		return nil, "", errs
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(payload.String("password")), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", err
	}

	user := &domain.User{
		Name:         payload.String("name"),
		Email:        payload.String("email"),
		PasswordHash: string(hash),
	}
	created, err := s.userRepo.Create(ctx, user)
	if err != nil {
		return nil, "", err
	}

	plaintext, err := s.mintToken(ctx, created.ID, payload.String("device_name"))
	if err != nil {
		return nil, "", err
	}

	metrics.TokensIssuedTotal.WithLabelValues("register").Inc()
	s.logger.Info().Int64("user_id", created.ID).Msg("user registered")
	return created, plaintext, nil
}

func (s *AuthService) Login(ctx context.Context, payload validation.Payload) (*domain.User, string, error) {
	if errs, err := validation.Evaluate(ctx, loginRules(), payload, false); err != nil {
		return nil, "", err
	} else if errs != nil {
		return nil, "", errs
	}

	// Unknown email and wrong password fail identically so callers cannot
	// probe which accounts exist.
	user, err := s.userRepo.FindByEmail(ctx, payload.String("email"))
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			metrics.LoginsTotal.WithLabelValues("failure").Inc()
			return nil, "", domain.ErrInvalidCredentials
		}
		return nil, "", err
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(payload.String("password"))) != nil {
		metrics.LoginsTotal.WithLabelValues("failure").Inc()
		return nil, "", domain.ErrInvalidCredentials
	}

	plaintext, err := s.mintToken(ctx, user.ID, payload.String("device_name"))
	if err != nil {
		return nil, "", err
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	metrics.TokensIssuedTotal.WithLabelValues("login").Inc()
	return user, plaintext, nil
}

// Logout revokes every token the user holds, not only the one presented on
// this request. Sessions on other devices end too.
func (s *AuthService) Logout(ctx context.Context, userID int64) error {
	if err := s.tokenRepo.DeleteByUser(ctx, userID); err != nil {
		return err
	}
	metrics.TokensRevokedTotal.WithLabelValues("logout").Inc()
	s.logger.Info().Int64("user_id", userID).Msg("all sessions revoked")
	return nil
}

func (s *AuthService) RefreshToken(ctx context.Context, user *domain.User, payload validation.Payload) (string, error) {
	if errs, err := validation.Evaluate(ctx, refreshRules(), payload, false); err != nil {
		return "", err
	} else if errs != nil {
		return "", errs
	}

	deviceName := payload.String("device_name")
	if err := s.tokenRepo.DeleteByUserAndName(ctx, user.ID, deviceName); err != nil {
		return "", err
	}
	metrics.TokensRevokedTotal.WithLabelValues("refresh").Inc()

	plaintext, err := s.mintToken(ctx, user.ID, deviceName)
	if err != nil {
		return "", err
	}
	metrics.TokensIssuedTotal.WithLabelValues("refresh").Inc()
	return plaintext, nil
}

func (s *AuthService) UpdateProfile(ctx context.Context, user *domain.User, payload validation.Payload) (*domain.User, error) {
	if errs, err := validation.Evaluate(ctx, s.profileRules(user.ID), payload, false); err != nil {
		return nil, err
	} else if errs != nil {
		return nil, errs
	}

	updated := *user
	updated.Name = payload.String("name")
	updated.Email = payload.String("email")

	// The password only changes when a new value was supplied.
	if payload.Filled("password") {
		hash, err := bcrypt.GenerateFromPassword([]byte(payload.String("password")), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		updated.PasswordHash = string(hash)
	}

	if err := s.userRepo.Update(ctx, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}
