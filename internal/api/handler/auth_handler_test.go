package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/sistema-academico/academia-api/internal/api/middleware"
	"github.com/sistema-academico/academia-api/internal/core/domain"
	"github.com/sistema-academico/academia-api/internal/validation"
)

type stubAuthService struct {
	registerFn func(ctx context.Context, payload validation.Payload) (*domain.User, string, error)
	loginFn    func(ctx context.Context, payload validation.Payload) (*domain.User, string, error)
	logoutFn   func(ctx context.Context, userID int64) error
	refreshFn  func(ctx context.Context, user *domain.User, payload validation.Payload) (string, error)
	profileFn  func(ctx context.Context, user *domain.User, payload validation.Payload) (*domain.User, error)
}

func (s *stubAuthService) Register(ctx context.Context, payload validation.Payload) (*domain.User, string, error) {
	return s.registerFn(ctx, payload)
}

func (s *stubAuthService) Login(ctx context.Context, payload validation.Payload) (*domain.User, string, error) {
	return s.loginFn(ctx, payload)
}

func (s *stubAuthService) Logout(ctx context.Context, userID int64) error {
	return s.logoutFn(ctx, userID)
}

func (s *stubAuthService) RefreshToken(ctx context.Context, user *domain.User, payload validation.Payload) (string, error) {
	return s.refreshFn(ctx, user, payload)
}

func (s *stubAuthService) UpdateProfile(ctx context.Context, user *domain.User, payload validation.Payload) (*domain.User, error) {
	return s.profileFn(ctx, user, payload)
}

func jsonRequest(method, target, body string) (*http.Request, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	return req, httptest.NewRecorder()
}

func TestAuthHandler_Register_Success(t *testing.T) {
	e := echo.New()
	stub := &stubAuthService{
		registerFn: func(_ context.Context, payload validation.Payload) (*domain.User, string, error) {
			if payload.String("name") != "Ana" || payload.String("device_name") != "iphone" {
				t.Fatalf("unexpected payload: %+v", payload)
			}
			return &domain.User{ID: 1, Name: "Ana", Email: "ana@example.com"}, "1|secreto", nil
		},
	}
	handler := NewAuthHandler(stub)

	req, rec := jsonRequest(http.MethodPost, "/api/register",
		`{"name":"Ana","email":"ana@example.com","password":"secreto123","password_confirmation":"secreto123","device_name":"iphone"}`)
	c := e.NewContext(req, rec)

	if err := handler.Register(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["status"] != true || resp["message"] != "Usuario registrado exitosamente" {
		t.Fatalf("unexpected envelope: %+v", resp)
	}
	if resp["token"] != "1|secreto" || resp["token_type"] != "Bearer" {
		t.Fatalf("unexpected token fields: %+v", resp)
	}
	user, ok := resp["user"].(map[string]any)
	if !ok {
		t.Fatalf("expected user in response")
	}
	if user["email"] != "ana@example.com" {
		t.Fatalf("unexpected user payload: %+v", user)
	}
	if _, leaked := user["password"]; leaked {
		t.Fatalf("password must never appear in responses")
	}
}

func TestAuthHandler_Register_PropagatesValidationErrors(t *testing.T) {
	e := echo.New()
	stub := &stubAuthService{
		registerFn: func(_ context.Context, _ validation.Payload) (*domain.User, string, error) {
			return nil, "", validation.Errors{"email": {"El campo email es obligatorio."}}
		},
	}
	handler := NewAuthHandler(stub)

	req, rec := jsonRequest(http.MethodPost, "/api/register", `{}`)
	c := e.NewContext(req, rec)

	err := handler.Register(c)
	verrs, ok := err.(validation.Errors)
	if !ok {
		t.Fatalf("expected validation.Errors passed through, got %v", err)
	}
	if len(verrs["email"]) != 1 {
		t.Fatalf("unexpected errors: %v", verrs)
	}
}

func TestAuthHandler_Login_Success(t *testing.T) {
	e := echo.New()
	stub := &stubAuthService{
		loginFn: func(_ context.Context, payload validation.Payload) (*domain.User, string, error) {
			return &domain.User{ID: 1, Email: payload.String("email")}, "2|fresco", nil
		},
	}
	handler := NewAuthHandler(stub)

	req, rec := jsonRequest(http.MethodPost, "/api/login",
		`{"email":"ana@example.com","password":"secreto123","device_name":"web"}`)
	c := e.NewContext(req, rec)

	if err := handler.Login(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["message"] != "Login exitoso" || resp["token"] != "2|fresco" {
		t.Fatalf("unexpected envelope: %+v", resp)
	}
}

func TestAuthHandler_Logout(t *testing.T) {
	e := echo.New()
	var revoked int64
	stub := &stubAuthService{
		logoutFn: func(_ context.Context, userID int64) error {
			revoked = userID
			return nil
		},
	}
	handler := NewAuthHandler(stub)

	req, rec := jsonRequest(http.MethodPost, "/api/logout", "")
	c := e.NewContext(req, rec)
	c.Set(middleware.ContextUserKey, &domain.User{ID: 9})

	if err := handler.Logout(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if revoked != 9 {
		t.Fatalf("expected logout for user 9, got %d", revoked)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["message"] != "Sesión cerrada correctamente" {
		t.Fatalf("unexpected envelope: %+v", resp)
	}
}

func TestAuthHandler_Logout_NoUserInContext(t *testing.T) {
	e := echo.New()
	handler := NewAuthHandler(&stubAuthService{})

	req, rec := jsonRequest(http.MethodPost, "/api/logout", "")
	c := e.NewContext(req, rec)

	err := handler.Logout(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %v", err)
	}
}

func TestAuthHandler_Me(t *testing.T) {
	e := echo.New()
	handler := NewAuthHandler(&stubAuthService{})

	req, rec := jsonRequest(http.MethodGet, "/api/user", "")
	c := e.NewContext(req, rec)
	c.Set(middleware.ContextUserKey, &domain.User{ID: 3, Name: "Ana", Email: "ana@example.com"})

	if err := handler.Me(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	user, ok := resp["user"].(map[string]any)
	if !ok || user["name"] != "Ana" {
		t.Fatalf("unexpected response: %+v", resp)
	}
}

func TestAuthHandler_RefreshToken(t *testing.T) {
	e := echo.New()
	stub := &stubAuthService{
		refreshFn: func(_ context.Context, user *domain.User, payload validation.Payload) (string, error) {
			if user.ID != 3 || payload.String("device_name") != "iphone" {
				t.Fatalf("unexpected args: %d %q", user.ID, payload.String("device_name"))
			}
			return "5|rotado", nil
		},
	}
	handler := NewAuthHandler(stub)

	req, rec := jsonRequest(http.MethodPost, "/api/refresh-token", `{"device_name":"iphone"}`)
	c := e.NewContext(req, rec)
	c.Set(middleware.ContextUserKey, &domain.User{ID: 3})

	if err := handler.RefreshToken(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["message"] != "Token refrescado correctamente" || resp["token"] != "5|rotado" {
		t.Fatalf("unexpected envelope: %+v", resp)
	}
	if _, present := resp["user"]; present {
		t.Fatalf("refresh response must not include the user")
	}
}

func TestAuthHandler_UpdateProfile(t *testing.T) {
	e := echo.New()
	stub := &stubAuthService{
		profileFn: func(_ context.Context, user *domain.User, payload validation.Payload) (*domain.User, error) {
			updated := *user
			updated.Name = payload.String("name")
			return &updated, nil
		},
	}
	handler := NewAuthHandler(stub)

	req, rec := jsonRequest(http.MethodPut, "/api/profile", `{"name":"Ana María","email":"ana@example.com"}`)
	c := e.NewContext(req, rec)
	c.Set(middleware.ContextUserKey, &domain.User{ID: 3, Name: "Ana"})

	if err := handler.UpdateProfile(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	user, ok := resp["user"].(map[string]any)
	if !ok || user["name"] != "Ana María" {
		t.Fatalf("unexpected response: %+v", resp)
	}
}
