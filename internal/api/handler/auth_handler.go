package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/sistema-academico/academia-api/internal/core/ports"
	"github.com/sistema-academico/academia-api/internal/validation"
)

// AuthHandler handles HTTP requests for authentication operations.
type AuthHandler struct {
	service ports.AuthService
}

func NewAuthHandler(service ports.AuthService) *AuthHandler {
	return &AuthHandler{service: service}
}

// Register handles POST /api/register.
//
// @Summary      Register a new user account
// @Tags         auth
// @Accept       json
// @Produce      json
// @Success      201  {object}  tokenResponse
// @Failure      422  {object}  errorResponse
// @Router       /api/register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	payload := validation.Payload{}
	if err := c.Bind(&payload); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	user, token, err := h.service.Register(c.Request().Context(), payload)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, tokenResponse{
		Status:    true,
		Message:   "Usuario registrado exitosamente",
		User:      user,
		Token:     token,
		TokenType: "Bearer",
	})
}

// Login handles POST /api/login.
//
// @Summary      Authenticate and issue an access token
// @Tags         auth
// @Accept       json
// @Produce      json
// @Success      200  {object}  tokenResponse
// @Failure      422  {object}  errorResponse
// @Router       /api/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	payload := validation.Payload{}
	if err := c.Bind(&payload); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	user, token, err := h.service.Login(c.Request().Context(), payload)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, tokenResponse{
		Status:    true,
		Message:   "Login exitoso",
		User:      user,
		Token:     token,
		TokenType: "Bearer",
	})
}

// Logout handles POST /api/logout. Every token the user holds is revoked,
// so all of their devices are signed out at once.
//
// @Summary      Revoke the authenticated user's tokens
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  statusResponse
// @Failure      401  {object}  statusResponse
// @Router       /api/logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	user, err := ctxUser(c)
	if err != nil {
		return err
	}

	if err := h.service.Logout(c.Request().Context(), user.ID); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, statusResponse{
		Status:  true,
		Message: "Sesión cerrada correctamente",
	})
}

// Me handles GET /api/user.
//
// @Summary      Get the authenticated user's profile
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  userResponse
// @Failure      401  {object}  statusResponse
// @Router       /api/user [get]
func (h *AuthHandler) Me(c echo.Context) error {
	user, err := ctxUser(c)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, userResponse{
		Status: true,
		User:   user,
	})
}

// RefreshToken handles POST /api/refresh-token. The token previously issued
// for the same device name is revoked before the new one is minted.
//
// @Summary      Rotate the access token for a device
// @Tags         auth
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  tokenResponse
// @Failure      401  {object}  statusResponse
// @Failure      422  {object}  errorResponse
// @Router       /api/refresh-token [post]
func (h *AuthHandler) RefreshToken(c echo.Context) error {
	user, err := ctxUser(c)
	if err != nil {
		return err
	}

	payload := validation.Payload{}
	if err := c.Bind(&payload); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	token, err := h.service.RefreshToken(c.Request().Context(), user, payload)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, tokenResponse{
		Status:    true,
		Message:   "Token refrescado correctamente",
		Token:     token,
		TokenType: "Bearer",
	})
}

// UpdateProfile handles PUT /api/profile.
//
// @Summary      Update the authenticated user's profile
// @Tags         auth
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  userResponse
// @Failure      401  {object}  statusResponse
// @Failure      422  {object}  errorResponse
// @Router       /api/profile [put]
func (h *AuthHandler) UpdateProfile(c echo.Context) error {
	user, err := ctxUser(c)
	if err != nil {
		return err
	}

	payload := validation.Payload{}
	if err := c.Bind(&payload); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	updated, err := h.service.UpdateProfile(c.Request().Context(), user, payload)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, userResponse{
		Status:  true,
		Message: "Perfil actualizado correctamente",
		User:    updated,
	})
}
