package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/sistema-academico/academia-api/internal/core/domain"
	"github.com/sistema-academico/academia-api/internal/validation"
)

// errorBody is the canonical error envelope. Errors is present only for
// validation failures.
type errorBody struct {
	Status  bool                `json:"status"`
	Message string              `json:"message"`
	Errors  map[string][]string `json:"errors,omitempty"`
}

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Renders validation failures as 422 with the complete field→messages map.
//   - Maps known domain errors to their appropriate HTTP status codes.
//   - Logs unexpected errors internally without leaking details to the client.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, body := resolveError(err, log, c)
		_ = c.JSON(code, body)
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, errorBody) {
	// Validation failures carry the full field map.
	var verrs validation.Errors
	if errors.As(err, &verrs) {
		return http.StatusUnprocessableEntity, errorBody{
			Status:  false,
			Message: "Error de validación",
			Errors:  verrs,
		}
	}

	// Echo's own errors (bind failures, 404 from router, etc.)
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, errorBody{Status: false, Message: fmt.Sprintf("%v", he.Message)}
	}

	// Known domain errors → deterministic HTTP codes.
	switch {
	case errors.Is(err, domain.ErrInvalidCredentials):
		// Bad credentials surface as a validation failure on the email
		// field, with no hint whether the account exists.
		return http.StatusUnprocessableEntity, errorBody{
			Status:  false,
			Message: "Error de validación",
			Errors: map[string][]string{
				"email": {"Las credenciales proporcionadas son incorrectas."},
			},
		}
	case errors.Is(err, domain.ErrTokenNotFound), errors.Is(err, domain.ErrTokenExpired):
		return http.StatusUnauthorized, errorBody{Status: false, Message: "Unauthenticated."}
	case errors.Is(err, domain.ErrUserNotFound):
		return http.StatusNotFound, errorBody{Status: false, Message: "Usuario no encontrado"}
	case errors.Is(err, domain.ErrStudentNotFound):
		return http.StatusNotFound, errorBody{Status: false, Message: "Alumno no encontrado"}
	case errors.Is(err, domain.ErrTeacherNotFound):
		return http.StatusNotFound, errorBody{Status: false, Message: "Profesor no encontrado"}
	case errors.Is(err, domain.ErrSubjectNotFound):
		return http.StatusNotFound, errorBody{Status: false, Message: "Asignatura no encontrada"}
	case errors.Is(err, domain.ErrExamNotFound):
		return http.StatusNotFound, errorBody{Status: false, Message: "Examen no encontrado"}
	case errors.Is(err, domain.ErrEmailTaken):
		return http.StatusUnprocessableEntity, errorBody{
			Status:  false,
			Message: "Error de validación",
			Errors: map[string][]string{
				"email": {"El valor del campo email ya está en uso."},
			},
		}
	case errors.Is(err, domain.ErrCodigoTaken):
		return http.StatusUnprocessableEntity, errorBody{
			Status:  false,
			Message: "Error de validación",
			Errors: map[string][]string{
				"codigo": {"El valor del campo codigo ya está en uso."},
			},
		}
	case errors.Is(err, domain.ErrReferencedByExams):
		return http.StatusConflict, errorBody{
			Status:  false,
			Message: "No se puede eliminar: existen exámenes asociados",
		}
	}

	// Unexpected error: log the real cause, return a generic message.
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	return http.StatusInternalServerError, errorBody{Status: false, Message: "Error interno del servidor"}
}
