package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/sistema-academico/academia-api/internal/core/domain"
	"github.com/sistema-academico/academia-api/internal/core/ports"
	"github.com/sistema-academico/academia-api/internal/validation"
)

// TeacherHandler handles HTTP requests for teacher records.
type TeacherHandler struct {
	service ports.TeacherService
}

func NewTeacherHandler(service ports.TeacherService) *TeacherHandler {
	return &TeacherHandler{service: service}
}

// Index handles GET /api/profesores.
//
// @Summary      List all teachers
// @Tags         profesores
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  dataResponse
// @Router       /api/profesores [get]
func (h *TeacherHandler) Index(c echo.Context) error {
	teachers, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, dataResponse{Status: true, Data: teachers})
}

// Store handles POST /api/profesores.
//
// @Summary      Create a teacher
// @Tags         profesores
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Success      201  {object}  dataResponse
// @Failure      422  {object}  errorResponse
// @Router       /api/profesores [post]
func (h *TeacherHandler) Store(c echo.Context) error {
	payload := validation.Payload{}
	if err := c.Bind(&payload); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	teacher, err := h.service.Create(c.Request().Context(), payload)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, dataResponse{
		Status:  true,
		Message: "Profesor creado exitosamente",
		Data:    teacher,
	})
}

// Show handles GET /api/profesores/:id.
//
// @Summary      Get a teacher by id
// @Tags         profesores
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  dataResponse
// @Failure      404  {object}  statusResponse
// @Router       /api/profesores/{id} [get]
func (h *TeacherHandler) Show(c echo.Context) error {
	id, ok := paramID(c)
	if !ok {
		return domain.ErrTeacherNotFound
	}

	teacher, err := h.service.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, dataResponse{Status: true, Data: teacher})
}

// Update handles PUT and PATCH /api/profesores/:id.
//
// @Summary      Update a teacher
// @Tags         profesores
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  dataResponse
// @Failure      404  {object}  statusResponse
// @Failure      422  {object}  errorResponse
// @Router       /api/profesores/{id} [put]
func (h *TeacherHandler) Update(c echo.Context) error {
	id, ok := paramID(c)
	if !ok {
		return domain.ErrTeacherNotFound
	}

	payload := validation.Payload{}
	if err := c.Bind(&payload); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	teacher, err := h.service.Update(c.Request().Context(), id, payload)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, dataResponse{
		Status:  true,
		Message: "Profesor actualizado exitosamente",
		Data:    teacher,
	})
}

// Destroy handles DELETE /api/profesores/:id.
//
// @Summary      Delete a teacher
// @Tags         profesores
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  statusResponse
// @Failure      404  {object}  statusResponse
// @Failure      409  {object}  statusResponse
// @Router       /api/profesores/{id} [delete]
func (h *TeacherHandler) Destroy(c echo.Context) error {
	id, ok := paramID(c)
	if !ok {
		return domain.ErrTeacherNotFound
	}

	if err := h.service.Delete(c.Request().Context(), id); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, statusResponse{
		Status:  true,
		Message: "Profesor eliminado exitosamente",
	})
}
