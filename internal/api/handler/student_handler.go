package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/sistema-academico/academia-api/internal/core/domain"
	"github.com/sistema-academico/academia-api/internal/core/ports"
	"github.com/sistema-academico/academia-api/internal/validation"
)

// StudentHandler handles HTTP requests for student records.
type StudentHandler struct {
	service ports.StudentService
}

func NewStudentHandler(service ports.StudentService) *StudentHandler {
	return &StudentHandler{service: service}
}

// Index handles GET /api/alumnos.
//
// @Summary      List all students
// @Tags         alumnos
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  dataResponse
// @Router       /api/alumnos [get]
func (h *StudentHandler) Index(c echo.Context) error {
	students, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, dataResponse{Status: true, Data: students})
}

// Store handles POST /api/alumnos.
//
// @Summary      Create a student
// @Tags         alumnos
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Success      201  {object}  dataResponse
// @Failure      422  {object}  errorResponse
// @Router       /api/alumnos [post]
func (h *StudentHandler) Store(c echo.Context) error {
	payload := validation.Payload{}
	if err := c.Bind(&payload); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	student, err := h.service.Create(c.Request().Context(), payload)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, dataResponse{
		Status:  true,
		Message: "Alumno creado exitosamente",
		Data:    student,
	})
}

// Show handles GET /api/alumnos/:id.
//
// @Summary      Get a student by id
// @Tags         alumnos
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  dataResponse
// @Failure      404  {object}  statusResponse
// @Router       /api/alumnos/{id} [get]
func (h *StudentHandler) Show(c echo.Context) error {
	id, ok := paramID(c)
	if !ok {
		return domain.ErrStudentNotFound
	}

	student, err := h.service.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, dataResponse{Status: true, Data: student})
}

// Update handles PUT and PATCH /api/alumnos/:id. Only the fields present in
// the request body are validated and applied.
//
// @Summary      Update a student
// @Tags         alumnos
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  dataResponse
// @Failure      404  {object}  statusResponse
// @Failure      422  {object}  errorResponse
// @Router       /api/alumnos/{id} [put]
func (h *StudentHandler) Update(c echo.Context) error {
	id, ok := paramID(c)
	if !ok {
		return domain.ErrStudentNotFound
	}

	payload := validation.Payload{}
	if err := c.Bind(&payload); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	student, err := h.service.Update(c.Request().Context(), id, payload)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, dataResponse{
		Status:  true,
		Message: "Alumno actualizado exitosamente",
		Data:    student,
	})
}

// Destroy handles DELETE /api/alumnos/:id.
//
// @Summary      Delete a student
// @Tags         alumnos
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  statusResponse
// @Failure      404  {object}  statusResponse
// @Failure      409  {object}  statusResponse
// @Router       /api/alumnos/{id} [delete]
func (h *StudentHandler) Destroy(c echo.Context) error {
	id, ok := paramID(c)
	if !ok {
		return domain.ErrStudentNotFound
	}

	if err := h.service.Delete(c.Request().Context(), id); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, statusResponse{
		Status:  true,
		Message: "Alumno eliminado exitosamente",
	})
}
