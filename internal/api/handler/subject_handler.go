package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/sistema-academico/academia-api/internal/core/domain"
	"github.com/sistema-academico/academia-api/internal/core/ports"
	"github.com/sistema-academico/academia-api/internal/validation"
)

// SubjectHandler handles HTTP requests for subject records.
type SubjectHandler struct {
	service ports.SubjectService
}

func NewSubjectHandler(service ports.SubjectService) *SubjectHandler {
	return &SubjectHandler{service: service}
}

// Index handles GET /api/asignaturas.
//
// @Summary      List all subjects
// @Tags         asignaturas
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  dataResponse
// @Router       /api/asignaturas [get]
func (h *SubjectHandler) Index(c echo.Context) error {
	subjects, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, dataResponse{Status: true, Data: subjects})
}

// Store handles POST /api/asignaturas.
//
// @Summary      Create a subject
// @Tags         asignaturas
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Success      201  {object}  dataResponse
// @Failure      422  {object}  errorResponse
// @Router       /api/asignaturas [post]
func (h *SubjectHandler) Store(c echo.Context) error {
	payload := validation.Payload{}
	if err := c.Bind(&payload); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	subject, err := h.service.Create(c.Request().Context(), payload)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, dataResponse{
		Status:  true,
		Message: "Asignatura creada exitosamente",
		Data:    subject,
	})
}

// Show handles GET /api/asignaturas/:id.
//
// @Summary      Get a subject by id
// @Tags         asignaturas
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  dataResponse
// @Failure      404  {object}  statusResponse
// @Router       /api/asignaturas/{id} [get]
func (h *SubjectHandler) Show(c echo.Context) error {
	id, ok := paramID(c)
	if !ok {
		return domain.ErrSubjectNotFound
	}

	subject, err := h.service.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, dataResponse{Status: true, Data: subject})
}

// Update handles PUT and PATCH /api/asignaturas/:id.
//
// @Summary      Update a subject
// @Tags         asignaturas
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  dataResponse
// @Failure      404  {object}  statusResponse
// @Failure      422  {object}  errorResponse
// @Router       /api/asignaturas/{id} [put]
func (h *SubjectHandler) Update(c echo.Context) error {
	id, ok := paramID(c)
	if !ok {
		return domain.ErrSubjectNotFound
	}

	payload := validation.Payload{}
	if err := c.Bind(&payload); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	subject, err := h.service.Update(c.Request().Context(), id, payload)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, dataResponse{
		Status:  true,
		Message: "Asignatura actualizada exitosamente",
		Data:    subject,
	})
}

// Destroy handles DELETE /api/asignaturas/:id.
//
// @Summary      Delete a subject
// @Tags         asignaturas
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  statusResponse
// @Failure      404  {object}  statusResponse
// @Failure      409  {object}  statusResponse
// @Router       /api/asignaturas/{id} [delete]
func (h *SubjectHandler) Destroy(c echo.Context) error {
	id, ok := paramID(c)
	if !ok {
		return domain.ErrSubjectNotFound
	}

	if err := h.service.Delete(c.Request().Context(), id); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, statusResponse{
		Status:  true,
		Message: "Asignatura eliminada exitosamente",
	})
}
