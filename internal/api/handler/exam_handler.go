package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/sistema-academico/academia-api/internal/core/domain"
	"github.com/sistema-academico/academia-api/internal/core/ports"
	"github.com/sistema-academico/academia-api/internal/validation"
)

// ExamHandler handles HTTP requests for exam records, including the
// per-student and per-subject listings.
type ExamHandler struct {
	service ports.ExamService
}

func NewExamHandler(service ports.ExamService) *ExamHandler {
	return &ExamHandler{service: service}
}

// Index handles GET /api/examenes. Exams come back with their student,
// teacher and subject records attached.
//
// @Summary      List all exams
// @Tags         examenes
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  dataResponse
// @Router       /api/examenes [get]
func (h *ExamHandler) Index(c echo.Context) error {
	exams, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, dataResponse{Status: true, Data: exams})
}

// Store handles POST /api/examenes.
//
// @Summary      Create an exam
// @Tags         examenes
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Success      201  {object}  dataResponse
// @Failure      422  {object}  errorResponse
// @Router       /api/examenes [post]
func (h *ExamHandler) Store(c echo.Context) error {
	payload := validation.Payload{}
	if err := c.Bind(&payload); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	exam, err := h.service.Create(c.Request().Context(), payload)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, dataResponse{
		Status:  true,
		Message: "Examen creado exitosamente",
		Data:    exam,
	})
}

// Show handles GET /api/examenes/:id.
//
// @Summary      Get an exam by id
// @Tags         examenes
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  dataResponse
// @Failure      404  {object}  statusResponse
// @Router       /api/examenes/{id} [get]
func (h *ExamHandler) Show(c echo.Context) error {
	id, ok := paramID(c)
	if !ok {
		return domain.ErrExamNotFound
	}

	exam, err := h.service.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, dataResponse{Status: true, Data: exam})
}

// Update handles PUT and PATCH /api/examenes/:id.
//
// @Summary      Update an exam
// @Tags         examenes
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  dataResponse
// @Failure      404  {object}  statusResponse
// @Failure      422  {object}  errorResponse
// @Router       /api/examenes/{id} [put]
func (h *ExamHandler) Update(c echo.Context) error {
	id, ok := paramID(c)
	if !ok {
		return domain.ErrExamNotFound
	}

	payload := validation.Payload{}
	if err := c.Bind(&payload); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	exam, err := h.service.Update(c.Request().Context(), id, payload)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, dataResponse{
		Status:  true,
		Message: "Examen actualizado exitosamente",
		Data:    exam,
	})
}

// Destroy handles DELETE /api/examenes/:id.
//
// @Summary      Delete an exam
// @Tags         examenes
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  statusResponse
// @Failure      404  {object}  statusResponse
// @Router       /api/examenes/{id} [delete]
func (h *ExamHandler) Destroy(c echo.Context) error {
	id, ok := paramID(c)
	if !ok {
		return domain.ErrExamNotFound
	}

	if err := h.service.Delete(c.Request().Context(), id); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, statusResponse{
		Status:  true,
		Message: "Examen eliminado exitosamente",
	})
}

// ByStudent handles GET /api/alumnos/:id/examenes. An unknown student is a
// 404; a known student with no exams gets an empty list.
//
// @Summary      List exams for a student
// @Tags         examenes
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  dataResponse
// @Failure      404  {object}  statusResponse
// @Router       /api/alumnos/{id}/examenes [get]
func (h *ExamHandler) ByStudent(c echo.Context) error {
	id, ok := paramID(c)
	if !ok {
		return domain.ErrStudentNotFound
	}

	exams, err := h.service.ListByStudent(c.Request().Context(), id)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, dataResponse{Status: true, Data: exams})
}

// BySubject handles GET /api/asignaturas/:id/examenes.
//
// @Summary      List exams for a subject
// @Tags         examenes
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  dataResponse
// @Failure      404  {object}  statusResponse
// @Router       /api/asignaturas/{id}/examenes [get]
func (h *ExamHandler) BySubject(c echo.Context) error {
	id, ok := paramID(c)
	if !ok {
		return domain.ErrSubjectNotFound
	}

	exams, err := h.service.ListBySubject(c.Request().Context(), id)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, dataResponse{Status: true, Data: exams})
}
