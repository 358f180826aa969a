package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/sistema-academico/academia-api/internal/core/domain"
	"github.com/sistema-academico/academia-api/internal/validation"
)

type stubExamService struct {
	listFn      func(ctx context.Context) ([]domain.Exam, error)
	createFn    func(ctx context.Context, payload validation.Payload) (*domain.Exam, error)
	getFn       func(ctx context.Context, id int64) (*domain.Exam, error)
	updateFn    func(ctx context.Context, id int64, payload validation.Payload) (*domain.Exam, error)
	deleteFn    func(ctx context.Context, id int64) error
	byStudentFn func(ctx context.Context, studentID int64) ([]domain.Exam, error)
	bySubjectFn func(ctx context.Context, subjectID int64) ([]domain.Exam, error)
}

func (s *stubExamService) List(ctx context.Context) ([]domain.Exam, error) { return s.listFn(ctx) }
func (s *stubExamService) Create(ctx context.Context, payload validation.Payload) (*domain.Exam, error) {
	return s.createFn(ctx, payload)
}
func (s *stubExamService) Get(ctx context.Context, id int64) (*domain.Exam, error) {
	return s.getFn(ctx, id)
}
func (s *stubExamService) Update(ctx context.Context, id int64, payload validation.Payload) (*domain.Exam, error) {
	return s.updateFn(ctx, id, payload)
}
func (s *stubExamService) Delete(ctx context.Context, id int64) error { return s.deleteFn(ctx, id) }
func (s *stubExamService) ListByStudent(ctx context.Context, studentID int64) ([]domain.Exam, error) {
	return s.byStudentFn(ctx, studentID)
}
func (s *stubExamService) ListBySubject(ctx context.Context, subjectID int64) ([]domain.Exam, error) {
	return s.bySubjectFn(ctx, subjectID)
}

func examContext(method, target, body, id string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req, rec := jsonRequest(method, target, body)
	c := e.NewContext(req, rec)
	if id != "" {
		c.SetParamNames("id")
		c.SetParamValues(id)
	}
	return c, rec
}

func TestExamHandler_Index(t *testing.T) {
	nota := 8.5
	stub := &stubExamService{
		listFn: func(_ context.Context) ([]domain.Exam, error) {
			return []domain.Exam{{
				ID:     1,
				Tema:   "Álgebra",
				Nota:   &nota,
				Alumno: &domain.Student{ID: 2, Nombre: "Carlos"},
			}}, nil
		},
	}
	handler := NewExamHandler(stub)

	c, rec := examContext(http.MethodGet, "/api/examenes", "", "")

	if err := handler.Index(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	data, ok := resp["data"].([]any)
	if !ok || len(data) != 1 {
		t.Fatalf("unexpected data: %+v", resp)
	}
	exam := data[0].(map[string]any)
	alumno, ok := exam["alumno"].(map[string]any)
	if !ok || alumno["nombre"] != "Carlos" {
		t.Fatalf("expected eager-loaded alumno, got %+v", exam)
	}
}

func TestExamHandler_Show_InvalidID(t *testing.T) {
	handler := NewExamHandler(&stubExamService{})

	for _, id := range []string{"abc", "0", "-3"} {
		c, _ := examContext(http.MethodGet, "/api/examenes/"+id, "", id)
		if err := handler.Show(c); !errors.Is(err, domain.ErrExamNotFound) {
			t.Fatalf("id %q: expected ErrExamNotFound, got %v", id, err)
		}
	}
}

func TestExamHandler_Store(t *testing.T) {
	stub := &stubExamService{
		createFn: func(_ context.Context, payload validation.Payload) (*domain.Exam, error) {
			if payload.String("tema") != "Geometría" {
				t.Fatalf("unexpected payload: %+v", payload)
			}
			return &domain.Exam{ID: 4, Tema: "Geometría"}, nil
		},
	}
	handler := NewExamHandler(stub)

	c, rec := examContext(http.MethodPost, "/api/examenes",
		`{"tema":"Geometría","dia_examen":"2024-06-10","aprobado":false,"duracion_minutos":60,"alumno_id":1,"profesor_id":1,"asignatura_id":1}`, "")

	if err := handler.Store(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["message"] != "Examen creado exitosamente" {
		t.Fatalf("unexpected envelope: %+v", resp)
	}
}

func TestExamHandler_ByStudent(t *testing.T) {
	stub := &stubExamService{
		byStudentFn: func(_ context.Context, studentID int64) ([]domain.Exam, error) {
			if studentID == 7 {
				return []domain.Exam{}, nil
			}
			return nil, domain.ErrStudentNotFound
		},
	}
	handler := NewExamHandler(stub)

	c, rec := examContext(http.MethodGet, "/api/alumnos/7/examenes", "", "7")
	if err := handler.ByStudent(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	data, ok := resp["data"].([]any)
	if !ok || len(data) != 0 {
		t.Fatalf("expected empty data array, got %+v", resp["data"])
	}

	c, _ = examContext(http.MethodGet, "/api/alumnos/99/examenes", "", "99")
	if err := handler.ByStudent(c); !errors.Is(err, domain.ErrStudentNotFound) {
		t.Fatalf("expected ErrStudentNotFound, got %v", err)
	}
}

func TestExamHandler_Destroy(t *testing.T) {
	var deleted int64
	stub := &stubExamService{
		deleteFn: func(_ context.Context, id int64) error {
			deleted = id
			return nil
		},
	}
	handler := NewExamHandler(stub)

	c, rec := examContext(http.MethodDelete, "/api/examenes/4", "", "4")
	if err := handler.Destroy(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if deleted != 4 {
		t.Fatalf("expected delete of exam 4, got %d", deleted)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["message"] != "Examen eliminado exitosamente" {
		t.Fatalf("unexpected envelope: %+v", resp)
	}
}
