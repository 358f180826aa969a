package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/sistema-academico/academia-api/internal/core/domain"
	"github.com/sistema-academico/academia-api/internal/core/ports"
	"github.com/sistema-academico/academia-api/internal/validation"
)

// ExamService implements validated CRUD over examenes. Creation and update
// verify that the referenced alumno, profesor and asignatura resolve to
// existing rows before any write.
type ExamService struct {
	repo     ports.ExamRepository
	students ports.StudentRepository
	teachers ports.TeacherRepository
	subjects ports.SubjectRepository
	logger   zerolog.Logger
}

func NewExamService(
	repo ports.ExamRepository,
	students ports.StudentRepository,
	teachers ports.TeacherRepository,
	subjects ports.SubjectRepository,
	logger zerolog.Logger,
) *ExamService {
	return &ExamService{
		repo:     repo,
		students: students,
		teachers: teachers,
		subjects: subjects,
		logger:   logger,
	}
}

func (s *ExamService) rules() validation.RuleSet {
	return validation.RuleSet{
		validation.F("dia_examen", validation.Sometimes(), validation.Required(), validation.Date()),
		validation.F("tema", validation.Sometimes(), validation.Required(), validation.String(), validation.MaxLen(255)),
		validation.F("aprobado", validation.Sometimes(), validation.Required(), validation.Boolean()),
		validation.F("nota", validation.Nullable(), validation.Numeric(), validation.Min(0), validation.Max(10)),
		validation.F("duracion_minutos", validation.Sometimes(), validation.Required(), validation.Integer(), validation.Min(1)),
		validation.F("alumno_id", validation.Sometimes(), validation.Required(), validation.Integer(), validation.Exists(existsLookup(s.students.ExistsByID))),
		validation.F("profesor_id", validation.Sometimes(), validation.Required(), validation.Integer(), validation.Exists(existsLookup(s.teachers.ExistsByID))),
		validation.F("asignatura_id", validation.Sometimes(), validation.Required(), validation.Integer(), validation.Exists(existsLookup(s.subjects.ExistsByID))),
	}
}

// existsLookup adapts a repository's ExistsByID into a lookup rule.
func existsLookup(fn func(ctx context.Context, id int64) (bool, error)) validation.LookupFunc {
	return func(ctx context.Context, value any) (bool, error) {
		id, ok := asID(value)
		if !ok {
			return false, nil
		}
		return fn(ctx, id)
	}
}

func asID(value any) (int64, bool) {
	switch n := value.(type) {
	case float64:
		return int64(n), true
	case int:
		return int64(n), true
	case int64:
		return n, true
	}
	return 0, false
}

func (s *ExamService) List(ctx context.Context) ([]domain.Exam, error) {
	return s.repo.List(ctx)
}

func (s *ExamService) Create(ctx context.Context, payload validation.Payload) (*domain.Exam, error) {
	if errs, err := validation.Evaluate(ctx, s.rules(), payload, false); err != nil {
		return nil, err
	} else if errs != nil {
		return nil, errs
	}

	exam := &domain.Exam{
		DiaExamen:       payload.Time("dia_examen"),
		Tema:            payload.String("tema"),
		Aprobado:        payload.Bool("aprobado"),
		Nota:            payload.FloatPtr("nota"),
		DuracionMinutos: payload.Int("duracion_minutos"),
		AlumnoID:        payload.Int64("alumno_id"),
		ProfesorID:      payload.Int64("profesor_id"),
		AsignaturaID:    payload.Int64("asignatura_id"),
	}

	created, err := s.repo.Create(ctx, exam)
	if err != nil {
		return nil, err
	}
	s.logger.Info().Int64("examen_id", created.ID).Str("tema", created.Tema).Msg("examen created")
	return created, nil
}

func (s *ExamService) Get(ctx context.Context, id int64) (*domain.Exam, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *ExamService) Update(ctx context.Context, id int64, payload validation.Payload) (*domain.Exam, error) {
	exam, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if errs, err := validation.Evaluate(ctx, s.rules(), payload, true); err != nil {
		return nil, err
	} else if errs != nil {
		return nil, errs
	}

	if payload.Has("dia_examen") {
		exam.DiaExamen = payload.Time("dia_examen")
	}
	if payload.Has("tema") {
		exam.Tema = payload.String("tema")
	}
	if payload.Has("aprobado") {
		exam.Aprobado = payload.Bool("aprobado")
	}
	if payload.Has("nota") {
		exam.Nota = payload.FloatPtr("nota")
	}
	if payload.Has("duracion_minutos") {
		exam.DuracionMinutos = payload.Int("duracion_minutos")
	}
	if payload.Has("alumno_id") {
		exam.AlumnoID = payload.Int64("alumno_id")
	}
	if payload.Has("profesor_id") {
		exam.ProfesorID = payload.Int64("profesor_id")
	}
	if payload.Has("asignatura_id") {
		exam.AsignaturaID = payload.Int64("asignatura_id")
	}

	if err := s.repo.Update(ctx, exam); err != nil {
		return nil, err
	}

	// Re-read so changed foreign keys come back with their relations.
	return s.repo.FindByID(ctx, exam.ID)
}

func (s *ExamService) Delete(ctx context.Context, id int64) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

// ListByStudent distinguishes an unknown alumno (not found) from a known
// alumno with no exams (empty list).
func (s *ExamService) ListByStudent(ctx context.Context, studentID int64) ([]domain.Exam, error) {
	exists, err := s.students.ExistsByID(ctx, studentID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, domain.ErrStudentNotFound
	}
	return s.repo.ListByStudent(ctx, studentID)
}

func (s *ExamService) ListBySubject(ctx context.Context, subjectID int64) ([]domain.Exam, error) {
	exists, err := s.subjects.ExistsByID(ctx, subjectID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, domain.ErrSubjectNotFound
	}
	return s.repo.ListBySubject(ctx, subjectID)
}
