package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/sistema-academico/academia-api/internal/core/domain"
	"github.com/sistema-academico/academia-api/internal/core/ports"
	"github.com/sistema-academico/academia-api/internal/validation"
)

// StudentService implements validated CRUD over alumnos.
type StudentService struct {
	repo   ports.StudentRepository
	logger zerolog.Logger
}

func NewStudentService(repo ports.StudentRepository, logger zerolog.Logger) *StudentService {
	return &StudentService{repo: repo, logger: logger}
}

func (s *StudentService) rules(excludeID int64) validation.RuleSet {
	return validation.RuleSet{
		validation.F("nombre", validation.Sometimes(), validation.Required(), validation.String(), validation.MaxLen(255)),
		validation.F("email",
			validation.Sometimes(), validation.Required(), validation.String(), validation.Email(),
			validation.Unique(s.emailTaken(excludeID)),
		),
		validation.F("fecha_nacimiento", validation.Sometimes(), validation.Required(), validation.Date()),
		validation.F("activo", validation.Nullable(), validation.Boolean()),
	}
}

func (s *StudentService) emailTaken(excludeID int64) validation.LookupFunc {
	return func(ctx context.Context, value any) (bool, error) {
		email, _ := value.(string)
		return s.repo.EmailTaken(ctx, email, excludeID)
	}
}

func (s *StudentService) List(ctx context.Context) ([]domain.Student, error) {
	return s.repo.List(ctx)
}

func (s *StudentService) Create(ctx context.Context, payload validation.Payload) (*domain.Student, error) {
	if errs, err := validation.Evaluate(ctx, s.rules(0), payload, false); err != nil {
		return nil, err
	} else if errs != nil {
		return nil, errs
	}

	student := &domain.Student{
		Nombre:          payload.String("nombre"),
		Email:           payload.String("email"),
		FechaNacimiento: payload.Time("fecha_nacimiento"),
		Activo:          true,
	}
	if payload.Has("activo") {
		student.Activo = payload.Bool("activo")
	}

	created, err := s.repo.Create(ctx, student)
	if err != nil {
		return nil, err
	}
	s.logger.Info().Int64("alumno_id", created.ID).Msg("alumno created")
	return created, nil
}

func (s *StudentService) Get(ctx context.Context, id int64) (*domain.Student, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *StudentService) Update(ctx context.Context, id int64, payload validation.Payload) (*domain.Student, error) {
	student, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if errs, err := validation.Evaluate(ctx, s.rules(id), payload, true); err != nil {
		return nil, err
	} else if errs != nil {
		return nil, errs
	}

	if payload.Has("nombre") {
		student.Nombre = payload.String("nombre")
	}
	if payload.Has("email") {
		student.Email = payload.String("email")
	}
	if payload.Has("fecha_nacimiento") {
		student.FechaNacimiento = payload.Time("fecha_nacimiento")
	}
	if payload.Has("activo") {
		student.Activo = payload.Bool("activo")
	}

	if err := s.repo.Update(ctx, student); err != nil {
		return nil, err
	}
	return student, nil
}

func (s *StudentService) Delete(ctx context.Context, id int64) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}
