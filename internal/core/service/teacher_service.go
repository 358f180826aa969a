package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/sistema-academico/academia-api/internal/core/domain"
	"github.com/sistema-academico/academia-api/internal/core/ports"
	"github.com/sistema-academico/academia-api/internal/validation"
)

// TeacherService implements validated CRUD over profesores.
type TeacherService struct {
	repo   ports.TeacherRepository
	logger zerolog.Logger
}

func NewTeacherService(repo ports.TeacherRepository, logger zerolog.Logger) *TeacherService {
	return &TeacherService{repo: repo, logger: logger}
}

func (s *TeacherService) rules(excludeID int64) validation.RuleSet {
	return validation.RuleSet{
		validation.F("nombre", validation.Sometimes(), validation.Required(), validation.String(), validation.MaxLen(255)),
		validation.F("especialidad", validation.Sometimes(), validation.Required(), validation.String(), validation.MaxLen(100)),
		validation.F("email",
			validation.Sometimes(), validation.Required(), validation.String(), validation.Email(),
			validation.Unique(s.emailTaken(excludeID)),
		),
		validation.F("experiencia_anos", validation.Sometimes(), validation.Required(), validation.Integer(), validation.Min(0)),
		validation.F("telefono", validation.Nullable(), validation.String(), validation.MaxLen(20)),
	}
}

func (s *TeacherService) emailTaken(excludeID int64) validation.LookupFunc {
	return func(ctx context.Context, value any) (bool, error) {
		email, _ := value.(string)
		return s.repo.EmailTaken(ctx, email, excludeID)
	}
}

func (s *TeacherService) List(ctx context.Context) ([]domain.Teacher, error) {
	return s.repo.List(ctx)
}

func (s *TeacherService) Create(ctx context.Context, payload validation.Payload) (*domain.Teacher, error) {
	if errs, err := validation.Evaluate(ctx, s.rules(0), payload, false); err != nil {
		return nil, err
	} else if errs != nil {
		return nil, errs
	}

	teacher := &domain.Teacher{
		Nombre:          payload.String("nombre"),
		Especialidad:    payload.String("especialidad"),
		Email:           payload.String("email"),
		ExperienciaAnos: payload.Int("experiencia_anos"),
		Telefono:        payload.StringPtr("telefono"),
	}

	created, err := s.repo.Create(ctx, teacher)
	if err != nil {
		return nil, err
	}
	s.logger.Info().Int64("profesor_id", created.ID).Msg("profesor created")
	return created, nil
}

func (s *TeacherService) Get(ctx context.Context, id int64) (*domain.Teacher, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *TeacherService) Update(ctx context.Context, id int64, payload validation.Payload) (*domain.Teacher, error) {
	teacher, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if errs, err := validation.Evaluate(ctx, s.rules(id), payload, true); err != nil {
		return nil, err
	} else if errs != nil {
		return nil, errs
	}

	if payload.Has("nombre") {
		teacher.Nombre = payload.String("nombre")
	}
	if payload.Has("especialidad") {
		teacher.Especialidad = payload.String("especialidad")
	}
	if payload.Has("email") {
		teacher.Email = payload.String("email")
	}
	if payload.Has("experiencia_anos") {
		teacher.ExperienciaAnos = payload.Int("experiencia_anos")
	}
	if payload.Has("telefono") {
		teacher.Telefono = payload.StringPtr("telefono")
	}

	if err := s.repo.Update(ctx, teacher); err != nil {
		return nil, err
	}
	return teacher, nil
}

func (s *TeacherService) Delete(ctx context.Context, id int64) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}
