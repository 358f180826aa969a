package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/sistema-academico/academia-api/internal/core/domain"
	"github.com/sistema-academico/academia-api/internal/core/ports"
	"github.com/sistema-academico/academia-api/internal/validation"
)

// SubjectService implements validated CRUD over asignaturas.
type SubjectService struct {
	repo   ports.SubjectRepository
	logger zerolog.Logger
}

func NewSubjectService(repo ports.SubjectRepository, logger zerolog.Logger) *SubjectService {
	return &SubjectService{repo: repo, logger: logger}
}

func (s *SubjectService) rules(excludeID int64) validation.RuleSet {
	return validation.RuleSet{
		validation.F("nombre", validation.Sometimes(), validation.Required(), validation.String(), validation.MaxLen(255)),
		validation.F("codigo",
			validation.Sometimes(), validation.Required(), validation.String(), validation.MaxLen(20),
			validation.Unique(s.codigoTaken(excludeID)),
		),
		validation.F("descripcion", validation.Nullable(), validation.String()),
		validation.F("curso", validation.Sometimes(), validation.Required(), validation.Integer(), validation.Min(1), validation.Max(6)),
		validation.F("creditos", validation.Sometimes(), validation.Required(), validation.Numeric(), validation.Min(0), validation.Max(10)),
		validation.F("horas_semanales", validation.Sometimes(), validation.Required(), validation.Integer(), validation.Min(1), validation.Max(20)),
	}
}

func (s *SubjectService) codigoTaken(excludeID int64) validation.LookupFunc {
	return func(ctx context.Context, value any) (bool, error) {
		codigo, _ := value.(string)
		return s.repo.CodigoTaken(ctx, codigo, excludeID)
	}
}

func (s *SubjectService) List(ctx context.Context) ([]domain.Subject, error) {
	return s.repo.List(ctx)
}

func (s *SubjectService) Create(ctx context.Context, payload validation.Payload) (*domain.Subject, error) {
	if errs, err := validation.Evaluate(ctx, s.rules(0), payload, false); err != nil {
		return nil, err
	} else if errs != nil {
		return nil, errs
	}

	subject := &domain.Subject{
		Nombre:         payload.String("nombre"),
		Codigo:         payload.String("codigo"),
		Descripcion:    payload.StringPtr("descripcion"),
		Curso:          payload.Int("curso"),
		Creditos:       payload.Float("creditos"),
		HorasSemanales: payload.Int("horas_semanales"),
	}

	created, err := s.repo.Create(ctx, subject)
	if err != nil {
		return nil, err
	}
	s.logger.Info().Int64("asignatura_id", created.ID).Str("codigo", created.Codigo).Msg("asignatura created")
	return created, nil
}

func (s *SubjectService) Get(ctx context.Context, id int64) (*domain.Subject, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *SubjectService) Update(ctx context.Context, id int64, payload validation.Payload) (*domain.Subject, error) {
	subject, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if errs, err := validation.Evaluate(ctx, s.rules(id), payload, true); err != nil {
		return nil, err
	} else if errs != nil {
		return nil, errs
	}

	if payload.Has("nombre") {
		subject.Nombre = payload.String("nombre")
	}
	if payload.Has("codigo") {
		subject.Codigo = payload.String("codigo")
	}
	if payload.Has("descripcion") {
		subject.Descripcion = payload.StringPtr("descripcion")
	}
	if payload.Has("curso") {
		subject.Curso = payload.Int("curso")
	}
	if payload.Has("creditos") {
		subject.Creditos = payload.Float("creditos")
	}
	if payload.Has("horas_semanales") {
		subject.HorasSemanales = payload.Int("horas_semanales")
	}

	if err := s.repo.Update(ctx, subject); err != nil {
		return nil, err
	}
	return subject, nil
}

func (s *SubjectService) Delete(ctx context.Context, id int64) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}
