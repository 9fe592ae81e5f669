package supplements

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"health-tracking-api/internal/domain/schedule"
)

var (
	ErrInvalidInput = errors.New("invalid input")
)

const defaultListLimit = 100

type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{
		repo: repo,
		now:  time.Now,
	}
}

type Input struct {
	Name   string
	Dosage string
	Unit   string

	// Ya construido y validado en la frontera (schedule.FromForm).
	Schedule schedule.Schedule

	Notes     string
	StartDate *time.Time
	EndDate   *time.Time
}

func (in Input) validate() error {
	if strings.TrimSpace(in.Name) == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if strings.TrimSpace(in.Dosage) == "" {
		return fmt.Errorf("%w: dosage is required", ErrInvalidInput)
	}
	if strings.TrimSpace(in.Unit) == "" {
		return fmt.Errorf("%w: unit is required", ErrInvalidInput)
	}
	// Segunda línea de defensa por si alguien arma el Input a mano.
	if err := in.Schedule.Validate(); err != nil {
		return err
	}
	return nil
}

func (s *Service) Create(ctx context.Context, in Input) (Supplement, error) {
	if err := in.validate(); err != nil {
		return Supplement{}, err
	}

	now := s.now().UTC()
	sup := Supplement{
		ID:        uuid.NewString(),
		Name:      strings.TrimSpace(in.Name),
		Dosage:    strings.TrimSpace(in.Dosage),
		Unit:      strings.TrimSpace(in.Unit),
		Schedule:  in.Schedule,
		Notes:     strings.TrimSpace(in.Notes),
		StartDate: in.StartDate,
		EndDate:   in.EndDate,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.repo.Create(ctx, sup); err != nil {
		return Supplement{}, err
	}
	return sup, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (Supplement, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Supplement{}, ErrInvalidInput
	}
	return s.repo.GetByID(ctx, id)
}

func (s *Service) List(ctx context.Context, limit, skip int) ([]Supplement, error) {
	if limit <= 0 {
		limit = defaultListLimit
	}
	if skip < 0 {
		skip = 0
	}
	return s.repo.List(ctx, limit, skip)
}

func (s *Service) Update(ctx context.Context, id string, in Input) (Supplement, error) {
	if err := in.validate(); err != nil {
		return Supplement{}, err
	}

	current, err := s.repo.GetByID(ctx, strings.TrimSpace(id))
	if err != nil {
		return Supplement{}, err
	}

	sup := Supplement{
		ID:        current.ID,
		Name:      strings.TrimSpace(in.Name),
		Dosage:    strings.TrimSpace(in.Dosage),
		Unit:      strings.TrimSpace(in.Unit),
		Schedule:  in.Schedule,
		Notes:     strings.TrimSpace(in.Notes),
		StartDate: in.StartDate,
		EndDate:   in.EndDate,
		CreatedAt: current.CreatedAt,
		UpdatedAt: s.now().UTC(),
	}

	if err := s.repo.Update(ctx, sup); err != nil {
		return Supplement{}, err
	}
	return sup, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidInput
	}
	return s.repo.Delete(ctx, id)
}
