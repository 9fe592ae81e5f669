package bodycomp

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
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
	Date   time.Time
	Weight float64

	BodyFatPercentage *float64
	MuscleMass        *float64
	WaterPercentage   *float64
	BoneMass          *float64
	BMI               *float64

	Notes string
}

func (in Input) validate() error {
	if in.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}
	if in.Weight <= 0 {
		return fmt.Errorf("%w: weight must be greater than 0", ErrInvalidInput)
	}
	return nil
}

func (s *Service) Create(ctx context.Context, in Input) (Record, error) {
	if err := in.validate(); err != nil {
		return Record{}, err
	}

	now := s.now().UTC()
	rec := Record{
		ID:                uuid.NewString(),
		Date:              in.Date,
		Weight:            in.Weight,
		BodyFatPercentage: in.BodyFatPercentage,
		MuscleMass:        in.MuscleMass,
		WaterPercentage:   in.WaterPercentage,
		BoneMass:          in.BoneMass,
		BMI:               in.BMI,
		Notes:             strings.TrimSpace(in.Notes),
		CreatedAt:         now,
		UpdatedAt:         now,
	}

	if err := s.repo.Create(ctx, rec); err != nil {
		return Record{}, err
	}
	return rec, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (Record, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Record{}, ErrInvalidInput
	}
	return s.repo.GetByID(ctx, id)
}

func (s *Service) List(ctx context.Context, limit, skip int) ([]Record, error) {
	if limit <= 0 {
		limit = defaultListLimit
	}
	if skip < 0 {
		skip = 0
	}
	return s.repo.List(ctx, limit, skip)
}

// Update reemplaza el registro completo (PUT); conserva id y created_at.
func (s *Service) Update(ctx context.Context, id string, in Input) (Record, error) {
	if err := in.validate(); err != nil {
		return Record{}, err
	}

	current, err := s.repo.GetByID(ctx, strings.TrimSpace(id))
	if err != nil {
		return Record{}, err
	}

	rec := Record{
		ID:                current.ID,
		Date:              in.Date,
		Weight:            in.Weight,
		BodyFatPercentage: in.BodyFatPercentage,
		MuscleMass:        in.MuscleMass,
		WaterPercentage:   in.WaterPercentage,
		BoneMass:          in.BoneMass,
		BMI:               in.BMI,
		Notes:             strings.TrimSpace(in.Notes),
		CreatedAt:         current.CreatedAt,
		UpdatedAt:         s.now().UTC(),
	}

	if err := s.repo.Update(ctx, rec); err != nil {
		return Record{}, err
	}
	return rec, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidInput
	}
	return s.repo.Delete(ctx, id)
}
