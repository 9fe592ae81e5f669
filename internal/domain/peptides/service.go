package peptides

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"health-tracking-api/internal/domain/dosage"
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
	Name string

	VialAmountMG float64
	BACWaterML   float64
	DoseMcg      float64

	InjectionNeedleSize string

	Schedule schedule.Schedule

	Notes     string
	StartDate *time.Time
	EndDate   *time.Time
}

func (s *Service) Create(ctx context.Context, in Input) (Peptide, error) {
	if strings.TrimSpace(in.Name) == "" {
		return Peptide{}, fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if err := in.Schedule.Validate(); err != nil {
		return Peptide{}, err
	}

	// El cálculo también valida los tres campos numéricos.
	res, err := dosage.Compute(
		dosage.VialSpec{AmountMG: in.VialAmountMG, DiluentML: in.BACWaterML},
		dosage.DoseRequest{DoseMcg: in.DoseMcg},
	)
	if err != nil {
		return Peptide{}, err
	}

	now := s.now().UTC()
	p := Peptide{
		ID:                  uuid.NewString(),
		Name:                strings.TrimSpace(in.Name),
		VialAmountMG:        in.VialAmountMG,
		BACWaterML:          in.BACWaterML,
		DoseMcg:             in.DoseMcg,
		InjectionNeedleSize: strings.TrimSpace(in.InjectionNeedleSize),
		CalculatedIU:        dosage.Round(res.SyringeUnits, 2),
		Schedule:            in.Schedule,
		Notes:               strings.TrimSpace(in.Notes),
		StartDate:           in.StartDate,
		EndDate:             in.EndDate,
		CreatedAt:           now,
		UpdatedAt:           now,
	}

	if err := s.repo.Create(ctx, p); err != nil {
		return Peptide{}, err
	}
	return p, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (Peptide, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Peptide{}, ErrInvalidInput
	}
	return s.repo.GetByID(ctx, id)
}

func (s *Service) List(ctx context.Context, limit, skip int) ([]Peptide, error) {
	if limit <= 0 {
		limit = defaultListLimit
	}
	if skip < 0 {
		skip = 0
	}
	return s.repo.List(ctx, limit, skip)
}

// Update reemplaza el régimen completo y recalcula las unidades con
// los valores nuevos del vial/dosis.
func (s *Service) Update(ctx context.Context, id string, in Input) (Peptide, error) {
	if strings.TrimSpace(in.Name) == "" {
		return Peptide{}, fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if err := in.Schedule.Validate(); err != nil {
		return Peptide{}, err
	}

	res, err := dosage.Compute(
		dosage.VialSpec{AmountMG: in.VialAmountMG, DiluentML: in.BACWaterML},
		dosage.DoseRequest{DoseMcg: in.DoseMcg},
	)
	if err != nil {
		return Peptide{}, err
	}

	current, err := s.repo.GetByID(ctx, strings.TrimSpace(id))
	if err != nil {
		return Peptide{}, err
	}

	p := Peptide{
		ID:                  current.ID,
		Name:                strings.TrimSpace(in.Name),
		VialAmountMG:        in.VialAmountMG,
		BACWaterML:          in.BACWaterML,
		DoseMcg:             in.DoseMcg,
		InjectionNeedleSize: strings.TrimSpace(in.InjectionNeedleSize),
		CalculatedIU:        dosage.Round(res.SyringeUnits, 2),
		Schedule:            in.Schedule,
		Notes:               strings.TrimSpace(in.Notes),
		StartDate:           in.StartDate,
		EndDate:             in.EndDate,
		CreatedAt:           current.CreatedAt,
		UpdatedAt:           s.now().UTC(),
	}

	if err := s.repo.Update(ctx, p); err != nil {
		return Peptide{}, err
	}
	return p, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidInput
	}
	return s.repo.Delete(ctx, id)
}
