package supplements

import (
	"context"
	"errors"
	"testing"
	"time"

	"health-tracking-api/internal/domain/schedule"
)

type testRepo struct {
	byID map[string]Supplement
}

func newTestRepo() *testRepo {
	return &testRepo{byID: map[string]Supplement{}}
}

func (r *testRepo) Create(ctx context.Context, sup Supplement) error {
	if sup.ID == "" {
		return errors.New("repo: id required")
	}
	if _, ok := r.byID[sup.ID]; ok {
		return errors.New("repo: already exists")
	}
	r.byID[sup.ID] = sup
	return nil
}

func (r *testRepo) GetByID(ctx context.Context, id string) (Supplement, error) {
	sup, ok := r.byID[id]
	if !ok {
		return Supplement{}, ErrNotFound
	}
	return sup, nil
}

func (r *testRepo) List(ctx context.Context, limit, skip int) ([]Supplement, error) {
	out := make([]Supplement, 0, len(r.byID))
	for _, sup := range r.byID {
		out = append(out, sup)
	}
	return out, nil
}

func (r *testRepo) Update(ctx context.Context, sup Supplement) error {
	if _, ok := r.byID[sup.ID]; !ok {
		return ErrNotFound
	}
	r.byID[sup.ID] = sup
	return nil
}

func (r *testRepo) Delete(ctx context.Context, id string) error {
	if _, ok := r.byID[id]; !ok {
		return ErrNotFound
	}
	delete(r.byID, id)
	return nil
}

func intPtr(v int) *int { return &v }

func TestService_Create(t *testing.T) {
	svc := NewService(newTestRepo())
	fixed := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return fixed }

	sup, err := svc.Create(context.Background(), Input{
		Name:   " Magnesio ",
		Dosage: "400",
		Unit:   "mg",
		Schedule: schedule.Schedule{
			Frequency:   schedule.FrequencyDaily,
			TimesPerDay: 1,
			TimeOfDay:   []schedule.TimeOfDay{schedule.TimeEvening},
		},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if sup.Name != "Magnesio" {
		t.Errorf("name = %q, want trimmed", sup.Name)
	}
	if sup.ID == "" {
		t.Error("expected generated id")
	}
	if !sup.CreatedAt.Equal(fixed) {
		t.Errorf("created_at = %v, want %v", sup.CreatedAt, fixed)
	}
}

func TestService_Create_RequiredFields(t *testing.T) {
	svc := NewService(newTestRepo())
	valid := schedule.Schedule{Frequency: schedule.FrequencyDaily, TimesPerDay: 1}

	cases := []Input{
		{Name: "", Dosage: "400", Unit: "mg", Schedule: valid},
		{Name: "X", Dosage: "", Unit: "mg", Schedule: valid},
		{Name: "X", Dosage: "400", Unit: "", Schedule: valid},
	}
	for _, in := range cases {
		if _, err := svc.Create(context.Background(), in); !errors.Is(err, ErrInvalidInput) {
			t.Errorf("Create(%+v): expected ErrInvalidInput, got %v", in, err)
		}
	}
}

func TestService_Create_InvalidSchedule(t *testing.T) {
	svc := NewService(newTestRepo())

	// ciclo a medias: solo weeks_on
	_, err := svc.Create(context.Background(), Input{
		Name:   "X",
		Dosage: "1",
		Unit:   "mg",
		Schedule: schedule.Schedule{
			Frequency:    schedule.FrequencyDaily,
			TimesPerDay:  1,
			CycleWeeksOn: intPtr(4),
		},
	})
	if !errors.Is(err, schedule.ErrInvalidInput) {
		t.Fatalf("expected schedule.ErrInvalidInput, got %v", err)
	}
}

func TestService_Update_NotFound(t *testing.T) {
	svc := NewService(newTestRepo())

	_, err := svc.Update(context.Background(), "nope", Input{
		Name:     "X",
		Dosage:   "1",
		Unit:     "mg",
		Schedule: schedule.Schedule{Frequency: schedule.FrequencyDaily, TimesPerDay: 1},
	})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
