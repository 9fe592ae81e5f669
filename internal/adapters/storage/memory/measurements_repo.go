package memory

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"

	"health-tracking-api/internal/domain/measurements"
)

type measurementsRepo struct {
	mu   sync.RWMutex
	byID map[string]measurements.Record
}

func NewMeasurementsRepo() measurements.Repository {
	return &measurementsRepo{
		byID: make(map[string]measurements.Record),
	}
}

func (r *measurementsRepo) Create(ctx context.Context, rec measurements.Record) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(rec.ID) == "" {
		return errors.New("record id required")
	}
	if _, exists := r.byID[rec.ID]; exists {
		return errors.New("record already exists")
	}
	r.byID[rec.ID] = rec
	return nil
}

func (r *measurementsRepo) GetByID(ctx context.Context, id string) (measurements.Record, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	rec, ok := r.byID[id]
	if !ok {
		return measurements.Record{}, measurements.ErrNotFound
	}
	return rec, nil
}

func (r *measurementsRepo) List(ctx context.Context, limit, skip int) ([]measurements.Record, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	all := make([]measurements.Record, 0, len(r.byID))
	for _, rec := range r.byID {
		all = append(all, rec)
	}

	sort.Slice(all, func(i, j int) bool {
		if !all[i].Date.Equal(all[j].Date) {
			return all[i].Date.After(all[j].Date)
		}
		return all[i].CreatedAt.After(all[j].CreatedAt)
	})

	return paginate(all, limit, skip), nil
}

func (r *measurementsRepo) Update(ctx context.Context, rec measurements.Record) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[rec.ID]; !exists {
		return measurements.ErrNotFound
	}
	r.byID[rec.ID] = rec
	return nil
}

func (r *measurementsRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[id]; !exists {
		return measurements.ErrNotFound
	}
	delete(r.byID, id)
	return nil
}
