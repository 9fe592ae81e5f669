package memory

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"

	"health-tracking-api/internal/domain/markers"
)

type markersRepo struct {
	mu   sync.RWMutex
	byID map[string]markers.Record
}

func NewMarkersRepo() markers.Repository {
	return &markersRepo{
		byID: make(map[string]markers.Record),
	}
}

func (r *markersRepo) Create(ctx context.Context, rec markers.Record) error {
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

func (r *markersRepo) GetByID(ctx context.Context, id string) (markers.Record, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	rec, ok := r.byID[id]
	if !ok {
		return markers.Record{}, markers.ErrNotFound
	}
	return rec, nil
}

func (r *markersRepo) List(ctx context.Context, limit, skip int) ([]markers.Record, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	all := make([]markers.Record, 0, len(r.byID))
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

func (r *markersRepo) Update(ctx context.Context, rec markers.Record) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[rec.ID]; !exists {
		return markers.ErrNotFound
	}
	r.byID[rec.ID] = rec
	return nil
}

func (r *markersRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[id]; !exists {
		return markers.ErrNotFound
	}
	delete(r.byID, id)
	return nil
}
