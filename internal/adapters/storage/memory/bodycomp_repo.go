package memory

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"

	"health-tracking-api/internal/domain/bodycomp"
)

type bodyCompRepo struct {
	mu   sync.RWMutex
	byID map[string]bodycomp.Record
}

func NewBodyCompRepo() bodycomp.Repository {
	return &bodyCompRepo{
		byID: make(map[string]bodycomp.Record),
	}
}

func (r *bodyCompRepo) Create(ctx context.Context, rec bodycomp.Record) error {
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

func (r *bodyCompRepo) GetByID(ctx context.Context, id string) (bodycomp.Record, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	rec, ok := r.byID[id]
	if !ok {
		return bodycomp.Record{}, bodycomp.ErrNotFound
	}
	return rec, nil
}

func (r *bodyCompRepo) List(ctx context.Context, limit, skip int) ([]bodycomp.Record, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	all := make([]bodycomp.Record, 0, len(r.byID))
	for _, rec := range r.byID {
		all = append(all, rec)
	}

	// Fecha descendente; created_at desempata para orden estable.
	sort.Slice(all, func(i, j int) bool {
		if !all[i].Date.Equal(all[j].Date) {
			return all[i].Date.After(all[j].Date)
		}
		return all[i].CreatedAt.After(all[j].CreatedAt)
	})

	return paginate(all, limit, skip), nil
}

func (r *bodyCompRepo) Update(ctx context.Context, rec bodycomp.Record) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[rec.ID]; !exists {
		return bodycomp.ErrNotFound
	}
	r.byID[rec.ID] = rec
	return nil
}

func (r *bodyCompRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[id]; !exists {
		return bodycomp.ErrNotFound
	}
	delete(r.byID, id)
	return nil
}

// paginate aplica skip+limit después de ordenar. Compartido por los
// repos de este paquete.
func paginate[T any](items []T, limit, skip int) []T {
	if skip >= len(items) {
		return []T{}
	}
	items = items[skip:]
	if limit > 0 && limit < len(items) {
		items = items[:limit]
	}
	out := make([]T, len(items))
	copy(out, items)
	return out
}
