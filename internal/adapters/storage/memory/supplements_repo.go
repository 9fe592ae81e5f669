package memory

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"

	"health-tracking-api/internal/domain/supplements"
)

type supplementsRepo struct {
	mu   sync.RWMutex
	byID map[string]supplements.Supplement
}

func NewSupplementsRepo() supplements.Repository {
	return &supplementsRepo{
		byID: make(map[string]supplements.Supplement),
	}
}

func (r *supplementsRepo) Create(ctx context.Context, sup supplements.Supplement) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(sup.ID) == "" {
		return errors.New("supplement id required")
	}
	if _, exists := r.byID[sup.ID]; exists {
		return errors.New("supplement already exists")
	}
	r.byID[sup.ID] = sup
	return nil
}

func (r *supplementsRepo) GetByID(ctx context.Context, id string) (supplements.Supplement, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	sup, ok := r.byID[id]
	if !ok {
		return supplements.Supplement{}, supplements.ErrNotFound
	}
	return sup, nil
}

func (r *supplementsRepo) List(ctx context.Context, limit, skip int) ([]supplements.Supplement, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	all := make([]supplements.Supplement, 0, len(r.byID))
	for _, sup := range r.byID {
		all = append(all, sup)
	}

	// Nombre ascendente; created_at desempata.
	sort.Slice(all, func(i, j int) bool {
		if all[i].Name != all[j].Name {
			return all[i].Name < all[j].Name
		}
		return all[i].CreatedAt.Before(all[j].CreatedAt)
	})

	return paginate(all, limit, skip), nil
}

func (r *supplementsRepo) Update(ctx context.Context, sup supplements.Supplement) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[sup.ID]; !exists {
		return supplements.ErrNotFound
	}
	r.byID[sup.ID] = sup
	return nil
}

func (r *supplementsRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[id]; !exists {
		return supplements.ErrNotFound
	}
	delete(r.byID, id)
	return nil
}
