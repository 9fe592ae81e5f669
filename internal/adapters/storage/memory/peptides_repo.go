package memory

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"

	"health-tracking-api/internal/domain/peptides"
)

type peptidesRepo struct {
	mu   sync.RWMutex
	byID map[string]peptides.Peptide
}

func NewPeptidesRepo() peptides.Repository {
	return &peptidesRepo{
		byID: make(map[string]peptides.Peptide),
	}
}

func (r *peptidesRepo) Create(ctx context.Context, p peptides.Peptide) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(p.ID) == "" {
		return errors.New("peptide id required")
	}
	if _, exists := r.byID[p.ID]; exists {
		return errors.New("peptide already exists")
	}
	r.byID[p.ID] = p
	return nil
}

func (r *peptidesRepo) GetByID(ctx context.Context, id string) (peptides.Peptide, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.byID[id]
	if !ok {
		return peptides.Peptide{}, peptides.ErrNotFound
	}
	return p, nil
}

func (r *peptidesRepo) List(ctx context.Context, limit, skip int) ([]peptides.Peptide, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	all := make([]peptides.Peptide, 0, len(r.byID))
	for _, p := range r.byID {
		all = append(all, p)
	}

	sort.Slice(all, func(i, j int) bool {
		if all[i].Name != all[j].Name {
			return all[i].Name < all[j].Name
		}
		return all[i].CreatedAt.Before(all[j].CreatedAt)
	})

	return paginate(all, limit, skip), nil
}

func (r *peptidesRepo) Update(ctx context.Context, p peptides.Peptide) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[p.ID]; !exists {
		return peptides.ErrNotFound
	}
	r.byID[p.ID] = p
	return nil
}

func (r *peptidesRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[id]; !exists {
		return peptides.ErrNotFound
	}
	delete(r.byID, id)
	return nil
}
