package peptides

import (
	"context"
	"errors"
)

var (
	ErrNotFound = errors.New("peptide not found")
)

type Repository interface {
	Create(ctx context.Context, p Peptide) error
	GetByID(ctx context.Context, id string) (Peptide, error)
	// List devuelve péptidos ordenados por nombre ascendente.
	List(ctx context.Context, limit, skip int) ([]Peptide, error)
	Update(ctx context.Context, p Peptide) error
	Delete(ctx context.Context, id string) error
}
