package supplements

import (
	"context"
	"errors"
)

var (
	ErrNotFound = errors.New("supplement not found")
)

type Repository interface {
	Create(ctx context.Context, sup Supplement) error
	GetByID(ctx context.Context, id string) (Supplement, error)
	// List devuelve suplementos ordenados por nombre ascendente.
	List(ctx context.Context, limit, skip int) ([]Supplement, error)
	Update(ctx context.Context, sup Supplement) error
	Delete(ctx context.Context, id string) error
}
