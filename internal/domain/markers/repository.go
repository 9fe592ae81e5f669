package markers

import (
	"context"
	"errors"
)

var (
	ErrNotFound = errors.New("health marker not found")
)

type Repository interface {
	Create(ctx context.Context, rec Record) error
	GetByID(ctx context.Context, id string) (Record, error)
	// List devuelve registros ordenados por fecha descendente.
	List(ctx context.Context, limit, skip int) ([]Record, error)
	Update(ctx context.Context, rec Record) error
	Delete(ctx context.Context, id string) error
}
