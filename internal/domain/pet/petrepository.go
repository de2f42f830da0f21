package pet

import (
	"context"

	"github.com/google/uuid"
)

// PetRepository defines persistence operations for pets.
type PetRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Pet, error)
	// List returns the page of pets matching the query plus the total
	// matching count before pagination.
	List(ctx context.Context, q ListQuery) ([]*Pet, int64, error)
	Save(ctx context.Context, pet *Pet) error
	Update(ctx context.Context, pet *Pet) error
	Delete(ctx context.Context, id uuid.UUID) error
}
