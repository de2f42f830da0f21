// Package memory provides an in-memory PetRepository used by unit tests and
// local tooling. It mirrors the PostgreSQL repository's filter, sort and
// pagination semantics.
package memory

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/adoteumpet/service-adoption/internal/domain/pet"
	"github.com/adoteumpet/service-adoption/internal/errs"
)

type PetRepository struct {
	mu   sync.RWMutex
	pets []*pet.Pet // insertion order, which is the documented sort tie-break
}

func NewPetRepository() *PetRepository {
	return &PetRepository{}
}

func (r *PetRepository) FindByID(ctx context.Context, id uuid.UUID) (*pet.Pet, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, p := range r.pets {
		if p.ID() == id {
			return p, nil
		}
	}
	return nil, errs.NewNotFoundError("Pet", id.String())
}

func (r *PetRepository) List(ctx context.Context, q pet.ListQuery) ([]*pet.Pet, int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	matched := make([]*pet.Pet, 0, len(r.pets))
	for _, p := range r.pets {
		if matches(p, q) {
			matched = append(matched, p)
		}
	}

	sortPets(matched, q.SortBy, q.Order)

	total := int64(len(matched))
	start := q.Offset()
	if start >= len(matched) {
		return []*pet.Pet{}, total, nil
	}
	end := start + q.PerPage
	if end > len(matched) {
		end = len(matched)
	}
	return matched[start:end], total, nil
}

func (r *PetRepository) Save(ctx context.Context, p *pet.Pet) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.pets {
		if existing.ID() == p.ID() {
			return errs.NewConflictError("a pet with this id already exists")
		}
	}
	r.pets = append(r.pets, p)
	return nil
}

func (r *PetRepository) Update(ctx context.Context, p *pet.Pet) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, existing := range r.pets {
		if existing.ID() == p.ID() {
			r.pets[i] = p
			return nil
		}
	}
	return errs.NewNotFoundError("Pet", p.ID().String())
}

func (r *PetRepository) Delete(ctx context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, existing := range r.pets {
		if existing.ID() == id {
			r.pets = append(r.pets[:i], r.pets[i+1:]...)
			return nil
		}
	}
	return errs.NewNotFoundError("Pet", id.String())
}

func matches(p *pet.Pet, q pet.ListQuery) bool {
	return containsFold(p.Name(), q.Name) &&
		containsFold(p.Breed(), q.Breed) &&
		containsFold(p.ShelterCity(), q.ShelterCity) &&
		containsFold(p.ShelterState(), q.ShelterState) &&
		containsFold(p.ShelterNeighborhood(), q.ShelterNeighborhood) &&
		(q.Species == "" || string(p.Species()) == q.Species) &&
		(q.Status == "" || string(p.Status()) == q.Status)
}

func containsFold(value, filter string) bool {
	if filter == "" {
		return true
	}
	return strings.Contains(strings.ToLower(value), strings.ToLower(filter))
}

func sortPets(pets []*pet.Pet, sortBy, order string) {
	asc := order == "asc"
	sort.SliceStable(pets, func(i, j int) bool {
		a, b := pets[i], pets[j]
		if !asc {
			a, b = b, a
		}
		switch sortBy {
		case "name":
			return a.Name() < b.Name()
		case "species":
			return a.Species() < b.Species()
		case "breed":
			return a.Breed() < b.Breed()
		case "age_years":
			return a.AgeYears() < b.AgeYears()
		case "shelter_city":
			return a.ShelterCity() < b.ShelterCity()
		case "updated_at":
			return a.UpdatedAt().Before(b.UpdatedAt())
		default: // created_at
			return a.CreatedAt().Before(b.CreatedAt())
		}
	})
}
