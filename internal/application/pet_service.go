package application

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/adoteumpet/service-adoption/internal/domain/pet"
	"github.com/adoteumpet/service-adoption/internal/events"
)

// PetPayload is the request DTO for creating and patching pets. Nil fields
// were not supplied, which is how merge-patch updates distinguish "leave
// unchanged" from an explicit value.
type PetPayload struct {
	Name                *string `json:"name"`
	Species             *string `json:"species"`
	Breed               *string `json:"breed"`
	AgeYears            *int    `json:"age_years"`
	ShelterCity         *string `json:"shelter_city"`
	ShelterCEP          *string `json:"shelter_cep"`
	ShelterStreet       *string `json:"shelter_street"`
	ShelterNumber       *string `json:"shelter_number"`
	ShelterNeighborhood *string `json:"shelter_neighborhood"`
	ShelterState        *string `json:"shelter_state"`
	Status              *string `json:"status"`
}

func (p PetPayload) toFieldSet() pet.FieldSet {
	return pet.FieldSet{
		Name:                p.Name,
		Species:             p.Species,
		Breed:               p.Breed,
		AgeYears:            p.AgeYears,
		ShelterCity:         p.ShelterCity,
		ShelterCEP:          p.ShelterCEP,
		ShelterStreet:       p.ShelterStreet,
		ShelterNumber:       p.ShelterNumber,
		ShelterNeighborhood: p.ShelterNeighborhood,
		ShelterState:        p.ShelterState,
		Status:              p.Status,
	}
}

// PetDTO is the API response representation of a pet.
type PetDTO struct {
	ID                  uuid.UUID `json:"id"`
	Name                string    `json:"name"`
	Species             string    `json:"species"`
	Breed               string    `json:"breed"`
	AgeYears            int       `json:"age_years"`
	ShelterCity         string    `json:"shelter_city"`
	ShelterCEP          string    `json:"shelter_cep"`
	ShelterStreet       string    `json:"shelter_street"`
	ShelterNumber       string    `json:"shelter_number"`
	ShelterNeighborhood string    `json:"shelter_neighborhood"`
	ShelterState        string    `json:"shelter_state"`
	Status              string    `json:"status"`
	CreatedAt           time.Time `json:"created_at"`
	UpdatedAt           time.Time `json:"updated_at"`
}

// DeletedPetDTO echoes the identity of a hard-deleted pet.
type DeletedPetDTO struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

// PetService implements the pet CRUD and listing use cases.
type PetService struct {
	repo      pet.PetRepository
	publisher events.Publisher
	logger    *zap.Logger
}

// NewPetService creates a new PetService.
func NewPetService(repo pet.PetRepository, publisher events.Publisher, logger *zap.Logger) *PetService {
	return &PetService{repo: repo, publisher: publisher, logger: logger}
}

// CreatePet validates and persists a new pet.
func (s *PetService) CreatePet(ctx context.Context, req PetPayload) (*PetDTO, error) {
	newPet, err := pet.NewPet(req.toFieldSet())
	if err != nil {
		return nil, err
	}

	if err := s.repo.Save(ctx, newPet); err != nil {
		s.logger.Error("failed to create pet", zap.Error(err))
		return nil, fmt.Errorf("failed to create pet: %w", err)
	}

	s.logger.Info("pet created",
		zap.String("pet_id", newPet.ID().String()),
		zap.String("species", string(newPet.Species())),
	)
	s.publish(ctx, events.PetCreated, newPet)

	result := toPetDTO(newPet)
	return &result, nil
}

// GetPet returns a single pet by ID.
func (s *PetService) GetPet(ctx context.Context, id uuid.UUID) (*PetDTO, error) {
	found, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	result := toPetDTO(found)
	return &result, nil
}

// UpdatePet applies a merge-patch to an existing pet. The pet must exist
// before the body is validated.
func (s *PetService) UpdatePet(ctx context.Context, id uuid.UUID, req PetPayload) (*PetDTO, error) {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	wasAvailable := existing.IsAvailable()
	if err := existing.ApplyPatch(req.toFieldSet()); err != nil {
		return nil, err
	}

	if err := s.repo.Update(ctx, existing); err != nil {
		s.logger.Error("failed to update pet", zap.Error(err))
		return nil, fmt.Errorf("failed to update pet: %w", err)
	}

	s.logger.Info("pet updated", zap.String("pet_id", id.String()))
	if wasAvailable && !existing.IsAvailable() {
		s.publish(ctx, events.PetAdopted, existing)
	} else {
		s.publish(ctx, events.PetUpdated, existing)
	}

	result := toPetDTO(existing)
	return &result, nil
}

// DeletePet hard-deletes a pet and echoes its identity.
func (s *PetService) DeletePet(ctx context.Context, id uuid.UUID) (*DeletedPetDTO, error) {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		s.logger.Error("failed to delete pet", zap.Error(err))
		return nil, fmt.Errorf("failed to delete pet: %w", err)
	}

	s.logger.Info("pet deleted", zap.String("pet_id", id.String()))
	s.publish(ctx, events.PetDeleted, existing)

	return &DeletedPetDTO{ID: existing.ID(), Name: existing.Name()}, nil
}

// publish emits a lifecycle event. Publish failures are logged and never
// fail the request.
func (s *PetService) publish(ctx context.Context, eventType string, p *pet.Pet) {
	if s.publisher == nil {
		return
	}
	evt := events.PetEvent{
		PetID:      p.ID(),
		Name:       p.Name(),
		Species:    string(p.Species()),
		Status:     string(p.Status()),
		OccurredAt: time.Now().UTC(),
	}
	if err := s.publisher.PublishPetEvent(ctx, eventType, evt); err != nil {
		s.logger.Error("failed to publish pet event",
			zap.String("type", eventType),
			zap.String("pet_id", p.ID().String()),
			zap.Error(err),
		)
	}
}

func toPetDTO(p *pet.Pet) PetDTO {
	return PetDTO{
		ID:                  p.ID(),
		Name:                p.Name(),
		Species:             string(p.Species()),
		Breed:               p.Breed(),
		AgeYears:            p.AgeYears(),
		ShelterCity:         p.ShelterCity(),
		ShelterCEP:          p.ShelterCEP(),
		ShelterStreet:       p.ShelterStreet(),
		ShelterNumber:       p.ShelterNumber(),
		ShelterNeighborhood: p.ShelterNeighborhood(),
		ShelterState:        p.ShelterState(),
		Status:              string(p.Status()),
		CreatedAt:           p.CreatedAt(),
		UpdatedAt:           p.UpdatedAt(),
	}
}
