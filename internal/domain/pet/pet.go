package pet

import (
	"time"

	"github.com/google/uuid"
)

// Species enumerates the supported pet species.
type Species string

const (
	SpeciesDog Species = "dog"
	SpeciesCat Species = "cat"
)

// IsValid returns true if the species is recognized.
func (s Species) IsValid() bool {
	switch s {
	case SpeciesDog, SpeciesCat:
		return true
	}
	return false
}

// Status represents the adoption state of a pet.
type Status string

const (
	StatusAvailable Status = "available"
	StatusAdopted   Status = "adopted"
)

// IsValid returns true if the status is recognized.
func (s Status) IsValid() bool {
	switch s {
	case StatusAvailable, StatusAdopted:
		return true
	}
	return false
}

// Pet is the aggregate root for an adoptable animal listed by a shelter.
type Pet struct {
	id                  uuid.UUID
	name                string
	species             Species
	breed               string
	ageYears            int
	shelterCity         string
	shelterCEP          string
	shelterStreet       string
	shelterNumber       string
	shelterNeighborhood string
	shelterState        string
	status              Status
	createdAt           time.Time
	updatedAt           time.Time
}

// NewPet creates a pet from client-supplied fields. All fields except status
// are required; every violation is collected before failing. Text fields are
// trimmed and the shelter state is upper-cased on success.
func NewPet(f FieldSet) (*Pet, error) {
	if err := f.validate(true); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	p := &Pet{
		id:        uuid.New(),
		status:    StatusAvailable,
		createdAt: now,
		updatedAt: now,
	}
	p.apply(f)
	return p, nil
}

// Reconstruct rebuilds a Pet from persistence data (no validation).
func Reconstruct(
	id uuid.UUID,
	name string,
	species Species,
	breed string,
	ageYears int,
	shelterCity, shelterCEP, shelterStreet, shelterNumber, shelterNeighborhood, shelterState string,
	status Status,
	createdAt, updatedAt time.Time,
) *Pet {
	return &Pet{
		id:                  id,
		name:                name,
		species:             species,
		breed:               breed,
		ageYears:            ageYears,
		shelterCity:         shelterCity,
		shelterCEP:          shelterCEP,
		shelterStreet:       shelterStreet,
		shelterNumber:       shelterNumber,
		shelterNeighborhood: shelterNeighborhood,
		shelterState:        shelterState,
		status:              status,
		createdAt:           createdAt,
		updatedAt:           updatedAt,
	}
}

// --- Getters ---

func (p *Pet) ID() uuid.UUID               { return p.id }
func (p *Pet) Name() string                { return p.name }
func (p *Pet) Species() Species            { return p.species }
func (p *Pet) Breed() string               { return p.breed }
func (p *Pet) AgeYears() int               { return p.ageYears }
func (p *Pet) ShelterCity() string         { return p.shelterCity }
func (p *Pet) ShelterCEP() string          { return p.shelterCEP }
func (p *Pet) ShelterStreet() string       { return p.shelterStreet }
func (p *Pet) ShelterNumber() string       { return p.shelterNumber }
func (p *Pet) ShelterNeighborhood() string { return p.shelterNeighborhood }
func (p *Pet) ShelterState() string        { return p.shelterState }
func (p *Pet) Status() Status              { return p.status }
func (p *Pet) CreatedAt() time.Time        { return p.createdAt }
func (p *Pet) UpdatedAt() time.Time        { return p.updatedAt }

// IsAvailable returns true if the pet has not been adopted yet.
func (p *Pet) IsAvailable() bool { return p.status == StatusAvailable }

// ApplyPatch applies a merge-patch to the pet: only provided fields change,
// and every provided field is validated with the same rules as create.
func (p *Pet) ApplyPatch(f FieldSet) error {
	if err := f.validate(false); err != nil {
		return err
	}
	p.apply(f)
	p.updatedAt = time.Now().UTC()
	return nil
}

// apply copies provided, already validated fields onto the aggregate,
// normalizing as it goes.
func (p *Pet) apply(f FieldSet) {
	if f.Name != nil {
		p.name = trimmed(f.Name)
	}
	if f.Species != nil {
		p.species = Species(trimmed(f.Species))
	}
	if f.Breed != nil {
		p.breed = trimmed(f.Breed)
	}
	if f.AgeYears != nil {
		p.ageYears = *f.AgeYears
	}
	if f.ShelterCity != nil {
		p.shelterCity = trimmed(f.ShelterCity)
	}
	if f.ShelterCEP != nil {
		p.shelterCEP = trimmed(f.ShelterCEP)
	}
	if f.ShelterStreet != nil {
		p.shelterStreet = trimmed(f.ShelterStreet)
	}
	if f.ShelterNumber != nil {
		p.shelterNumber = trimmed(f.ShelterNumber)
	}
	if f.ShelterNeighborhood != nil {
		p.shelterNeighborhood = trimmed(f.ShelterNeighborhood)
	}
	if f.ShelterState != nil {
		p.shelterState = upperTrimmed(f.ShelterState)
	}
	// An empty status keeps the current value ("available" on create).
	if f.Status != nil && trimmed(f.Status) != "" {
		p.status = Status(trimmed(f.Status))
	}
}
