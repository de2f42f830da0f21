package repository

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	petDomain "github.com/adoteumpet/service-adoption/internal/domain/pet"
	"github.com/adoteumpet/service-adoption/internal/errs"
)

// PetModel is the GORM model for the pets table.
type PetModel struct {
	ID                  uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name                string    `gorm:"type:varchar(30);not null;index"`
	Species             string    `gorm:"type:varchar(10);not null;index"`
	Breed               string    `gorm:"type:varchar(30);not null"`
	AgeYears            int       `gorm:"type:int;not null"`
	ShelterCity         string    `gorm:"type:varchar(100);not null;index"`
	ShelterCEP          string    `gorm:"column:shelter_cep;type:varchar(9);not null"`
	ShelterStreet       string    `gorm:"type:varchar(255);not null"`
	ShelterNumber       string    `gorm:"type:varchar(20);not null"`
	ShelterNeighborhood string    `gorm:"type:varchar(100);not null"`
	ShelterState        string    `gorm:"type:char(2);not null"`
	Status              string    `gorm:"type:varchar(20);not null;default:'available';index"`
	CreatedAt           time.Time `gorm:"type:timestamptz;not null;index"`
	UpdatedAt           time.Time `gorm:"type:timestamptz;not null"`
}

func (PetModel) TableName() string { return "pets" }

// GormPetRepository implements PetRepository using GORM on PostgreSQL.
type GormPetRepository struct {
	db *gorm.DB
}

func NewGormPetRepository(db *gorm.DB) *GormPetRepository {
	return &GormPetRepository{db: db}
}

func (r *GormPetRepository) FindByID(ctx context.Context, id uuid.UUID) (*petDomain.Pet, error) {
	var model PetModel
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewNotFoundError("Pet", id.String())
		}
		return nil, err
	}
	return toPetDomain(&model), nil
}

// List counts and fetches the page matching the query. Text filters are
// case-insensitive substring matches (ILIKE), species and status exact.
// Sort columns come from the domain allow-list, never from raw input. The
// tie-break beyond the sort key is whatever order PostgreSQL returns, which
// in practice is stable by insertion but not guaranteed.
func (r *GormPetRepository) List(ctx context.Context, q petDomain.ListQuery) ([]*petDomain.Pet, int64, error) {
	db := r.db.WithContext(ctx).Model(&PetModel{})

	substring := map[string]string{
		"name":                 q.Name,
		"breed":                q.Breed,
		"shelter_city":         q.ShelterCity,
		"shelter_state":        q.ShelterState,
		"shelter_neighborhood": q.ShelterNeighborhood,
	}
	for column, value := range substring {
		if value != "" {
			db = db.Where(column+" ILIKE ?", "%"+escapeLike(value)+"%")
		}
	}
	if q.Species != "" {
		db = db.Where("species = ?", q.Species)
	}
	if q.Status != "" {
		db = db.Where("status = ?", q.Status)
	}

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var models []PetModel
	if err := db.
		Order(q.SortBy + " " + strings.ToUpper(q.Order)).
		Offset(q.Offset()).
		Limit(q.PerPage).
		Find(&models).Error; err != nil {
		return nil, 0, err
	}

	pets := make([]*petDomain.Pet, len(models))
	for i, m := range models {
		pets[i] = toPetDomain(&m)
	}
	return pets, total, nil
}

func (r *GormPetRepository) Save(ctx context.Context, pet *petDomain.Pet) error {
	model := toPetModel(pet)
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errs.NewConflictError("a pet with this id already exists")
		}
		return err
	}
	return nil
}

func (r *GormPetRepository) Update(ctx context.Context, pet *petDomain.Pet) error {
	model := toPetModel(pet)
	result := r.db.WithContext(ctx).Save(model)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewNotFoundError("Pet", pet.ID().String())
	}
	return nil
}

func (r *GormPetRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&PetModel{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewNotFoundError("Pet", id.String())
	}
	return nil
}

// escapeLike escapes LIKE wildcards so filter values match literally.
func escapeLike(value string) string {
	value = strings.ReplaceAll(value, `\`, `\\`)
	value = strings.ReplaceAll(value, "%", `\%`)
	return strings.ReplaceAll(value, "_", `\_`)
}

// --- Conversions ---

func toPetModel(p *petDomain.Pet) *PetModel {
	return &PetModel{
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

func toPetDomain(m *PetModel) *petDomain.Pet {
	return petDomain.Reconstruct(
		m.ID,
		m.Name,
		petDomain.Species(m.Species),
		m.Breed,
		m.AgeYears,
		m.ShelterCity, m.ShelterCEP, m.ShelterStreet, m.ShelterNumber, m.ShelterNeighborhood, m.ShelterState,
		petDomain.Status(m.Status),
		m.CreatedAt, m.UpdatedAt,
	)
}
