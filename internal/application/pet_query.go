package application

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/adoteumpet/service-adoption/internal/domain/pet"
	"github.com/adoteumpet/service-adoption/internal/errs"
)

const (
	defaultPage    = 1
	defaultPerPage = 10
	maxPerPage     = 100
	defaultSortBy  = "created_at"
	defaultOrder   = "desc"
)

// ListPetsParams carries the untrusted query parameters of a listing
// request, all as raw strings.
type ListPetsParams struct {
	Name                string
	Species             string
	Breed               string
	ShelterCity         string
	ShelterState        string
	ShelterNeighborhood string
	Status              string
	Page                string
	PerPage             string
	SortBy              string
	Order               string
}

// PetListResult is the paginated listing envelope. Total counts every match
// before pagination; a page past the end yields an empty Data slice with
// Total intact.
type PetListResult struct {
	Total      int64    `json:"total"`
	Page       int      `json:"page"`
	PerPage    int      `json:"perPage"`
	TotalPages int64    `json:"totalPages"`
	Data       []PetDTO `json:"data"`
}

// ListPets resolves the raw query parameters, executes the listing and
// shapes the paginated envelope.
func (s *PetService) ListPets(ctx context.Context, params ListPetsParams) (*PetListResult, error) {
	query, err := resolveListQuery(params)
	if err != nil {
		return nil, err
	}

	pets, total, err := s.repo.List(ctx, query)
	if err != nil {
		s.logger.Error("failed to list pets", zap.Error(err))
		return nil, fmt.Errorf("failed to list pets: %w", err)
	}

	data := make([]PetDTO, len(pets))
	for i, p := range pets {
		data[i] = toPetDTO(p)
	}

	return &PetListResult{
		Total:      total,
		Page:       query.Page,
		PerPage:    query.PerPage,
		TotalPages: totalPages(total, query.PerPage),
		Data:       data,
	}, nil
}

// resolveListQuery validates pagination and sorting parameters, applies
// defaults and builds the repository query. Validation fails fast on the
// first offending parameter.
func resolveListQuery(params ListPetsParams) (pet.ListQuery, error) {
	query := pet.ListQuery{
		Name:                strings.TrimSpace(params.Name),
		Breed:               strings.TrimSpace(params.Breed),
		ShelterCity:         strings.TrimSpace(params.ShelterCity),
		ShelterState:        strings.TrimSpace(params.ShelterState),
		ShelterNeighborhood: strings.TrimSpace(params.ShelterNeighborhood),
		Species:             strings.TrimSpace(params.Species),
		Status:              strings.TrimSpace(params.Status),
		Page:                defaultPage,
		PerPage:             defaultPerPage,
		SortBy:              defaultSortBy,
		Order:               defaultOrder,
	}

	if raw := strings.TrimSpace(params.Page); raw != "" {
		page, err := strconv.Atoi(raw)
		if err != nil || page < 1 {
			return pet.ListQuery{}, errs.NewValidationError(
				"page must be an integer greater than or equal to 1")
		}
		query.Page = page
	}

	if raw := strings.TrimSpace(params.PerPage); raw != "" {
		perPage, err := strconv.Atoi(raw)
		if err != nil || perPage < 1 || perPage > maxPerPage {
			return pet.ListQuery{}, errs.NewValidationError(
				fmt.Sprintf("perPage must be an integer between 1 and %d", maxPerPage))
		}
		query.PerPage = perPage
	}

	if raw := strings.TrimSpace(params.SortBy); raw != "" {
		if !pet.SortableColumns[raw] {
			return pet.ListQuery{}, errs.NewValidationError(
				"sortBy must be one of: " + sortableColumnList())
		}
		query.SortBy = raw
	}

	if raw := strings.ToLower(strings.TrimSpace(params.Order)); raw != "" {
		if raw != "asc" && raw != "desc" {
			return pet.ListQuery{}, errs.NewValidationError(
				`order must be "asc" or "desc"`)
		}
		query.Order = raw
	}

	return query, nil
}

func totalPages(total int64, perPage int) int64 {
	if total == 0 {
		return 0
	}
	return (total + int64(perPage) - 1) / int64(perPage)
}

func sortableColumnList() string {
	columns := make([]string, 0, len(pet.SortableColumns))
	for c := range pet.SortableColumns {
		columns = append(columns, c)
	}
	sort.Strings(columns)
	return strings.Join(columns, ", ")
}
