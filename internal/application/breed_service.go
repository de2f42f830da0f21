package application

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/adoteumpet/service-adoption/internal/breeds"
	"github.com/adoteumpet/service-adoption/internal/domain/breed"
	"github.com/adoteumpet/service-adoption/internal/errs"
)

// BreedListResult is the response envelope for a breed lookup.
type BreedListResult struct {
	Species string        `json:"species"`
	Count   int           `json:"count"`
	Data    []breed.Breed `json:"data"`
}

// BreedService serves breed lookups through the TTL cache, falling through
// to the species' upstream provider on a miss.
type BreedService struct {
	providers map[string]breeds.BreedProvider
	cache     *breeds.Cache
	logger    *zap.Logger
}

// NewBreedService creates a BreedService backed by the given providers.
func NewBreedService(dog, cat breeds.BreedProvider, cache *breeds.Cache, logger *zap.Logger) *BreedService {
	return &BreedService{
		providers: map[string]breeds.BreedProvider{
			"dog": dog,
			"cat": cat,
		},
		cache:  cache,
		logger: logger,
	}
}

// GetBreeds returns the breed list for a species, optionally filtered by a
// case-insensitive substring of the breed name. Results are cached per
// (species, query) pair; a stale entry is never used as a fallback when the
// upstream call fails.
func (s *BreedService) GetBreeds(ctx context.Context, species, query string) (*BreedListResult, error) {
	speciesKey := strings.ToLower(strings.TrimSpace(species))
	provider, ok := s.providers[speciesKey]
	if !ok {
		return nil, errs.NewValidationError(`species must be "dog" or "cat"`)
	}

	cacheKey := speciesKey + "_" + cacheQueryKey(query)
	if cached, hit := s.cache.Get(cacheKey); hit {
		s.logger.Debug("breed cache hit", zap.String("key", cacheKey))
		return &BreedListResult{Species: speciesKey, Count: len(cached), Data: cached}, nil
	}

	s.logger.Info("fetching breeds from upstream", zap.String("species", speciesKey))
	all, err := provider.FetchBreeds(ctx)
	if err != nil {
		s.logger.Error("upstream breed fetch failed",
			zap.String("species", speciesKey),
			zap.Error(err),
		)
		return nil, err
	}

	filtered := breeds.FilterByName(all, query)
	s.cache.Set(cacheKey, filtered)

	return &BreedListResult{Species: speciesKey, Count: len(filtered), Data: filtered}, nil
}

func cacheQueryKey(query string) string {
	if query == "" {
		return "all"
	}
	return query
}
