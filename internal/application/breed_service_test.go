package application

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/adoteumpet/service-adoption/internal/breeds"
	"github.com/adoteumpet/service-adoption/internal/domain/breed"
	"github.com/adoteumpet/service-adoption/internal/errs"
)

// stubProvider serves a fixed breed list and counts upstream calls.
type stubProvider struct {
	breeds []breed.Breed
	err    error
	calls  int
}

func (p *stubProvider) FetchBreeds(_ context.Context) ([]breed.Breed, error) {
	p.calls++
	if p.err != nil {
		return nil, p.err
	}
	return p.breeds, nil
}

type manualClock struct {
	now time.Time
}

func (c *manualClock) Now() time.Time          { return c.now }
func (c *manualClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

func newBreedFixture(dog, cat *stubProvider) (*BreedService, *manualClock) {
	clock := &manualClock{now: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)}
	cache := breeds.NewCache(breeds.DefaultTTL, clock)
	return NewBreedService(dog, cat, cache, zap.NewNop()), clock
}

func dogBreeds() []breed.Breed {
	return []breed.Breed{
		{Name: "Golden Retriever", Origin: "Escócia", EnergyLevel: 4, Temperament: "amigável"},
		{Name: "Labrador Retriever", Origin: "Canada", EnergyLevel: 5, Temperament: "ativo"},
		{Name: "Beagle", Origin: "Inglaterra", EnergyLevel: 5, Temperament: "brincalhão"},
	}
}

func TestGetBreedsInvalidSpecies(t *testing.T) {
	svc, _ := newBreedFixture(&stubProvider{}, &stubProvider{})

	for _, species := range []string{"bird", "", "dogs"} {
		_, err := svc.GetBreeds(context.Background(), species, "")
		var ve *errs.ValidationError
		require.ErrorAs(t, err, &ve, "species %q", species)
		assert.Equal(t, `species must be "dog" or "cat"`, ve.Message)
	}
}

func TestGetBreedsNormalizesSpecies(t *testing.T) {
	dog := &stubProvider{breeds: dogBreeds()}
	svc, _ := newBreedFixture(dog, &stubProvider{})

	result, err := svc.GetBreeds(context.Background(), "  Dog ", "")
	require.NoError(t, err)
	assert.Equal(t, "dog", result.Species)
	assert.Equal(t, 3, result.Count)
}

func TestGetBreedsCachesPerSpeciesAndQuery(t *testing.T) {
	dog := &stubProvider{breeds: dogBreeds()}
	cat := &stubProvider{breeds: []breed.Breed{{Name: "Siamese"}}}
	svc, _ := newBreedFixture(dog, cat)

	first, err := svc.GetBreeds(context.Background(), "dog", "")
	require.NoError(t, err)
	assert.Equal(t, 3, first.Count)
	assert.Equal(t, 1, dog.calls)

	// Second identical lookup is served from cache.
	second, err := svc.GetBreeds(context.Background(), "dog", "")
	require.NoError(t, err)
	assert.Equal(t, first.Data, second.Data)
	assert.Equal(t, 1, dog.calls)

	// A different query is a different cache key, so upstream is hit again.
	filtered, err := svc.GetBreeds(context.Background(), "dog", "retriever")
	require.NoError(t, err)
	assert.Equal(t, 2, filtered.Count)
	assert.Equal(t, 2, dog.calls)

	// Species are independent.
	_, err = svc.GetBreeds(context.Background(), "cat", "")
	require.NoError(t, err)
	assert.Equal(t, 1, cat.calls)
}

func TestGetBreedsFilterIsCaseInsensitive(t *testing.T) {
	dog := &stubProvider{breeds: dogBreeds()}
	svc, _ := newBreedFixture(dog, &stubProvider{})

	result, err := svc.GetBreeds(context.Background(), "dog", "BEAGLE")
	require.NoError(t, err)
	require.Equal(t, 1, result.Count)
	assert.Equal(t, "Beagle", result.Data[0].Name)
}

func TestGetBreedsRefetchesAfterTTL(t *testing.T) {
	dog := &stubProvider{breeds: dogBreeds()}
	svc, clock := newBreedFixture(dog, &stubProvider{})

	_, err := svc.GetBreeds(context.Background(), "dog", "")
	require.NoError(t, err)
	require.Equal(t, 1, dog.calls)

	clock.Advance(59 * time.Minute)
	_, err = svc.GetBreeds(context.Background(), "dog", "")
	require.NoError(t, err)
	assert.Equal(t, 1, dog.calls, "entry is still live just under the TTL")

	clock.Advance(2 * time.Minute)
	_, err = svc.GetBreeds(context.Background(), "dog", "")
	require.NoError(t, err)
	assert.Equal(t, 2, dog.calls, "expired entry triggers a refetch")
}

func TestGetBreedsNoStaleFallback(t *testing.T) {
	dog := &stubProvider{breeds: dogBreeds()}
	svc, clock := newBreedFixture(dog, &stubProvider{})

	_, err := svc.GetBreeds(context.Background(), "dog", "")
	require.NoError(t, err)

	// Once the entry expires, an upstream failure is an error. The expired
	// data is never served.
	clock.Advance(2 * time.Hour)
	dog.err = errs.NewBadGatewayError(500, "boom")

	_, err = svc.GetBreeds(context.Background(), "dog", "")
	var bge *errs.BadGatewayError
	require.ErrorAs(t, err, &bge)
}

func TestGetBreedsUpstreamErrorPassthrough(t *testing.T) {
	dog := &stubProvider{err: errs.NewGatewayTimeoutError("the upstream breed API took too long to respond")}
	svc, _ := newBreedFixture(dog, &stubProvider{})

	_, err := svc.GetBreeds(context.Background(), "dog", "")
	var gte *errs.GatewayTimeoutError
	require.ErrorAs(t, err, &gte)

	// Failures are not cached; the next call tries upstream again.
	dog.err = nil
	dog.breeds = dogBreeds()
	result, err := svc.GetBreeds(context.Background(), "dog", "")
	require.NoError(t, err)
	assert.Equal(t, 3, result.Count)
	assert.Equal(t, 2, dog.calls)
}
