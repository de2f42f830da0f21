package breeds

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/adoteumpet/service-adoption/internal/domain/breed"
	"github.com/adoteumpet/service-adoption/internal/errs"
)

// UpstreamTimeout is the fixed request budget for one upstream call. No
// retries are performed; a single failed call fails the whole lookup.
const UpstreamTimeout = 10 * time.Second

const maxUpstreamBody = 8 << 10

// BreedProvider fetches the full normalized breed list for one species.
type BreedProvider interface {
	FetchBreeds(ctx context.Context) ([]breed.Breed, error)
}

// apiClient performs the authenticated upstream request shared by both
// providers.
type apiClient struct {
	species    string
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

func newAPIClient(species, baseURL, apiKey string) apiClient {
	return apiClient{
		species:    species,
		baseURL:    baseURL,
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: UpstreamTimeout},
	}
}

func (c apiClient) getJSON(ctx context.Context, out any) error {
	if c.apiKey == "" {
		return errs.NewConfigurationError(
			fmt.Sprintf("API key for %s breeds is not configured", c.species))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL, nil)
	if err != nil {
		return fmt.Errorf("failed to build %s breeds request: %w", c.species, err)
	}
	req.Header.Set("x-api-key", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if isTimeout(err) {
			return errs.NewGatewayTimeoutError("the upstream breed API took too long to respond")
		}
		return fmt.Errorf("failed to call %s breeds API: %w", c.species, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxUpstreamBody))
		return errs.NewBadGatewayError(resp.StatusCode, string(body))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode %s breeds response: %w", c.species, err)
	}
	return nil
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var urlErr *url.Error
	return errors.As(err, &urlErr) && urlErr.Timeout()
}

// DogProvider fetches and normalizes breeds from TheDogAPI.
type DogProvider struct {
	client apiClient
}

func NewDogProvider(baseURL, apiKey string) *DogProvider {
	return &DogProvider{client: newAPIClient("dog", baseURL, apiKey)}
}

func (p *DogProvider) FetchBreeds(ctx context.Context) ([]breed.Breed, error) {
	var records []dogBreedRecord
	if err := p.client.getJSON(ctx, &records); err != nil {
		return nil, err
	}
	breeds := make([]breed.Breed, len(records))
	for i, r := range records {
		breeds[i] = normalizeDogBreed(r)
	}
	return breeds, nil
}

// CatProvider fetches and normalizes breeds from TheCatAPI.
type CatProvider struct {
	client apiClient
}

func NewCatProvider(baseURL, apiKey string) *CatProvider {
	return &CatProvider{client: newAPIClient("cat", baseURL, apiKey)}
}

func (p *CatProvider) FetchBreeds(ctx context.Context) ([]breed.Breed, error) {
	var records []catBreedRecord
	if err := p.client.getJSON(ctx, &records); err != nil {
		return nil, err
	}
	breeds := make([]breed.Breed, len(records))
	for i, r := range records {
		breeds[i] = normalizeCatBreed(r)
	}
	return breeds, nil
}
