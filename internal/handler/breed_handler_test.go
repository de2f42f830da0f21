package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/adoteumpet/service-adoption/internal/application"
	"github.com/adoteumpet/service-adoption/internal/breeds"
	"github.com/adoteumpet/service-adoption/internal/domain/breed"
	"github.com/adoteumpet/service-adoption/internal/errs"
)

type fixedProvider struct {
	breeds []breed.Breed
	err    error
}

func (p *fixedProvider) FetchBreeds(_ context.Context) ([]breed.Breed, error) {
	if p.err != nil {
		return nil, p.err
	}
	return p.breeds, nil
}

func newBreedRouter(dog, cat breeds.BreedProvider) *gin.Engine {
	gin.SetMode(gin.TestMode)
	cache := breeds.NewCache(time.Hour, nil)
	svc := application.NewBreedService(dog, cat, cache, zap.NewNop())

	router := gin.New()
	NewBreedHandler(svc).RegisterRoutes(router.Group("/"))
	return router
}

func getBreeds(t *testing.T, router *gin.Engine, path string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return w, body
}

func TestGetBreedsEndpoint(t *testing.T) {
	dog := &fixedProvider{breeds: []breed.Breed{
		{Name: "Beagle", Origin: "Inglaterra", EnergyLevel: 5, Temperament: "alegre, curioso"},
		{Name: "Golden Retriever", Origin: "Escócia", EnergyLevel: 4, Temperament: "amigável"},
	}}
	router := newBreedRouter(dog, &fixedProvider{})

	w, body := getBreeds(t, router, "/breeds/dog")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "dog", body["species"])
	assert.Equal(t, float64(2), body["count"])
	assert.Len(t, body["data"].([]any), 2)
}

func TestGetBreedsEndpointWithQuery(t *testing.T) {
	dog := &fixedProvider{breeds: []breed.Breed{
		{Name: "Beagle"},
		{Name: "Golden Retriever"},
	}}
	router := newBreedRouter(dog, &fixedProvider{})

	w, body := getBreeds(t, router, "/breeds/dog?q=beagle")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(1), body["count"])

	first := body["data"].([]any)[0].(map[string]any)
	assert.Equal(t, "Beagle", first["name"])
}

func TestGetBreedsEndpointInvalidSpecies(t *testing.T) {
	router := newBreedRouter(&fixedProvider{}, &fixedProvider{})

	w, body := getBreeds(t, router, "/breeds/bird")
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Invalid species", body["error"])
	assert.Equal(t, `species must be "dog" or "cat"`, body["message"])
}

func TestGetBreedsEndpointUpstreamFailures(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantError  string
	}{
		{
			name:       "timeout",
			err:        errs.NewGatewayTimeoutError("the upstream breed API took too long to respond"),
			wantStatus: http.StatusGatewayTimeout,
			wantError:  "Upstream API timeout",
		},
		{
			name:       "upstream error",
			err:        errs.NewBadGatewayError(http.StatusInternalServerError, "boom"),
			wantStatus: http.StatusBadGateway,
			wantError:  "Upstream API error",
		},
		{
			name:       "missing key",
			err:        errs.NewConfigurationError("API key for cat breeds is not configured"),
			wantStatus: http.StatusInternalServerError,
			wantError:  "API configuration missing",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newBreedRouter(&fixedProvider{}, &fixedProvider{err: tt.err})

			w, body := getBreeds(t, router, "/breeds/cat")
			require.Equal(t, tt.wantStatus, w.Code)
			assert.Equal(t, tt.wantError, body["error"])
		})
	}
}
