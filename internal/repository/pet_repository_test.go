package repository

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	petDomain "github.com/adoteumpet/service-adoption/internal/domain/pet"
)

func TestEscapeLike(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Buddy", "Buddy"},
		{"100%", `100\%`},
		{"snake_case", `snake\_case`},
		{`back\slash`, `back\\slash`},
		{`%_\`, `\%\_\\`},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, escapeLike(tt.in))
	}
}

func TestPetModelConversionRoundTrip(t *testing.T) {
	now := time.Now().UTC().Truncate(time.Microsecond)
	original := petDomain.Reconstruct(
		uuid.New(),
		"Buddy",
		petDomain.SpeciesDog,
		"Golden Retriever",
		3,
		"São Paulo", "01234-567", "Rua das Flores", "123", "Centro", "SP",
		petDomain.StatusAvailable,
		now, now,
	)

	got := toPetDomain(toPetModel(original))

	assert.Equal(t, original.ID(), got.ID())
	assert.Equal(t, original.Name(), got.Name())
	assert.Equal(t, original.Species(), got.Species())
	assert.Equal(t, original.ShelterCEP(), got.ShelterCEP())
	assert.Equal(t, original.ShelterState(), got.ShelterState())
	assert.Equal(t, original.Status(), got.Status())
	assert.Equal(t, original.CreatedAt(), got.CreatedAt())
}
