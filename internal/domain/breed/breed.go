// Package breed defines the normalized breed shape served from the breed
// cache. Breeds are derived from upstream providers and never persisted.
package breed

// Breed is a normalized breed record. EnergyLevel is on a 1-5 scale and
// Temperament is localized to pt-BR.
type Breed struct {
	Name        string  `json:"name"`
	Origin      string  `json:"origin"`
	EnergyLevel int     `json:"energy_level"`
	Temperament string  `json:"temperament"`
	ImageURL    *string `json:"image_url"`
}
