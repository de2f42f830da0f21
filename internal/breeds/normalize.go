package breeds

import (
	"strings"

	"github.com/adoteumpet/service-adoption/internal/domain/breed"
)

const (
	dogImageBaseURL = "https://cdn2.thedogapi.com/images/"
	catImageBaseURL = "https://cdn2.thecatapi.com/images/"

	// NameUnavailable and OriginUnavailable are the localized sentinels
	// served when an upstream record is missing those fields.
	NameUnavailable   = "Nome não disponível"
	OriginUnavailable = "Origem não disponível"

	defaultEnergyLevel = 3
)

// dogBreedRecord is the raw TheDogAPI breed shape.
type dogBreedRecord struct {
	Name             string `json:"name"`
	Temperament      string `json:"temperament"`
	Origin           string `json:"origin"`
	CountryCode      string `json:"country_code"`
	ReferenceImageID string `json:"reference_image_id"`
}

// catBreedRecord is the raw TheCatAPI breed shape.
type catBreedRecord struct {
	Name             string `json:"name"`
	Temperament      string `json:"temperament"`
	Origin           string `json:"origin"`
	EnergyLevel      int    `json:"energy_level"`
	ReferenceImageID string `json:"reference_image_id"`
}

// energyKeywords maps temperament keywords to an energy level. The first
// matching group wins, so an "active but gentle" breed rates 5.
var energyKeywords = []struct {
	keywords []string
	level    int
}{
	{[]string{"active", "energetic", "playful"}, 5},
	{[]string{"calm", "docile", "gentle"}, 2},
	{[]string{"alert", "intelligent", "friendly"}, 4},
	{[]string{"independent", "aloof"}, 2},
}

func energyFromTemperament(temperament string) int {
	if temperament == "" {
		return defaultEnergyLevel
	}
	lower := strings.ToLower(temperament)
	for _, group := range energyKeywords {
		for _, kw := range group.keywords {
			if strings.Contains(lower, kw) {
				return group.level
			}
		}
	}
	return defaultEnergyLevel
}

// originKeywords resolves a breed origin from its name when the upstream
// record has neither an origin nor a country code. Scanned in order.
var originKeywords = []struct {
	keyword string
	country string
}{
	{"afghan", "Afeganistão"},
	{"akita", "Japão"},
	{"german", "Alemanha"},
	{"english", "Inglaterra"},
	{"american", "Estados Unidos"},
	{"australian", "Austrália"},
	{"irish", "Irlanda"},
	{"scottish", "Escócia"},
	{"french", "França"},
	{"italian", "Itália"},
	{"spanish", "Espanha"},
	{"chinese", "China"},
	{"japanese", "Japão"},
	{"siberian", "Sibéria"},
	{"alaskan", "Alasca"},
	{"african", "África"},
}

// dogOrigin falls back through: explicit origin, country code, a keyword
// scan of the breed name, then the unavailable sentinel.
func dogOrigin(r dogBreedRecord) string {
	if o := strings.TrimSpace(r.Origin); o != "" {
		return r.Origin
	}
	if cc := strings.TrimSpace(r.CountryCode); cc != "" {
		return r.CountryCode
	}
	name := strings.ToLower(r.Name)
	for _, ok := range originKeywords {
		if strings.Contains(name, ok.keyword) {
			return ok.country
		}
	}
	return OriginUnavailable
}

func imageURL(baseURL, referenceImageID string) *string {
	if referenceImageID == "" {
		return nil
	}
	url := baseURL + referenceImageID + ".jpg"
	return &url
}

func normalizeDogBreed(r dogBreedRecord) breed.Breed {
	name := r.Name
	if name == "" {
		name = NameUnavailable
	}
	return breed.Breed{
		Name:        name,
		Origin:      dogOrigin(r),
		EnergyLevel: energyFromTemperament(r.Temperament),
		Temperament: TranslateTemperament(r.Temperament),
		ImageURL:    imageURL(dogImageBaseURL, r.ReferenceImageID),
	}
}

func normalizeCatBreed(r catBreedRecord) breed.Breed {
	name := r.Name
	if name == "" {
		name = NameUnavailable
	}
	origin := r.Origin
	if origin == "" {
		origin = OriginUnavailable
	}
	energy := r.EnergyLevel
	if energy == 0 {
		energy = defaultEnergyLevel
	}
	return breed.Breed{
		Name:        name,
		Origin:      origin,
		EnergyLevel: energy,
		Temperament: TranslateTemperament(r.Temperament),
		ImageURL:    imageURL(catImageBaseURL, r.ReferenceImageID),
	}
}

// FilterByName keeps the breeds whose name contains the query,
// case-insensitively. An empty query keeps everything.
func FilterByName(list []breed.Breed, query string) []breed.Breed {
	if query == "" {
		return list
	}
	term := strings.ToLower(query)
	filtered := make([]breed.Breed, 0, len(list))
	for _, b := range list {
		if strings.Contains(strings.ToLower(b.Name), term) {
			filtered = append(filtered, b)
		}
	}
	return filtered
}
