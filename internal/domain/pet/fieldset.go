package pet

import (
	"regexp"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/adoteumpet/service-adoption/internal/errs"
)

var twoLetterState = regexp.MustCompile(`^[A-Za-z]{2}$`)

// FieldSet carries client-supplied pet fields. A nil pointer means the field
// was not provided, which distinguishes "unset" from an explicit empty value.
// The same type backs create payloads (all fields required) and merge-patch
// updates (only provided fields are validated and applied).
type FieldSet struct {
	Name                *string
	Species             *string
	Breed               *string
	AgeYears            *int
	ShelterCity         *string
	ShelterCEP          *string
	ShelterStreet       *string
	ShelterNumber       *string
	ShelterNeighborhood *string
	ShelterState        *string
	Status              *string
}

// validate checks every field against its constraint, collecting all
// violations before failing. With requireAll set, absent fields (except
// status, which defaults to "available") are violations too.
func (f FieldSet) validate(requireAll bool) error {
	var details []string

	checkText := func(v *string, field string, rules ...validation.Rule) {
		if v == nil {
			if requireAll {
				details = append(details, field+" is required")
			}
			return
		}
		if err := validation.Validate(strings.TrimSpace(*v), rules...); err != nil {
			details = append(details, err.Error())
		}
	}

	checkText(f.Name, "name",
		validation.Required.Error("name is required"),
		validation.RuneLength(1, 30).Error("name must be between 1 and 30 characters"),
	)
	checkText(f.Species, "species",
		validation.Required.Error("species is required"),
		validation.In("dog", "cat").Error(`species must be "dog" or "cat"`),
	)
	checkText(f.Breed, "breed",
		validation.Required.Error("breed is required"),
		validation.RuneLength(3, 30).Error("breed must be between 3 and 30 characters"),
	)

	if f.AgeYears == nil {
		if requireAll {
			details = append(details, "age_years is required")
		}
	} else if err := validation.Validate(*f.AgeYears,
		validation.Min(0).Error("age_years must be between 0 and 20"),
		validation.Max(20).Error("age_years must be between 0 and 20"),
	); err != nil {
		details = append(details, err.Error())
	}

	checkText(f.ShelterCity, "shelter_city",
		validation.Required.Error("shelter_city is required"),
		validation.RuneLength(1, 100).Error("shelter_city must be between 1 and 100 characters"),
	)
	checkText(f.ShelterCEP, "shelter_cep",
		validation.Required.Error("shelter_cep is required"),
		validation.RuneLength(8, 9).Error("shelter_cep must have 8 or 9 characters"),
	)
	checkText(f.ShelterStreet, "shelter_street",
		validation.Required.Error("shelter_street is required"),
		validation.RuneLength(1, 255).Error("shelter_street must be between 1 and 255 characters"),
	)
	checkText(f.ShelterNumber, "shelter_number",
		validation.Required.Error("shelter_number is required"),
		validation.RuneLength(1, 20).Error("shelter_number must be between 1 and 20 characters"),
	)
	checkText(f.ShelterNeighborhood, "shelter_neighborhood",
		validation.Required.Error("shelter_neighborhood is required"),
		validation.RuneLength(1, 100).Error("shelter_neighborhood must be between 1 and 100 characters"),
	)
	checkText(f.ShelterState, "shelter_state",
		validation.Required.Error("shelter_state is required"),
		validation.Match(twoLetterState).Error("shelter_state must be exactly 2 letters"),
	)

	// Status is optional even on create; it defaults to "available".
	if f.Status != nil {
		if err := validation.Validate(strings.TrimSpace(*f.Status),
			validation.In("available", "adopted").Error(`status must be "available" or "adopted"`),
		); err != nil {
			details = append(details, err.Error())
		}
	}

	if len(details) > 0 {
		return errs.NewValidationError("the following fields contain errors", details...)
	}
	return nil
}

func trimmed(v *string) string { return strings.TrimSpace(*v) }

func upperTrimmed(v *string) string { return strings.ToUpper(strings.TrimSpace(*v)) }
