package chart

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Input is the chart document supplied by the upstream ephemeris collaborator.
type Input struct {
	// Name is an optional label carried into reports.
	Name string `json:"name,omitempty" yaml:"name,omitempty" validate:"max=256"`
	// Ascendant is the lagna degree. Required.
	Ascendant *float64 `json:"ascendant" yaml:"ascendant" validate:"required"`
	// Planets maps a planet name to its position. Keys are matched
	// case-insensitively and may use Sanskrit names.
	Planets map[string]PlanetInput `json:"planets" yaml:"planets"`
}

// PlanetInput is one planet's upstream position.
type PlanetInput struct {
	Longitude  float64 `json:"longitude" yaml:"longitude"`
	Retrograde bool    `json:"retrograde,omitempty" yaml:"retrograde,omitempty"`
}

// inputValidate is the validator instance for chart documents.
var inputValidate *validator.Validate

func init() {
	inputValidate = validator.New(validator.WithRequiredStructEnabled())

	// Report document field names, not Go field names.
	inputValidate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}

		return name
	})
}

// Validate checks the structural rules of the document.
// Numeric rules (finite longitudes) are checked while building the Snapshot.
func (in *Input) Validate() error {
	err := inputValidate.Struct(in)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		first := verrs[0]
		return invalid("chart.validate", first.Field(),
			errors.New(first.Field()+" failed "+first.Tag()+" rule"))
	}

	return invalid("chart.validate", "", err)
}

// Float returns a pointer to v, for building Inputs in code.
func Float(v float64) *float64 {
	return &v
}
