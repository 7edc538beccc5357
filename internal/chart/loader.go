package chart

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadFile loads and parses a chart document from the given path.
// YAML and JSON are both accepted; JSON is parsed as a YAML subset.
func LoadFile(path string) (*Input, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &InputError{
			Op:   "chart.load",
			Kind: KindNotFound,
			Path: path,
			Err:  fmt.Errorf("failed to read chart file: %w", err),
		}
	}

	in, err := Parse(data)
	if err != nil {
		var ie *InputError
		if errors.As(err, &ie) {
			ie.Path = path
		}

		return nil, err
	}

	return in, nil
}

// Parse parses YAML or JSON data into an Input and validates it.
func Parse(data []byte) (*Input, error) {
	var in Input

	if err := yaml.Unmarshal(data, &in); err != nil {
		return nil, invalid("chart.parse", "", fmt.Errorf("failed to parse chart document: %w", err))
	}

	applyDefaults(&in)

	if err := in.Validate(); err != nil {
		return nil, err
	}

	return &in, nil
}

// applyDefaults fills in default values for optional fields.
func applyDefaults(in *Input) {
	if in.Planets == nil {
		in.Planets = map[string]PlanetInput{}
	}
}
