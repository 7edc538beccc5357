package report

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"slices"

	"github.com/davecgh/go-spew/spew"
	"gopkg.in/yaml.v3"

	"chart-interpreter/internal/interpret"
)

// Format is an output encoding.
type Format string

const (
	FormatJSON  Format = "json"
	FormatYAML  Format = "yaml"
	FormatText  Format = "text"
	FormatDebug Format = "debug"
)

// Formats lists the supported formats.
var Formats = []Format{FormatJSON, FormatYAML, FormatText, FormatDebug}

// Section selects the part of an Interpretation to render.
type Section string

const (
	SectionAll         Section = "interpretation"
	SectionHouses      Section = "houses"
	SectionYogas       Section = "yogas"
	SectionFriendship  Section = "friendship"
	SectionDiagnostics Section = "diagnostics"
)

// ErrUnknownFormat is returned for a format not in Formats.
var ErrUnknownFormat = errors.New("unknown report format")

// ParseFormat validates a format name.
func ParseFormat(s string) (Format, error) {
	f := Format(s)
	if !slices.Contains(Formats, f) {
		return "", fmt.Errorf("%w: %q (want json, yaml, text or debug)", ErrUnknownFormat, s)
	}

	return f, nil
}

// debugConfig dumps values deterministically.
var debugConfig = spew.ConfigState{
	Indent:                  "  ",
	SortKeys:                true,
	DisablePointerAddresses: true,
	DisableCapacities:       true,
}

// Options tune rendering.
type Options struct {
	// Color styles the text format for a terminal. Other formats ignore it.
	Color bool
}

// Render writes the selected section of in to w.
func Render(w io.Writer, format Format, section Section, in *interpret.Interpretation) error {
	data, err := Bytes(format, section, in)
	if err != nil {
		return err
	}

	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("writing report: %w", err)
	}

	return nil
}

// Bytes renders the selected section of in.
func Bytes(format Format, section Section, in *interpret.Interpretation) ([]byte, error) {
	return BytesWith(format, section, in, Options{})
}

// BytesWith renders the selected section of in with opts.
func BytesWith(format Format, section Section, in *interpret.Interpretation, opts Options) ([]byte, error) {
	value, err := selectSection(section, in)
	if err != nil {
		return nil, err
	}

	switch format {
	case FormatJSON:
		out, err := json.MarshalIndent(value, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("encoding json: %w", err)
		}

		return append(out, '\n'), nil
	case FormatYAML:
		var buf bytes.Buffer

		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)

		if err := enc.Encode(value); err != nil {
			return nil, fmt.Errorf("encoding yaml: %w", err)
		}

		if err := enc.Close(); err != nil {
			return nil, fmt.Errorf("encoding yaml: %w", err)
		}

		return buf.Bytes(), nil
	case FormatText:
		tmpl := textTemplates
		if opts.Color {
			tmpl = styledTemplates
		}

		var buf bytes.Buffer
		if err := tmpl.ExecuteTemplate(&buf, string(section), in); err != nil {
			return nil, fmt.Errorf("executing template: %w", err)
		}

		return buf.Bytes(), nil
	case FormatDebug:
		return []byte(debugConfig.Sdump(value)), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

func selectSection(section Section, in *interpret.Interpretation) (any, error) {
	if in == nil {
		return nil, errors.New("no interpretation to render")
	}

	switch section {
	case SectionAll:
		return in, nil
	case SectionHouses:
		return in.Houses, nil
	case SectionYogas:
		return in.Yogas, nil
	case SectionFriendship:
		return in.Friendship, nil
	case SectionDiagnostics:
		return in.Diagnostics, nil
	default:
		return nil, fmt.Errorf("unknown report section %q", section)
	}
}
