package problem

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"
)

// Format is the serialisation of a problem document.
type Format int

const (
	// YAML documents (.yaml, .yml).
	YAML Format = iota

	// JSON documents, comments allowed (.json, .jsonc).
	JSON
)

// String returns the lower-case format name.
func (f Format) String() string {
	switch f {
	case YAML:
		return "yaml"
	case JSON:
		return "json"
	default:
		return fmt.Sprintf("Format(%d)", int(f))
	}
}

// ParseFormat maps a name ("yaml", "yml", "json", "jsonc") to a Format.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimPrefix(name, ".")) {
	case "yaml", "yml":
		return YAML, nil
	case "json", "jsonc":
		return JSON, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownFormat, name)
	}
}

// FormatFromPath picks the Format from the file extension.
func FormatFromPath(path string) (Format, error) {
	return ParseFormat(filepath.Ext(path))
}

// Load reads the document at path, decodes it by extension and validates it.
func Load(path string) (*Problem, error) {
	f, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("problem: read %s: %w", path, err)
	}
	p, err := Parse(data, f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return p, nil
}

// Parse decodes data in the given format and validates the result.
func Parse(data []byte, f Format) (*Problem, error) {
	var p Problem
	switch f {
	case YAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&p); err != nil {
			return nil, fmt.Errorf("problem: decode yaml: %w", err)
		}
	case JSON:
		// Strip // and /* */ comments and trailing commas first.
		dec := json.NewDecoder(bytes.NewReader(jsonc.ToJSON(data)))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&p); err != nil {
			return nil, fmt.Errorf("problem: decode json: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownFormat, f)
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}

	return &p, nil
}

// Encode writes p in the given format. YAML uses a two-space indent.
func Encode(p *Problem, f Format) ([]byte, error) {
	switch f {
	case YAML:
		var buf bytes.Buffer
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(p); err != nil {
			return nil, fmt.Errorf("problem: encode yaml: %w", err)
		}
		if err := enc.Close(); err != nil {
			return nil, fmt.Errorf("problem: encode yaml: %w", err)
		}

		return buf.Bytes(), nil
	case JSON:
		data, err := json.MarshalIndent(p, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("problem: encode json: %w", err)
		}

		return append(data, '\n'), nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownFormat, f)
	}
}

// Sample returns a balanced three-plant, four-market problem.
func Sample() *Problem {
	return &Problem{
		Name:         "Plants to markets",
		Origins:      []string{"Plant A", "Plant B", "Plant C"},
		Destinations: []string{"North", "East", "South", "West"},
		Supply:       []float64{250, 350, 400},
		Demand:       []float64{200, 300, 350, 150},
		Costs: [][]float64{
			{3, 1, 7, 4},
			{2, 6, 5, 9},
			{8, 3, 3, 2},
		},
	}
}

// Template encodes Sample in the given format, ready to be edited.
func Template(f Format) ([]byte, error) {
	return Encode(Sample(), f)
}
