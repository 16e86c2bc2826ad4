package problem

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/katalvlaran/vogel/vam"
)

// Sentinel errors for document handling.
var (
	// ErrUnknownFormat is returned for an unsupported file extension or Format.
	ErrUnknownFormat = errors.New("problem: unknown document format")

	// ErrLabelCount is returned when a label list does not match its vector.
	ErrLabelCount = errors.New("problem: label count does not match")

	// ErrDuplicateLabel is returned when two origins or two destinations share a name.
	ErrDuplicateLabel = errors.New("problem: duplicate label")

	// ErrEmptyLabel is returned for a blank origin or destination name.
	ErrEmptyLabel = errors.New("problem: empty label")
)

// Default label prefixes for unnamed origins and destinations.
const (
	originPrefix      = "O"
	destinationPrefix = "D"
)

// Problem is a transportation problem document.
type Problem struct {
	Name         string      `yaml:"name,omitempty" json:"name,omitempty"`
	Origins      []string    `yaml:"origins,omitempty" json:"origins,omitempty"`
	Destinations []string    `yaml:"destinations,omitempty" json:"destinations,omitempty"`
	Supply       []float64   `yaml:"supply" json:"supply"`
	Demand       []float64   `yaml:"demand" json:"demand"`
	Costs        [][]float64 `yaml:"costs" json:"costs"`
}

// Validate checks the numeric data with vam.Validate, then the optional
// labels: each list is empty or one non-blank, unique name per entry.
func (p *Problem) Validate() error {
	if err := vam.Validate(p.Supply, p.Demand, p.Costs); err != nil {
		return err
	}

	return p.validateLabelSets()
}

// validateLabelSets checks the origin and destination names only.
func (p *Problem) validateLabelSets() error {
	if err := validateLabels("origins", p.Origins, len(p.Supply)); err != nil {
		return err
	}

	return validateLabels("destinations", p.Destinations, len(p.Demand))
}

// validateLabels checks one label list against the length of its vector.
func validateLabels(field string, labels []string, n int) error {
	if len(labels) == 0 {
		return nil
	}
	if len(labels) != n {
		return fmt.Errorf("%w: %s has %d names for %d entries", ErrLabelCount, field, len(labels), n)
	}
	seen := make(map[string]int, n)
	for i, l := range labels {
		if l == "" {
			return fmt.Errorf("%w: %s[%d]", ErrEmptyLabel, field, i)
		}
		if prev, ok := seen[l]; ok {
			return fmt.Errorf("%w: %s[%d] and %s[%d] are both %q", ErrDuplicateLabel, field, prev, field, i, l)
		}
		seen[l] = i
	}

	return nil
}

// Labels returns the origin and destination names, generating O1..Om and
// D1..Dn where the document leaves them out.
func (p *Problem) Labels() (origins, destinations []string) {
	return labelsOrDefault(p.Origins, len(p.Supply), originPrefix),
		labelsOrDefault(p.Destinations, len(p.Demand), destinationPrefix)
}

// labelsOrDefault copies labels when they fit n, otherwise numbers them.
func labelsOrDefault(labels []string, n int, prefix string) []string {
	out := make([]string, n)
	if len(labels) == n {
		copy(out, labels)

		return out
	}
	for i := range out {
		out[i] = prefix + strconv.Itoa(i+1)
	}

	return out
}

// Solve checks the labels and runs vam.Solve, which validates the numbers.
func (p *Problem) Solve(opts ...vam.Option) (vam.Result, error) {
	if err := p.validateLabelSets(); err != nil {
		return vam.Result{}, err
	}

	return vam.Solve(p.Supply, p.Demand, p.Costs, opts...)
}
