// Package sweep runs the node-count pipeline over a grid of (csp, tau)
// parameter pairs and collects the quantile thresholds for each pair into
// CSV rows. Pairs are independent computations, so the grid fans out over
// a bounded worker group.
package sweep

import (
	"bytes"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// TauRange is an inclusive integer range of tau values.
type TauRange struct {
	From int `yaml:"from"`
	To   int `yaml:"to"`
}

// Spec is the top-level sweep configuration, loaded from YAML via
// Load(path). Taus and TauRange may be combined; the grid is the cross
// product of CSPs with all tau values in declaration order.
type Spec struct {
	CSPs     []int     `yaml:"csps"`
	Taus     []int     `yaml:"taus,omitempty"`
	TauRange *TauRange `yaml:"tau_range,omitempty"`
	Grind    int       `yaml:"grind,omitempty"`
	Workers  int       `yaml:"workers,omitempty"`
	Output   string    `yaml:"output,omitempty"`
}

// Load reads and strictly decodes a sweep spec, then validates it and
// fills defaults.
func Load(path string) (*Spec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading sweep spec: %w", err)
	}
	var spec Spec
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&spec); err != nil {
		return nil, fmt.Errorf("parsing sweep spec: %w", err)
	}
	if err := spec.Validate(); err != nil {
		return nil, err
	}
	return &spec, nil
}

// Validate checks the spec and fills defaults: 4 workers and a
// timestamped output file name.
func (s *Spec) Validate() error {
	if len(s.CSPs) == 0 {
		return fmt.Errorf("at least one csp value required")
	}
	if len(s.Taus) == 0 && s.TauRange == nil {
		return fmt.Errorf("at least one tau value required (taus or tau_range)")
	}
	for _, tau := range s.Taus {
		if tau <= 0 {
			return fmt.Errorf("tau must be positive, got %d", tau)
		}
	}
	if s.TauRange != nil {
		if s.TauRange.From <= 0 || s.TauRange.To < s.TauRange.From {
			return fmt.Errorf("invalid tau_range [%d, %d]", s.TauRange.From, s.TauRange.To)
		}
	}
	if s.Grind < 0 {
		return fmt.Errorf("grind must be non-negative, got %d", s.Grind)
	}
	if s.Workers < 0 {
		return fmt.Errorf("workers must be non-negative, got %d", s.Workers)
	}
	if s.Workers == 0 {
		s.Workers = 4
	}
	if s.Output == "" {
		s.Output = fmt.Sprintf("param_results_%s.csv", time.Now().Format("2006-01-02-15-04"))
	}
	return nil
}

// Pair is one (csp, tau) grid point.
type Pair struct {
	CSP int
	Tau int
}

// Grid expands the spec into its (csp, tau) pairs in declaration order:
// explicit taus first, then the tau range.
func (s *Spec) Grid() []Pair {
	taus := append([]int(nil), s.Taus...)
	if s.TauRange != nil {
		for tau := s.TauRange.From; tau <= s.TauRange.To; tau++ {
			taus = append(taus, tau)
		}
	}
	pairs := make([]Pair, 0, len(s.CSPs)*len(taus))
	for _, csp := range s.CSPs {
		for _, tau := range taus {
			pairs = append(pairs, Pair{CSP: csp, Tau: tau})
		}
	}
	return pairs
}
