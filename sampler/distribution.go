package sampler

import "gonum.org/v1/gonum/floats"

// Term is one weighted configuration inside a Distribution.
type Term struct {
	Config Config
	Prob   float64
}

// Distribution is a probability mass function over Configs, keyed by their
// canonical form. A Distribution produced by a complete computation has
// total mass 1.0 within floating-point tolerance.
type Distribution map[string]Term

// NewDistribution returns an empty Distribution.
func NewDistribution() Distribution {
	return make(Distribution)
}

// Add accumulates probability mass onto the given configuration.
func (d Distribution) Add(c Config, prob float64) {
	key := c.Key()
	term, ok := d[key]
	if !ok {
		term.Config = c
	}
	term.Prob += prob
	d[key] = term
}

// TotalMass sums the probability mass across all configurations.
func (d Distribution) TotalMass() float64 {
	probs := make([]float64, 0, len(d))
	for _, term := range d {
		probs = append(probs, term.Prob)
	}
	return floats.Sum(probs)
}
