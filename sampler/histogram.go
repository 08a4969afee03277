package sampler

import (
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Bin is one histogram entry: the probability mass of all configurations
// totalling Nodes pending subtrees.
type Bin struct {
	Nodes int
	Prob  float64
}

// Histogram is the push-forward of a Distribution under Config.TotalCount,
// ordered ascending by node count.
type Histogram []Bin

// NewHistogram projects a distribution over configurations onto a
// distribution over total node counts.
func NewHistogram(dist Distribution) Histogram {
	acc := make(map[int]float64, len(dist))
	for _, term := range dist {
		acc[term.Config.TotalCount()] += term.Prob
	}
	hist := make(Histogram, 0, len(acc))
	for nodes, prob := range acc {
		hist = append(hist, Bin{Nodes: nodes, Prob: prob})
	}
	sort.Slice(hist, func(i, j int) bool { return hist[i].Nodes < hist[j].Nodes })
	return hist
}

func (h Histogram) split() (nodes, probs []float64) {
	nodes = make([]float64, len(h))
	probs = make([]float64, len(h))
	for i, b := range h {
		nodes[i] = float64(b.Nodes)
		probs[i] = b.Prob
	}
	return nodes, probs
}

// TotalMass sums the probability mass across all bins. For a histogram
// derived from a complete computation it is 1.0 within 1e-9.
func (h Histogram) TotalMass() float64 {
	_, probs := h.split()
	return floats.Sum(probs)
}

// Expectation returns the probability-weighted mean node count.
func (h Histogram) Expectation() float64 {
	if len(h) == 0 {
		return 0
	}
	nodes, probs := h.split()
	return stat.Mean(nodes, probs)
}

// CumulativeThreshold returns the smallest node count whose cumulative
// probability reaches q, for q in (0, 1]. Callers use it for quantile and
// rejection-bound queries (q = 1/2, 1/4, 1/8). An empty histogram returns
// 0.
func (h Histogram) CumulativeThreshold(q float64) int {
	if len(h) == 0 {
		return 0
	}
	nodes, probs := h.split()
	return int(stat.Quantile(q, stat.Empirical, nodes, probs))
}
