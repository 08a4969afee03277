package sampler

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

// SampleOnce computes the exact distribution over pending-subtree
// populations produced by one random split event on numLeaf leaves indexed
// as a binary tree. The two child sizes of a split are fully determined by
// numLeaf; only which child receives the next event is probabilistic, so
// the recursion weights each child's sub-distribution by its share of the
// leaves. numLeaf <= 0 yields an empty distribution; for numLeaf = 1 the
// single outcome is the empty configuration.
func SampleOnce(numLeaf int) (Distribution, error) {
	dist := NewDistribution()
	if numLeaf <= 0 {
		return dist, nil
	}

	// Index range a complete tree over these leaves would occupy.
	leafMin := numLeaf
	leafMax := 2*numLeaf - 1
	leftDepth := Depth(leafMax)
	rightDepth := Depth(leafMin)

	// Perfectly balanced tree: the decomposition is deterministic, one
	// full subtree per level.
	if leftDepth == rightDepth {
		pairs := make([]SizeCount, 0, leftDepth)
		for i := 0; i < leftDepth; i++ {
			size, err := pow2(i)
			if err != nil {
				return nil, err
			}
			pairs = append(pairs, SizeCount{Size: size, Count: 1})
		}
		dist.Add(NewConfig(pairs), 1.0)
		return dist, nil
	}

	// Unbalanced tree: exactly one child is itself a full subtree, which
	// one depends on how many shallow slots the last level leaves open.
	fullWidth, err := pow2(leftDepth)
	if err != nil {
		return nil, err
	}
	rightFull, err := pow2(rightDepth - 1)
	if err != nil {
		return nil, err
	}
	numShallow := fullWidth - numLeaf

	var numLeft, numRight int
	if numShallow <= rightFull {
		numLeft, err = pow2(leftDepth - 1)
		if err != nil {
			return nil, err
		}
		numRight = numLeaf - numLeft
	} else {
		numRight = rightFull
		numLeft = numLeaf - numRight
	}

	for _, subLeaves := range []int{numLeft, numRight} {
		rest := Singleton(numLeaf-subLeaves, 1)
		probSub := float64(subLeaves) / float64(numLeaf)

		subDist, err := SampleOnce(subLeaves)
		if err != nil {
			return nil, err
		}
		for _, term := range subDist {
			dist.Add(term.Config.Combine(rest), probSub*term.Prob)
		}
	}
	return dist, nil
}

// Sample simulates steps sequential split events starting from a single
// population of numLeaf leaves and returns the exact distribution over the
// resulting pending-subtree configurations. numLeaf <= 0 or steps < 0
// yields an empty distribution.
//
// Each step replaces the distribution wholesale: for every configuration,
// every subtree size it holds may be the one split, weighted by that
// size's share of the remaining leaf mass (the denominator shrinks by one
// per step, one unit of leaf mass being consumed per event). Single-split
// distributions depend only on the subtree size, so they are memoized in a
// cache scoped to this invocation; Sample holds no global state and
// independent calls may run concurrently.
//
// The number of distinct configurations can grow combinatorially with
// steps. No pruning or approximation is applied, which bounds practical
// input sizes; callers own that trade-off.
func Sample(numLeaf, steps int) (Distribution, error) {
	if numLeaf <= 0 || steps < 0 {
		return NewDistribution(), nil
	}

	cache := make(map[int]Distribution)
	dist := NewDistribution()
	dist.Add(Singleton(numLeaf, 1), 1.0)

	for i := 0; i < steps; i++ {
		logrus.Debugf("split step %d/%d over %d configurations", i+1, steps, len(dist))
		remaining := numLeaf - i

		next := NewDistribution()
		for _, term := range dist {
			for _, entry := range term.Config.entries {
				splitDist, ok := cache[entry.Size]
				if !ok {
					var err error
					splitDist, err = SampleOnce(entry.Size)
					if err != nil {
						return nil, err
					}
					cache[entry.Size] = splitDist
				}

				prob := term.Prob * float64(entry.Size*entry.Count) / float64(remaining)
				if prob == 0 {
					continue
				}

				// Remove the split subtree; a missing size here means the
				// step bookkeeping is corrupt, and continuing would leak
				// probability mass.
				base, err := term.Config.Decrement(entry.Size)
				if err != nil {
					return nil, fmt.Errorf("step %d: %w", i, err)
				}
				for _, split := range splitDist {
					next.Add(base.Combine(split.Config), prob*split.Prob)
				}
			}
		}
		dist = next
	}
	return dist, nil
}
