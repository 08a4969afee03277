package sampler

import (
	"errors"
	"fmt"
	"math/bits"
)

// ErrOverflow reports an arithmetic result outside the representable
// range: a power-of-two exponent too large for an int, or a derived leaf
// count beyond the simulator's supported bound.
var ErrOverflow = errors.New("arithmetic overflow")

// Depth returns the depth of a node in a binary tree indexed from 1 (the
// root has depth 0, children of i are 2i and 2i+1). Non-positive indices
// return -1.
func Depth(index int) int {
	if index <= 0 {
		return -1
	}
	return bits.Len(uint(index)) - 1
}

// pow2 returns 2^n, 0 for negative n, or ErrOverflow when the result
// would not fit in an int.
func pow2(n int) (int, error) {
	if n < 0 {
		return 0, nil
	}
	if n >= 63 {
		return 0, fmt.Errorf("2^%d: %w", n, ErrOverflow)
	}
	return 1 << n, nil
}

// LevelBounds returns the smallest and largest node indices at the given
// relative depth below rootIndex. Invalid arguments return (-1, -1).
func LevelBounds(rootIndex, depth int) (int, int) {
	if rootIndex <= 0 || depth < 0 || depth >= 63 {
		return -1, -1
	}
	left := rootIndex << depth
	return left, left + (1 << depth) - 1
}

// InSubtree reports whether leafIndex lies in the subtree rooted at
// rootIndex.
func InSubtree(rootIndex, leafIndex int) bool {
	if rootIndex <= 0 || leafIndex <= 0 {
		return false
	}
	relative := Depth(leafIndex) - Depth(rootIndex)
	if relative < 0 {
		return false
	}
	left, right := LevelBounds(rootIndex, relative)
	return leafIndex >= left && leafIndex <= right
}
