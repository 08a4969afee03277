package sampler

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrSizeNotFound reports a Decrement for a subtree size that is absent
// from the configuration. The simulator only ever decrements sizes it just
// iterated over, so this surfacing indicates corrupted bookkeeping rather
// than bad user input.
var ErrSizeNotFound = errors.New("subtree size not present in configuration")

// SizeCount is one entry of a Config: Count pending subtrees of Size
// leaves each.
type SizeCount struct {
	Size  int
	Count int
}

// Config is a canonical population of pending subtrees. Entries are
// strictly ascending by Size, sizes are distinct, and counts are positive;
// the zero Config is valid and means "no pending subtrees". Configs are
// immutable values: every operation returns a new Config, so a Config
// already keying a Distribution never changes identity.
type Config struct {
	entries []SizeCount
}

// NewConfig builds a canonical Config from the given pairs. Entries with a
// non-positive count are dropped. Pairs are sorted, not merged: callers
// must supply at most one entry per size (Combine merges).
func NewConfig(pairs []SizeCount) Config {
	entries := make([]SizeCount, 0, len(pairs))
	for _, p := range pairs {
		if p.Count > 0 {
			entries = append(entries, p)
		}
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Size < entries[j].Size })
	return Config{entries: entries}
}

// Singleton returns the Config holding count subtrees of the given size.
func Singleton(size, count int) Config {
	return NewConfig([]SizeCount{{Size: size, Count: count}})
}

// Len returns the number of distinct subtree sizes.
func (c Config) Len() int {
	return len(c.entries)
}

// Entries returns a copy of the configuration's entries in ascending size
// order.
func (c Config) Entries() []SizeCount {
	out := make([]SizeCount, len(c.entries))
	copy(out, c.entries)
	return out
}

// Key returns the canonical string form used to key Distributions. Two
// Configs describe the same population exactly when their keys are equal.
func (c Config) Key() string {
	var b strings.Builder
	for i, e := range c.entries {
		if i > 0 {
			b.WriteByte(',')
		}
		fmt.Fprintf(&b, "%d:%d", e.Size, e.Count)
	}
	return b.String()
}

func (c Config) String() string {
	return "{" + c.Key() + "}"
}

// TotalCount sums the subtree counts across all entries. This is the node
// count the histogram aggregates over.
func (c Config) TotalCount() int {
	total := 0
	for _, e := range c.entries {
		total += e.Count
	}
	return total
}

// TotalLeaves sums size*count across all entries. Split events conserve
// this quantity, so every Config reachable from Sample(n, steps) has
// TotalLeaves() == n.
func (c Config) TotalLeaves() int {
	total := 0
	for _, e := range c.entries {
		total += e.Size * e.Count
	}
	return total
}

// Combine merges two configurations, summing counts for shared sizes and
// unioning the rest. The result is canonical.
func (c Config) Combine(other Config) Config {
	merged := make([]SizeCount, 0, len(c.entries)+len(other.entries))
	i, j := 0, 0
	for i < len(c.entries) && j < len(other.entries) {
		a, b := c.entries[i], other.entries[j]
		switch {
		case a.Size < b.Size:
			merged = append(merged, a)
			i++
		case a.Size > b.Size:
			merged = append(merged, b)
			j++
		default:
			merged = append(merged, SizeCount{Size: a.Size, Count: a.Count + b.Count})
			i++
			j++
		}
	}
	merged = append(merged, c.entries[i:]...)
	merged = append(merged, other.entries[j:]...)
	return Config{entries: merged}
}

// Decrement reduces the count for the given size by one, removing the
// entry entirely when it reaches zero. It returns ErrSizeNotFound when the
// size is absent.
func (c Config) Decrement(size int) (Config, error) {
	idx := sort.Search(len(c.entries), func(i int) bool { return c.entries[i].Size >= size })
	if idx == len(c.entries) || c.entries[idx].Size != size {
		return Config{}, fmt.Errorf("decrement size %d in %s: %w", size, c, ErrSizeNotFound)
	}
	entries := make([]SizeCount, 0, len(c.entries))
	entries = append(entries, c.entries[:idx]...)
	if c.entries[idx].Count > 1 {
		entries = append(entries, SizeCount{Size: size, Count: c.entries[idx].Count - 1})
	}
	entries = append(entries, c.entries[idx+1:]...)
	return Config{entries: entries}, nil
}
