package sampler

import (
	"fmt"
	"math"
)

// VCParams is the decomposition of a cost budget csp over a quantization
// parameter tau: K0 = ceil(csp/tau), K1 = floor(csp/tau), T0 = csp mod
// tau, T1 = tau - T0. The identity T0*K0 + T1*K1 == csp holds exactly.
type VCParams struct {
	T0 int
	K0 int
	T1 int
	K1 int
}

// DeriveVCParams decomposes (csp, tau). It returns the zero value and
// false when tau <= 0.
func DeriveVCParams(csp, tau int) (VCParams, bool) {
	if tau <= 0 {
		return VCParams{}, false
	}
	t0 := csp % tau
	k1 := csp / tau
	k0 := k1
	if t0 != 0 {
		k0 = k1 + 1
	}
	return VCParams{T0: t0, K0: k0, T1: tau - t0, K1: k1}, true
}

// LeafCount returns the initial leaf population T0*2^K0 + T1*2^K1 the
// simulator starts from, or ErrOverflow when it exceeds the representable
// range.
func (p VCParams) LeafCount() (int, error) {
	total := int64(0)
	for _, part := range []struct{ t, k int }{{p.T0, p.K0}, {p.T1, p.K1}} {
		size, err := pow2(part.k)
		if err != nil {
			return 0, err
		}
		if part.t != 0 && int64(size) > (math.MaxInt64-total)/int64(part.t) {
			return 0, fmt.Errorf("leaf count %d*2^%d + ...: %w", part.t, part.k, ErrOverflow)
		}
		total += int64(part.t) * int64(size)
	}
	return int(total), nil
}

// TOpen returns T0*K0 + T1*K1, which equals csp by construction.
func (p VCParams) TOpen() int {
	return p.T0*p.K0 + p.T1*p.K1
}

// RoundToByte rounds n up to the nearest multiple of 8.
func RoundToByte(n int) int {
	return (n + 7) / 8 * 8
}

// NodeCountHistogram runs the canonical pipeline: derive VC parameters,
// expand them into the initial leaf count, simulate tau split events, and
// project the result onto node counts. Invalid parameters (tau <= 0, or a
// derived leaf count of zero) yield an empty histogram; an unrepresentable
// leaf count is an error.
func NodeCountHistogram(csp, tau int) (Histogram, error) {
	params, ok := DeriveVCParams(csp, tau)
	if !ok {
		return Histogram{}, nil
	}
	leaves, err := params.LeafCount()
	if err != nil {
		return nil, err
	}
	if leaves <= 0 {
		return Histogram{}, nil
	}
	dist, err := Sample(leaves, tau)
	if err != nil {
		return nil, err
	}
	return NewHistogram(dist), nil
}
