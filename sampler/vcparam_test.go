package sampler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeriveVCParams_InvalidTau(t *testing.T) {
	for _, tau := range []int{0, -1, -40} {
		params, ok := DeriveVCParams(32, tau)
		assert.False(t, ok, "tau %d", tau)
		assert.Equal(t, VCParams{}, params)
	}
}

func TestDeriveVCParams_Divisible(t *testing.T) {
	// csp divisible by tau: t0 = 0, both exponents collapse to csp/tau.
	params, ok := DeriveVCParams(40, 8)
	require.True(t, ok)
	assert.Equal(t, VCParams{T0: 0, K0: 5, T1: 8, K1: 5}, params)
	assert.Equal(t, 40, params.TOpen())

	leaves, err := params.LeafCount()
	require.NoError(t, err)
	assert.Equal(t, 256, leaves)
}

func TestDeriveVCParams_NonDivisible(t *testing.T) {
	params, ok := DeriveVCParams(45, 8)
	require.True(t, ok)
	assert.Equal(t, VCParams{T0: 5, K0: 6, T1: 3, K1: 5}, params)
	assert.Equal(t, 45, params.TOpen())

	leaves, err := params.LeafCount()
	require.NoError(t, err)
	assert.Equal(t, 416, leaves)
}

func TestDeriveVCParams_LargeBudget(t *testing.T) {
	params, ok := DeriveVCParams(312, 40)
	require.True(t, ok)
	assert.Equal(t, VCParams{T0: 32, K0: 8, T1: 8, K1: 7}, params)
	assert.Equal(t, 312, params.TOpen())

	leaves, err := params.LeafCount()
	require.NoError(t, err)
	assert.Equal(t, 9216, leaves)
}

func TestVCParams_TOpenIdentity(t *testing.T) {
	// t0*k0 + t1*k1 == csp exactly, for every (csp, tau)
	for csp := 0; csp <= 128; csp++ {
		for tau := 1; tau <= 24; tau++ {
			params, ok := DeriveVCParams(csp, tau)
			require.True(t, ok)
			assert.Equal(t, csp, params.TOpen(), "csp=%d tau=%d", csp, tau)
		}
	}
}

func TestVCParams_LeafCountOverflow(t *testing.T) {
	// tau = 1 gives k1 = csp, so a large budget pushes the leaf count
	// past the representable range.
	params, ok := DeriveVCParams(70, 1)
	require.True(t, ok)

	_, err := params.LeafCount()

	assert.ErrorIs(t, err, ErrOverflow)
}

func TestRoundToByte(t *testing.T) {
	cases := []struct{ n, want int }{
		{0, 0},
		{1, 8},
		{8, 8},
		{9, 16},
		{15, 16},
		{16, 16},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, RoundToByte(c.n), "n=%d", c.n)
	}
}

func TestNodeCountHistogram_InvalidTau(t *testing.T) {
	hist, err := NodeCountHistogram(40, 0)
	require.NoError(t, err)
	assert.Empty(t, hist)
}

func TestNodeCountHistogram_SmallPipeline(t *testing.T) {
	// csp=6, tau=2 derives L=16, and two split events over 16 leaves have
	// a known exact histogram (see TestHistogram_SixteenLeavesTwoSteps).
	params, ok := DeriveVCParams(6, 2)
	require.True(t, ok)
	leaves, err := params.LeafCount()
	require.NoError(t, err)
	require.Equal(t, 16, leaves)

	hist, err := NodeCountHistogram(6, 2)
	require.NoError(t, err)

	require.Len(t, hist, 4)
	assert.InDelta(t, 1.0, hist.TotalMass(), massTol)
	assert.InDelta(t, 79.0/15.0, hist.Expectation(), massTol)
}

func TestNodeCountHistogram_Overflow(t *testing.T) {
	_, err := NodeCountHistogram(70, 1)
	assert.ErrorIs(t, err, ErrOverflow)
}
