package pir

import (
	"testing"

	"github.com/Pro7ech/ringpir/ring"
	"github.com/stretchr/testify/require"
)

// TestParameterSetEqual checks two independently-constructed parameter
// sets for the same N compare equal, and that overriding N1 breaks that
// equality.
func TestParameterSetEqual(t *testing.T) {
	a, err := NewParameterSet(256)
	require.NoError(t, err)
	b, err := NewParameterSet(256)
	require.NoError(t, err)

	require.True(t, a.Equal(b))

	c, err := b.WithN1(a.N1 * 2)
	require.NoError(t, err)
	require.False(t, a.Equal(c))
}

// TestBigModRingRoundTrips checks that the legacy single-modulus path's
// ring (bigMod, 50 bits) carries a working NTT, per component B's
// correctness contract over {q1, q2, bsMod, auxMod, bigMod, crtMod} — this
// module never runs the legacy path's query/answer algorithm over it, but
// the kernel itself must still be correct for that modulus.
func TestBigModRingRoundTrips(t *testing.T) {
	ps, err := NewParameterSet(256)
	require.NoError(t, err)

	r := ps.BigModRing
	require.Equal(t, ps.BigMod, r.Modulus.Q)

	a := ring.NewPolyCoef(ps.N)
	for i := range a.Coeffs {
		a.Coeffs[i] = uint64(i*11+5) % ps.BigMod
	}

	ntt := ring.NewPolyNTT(ps.N)
	r.Forward(a, ntt)

	back := ring.NewPolyCoef(ps.N)
	r.Backward(ntt, back)

	require.Equal(t, a.Coeffs, back.Coeffs)
}
