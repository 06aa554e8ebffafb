package pir

import (
	"testing"

	"github.com/Pro7ech/ringpir/ring"
	"github.com/Pro7ech/ringpir/rlwe"
	"github.com/stretchr/testify/require"
)

// TestOrbitSlotIsConsistentAcrossModuli checks the claim database.go and
// query.go both rely on: OrbitSlot depends only on the ring degree, not the
// modulus, so the same position table can be reused across q1Ring, q2Ring
// and bsRing.
func TestOrbitSlotIsConsistentAcrossModuli(t *testing.T) {
	ps, err := NewParameterSet(256)
	require.NoError(t, err)

	ord := ps.N1 * ps.N2
	for p := 0; p < ord; p++ {
		want := OrbitSlot(ps.Q1Ring, p)
		require.Equal(t, want, OrbitSlot(ps.Q2Ring, p))
		require.Equal(t, want, OrbitSlot(ps.BsRing, p))
	}
}

// TestOrbitSlotIsInjective checks that distinct orbit positions land on
// distinct NTT slots, which the one-hot query encoding depends on.
func TestOrbitSlotIsInjective(t *testing.T) {
	ps, err := NewParameterSet(256)
	require.NoError(t, err)

	ord := ps.N1 * ps.N2
	seen := make(map[int]bool, ord)
	for p := 0; p < ord; p++ {
		slot := OrbitSlot(ps.Q1Ring, p)
		require.False(t, seen[slot], "slot %d reused at position %d", slot, p)
		seen[slot] = true
	}
}

// TestQueryBSGSRNSDecryptsToOneHot checks the client's query ciphertext
// decrypts, at NTT slots, to the scaled one-hot vector QueryBSGSRNS claims
// to build.
func TestQueryBSGSRNSDecryptsToOneHot(t *testing.T) {
	ps, err := NewParameterSet(256)
	require.NoError(t, err)

	client := NewClient(ps)
	t0 := 7
	ct := client.Query(t0)

	sCrt := client.crtSecret()
	raw := rlwe.DecryptBSGS(sCrt, ct)

	basis := ring.NewCRTBasis(ps.Q1Ring.Modulus, ps.Q2Ring.Modulus)
	crtModulus := ring.NewModulus(ps.CrtMod)

	ord := ps.N1 * ps.N2
	for p := 0; p < ord; p++ {
		slot := OrbitSlot(ps.Q1Ring, p)
		w := basis.Lift(raw[0].Coeffs[slot], raw[1].Coeffs[slot])
		got := roundSlot(w, crtModulus, ps)
		if p == t0 {
			require.Equal(t, uint64(1), got, "slot %d", slot)
		} else {
			require.Equal(t, uint64(0), got, "slot %d", slot)
		}
	}
}
