package pir

import (
	"testing"

	"github.com/Pro7ech/ringpir/ring"
	"github.com/Pro7ech/ringpir/rlwe"
	"github.com/stretchr/testify/require"
)

// TestModulusSwitchPreservesOneHot checks that switching a FullRing
// ([q1, q2, bsMod]) one-hot query ciphertext down to CrtRing ([q1, q2])
// still decrypts, per slot, to the same one-hot vector.
func TestModulusSwitchPreservesOneHot(t *testing.T) {
	ps, err := NewParameterSet(256)
	require.NoError(t, err)

	client := NewClient(ps)
	t0 := 11
	ct := client.Query(t0)

	switched := ModulusSwitch(ct, ps)
	require.Equal(t, ps.CrtRing, switched.Rings)

	sCrt := client.crtSecret()
	raw := rlwe.DecryptBSGS(sCrt, switched)

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
