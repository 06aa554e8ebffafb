package pir

import (
	"github.com/Pro7ech/ringpir/ring"
	"github.com/Pro7ech/ringpir/rlwe"
	"github.com/Pro7ech/ringpir/utils/structs"
)

// Client owns the secret for the lifetime of key generation and then,
// per spec §3's lifecycle invariant ("after creation the secret is no
// longer needed by the server"), is the only party that keeps it.
type Client struct {
	ps *ParameterSet
	s  *rlwe.Secret
}

// NewClient draws a fresh secret over ps.FullRing.
func NewClient(ps *ParameterSet) *Client {
	return &Client{ps: ps, s: rlwe.NewSecret(ps.FullRing)}
}

// AutoKeys builds the BSGS switching-key family (component G) the server
// needs to run the matrix-vector core. Handed to the server once, at
// setup.
func (c *Client) AutoKeys() *rlwe.AutoKeyBSGSRNS {
	return rlwe.GenAutoKeyBSGSRNS(c.s, c.ps.N1, c.ps.N2, c.ps.Log2Basis, c.ps.Ell)
}

// PackingKeys builds the recursive-halving key family component L needs.
func (c *Client) PackingKeys() map[int]*rlwe.AutoKey {
	return GenPackingKeys(c.s, c.ps.R, c.ps.Log2Basis, c.ps.Ell)
}

// Query builds the encrypted one-hot query for orbit position t.
func (c *Client) Query(t int) *rlwe.Ciphertext {
	return QueryBSGSRNS(c.s, t, c.ps)
}

// crtSecret returns the sub-secret over ps.CrtRing: ps.FullRing's first
// two residues (q1, q2) are exactly ps.CrtRing, so this is a slice, not a
// new sample, preserving the RNS consistency invariant.
func (c *Client) crtSecret() *rlwe.Secret {
	return &rlwe.Secret{Rings: c.ps.CrtRing, Value: c.s.Value[:2]}
}

// Recover decrypts the server's per-block answers at every orbit slot,
// returning, for each block, the ord values M[p][t] the BSGS core
// selected (spec §8: "the BSGS output decrypts to M[*, u]"). Decryption
// happens directly at NTT slots (DecryptBSGS), per the design decision
// that BSGS intermediate/final results are read in slot domain rather
// than synthesized into a coefficient-domain polynomial. The q1/q2
// residue pair at each slot is CRT-lifted into the full crtMod-domain
// integer before rounding: the message-bearing value spans both limbs
// (ps.Delta = CrtMod/P is far larger than Q1 alone), so neither residue
// alone carries enough information to round correctly.
func (c *Client) Recover(answers []*rlwe.Ciphertext) []structs.Vector[uint64] {
	sCrt := c.crtSecret()
	ord := c.ps.N1 * c.ps.N2
	basis := ring.NewCRTBasis(c.ps.Q1Ring.Modulus, c.ps.Q2Ring.Modulus)
	crtModulus := ring.NewModulus(c.ps.CrtMod)

	out := make([]structs.Vector[uint64], len(answers))
	for bi, ct := range answers {
		raw := rlwe.DecryptBSGS(sCrt, ct)
		row := make(structs.Vector[uint64], ord)
		for p := 0; p < ord; p++ {
			slot := OrbitSlot(c.ps.CrtRing[0], p)
			w := basis.Lift(raw[0].Coeffs[slot], raw[1].Coeffs[slot])
			row[p] = roundSlot(w, crtModulus, c.ps)
		}
		out[bi] = row
	}
	return out
}

// roundSlot rounds a crtMod-domain integer w by ps.Delta, same
// round-half-away-from-zero convention as rlwe.Decrypt's roundDiv,
// centering via crtModulus before dividing, reduced into [0, P).
func roundSlot(w uint64, crtModulus ring.Modulus, ps *ParameterSet) uint64 {
	c := crtModulus.Center(w)
	d := int64(ps.Delta)
	var qt int64
	if c >= 0 {
		qt = (c + d/2) / d
	} else {
		qt = (c - d/2) / d
	}
	qt = ((qt % int64(ps.P)) + int64(ps.P)) % int64(ps.P)
	return uint64(qt)
}
