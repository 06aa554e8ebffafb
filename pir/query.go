package pir

import (
	"github.com/Pro7ech/ringpir/ring"
	"github.com/Pro7ech/ringpir/rlwe"
)

// OrbitSlot returns, for an orbit position p in [0, ps.N1*ps.N2), the NTT
// slot reached by the p-th power of the Galois generator: the slot
// evaluating at GaloisGen^p mod 2N. The query encoder (component H) places
// its one-hot value there; the database preprocessor (component I) lays
// its diagonals out at the same slots, so a baby/giant-step automorphism
// schedule built from the same generator moves both in lockstep.
func OrbitSlot(r *ring.Ring, p int) int {
	twoN := uint64(2 * r.N)
	e := modPow(ring.GaloisGen, uint64(p), twoN)
	return r.SlotForExponent(e)
}

// QueryBSGSRNS builds the client's encrypted query for target orbit
// position t in [0, N1*N2), which the BSGS core (component J) resolves to
// database row/diagonal coordinates. The query is a single one-hot
// NTT-domain ciphertext over ps.FullRing ([q1, q2, bsMod]): the crtMod
// residues carry the value scaled by ps.Delta, the bsMod residue carries
// the value scaled by floor(bsMod/p), each independently consistent with
// the plaintext modulus p on its own modulus, so that the later modulus
// switch (component M) can combine them.
func QueryBSGSRNS(s *rlwe.Secret, t int, ps *ParameterSet) *rlwe.Ciphertext {
	mNTT := ps.FullRing.NewRNSPoly(ring.NTT)
	for idx, r := range ps.FullRing {
		slot := OrbitSlot(r, t)
		var delta uint64
		if idx < 2 {
			delta = ps.Delta
		} else {
			delta = ps.BsMod / ps.P
		}
		mNTT[idx] = r.OneHotNTT(slot, delta)
	}
	return rlwe.EncryptRNSBSGS(s, mNTT, 1)
}
