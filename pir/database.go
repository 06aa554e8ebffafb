package pir

import "github.com/Pro7ech/ringpir/ring"

// DatabaseBuffer is the server's preprocessed form of one or more plaintext
// matrices (component I). Each matrix is ord x ord, ord = N1*N2 = N/2 —
// the order of the Galois-generator subgroup the BSGS automorphism
// schedule walks — and the caller supplies ps.R independent matrices
// ("blocks"), each of which the BSGS core (component J) folds into its own
// RLWE output; Ext packing (component L) then combines the R outputs.
//
// For each block, diagonal d holds, per orbit position (row) p, the value
// M[p][(p+d) mod ord] (the "diagonalize" step), sign-centered around p/2,
// lifted to NTT domain by placing each row's value at the NTT slot
// OrbitSlot(p), and finally pre-rotated by the inverse giant-step
// automorphism so the BSGS inner loop (component J) is a direct
// pointwise multiply-accumulate with no further permutation.
type DatabaseBuffer struct {
	ps  *ParameterSet
	ord int
	// diag[block][g][b] = sigma_{GiantExp(g)^-1}(D_{b + N1*g}), NTT-domain,
	// over ps.FullRing.
	diag [][][]ring.RNSPoly
}

// NumBlocks returns the number of independent ord x ord matrices this
// buffer holds (len(blocks) as passed to PreprocessDatabase).
func (db *DatabaseBuffer) NumBlocks() int {
	return len(db.diag)
}

// Slot centralizes access to the raw preprocessed layout (spec §9's
// design note: "wrap it in a value type that exposes
// slot(block, row, coeff) -> (residue_q1, residue_q2) so indexing is
// centralized"). Unlike that literal signature, the value returned is
// the full per-(giant-step, baby-step) diagonal polynomial over
// ps.FullRing (q1, q2, bsMod), not just a (residue_q1, residue_q2)
// pair: the BSGS core (matrixVectorMulBSGSRNSCRT) accumulates against
// every FullRing residue at once, so a two-residue accessor would force
// it to re-derive the bsMod residue some other way. Callers that only
// want the (q1, q2) pair at one NTT slot read Coeffs[coeff] off index
// 0 and 1 of the returned polynomial.
func (db *DatabaseBuffer) Slot(block, g, b int) ring.RNSPoly {
	return db.diag[block][g][b]
}

// PreprocessDatabase builds a DatabaseBuffer from stacked ord x ord
// plaintext matrices with entries in [0, ps.P), one block per matrix;
// len(blocks) is not checked against ps.R.
func PreprocessDatabase(ps *ParameterSet, blocks [][][]uint64) *DatabaseBuffer {
	ord := ps.N1 * ps.N2
	twoN := uint64(2 * ps.N)

	orbitSlot := make([]int, ord)
	for p := 0; p < ord; p++ {
		orbitSlot[p] = OrbitSlot(ps.FullRing[0], p)
	}

	halfP := int64(ps.P / 2)
	center := func(v uint64) int64 {
		c := int64(v % ps.P)
		if c > halfP {
			c -= int64(ps.P)
		}
		return c
	}

	buildDiag := func(m [][]uint64, d int) ring.RNSPoly {
		out := ps.FullRing.NewRNSPoly(ring.NTT)
		for idx, r := range ps.FullRing {
			for p := 0; p < ord; p++ {
				v := center(m[p][(p+d)%ord])
				out[idx].Coeffs[orbitSlot[p]] = r.Modulus.FromCentered(v)
			}
		}
		return out
	}

	giantInvTbl := make([]*ring.AutomorphismNTTIndex, ps.N2)
	for g := 0; g < ps.N2; g++ {
		giantExp := modPow(ring.GaloisGen, uint64(ps.N1*g), twoN)
		giantInv := invModPow2(giantExp, twoN)
		giantInvTbl[g] = ps.FullRing[0].GenAutomorphismNTTIndex(giantInv)
	}

	db := &DatabaseBuffer{ps: ps, ord: ord, diag: make([][][]ring.RNSPoly, len(blocks))}

	for bi, m := range blocks {
		diags := make([]ring.RNSPoly, ord)
		for d := 0; d < ord; d++ {
			diags[d] = buildDiag(m, d)
		}

		block := make([][]ring.RNSPoly, ps.N2)
		for g := 0; g < ps.N2; g++ {
			block[g] = make([]ring.RNSPoly, ps.N1)
			for b := 0; b < ps.N1; b++ {
				d := b + ps.N1*g
				rotated := ps.FullRing.NewRNSPoly(ring.NTT)
				for idx, r := range ps.FullRing {
					r.AutomorphismNTT(diags[d][idx], giantInvTbl[g], rotated[idx])
				}
				block[g][b] = rotated
			}
		}
		db.diag[bi] = block
	}

	return db
}
