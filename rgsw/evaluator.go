package rgsw

import (
	"github.com/Pro7ech/ringpir/ring"
	"github.com/Pro7ech/ringpir/rlwe"
)

// ExternalProduct evaluates ct boxtimes gsw: digit-decompose ct's A and B
// into ell+ell polynomials, then take the inner product against gsw's
// matrix rows in NTT domain (component K). ct must be in NTT form; the
// result is returned in NTT form.
func ExternalProduct(ct *rlwe.Ciphertext, gsw *Ciphertext) *rlwe.Ciphertext {
	rr := gsw.Rings

	aCoef := rr.NewRNSPoly(ring.Coef)
	bCoef := rr.NewRNSPoly(ring.Coef)
	rr.Backward(ct.A, aCoef)
	rr.Backward(ct.B, bCoef)

	digitsA := rlwe.Decompose(rr, aCoef, gsw.Log2Basis, len(gsw.SW))
	digitsB := rlwe.Decompose(rr, bCoef, gsw.Log2Basis, len(gsw.W))

	outB := rr.NewRNSPoly(ring.NTT)
	outA := rr.NewRNSPoly(ring.NTT)

	for l, d := range digitsA {
		dNTT := rr.NewRNSPoly(ring.NTT)
		rr.Forward(d, dNTT)
		rr.MulCoeffsNTTThenAdd(dNTT, gsw.SW[l].B, outB)
		rr.MulCoeffsNTTThenAdd(dNTT, gsw.SW[l].A, outA)
	}
	for l, d := range digitsB {
		dNTT := rr.NewRNSPoly(ring.NTT)
		rr.Forward(d, dNTT)
		rr.MulCoeffsNTTThenAdd(dNTT, gsw.W[l].B, outB)
		rr.MulCoeffsNTTThenAdd(dNTT, gsw.W[l].A, outA)
	}

	return &rlwe.Ciphertext{Rings: rr, B: outB, A: outA}
}
