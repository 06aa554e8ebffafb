package rlwe

import "github.com/Pro7ech/ringpir/ring"

// Automorphism evaluates sigma_i on ctIn and key-switches the result back
// under the original secret, writing into ctOut. Follows the state machine
// fixed by component G: (ntt) -> force-coef -> permute -> digit-decompose
// -> inner-product-in-ntt -> ntt. ctIn must be in NTT form; ctOut is left
// in NTT form. key must have been generated for exactly index i: callers
// always look it up by index (BabyStep[j]/GiantStep[k]/the packing key), so
// a mismatch would be a caller bug, not a runtime condition to guard here.
func Automorphism(ctIn *Ciphertext, i uint64, key *AutoKey, ctOut *Ciphertext) {
	rr := ctIn.Rings

	tbl := make([]*ring.AutomorphismIndex, len(rr))
	for idx, r := range rr {
		tbl[idx] = r.GenAutomorphismIndex(i)
	}

	// force-coef
	bCoef := rr.NewRNSPoly(ring.Coef)
	aCoef := rr.NewRNSPoly(ring.Coef)
	rr.Backward(ctIn.B, bCoef)
	rr.Backward(ctIn.A, aCoef)

	// permute
	sigmaB := rr.NewRNSPoly(ring.Coef)
	sigmaA := rr.NewRNSPoly(ring.Coef)
	for idx, r := range rr {
		r.Automorphism(bCoef[idx], tbl[idx], sigmaB[idx])
		r.Automorphism(aCoef[idx], tbl[idx], sigmaA[idx])
	}

	// digit-decompose sigma_i(a)
	digits := Decompose(rr, sigmaA, key.Log2Basis, len(key.A))

	// inner-product-in-ntt: (bOut, aOut) = sum_l digit_l * (key.B[l], key.A[l])
	bOutNTT := rr.NewRNSPoly(ring.NTT)
	aOutNTT := rr.NewRNSPoly(ring.NTT)
	for l := range digits {
		digitNTT := rr.NewRNSPoly(ring.NTT)
		rr.Forward(digits[l], digitNTT)
		rr.MulCoeffsNTTThenAdd(digitNTT, key.B[l], bOutNTT)
		rr.MulCoeffsNTTThenAdd(digitNTT, key.A[l], aOutNTT)
	}

	// add (sigma_i(b), 0)
	sigmaBNTT := rr.NewRNSPoly(ring.NTT)
	rr.Forward(sigmaB, sigmaBNTT)

	rr.Add(bOutNTT, sigmaBNTT, ctOut.B)
	ctOut.A.CopyFrom(aOutNTT)
}
