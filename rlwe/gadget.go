package rlwe

import (
	"math/big"

	"github.com/Pro7ech/ringpir/ring"
)

// Decompose extracts an ell-vector of digit polynomials d0..d_{ell-1} from
// a, in base 2^log2Basis, such that sum d_i * base^i = a (mod the RNSRing's
// joint modulus), with each digit centered in (-base/2, base/2]. The
// equality holds only when ell*log2Basis bits cover the joint modulus: the
// digits are taken from the low end, and whatever is left above the last
// digit is dropped. This is
// the CRT variant of component E: when len(a) > 1, each coefficient is
// first CRT-lifted across all residues to one big.Int before digit
// extraction, so that the same digit is simultaneously valid against every
// residue — required for RGSW-under-RNS and for the BSGS switching keys.
func Decompose(rr ring.RNSRing, a ring.RNSPoly, log2Basis, ell int) []ring.RNSPoly {
	N := rr[0].N
	digits := make([]ring.RNSPoly, ell)
	for i := range digits {
		digits[i] = rr.NewRNSPoly(ring.Coef)
	}

	base := new(big.Int).Lsh(big.NewInt(1), uint(log2Basis))
	halfBase := new(big.Int).Rsh(base, 1)

	moduli := make([]*big.Int, len(rr))
	joint := big.NewInt(1)
	for i, r := range rr {
		moduli[i] = new(big.Int).SetUint64(r.Modulus.Q)
		joint.Mul(joint, moduli[i])
	}
	halfJoint := new(big.Int).Rsh(joint, 1)

	// precompute CRT coefficients: c_i = (joint/m_i) * ((joint/m_i)^-1 mod m_i)
	crtCoeff := make([]*big.Int, len(rr))
	for i := range rr {
		qi := new(big.Int).Div(joint, moduli[i])
		inv := new(big.Int).ModInverse(new(big.Int).Mod(qi, moduli[i]), moduli[i])
		crtCoeff[i] = new(big.Int).Mul(qi, inv)
	}

	acc := new(big.Int)
	tmp := new(big.Int)
	digit := new(big.Int)
	for k := 0; k < N; k++ {
		acc.SetInt64(0)
		for i := range rr {
			tmp.SetUint64(a[i].Coeffs[k])
			tmp.Mul(tmp, crtCoeff[i])
			acc.Add(acc, tmp)
		}
		acc.Mod(acc, joint)
		if acc.Cmp(halfJoint) > 0 {
			acc.Sub(acc, joint)
		}

		for d := 0; d < ell; d++ {
			digit.Mod(acc, base)
			if digit.Sign() < 0 {
				digit.Add(digit, base)
			}
			if digit.Cmp(halfBase) > 0 {
				digit.Sub(digit, base)
			}
			acc.Sub(acc, digit)
			acc.Rsh(acc, uint(log2Basis))

			for i, r := range rr {
				digits[d][i].Coeffs[k] = r.Modulus.FromCentered(digit.Int64())
			}
		}
	}

	return digits
}

// Reconstruct is the inverse of Decompose, used only as a round-trip test
// oracle (per spec §4.E): sum d_i * base^i, recombined independently on
// every residue (no CRT lift needed in this direction, since each residue's
// digit is already valid mod that residue).
func Reconstruct(rr ring.RNSRing, digits []ring.RNSPoly, log2Basis int) ring.RNSPoly {
	N := rr[0].N
	out := rr.NewRNSPoly(ring.Coef)

	for i, r := range rr {
		scale := uint64(1)
		for d := range digits {
			for k := 0; k < N; k++ {
				out[i].Coeffs[k] = r.Modulus.Add(out[i].Coeffs[k], r.Modulus.Mul(digits[d][i].Coeffs[k], scale))
			}
			scale = r.Modulus.Mul(scale, r.Modulus.Pow(2, uint64(log2Basis)))
		}
	}
	return out
}
