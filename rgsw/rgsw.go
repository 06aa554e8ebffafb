package rgsw

import (
	"github.com/Pro7ech/ringpir/ring"
	"github.com/Pro7ech/ringpir/rlwe"
)

// Ciphertext is a gadget-encoded encryption of a small plaintext w: ell rows
// of encryptions of base^l * s * w, followed by ell rows of encryptions of
// base^l * w (spec's "2ell x 2 matrix of polynomials"). Rows are stored as
// NTT-domain RLWE pairs so ExternalProduct never has to convert form.
type Ciphertext struct {
	Rings     ring.RNSRing
	Log2Basis int
	// SW holds the "s*w" rows, W holds the "w" rows; each has length ell.
	SW, W []*rlwe.Ciphertext
}

// Encrypt builds an RGSW encryption of w (a small plaintext, e.g. the
// monomial coefficient X^{-row} used by component K for row selection)
// under secret s, with decomposition base 2^log2Basis and length ell.
func Encrypt(s *rlwe.Secret, w ring.RNSPoly, log2Basis, ell int) *Ciphertext {
	rr := s.Rings
	N := rr[0].N

	base := uint64(1) << uint(log2Basis)

	// sw = s*w mod X^N+1, computed as a genuine ring product (NTT
	// pointwise multiply), not a per-coefficient Hadamard product: w is
	// in general a full-degree polynomial (e.g. the monomial X^{-row}
	// component K encodes row selection with), and only convolution
	// reproduces s(X)*w(X) mod X^N+1.
	sNTT := rr.NewRNSPoly(ring.NTT)
	rr.Forward(s.Value, sNTT)

	wNTT := rr.NewRNSPoly(ring.NTT)
	rr.Forward(w, wNTT)

	swNTT := rr.NewRNSPoly(ring.NTT)
	rr.MulCoeffsNTT(sNTT, wNTT, swNTT)

	sw := rr.NewRNSPoly(ring.Coef)
	rr.Backward(swNTT, sw)

	ct := &Ciphertext{Rings: rr, Log2Basis: log2Basis, SW: make([]*rlwe.Ciphertext, ell), W: make([]*rlwe.Ciphertext, ell)}

	scale := make([]uint64, len(rr)) // base^l mod each residue's modulus
	for idx := range scale {
		scale[idx] = 1
	}
	for l := 0; l < ell; l++ {
		scaledSW := rr.NewRNSPoly(ring.Coef)
		scaledW := rr.NewRNSPoly(ring.Coef)
		for idx, r := range rr {
			sc := scale[idx]
			for k := 0; k < N; k++ {
				scaledSW[idx].Coeffs[k] = r.Modulus.Mul(sw[idx].Coeffs[k], sc)
				scaledW[idx].Coeffs[k] = r.Modulus.Mul(w[idx].Coeffs[k], sc)
			}
		}

		ct.SW[l] = rlwe.Encrypt(s, scaledSW, 1)
		ct.W[l] = rlwe.Encrypt(s, scaledW, 1)

		for idx, r := range rr {
			scale[idx] = r.Modulus.Mul(scale[idx], base)
		}
	}

	return ct
}
