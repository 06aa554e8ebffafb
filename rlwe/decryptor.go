package rlwe

import "github.com/Pro7ech/ringpir/ring"

// Decrypt computes B + A*S, converts to Coef form, and rounds by delta to
// recover the plaintext: round(coeff * p / q) with p the plaintext modulus
// implied by delta = floor(q/p).
func Decrypt(s *Secret, c *Ciphertext, delta uint64) ring.RNSPoly {
	raw := DecryptRaw(s, c)
	out := s.Rings.NewRNSPoly(ring.Coef)
	for idx, r := range s.Rings {
		q := r.Modulus.Q
		d := delta % q
		for k := range raw[idx].Coeffs {
			out[idx].Coeffs[k] = roundDiv(raw[idx].Coeffs[k], d, q)
		}
	}
	return out
}

// DecryptRaw computes B + A*S in Coef form without rounding; used by
// DecryptBSGS/DecryptBSGSTotal and by noise estimation, which both need the
// unrounded residual.
func DecryptRaw(s *Secret, c *Ciphertext) ring.RNSPoly {
	rr := s.Rings
	sNTT := s.NTT()

	asNTT := rr.NewRNSPoly(ring.NTT)
	rr.MulCoeffsNTT(c.A, sNTT, asNTT)

	rawNTT := rr.NewRNSPoly(ring.NTT)
	rr.Add(c.B, asNTT, rawNTT)

	raw := rr.NewRNSPoly(ring.Coef)
	rr.Backward(rawNTT, raw)
	return raw
}

// DecryptBSGS decrypts a BSGS-domain ciphertext but leaves the result in
// NTT (slot) form: the BSGS core and external product both operate on
// column/row values that live at NTT slots, not coefficient positions, so
// rounding only happens after packing (DecryptBSGSTotal) or not at all when
// the caller inspects intermediate slots directly (tests use this form).
func DecryptBSGS(s *Secret, c *Ciphertext) ring.RNSPoly {
	rr := s.Rings
	sNTT := s.NTT()

	asNTT := rr.NewRNSPoly(ring.NTT)
	rr.MulCoeffsNTT(c.A, sNTT, asNTT)

	out := rr.NewRNSPoly(ring.NTT)
	rr.Add(c.B, asNTT, out)
	return out
}

// DecryptBSGSTotal decrypts the final, packed ciphertext and rounds by
// delta, same convention as Decrypt.
func DecryptBSGSTotal(s *Secret, c *Ciphertext, delta uint64) ring.RNSPoly {
	return Decrypt(s, c, delta)
}

// roundDiv returns round(x*p/q) where d = floor(q/p), working in the
// centered representation so that round-half-away-from-zero (the
// convention this module fixes for the open rounding question, see
// DESIGN.md) is applied consistently regardless of where x sits mod q.
func roundDiv(x, d, q uint64) uint64 {
	m := ring.NewModulus(q)
	centered := m.Center(x)
	// divide by d with round-half-away-from-zero
	var quotient int64
	if centered >= 0 {
		quotient = (centered + int64(d)/2) / int64(d)
	} else {
		quotient = (centered - int64(d)/2) / int64(d)
	}
	if quotient < 0 {
		return uint64(quotient + int64(q))
	}
	return uint64(quotient)
}
