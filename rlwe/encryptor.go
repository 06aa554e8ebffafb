package rlwe

import "github.com/Pro7ech/ringpir/ring"

// encryptNTT is the shared core of Encrypt/EncryptRNSBSGS: samples a
// uniform A and a ternary error e (each drawn once per coefficient and
// reduced consistently across every residue, per ring.RNSRing.SampleUniform/
// SampleTernary), and returns B = -A*S + delta*mNTT + e, A, all in NTT form.
func encryptNTT(s *Secret, mNTT ring.RNSPoly, delta uint64) *Ciphertext {
	rr := s.Rings
	N := rr[0].N

	aNTT := rr.NewRNSPoly(ring.NTT)
	rr.Forward(rr.SampleUniform(), aNTT)

	sNTT := s.NTT()
	bNTT := rr.NewRNSPoly(ring.NTT)
	rr.MulCoeffsNTT(aNTT, sNTT, bNTT)

	eNTT := rr.NewRNSPoly(ring.NTT)
	rr.Forward(rr.SampleTernary(), eNTT)

	for idx, r := range rr {
		d := delta % r.Modulus.Q
		for k := 0; k < N; k++ {
			scaled := r.Modulus.Mul(mNTT[idx].Coeffs[k], d)
			b := r.Modulus.Neg(bNTT[idx].Coeffs[k])
			b = r.Modulus.Add(b, scaled)
			b = r.Modulus.Add(b, eNTT[idx].Coeffs[k])
			bNTT[idx].Coeffs[k] = b
		}
	}

	return &Ciphertext{Rings: rr, B: bNTT, A: aNTT}
}

// Encrypt produces an RLWE ciphertext of delta*m under secret s. m is given
// in Coef form; the result is returned in NTT form (matching the teacher's
// convention that ciphertexts at rest are stored NTT-domain).
func Encrypt(s *Secret, m ring.RNSPoly, delta uint64) *Ciphertext {
	mNTT := s.Rings.NewRNSPoly(ring.NTT)
	s.Rings.Forward(m, mNTT)
	return encryptNTT(s, mNTT, delta)
}

// EncryptRNSBSGS is Encrypt specialized to the query path (component H):
// the message is already the one-hot NTT-domain vector the BSGS core
// expects, so it is embedded directly without a coefficient round trip.
func EncryptRNSBSGS(s *Secret, mNTT ring.RNSPoly, delta uint64) *Ciphertext {
	return encryptNTT(s, mNTT, delta)
}
