package ring

// CRTBasis lifts a pair of residues mod (q1, q2) to their unique
// representative mod q1*q2, and the reverse reduction. Used by package
// pir's client-side slot recovery and modulus switch, both of which need to
// treat a (q1,q2) residue pair as one integer.
type CRTBasis struct {
	Q1, Q2   Modulus
	CrtMod   uint64
	q1InvQ2  uint64 // q1^-1 mod q2
	q2ModQ1  uint64
	q1ModCrt uint64
}

// NewCRTBasis builds the basis for two coprime moduli q1, q2.
func NewCRTBasis(q1, q2 Modulus) *CRTBasis {
	crt := q1.Q * q2.Q
	return &CRTBasis{
		Q1:       q1,
		Q2:       q2,
		CrtMod:   crt,
		q1InvQ2:  q2.Inverse(q1.Q % q2.Q),
		q2ModQ1:  q2.Q % q1.Q,
		q1ModCrt: q1.Q,
	}
}

// Lift returns the unique x in [0, q1*q2) with x = a1 (mod q1) and
// x = a2 (mod q2), via the standard two-modulus CRT reconstruction formula.
func (b *CRTBasis) Lift(a1, a2 uint64) uint64 {
	// x = a1 + q1 * ((a2 - a1) * q1^-1 mod q2)
	diff := b.Q2.Sub(a2%b.Q2.Q, a1%b.Q2.Q)
	t := b.Q2.Mul(diff, b.q1InvQ2)
	return a1 + b.Q1.Q*t
}

// Reduce reduces x mod q1*q2 down to its (q1, q2) residue pair.
func (b *CRTBasis) Reduce(x uint64) (a1, a2 uint64) {
	return x % b.Q1.Q, x % b.Q2.Q
}
