package ring

// RNSRing is an ordered list of single-modulus kernels that are kept in
// lockstep: the scheme's "RNS variant" (component G/J/M) always means
// "run the same operation on every residue". For the primary modulus it
// holds [q1, q2]; for the baby-step path it additionally carries bsMod.
type RNSRing []*Ring

// RNSPoly holds one residue polynomial per entry of an RNSRing, in the same
// order.
type RNSPoly []Poly

// NewRNSPoly allocates one polynomial per ring, in the given Form.
func (rr RNSRing) NewRNSPoly(form Form) RNSPoly {
	p := make(RNSPoly, len(rr))
	for i, r := range rr {
		if form == NTT {
			p[i] = NewPolyNTT(r.N)
		} else {
			p[i] = NewPolyCoef(r.N)
		}
	}
	return p
}

// Forward runs Ring.Forward on every residue.
func (rr RNSRing) Forward(p1, p2 RNSPoly) {
	for i, r := range rr {
		r.Forward(p1[i], p2[i])
	}
}

// Backward runs Ring.Backward on every residue.
func (rr RNSRing) Backward(p1, p2 RNSPoly) {
	for i, r := range rr {
		r.Backward(p1[i], p2[i])
	}
}

// Add runs Ring.Add on every residue.
func (rr RNSRing) Add(p1, p2, p3 RNSPoly) {
	for i, r := range rr {
		r.Add(p1[i], p2[i], p3[i])
	}
}

// Sub runs Ring.Sub on every residue.
func (rr RNSRing) Sub(p1, p2, p3 RNSPoly) {
	for i, r := range rr {
		r.Sub(p1[i], p2[i], p3[i])
	}
}

// MulCoeffsNTT runs Ring.MulCoeffsNTT on every residue.
func (rr RNSRing) MulCoeffsNTT(p1, p2, p3 RNSPoly) {
	for i, r := range rr {
		r.MulCoeffsNTT(p1[i], p2[i], p3[i])
	}
}

// MulCoeffsNTTThenAdd runs Ring.MulCoeffsNTTThenAdd on every residue.
func (rr RNSRing) MulCoeffsNTTThenAdd(p1, p2, p3 RNSPoly) {
	for i, r := range rr {
		r.MulCoeffsNTTThenAdd(p1[i], p2[i], p3[i])
	}
}

// Clone deep-copies every residue.
func (p RNSPoly) Clone() RNSPoly {
	c := make(RNSPoly, len(p))
	for i := range p {
		c[i] = p[i].Clone()
	}
	return c
}

// CopyFrom overwrites the receiver's residues with other's.
func (p RNSPoly) CopyFrom(other RNSPoly) {
	for i := range p {
		p[i].CopyFrom(other[i])
	}
}

// Zero clears every residue in place.
func (p RNSPoly) Zero() {
	for i := range p {
		p[i].Zero()
	}
}
