package rlwe

import "github.com/Pro7ech/ringpir/ring"

// Ciphertext is the pair (B, A) of RNS polynomials satisfying
// B + A*S ~= Delta*M under secret S, carried over whatever RNSRing the
// caller built it with: a single-ring slice for the plain RLWE path, or the
// [q1, q2] / [q1, q2, bsMod] slices for the RNS-BSGS path.
type Ciphertext struct {
	Rings ring.RNSRing
	B, A  ring.RNSPoly
}

// NewCiphertext allocates a zero ciphertext in the given Form over rr.
func NewCiphertext(rr ring.RNSRing, form ring.Form) *Ciphertext {
	return &Ciphertext{
		Rings: rr,
		B:     rr.NewRNSPoly(form),
		A:     rr.NewRNSPoly(form),
	}
}

// Clone deep-copies the ciphertext.
func (c *Ciphertext) Clone() *Ciphertext {
	return &Ciphertext{Rings: c.Rings, B: c.B.Clone(), A: c.A.Clone()}
}

// CopyFrom overwrites the receiver's B, A with other's.
func (c *Ciphertext) CopyFrom(other *Ciphertext) {
	c.B.CopyFrom(other.B)
	c.A.CopyFrom(other.A)
}

// Add computes c = c1 + c2 coefficient-wise on both B and A.
func (c *Ciphertext) Add(c1, c2 *Ciphertext) {
	c.Rings.Add(c1.B, c2.B, c.B)
	c.Rings.Add(c1.A, c2.A, c.A)
}

// Sub computes c = c1 - c2 coefficient-wise on both B and A.
func (c *Ciphertext) Sub(c1, c2 *Ciphertext) {
	c.Rings.Sub(c1.B, c2.B, c.B)
	c.Rings.Sub(c1.A, c2.A, c.A)
}
