package rlwe

import "github.com/Pro7ech/ringpir/ring"

// Secret is a ring element drawn from the scheme's ternary distribution,
// held in Coef form over every residue of its RNSRing. Per the lifecycle
// invariant (spec's data model §3), a Secret is created once at startup and
// never mutated; key generators borrow it to build switching keys and then
// drop their reference.
type Secret struct {
	Rings ring.RNSRing
	Value ring.RNSPoly
}

// NewSecret draws a fresh ternary secret over the given RNSRing. Each
// coefficient is drawn once and reduced consistently into every residue
// (ring.RNSRing.SampleTernary), not sampled independently per residue,
// since all residues must represent the same underlying secret.
func NewSecret(rr ring.RNSRing) *Secret {
	return &Secret{Rings: rr, Value: rr.SampleTernary()}
}

// NTT returns the NTT-domain representation of the secret, used directly by
// encryption and by gadget-product inner products.
func (s *Secret) NTT() ring.RNSPoly {
	out := s.Rings.NewRNSPoly(ring.NTT)
	s.Rings.Forward(s.Value, out)
	return out
}
