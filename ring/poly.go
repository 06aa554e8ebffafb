package ring

import "fmt"

// Form tags whether a Poly's coefficients are in coefficient representation
// or in NTT (evaluation) representation. Every operation that cares about
// the representation checks this tag and panics on mismatch rather than
// silently producing a wrong answer; conversion between forms is always
// explicit (Ring.Forward / Ring.Backward), never implicit.
type Form uint8

const (
	Coef Form = iota
	NTT
)

func (f Form) String() string {
	if f == Coef {
		return "coef"
	}
	return "ntt"
}

// Poly is a degree-N polynomial over a single modulus, tagged with its
// current representation. The tag is the only thing standing between a
// pointwise multiply and silent corruption, so every constructor below sets
// it explicitly and every mutating method preserves it.
type Poly struct {
	Coeffs []uint64
	Form   Form
}

// NewPolyCoef allocates an all-zero polynomial of degree N, tagged Coef.
func NewPolyCoef(N int) Poly {
	return Poly{Coeffs: make([]uint64, N), Form: Coef}
}

// NewPolyNTT allocates an all-zero polynomial of degree N, tagged NTT.
func NewPolyNTT(N int) Poly {
	return Poly{Coeffs: make([]uint64, N), Form: NTT}
}

// FromCoef wraps an existing coefficient slice, tagged Coef. The slice is
// used in place, not copied.
func FromCoef(c []uint64) Poly {
	return Poly{Coeffs: c, Form: Coef}
}

// FromNTT wraps an existing evaluation-domain slice, tagged NTT.
func FromNTT(c []uint64) Poly {
	return Poly{Coeffs: c, Form: NTT}
}

// N returns the ring degree of the polynomial.
func (p Poly) N() int {
	return len(p.Coeffs)
}

// Clone returns a deep copy, preserving the Form tag.
func (p Poly) Clone() Poly {
	c := make([]uint64, len(p.Coeffs))
	copy(c, p.Coeffs)
	return Poly{Coeffs: c, Form: p.Form}
}

// CopyFrom overwrites the receiver's coefficients with other's, and adopts
// other's Form tag. Panics on length mismatch: this is a programmer error,
// never a runtime condition to recover from.
func (p *Poly) CopyFrom(other Poly) {
	if len(p.Coeffs) != len(other.Coeffs) {
		panic(fmt.Errorf("ring: Poly.CopyFrom: length mismatch %d != %d", len(p.Coeffs), len(other.Coeffs)))
	}
	copy(p.Coeffs, other.Coeffs)
	p.Form = other.Form
}

// requireForm panics if the receiver is not in the expected form. Every
// public operation that is form-sensitive calls this first so the failure
// points at the call site, not at some downstream arithmetic artifact.
func (p Poly) requireForm(want Form, op string) {
	if p.Form != want {
		panic(fmt.Errorf("ring: %s requires a %s-domain polynomial, got %s", op, want, p.Form))
	}
}

// Zero clears all coefficients in place, keeping the Form tag.
func (p Poly) Zero() {
	for i := range p.Coeffs {
		p.Coeffs[i] = 0
	}
}
