package ring

// GaloisGen is the generator used throughout the BSGS schedule (components
// G, H, J): 5 has order N/2 in (Z/2NZ)*, so its powers enumerate exactly the
// N/2 automorphisms the database's diagonals and the query's baby/giant
// steps are built from.
const GaloisGen uint64 = 5

// AutomorphismIndex precomputes, for automorphism exponent i (odd, coprime
// to 2N), the permutation and sign table used by Automorphism: for
// coefficient k, the image index is Index[k] and Neg[k] reports whether the
// image picks up a sign flip (the exponent k*i wrapped past N).
//
// Grounded on the teacher's AutomorphismNTTWithIndex precomputed-table
// convention (rlwe/evaluator_automorphism.go): computing j*i mod 2N and its
// sign once per (N,i) pair and reusing it is exactly what spec's component J
// calls out as the "permutation table... computed alongside the sign table".
type AutomorphismIndex struct {
	Index []int
	Neg   []bool
}

// GenAutomorphismIndex builds the table for exponent i over a ring of
// degree N. i must be odd; values are reduced mod 2N internally.
func (r *Ring) GenAutomorphismIndex(i uint64) *AutomorphismIndex {
	N := r.N
	twoN := uint64(2 * N)
	i %= twoN

	idx := make([]int, N)
	neg := make([]bool, N)

	for k := 0; k < N; k++ {
		e := (uint64(k) * i) % twoN
		if e >= uint64(N) {
			idx[k] = int(e - uint64(N))
			neg[k] = true
		} else {
			idx[k] = int(e)
			neg[k] = false
		}
	}
	return &AutomorphismIndex{Index: idx, Neg: neg}
}

// Automorphism evaluates sigma_i(p1) into p2 using a precomputed
// AutomorphismIndex table. p1 must be in Coef form (X -> X^i is only a
// coefficient permutation when expressed this way; applying it to an NTT-
// domain polynomial would require the slot-domain variant, AutomorphismNTT).
// p1 and p2 must not alias.
func (r *Ring) Automorphism(p1 Poly, tbl *AutomorphismIndex, p2 Poly) {
	p1.requireForm(Coef, "Ring.Automorphism")
	m := r.Modulus
	for k, c := range p1.Coeffs {
		if tbl.Neg[k] {
			p2.Coeffs[tbl.Index[k]] = m.Neg(c)
		} else {
			p2.Coeffs[tbl.Index[k]] = c
		}
	}
	p2.Form = Coef
}

// AutomorphismNTTIndex is the slot-domain counterpart of AutomorphismIndex:
// a pure permutation of NTT slots (no sign flips), since evaluation points
// do not fold modulo N the way coefficient positions do.
type AutomorphismNTTIndex struct {
	Index []int
}

// GenAutomorphismNTTIndex builds the slot permutation for exponent i:
// Index[j] is the slot evaluating at psi^(i * EvalExponent(j)), the input
// slot whose value output slot j takes.
func (r *Ring) GenAutomorphismNTTIndex(i uint64) *AutomorphismNTTIndex {
	N := r.N
	idx := make([]int, N)
	for j := 0; j < N; j++ {
		e := (i * r.EvalExponent(j)) % r.nthRoot
		idx[j] = r.SlotForExponent(e)
	}
	return &AutomorphismNTTIndex{Index: idx}
}

// AutomorphismNTT evaluates sigma_i on an NTT-domain polynomial as a slot
// permutation: p2[j] = p1[tbl.Index[j]], since sigma_i(p1) evaluated at
// psi^e is p1 evaluated at psi^(i*e). p1 and p2 must not alias.
func (r *Ring) AutomorphismNTT(p1 Poly, tbl *AutomorphismNTTIndex, p2 Poly) {
	p1.requireForm(NTT, "Ring.AutomorphismNTT")
	for j := range p2.Coeffs {
		p2.Coeffs[j] = p1.Coeffs[tbl.Index[j]]
	}
	p2.Form = NTT
}
