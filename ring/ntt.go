package ring

import "fmt"

// Ring is the modular NTT kernel for one fixed prime modulus q admitting a
// primitive 2N-th root of unity. One Ring is built per modulus the scheme
// uses (q1, q2, bsMod, auxMod, bigMod); the twiddle tables are precomputed
// once at construction and reused by every Forward/Backward call.
//
// The transform is the standard negacyclic NTT: Forward is a Cooley-Tukey
// decimation-in-time butterfly network reading bit-reversed twiddles and
// producing bit-reversed-indexed evaluations; Backward is the matching
// Gentleman-Sande decimation-in-frequency network, scaled by N^-1 mod q.
type Ring struct {
	N       int
	Modulus Modulus

	nthRoot       uint64
	primitiveRoot uint64
	rootsForward  []uint64 // bit-reversed powers of psi, indexed as in nttLazy below
	rootsBackward []uint64 // bit-reversed powers of psi^-1
	nInv          uint64
}

// NewRing constructs the NTT kernel for modulus q and ring degree N. N must
// be a power of two; q must be prime and satisfy q = 1 (mod 2N) so that a
// primitive 2N-th root of unity exists.
func NewRing(N int, q uint64) (*Ring, error) {
	if N <= 0 || N&(N-1) != 0 {
		return nil, fmt.Errorf("ring: N=%d is not a power of two", N)
	}

	twoN := uint64(2 * N)
	if (q-1)%twoN != 0 {
		return nil, fmt.Errorf("ring: q=%d is not congruent to 1 mod 2N=%d, no primitive 2N-th root exists", q, twoN)
	}

	m := NewModulus(q)

	psi, err := findPrimitiveRoot(m, twoN)
	if err != nil {
		return nil, fmt.Errorf("ring: N=%d q=%d: %w", N, q, err)
	}

	r := &Ring{
		N:             N,
		Modulus:       m,
		nthRoot:       twoN,
		primitiveRoot: psi,
		nInv:          m.Inverse(uint64(N)),
	}
	r.precomputeTwiddles()
	return r, nil
}

// findPrimitiveRoot searches for a generator g of (Z/qZ)* and returns
// g^((q-1)/order), a primitive order-th root of unity mod q.
func findPrimitiveRoot(m Modulus, order uint64) (uint64, error) {
	qm1 := m.Q - 1
	if qm1%order != 0 {
		return 0, fmt.Errorf("order %d does not divide q-1=%d", order, qm1)
	}
	exp := qm1 / order
	for g := uint64(2); g < m.Q; g++ {
		cand := m.Pow(g, exp)
		if cand == 1 {
			continue
		}
		// cand has order dividing `order`; it is primitive iff
		// cand^(order/2) == -1 mod q (order is always even here, since
		// order = 2N and N >= 1).
		if m.Pow(cand, order/2) == m.Q-1 {
			return cand, nil
		}
	}
	return 0, fmt.Errorf("no primitive %d-th root of unity found", order)
}

// precomputeTwiddles fills rootsForward/rootsBackward in the bit-reversed
// layout consumed by the butterfly loops in Forward/Backward: roots[m+i]
// for merge-width m and lane i holds psi^(bitrev_logN(m+i) shifted appropriately).
// This mirrors the teacher's NTTTable convention (RootsForward/RootsBackward
// stored as "powers of the 2N-th primitive root... in bit-reversed order").
func (r *Ring) precomputeTwiddles() {
	N := r.N
	logN := log2(N)
	psi := r.primitiveRoot
	psiInv := r.Modulus.Inverse(psi)

	r.rootsForward = make([]uint64, N)
	r.rootsBackward = make([]uint64, N)

	// slot j (0 <= j < N) carries psi^bitrev_logN(j); the butterfly loops
	// below index into this table as roots[m+i] where m is the current
	// merge width and i is the lane, which by construction of the
	// bit-reversal permutation always lands on a valid, distinct twiddle.
	for j := 0; j < N; j++ {
		e := bitReverse(j, logN)
		r.rootsForward[j] = r.Modulus.Pow(psi, uint64(e))
		r.rootsBackward[j] = r.Modulus.Pow(psiInv, uint64(e))
	}
}

func log2(n int) int {
	l := 0
	for (1 << l) < n {
		l++
	}
	return l
}

func bitReverse(x, bits int) int {
	r := 0
	for i := 0; i < bits; i++ {
		r |= ((x >> i) & 1) << (bits - 1 - i)
	}
	return r
}

// EvalExponent returns the exponent e such that NTT slot j of Forward's
// output equals the input polynomial evaluated at psi^e, i.e.
// e = 2*bitrev_logN(j) + 1 (mod 2N). Query encoding (component H) and the
// BSGS permutation tables (component J) both need this correspondence to
// place a one-hot value at the slot that an automorphism schedule will
// reach.
func (r *Ring) EvalExponent(slot int) uint64 {
	logN := log2(r.N)
	return (2*uint64(bitReverse(slot, logN)) + 1) % r.nthRoot
}

// SlotForExponent is the inverse of EvalExponent: given an odd exponent e
// coprime to 2N, it returns the NTT slot j whose evaluation point is psi^e.
func (r *Ring) SlotForExponent(e uint64) int {
	logN := log2(r.N)
	e %= r.nthRoot
	i := ((e - 1) / 2) % uint64(r.N)
	return bitReverse(int(i), logN)
}

// Forward computes p2 = NTT(p1): p1 must be Coef, p2 is written as NTT.
func (r *Ring) Forward(p1, p2 Poly) {
	p1.requireForm(Coef, "Ring.Forward")
	N := r.N
	a := p2.Coeffs
	copy(a, p1.Coeffs)

	m := r.Modulus
	roots := r.rootsForward

	t := N >> 1
	for mm := 1; mm < N; mm <<= 1 {
		for i := 0; i < mm; i++ {
			j1 := 2 * i * t
			j2 := j1 + t
			f := roots[mm+i]
			for j := j1; j < j2; j++ {
				u := a[j]
				v := m.Mul(a[j+t], f)
				a[j] = m.Add(u, v)
				a[j+t] = m.Sub(u, v)
			}
		}
		t >>= 1
	}
	p2.Form = NTT
}

// Backward computes p2 = INTT(p1): p1 must be NTT, p2 is written as Coef.
func (r *Ring) Backward(p1, p2 Poly) {
	p1.requireForm(NTT, "Ring.Backward")
	N := r.N
	a := p2.Coeffs
	copy(a, p1.Coeffs)

	m := r.Modulus
	roots := r.rootsBackward

	t := 1
	for mm := N >> 1; mm >= 1; mm >>= 1 {
		for i := 0; i < mm; i++ {
			j1 := 2 * i * t
			j2 := j1 + t
			f := roots[mm+i]
			for j := j1; j < j2; j++ {
				u := a[j]
				v := a[j+t]
				a[j] = m.Add(u, v)
				a[j+t] = m.Mul(m.Sub(u, v), f)
			}
		}
		t <<= 1
	}
	for i := range a {
		a[i] = m.Mul(a[i], r.nInv)
	}
	p2.Form = Coef
}

// MulCoeffsNTT computes p3 = p1 * p2 pointwise, requiring both operands be
// in NTT form (pointwise multiply in the evaluation domain is coefficient-
// domain polynomial multiplication mod X^N+1).
func (r *Ring) MulCoeffsNTT(p1, p2, p3 Poly) {
	p1.requireForm(NTT, "Ring.MulCoeffsNTT")
	p2.requireForm(NTT, "Ring.MulCoeffsNTT")
	m := r.Modulus
	for i := range p3.Coeffs {
		p3.Coeffs[i] = m.Mul(p1.Coeffs[i], p2.Coeffs[i])
	}
	p3.Form = NTT
}

// MulCoeffsNTTThenAdd computes p3 += p1 * p2 pointwise, in NTT form.
func (r *Ring) MulCoeffsNTTThenAdd(p1, p2, p3 Poly) {
	p1.requireForm(NTT, "Ring.MulCoeffsNTTThenAdd")
	p2.requireForm(NTT, "Ring.MulCoeffsNTTThenAdd")
	m := r.Modulus
	for i := range p3.Coeffs {
		p3.Coeffs[i] = m.Add(p3.Coeffs[i], m.Mul(p1.Coeffs[i], p2.Coeffs[i]))
	}
}

// Add computes p3 = p1 + p2. Operands must share the same Form; p3 is
// passed by value, so its Form tag stays as the caller allocated it.
func (r *Ring) Add(p1, p2, p3 Poly) {
	if p1.Form != p2.Form {
		panic(fmt.Errorf("ring: Ring.Add: form mismatch %s != %s", p1.Form, p2.Form))
	}
	m := r.Modulus
	for i := range p3.Coeffs {
		p3.Coeffs[i] = m.Add(p1.Coeffs[i], p2.Coeffs[i])
	}
	p3.Form = p1.Form
}

// Sub computes p3 = p1 - p2. Operands must share the same Form; p3 is
// passed by value, so its Form tag stays as the caller allocated it.
func (r *Ring) Sub(p1, p2, p3 Poly) {
	if p1.Form != p2.Form {
		panic(fmt.Errorf("ring: Ring.Sub: form mismatch %s != %s", p1.Form, p2.Form))
	}
	m := r.Modulus
	for i := range p3.Coeffs {
		p3.Coeffs[i] = m.Sub(p1.Coeffs[i], p2.Coeffs[i])
	}
	p3.Form = p1.Form
}

// Neg computes p2 = -p1, preserving Form.
func (r *Ring) Neg(p1, p2 Poly) {
	m := r.Modulus
	for i := range p2.Coeffs {
		p2.Coeffs[i] = m.Neg(p1.Coeffs[i])
	}
	p2.Form = p1.Form
}

// MonomialNTT returns the NTT-domain representation of delta * X^{shift mod N}.
// Used by packing's X^{N/2^l} twist, a coefficient-domain monomial that
// needs to be pointwise-multiplied against NTT-domain operands.
func (r *Ring) MonomialNTT(shift int, delta uint64) Poly {
	out := NewPolyNTT(r.N)
	coef := NewPolyCoef(r.N)
	idx := ((shift % r.N) + r.N) % r.N
	coef.Coeffs[idx] = delta % r.Modulus.Q
	r.Forward(coef, out)
	return out
}

// OneHotNTT returns the NTT-domain polynomial whose only nonzero evaluation
// is delta at the given slot. This is the query encoder's (component H)
// core primitive: a single nonzero NTT coefficient placed at
// SlotForExponent(GaloisGen^p mod 2N) reaches, after the BSGS automorphism
// schedule, exactly one diagonal slot of the preprocessed database.
func (r *Ring) OneHotNTT(slot int, delta uint64) Poly {
	out := NewPolyNTT(r.N)
	out.Coeffs[slot] = delta % r.Modulus.Q
	return out
}
