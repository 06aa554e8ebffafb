package ring

import "math/bits"

// Modulus is a single modular-arithmetic abstraction bound to one prime q.
// Every component that needs modular add/sub/mul/pow/inverse against one of
// the scheme's fixed primes (q1, q2, bsMod, auxMod, bigMod, or a product
// modulus such as crtMod) goes through a Modulus value instead of spreading
// ad-hoc 128-bit casts across the codebase.
//
// Multiplication uses bits.Mul64 to form the full 128-bit product and
// bits.Div64 to reduce it; this keeps every intermediate value explicit and
// avoids relying on Montgomery or Barrett constants that would need to be
// re-derived per modulus.
type Modulus struct {
	Q uint64
}

// NewModulus wraps q. Panics if q is zero.
func NewModulus(q uint64) Modulus {
	if q == 0 {
		panic("ring: modulus cannot be zero")
	}
	return Modulus{Q: q}
}

// Reduce returns x mod q for an x that may exceed q.
func (m Modulus) Reduce(x uint64) uint64 {
	return x % m.Q
}

// Add returns (x+y) mod q.
func (m Modulus) Add(x, y uint64) uint64 {
	z := x + y
	if z >= m.Q {
		z -= m.Q
	}
	return z
}

// Sub returns (x-y) mod q.
func (m Modulus) Sub(x, y uint64) uint64 {
	if x >= y {
		return x - y
	}
	return m.Q - (y - x)
}

// Neg returns (-x) mod q.
func (m Modulus) Neg(x uint64) uint64 {
	if x == 0 {
		return 0
	}
	return m.Q - x
}

// Mul returns (x*y) mod q, computing the full 128-bit product first.
func (m Modulus) Mul(x, y uint64) uint64 {
	hi, lo := bits.Mul64(x, y)
	if hi == 0 {
		return lo % m.Q
	}
	_, rem := bits.Div64(hi%m.Q, lo, m.Q)
	return rem
}

// MulAdd returns (acc + x*y) mod q.
func (m Modulus) MulAdd(acc, x, y uint64) uint64 {
	return m.Add(acc, m.Mul(x, y))
}

// Pow returns x^e mod q via square-and-multiply.
func (m Modulus) Pow(x uint64, e uint64) uint64 {
	result := uint64(1) % m.Q
	base := x % m.Q
	for e > 0 {
		if e&1 == 1 {
			result = m.Mul(result, base)
		}
		base = m.Mul(base, base)
		e >>= 1
	}
	return result
}

// Inverse returns x^-1 mod q via Fermat's little theorem; q must be prime.
func (m Modulus) Inverse(x uint64) uint64 {
	return m.Pow(x, m.Q-2)
}

// Center returns the centered (signed) representative of x mod q, i.e. a
// value in (-q/2, q/2], used whenever a coefficient must be interpreted as
// a small signed integer (sign-centering the database, gadget digits).
func (m Modulus) Center(x uint64) int64 {
	x %= m.Q
	if x > m.Q/2 {
		return int64(x) - int64(m.Q)
	}
	return int64(x)
}

// FromCentered maps a centered signed residue back into [0, q).
func (m Modulus) FromCentered(x int64) uint64 {
	if x < 0 {
		return m.Q - uint64(-x)%m.Q
	}
	return uint64(x) % m.Q
}
