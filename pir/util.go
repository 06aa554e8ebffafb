package pir

import (
	"github.com/Pro7ech/ringpir/ring"
	"golang.org/x/exp/constraints"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// modPow is the pir package's local copy of modular exponentiation,
// used for building automorphism exponent schedules (GaloisGen powers)
// independently of the rlwe package's private helper of the same name.
func modPow(base, e, mod uint64) uint64 {
	result := uint64(1) % mod
	base %= mod
	for e > 0 {
		if e&1 == 1 {
			result = mulMod(result, base, mod)
		}
		base = mulMod(base, base, mod)
		e >>= 1
	}
	return result
}

func mulMod(a, b, mod uint64) uint64 {
	return ring.NewModulus(mod).Mul(a, b)
}

// invModPow2 returns the inverse of the odd value a modulo mod, where mod
// is a power of two (2N). Automorphism exponents are always odd, so a is
// always coprime to mod; ordinary Modulus.Inverse assumes a prime modulus
// (Fermat) and cannot be used here, hence this separate extended-Euclidean
// implementation used only by the database preprocessor's giant-step
// pre-rotation (component I).
func invModPow2(a, mod uint64) uint64 {
	a %= mod
	old_r, r := int64(mod), int64(a)
	old_s, s := int64(0), int64(1)
	for r != 0 {
		q := old_r / r
		old_r, r = r, old_r-q*r
		old_s, s = s, old_s-q*s
	}
	if old_s < 0 {
		old_s += int64(mod)
	}
	return uint64(old_s) % mod
}

func log2Int(n int) int {
	l := 0
	for (1 << l) < n {
		l++
	}
	return l
}

// sortedKeys returns the keys of m in ascending order, used wherever a
// map's iteration needs to be deterministic (validating a recursion-level
// key family, reporting a missing level).
func sortedKeys[K constraints.Ordered, V any](m map[K]V) []K {
	keys := maps.Keys(m)
	slices.Sort(keys)
	return keys
}
