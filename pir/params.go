// Package pir implements the server- and client-side operations of a
// Ring-LWE/RGSW private information retrieval scheme: database
// preprocessing, encrypted query encoding, the BSGS matrix-vector engine,
// external-product row selection, ciphertext packing, and modulus
// switching.
package pir

import (
	"fmt"

	"github.com/Pro7ech/ringpir/ring"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

// ParameterSet is the scheme's one immutable configuration record (spec §9:
// "abstract as an immutable ParameterSet record passed at construction;
// forbid global mutable parameter state"). There is no package-level
// mutable state anywhere in this module; every operation takes a
// *ParameterSet explicitly.
type ParameterSet struct {
	N int

	Q1, Q2, BsMod, AuxMod, BigMod uint64
	CrtMod                        uint64
	P                             uint64 // bsgsp, the BSGS-path plaintext modulus
	Delta                         uint64 // floor(CrtMod/P)

	N1, N2 int // BSGS tile sizes, N1*N2 = N/2
	R      int // database packing multiplicity, power of two

	Log2Basis, Ell int // gadget decomposition base/length

	Q1Ring, Q2Ring, BsRing, AuxRing, BigModRing *ring.Ring
	CrtRing                                     ring.RNSRing // [Q1Ring, Q2Ring]
	FullRing                                    ring.RNSRing // [Q1Ring, Q2Ring, BsRing]
}

// NewParameterSet builds the fixed parameter set for one of the scheme's
// three supported ring dimensions.
func NewParameterSet(n int) (*ParameterSet, error) {
	var p uint64
	switch n {
	case 256:
		p = 7681
	case 2048:
		p = 40961
	case 4096:
		p = 65537
	default:
		return nil, fmt.Errorf("pir: unsupported N=%d, must be one of {256, 2048, 4096}", n)
	}

	// primes found to satisfy q = 1 (mod 8192), so they carry a primitive
	// 2N-th root of unity for every supported N (2N divides 8192 in every
	// case: 512, 4096, 8192).
	const (
		q1     = 134250497
		q2     = 134275073
		bsMod  = 8404993
		auxMod = 134397953
		bigMod = 562949954093057
	)

	q1Ring, err := ring.NewRing(n, q1)
	if err != nil {
		return nil, fmt.Errorf("pir: q1 ring: %w", err)
	}
	q2Ring, err := ring.NewRing(n, q2)
	if err != nil {
		return nil, fmt.Errorf("pir: q2 ring: %w", err)
	}
	bsRing, err := ring.NewRing(n, bsMod)
	if err != nil {
		return nil, fmt.Errorf("pir: bsMod ring: %w", err)
	}
	auxRing, err := ring.NewRing(n, auxMod)
	if err != nil {
		return nil, fmt.Errorf("pir: auxMod ring: %w", err)
	}
	bigModRing, err := ring.NewRing(n, bigMod)
	if err != nil {
		return nil, fmt.Errorf("pir: bigMod ring: %w", err)
	}

	half := n / 2
	n1 := largestPowerOfTwoDividing(half, isqrt(half))
	n2 := half / n1

	crtMod := uint64(q1) * uint64(q2)

	ps := &ParameterSet{
		N:         n,
		Q1:        q1,
		Q2:        q2,
		BsMod:     bsMod,
		AuxMod:    auxMod,
		BigMod:    bigMod,
		CrtMod:    crtMod,
		P:         p,
		Delta:     crtMod / p,
		N1:         n1,
		N2:         n2,
		R:          1,
		Log2Basis:  8,
		Ell:        10, // 8*10 = 80 bits cover the ~77-bit FullRing modulus
		Q1Ring:     q1Ring,
		Q2Ring:     q2Ring,
		BsRing:     bsRing,
		AuxRing:    auxRing,
		BigModRing: bigModRing,
		CrtRing:    ring.RNSRing{q1Ring, q2Ring},
		FullRing:   ring.RNSRing{q1Ring, q2Ring, bsRing},
	}

	if half%n1 != 0 {
		return nil, fmt.Errorf("pir: internal error, N1=%d does not divide N/2=%d", n1, half)
	}

	return ps, nil
}

// WithR returns a copy of ps with the packing multiplicity overridden. r
// must be a power of two (spec §6: "r: database packing count; powers of 2
// only").
func (ps *ParameterSet) WithR(r int) (*ParameterSet, error) {
	if r <= 0 || r&(r-1) != 0 {
		return nil, fmt.Errorf("pir: r=%d is not a power of two", r)
	}
	out := *ps
	out.R = r
	return &out, nil
}

// WithN1 returns a copy of ps with the baby-step tile size overridden. N1
// must divide N/2.
func (ps *ParameterSet) WithN1(n1 int) (*ParameterSet, error) {
	half := ps.N / 2
	if n1 <= 0 || half%n1 != 0 {
		return nil, fmt.Errorf("pir: N1=%d does not divide N/2=%d", n1, half)
	}
	out := *ps
	out.N1 = n1
	out.N2 = half / n1
	return &out, nil
}

// Equal reports whether two parameter sets carry the same scalar
// configuration, ignoring the derived ring/RNS-ring fields (two
// independently-built parameter sets for the same N hold distinct *Ring
// pointers and would otherwise never compare equal).
func (ps *ParameterSet) Equal(other *ParameterSet) bool {
	return cmp.Equal(ps, other, cmpopts.IgnoreFields(ParameterSet{}, "Q1Ring", "Q2Ring", "BsRing", "AuxRing", "BigModRing", "CrtRing", "FullRing"))
}

func isqrt(x int) int {
	if x <= 0 {
		return 0
	}
	r := 1
	for r*r <= x {
		r++
	}
	return r - 1
}

// largestPowerOfTwoDividing returns the largest power of two, no more than
// roughly 2*hint, that divides n. Falls back to 1 if none found (n is
// itself odd), which degenerates BSGS to pure giant-step.
func largestPowerOfTwoDividing(n, hint int) int {
	best := 1
	for p := 1; p <= n; p <<= 1 {
		if n%p == 0 && p <= hint*2 {
			best = p
		}
	}
	return best
}
