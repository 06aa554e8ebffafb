package rlwe

import (
	"fmt"

	"github.com/Pro7ech/ringpir/ring"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// AutoKey is a gadget-decomposed encryption of sigma_i(s) under s: ell RLWE
// pairs (B[l], A[l]) with B[l] + A[l]*s ~= base^l * sigma_i(s). Applying it
// to a permuted ciphertext's digit-decomposed `a'` recovers an encryption
// of the same message under the original secret (component G).
type AutoKey struct {
	Rings     ring.RNSRing
	Log2Basis int
	B, A      []ring.RNSPoly
}

// GenAutoKey builds the switching key for automorphism index i, decomposition
// base 2^log2Basis and length ell, from secret s. The caller is expected to
// drop its reference to s once every key it needs has been built (spec §9:
// "the builder owns the secret for the duration of construction and then
// drops it").
func GenAutoKey(s *Secret, i uint64, log2Basis, ell int) *AutoKey {
	rr := s.Rings
	N := rr[0].N

	tbl := make([]*ring.AutomorphismIndex, len(rr))
	for idx, r := range rr {
		tbl[idx] = r.GenAutomorphismIndex(i)
	}

	sigmaS := rr.NewRNSPoly(ring.Coef)
	for idx, r := range rr {
		r.Automorphism(s.Value[idx], tbl[idx], sigmaS[idx])
	}

	base := uint64(1) << uint(log2Basis)

	key := &AutoKey{Rings: rr, Log2Basis: log2Basis, B: make([]ring.RNSPoly, ell), A: make([]ring.RNSPoly, ell)}

	sNTT := s.NTT()
	scale := make([]uint64, len(rr)) // base^l mod each residue's modulus
	for idx := range scale {
		scale[idx] = 1
	}
	for l := 0; l < ell; l++ {
		aNTT := rr.NewRNSPoly(ring.NTT)
		rr.Forward(rr.SampleUniform(), aNTT)

		// b = -a*s + scale*sigma_i(s) + e
		bNTT := rr.NewRNSPoly(ring.NTT)
		rr.MulCoeffsNTT(aNTT, sNTT, bNTT)

		eNTT := rr.NewRNSPoly(ring.NTT)
		rr.Forward(rr.SampleTernary(), eNTT)

		scaledSigmaS := rr.NewRNSPoly(ring.Coef)
		for idx, r := range rr {
			for k := 0; k < N; k++ {
				scaledSigmaS[idx].Coeffs[k] = r.Modulus.Mul(sigmaS[idx].Coeffs[k], scale[idx])
			}
		}
		scaledSigmaSNTT := rr.NewRNSPoly(ring.NTT)
		rr.Forward(scaledSigmaS, scaledSigmaSNTT)

		for idx, r := range rr {
			for k := 0; k < N; k++ {
				bNTT[idx].Coeffs[k] = r.Modulus.Neg(bNTT[idx].Coeffs[k])
				bNTT[idx].Coeffs[k] = r.Modulus.Add(bNTT[idx].Coeffs[k], scaledSigmaSNTT[idx].Coeffs[k])
				bNTT[idx].Coeffs[k] = r.Modulus.Add(bNTT[idx].Coeffs[k], eNTT[idx].Coeffs[k])
			}
		}

		key.B[l] = bNTT
		key.A[l] = aNTT

		for idx, r := range rr {
			scale[idx] = r.Modulus.Mul(scale[idx], base)
		}
	}

	return key
}

// AutoKeyBSGSRNS carries the two index families the BSGS core needs: the
// BabyStep family (i = 5^j mod 2N, j = 1..N1-1) and the GiantStep family
// (i = 5^(N1*k) mod 2N, k = 1..N2-1). Index 0 in either family is identity
// and carries no key (spec §4.J: "Baby-step 0 is identity... Giant-step 0
// is identity").
type AutoKeyBSGSRNS struct {
	N1, N2    int
	BabyStep  map[int]*AutoKey
	GiantStep map[int]*AutoKey
}

// GenAutoKeyBSGSRNS builds both families for the given tile sizes N1 and N2
// (callers pass N1*N2 = N/2; the product is not checked here).
func GenAutoKeyBSGSRNS(s *Secret, N1, N2, log2Basis, ell int) *AutoKeyBSGSRNS {
	twoN := uint64(2 * s.Rings[0].N)

	out := &AutoKeyBSGSRNS{
		N1:        N1,
		N2:        N2,
		BabyStep:  make(map[int]*AutoKey, N1-1),
		GiantStep: make(map[int]*AutoKey, N2-1),
	}

	for j := 1; j < N1; j++ {
		i := modPow(ring.GaloisGen, uint64(j), twoN)
		out.BabyStep[j] = GenAutoKey(s, i, log2Basis, ell)
	}
	for k := 1; k < N2; k++ {
		i := modPow(ring.GaloisGen, uint64(N1*k), twoN)
		out.GiantStep[k] = GenAutoKey(s, i, log2Basis, ell)
	}

	return out
}

// Validate checks that both families carry every level the BSGS core for
// tile size (N1, N2) will index: BabyStep[1..N1-1] and GiantStep[1..N2-1].
// Extra levels are accepted. Levels are reported in sorted order so the
// error is deterministic across runs.
func (k *AutoKeyBSGSRNS) Validate(N1, N2 int) error {
	babyHave := maps.Keys(k.BabyStep)
	slices.Sort(babyHave)
	for j := 1; j < N1; j++ {
		if !slices.Contains(babyHave, j) {
			return fmt.Errorf("rlwe: baby-step key family missing level %d, have %v", j, babyHave)
		}
	}

	giantHave := maps.Keys(k.GiantStep)
	slices.Sort(giantHave)
	for g := 1; g < N2; g++ {
		if !slices.Contains(giantHave, g) {
			return fmt.Errorf("rlwe: giant-step key family missing level %d, have %v", g, giantHave)
		}
	}

	return nil
}

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
	return (ring.NewModulus(mod)).Mul(a, b)
}
