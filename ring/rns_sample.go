package ring

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

// jointModulus returns the product of every residue's modulus, used to
// sample one consistent underlying integer per coefficient rather than
// sampling each residue independently (which would desynchronize the RNS
// limbs of what must be a single secret/error/randomness value).
func (rr RNSRing) jointModulus() *big.Int {
	j := big.NewInt(1)
	for _, r := range rr {
		j.Mul(j, new(big.Int).SetUint64(r.Modulus.Q))
	}
	return j
}

// SampleUniform draws, for each coefficient, one uniform integer in
// [0, product of all moduli) and reduces it into every residue, so that the
// same underlying value is consistently represented across the RNSRing.
func (rr RNSRing) SampleUniform() RNSPoly {
	N := rr[0].N
	out := rr.NewRNSPoly(Coef)

	joint := rr.jointModulus()
	byteLen := (joint.BitLen() + 7) / 8
	buf := make([]byte, byteLen)

	for k := 0; k < N; k++ {
		v := new(big.Int)
		for {
			if _, err := rand.Read(buf); err != nil {
				panic(fmt.Errorf("ring: SampleUniform: %w", err))
			}
			v.SetBytes(buf)
			if v.Cmp(joint) < 0 {
				break
			}
		}
		for i, r := range rr {
			rem := new(big.Int).Mod(v, new(big.Int).SetUint64(r.Modulus.Q))
			out[i].Coeffs[k] = rem.Uint64()
		}
	}
	return out
}

// SampleTernary draws, for each coefficient, one value in {-1, 0, 1} and
// reduces it into every residue. Unlike SampleUniform this needs no big.Int
// arithmetic: +1 and -1 reduce to a well-known representative (q-1) in
// every modulus independently of its size.
func (rr RNSRing) SampleTernary() RNSPoly {
	N := rr[0].N
	out := rr.NewRNSPoly(Coef)

	buf := make([]byte, 1)
	for k := 0; k < N; k++ {
		if _, err := rand.Read(buf); err != nil {
			panic(fmt.Errorf("ring: SampleTernary: %w", err))
		}
		choice := buf[0] % 3
		for i, r := range rr {
			switch choice {
			case 0:
				out[i].Coeffs[k] = 0
			case 1:
				out[i].Coeffs[k] = 1
			default:
				out[i].Coeffs[k] = r.Modulus.Q - 1
			}
		}
	}
	return out
}
