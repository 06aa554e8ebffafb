package pir

import (
	"math/big"

	"github.com/Pro7ech/ringpir/ring"
	"github.com/Pro7ech/ringpir/rlwe"
	"github.com/Pro7ech/ringpir/utils/bignum"
)

// NoiseStats reports [log2(stddev), mean] of a ciphertext's decryption
// error: DecryptRaw(s, ct) minus the rounded plaintext it decodes to,
// centered, over every coefficient of every residue. A server or test
// harness calls this after a query to sanity-check that ps.Log2Basis,
// ps.Ell and ps.N1 leave enough headroom below delta/2 (spec §7's "noise
// overflow (silent)" failure class — not detected at runtime, only by
// this kind of offline parameter check).
func NoiseStats(s *rlwe.Secret, ct *rlwe.Ciphertext, delta uint64, prec uint) [2]float64 {
	raw := rlwe.DecryptRaw(s, ct)

	var values []big.Int
	for idx, r := range ct.Rings {
		q := r.Modulus.Q
		d := delta % q
		if d == 0 {
			continue
		}
		for _, c := range raw[idx].Coeffs {
			rounded := roundDivExported(c, d, q)
			residual := r.Modulus.Sub(c, r.Modulus.Mul(rounded, d))
			centered := r.Modulus.Center(residual)
			values = append(values, *big.NewInt(centered))
		}
	}
	if len(values) == 0 {
		return [2]float64{}
	}
	return bignum.Stats(values, prec)
}

// roundDivExported mirrors rlwe.roundDiv (unexported) for the noise
// estimator: it centers x mod q and returns the quotient x/d rounded
// half away from zero. NoiseStats subtracts quotient*d from the centered
// value to get the residual that rounding discarded.
func roundDivExported(x, d, q uint64) uint64 {
	m := ring.NewModulus(q)
	centered := m.Center(x)
	var quotient int64
	if centered >= 0 {
		quotient = (centered + int64(d)/2) / int64(d)
	} else {
		quotient = (centered - int64(d)/2) / int64(d)
	}
	if quotient < 0 {
		return uint64(quotient + int64(q))
	}
	return uint64(quotient)
}
