package pir

import (
	"testing"

	"github.com/Pro7ech/ringpir/ring"
	"github.com/Pro7ech/ringpir/rlwe"
	"github.com/stretchr/testify/require"
)

// TestNoiseStatsIsSmallAfterEncrypt checks that a freshly-encrypted
// ciphertext's noise estimate, reported as log2(stddev), stays well below
// log2(delta/2): if it didn't, decryption would already be unreliable
// before any homomorphic operation.
func TestNoiseStatsIsSmallAfterEncrypt(t *testing.T) {
	n := 256
	const q = 134250497
	const p = 7681
	delta := uint64(q) / uint64(p)

	r0, err := ring.NewRing(n, q)
	require.NoError(t, err)
	rr := ring.RNSRing{r0}
	s := rlwe.NewSecret(rr)

	m := rr.NewRNSPoly(ring.Coef)
	m[0].Coeffs[0] = 99
	ct := rlwe.Encrypt(s, m, delta)

	stats := NoiseStats(s, ct, delta, 64)

	log2HalfDelta := 0.0
	for d := delta / 2; d > 1; d >>= 1 {
		log2HalfDelta++
	}

	require.Less(t, stats[0], log2HalfDelta)
}
