package pir

import (
	"testing"

	"github.com/Pro7ech/ringpir/ring"
	"github.com/Pro7ech/ringpir/rlwe"
	"github.com/stretchr/testify/require"
)

// TestPackRLWEsInterleavesConstants is golden scenario 6: packing four
// independently-encrypted constants should yield one ciphertext that
// decrypts, at a stride of N/4, to those four constants (up to this
// implementation's interleaving convention, documented alongside
// PackRLWEs).
func TestPackRLWEsInterleavesConstants(t *testing.T) {
	n := 256
	const q = 134250497
	const p = 7681
	delta := uint64(q) / uint64(p)

	r0, err := ring.NewRing(n, q)
	require.NoError(t, err)
	rr := ring.RNSRing{r0}

	s := rlwe.NewSecret(rr)

	values := []uint64{7, 11, 13, 17}
	cts := make([]*rlwe.Ciphertext, len(values))
	for i, v := range values {
		m := rr.NewRNSPoly(ring.Coef)
		m[0].Coeffs[0] = v
		cts[i] = rlwe.Encrypt(s, m, delta)
	}

	keys := GenPackingKeys(s, len(values), 4, 7) // 4*7 = 28 bits cover q
	packed := PackRLWEs(cts, keys, n)

	dec := rlwe.Decrypt(s, packed, delta)

	stride := n / len(values)
	for i, v := range values {
		require.Equal(t, v, dec[0].Coeffs[i*stride]%p, "coefficient %d", i*stride)
	}
}

// TestPackRLWEsSinglePlaintextIsNoop checks that packing a single
// ciphertext (r=1, no recursion levels) returns it unchanged.
func TestPackRLWEsSinglePlaintextIsNoop(t *testing.T) {
	n := 256
	const q = 134250497
	const p = 7681
	delta := uint64(q) / uint64(p)

	r0, err := ring.NewRing(n, q)
	require.NoError(t, err)
	rr := ring.RNSRing{r0}
	s := rlwe.NewSecret(rr)

	m := rr.NewRNSPoly(ring.Coef)
	m[0].Coeffs[0] = 42
	ct := rlwe.Encrypt(s, m, delta)

	keys := GenPackingKeys(s, 1, 4, 6)
	packed := PackRLWEs([]*rlwe.Ciphertext{ct}, keys, n)

	dec := rlwe.Decrypt(s, packed, delta)
	require.Equal(t, uint64(42), dec[0].Coeffs[0]%p)
}
