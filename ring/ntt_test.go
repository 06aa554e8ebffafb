package ring

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// testModuli mirrors the scheme's concrete prime set (see pir.ParameterSet):
// q1, q2, bsMod, auxMod and bigMod, all 1 mod 2N for N up to 4096 (bigMod is
// the legacy single-modulus path's 50-bit prime; the kernel contract
// requires it to be correct too, even though this module no longer
// implements that path's query/answer algorithm). Small N also work for
// exercising the kernel quickly in tests.
var testModuli = []uint64{134250497, 134275073, 8404993, 134397953, 562949954093057}

func TestNTTRoundTrip(t *testing.T) {
	for _, N := range []int{16, 64, 256} {
		for _, q := range testModuli {
			t.Run("", func(t *testing.T) {
				r, err := NewRing(N, q)
				require.NoError(t, err)

				a := NewPolyCoef(N)
				for i := range a.Coeffs {
					a.Coeffs[i] = uint64(i*7+3) % q
				}

				ntt := NewPolyNTT(N)
				r.Forward(a, ntt)

				back := NewPolyCoef(N)
				r.Backward(ntt, back)

				require.Equal(t, a.Coeffs, back.Coeffs)
			})
		}
	}
}

func TestNTTMulMatchesNegacyclicConvolution(t *testing.T) {
	N := 16
	q := testModuli[0]
	r, err := NewRing(N, q)
	require.NoError(t, err)
	m := r.Modulus

	a := NewPolyCoef(N)
	b := NewPolyCoef(N)
	for i := 0; i < N; i++ {
		a.Coeffs[i] = uint64(i + 1)
		b.Coeffs[i] = uint64(2*i + 1)
	}

	// naive negacyclic convolution
	want := make([]uint64, N)
	for i := 0; i < N; i++ {
		for j := 0; j < N; j++ {
			k := i + j
			v := m.Mul(a.Coeffs[i], b.Coeffs[j])
			if k >= N {
				want[k-N] = m.Sub(want[k-N], v)
			} else {
				want[k] = m.Add(want[k], v)
			}
		}
	}

	aNTT, bNTT, cNTT := NewPolyNTT(N), NewPolyNTT(N), NewPolyNTT(N)
	r.Forward(a, aNTT)
	r.Forward(b, bNTT)
	r.MulCoeffsNTT(aNTT, bNTT, cNTT)

	got := NewPolyCoef(N)
	r.Backward(cNTT, got)

	require.Equal(t, want, got.Coeffs)
}

func TestEvalExponentSlotForExponentInverse(t *testing.T) {
	N := 64
	r, err := NewRing(N, testModuli[0])
	require.NoError(t, err)
	for slot := 0; slot < N; slot++ {
		e := r.EvalExponent(slot)
		require.Equal(t, slot, r.SlotForExponent(e))
	}
}
