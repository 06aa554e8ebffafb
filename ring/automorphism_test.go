package ring

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAutomorphismIsRingHomomorphism(t *testing.T) {
	N := 16
	q := testModuli[0]
	r, err := NewRing(N, q)
	require.NoError(t, err)
	m := r.Modulus

	a := NewPolyCoef(N)
	b := NewPolyCoef(N)
	for i := 0; i < N; i++ {
		a.Coeffs[i] = uint64(3*i + 1)
		b.Coeffs[i] = uint64(5*i + 2)
	}

	prod := NewPolyCoef(N)
	for i := 0; i < N; i++ {
		for j := 0; j < N; j++ {
			k := i + j
			v := m.Mul(a.Coeffs[i], b.Coeffs[j])
			if k >= N {
				prod.Coeffs[k-N] = m.Sub(prod.Coeffs[k-N], v)
			} else {
				prod.Coeffs[k] = m.Add(prod.Coeffs[k], v)
			}
		}
	}

	tbl := r.GenAutomorphismIndex(5)

	sigmaA, sigmaB, sigmaProd := NewPolyCoef(N), NewPolyCoef(N), NewPolyCoef(N)
	r.Automorphism(a, tbl, sigmaA)
	r.Automorphism(b, tbl, sigmaB)
	r.Automorphism(prod, tbl, sigmaProd)

	// sigma_i(a)*sigma_i(b) must equal sigma_i(a*b)
	got := NewPolyCoef(N)
	for i := 0; i < N; i++ {
		for j := 0; j < N; j++ {
			k := i + j
			v := m.Mul(sigmaA.Coeffs[i], sigmaB.Coeffs[j])
			if k >= N {
				got.Coeffs[k-N] = m.Sub(got.Coeffs[k-N], v)
			} else {
				got.Coeffs[k] = m.Add(got.Coeffs[k], v)
			}
		}
	}

	require.Equal(t, sigmaProd.Coeffs, got.Coeffs)
}

func TestAutomorphismNTTMatchesCoefDomain(t *testing.T) {
	N := 32
	q := testModuli[0]
	r, err := NewRing(N, q)
	require.NoError(t, err)

	a := NewPolyCoef(N)
	for i := 0; i < N; i++ {
		a.Coeffs[i] = uint64(2*i + 7)
	}

	aNTT := NewPolyNTT(N)
	r.Forward(a, aNTT)

	coefTbl := r.GenAutomorphismIndex(GaloisGen)
	sigmaACoef := NewPolyCoef(N)
	r.Automorphism(a, coefTbl, sigmaACoef)
	sigmaANTTFromCoef := NewPolyNTT(N)
	r.Forward(sigmaACoef, sigmaANTTFromCoef)

	nttTbl := r.GenAutomorphismNTTIndex(GaloisGen)
	sigmaANTT := NewPolyNTT(N)
	r.AutomorphismNTT(aNTT, nttTbl, sigmaANTT)

	require.Equal(t, sigmaANTTFromCoef.Coeffs, sigmaANTT.Coeffs)
}
