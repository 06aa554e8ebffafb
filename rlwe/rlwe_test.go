package rlwe

import (
	"testing"

	"github.com/Pro7ech/ringpir/ring"
	"github.com/stretchr/testify/require"
)

func testRing(t *testing.T, N int, q uint64) *ring.Ring {
	r, err := ring.NewRing(N, q)
	require.NoError(t, err)
	return r
}

func TestEncryptDecrypt(t *testing.T) {
	N := 64
	q := uint64(134250497)
	p := uint64(7681)
	delta := q / p

	r := testRing(t, N, q)
	rr := ring.RNSRing{r}
	s := NewSecret(rr)

	m := rr.NewRNSPoly(ring.Coef)
	for k := 0; k < N; k++ {
		m[0].Coeffs[k] = uint64(k) % p
	}

	ct := Encrypt(s, m, delta)
	got := Decrypt(s, ct, delta)

	require.Equal(t, m[0].Coeffs, got[0].Coeffs)
}

func TestAutoKeyBSGSRNSValidate(t *testing.T) {
	N := 64
	q := uint64(134250497)
	r := testRing(t, N, q)
	rr := ring.RNSRing{r}
	s := NewSecret(rr)

	N1, N2 := 4, 8
	keys := GenAutoKeyBSGSRNS(s, N1, N2, 8, 2)
	require.NoError(t, keys.Validate(N1, N2))

	delete(keys.BabyStep, 2)
	err := keys.Validate(N1, N2)
	require.Error(t, err)
	require.Contains(t, err.Error(), "baby-step key family missing level 2")
}

func TestAutomorphismRoundTrip(t *testing.T) {
	// golden scenario 4: encrypt constant polynomial 5, apply sigma_5 then
	// sigma_{5^-1 mod 2N} via switching keys; decryption yields 5.
	N := 32
	q := uint64(134250497)
	p := uint64(7681)
	delta := q / p
	twoN := uint64(2 * N)

	r := testRing(t, N, q)
	rr := ring.RNSRing{r}
	s := NewSecret(rr)

	m := rr.NewRNSPoly(ring.Coef)
	m[0].Coeffs[0] = 5

	ct := Encrypt(s, m, delta)

	iFwd := ring.GaloisGen % twoN
	inv5 := modInverse(iFwd, twoN)

	// 4*7 = 28 bits of gadget cover q, so Decompose is exact.
	keyFwd := GenAutoKey(s, iFwd, 4, 7)
	keyInv := GenAutoKey(s, inv5, 4, 7)

	step1 := NewCiphertext(rr, ring.NTT)
	Automorphism(ct, iFwd, keyFwd, step1)

	step2 := NewCiphertext(rr, ring.NTT)
	Automorphism(step1, inv5, keyInv, step2)

	got := Decrypt(s, step2, delta)
	require.Equal(t, uint64(5), got[0].Coeffs[0])
}

func modInverse(a, mod uint64) uint64 {
	// extended Euclidean algorithm
	var oldR, r = int64(a), int64(mod)
	var oldS, s int64 = 1, 0
	for r != 0 {
		q := oldR / r
		oldR, r = r, oldR-q*r
		oldS, s = s, oldS-q*s
	}
	if oldS < 0 {
		oldS += int64(mod)
	}
	return uint64(oldS) % mod
}
