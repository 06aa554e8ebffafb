package bignum

import (
	"crypto/rand"
	"fmt"
	"io"
	"math/big"

	"github.com/ALTree/bigfloat"
)

// NewInt allocates a new *big.Int.
// Accepted types are: string, uint, uint64, int64, int, *big.Float or *big.Int.
func NewInt(x interface{}) (y *big.Int) {

	y = new(big.Int)

	if x == nil {
		return
	}

	switch x := x.(type) {
	case string:
		y.SetString(x, 0)
	case uint:
		y.SetUint64(uint64(x))
	case uint64:
		y.SetUint64(x)
	case int64:
		y.SetInt64(x)
	case int:
		y.SetInt64(int64(x))
	case *big.Float:
		x.Int(y)
	case *big.Int:
		y.Set(x)
	default:
		panic(fmt.Sprintf("cannot Newint: accepted types are string, uint, uint64, int, int64, *big.Float, *big.Int, but is %T", x))
	}

	return
}

// RandInt generates a random Int in [0, max-1].
func RandInt(reader io.Reader, max *big.Int) (n *big.Int) {
	var err error
	if n, err = rand.Int(reader, max); err != nil {
		panic(fmt.Errorf("rand.Int: %w", err))
	}
	return
}

// DivRound sets the target i to round(a/b).
func DivRound(a, b, i *big.Int) {
	_a := new(big.Int).Set(a)
	i.Quo(_a, b)
	r := new(big.Int).Rem(_a, b)
	r2 := new(big.Int).Mul(r, NewInt(2))
	if r2.CmpAbs(b) != -1.0 {
		if _a.Sign() == b.Sign() {
			i.Add(i, NewInt(1))
		} else {
			i.Sub(i, NewInt(1))
		}
	}
}

// Stats returns [log2(stddev), mean] of values, computed at the given
// big.Float precision. Grounded on the teacher's noise-statistics helper
// of the same name and signature.
func Stats(values []big.Int, prec uint) [2]float64 {

	N := len(values)

	mean := new(big.Float).SetPrec(prec)
	tmp := new(big.Float).SetPrec(prec)

	for i := 0; i < N; i++ {
		mean.Add(mean, tmp.SetInt(&values[i]))
	}

	mean.Quo(mean, new(big.Float).SetPrec(prec).SetInt64(int64(N)))

	stdFloat := new(big.Float).SetPrec(prec)

	for i := 0; i < N; i++ {
		tmp.SetInt(&values[i])
		tmp.Sub(tmp, mean)
		tmp.Mul(tmp, tmp)
		stdFloat.Add(stdFloat, tmp)
	}

	stdFloat.Quo(stdFloat, new(big.Float).SetPrec(prec).SetInt64(int64(N-1)))

	stdFloat.Sqrt(stdFloat)

	log2Std := new(big.Float).SetPrec(prec)
	if stdFloat.Sign() > 0 {
		two := new(big.Float).SetPrec(prec).SetInt64(2)
		log2Std.Quo(bigfloat.Log(stdFloat), bigfloat.Log(two))
	}

	log2StdF64, _ := log2Std.Float64()
	meanF64, _ := mean.Float64()

	return [2]float64{log2StdF64, meanF64}
}
