package fixed

import (
	"math/big"

	"github.com/calebcase/oops"

	"github.com/calebcase/fixed/integer"
)

// RpowBits is Rpow computed with integers that are the given number of bits
// wide. The overflow boundary moves with the width: RpowBits(64, ...) fails
// wherever 64 bit machine arithmetic would, and RpowBits(256, ...) agrees
// with Rpow.
//
// Operands must fit the width. The operands are not modified.
func RpowBits(bits uint, x, n, b *big.Int) (z *big.Int, err error) {
	s := integer.Schema{Bits: bits}

	for _, v := range []*big.Int{x, n, b} {
		err = s.Check(v)
		if err != nil {
			return nil, oops.Trace(err)
		}
	}

	if b.Sign() == 0 {
		return nil, oops.Trace(ErrZeroBase)
	}

	if x.Sign() == 0 {
		if n.Sign() == 0 {
			return new(big.Int).Set(b), nil
		}

		return new(big.Int), nil
	}

	n = new(big.Int).Set(n)

	if n.Bit(0) == 1 {
		z = new(big.Int).Set(x)
	} else {
		z = new(big.Int).Set(b)
	}

	half := new(big.Int).Rsh(b, 1)

	for n.Rsh(n, 1); n.Sign() > 0; n.Rsh(n, 1) {
		xx := s.Mul(x, x)
		if s.Div(xx, x).Cmp(x) != 0 {
			return nil, ErrOverflow
		}

		xxRound := s.Add(xx, half)
		if xxRound.Cmp(xx) < 0 {
			return nil, ErrOverflow
		}

		x = s.Div(xxRound, b)

		if n.Bit(0) == 1 {
			zx := s.Mul(z, x)
			if x.Sign() != 0 && s.Div(zx, x).Cmp(z) != 0 {
				return nil, ErrOverflow
			}

			zxRound := s.Add(zx, half)
			if zxRound.Cmp(zx) < 0 {
				return nil, ErrOverflow
			}

			z = s.Div(zxRound, b)
		}
	}

	return z, nil
}
