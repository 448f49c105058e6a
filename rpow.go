package fixed

import (
	"github.com/calebcase/oops"
	"github.com/holiman/uint256"
	"github.com/zeebo/errs"
)

// Error is the error class for this package.
var Error = errs.Class("fixed")

// ErrOverflow is returned when an intermediate product or rounding sum does
// not fit the integer width.
var ErrOverflow = Error.New("overflow")

// ErrZeroBase is returned when the base is zero.
var ErrZeroBase = Error.New("zero base")

// Rpow returns x^n where x and the result are fixed point numbers with base b.
// Arithmetic is 256 bit. If any step overflows it returns nil and ErrOverflow.
//
// The operands are not modified.
func Rpow(x, n, b *uint256.Int) (z *uint256.Int, err error) {
	if x == nil || n == nil || b == nil {
		return nil, oops.Trace(Error.New("nil operand"))
	}

	if b.IsZero() {
		return nil, oops.Trace(ErrZeroBase)
	}

	if x.IsZero() {
		if n.IsZero() {
			return b.Clone(), nil
		}

		return new(uint256.Int), nil
	}

	x = x.Clone()
	n = n.Clone()

	if odd(n) {
		z = x.Clone()
	} else {
		z = b.Clone()
	}

	half := new(uint256.Int).Rsh(b, 1)

	var xx, xxRound, zx, zxRound, q uint256.Int

	for n.Rsh(n, 1); !n.IsZero(); n.Rsh(n, 1) {
		xx.Mul(x, x)
		if !q.Div(&xx, x).Eq(x) {
			return nil, ErrOverflow
		}

		xxRound.Add(&xx, half)
		if xxRound.Lt(&xx) {
			return nil, ErrOverflow
		}

		// Division by zero yields zero, so an operand that rounded down to
		// zero passes the check above on the next iteration.
		x.Div(&xxRound, b)

		if odd(n) {
			zx.Mul(z, x)
			if !x.IsZero() && !q.Div(&zx, x).Eq(z) {
				return nil, ErrOverflow
			}

			zxRound.Add(&zx, half)
			if zxRound.Lt(&zx) {
				return nil, ErrOverflow
			}

			z.Div(&zxRound, b)
		}
	}

	return z, nil
}

func odd(n *uint256.Int) bool {
	return n.Uint64()&1 == 1
}
