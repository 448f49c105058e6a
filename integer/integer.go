package integer

import (
	"math/big"

	"github.com/zeebo/errs"
)

// Error is the error class for this package.
var Error = errs.Class("integer")

var one = big.NewInt(1)

// Schema for an unsigned integer of fixed width. Arithmetic performed through
// a schema wraps modulo 2^Bits the way machine words do.
type Schema struct {
	Bits uint
}

// Common widths.
var (
	U64  = Schema{Bits: 64}
	U128 = Schema{Bits: 128}
	U256 = Schema{Bits: 256}
)

// Max returns the largest value representable by the schema.
func (s Schema) Max() *big.Int {
	m := new(big.Int).Lsh(one, s.Bits)

	return m.Sub(m, one)
}

// Valid returns true if i is non-nil and fits the schema.
func (s Schema) Valid(i *big.Int) bool {
	return i != nil && i.Sign() >= 0 && i.BitLen() <= int(s.Bits)
}

// Check returns an error if the schema has no width or i does not fit it.
func (s Schema) Check(i *big.Int) (err error) {
	switch {
	case s.Bits == 0:
		return Error.New("invalid width: bits=0")
	case i == nil:
		return Error.New("nil value")
	case !s.Valid(i):
		return Error.New("out of range: bits=%d value=%s", s.Bits, i)
	}

	return nil
}

// Mul returns x * y modulo 2^Bits.
func (s Schema) Mul(x, y *big.Int) *big.Int {
	return s.wrap(new(big.Int).Mul(x, y))
}

// Add returns x + y modulo 2^Bits.
func (s Schema) Add(x, y *big.Int) *big.Int {
	return s.wrap(new(big.Int).Add(x, y))
}

// Div returns x / y truncated. Division by zero yields zero.
func (s Schema) Div(x, y *big.Int) *big.Int {
	if y.Sign() == 0 {
		return new(big.Int)
	}

	return new(big.Int).Quo(x, y)
}

// wrap reduces a non-negative i modulo 2^Bits in place.
func (s Schema) wrap(i *big.Int) *big.Int {
	return i.And(i, s.Max())
}
