package decimal

import (
	"math/big"
	"strings"

	"github.com/holiman/uint256"
	"github.com/zeebo/errs"

	"github.com/calebcase/fixed"
)

// Error is the error class for this package.
var Error = errs.Class("decimal")

// MaxScale is the largest scale whose one fits 256 bits.
const MaxScale = 77

// Schema represents a configured number format.
type Schema struct {
	Scale uint8
}

// Well known units.
var (
	WAD = Schema{Scale: 18}
	RAY = Schema{Scale: 27}
)

// Check returns an error if the scale is too large.
func (s Schema) Check() (err error) {
	if s.Scale > MaxScale {
		return Error.New("scale too large: scale=%d max=%d", s.Scale, MaxScale)
	}

	return nil
}

// One returns the fixed point one, 10^Scale.
func (s Schema) One() *uint256.Int {
	return new(uint256.Int).Exp(uint256.NewInt(10), uint256.NewInt(uint64(s.Scale)))
}

// Parse returns the scaled integer for the decimal string.
func (s Schema) Parse(number string) (v *uint256.Int, err error) {
	defer Error.WrapP(&err)

	err = s.Check()
	if err != nil {
		return nil, err
	}

	parts := strings.Split(number, ".")
	if len(parts) > 2 {
		return nil, Error.New("invalid number: %q", number)
	}

	whole, frac := parts[0], ""
	if len(parts) == 2 {
		frac = parts[1]
	}

	if whole == "" && frac == "" {
		return nil, Error.New("invalid number: %q", number)
	}

	if len(frac) > int(s.Scale) {
		return nil, Error.New("too many fractional digits: scale=%d number=%q", s.Scale, number)
	}

	// 42.123 (scale 6) -> "42" + "123" + "000"
	raw := whole + frac + strings.Repeat("0", int(s.Scale)-len(frac))

	for _, r := range raw {
		if r < '0' || r > '9' {
			return nil, Error.New("invalid number: %q", number)
		}
	}

	i, ok := new(big.Int).SetString(raw, 10)
	if !ok {
		return nil, Error.New("invalid number: %q", number)
	}

	v, overflow := uint256.FromBig(i)
	if overflow {
		return nil, Error.New("out of range: %q", number)
	}

	return v, nil
}

// Format returns the decimal string for the scaled integer.
func (s Schema) Format(v *uint256.Int) string {
	raw := v.ToBig().String()
	l, d := len(raw), int(s.Scale)

	if d == 0 {
		return raw
	}

	var result string

	switch {
	case l > d:
		index := l - d
		result = raw[:index] + "." + raw[index:]
	case l == d:
		result = "0." + raw
	case l < d:
		result = "0." + strings.Repeat("0", d-l) + raw
	}

	return strings.TrimRight(strings.TrimRight(result, "0"), ".")
}

// Pow parses number, raises it to the n-th power with Rpow using the schema's
// one as the base, and formats the result. Overflow is reported as
// fixed.ErrOverflow.
func (s Schema) Pow(number string, n uint64) (_ string, err error) {
	x, err := s.Parse(number)
	if err != nil {
		return "", err
	}

	z, err := fixed.Rpow(x, uint256.NewInt(n), s.One())
	if err != nil {
		return "", err
	}

	return s.Format(z), nil
}
