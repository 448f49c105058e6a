package decimal

import (
	"fmt"
	"math/big"
	"strings"
	"testing"

	"github.com/holiman/uint256"
	"github.com/stretchr/testify/require"

	"github.com/calebcase/fixed"
)

func TestOne(t *testing.T) {
	require.Equal(t, uint256.NewInt(1), Schema{}.One())
	require.Equal(t, uint256.NewInt(1_000_000_000_000_000_000), WAD.One())

	ray, _ := new(big.Int).SetString("1"+strings.Repeat("0", 27), 10)
	require.Zero(t, ray.Cmp(RAY.One().ToBig()))

	max, _ := new(big.Int).SetString("1"+strings.Repeat("0", MaxScale), 10)
	require.Zero(t, max.Cmp(Schema{Scale: MaxScale}.One().ToBig()))

	require.NoError(t, Schema{Scale: MaxScale}.Check())
	require.Error(t, Schema{Scale: MaxScale + 1}.Check())
}

func TestParseFormat(t *testing.T) {
	type TC struct {
		name   string
		schema Schema
		number string
		value  string
		format string
		err    bool
	}

	tcs := []TC{
		{
			name:   "zero",
			schema: WAD,
			number: "0",
			value:  "0",
			format: "0",
		},
		{
			name:   "one",
			schema: WAD,
			number: "1",
			value:  "1000000000000000000",
			format: "1",
		},
		{
			name:   "fraction",
			schema: WAD,
			number: "1.05",
			value:  "1050000000000000000",
			format: "1.05",
		},
		{
			name:   "leading dot",
			schema: WAD,
			number: ".5",
			value:  "500000000000000000",
			format: "0.5",
		},
		{
			name:   "trailing zeros",
			schema: WAD,
			number: "20.4700",
			value:  "20470000000000000000",
			format: "20.47",
		},
		{
			name:   "wei",
			schema: WAD,
			number: "0.000000000000000001",
			value:  "1",
			format: "0.000000000000000001",
		},
		{
			name:   "ray",
			schema: RAY,
			number: "1.000000001",
			value:  "1000000001000000000000000000",
			format: "1.000000001",
		},
		{
			name:   "no scale",
			schema: Schema{},
			number: "100",
			value:  "100",
			format: "100",
		},
		{
			name:   "too precise",
			schema: WAD,
			number: "0.0000000000000000001",
			err:    true,
		},
		{
			name:   "negative",
			schema: WAD,
			number: "-1",
			err:    true,
		},
		{
			name:   "plus sign",
			schema: WAD,
			number: "+1",
			err:    true,
		},
		{
			name:   "two dots",
			schema: WAD,
			number: "1.2.3",
			err:    true,
		},
		{
			name:   "empty",
			schema: WAD,
			number: "",
			err:    true,
		},
		{
			name:   "dot",
			schema: WAD,
			number: ".",
			err:    true,
		},
		{
			name:   "exponent",
			schema: WAD,
			number: "1e3",
			err:    true,
		},
		{
			name:   "too large",
			schema: RAY,
			number: "1" + strings.Repeat("0", 60),
			err:    true,
		},
		{
			name:   "scale too large",
			schema: Schema{Scale: MaxScale + 1},
			number: "1",
			err:    true,
		},
	}

	for i, tc := range tcs {
		t.Run(fmt.Sprintf("[%d]%s", i, tc.name), func(t *testing.T) {
			v, err := tc.schema.Parse(tc.number)
			if tc.err {
				require.Error(t, err)
				require.True(t, Error.Has(err))
				require.Nil(t, v)

				return
			}

			require.NoError(t, err)
			require.Equal(t, tc.value, v.ToBig().String())
			require.Equal(t, tc.format, tc.schema.Format(v))
		})
	}
}

func TestPow(t *testing.T) {
	type TC struct {
		name     string
		schema   Schema
		number   string
		n        uint64
		result   string
		overflow bool
	}

	tcs := []TC{
		{
			name:   "1.05^2",
			schema: RAY,
			number: "1.05",
			n:      2,
			result: "1.1025",
		},
		{
			name:   "1.1^7",
			schema: WAD,
			number: "1.1",
			n:      7,
			result: "1.9487171",
		},
		{
			name:   "0.5^3",
			schema: WAD,
			number: "0.5",
			n:      3,
			result: "0.125",
		},
		{
			name:   "2^3",
			schema: RAY,
			number: "2",
			n:      3,
			result: "8",
		},
		{
			name:   "x^0",
			schema: WAD,
			number: "123.456",
			n:      0,
			result: "1",
		},
		{
			name:   "0^0",
			schema: WAD,
			number: "0",
			n:      0,
			result: "1",
		},
		{
			name:   "0^3",
			schema: WAD,
			number: "0",
			n:      3,
			result: "0",
		},
		{
			name:   "per second rate over a year",
			schema: RAY,
			number: "1.000000001",
			n:      31536000,
			result: "1.032038528297639106730065855",
		},
		{
			name:     "overflow",
			schema:   WAD,
			number:   "1" + strings.Repeat("0", 30),
			n:        2,
			overflow: true,
		},
	}

	for i, tc := range tcs {
		t.Run(fmt.Sprintf("[%d]%s", i, tc.name), func(t *testing.T) {
			result, err := tc.schema.Pow(tc.number, tc.n)
			if tc.overflow {
				require.ErrorIs(t, err, fixed.ErrOverflow)
				require.Empty(t, result)

				return
			}

			require.NoError(t, err)
			require.Equal(t, tc.result, result)
		})
	}

	t.Run("invalid number", func(t *testing.T) {
		_, err := WAD.Pow("abc", 2)
		require.Error(t, err)
		require.True(t, Error.Has(err))
	})
}
