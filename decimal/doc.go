// Package decimal provides base 10 fixed point units for use with Rpow.
//
// The equation for a decimal number is:
//
//  number = value * 10 ^ -scale
//
// Where number is the fixed point number, value is an unsigned 256 bit
// integer, and scale is the count of fractional digits. For example with a
// scale of 18:
//
//  1.23 = 1_230_000_000_000_000_000 * 10^-18
//
// The fixed point one of a schema is 10^scale. It is the base passed to Rpow.
//
// Well Known Units
//
//  | Unit | Scale | One   |
//  |------|-------|-------|
//  | WAD  | 18    | 10^18 |
//  | RAY  | 27    | 10^27 |
//  |------|-------|-------|
//
// Scale may be up to 77, the largest power of ten that fits 256 bits.
//
// Parsing
//
// Numbers are plain unsigned decimal strings with an optional fractional part:
//
//  "42"     -> 42 * 10^scale
//  "0.042"  -> 42 * 10^(scale-3)
//  ".5"     -> 5 * 10^(scale-1)
//
// Signs, exponents, separators and more fractional digits than the scale
// allows are rejected.
//
// Formatting
//
// Values are printed with trailing fractional zeros removed:
//
//  1_102_500_000_000_000_000 (scale 18) -> "1.1025"
//  2_000_000_000_000_000_000 (scale 18) -> "2"
//
package decimal
