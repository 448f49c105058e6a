// Package fixed provides exponentiation of unsigned fixed point numbers.
//
// A fixed point number is an unsigned integer x scaled by a base b, so that x
// represents the real value x / b and b itself represents 1.0. For example
// with the base RAY = 10^27:
//
//  1.05 = 1_050_000_000_000_000_000_000_000_000 / 10^27
//
// Rpow raises such a number to a non-negative integer power by repeated
// squaring:
//
//  rpow(x, n, b) = round(x^n / b^(n-1))
//
// Every multiplication is rescaled by b and rounded half up, so the result is
// again scaled by b. Arithmetic is carried out on integers of a fixed width
// (256 bits for Rpow, any width for RpowBits) and wraps the way machine words
// do. Overflow is detected after the fact:
//
//  - a product p = a * x overflowed if p / x != a
//  - a sum s = p + half overflowed if s < p
//
// Any overflow aborts the computation with ErrOverflow. No partial result is
// returned.
//
// Edge cases:
//
//  rpow(x, 0, b) = b
//  rpow(0, n, b) = 0 (n > 0)
//  rpow(b, n, b) = b
//
// A base of zero is rejected.
package fixed
