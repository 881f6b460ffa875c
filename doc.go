// Package longnum implements arbitrary-precision signed binary fixed-point
// numbers: values of the form sign * 2^exp * 1.significand, where exp ranges
// over the signed integers and significand holds an arbitrary, caller-chosen
// number of bits of fractional precision.
//
// The API follows the calling convention used throughout math/big and this
// package's own ancestor: most methods are of the form
//
//	func (z *Number) Op(x, y *Number) *Number
//
// setting z to a function of the arguments and returning z, so that
// operations can be chained and z may alias x or y. A Number's zero Go value
// is not a valid number (unlike math/big's types); use Zero or one of the
// New* constructors.
//
// Arithmetic here is truncating, not rounding: there is no configurable
// rounding mode, and Quo computes a bit-serial long division that discards
// any bits beyond the result's precision rather than rounding them. Round,
// when an integer result is wanted, rounds ties away from zero.
//
// Only DivisionByZero, Overflow, InvalidNumeric, and OutOfRange are reported
// as errors; anything else going wrong inside the package (a broken
// invariant) is a bug, not a catchable condition, and panics when built with
// debugLongnum enabled.
package longnum
