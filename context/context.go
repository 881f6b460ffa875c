// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package context provides a precision-bound wrapper around longnum.Number,
// for code that repeatedly constructs and operates on Numbers at a single,
// fixed precision and would otherwise have to thread that precision through
// every call site.
//
// All factory functions of the form
//
//	func (c *Context) NewT(x T) *longnum.Number
//
// create a new longnum.Number set to the value of x, at c's precision.
//
// Operators of the form
//
//	func (c *Context) BinaryOp(z, x, y *longnum.Number) *longnum.Number
//
// set z to the result of z.Op(x, y), then force z to c's precision, and
// return z.
//
// Unlike its ancestor (db47h/decimal's context package), this Context has no
// rounding mode: longnum.Number has only one division behavior, truncating
// bit-serial long division, so there is no IEEE-754 rounding mode to select
// and nothing analogous to a quiet-NaN latch to carry between calls. Errors
// (DivisionByZero, Overflow, InvalidNumeric, OutOfRange) are returned
// directly by the operation that can fail, same as longnum itself.
package context

import "github.com/maximxlss/longnum"

// A Context wraps a single, fixed precision used to construct and operate on
// Numbers.
type Context struct {
	prec uint32
}

// New creates a new Context with the given precision, in bits of fractional
// significand kept by every Number it constructs or computes into. If prec
// is 0, longnum.DefaultPrecision is used.
func New(prec uint32) *Context {
	return new(Context).SetPrec(prec)
}

// Prec returns c's precision, in bits.
func (c *Context) Prec() uint32 {
	return c.prec
}

// SetPrec sets c's precision and returns c.
func (c *Context) SetPrec(prec uint32) *Context {
	if prec == 0 {
		prec = longnum.DefaultPrecision
	}
	c.prec = prec
	return c
}

// New returns a new Number with value 0 at c's precision.
func (c *Context) New() *longnum.Number {
	return longnum.Zero().SetPrecision(c.prec)
}

// NewInt64 returns a new Number set to the value of x, at c's precision.
func (c *Context) NewInt64(x int64) *longnum.Number {
	return longnum.NewFromInt64(x).WithPrecision(c.prec)
}

// NewUint64 returns a new Number set to the value of x, at c's precision.
func (c *Context) NewUint64(x uint64) *longnum.Number {
	return longnum.NewFromUint64(x).WithPrecision(c.prec)
}

// NewFloat64 returns a new Number set to the value of x, at c's precision.
func (c *Context) NewFloat64(x float64) *longnum.Number {
	return longnum.NewFromFloat64(x).WithPrecision(c.prec)
}

// NewString returns a new Number parsed from s in the given base (2-16), at
// c's precision, and the success of the parse. The entire string (not just a
// prefix) must be valid for success.
func (c *Context) NewString(s string, base int) (n *longnum.Number, ok bool) {
	n, err := longnum.ParseString(s, base)
	if err != nil {
		return nil, false
	}
	return n.WithPrecision(c.prec), true
}

// apply forces z's precision to c's and returns z.
func (c *Context) apply(z *longnum.Number) *longnum.Number {
	return z.SetPrecision(c.prec)
}

// Add sets z to the sum x+y, truncated to c's precision, and returns z.
func (c *Context) Add(z, x, y *longnum.Number) *longnum.Number {
	return c.apply(z.Add(x, y))
}

// Sub sets z to the difference x-y, truncated to c's precision, and returns z.
func (c *Context) Sub(z, x, y *longnum.Number) *longnum.Number {
	return c.apply(z.Sub(x, y))
}

// Mul sets z to the product x*y, truncated to c's precision, and returns z.
func (c *Context) Mul(z, x, y *longnum.Number) *longnum.Number {
	return c.apply(z.Mul(x, y))
}

// Quo sets z to the quotient x/y, truncated to c's precision, and returns z.
// It reports a DivisionByZero error, leaving z unmodified, if y is zero.
func (c *Context) Quo(z, x, y *longnum.Number) (*longnum.Number, error) {
	if _, err := z.Quo(x, y); err != nil {
		return z, err
	}
	return c.apply(z), nil
}

// Neg sets z to -x, at c's precision, and returns z.
func (c *Context) Neg(z, x *longnum.Number) *longnum.Number {
	return c.apply(z.Neg(x))
}

// Abs sets z to |x|, at c's precision, and returns z.
func (c *Context) Abs(z, x *longnum.Number) *longnum.Number {
	return c.apply(z.Abs(x))
}

// Pow sets z to x raised to the non-negative integer power e, at c's
// precision, and returns z.
func (c *Context) Pow(z, x *longnum.Number, e uint64) *longnum.Number {
	return c.apply(z.Pow(x, e))
}
