package longnum

// This file implements the arithmetic operators directly on significand
// limbs, following longnum.cpp's operator+=/-=/*//= limb by limb: addition
// and subtraction align operands via getWithOffset (which synthesizes each
// operand's implicit leading one) and ripple a 32-bit carry/borrow from the
// least-significant limb upward using addLimbs/subLimbs; multiplication is
// the schoolbook double loop over both operands' limbs, carrying 64-bit
// partial products a limb at a time; division is bit-serial long division,
// repeatedly comparing and subtracting the divisor shifted one bit at a
// time. Add/Sub/Mul/Quo all snapshot x and y by value before touching z, so
// z may alias either operand (or both) the way math/big's methods do.

func maxU32(a, b uint32) uint32 {
	if a > b {
		return a
	}
	return b
}

// negated returns a Number equal to -x, sharing x's significand storage
// (read-only use only: this value must never be passed as a mutation
// destination).
func (x *Number) negated() *Number {
	if x.IsZero() {
		return x
	}
	r := *x
	r.neg = !x.neg
	return &r
}

// addAssign sets z to z+rhs, mirroring longnum.cpp's operator+=.
func (z *Number) addAssign(rhs *Number) {
	if z.sig.prec < rhs.sig.prec {
		z.sig.setPrecision(rhs.sig.prec)
	}
	if rhs.IsZero() {
		return
	}
	if z.IsZero() {
		*z = *rhs.WithPrecision(z.sig.prec)
		return
	}
	if z.neg != rhs.neg {
		z.subAssign(rhs.negated())
		return
	}
	sameExp := rhs.exp == z.exp
	if rhs.exp > z.exp {
		shift := uint32(rhs.exp - z.exp)
		z.sig.insertFrontZeros(shift)
		if shift <= z.sig.prec {
			z.sig.setBit(shift - 1)
		}
		z.exp = rhs.exp
	}
	z.sig.detach()
	size := z.sig.size()
	var carry uint32
	for i := int64(size) - 1; i >= 0; i-- {
		rhsLimb := rhs.sig.getWithOffset(rhs.exp-z.exp, uint32(i))
		carry = addLimbs(&z.sig.limbs[i], rhsLimb, carry)
	}
	if sameExp {
		carry++
	}
	if carry >= 1 {
		z.sig.insertFrontZeros(1)
		z.exp++
	}
	if carry == 2 {
		z.sig.setBit(0)
	}
}

// subAssign sets z to z-rhs, mirroring longnum.cpp's operator-=.
func (z *Number) subAssign(rhs *Number) {
	if z.sig.prec < rhs.sig.prec {
		z.sig.setPrecision(rhs.sig.prec)
	}
	if rhs.IsZero() {
		return
	}
	if z.IsZero() {
		z.Neg(rhs.WithPrecision(z.sig.prec))
		return
	}
	if Equal(z, rhs) {
		prec := z.sig.prec
		*z = Number{exp: expZero, sig: significand{prec: prec}}
		return
	}
	if z.neg != rhs.neg {
		z.addAssign(rhs.negated())
		return
	}
	if cmpMagnitude(z, rhs) < 0 {
		tmp := rhs.WithPrecision(z.sig.prec)
		tmp.subAssign(z)
		z.Neg(tmp)
		return
	}
	// |z| >= |rhs|, same sign: z.exp >= rhs.exp is guaranteed.
	z.sig.detach()
	size := z.sig.size()
	var carry uint32
	for i := int64(size) - 1; i >= 0; i-- {
		rhsLimb := rhs.sig.getWithOffset(rhs.exp-z.exp, uint32(i))
		carry = subLimbs(&z.sig.limbs[i], rhsLimb, carry)
	}
	if rhs.exp == z.exp {
		carry++
	}
	if carry == 1 {
		lz, _ := z.sig.leadingZeros()
		z.sig.removeFrontBits(lz + 1)
		z.exp -= int64(lz) + 1
	}
}

// Add sets z to the (truncated, at the wider of x's and y's precision) sum
// x+y and returns z.
func (z *Number) Add(x, y *Number) *Number {
	xc, yc := *x, *y
	z.Set(&xc)
	z.addAssign(&yc)
	return z
}

// Sub sets z to the (truncated) difference x-y and returns z.
func (z *Number) Sub(x, y *Number) *Number {
	xc, yc := *x, *y
	z.Set(&xc)
	z.subAssign(&yc)
	return z
}

// Neg sets z to -x and returns z.
func (z *Number) Neg(x *Number) *Number {
	z.Set(x)
	if !z.IsZero() {
		z.neg = !z.neg
	}
	return z
}

// Abs sets z to |x| and returns z.
func (z *Number) Abs(x *Number) *Number {
	z.Set(x)
	z.neg = false
	return z
}

// mulMagnitude computes the schoolbook product of x and y's significands
// (implicit leading ones included) at scratch precision x.prec+y.prec+32,
// mirroring longnum.cpp's operator*: result starts as a clone of y's
// significand (the "+y" cross term from (1+x)(1+y) = 1+x+y+xy), grown with
// zero limbs to the scratch width, then each limb of x is multiplied
// against every limb of y (plus y's implicit 1, at j=-1) and accumulated
// into result with a 64-bit product and a carry chain propagated upward.
func mulMagnitude(x, y *Number) (significand, uint32) {
	result := y.sig.cloned()
	scratchPrec := x.sig.prec + y.sig.prec + wordBits
	result.setPrecision(scratchPrec)

	xSize := int64(x.sig.size())
	ySize := int64(y.sig.size())
	var bigCarry uint32
	for i := xSize - 1; i >= 0; i-- {
		for j := ySize - 1; j >= -1; j-- {
			mult := uint64(1)
			if j >= 0 {
				mult = uint64(y.sig.get(uint32(j)))
			}
			p := i + j + 1
			limbResult := uint64(result.get(uint32(p))) + uint64(x.sig.get(uint32(i)))*mult
			result.limbs[p] = Word(limbResult)
			if i+j < 0 {
				bigCarry += uint32(limbResult >> 32)
				continue
			}
			carry := addLimbs(&result.limbs[i+j], Word(limbResult>>32), 0)
			for k := i + j - 1; carry != 0 && k >= 0; k-- {
				carry = addLimbs(&result.limbs[k], 0, carry)
			}
			bigCarry += carry
		}
	}
	if bigCarry >= 1 {
		result.insertFrontZeros(1)
	}
	if bigCarry == 2 {
		result.setBit(0)
	}
	result.setPrecision(maxU32(x.sig.prec, y.sig.prec))
	return result, bigCarry
}

// Mul sets z to the (truncated) product x*y and returns z.
func (z *Number) Mul(x, y *Number) *Number {
	xc, yc := *x, *y
	if xc.IsZero() || yc.IsZero() {
		prec := maxU32(xc.sig.prec, yc.sig.prec)
		*z = Number{exp: expZero, sig: significand{prec: prec}}
		return z
	}
	sig, bigCarry := mulMagnitude(&xc, &yc)
	exp := xc.exp + yc.exp
	if bigCarry >= 1 {
		exp++
	}
	*z = Number{sig: sig, exp: exp, neg: xc.neg != yc.neg}
	return z
}

// Quo sets z to the (truncated) quotient x/y and returns z. It reports a
// DivisionByZero error, leaving z unmodified, if y is zero. Mirrors
// longnum.cpp's operator/=: the dividend is repeatedly compared against the
// divisor shifted one bit at a time and subtracted (via Number's own
// Sub/subAssign machinery, reusing the limb-level subtraction above) with
// each successful subtraction setting a quotient bit.
func (z *Number) Quo(x, y *Number) (*Number, error) {
	if y.IsZero() {
		return z, errorf(DivisionByZero, "division by zero")
	}
	xc, yc := *x, *y
	a := new(Number).Set(&xc)
	if a.sig.prec < yc.sig.prec {
		a.sig.setPrecision(yc.sig.prec)
	}
	if a.IsZero() {
		*z = Number{exp: expZero, sig: significand{prec: a.sig.prec}}
		return z, nil
	}
	resultPrec := maxU32(a.sig.prec, yc.sig.prec)
	result := &Number{neg: a.neg != yc.neg, exp: a.exp - yc.exp, sig: significand{prec: resultPrec}}

	if a.neg != yc.neg {
		a.neg = !a.neg
	}
	a.exp = yc.exp

	leadingBit := cmpMagnitude(a, &yc) >= 0
	if leadingBit {
		a.subAssign(&yc)
	}
	for shift := int64(1); !a.IsZero() && shift < int64(resultPrec); shift++ {
		shifted := new(Number).Shr(&yc, shift)
		if cmpMagnitude(a, shifted) >= 0 {
			a.subAssign(shifted)
			result.sig.setBit(uint32(shift - 1))
		}
	}
	if !leadingBit {
		result.sig.removeFrontBits(1)
		result.exp--
	}
	*z = *result
	return z, nil
}

// Shl sets z to x * 2^n and returns z. Shifting only adjusts the exponent.
func (z *Number) Shl(x *Number, n int64) *Number {
	z.Set(x)
	if !z.IsZero() {
		z.exp += n
	}
	return z
}

// Shr sets z to x / 2^n and returns z.
func (z *Number) Shr(x *Number, n int64) *Number {
	return z.Shl(x, -n)
}
