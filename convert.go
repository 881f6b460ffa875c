package longnum

import (
	"math"
	"strings"
)

// Text returns x formatted in the given base (2-16). Base 2 is an exact,
// bit-for-bit conversion (see binaryText/ParseBinary); bases 3-16 are
// approximate, obtained by repeated multiply/divide against the base, the
// same way the original library's to_string/from_string pair works, rather
// than by reinterpreting the stored bits directly (which only base 2
// permits exactly).
func (x *Number) Text(base int) (string, error) {
	if base == 2 {
		return x.binaryText(), nil
	}
	if base < 2 || base > 16 {
		return "", errorf(OutOfRange, "base %d not in [2,16]", base)
	}
	if x.IsZero() {
		return "0", nil
	}
	var sb strings.Builder
	if x.neg {
		sb.WriteByte('-')
	}
	abs := new(Number).Abs(x)
	var intPart, frac Number
	intPart.Truncate(abs)
	if abs.exp > int64(intPart.sig.prec) {
		intPart.SetPrecision(uint32(abs.exp))
	}
	frac.Frac(abs)

	sb.WriteString(intToBaseDigits(&intPart, base))

	exp := abs.exp
	if exp < 0 {
		exp = 0
	}
	numFracDigits := int(float64(int64(abs.sig.prec)-exp)/math.Log2(float64(base))) + 1
	if numFracDigits > 0 && !frac.IsZero() {
		sb.WriteByte('.')
		baseN := NewFromUint64(uint64(base)).WithPrecision(frac.sig.prec)
		f := new(Number).Set(&frac)
		for i := 0; i < numFracDigits; i++ {
			f.Mul(f, baseN)
			var digitPart Number
			digitPart.Truncate(f)
			d, _ := digitPart.ToInt()
			sb.WriteByte(digitChar(int(d)))
			f.Sub(f, &digitPart)
			if f.IsZero() {
				break
			}
		}
	}
	return sb.String(), nil
}

// binaryText formats x exactly, as plain-positional binary text (an
// optional sign, binary digits, and an optional '.' at the binary point):
// when exponent is negative it emits "0." followed by
// the run of leading fractional zeros and the leading one; otherwise it
// emits the leading one, the next exponent bits of significand as the rest
// of the integer part (zero-padded if the significand is shorter), and any
// remaining significand bits after a '.'.
func (x *Number) binaryText() string {
	if x.IsZero() {
		return "0"
	}
	var sb strings.Builder
	if x.neg {
		sb.WriteByte('-')
	}
	if x.exp < 0 {
		sb.WriteString("0.")
		for i := int64(0); i < -1-x.exp; i++ {
			sb.WriteByte('0')
		}
		sb.WriteByte('1')
		for i := uint32(0); i < x.sig.prec; i++ {
			sb.WriteByte(bitChar(x.sig.getBit(i)))
		}
		return sb.String()
	}
	sb.WriteByte('1')
	expU := uint32(x.exp)
	for i := uint32(0); i < expU; i++ {
		if i < x.sig.prec {
			sb.WriteByte(bitChar(x.sig.getBit(i)))
		} else {
			sb.WriteByte('0')
		}
	}
	if expU < x.sig.prec {
		sb.WriteByte('.')
		for i := expU; i < x.sig.prec; i++ {
			sb.WriteByte(bitChar(x.sig.getBit(i)))
		}
	}
	return sb.String()
}

func bitChar(b bool) byte {
	if b {
		return '1'
	}
	return '0'
}

// ParseBinary parses s as plain-positional binary text (the exact format
// produced by (*Number).Text(2)): an optional sign, binary digits, and an
// optional '.' marking the binary point (absent means the whole string is
// the integer part). The leading-one position fixes the exponent; the bits
// after it become the significand. An empty or sign-only string is zero.
func ParseBinary(s string) (*Number, error) {
	orig := s
	s = strings.TrimSpace(s)
	neg := false
	if len(s) > 0 && (s[0] == '-' || s[0] == '+') {
		neg = s[0] == '-'
		s = s[1:]
	}
	if s == "" {
		return Zero(), nil
	}
	pointPos := len(s)
	bitsStr := s
	if dot := strings.IndexByte(s, '.'); dot >= 0 {
		pointPos = dot
		bitsStr = s[:dot] + s[dot+1:]
	}
	lead := -1
	for i := 0; i < len(bitsStr); i++ {
		switch bitsStr[i] {
		case '0':
		case '1':
			if lead < 0 {
				lead = i
			}
		default:
			return nil, errorf(InvalidNumeric, "invalid binary digit %q in %q", bitsStr[i], orig)
		}
	}
	if lead < 0 {
		return Zero(), nil
	}
	exp := int64(pointPos) - 1 - int64(lead)
	fracBits := bitsStr[lead+1:]
	sig := significand{
		limbs: make([]Word, (uint32(len(fracBits))+wordBits-1)/wordBits),
		prec:  uint32(len(fracBits)),
	}
	for i := 0; i < len(fracBits); i++ {
		if fracBits[i] == '1' {
			sig.setBit(uint32(i))
		}
	}
	return &Number{sig: sig, exp: exp, neg: neg}, nil
}

// ParseString parses s as a number in the given base (2-16), with an
// optional sign and an optional '.' separating integer and fractional
// digits. An empty or sign-only string is zero. Bases other than 2 are
// approximate: the working precision is sized from the
// digit count (ceil(log2(base) * (digits+1))) rather than a fixed default,
// so that large integer literals (more bits than DefaultPrecision) are not
// silently truncated while accumulating; digits are accumulated
// most-significant-first (result = result*base + digit) and the whole
// value is divided by base^point at the end, where point is the number of
// digits after the '.'.
func ParseString(s string, base int) (*Number, error) {
	if base < 2 || base > 16 {
		return nil, errorf(OutOfRange, "base %d not in [2,16]", base)
	}
	if base == 2 {
		return ParseBinary(s)
	}
	orig := s
	s = strings.ToLower(strings.TrimSpace(s))
	neg := false
	if len(s) > 0 && (s[0] == '-' || s[0] == '+') {
		neg = s[0] == '-'
		s = s[1:]
	}
	intStr, fracStr, _ := strings.Cut(s, ".")
	digits := len(intStr) + len(fracStr)
	if digits == 0 {
		return Zero(), nil
	}

	prec := uint32(math.Ceil(math.Log2(float64(base)) * float64(digits+1)))
	baseN := NewFromUint64(uint64(base)).WithPrecision(prec)
	result := Zero().SetPrecision(prec)
	for _, part := range [2]string{intStr, fracStr} {
		for i := 0; i < len(part); i++ {
			d, ok := digitVal(part[i], base)
			if !ok {
				return nil, errorf(InvalidNumeric, "invalid digit %q for base %d in %q", part[i], base, orig)
			}
			result.Mul(result, baseN)
			result.Add(result, NewFromUint64(uint64(d)))
		}
	}

	if point := len(fracStr); point > 0 {
		divisor := new(Number).Pow(baseN, uint64(point))
		var err error
		result, err = result.Quo(result, divisor)
		if err != nil {
			return nil, err
		}
	}
	result.neg = neg && !result.IsZero()
	return result, nil
}

// MustParseBinary is like ParseBinary but panics on error, for tests and
// examples, in the spirit of the original's binary-literal convenience.
func MustParseBinary(s string) *Number {
	n, err := ParseBinary(s)
	if err != nil {
		panic(err)
	}
	return n
}

// MustParseString is like ParseString but panics on error.
func MustParseString(s string, base int) *Number {
	n, err := ParseString(s, base)
	if err != nil {
		panic(err)
	}
	return n
}

func intToBaseDigits(n *Number, base int) string {
	if n.IsZero() {
		return "0"
	}
	baseN := NewFromUint64(uint64(base)).WithPrecision(n.sig.prec)
	var digits []byte
	cur := new(Number).Set(n)
	for !cur.IsZero() {
		q, _ := new(Number).Quo(cur, baseN)
		q.Truncate(q)
		var rem Number
		rem.Mul(q, baseN)
		rem.Sub(cur, &rem)
		d, _ := rem.ToInt()
		digits = append(digits, digitChar(int(d)))
		cur = q
	}
	for i, j := 0, len(digits)-1; i < j; i, j = i+1, j-1 {
		digits[i], digits[j] = digits[j], digits[i]
	}
	return string(digits)
}

func digitChar(d int) byte {
	if d < 10 {
		return byte('0' + d)
	}
	return byte('a' + d - 10)
}

func digitVal(c byte, base int) (int, bool) {
	var v int
	switch {
	case c >= '0' && c <= '9':
		v = int(c - '0')
	case c >= 'a' && c <= 'z':
		v = int(c-'a') + 10
	case c >= 'A' && c <= 'Z':
		v = int(c-'A') + 10
	default:
		return 0, false
	}
	if v >= base {
		return 0, false
	}
	return v, true
}
