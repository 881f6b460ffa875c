package longnum

import "testing"

func TestConstructFromInt(t *testing.T) {
	for _, x := range []int64{0, 1, -1, 2, -2, 1023, -1023, 1 << 40} {
		n := NewFromInt64(x)
		got, err := n.ToInt()
		if x >= 1<<30 || x <= -(1<<30) {
			// outside the int32 round-trip range we chose for the other
			// cases; skip checking ToInt's result for the big one.
			continue
		}
		if err != nil {
			t.Fatalf("ToInt(%d): %v", x, err)
		}
		if int64(got) != x {
			t.Fatalf("round-trip %d: got %d", x, got)
		}
	}
}

func TestCmp(t *testing.T) {
	cases := []struct {
		a, b int64
		want int
	}{
		{0, 0, 0},
		{1, 2, -1},
		{2, 1, 1},
		{-1, 1, -1},
		{-5, -3, -1},
		{-3, -5, 1},
		{7, 7, 0},
	}
	for _, c := range cases {
		got := Cmp(NewFromInt64(c.a), NewFromInt64(c.b))
		if got != c.want {
			t.Errorf("Cmp(%d,%d) = %d, want %d", c.a, c.b, got, c.want)
		}
	}
}

func TestAddSub(t *testing.T) {
	cases := []struct{ a, b, want int64 }{
		{1, 1, 2},
		{5, -3, 2},
		{-5, 3, -2},
		{-5, -3, -8},
		{100, -100, 0},
		{0, 5, 5},
		{5, 0, 5},
	}
	for _, c := range cases {
		var z Number
		z.Add(NewFromInt64(c.a), NewFromInt64(c.b))
		got, err := z.ToInt()
		if err != nil {
			t.Fatalf("Add(%d,%d): ToInt: %v", c.a, c.b, err)
		}
		if int64(got) != c.want {
			t.Errorf("Add(%d,%d) = %d, want %d", c.a, c.b, got, c.want)
		}
	}
	var z Number
	z.Sub(NewFromInt64(10), NewFromInt64(3))
	if got, _ := z.ToInt(); got != 7 {
		t.Errorf("Sub(10,3) = %d, want 7", got)
	}
}

func TestMul(t *testing.T) {
	cases := []struct{ a, b, want int64 }{
		{6, 7, 42},
		{-6, 7, -42},
		{-6, -7, 42},
		{0, 9, 0},
		{1, 1, 1},
	}
	for _, c := range cases {
		var z Number
		z.Mul(NewFromInt64(c.a), NewFromInt64(c.b))
		got, err := z.ToInt()
		if err != nil {
			t.Fatalf("Mul(%d,%d): ToInt: %v", c.a, c.b, err)
		}
		if int64(got) != c.want {
			t.Errorf("Mul(%d,%d) = %d, want %d", c.a, c.b, got, c.want)
		}
	}
}

func TestMulLargeProductExponent(t *testing.T) {
	x := NewFromInt64(1 << 40)
	y := NewFromInt64(1 << 30)
	var z Number
	z.Mul(x, y)
	got, err := z.Exp(), error(nil)
	if err != nil {
		t.Fatal(err)
	}
	if got != 70 {
		t.Errorf("(1<<40)*(1<<30) exponent = %d, want 70", got)
	}
}

func TestQuoDivisionByZero(t *testing.T) {
	var z Number
	_, err := z.Quo(NewFromInt64(1), Zero())
	if err == nil {
		t.Fatal("expected DivisionByZero error")
	}
	var lerr *Error
	if e, ok := err.(*Error); !ok || e.Kind != DivisionByZero {
		_ = lerr
		t.Fatalf("expected *Error{Kind: DivisionByZero}, got %v", err)
	}
}

func TestQuoTwentyTwoSevenths(t *testing.T) {
	x := NewFromInt64(22).WithPrecision(64)
	y := NewFromInt64(7).WithPrecision(64)
	var z Number
	if _, err := z.Quo(x, y); err != nil {
		t.Fatal(err)
	}
	s, err := z.Text(10)
	if err != nil {
		t.Fatal(err)
	}
	if len(s) < 4 || s[:4] != "3.14" {
		t.Errorf("22/7 = %q, want prefix 3.14", s)
	}
}

func TestShifts(t *testing.T) {
	x := NewFromInt64(5)
	var a, b Number
	a.Shl(x, 3)
	b.Mul(x, NewFromUint64(8))
	if !Equal(&a, &b) {
		t.Errorf("5<<3 should equal 5*8")
	}
	var c Number
	c.Shr(&a, 3)
	if !Equal(&c, x) {
		t.Errorf("(5<<3)>>3 should equal 5")
	}
}

func TestTruncateFracRound(t *testing.T) {
	x := MustParseString("3.75", 10)
	var tr, fr, rd Number
	tr.Truncate(x)
	if got, _ := tr.ToInt(); got != 3 {
		t.Errorf("Truncate(3.75) = %d, want 3", got)
	}
	fr.Frac(x)
	if fr.IsNegative() || fr.IsZero() {
		t.Errorf("Frac(3.75) should be a small positive fraction")
	}
	rd.Round(x)
	if got, _ := rd.ToInt(); got != 4 {
		t.Errorf("Round(3.75) = %d, want 4", got)
	}

	neg := MustParseString("-3.5", 10)
	var rdNeg Number
	rdNeg.Round(neg)
	if got, _ := rdNeg.ToInt(); got != -4 {
		t.Errorf("Round(-3.5) = %d, want -4 (ties away from zero)", got)
	}
}

func TestPow(t *testing.T) {
	var z Number
	z.Pow(NewFromInt64(2), 10)
	if got, err := z.ToInt(); err != nil || got != 1024 {
		t.Errorf("2^10 = %d (err=%v), want 1024", got, err)
	}
}

func TestBitShiftLiteral(t *testing.T) {
	// 1<<100 as a literal exercise of Shl plus exact binary round-trip.
	var z Number
	z.Shl(NewFromInt64(1), 100)
	s := z.binaryText()
	back, err := ParseBinary(s)
	if err != nil {
		t.Fatal(err)
	}
	if !Equal(&z, back) {
		t.Errorf("binary round trip failed for 1<<100: %q", s)
	}
}

// TestShiftEquivalenceDecimalText checks that 1<<100 rendered in base 10
// equals the 31-digit string 1267650600228229401496703205376.
func TestShiftEquivalenceDecimalText(t *testing.T) {
	var z Number
	z.Shl(NewFromInt64(1), 100)
	s, err := z.Text(10)
	if err != nil {
		t.Fatal(err)
	}
	if want := "1267650600228229401496703205376"; s != want {
		t.Errorf("1<<100 in base 10 = %q, want %q", s, want)
	}
}

// TestDecimalBinaryRoundTrip checks that "1010.1" parsed as base 2 equals
// "10.5" parsed as base 10, and both print as "10.5" in base 10.
func TestDecimalBinaryRoundTrip(t *testing.T) {
	fromBinary, err := ParseString("1010.1", 2)
	if err != nil {
		t.Fatal(err)
	}
	fromDecimal, err := ParseString("10.5", 10)
	if err != nil {
		t.Fatal(err)
	}
	if !Equal(fromBinary, fromDecimal) {
		t.Errorf("1010.1 (base 2) should equal 10.5 (base 10)")
	}
	for _, n := range []*Number{fromBinary, fromDecimal} {
		s, err := n.Text(10)
		if err != nil {
			t.Fatal(err)
		}
		if s != "10.5" {
			t.Errorf("Text(10) = %q, want %q", s, "10.5")
		}
	}
}

// TestLargeProduct multiplies two large parsed decimal literals. Mul
// truncates its result to max(x.Precision(), y.Precision()), and
// ParseString only sizes each operand's own precision to round-trip
// itself, not to survive a later multiplication exactly — so the literals
// are widened to the product's 126-bit width before multiplying.
func TestLargeProduct(t *testing.T) {
	x := MustParseString("3483096694536044378308", 10).WithPrecision(128)
	y := MustParseString("17508438146505479", 10).WithPrecision(128)
	var z Number
	z.Mul(x, y)
	s, err := z.Text(10)
	if err != nil {
		t.Fatal(err)
	}
	if want := "60983583034582021399174027313270749532"; s != want {
		t.Errorf("large product = %q, want %q", s, want)
	}
}

// TestTruncatingRound checks that rounding
// 1001010100101010101010100101010101010001010101110101000101010101.1001010101010101010101010010010101
// (binary) yields 1001010100101010101010100101010101010001010101110101000101010110 (binary, integer).
func TestTruncatingRound(t *testing.T) {
	x := MustParseBinary("1001010100101010101010100101010101010001010101110101000101010101" +
		".1001010101010101010101010010010101")
	var z Number
	z.Round(x)
	want := MustParseBinary("1001010100101010101010100101010101010001010101110101000101010110")
	if !Equal(&z, want) {
		t.Errorf("Round produced %q, want %q", z.binaryText(), want.binaryText())
	}
}

func TestTextParseRoundTripDecimal(t *testing.T) {
	x := NewFromInt64(-12345)
	s, err := x.Text(10)
	if err != nil {
		t.Fatal(err)
	}
	back, err := ParseString(s, 10)
	if err != nil {
		t.Fatal(err)
	}
	if !Equal(x, back) {
		t.Errorf("decimal round trip: %q -> mismatch", s)
	}
}
