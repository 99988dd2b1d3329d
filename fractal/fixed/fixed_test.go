package fixed

import (
	"errors"
	"math"
	"testing"
)

func TestFromFloatTruncates(t *testing.T) {
	tests := []struct {
		in   float64
		want Fixed
	}{
		{-2.0, -16384},
		{0.7, 5734},
		{-1.2, -9830},
		{1.2, 9830},
		{0, 0},
		{1, One},
	}
	for _, tc := range tests {
		if got := FromFloat(tc.in); got != tc.want {
			t.Fatalf("FromFloat(%v) = %d, want %d", tc.in, got, tc.want)
		}
	}
}

func TestMulRenormalizes(t *testing.T) {
	one := One.Wide()
	if got := one.Mul(one); got != one {
		t.Fatalf("1*1 = %d, want %d", got, one)
	}
	if got := FromInt(2).Wide().Mul(FromInt(-3).Wide()); got != FromInt(-6).Wide() {
		t.Fatalf("2*-3 = %d, want %d", got, FromInt(-6))
	}
	// 1.2*1.2 at 13 bits: 9830*9830 = 96628900, >>13 = 11795.
	if got := Wide(9830).Square(); got != 11795 {
		t.Fatalf("Square(9830) = %d, want 11795", got)
	}
	// Arithmetic shift rounds toward negative infinity.
	if got := Wide(-1).Mul(1); got != -1 {
		t.Fatalf("Mul(-1, 1) = %d, want -1", got)
	}
}

func TestWideSquareDoesNotWrap(t *testing.T) {
	tests := []struct {
		in   int32
		want int64
	}{
		{6, 36},
		{400, 160000},
		{600, 360000},
		{1000, 1000000},
	}
	for _, tc := range tests {
		got := FromInt(tc.in).Wide().Square()
		if want := Wide(tc.want << FracBits); got != want {
			t.Fatalf("%d^2 = %d, want %d", tc.in, got, want)
		}
	}
	// The sum of two large squares stays positive.
	v := FromInt(400).Wide()
	if sum := v.Square().Add(v.Square()); sum <= 0 {
		t.Fatalf("400^2 + 400^2 = %d, want positive", sum)
	}
}

func TestMulDouble(t *testing.T) {
	a := FromFloat(0.5).Wide()
	b := FromFloat(1.5).Wide()
	if got, want := a.MulDouble(b), FromFloat(1.5).Wide(); got != want {
		t.Fatalf("2*0.5*1.5 = %d, want %d", got, want)
	}
	if got, want := a.MulDouble(b), a.Mul(b).Add(a.Mul(b)); got != want {
		t.Fatalf("MulDouble = %d, Mul+Mul = %d", got, want)
	}
	if got := a.Sub(b); got != FromFloat(-1.0).Wide() {
		t.Fatalf("0.5-1.5 = %d", got)
	}
}

func TestStepTruncates(t *testing.T) {
	got, err := Step(FromFloat(-2.0), FromFloat(0.7), 160) // span 22118
	if err != nil || got != 138 {
		t.Fatalf("Step = %d, %v, want 138", got, err)
	}
	if got, _ := Step(0, -7, 2); got != -3 {
		t.Fatalf("Step(0, -7, 2) = %d, want -3", got)
	}
}

func TestStepWideSpan(t *testing.T) {
	// The span overflows int32; the per-cell step does not.
	got, err := Step(math.MinInt32, math.MaxInt32, 2)
	if err != nil {
		t.Fatalf("Step: %v", err)
	}
	if got != math.MaxInt32 {
		t.Fatalf("Step = %d, want %d", got, math.MaxInt32)
	}
	if _, err := Step(math.MinInt32, math.MaxInt32, 1); !errors.Is(err, ErrRange) {
		t.Fatalf("single-cell full span err = %v, want ErrRange", err)
	}
}

func TestOffset(t *testing.T) {
	if got := Offset(-16384, 138, 160); got != -16384+138*160 {
		t.Fatalf("Offset = %d", got)
	}
	// base + k*step lands back in range even when k*step alone does not.
	if got := Offset(math.MinInt32, math.MaxInt32, 1); got != -1 {
		t.Fatalf("Offset = %d, want -1", got)
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		in   string
		want Fixed
	}{
		{"-2.0", -16384},
		{" 0.7 ", 5734},
		{"4", FromInt(4)},
		{"-16384r", -16384},
		{"32768r", 32768},
	}
	for _, tc := range tests {
		got, err := Parse(tc.in)
		if err != nil {
			t.Fatalf("Parse(%q): %v", tc.in, err)
		}
		if got != tc.want {
			t.Fatalf("Parse(%q) = %d, want %d", tc.in, got, tc.want)
		}
	}

	for _, in := range []string{"", "abc", "1e9", "12xr"} {
		if _, err := Parse(in); !errors.Is(err, ErrSyntax) {
			t.Fatalf("Parse(%q) err = %v, want ErrSyntax", in, err)
		}
	}
}

func TestString(t *testing.T) {
	tests := []struct {
		in   Fixed
		want string
	}{
		{-16384, "-2.0000"},
		{One / 2, "0.5000"},
		{0, "0.0000"},
		{-One / 4, "-0.2500"},
	}
	for _, tc := range tests {
		if got := tc.in.String(); got != tc.want {
			t.Fatalf("String(%d) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
