package interval

import (
	"math"
	"testing"
)

// samples covers finite, half-infinite, infinite, zero and undefined operands.
var samples = []Interval{
	Point(0),
	Point(1),
	Point(-1),
	Point(2.5),
	New(-5, 3),
	New(0, 1),
	New(-1, 0),
	New(2, 7),
	Point(pinf),
	Point(ninf),
	New(0, pinf),
	New(ninf, 0),
	New(-3, pinf),
	Entire(),
	Undefined(),
}

type binop struct {
	name string
	f    func(a, b Interval) Interval
}

var (
	add  = binop{"+", Interval.Add}
	sub  = binop{"-", Interval.Sub}
	mult = binop{"*", Interval.Mult}
	div  = binop{"/", Interval.Div}
	pow  = binop{"^", Interval.Pow}
)

func TestLiteralScenarios(t *testing.T) {
	tests := []struct {
		op       binop
		a, b     Interval
		expected Interval
	}{
		{mult, Point(0), Point(pinf), New(0, pinf)},
		{mult, Point(0), Point(ninf), New(ninf, 0)},
		{add, Point(pinf), Point(ninf), Entire()},
		{div, Point(0), Point(0), Entire()},
		{div, Point(pinf), Point(pinf), New(0, pinf)},
		{div, New(5, 10), Point(pinf), Point(0)},
		{pow, New(2, 3), Point(2), New(4, 9)},
	}

	for _, test := range tests {
		res := test.op.f(test.a, test.b)
		if !res.Eq(test.expected) {
			t.Errorf("%s %s %s = %s, expected %s\n", test.a, test.op.name, test.b, res, test.expected)
		} else {
			t.Logf("%s %s %s = %s\n", test.a, test.op.name, test.b, res)
		}
	}
}

func TestAddSub(t *testing.T) {
	tests := []struct {
		op       binop
		a, b     Interval
		expected Interval
	}{
		{add, New(1, 2), New(3, 4), New(4, 6)},
		{add, New(-1, 1), Point(pinf), Point(pinf)},
		{add, New(ninf, 0), New(0, pinf), Entire()},
		{add, Point(ninf), Point(pinf), Entire()},
		{add, New(0, pinf), Point(ninf), Entire()},
		{add, Undefined(), Point(1), Undefined()},
		{sub, New(1, 2), New(3, 4), New(-3, -1)},
		{sub, Point(pinf), Point(pinf), Entire()},
		{sub, Point(ninf), Point(ninf), Entire()},
		{sub, Point(pinf), Point(ninf), Point(pinf)},
		{sub, New(0, pinf), New(0, pinf), Entire()},
		{sub, Point(1), Undefined(), Undefined()},
	}

	for _, test := range tests {
		res := test.op.f(test.a, test.b)
		if !res.Eq(test.expected) {
			t.Errorf("%s %s %s = %s, expected %s\n", test.a, test.op.name, test.b, res, test.expected)
		}
	}
}

func TestMultDiv(t *testing.T) {
	tests := []struct {
		op       binop
		a, b     Interval
		expected Interval
	}{
		{mult, New(-1, 2), New(3, 4), New(-4, 8)},
		{mult, New(-2, -1), New(-4, -3), New(3, 8)},
		{mult, New(0, 1), Point(pinf), New(0, pinf)},
		{mult, Point(pinf), Point(ninf), Point(ninf)},
		{mult, New(-1, 1), Point(pinf), Entire()},
		{mult, Entire(), Point(0), Entire()},
		{mult, Undefined(), Point(0), Undefined()},
		{div, New(1, 2), New(4, 8), New(0.125, 0.5)},
		{div, Point(1), Point(0), Undefined()},
		{div, New(-1, 1), Point(0), Undefined()},
		{div, New(1, 2), New(0, 4), New(0.25, pinf)},
		{div, Point(0), New(0, 1), New(0, pinf)},
		{div, Point(ninf), Point(2), Point(ninf)},
		{div, Point(ninf), Point(ninf), New(ninf, 0)},
		{div, Point(1), New(-1, math.Copysign(0, -1)), New(ninf, -1)},
		{div, Undefined(), Point(0), Undefined()},
		{div, Point(1), Undefined(), Undefined()},
	}

	for _, test := range tests {
		res := test.op.f(test.a, test.b)
		if !res.Eq(test.expected) {
			t.Errorf("%s %s %s = %s, expected %s\n", test.a, test.op.name, test.b, res, test.expected)
		}
	}
}

func TestScalarForms(t *testing.T) {
	i := New(2, 4)
	tests := []struct {
		name          string
		res, expected Interval
	}{
		{"i + 1", i.AddScalar(1), New(3, 5)},
		{"1 + i", ScalarAdd(1, i), New(3, 5)},
		{"i - 1", i.SubScalar(1), New(1, 3)},
		{"10 - i", ScalarSub(10, i), New(6, 8)},
		{"i * -2", i.MultScalar(-2), New(-8, -4)},
		{"-2 * i", ScalarMult(-2, i), New(-8, -4)},
		{"i / 2", i.DivScalar(2), New(1, 2)},
		{"1 / i", ScalarDiv(1, i), New(0.25, 0.5)},
		{"i ^ 2", i.PowScalar(2), New(4, 16)},
		{"0 * ∞", ScalarMult(0, Point(pinf)), New(0, pinf)},
	}

	for _, test := range tests {
		if !test.res.Eq(test.expected) {
			t.Errorf("%s = %s, expected %s", test.name, test.res, test.expected)
		}
	}
}

func TestPointReduction(t *testing.T) {
	xs := []float64{0, 1, -1, 2.5, -7.25, 1e10, 3}
	// Powers of two keep 1/y exact, so x * (1/y) = x / y.
	ys := []float64{1, -1, 2, -0.5, 4, 0.25, 1024}

	for _, x := range xs {
		for _, y := range ys {
			a, b := Point(x), Point(y)
			if res := a.Add(b); !res.Eq(Point(x + y)) {
				t.Errorf("%s + %s = %s, expected %v", a, b, res, x+y)
			}
			if res := a.Sub(b); !res.Eq(Point(x - y)) {
				t.Errorf("%s - %s = %s, expected %v", a, b, res, x-y)
			}
			if res := a.Mult(b); !res.Eq(Point(x * y)) {
				t.Errorf("%s * %s = %s, expected %v", a, b, res, x*y)
			}
			if res := a.Div(b); !res.Eq(Point(x / y)) {
				t.Errorf("%s / %s = %s, expected %v", a, b, res, x/y)
			}
		}
	}
}

func TestCommutativity(t *testing.T) {
	for _, a := range samples {
		for _, b := range samples {
			if ab, ba := a.Add(b), b.Add(a); !ab.Eq(ba) {
				t.Errorf("%s + %s = %s, but %s + %s = %s", a, b, ab, b, a, ba)
			}
			if ab, ba := a.Mult(b), b.Mult(a); !ab.Eq(ba) {
				t.Errorf("%s * %s = %s, but %s * %s = %s", a, b, ab, b, a, ba)
			}
		}
	}
}

func TestResultsAreNormalized(t *testing.T) {
	for _, op := range []binop{add, sub, mult, div, pow} {
		for _, a := range samples {
			for _, b := range samples {
				res := op.f(a, b)
				if res.IsUndefined() {
					continue
				}
				if res.Lo() > res.Hi() {
					t.Errorf("%s %s %s = %s is not ordered", a, op.name, b, res)
				}
			}
		}
	}
}

func TestUndefinedPropagates(t *testing.T) {
	for _, op := range []binop{add, sub, mult, div, pow} {
		for _, x := range samples {
			if res := op.f(Undefined(), x); !res.IsUndefined() {
				t.Errorf("%s %s %s = %s, expected undefined", Undefined(), op.name, x, res)
			}
			if res := op.f(x, Undefined()); !res.IsUndefined() {
				t.Errorf("%s %s %s = %s, expected undefined", x, op.name, Undefined(), res)
			}
		}
	}
}

func TestMultNotAssociative(t *testing.T) {
	a, b, c := Point(-1), Point(0), Point(ninf)

	right := a.Mult(b.Mult(c))
	left := a.Mult(b).Mult(c)

	if right.Eq(left) {
		t.Errorf("%s * (%s * %s) = (%s * %s) * %s = %s, expected them to differ",
			a, b, c, a, b, c, left)
	}
	if !right.Eq(New(0, pinf)) {
		t.Errorf("%s * (%s * %s) = %s, expected [0, ∞]", a, b, c, right)
	}
	if !left.Eq(New(ninf, 0)) {
		t.Errorf("(%s * %s) * %s = %s, expected [-∞, 0]", a, b, c, left)
	}
}
