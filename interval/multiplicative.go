package interval

import "math"

// Mult computes [a0, a1] * [b0, b1] from all four corner products.
// The indeterminate forms are resolved as:
//
//	.--------------------------------.
//	|   b1   |   b2   |    b1 * b2   |
//	|========|========|==============|
//	|    0   |    ∞   |    {0, ∞}    |  (Rule I)
//	|--------|--------|--------------|
//	|    ∞   |    0   |    {0, ∞}    |  (Rule I)
//	|--------|--------|--------------|
//	|    0   |   -∞   |   {-∞, 0}    |  (Rule II)
//	|--------|--------|--------------|
//	|   -∞   |    0   |   {-∞, 0}    |  (Rule II)
//	 --------------------------------
//
// Every corner is resolved independently, so Mult is commutative but not
// associative: [-1, -1] * ([0, 0] * [-∞, -∞]) = [0, ∞], whereas
// ([-1, -1] * [0, 0]) * [-∞, -∞] = [-∞, 0].
func (a Interval) Mult(b Interval) Interval {
	res := newCandidates()
	for _, x := range a.bounds() {
		for _, y := range b.bounds() {
			res = res.insert(times(x, y)...)
		}
	}
	return res.reduce()
}

// Div computes [a0, a1] / [b0, b1] as [a0, a1] * [1/b1, 1/b0].
//
// Dividing by the point [0, 0] resolves 0/0 to [-∞, ∞] and is undefined for
// any other dividend. ∞/∞ needs no special case: the reciprocal of [∞, ∞] is
// [0, 0], and Rule I of Mult resolves ∞ * 0 to [0, ∞].
func (a Interval) Div(b Interval) Interval {
	if b.isZero() {
		if a.isZero() {
			return Entire()
		}
		return Undefined()
	}
	return a.Mult(b.reciprocal())
}

func (i Interval) reciprocal() Interval {
	return New(1/i.hi, 1/i.lo)
}

// MultScalar computes i * [x, x].
func (i Interval) MultScalar(x float64) Interval {
	return i.Mult(Point(x))
}

// DivScalar computes i / [x, x].
func (i Interval) DivScalar(x float64) Interval {
	return i.Div(Point(x))
}

// ScalarMult computes [x, x] * i.
func ScalarMult(x float64, i Interval) Interval {
	return Point(x).Mult(i)
}

// ScalarDiv computes [x, x] / i.
func ScalarDiv(x float64, i Interval) Interval {
	return Point(x).Div(i)
}

func times(x, y float64) []float64 {
	if r := x * y; !math.IsNaN(r) {
		return []float64{r}
	}
	switch {
	case x == 0 && math.IsInf(y, 1), math.IsInf(x, 1) && y == 0:
		return []float64{0, inf}
	case x == 0 && math.IsInf(y, -1), math.IsInf(x, -1) && y == 0:
		return []float64{negInf, 0}
	}
	return nil
}
