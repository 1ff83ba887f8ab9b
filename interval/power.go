package interval

import "math"

// Pow computes base ^ exp.
//
// Three point operands are named indeterminate forms with fixed results:
//
//	[0, 0] ^ [0, 0] = [0, 1]
//	[1, 1] ^ [∞, ∞] = [0, ∞]
//	[∞, ∞] ^ [0, 0] = [1, ∞]
//
// Otherwise the result bounds the four corner powers, where each corner
// resolves its own indeterminate form (see powCorner). Two refinements
// follow: a base containing 1 raised to an exponent containing 0 always
// reaches 1, and a base straddling zero reaches {-∞, ∞} under negative
// exponents, {0, ∞} under exponents spanning zero, and 0 under a single even
// integer exponent.
func (base Interval) Pow(exp Interval) Interval {
	if base.IsUndefined() || exp.IsUndefined() {
		return Undefined()
	}

	for _, form := range powForms {
		if base.Eq(form.base) && exp.Eq(form.exp) {
			return form.result
		}
	}

	res := newCandidates()
	for _, b := range base.bounds() {
		for _, e := range exp.bounds() {
			res = res.insert(powCorner(b, e)...)
		}
	}

	if base.Contains(1) && exp.Contains(0) {
		res = res.insert(1)
	}

	if base.lo < 0 && base.hi > 0 {
		switch {
		case exp.hi < 0:
			res = res.insert(negInf, inf)
		case exp.Contains(0):
			res = res.insert(0, inf)
		case exp.IsPoint() && isEvenInteger(exp.lo):
			res = res.insert(0)
		}
	}

	return res.reduce()
}

// PowScalar computes i ^ [x, x].
func (i Interval) PowScalar(x float64) Interval {
	return i.Pow(Point(x))
}

// Pow computes base ^ exp.
func Pow(base, exp Interval) Interval {
	return base.Pow(exp)
}

var powForms = []struct {
	base, exp, result Interval
}{
	{Point(0), Point(0), New(0, 1)},
	{Point(1), Point(inf), New(0, inf)},
	{Point(inf), Point(0), New(1, inf)},
}

// powCorner computes b ^ e for a single pair of bounds.
//
//	.-----------------------------.
//	|    b   |    e   |   b ^ e   |
//	|========|========|===========|
//	|    0   |    0   |   {0, 1}  |
//	|--------|--------|-----------|
//	|    1   |  (-)∞  |   {0, ∞}  |
//	|--------|--------|-----------|
//	|  (-)∞  |    0   |   {1, ∞}  |
//	|--------|--------|-----------|
//	|    0   |  ∈ ℝ-  |     ∞     |
//	|--------|--------|-----------|
//	|  ∈ ℝ-  |  ∉ ℤ   |     ∅     |
//	 -----------------------------
//
// math.Pow maps the first three rows to 1, so they are checked before it.
func powCorner(b, e float64) []float64 {
	switch {
	case b == 0 && e == 0:
		return []float64{0, 1}
	case b == 1 && math.IsInf(e, 0):
		return []float64{0, inf}
	case math.IsInf(b, 0) && e == 0:
		return []float64{1, inf}
	case b == 0 && e < 0:
		return []float64{inf}
	}
	// NaN for a negative base and a non-integer exponent, dropped by insert.
	return []float64{math.Pow(b, e)}
}

func isEvenInteger(x float64) bool {
	if math.IsInf(x, 0) || math.Trunc(x) != x {
		return false
	}
	return math.Mod(x, 2) == 0
}
