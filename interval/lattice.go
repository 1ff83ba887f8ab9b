package interval

import "math"

// Abs computes |[lo, hi]|:
//
//	|[lo, hi]| = [min(|lo|, |hi|), max(|lo|, |hi|)], if lo * hi ≥ 0
//	|[lo, hi]| = [0, max(|lo|, |hi|)], if lo < 0 < hi
func (i Interval) Abs() Interval {
	if i.IsUndefined() {
		return Undefined()
	}
	l, h := math.Abs(i.lo), math.Abs(i.hi)
	if i.lo < 0 && i.hi > 0 {
		return New(0, math.Max(l, h))
	}
	return New(math.Min(l, h), math.Max(l, h))
}

// Abs computes |i|.
func Abs(i Interval) Interval {
	return i.Abs()
}

// Contains checks that lo ≤ x ≤ hi.
func (i Interval) Contains(x float64) bool {
	return i.lo <= x && x <= i.hi
}

// Width returns hi - lo. It is ∞ whenever a bound is infinite, and NaN for
// the undefined interval.
func (i Interval) Width() float64 {
	if i.IsUndefined() {
		return nan
	}
	if i.IsPoint() {
		return 0
	}
	return i.hi - i.lo
}

// The remaining operations order intervals by inclusion. The undefined
// interval acts as the bottom element and [-∞, ∞] as the top element.

// Leq computes i ⊑ o, i.e. i ⊆ o.
func (i Interval) Leq(o Interval) bool {
	switch {
	case i.IsUndefined():
		return true
	case o.IsUndefined():
		return false
	}
	return o.lo <= i.lo && i.hi <= o.hi
}

// Geq computes i ⊒ o.
func (i Interval) Geq(o Interval) bool {
	return o.Leq(i)
}

// Join computes i ⊔ o, the smallest interval enclosing both.
func (i Interval) Join(o Interval) Interval {
	switch {
	case i.IsUndefined():
		return o
	case o.IsUndefined():
		return i
	}
	return New(math.Min(i.lo, o.lo), math.Max(i.hi, o.hi))
}

// Meet computes i ⊓ o, the intersection of both. Disjoint intervals meet
// in the undefined interval.
func (i Interval) Meet(o Interval) Interval {
	switch {
	case i.IsUndefined(), o.IsUndefined():
		return Undefined()
	// h1 < l2 | h2 < l1
	case i.hi < o.lo || o.hi < i.lo:
		return Undefined()
	}
	return New(math.Max(i.lo, o.lo), math.Min(i.hi, o.hi))
}
