// Package interval implements interval arithmetic over the extended real
// line, where the indeterminate forms 0·∞, ∞-∞, 0/0, ∞/∞, 0^0, 1^∞ and ∞^0
// resolve to well-defined result intervals instead of NaN.
//
// An interval is either fully defined, with lo ≤ hi and both bounds finite
// or infinite, or fully undefined, with both bounds NaN. The undefined
// interval is the only error value; arithmetic never panics.
package interval

import (
	"fmt"
	"math"
)

// Interval is a closed interval [lo, hi] on the extended real line.
// The zero value is the point interval [0, 0].
type Interval struct {
	lo float64
	hi float64
}

// New creates the interval [x0, x1]. Misordered bounds are swapped, and if
// either bound is NaN the result is the undefined interval.
func New(x0, x1 float64) Interval {
	if x0 > x1 {
		x0, x1 = x1, x0
	}
	if math.IsNaN(x0) || math.IsNaN(x1) {
		return Interval{lo: nan, hi: nan}
	}
	return Interval{lo: x0, hi: x1}
}

// Point creates the point interval [x, x].
func Point(x float64) Interval {
	return New(x, x)
}

// Undefined yields the interval with both bounds NaN.
func Undefined() Interval {
	return Interval{lo: nan, hi: nan}
}

// Entire yields [-∞, ∞].
func Entire() Interval {
	return Interval{lo: negInf, hi: inf}
}

// Lo returns the lower bound.
func (i Interval) Lo() float64 {
	return i.lo
}

// Hi returns the upper bound.
func (i Interval) Hi() float64 {
	return i.hi
}

// Bounds unpacks both bounds.
func (i Interval) Bounds() (float64, float64) {
	return i.lo, i.hi
}

func (i Interval) bounds() [2]float64 {
	return [2]float64{i.lo, i.hi}
}

// IsUndefined checks whether the interval carries NaN bounds.
func (i Interval) IsUndefined() bool {
	return math.IsNaN(i.lo)
}

// IsPoint checks that lo = hi.
func (i Interval) IsPoint() bool {
	return i.lo == i.hi
}

// IsEntire checks that the interval is [-∞, ∞].
func (i Interval) IsEntire() bool {
	return math.IsInf(i.lo, -1) && math.IsInf(i.hi, 1)
}

func (i Interval) isZero() bool {
	return i.lo == 0 && i.hi == 0
}

// Eq compares both bounds exactly. Two undefined intervals are equal, and an
// undefined interval differs from every defined one.
func (i Interval) Eq(o Interval) bool {
	if i.IsUndefined() || o.IsUndefined() {
		return i.IsUndefined() && o.IsUndefined()
	}
	return i.lo == o.lo && i.hi == o.hi
}

// Neq is the negation of Eq.
func (i Interval) Neq(o Interval) bool {
	return !i.Eq(o)
}

func (i Interval) String() string {
	return i.format(colorize.Bound, colorize.Undefined)
}

// Text renders the interval as "[lo, hi]" without colors.
func (i Interval) Text() string {
	return i.format(fmt.Sprint, fmt.Sprint)
}

func (i Interval) format(bound, undefined func(...interface{}) string) string {
	if i.IsUndefined() {
		return "[" + undefined("NaN") + ", " + undefined("NaN") + "]"
	}
	return "[" + bound(formatBound(i.lo)) + ", " + bound(formatBound(i.hi)) + "]"
}
