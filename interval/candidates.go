package interval

import (
	"math"

	"github.com/benbjohnson/immutable"
)

// floatComparer orders extended reals. NaN never reaches it.
type floatComparer struct{}

func (floatComparer) Compare(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

// candidates is the ordered set of bound values produced while enumerating
// the corners of a binary operation. Only its extremes are ever read.
type candidates struct {
	*immutable.SortedMap[float64, struct{}]
}

func newCandidates() candidates {
	return candidates{immutable.NewSortedMap[float64, struct{}](floatComparer{})}
}

// insert adds every non-NaN value in xs.
func (c candidates) insert(xs ...float64) candidates {
	mp := c.SortedMap
	for _, x := range xs {
		if math.IsNaN(x) {
			continue
		}
		mp = mp.Set(x, struct{}{})
	}
	return candidates{mp}
}

// reduce yields [min, max] of the collected values, or the undefined
// interval if nothing was collected.
func (c candidates) reduce() Interval {
	if c.Len() == 0 {
		return Undefined()
	}

	iter := c.Iterator()
	lo, _, _ := iter.Next()
	iter.Last()
	hi, _, _ := iter.Next()
	return New(lo, hi)
}
