package interval

import "math"

// Add computes [a0, a1] + [b0, b1] by pairing the bounds index for index.
// The indeterminate form ∞ + (-∞) contributes both -∞ and ∞:
//
//	.-----------------------------.
//	|   b1   |   b2   |  b1 + b2  |
//	|========|========|===========|
//	|  ∈  ℝ  |  ∈  ℝ  |  b1 + b2  |
//	|--------|--------|-----------|
//	|  ∈  ℝ  |  (-)∞  |   (-)∞    |
//	|--------|--------|-----------|
//	|    ∞   |   -∞   |  {-∞, ∞}  |
//	|--------|--------|-----------|
//	|   -∞   |    ∞   |  {-∞, ∞}  |
//	 -----------------------------
func (a Interval) Add(b Interval) Interval {
	res := newCandidates()
	ab, bb := a.bounds(), b.bounds()
	for i := range ab {
		res = res.insert(plus(ab[i], bb[i])...)
	}
	return res.reduce()
}

// Sub computes [a0, a1] - [b0, b1] = [a0 - b1, a1 - b0], pairing each bound
// with the opposite bound of the subtrahend. ∞ - ∞ and (-∞) - (-∞)
// contribute both -∞ and ∞.
func (a Interval) Sub(b Interval) Interval {
	res := newCandidates()
	ab, bb := a.bounds(), b.bounds()
	for i := range ab {
		k := (i + 1) % 2
		res = res.insert(minus(ab[i], bb[k])...)
	}
	return res.reduce()
}

// AddScalar computes i + [x, x].
func (i Interval) AddScalar(x float64) Interval {
	return i.Add(Point(x))
}

// SubScalar computes i - [x, x].
func (i Interval) SubScalar(x float64) Interval {
	return i.Sub(Point(x))
}

// ScalarAdd computes [x, x] + i.
func ScalarAdd(x float64, i Interval) Interval {
	return Point(x).Add(i)
}

// ScalarSub computes [x, x] - i.
func ScalarSub(x float64, i Interval) Interval {
	return Point(x).Sub(i)
}

func plus(x, y float64) []float64 {
	if r := x + y; !math.IsNaN(r) {
		return []float64{r}
	}
	if math.IsInf(x, 0) && math.IsInf(y, 0) && x != y {
		return []float64{negInf, inf}
	}
	return nil
}

func minus(x, y float64) []float64 {
	if r := x - y; !math.IsNaN(r) {
		return []float64{r}
	}
	if math.IsInf(x, 0) && x == y {
		return []float64{negInf, inf}
	}
	return nil
}
