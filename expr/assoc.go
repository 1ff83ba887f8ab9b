package expr

import "github.com/cs-au-dk/zeroinf/interval"

// Association builds both groupings of a op b op c: a op (b op c) and
// (a op b) op c.
func Association(op Op, a, b, c Node) (right, left Node) {
	right = Apply(op, a, Apply(op, b, c))
	left = Apply(op, Apply(op, a, b), c)
	return
}

// AssocReport holds the outcome of comparing both groupings.
type AssocReport struct {
	Right, Left           Node
	RightValue, LeftValue interval.Interval
	RightTrace, LeftTrace Trace
}

// Agree checks that both groupings evaluate to the same interval.
func (r AssocReport) Agree() bool {
	return r.RightValue.Eq(r.LeftValue)
}

// CheckAssociative evaluates both groupings of a op b op c.
func CheckAssociative(op Op, a, b, c Node) AssocReport {
	right, left := Association(op, a, b, c)
	rv, rt := Evaluate(right)
	lv, lt := Evaluate(left)

	return AssocReport{
		Right:      right,
		Left:       left,
		RightValue: rv,
		LeftValue:  lv,
		RightTrace: rt,
		LeftTrace:  lt,
	}
}
