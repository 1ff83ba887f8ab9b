// Package expr evaluates trees of interval operations. It records every
// intermediate result, which makes order-dependent resolutions of
// indeterminate forms visible, e.g. the non-associativity of multiplication.
package expr

import (
	"github.com/cs-au-dk/zeroinf/interval"

	log "github.com/sirupsen/logrus"
)

// Node is an interval expression.
type Node interface {
	String() string

	eval(visit visitor) interval.Interval
	children() []Node
	// label is the operator or name shown for the node, without its value.
	label() string
}

// Const is a leaf holding an interval. An empty name renders the value.
type Const struct {
	Name  string
	Value interval.Interval
}

// Binary applies Op to the values of L and R.
type Binary struct {
	Op   Op
	L, R Node
}

// Abs computes the absolute value of X.
type Abs struct {
	X Node
}

// Val creates an anonymous constant.
func Val(i interval.Interval) Const {
	return Const{Value: i}
}

// Named creates a named constant.
func Named(name string, i interval.Interval) Const {
	return Const{Name: name, Value: i}
}

// Apply creates the node l op r.
func Apply(op Op, l, r Node) Binary {
	return Binary{Op: op, L: l, R: r}
}

func (c Const) String() string {
	if c.Name != "" {
		return c.Name
	}
	return c.Value.String()
}

func (b Binary) String() string {
	return "(" + b.L.String() + " " + b.Op.String() + " " + b.R.String() + ")"
}

func (a Abs) String() string {
	return "|" + a.X.String() + "|"
}

func (c Const) label() string {
	if c.Name != "" {
		return c.Name
	}
	return "const"
}

func (b Binary) label() string { return b.Op.String() }

func (Abs) label() string { return "abs" }

func (Const) children() []Node    { return nil }
func (b Binary) children() []Node { return []Node{b.L, b.R} }
func (a Abs) children() []Node    { return []Node{a.X} }

// visitor observes every node once its value is known, in post order.
type visitor func(n Node, res interval.Interval, operands []interval.Interval)

func (c Const) eval(visit visitor) interval.Interval {
	visit(c, c.Value, nil)
	return c.Value
}

func (b Binary) eval(visit visitor) interval.Interval {
	l, r := b.L.eval(visit), b.R.eval(visit)
	res := b.Op.Apply(l, r)
	visit(b, res, []interval.Interval{l, r})
	return res
}

func (a Abs) eval(visit visitor) interval.Interval {
	x := a.X.eval(visit)
	res := x.Abs()
	visit(a, res, []interval.Interval{x})
	return res
}

// Step is a single evaluated operation.
type Step struct {
	Expr     string
	Operands []interval.Interval
	Result   interval.Interval
}

// Trace lists the evaluated operations in post order.
type Trace []Step

// Evaluate computes the value of n.
func Evaluate(n Node) (interval.Interval, Trace) {
	tr := Trace{}
	res := n.eval(func(n Node, res interval.Interval, operands []interval.Interval) {
		if _, ok := n.(Const); ok {
			return
		}

		log.WithFields(log.Fields{
			"expr":   n.String(),
			"result": res.Text(),
		}).Debug("Evaluated")

		tr = append(tr, Step{Expr: n.String(), Operands: operands, Result: res})
	})
	return res, tr
}
