package expr

import (
	"github.com/cs-au-dk/zeroinf/interval"

	"github.com/pkg/errors"
)

// Op is a binary interval operator.
type Op int

const (
	Add Op = iota
	Sub
	Mult
	Div
	Pow
)

var ops = [...]struct {
	name, symbol string
	apply        func(a, b interval.Interval) interval.Interval
}{
	Add:  {"add", "+", interval.Interval.Add},
	Sub:  {"sub", "-", interval.Interval.Sub},
	Mult: {"mult", "*", interval.Interval.Mult},
	Div:  {"div", "/", interval.Interval.Div},
	Pow:  {"pow", "^", interval.Interval.Pow},
}

// ErrUnknownOp is returned by ParseOp for names that denote no binary operator.
var ErrUnknownOp = errors.New("unknown operator")

// ParseOp resolves an operator name such as "mult".
func ParseOp(name string) (Op, error) {
	for op, desc := range ops {
		if desc.name == name {
			return Op(op), nil
		}
	}
	return 0, errors.Wrapf(ErrUnknownOp, "%q", name)
}

// Name is the operator name accepted by ParseOp.
func (o Op) Name() string {
	return ops[o].name
}

// String yields the operator symbol.
func (o Op) String() string {
	return ops[o].symbol
}

// Apply computes a o b.
func (o Op) Apply(a, b interval.Interval) interval.Interval {
	return ops[o].apply(a, b)
}
