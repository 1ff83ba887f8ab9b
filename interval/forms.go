package interval

import "fmt"

// Form is an indeterminate form together with the interval it resolves to.
type Form struct {
	// Name is the classical notation, e.g. "0 · ∞".
	Name string
	// Op is one of "+", "-", "*", "/", "^".
	Op         string
	A, B       Interval
	Resolution Interval
}

// Eval applies the form's operation to its operands.
func (f Form) Eval() Interval {
	switch f.Op {
	case "+":
		return f.A.Add(f.B)
	case "-":
		return f.A.Sub(f.B)
	case "*":
		return f.A.Mult(f.B)
	case "/":
		return f.A.Div(f.B)
	case "^":
		return f.A.Pow(f.B)
	}
	panic(fmt.Errorf("invalid pattern match: %v %T", f.Op, f.Op))
}

// Holds checks that evaluating the form yields its resolution.
func (f Form) Holds() bool {
	return f.Eval().Eq(f.Resolution)
}

func (f Form) String() string {
	return fmt.Sprintf("%s: %s %s %s = %s", colorize.Form(f.Name), f.A, f.Op, f.B, f.Resolution)
}

// Forms lists every indeterminate form and its resolution.
func Forms() []Form {
	zero, one := Point(0), Point(1)
	pinf, ninf := Point(inf), Point(negInf)

	return []Form{
		{"∞ + (-∞)", "+", pinf, ninf, Entire()},
		{"(-∞) + ∞", "+", ninf, pinf, Entire()},
		{"∞ - ∞", "-", pinf, pinf, Entire()},
		{"(-∞) - (-∞)", "-", ninf, ninf, Entire()},
		{"0 · ∞", "*", zero, pinf, New(0, inf)},
		{"∞ · 0", "*", pinf, zero, New(0, inf)},
		{"0 · (-∞)", "*", zero, ninf, New(negInf, 0)},
		{"(-∞) · 0", "*", ninf, zero, New(negInf, 0)},
		{"0 / 0", "/", zero, zero, Entire()},
		{"∞ / ∞", "/", pinf, pinf, New(0, inf)},
		{"0 ^ 0", "^", zero, zero, New(0, 1)},
		{"1 ^ ∞", "^", one, pinf, New(0, inf)},
		{"∞ ^ 0", "^", pinf, zero, New(1, inf)},
	}
}
