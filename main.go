package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/cs-au-dk/zeroinf/expr"
	"github.com/cs-au-dk/zeroinf/interval"
	"github.com/cs-au-dk/zeroinf/utils"
	"github.com/cs-au-dk/zeroinf/utils/dot"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

var opts = utils.Opts()

func main() {
	if err := utils.ParseArgs(); err != nil {
		log.Fatal(err)
	}

	var err error
	switch task := opts.Task(); {
	case task.IsForms():
		runForms()
	case task.IsAssoc():
		err = runAssoc()
	default:
		err = runEval()
	}

	if err != nil {
		log.Fatal(err)
	}
}

// operand builds operand i from its -x-lo/-x-hi flags.
func operand(i int) interval.Interval {
	return interval.New(opts.Operand(i))
}

func runEval() error {
	a, b := operand(0), operand(1)

	if opts.Op() == "abs" {
		fmt.Printf("|%s| = %s\n", a, a.Abs())
		return nil
	}

	op, err := expr.ParseOp(opts.Op())
	if err != nil {
		return err
	}

	res := op.Apply(a, b)
	log.WithFields(log.Fields{
		"a":  a.Text(),
		"b":  b.Text(),
		"op": op.Name(),
	}).Debug("Evaluating")

	fmt.Printf("%s %s %s = %s\n", a, utils.Op(op.String()), b, res)

	if !opts.Visualize() {
		return nil
	}
	e := expr.Apply(op, expr.Named("a", a), expr.Named("b", b))
	return render(expr.ToDotGraph(e, e.String()), "eval")
}

func runForms() {
	fmt.Println(utils.Head("Indeterminate forms"))
	for _, form := range interval.Forms() {
		fmt.Println(form)
		if !form.Holds() {
			log.Warnf("%s evaluates to %s", form.Name, form.Eval())
		}
	}
}

func runAssoc() error {
	op, err := expr.ParseOp(opts.Op())
	if err != nil {
		return errors.Wrap(err, "the assoc task needs a binary operator")
	}

	a := expr.Named("a", operand(0))
	b := expr.Named("b", operand(1))
	c := expr.Named("c", operand(2))
	report := expr.CheckAssociative(op, a, b, c)

	fmt.Printf("a = %s, b = %s, c = %s\n", a.Value, b.Value, c.Value)
	fmt.Printf("%s = %s\n", report.Right, report.RightValue)
	fmt.Printf("%s = %s\n", report.Left, report.LeftValue)
	fmt.Println("Associative:", utils.Verdict(report.Agree()))

	opts.OnVerbose(func() {
		for _, tr := range []expr.Trace{report.RightTrace, report.LeftTrace} {
			fmt.Println()
			for _, step := range tr {
				fmt.Printf("  %s = %s\n", step.Expr, step.Result)
			}
		}
	})

	if !opts.Visualize() {
		return nil
	}

	return render(expr.AssocDotGraph(report), "assoc")
}

// render writes dg to the -out base name, or to a file named after the task
// in the temporary directory.
func render(dg *dot.DotGraph, task string) error {
	base := opts.Output()
	if base == "" {
		base = filepath.Join(os.TempDir(), "zeroinf-"+task)
	}
	img, err := dg.Render(base, opts.OutputFormat())
	if err != nil {
		return errors.Wrapf(err, "visualizing %s", dg.Title)
	}
	log.Infof("Rendered %s to %s", dg.Title, img)
	return nil
}
