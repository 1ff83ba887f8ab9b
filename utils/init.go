package utils

import (
	"flag"
	"fmt"
	"math"
	"os"
	"strings"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

type options struct {
	minlen     uint
	nodesep    float64
	task       string
	op         string
	format     string
	out        string
	operands   [3][2]float64
	noColorize bool
	verbose    bool
	visualize  bool
}

const (
	_EVAL = iota
	_FORMS
	_ASSOC
)

// CanColorize gates a colorizer behind the -no-colorize flag.
func CanColorize(col func(...interface{}) string) func(...interface{}) string {
	if opts.noColorize {
		return func(is ...interface{}) string {
			return fmt.Sprintf(strings.Repeat("%s", len(is)), is...)
		}
	}
	return col
}

var task = []struct{ flag, explanation string }{{
	"eval",
	"Evaluate a single operation: [a-lo, a-hi] op [b-lo, b-hi]",
}, {
	"forms",
	"Print the resolution table of every indeterminate form",
}, {
	"assoc",
	"Compare a op (b op c) against (a op b) op c and report whether they agree",
}}

// Operators accepted by -op. The names are resolved by expr.ParseOp.
var Operators = []string{"add", "sub", "mult", "div", "pow", "abs"}

var operandNames = []string{"a", "b", "c"}

var opts = &options{}

type optInterface struct{}

type taskInterface struct{}

func Opts() optInterface {
	return optInterface{}
}

func (optInterface) NoColorize() bool {
	return opts.noColorize
}

// SetNoColorize overrides -no-colorize. Used by tests producing golden output.
func (optInterface) SetNoColorize(b bool) {
	opts.noColorize = b
}

func (optInterface) Minlen() uint {
	return opts.minlen
}
func (optInterface) Nodesep() float64 {
	return opts.nodesep
}
func (optInterface) Op() string {
	return opts.op
}
func (optInterface) OutputFormat() string {
	return opts.format
}
func (optInterface) Output() string {
	return opts.out
}

// Operand returns the raw bounds given for operand i (0 for a, 1 for b, 2 for c).
func (optInterface) Operand(i int) (float64, float64) {
	return opts.operands[i][0], opts.operands[i][1]
}

func (optInterface) Verbose() bool {
	return opts.verbose
}
func (optInterface) Visualize() bool {
	return opts.visualize
}
func (optInterface) Task() taskInterface {
	return taskInterface{}
}
func (taskInterface) IsEval() bool {
	return opts.task == task[_EVAL].flag
}
func (taskInterface) IsForms() bool {
	return opts.task == task[_FORMS].flag
}
func (taskInterface) IsAssoc() bool {
	return opts.task == task[_ASSOC].flag
}

func init() {
	registerFlags(flag.CommandLine, opts)

	log.SetFormatter(&log.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "15:04:05",
	})
}

func registerFlags(fs *flag.FlagSet, o *options) {
	taskFlag := "\n"
	for _, task := range task {
		taskFlag += task.flag + " -- " + task.explanation + "\n"
	}
	taskFlag += "\n"

	fs.UintVar(&(o.minlen), "minlen", 2, "Minimum edge length (for wider output).")
	fs.Float64Var(&(o.nodesep), "nodesep", 0.35, "Minimum space between two adjacent nodes in the same rank (for taller output).")
	fs.StringVar(&(o.task), "task", task[_EVAL].flag, "Set the task to do during execution. Options:"+taskFlag)
	fs.StringVar(&(o.op), "op", "mult", "Operator to apply. Options: "+strings.Join(Operators, ", "))
	fs.StringVar(&(o.format), "format", "svg", "output file format [svg | png | jpg | ...]")
	fs.StringVar(&(o.out), "out", "", "base name of the rendered graph (defaults to a temporary file)")
	for i, name := range operandNames {
		fs.Float64Var(&(o.operands[i][0]), name+"-lo", 0, "lower bound of operand "+name+" (accepts inf, -inf and nan)")
		fs.Float64Var(&(o.operands[i][1]), name+"-hi", math.NaN(), "upper bound of operand "+name+"; defaults to the lower bound")
	}
	fs.BoolVar(&(o.noColorize), "no-colorize", false, "Disable pretty printer colorization")
	fs.BoolVar(&(o.verbose), "verbose", false, "enable verbose output")
	fs.BoolVar(&(o.visualize), "visualize", false, "render the evaluated expressions with graphviz")
}

// ErrInvalidOption is returned by ParseArgs for an unknown -task or -op.
var ErrInvalidOption = errors.New("invalid option")

// ParseArgs parses and validates the command line.
func ParseArgs() error {
	// Calling flag.Parse in init messes up unit tests.
	// See https://stackoverflow.com/questions/60235896/flag-provided-but-not-defined-test-v
	return parseArgs(flag.CommandLine, opts, os.Args[1:])
}

func parseArgs(fs *flag.FlagSet, o *options, args []string) error {
	if err := fs.Parse(args); err != nil {
		return err
	}

	validTask := false
	for _, task := range task {
		if task.flag == o.task {
			validTask = true
			break
		}
	}
	if !validTask {
		return errors.Wrapf(ErrInvalidOption, "value %q for -task", o.task)
	}

	validOp := false
	for _, op := range Operators {
		if op == o.op {
			validOp = true
			break
		}
	}
	if !validOp {
		return errors.Wrapf(ErrInvalidOption, "value %q for -op", o.op)
	}

	// An omitted upper bound yields a point interval. An explicit -x-hi=nan
	// cannot be told apart from an omitted one, so it is looked up in the
	// set of visited flags.
	given := map[string]bool{}
	fs.Visit(func(f *flag.Flag) { given[f.Name] = true })
	for i, name := range operandNames {
		if !given[name+"-hi"] {
			o.operands[i][1] = o.operands[i][0]
		}
	}

	if o.verbose {
		log.SetLevel(log.DebugLevel)
	}
	return nil
}

func (optInterface) OnVerbose(do func()) {
	if Opts().Verbose() {
		do()
	}
}
