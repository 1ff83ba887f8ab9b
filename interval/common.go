package interval

import (
	"math"
	"strconv"

	"github.com/cs-au-dk/zeroinf/utils"

	"github.com/fatih/color"
)

var colorize = struct {
	Bound     func(...interface{}) string
	Undefined func(...interface{}) string
	Form      func(...interface{}) string
}{
	Bound: func(is ...interface{}) string {
		return utils.CanColorize(color.New(color.FgCyan).SprintFunc())(is...)
	},
	Undefined: func(is ...interface{}) string {
		return utils.CanColorize(color.New(color.FgHiRed).SprintFunc())(is...)
	},
	Form: func(is ...interface{}) string {
		return utils.CanColorize(color.New(color.FgMagenta).SprintFunc())(is...)
	},
}

var (
	inf    = math.Inf(1)
	negInf = math.Inf(-1)
	nan    = math.NaN()
)

// formatBound renders a single bound. Infinities use ∞ and both signed
// zeros print as 0.
func formatBound(x float64) string {
	switch {
	case math.IsNaN(x):
		return "NaN"
	case math.IsInf(x, 1):
		return "∞"
	case math.IsInf(x, -1):
		return "-∞"
	case x == 0:
		return "0"
	}
	return strconv.FormatFloat(x, 'g', -1, 64)
}
