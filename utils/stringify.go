package utils

import (
	"github.com/fatih/color"
)

var headColor = func(is ...interface{}) string {
	return CanColorize(color.New(color.FgHiBlue, color.Bold).SprintFunc())(is...)
}
var okColor = func(is ...interface{}) string {
	return CanColorize(color.New(color.FgHiGreen).SprintFunc())(is...)
}
var failColor = func(is ...interface{}) string {
	return CanColorize(color.New(color.FgHiRed).SprintFunc())(is...)
}
var opColor = func(is ...interface{}) string {
	return CanColorize(color.New(color.FgHiYellow).SprintFunc())(is...)
}

// Head highlights a section heading.
func Head(s string) string { return headColor(s) }

// Op highlights an operator symbol.
func Op(s string) string { return opColor(s) }

// Verdict renders a boolean outcome as a colored yes/no.
func Verdict(ok bool) string {
	if ok {
		return okColor("yes")
	}
	return failColor("no")
}
