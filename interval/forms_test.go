package interval

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/sebdah/goldie/v2"
)

func TestFormsHold(t *testing.T) {
	for _, form := range Forms() {
		if res := form.Eval(); !res.Eq(form.Resolution) {
			t.Errorf("%s evaluated to %s", form, res)
		}
		if !form.Holds() {
			t.Errorf("%s does not hold", form)
		}
	}
}

func TestFormsTable(t *testing.T) {
	var out bytes.Buffer
	for _, form := range Forms() {
		fmt.Fprintln(&out, form)
	}

	goldie.New(t).Assert(t, t.Name(), out.Bytes())
}
