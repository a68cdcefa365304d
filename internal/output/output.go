// SPDX-License-Identifier: Apache-2.0

package output

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/jetstack/pullcheck/internal/check"
)

var (
	successFmt = color.New(color.FgGreen).SprintFunc()
	failureFmt = color.New(color.FgRed).SprintFunc()
)

// Printer writes one line per registry result.
type Printer struct {
	out io.Writer
}

func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// Print writes the result line for r. Errors are reported the same way as a
// missing manifest.
func (p *Printer) Print(r check.Result) {
	if r.Available() {
		fmt.Fprintf(p.out, "✓ Image %s is available in %s.\n", r.Reference, successFmt(r.Registry))
		return
	}
	fmt.Fprintf(p.out, "✗ Image %s is not available in %s.\n", r.Reference, failureFmt(r.Registry))
}
