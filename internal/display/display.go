// Package display renders the user-facing banner and batch summary.
package display

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/bnema/pdfbatch/internal/domain"
)

// Banner prints the run header before conversion starts.
func Banner(w io.Writer, input, output string, flatten bool, dpi int) {
	bold := color.New(color.Bold)
	_, _ = bold.Fprintln(w, "pdfbatch")
	fmt.Fprintf(w, "  input:   %s\n", input)
	fmt.Fprintf(w, "  output:  %s\n", output)
	mode := "preserve hierarchy"
	if flatten {
		mode = "flatten"
	}
	fmt.Fprintf(w, "  mode:    %s\n", mode)
	fmt.Fprintf(w, "  img dpi: %d\n", dpi)
	fmt.Fprintln(w)
}

// Summary prints counts and per-failure reasons in discovery order. It
// is printed for every completed run, including fully failed ones; only
// pre-flight errors skip it.
func Summary(w io.Writer, report *domain.Report) {
	green := color.New(color.FgGreen)
	red := color.New(color.FgRed)

	fmt.Fprintln(w)
	_, _ = green.Fprintf(w, "converted %d/%d files\n", report.Succeeded, report.Total)
	if report.Failed == 0 {
		return
	}

	_, _ = red.Fprintf(w, "%d failed:\n", report.Failed)
	for _, f := range report.Failures {
		_, _ = red.Fprintf(w, "  %s [%s]", f.RelPath, f.Kind)
		if f.Message != "" {
			fmt.Fprintf(w, ": %s", f.Message)
		}
		fmt.Fprintln(w)
	}
}
