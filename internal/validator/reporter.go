package validator

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

// Reporter writes progress lines and validation results as text.
type Reporter struct {
	out     io.Writer
	subject string
}

// NewReporter creates a Reporter. subject names what is validated in the
// summary line, e.g. "Asset" or "Scene".
func NewReporter(out io.Writer, subject string) *Reporter {
	return &Reporter{
		out:     out,
		subject: subject,
	}
}

// Progressf writes one progress line.
func (r *Reporter) Progressf(format string, args ...any) {
	fmt.Fprintf(r.out, format+"\n", args...)
}

// Confirmf writes a progress line for a check that succeeded.
func (r *Reporter) Confirmf(format string, args ...any) {
	fmt.Fprintln(r.out, color.GreenString("✓ "+format, args...))
}

// Report writes the findings, errors first, then the summary line.
func (r *Reporter) Report(result *Result) {
	if result == nil {
		return
	}

	if result.Fatal() {
		for _, f := range result.Errors() {
			fmt.Fprintln(r.out, color.RedString("ERROR: %s", f.Message))
		}
		return
	}

	errs := result.Errors()
	warnings := result.Warnings()

	if len(errs) > 0 {
		fmt.Fprintln(r.out)
		fmt.Fprintln(r.out, color.New(color.FgRed, color.Bold).Sprint("ERRORS:"))
		for _, f := range errs {
			r.printFinding(f)
		}
	}

	if len(warnings) > 0 {
		fmt.Fprintln(r.out)
		fmt.Fprintln(r.out, color.New(color.FgYellow, color.Bold).Sprint("WARNINGS:"))
		for _, f := range warnings {
			r.printFinding(f)
		}
	}

	fmt.Fprintln(r.out)
	switch {
	case len(errs) > 0:
		fmt.Fprintln(r.out, color.RedString("✗ %s validation failed with %d error(s)", r.subject, len(errs)))
	case len(warnings) > 0:
		fmt.Fprintln(r.out, color.YellowString("⚠ %s validation passed with %d warning(s)", r.subject, len(warnings)))
	default:
		fmt.Fprintln(r.out, color.GreenString("✓ %s validation passed", r.subject))
	}
}

func (r *Reporter) printFinding(f Finding) {
	fmt.Fprintf(r.out, "  - %s\n", f.Message)
}
