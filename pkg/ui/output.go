package ui

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// Output writes colored status lines for the user.
type Output struct {
	Verbose bool
	Out     io.Writer
	ErrOut  io.Writer
}

// NewOutput creates an Output with default stdout/stderr writers.
func NewOutput(verbose bool) *Output {
	return &Output{
		Verbose: verbose,
		Out:     os.Stdout,
		ErrOut:  os.Stderr,
	}
}

var (
	infoPrefix    = color.New(color.FgHiBlue).Sprint("i")
	successPrefix = color.New(color.FgHiGreen).Sprint("✓")
	warningPrefix = color.New(color.FgHiYellow).Sprint("⚠")
	errorPrefix   = color.New(color.FgHiRed).Sprint("✗")
	verbosePrefix = color.New(color.FgHiBlue).Sprint("  →")
	cyan          = color.New(color.FgHiCyan).SprintFunc()
	green         = color.New(color.FgHiGreen).SprintFunc()
	red           = color.New(color.FgHiRed).SprintFunc()
)

// Cyan returns a cyan-colored string.
func Cyan(s string) string { return cyan(s) }

// Green returns a green-colored string.
func Green(s string) string { return green(s) }

// Red returns a red-colored string.
func Red(s string) string { return red(s) }

// YesNo renders a boolean as a colored yes/no.
func YesNo(b bool) string {
	if b {
		return green("yes")
	}
	return "no"
}

func (o *Output) Info(format string, a ...any) {
	fmt.Fprintf(o.Out, "%s %s\n", infoPrefix, fmt.Sprintf(format, a...))
}

func (o *Output) Success(format string, a ...any) {
	fmt.Fprintf(o.Out, "%s %s\n", successPrefix, fmt.Sprintf(format, a...))
}

func (o *Output) Warning(format string, a ...any) {
	fmt.Fprintf(o.ErrOut, "%s %s\n", warningPrefix, fmt.Sprintf(format, a...))
}

func (o *Output) Error(format string, a ...any) {
	fmt.Fprintf(o.ErrOut, "%s %s\n", errorPrefix, fmt.Sprintf(format, a...))
}

func (o *Output) VerboseLog(format string, a ...any) {
	if o.Verbose {
		fmt.Fprintf(o.Out, "%s %s\n", verbosePrefix, fmt.Sprintf(format, a...))
	}
}

// Table creates a new tablewriter configured with consistent styling.
func (o *Output) Table(headers []string) *tablewriter.Table {
	table := tablewriter.NewTable(o.Out,
		tablewriter.WithHeaderAlignment(tw.AlignLeft),
		tablewriter.WithRowAlignment(tw.AlignLeft),
		tablewriter.WithRendition(tw.Rendition{
			Borders: tw.BorderNone,
			Settings: tw.Settings{
				Lines:      tw.LinesNone,
				Separators: tw.SeparatorsNone,
			},
		}),
		tablewriter.WithPadding(tw.Padding{Left: "", Right: "  "}),
	)
	table.Header(headers)
	return table
}
