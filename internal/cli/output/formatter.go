package output

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
)

// Format selects how results are rendered.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
)

// Formatter renders command results to a writer.
type Formatter struct {
	format Format
	color  bool
	out    io.Writer
}

// NewFormatter builds a formatter for the given format, writing to out.
func NewFormatter(format Format, useColor bool, out io.Writer) *Formatter {
	return &Formatter{format: format, color: useColor, out: out}
}

// JSONMode reports whether results should be rendered as JSON.
func (f *Formatter) JSONMode() bool { return f.format == FormatJSON }

// Table renders rows under a header.
func (f *Formatter) Table(header []string, rows [][]string) {
	table := tablewriter.NewTable(f.out,
		tablewriter.WithHeader(header),
	)
	for _, row := range rows {
		table.Append(row)
	}
	table.Render()
}

// JSON renders v with indentation.
func (f *Formatter) JSON(v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(f.out, string(data))
	return err
}

// Raw writes pre-encoded bytes followed by a newline.
func (f *Formatter) Raw(data []byte) {
	fmt.Fprintln(f.out, string(data))
}

// Errorf reports a failure, in red when color is enabled.
func (f *Formatter) Errorf(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	if f.color {
		msg = color.RedString("Error: ") + msg
	} else {
		msg = "Error: " + msg
	}
	fmt.Fprintln(f.out, msg)
}

// Okf reports a success, in green when color is enabled.
func (f *Formatter) Okf(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	if f.color {
		msg = color.GreenString(msg)
	}
	fmt.Fprintln(f.out, msg)
}
