package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/linskybing/exam-hub/pkg/utils"
)

var (
	headerColor = color.New(color.FgBlue, color.Bold)
	dimColor    = color.New(color.FgHiBlack)
)

// printTable prints rows left-aligned under a colored header line.
func printTable(w io.Writer, headers []string, rows [][]string) {
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = len(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if i < len(widths) && len(cell) > widths[i] {
				widths[i] = len(cell)
			}
		}
	}

	for i, h := range headers {
		_, _ = headerColor.Fprintf(w, "%-*s", widths[i], h)
		if i < len(headers)-1 {
			fmt.Fprint(w, "  ")
		}
	}
	fmt.Fprintln(w)
	for _, row := range rows {
		cells := make([]string, len(row))
		for i, cell := range row {
			cells[i] = fmt.Sprintf("%-*s", widths[i], cell)
		}
		fmt.Fprintln(w, strings.TrimRight(strings.Join(cells, "  "), " "))
	}
}

func printEmpty(w io.Writer, msg string) {
	_, _ = dimColor.Fprintln(w, msg)
}

// printLines prints one item per line, or the whole list in the requested format.
func printLines(w io.Writer, items []string) error {
	if outputFormat != "" {
		return utils.WriteOutput(w, outputFormat, items)
	}
	for _, item := range items {
		fmt.Fprintln(w, item)
	}
	return nil
}

// printValue prints structured values; JSON unless YAML was asked for.
func printValue(w io.Writer, v interface{}) error {
	return utils.WriteOutput(w, outputFormat, v)
}
