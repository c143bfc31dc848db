package terminal

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/crm-tools/quote-atlas/pkg/models/domain"
)

const maxColumnWidth = 40

// Reporter renders report results as an aligned text table on the
// console.
type Reporter struct {
	writer io.Writer
}

// NewReporter creates a new console reporter
func NewReporter(writer io.Writer) *Reporter {
	if writer == nil {
		writer = os.Stdout
	}
	return &Reporter{writer: writer}
}

func (c *Reporter) Handle(result *domain.ReportResult) error {
	if len(result.Headers) == 0 {
		_, err := fmt.Fprintln(c.writer, "No columns resolved for this report.")
		return err
	}

	widths := columnWidths(result)

	separator := buildSeparator(widths)
	if err := c.writeLines(separator, formatRow(result.Headers, widths), separator); err != nil {
		return err
	}
	for _, row := range result.Rows {
		if err := c.writeLines(formatRow(row, widths)); err != nil {
			return err
		}
	}
	if err := c.writeLines(separator); err != nil {
		return err
	}

	_, err := fmt.Fprintf(c.writer, "%d registros\n", result.TotalRecords)
	return err
}

func (c *Reporter) writeLines(lines ...string) error {
	for _, line := range lines {
		if _, err := fmt.Fprintln(c.writer, line); err != nil {
			return err
		}
	}
	return nil
}

func columnWidths(result *domain.ReportResult) []int {
	widths := make([]int, len(result.Headers))
	for i, h := range result.Headers {
		widths[i] = len([]rune(h))
	}
	for _, row := range result.Rows {
		for i, cell := range row {
			if i < len(widths) && len([]rune(cell)) > widths[i] {
				widths[i] = len([]rune(cell))
			}
		}
	}
	for i := range widths {
		if widths[i] > maxColumnWidth {
			widths[i] = maxColumnWidth
		}
	}
	return widths
}

func buildSeparator(widths []int) string {
	parts := make([]string, len(widths))
	for i, w := range widths {
		parts[i] = strings.Repeat("-", w+2)
	}
	return "+" + strings.Join(parts, "+") + "+"
}

func formatRow(cells []string, widths []int) string {
	parts := make([]string, len(widths))
	for i, w := range widths {
		cell := ""
		if i < len(cells) {
			cell = cells[i]
		}
		runes := []rune(cell)
		if len(runes) > w {
			cell = string(runes[:w-1]) + "…"
		}
		pad := w - len([]rune(cell))
		parts[i] = " " + cell + strings.Repeat(" ", pad) + " "
	}
	return "|" + strings.Join(parts, "|") + "|"
}
