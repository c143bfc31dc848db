package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"time"

	"github.com/crm-tools/quote-atlas/pkg/models/domain"
)

// utf8BOM makes spreadsheet tools detect the encoding of accented
// headers correctly.
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

type Options struct {
	// BOM prepends a UTF-8 byte-order mark. On by default for HTTP
	// downloads, off for terminal pipes.
	BOM bool
}

// WriteCSV serializes a report as a header row plus data rows with
// standard CSV quoting.
func WriteCSV(w io.Writer, result *domain.ReportResult, opts Options) error {
	if opts.BOM {
		if _, err := w.Write(utf8BOM); err != nil {
			return fmt.Errorf("write BOM: %w", err)
		}
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(result.Headers); err != nil {
		return fmt.Errorf("write header row: %w", err)
	}
	for _, row := range result.Rows {
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write data row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// Filename builds the timestamped download name for a domain's export.
func Filename(d domain.Domain, now time.Time) string {
	return fmt.Sprintf("reporte_%s_%s.csv", d, now.Format("20060102_150405"))
}
