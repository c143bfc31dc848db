package export

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/crm-tools/quote-atlas/pkg/models/domain"
)

func TestWriteCSV(t *testing.T) {
	result := &domain.ReportResult{
		Headers: []string{"Cliente", "Monto Total"},
		Rows: [][]string{
			{"ACME", "$1,500.50"},
			{`Comma, Inc "quoted"`, "$0.00"},
		},
		TotalRecords: 2,
	}

	t.Run("with BOM", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, WriteCSV(&buf, result, Options{BOM: true}))

		out := buf.Bytes()
		require.True(t, bytes.HasPrefix(out, []byte{0xEF, 0xBB, 0xBF}))
		assert.Contains(t, string(out), "Cliente,Monto Total\n")
		assert.Contains(t, string(out), `"$1,500.50"`)
		assert.Contains(t, string(out), `"Comma, Inc ""quoted"""`)
	})

	t.Run("without BOM", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, WriteCSV(&buf, result, Options{}))
		assert.False(t, bytes.HasPrefix(buf.Bytes(), []byte{0xEF, 0xBB, 0xBF}))
	})

	t.Run("empty report still writes headers", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, WriteCSV(&buf, &domain.ReportResult{Headers: []string{"A"}}, Options{}))
		assert.Equal(t, "A\n", buf.String())
	})
}

func TestFilename(t *testing.T) {
	now := time.Date(2024, 6, 15, 10, 30, 0, 0, time.UTC)
	assert.Equal(t, "reporte_sales_20240615_103000.csv", Filename(domain.DomainSales, now))
}
