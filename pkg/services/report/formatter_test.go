package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatValue_Currency(t *testing.T) {
	assert.Equal(t, "$1,500.50", FormatValue("quotes.total_amount", 1500.5))
	assert.Equal(t, "$0.00", FormatValue("products.base_price", nil))
	assert.Equal(t, "$1,234,567.89", FormatValue("stats.total_sales_value", 1234567.89))
	assert.Equal(t, "$99.90", FormatValue("stats.avg_sale_price", "99.9"))
}

func TestFormatValue_Dates(t *testing.T) {
	assert.Equal(t, "15/03/2024", FormatValue("quotes.quote_date", "2024-03-15"))
	assert.Equal(t, "15/03/2024", FormatValue("quotes.quote_date", "2024-03-15 10:30:00"))
	assert.Equal(t, "", FormatValue("quotes.quote_date", nil))
	assert.Equal(t, "", FormatValue("stats.last_quote_date", ""))
}

func TestFormatValue_Percentages(t *testing.T) {
	assert.Equal(t, "66.67%", FormatValue("stats.conversion_rate", 66.67))
	assert.Equal(t, "16.00%", FormatValue("products.tax_rate", 16))
	assert.Equal(t, "0%", FormatValue("quotes.discount_percent", nil))
}

func TestFormatValue_Counts(t *testing.T) {
	assert.Equal(t, "1,250", FormatValue("quotes.items_count", 1250))
	assert.Equal(t, "42", FormatValue("sales.days_to_close", int64(42)))
	assert.Equal(t, "0", FormatValue("quotes.items_count", nil))
}

func TestFormatValue_Passthrough(t *testing.T) {
	// Status arrives already mapped to its display name and passes
	// through untouched.
	assert.Equal(t, "Aprobada", FormatValue("quotes.status", "Aprobada"))
	assert.Equal(t, "Stock crítico", FormatValue("products.stock_status", "Stock crítico"))
	assert.Equal(t, "", FormatValue("clients.company", nil))
	assert.Equal(t, "7", FormatValue("products.stock", int64(7)))
}

func TestFormatValue_PrecedenceDateBeforeCurrency(t *testing.T) {
	// A column matching both "date" and a currency keyword formats as a
	// date; precedence is fixed.
	assert.Equal(t, "01/02/2024", FormatValue("x.amount_date", "2024-02-01"))
}

func TestGroupThousands(t *testing.T) {
	assert.Equal(t, "0.00", groupThousands("0.00"))
	assert.Equal(t, "100", groupThousands("100"))
	assert.Equal(t, "1,000", groupThousands("1000"))
	assert.Equal(t, "-12,345.67", groupThousands("-12345.67"))
}
