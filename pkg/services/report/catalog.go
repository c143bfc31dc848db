package report

import (
	"strings"

	"github.com/crm-tools/quote-atlas/pkg/models/domain"
)

// catalogEntry binds a virtual-field token to the data key its value is
// stored under in the aggregate row and the header label shown to users.
type catalogEntry struct {
	token       string
	dataKey     string
	displayName string
}

// fieldCatalogs holds one ordered catalog per domain. Entries are added
// here and never mutated; lookup maps are derived once at package init.
var fieldCatalogs = map[domain.Domain][]catalogEntry{
	domain.DomainQuotes: {
		{"quotes.quote_number", "quote_number", "Número de Cotización"},
		{"clients.name", "client_name", "Cliente"},
		{"clients.email", "client_email", "Email del Cliente"},
		{"users.name", "user_name", "Vendedor"},
		{"quotes.quote_date", "quote_date", "Fecha de Cotización"},
		{"quotes.valid_until", "valid_until", "Válida Hasta"},
		{"quotes.status", "status_name", "Estado"},
		{"quotes.total_amount", "total_amount", "Monto Total"},
		{"quotes.items_count", "items_count", "Cantidad de Ítems"},
		{"quotes.timing_status", "timing_status", "Estado de Plazo"},
		{"quotes.days_in_process", "days_in_process", "Días en Proceso"},
	},
	domain.DomainProducts: {
		{"products.code", "code", "Código"},
		{"products.name", "name", "Producto"},
		{"products.category", "category", "Categoría"},
		{"products.base_price", "base_price", "Precio Base"},
		{"products.tax_rate", "tax_rate", "Tasa de Impuesto"},
		{"products.final_price", "final_price", "Precio Final"},
		{"products.stock", "stock", "Stock"},
		{"products.stock_status", "stock_status", "Estado de Stock"},
		{"stats.times_quoted", "times_quoted", "Veces Cotizado"},
		{"stats.total_quoted_value", "total_quoted_value", "Valor Total Cotizado"},
		{"stats.times_sold", "times_sold", "Veces Vendido"},
		{"stats.total_sales_value", "total_sales_value", "Valor Total de Ventas"},
		{"stats.avg_sale_price", "avg_sale_price", "Precio Promedio de Venta"},
	},
	domain.DomainClients: {
		{"clients.name", "name", "Cliente"},
		{"clients.email", "email", "Email"},
		{"clients.phone", "phone", "Teléfono"},
		{"clients.company", "company", "Empresa"},
		{"clients.created_at", "created_at", "Fecha de Alta"},
		{"stats.total_quotes", "total_quotes", "Total de Cotizaciones"},
		{"stats.approved_quotes", "approved_quotes", "Cotizaciones Aprobadas"},
		{"stats.conversion_rate", "conversion_rate", "Tasa de Conversión"},
		{"stats.total_sales_value", "total_sales_value", "Valor Total de Ventas"},
		{"stats.customer_tier", "customer_tier", "Categoría de Cliente"},
		{"stats.activity_status", "activity_status", "Estado de Actividad"},
		{"stats.last_quote_date", "last_quote_date", "Última Cotización"},
	},
	domain.DomainSales: {
		{"quotes.quote_number", "quote_number", "Número de Cotización"},
		{"clients.name", "client_name", "Cliente"},
		{"quotes.quote_date", "quote_date", "Fecha de Venta"},
		{"quotes.total_amount", "total_amount", "Monto Total"},
		{"quotes.discount_percent", "discount_percent", "Descuento"},
		{"sales.discount_category", "discount_category", "Categoría de Descuento"},
		{"sales.sale_category", "sale_category", "Categoría de Venta"},
		{"sales.profit_value", "estimated_profit", "Ganancia Estimada"},
		{"sales.days_to_close", "days_to_close", "Días para Cerrar"},
		{"sales.timing_status", "timing_status", "Estado de Plazo"},
	},
}

// catalogIndex maps domain -> table -> column -> entry for resolution.
var catalogIndex = buildCatalogIndex()

func buildCatalogIndex() map[domain.Domain]map[string]map[string]catalogEntry {
	idx := make(map[domain.Domain]map[string]map[string]catalogEntry, len(fieldCatalogs))
	for d, entries := range fieldCatalogs {
		tables := make(map[string]map[string]catalogEntry)
		for _, e := range entries {
			table, column, ok := splitToken(e.token)
			if !ok {
				continue
			}
			if tables[table] == nil {
				tables[table] = make(map[string]catalogEntry)
			}
			tables[table][column] = e
		}
		idx[d] = tables
	}
	return idx
}

// splitToken splits a "table.column" token on the first dot.
func splitToken(token string) (table, column string, ok bool) {
	i := strings.Index(token, ".")
	if i <= 0 || i == len(token)-1 {
		return "", "", false
	}
	return token[:i], token[i+1:], true
}

// CatalogFields returns the selectable fields of a domain in catalog
// order, for field-picker UIs and the CLI fields command.
func CatalogFields(d domain.Domain) []domain.Field {
	entries := fieldCatalogs[d]
	fields := make([]domain.Field, 0, len(entries))
	for _, e := range entries {
		fields = append(fields, domain.Field{
			Token:       e.token,
			DataKey:     e.dataKey,
			DisplayName: e.displayName,
		})
	}
	return fields
}
