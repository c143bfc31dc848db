package report

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/crm-tools/quote-atlas/pkg/models/domain"
	"github.com/crm-tools/quote-atlas/pkg/models/store"
)

// Store runs the per-domain aggregate report queries plus the dashboard
// counters against the CRM database.
type Store interface {
	Aggregate(ctx context.Context, d domain.Domain, r domain.DateRange) ([]store.AggregateRow, error)
	SalesTrendTotals(ctx context.Context) (*store.TrendTotals, error)
	EntityCounts(ctx context.Context) (*store.EntityCounts, error)
}

type reportStore struct {
	db *sql.DB
}

func NewStore(db *sql.DB) (Store, error) {
	if db == nil {
		return nil, fmt.Errorf("database connection is nil")
	}
	return &reportStore{db: db}, nil
}

const quotesQuery = `
	SELECT
		q.id AS id,
		q.quote_number AS quote_number,
		c.name AS client_name,
		c.email AS client_email,
		u.name AS user_name,
		q.quote_date AS quote_date,
		q.valid_until AS valid_until,
		q.status AS status,
		q.total_amount AS total_amount,
		COUNT(qi.id) AS items_count,
		q.created_at AS created_at,
		q.updated_at AS updated_at
	FROM quotes q
	JOIN clients c ON c.id = q.client_id
	LEFT JOIN users u ON u.id = q.user_id
	LEFT JOIN quote_items qi ON qi.quote_id = q.id`

const productsQuery = `
	SELECT
		p.id AS id,
		p.code AS code,
		p.name AS name,
		p.category AS category,
		p.base_price AS base_price,
		p.tax_rate AS tax_rate,
		p.stock AS stock,
		COUNT(CASE WHEN q.status IN (1, 2, 3, 4) THEN qi.id END) AS times_quoted,
		COALESCE(SUM(CASE WHEN q.status IN (1, 2, 3, 4) THEN qi.quantity * qi.unit_price END), 0) AS total_quoted_value,
		COUNT(CASE WHEN q.status = 3 THEN qi.id END) AS times_sold,
		COALESCE(SUM(CASE WHEN q.status = 3 THEN qi.quantity * qi.unit_price END), 0) AS total_sales_value,
		ROUND(COALESCE(AVG(CASE WHEN q.status = 3 THEN qi.unit_price END), 0), 2) AS avg_sale_price
	FROM products p
	LEFT JOIN quote_items qi ON qi.product_id = p.id
	LEFT JOIN quotes q ON q.id = qi.quote_id`

const clientsQuery = `
	SELECT
		c.id AS id,
		c.name AS name,
		c.email AS email,
		c.phone AS phone,
		c.company AS company,
		c.created_at AS created_at,
		COUNT(q.id) AS total_quotes,
		COUNT(CASE WHEN q.status = 3 THEN q.id END) AS approved_quotes,
		COALESCE(SUM(CASE WHEN q.status = 3 THEN q.total_amount END), 0) AS total_sales_value,
		MAX(q.created_at) AS last_quote_date
	FROM clients c
	LEFT JOIN quotes q ON q.client_id = c.id`

const salesQuery = `
	SELECT
		q.id AS id,
		q.quote_number AS quote_number,
		c.name AS client_name,
		q.quote_date AS quote_date,
		q.valid_until AS valid_until,
		q.total_amount AS total_amount,
		q.discount_percent AS discount_percent,
		q.created_at AS created_at
	FROM quotes q
	JOIN clients c ON c.id = q.client_id`

// domainQuery describes how one domain's aggregate query is assembled:
// the select/join body, the column the date range applies to, a fixed
// filter (sales only), and the grouping/ordering tail.
type domainQuery struct {
	body        string
	dateColumn  string
	fixedFilter string
	tail        string
}

var domainQueries = map[domain.Domain]domainQuery{
	domain.DomainQuotes: {
		body:       quotesQuery,
		dateColumn: "q.quote_date",
		tail:       " GROUP BY q.id ORDER BY q.quote_date DESC, q.id DESC",
	},
	domain.DomainProducts: {
		body:       productsQuery,
		dateColumn: "p.created_at",
		tail:       " GROUP BY p.id ORDER BY p.name",
	},
	domain.DomainClients: {
		body:       clientsQuery,
		dateColumn: "c.created_at",
		tail:       " GROUP BY c.id ORDER BY c.name",
	},
	domain.DomainSales: {
		body:        salesQuery,
		dateColumn:  "q.quote_date",
		fixedFilter: "q.status = 3",
		tail:        " ORDER BY q.quote_date DESC, q.id DESC",
	},
}

func (s *reportStore) Aggregate(ctx context.Context, d domain.Domain, r domain.DateRange) ([]store.AggregateRow, error) {
	dq, ok := domainQueries[d]
	if !ok {
		return nil, fmt.Errorf("no aggregate query for domain %q", d)
	}

	query, args := buildQuery(dq, r)
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query %s report: %w", d, err)
	}
	defer rows.Close()

	return scanAggregateRows(rows)
}

// buildQuery appends the optional date-range bounds and the domain's
// fixed filter as WHERE clauses before the grouping tail. Date bounds
// compare against the date() of the column so datetime columns match
// their calendar day.
func buildQuery(dq domainQuery, r domain.DateRange) (string, []any) {
	var conds []string
	var args []any

	if dq.fixedFilter != "" {
		conds = append(conds, dq.fixedFilter)
	}
	if r.From != "" {
		conds = append(conds, fmt.Sprintf("date(%s) >= ?", dq.dateColumn))
		args = append(args, r.From)
	}
	if r.To != "" {
		conds = append(conds, fmt.Sprintf("date(%s) <= ?", dq.dateColumn))
		args = append(args, r.To)
	}

	query := dq.body
	for i, cond := range conds {
		if i == 0 {
			query += " WHERE " + cond
		} else {
			query += " AND " + cond
		}
	}
	return query + dq.tail, args
}

// scanAggregateRows reads every row into a column-keyed map, normalizing
// driver byte slices to strings.
func scanAggregateRows(rows *sql.Rows) ([]store.AggregateRow, error) {
	columns, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("read report columns: %w", err)
	}

	out := make([]store.AggregateRow, 0)
	for rows.Next() {
		values := make([]any, len(columns))
		targets := make([]any, len(columns))
		for i := range values {
			targets[i] = &values[i]
		}
		if err := rows.Scan(targets...); err != nil {
			return nil, fmt.Errorf("scan report row: %w", err)
		}

		row := make(store.AggregateRow, len(columns))
		for i, column := range columns {
			v := values[i]
			if b, ok := v.([]byte); ok {
				v = string(b)
			}
			row[column] = v
		}
		out = append(out, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate report rows: %w", err)
	}
	return out, nil
}

const trendQuery = `
	SELECT
		COALESCE(SUM(CASE WHEN strftime('%Y-%m', quote_date) = strftime('%Y-%m', 'now') THEN total_amount END), 0) AS current_total,
		COALESCE(SUM(CASE WHEN strftime('%Y-%m', quote_date) = strftime('%Y-%m', 'now', '-1 month') THEN total_amount END), 0) AS previous_total
	FROM quotes
	WHERE status = 3`

func (s *reportStore) SalesTrendTotals(ctx context.Context) (*store.TrendTotals, error) {
	var totals store.TrendTotals
	err := s.db.QueryRowContext(ctx, trendQuery).Scan(&totals.CurrentTotal, &totals.PreviousTotal)
	if err != nil {
		return nil, fmt.Errorf("query sales trend totals: %w", err)
	}
	return &totals, nil
}

const countsQuery = `
	SELECT
		(SELECT COUNT(*) FROM clients) AS clients,
		(SELECT COUNT(*) FROM products) AS products,
		(SELECT COUNT(*) FROM quotes) AS quotes,
		(SELECT COUNT(*) FROM quotes WHERE status = 3) AS approved_quotes`

func (s *reportStore) EntityCounts(ctx context.Context) (*store.EntityCounts, error) {
	var counts store.EntityCounts
	err := s.db.QueryRowContext(ctx, countsQuery).
		Scan(&counts.Clients, &counts.Products, &counts.Quotes, &counts.ApprovedQuotes)
	if err != nil {
		return nil, fmt.Errorf("query entity counts: %w", err)
	}
	return &counts, nil
}
