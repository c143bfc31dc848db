package report

import (
	"strconv"
	"strings"
)

const currencySymbol = "$"

// FormatValue renders a raw cell value as display text, picking the rule
// from the column part of the virtual-field token. Matching is
// case-insensitive substring, first hit wins: date, currency, percent,
// count, then raw passthrough.
//
// Null conventions follow the export path: dates render empty, currency
// renders "$0.00", percentages "0%", counts "0".
func FormatValue(token string, raw any) string {
	column := token
	if _, c, ok := splitToken(token); ok {
		column = c
	}
	column = strings.ToLower(column)

	switch {
	case strings.Contains(column, "date"):
		return formatDate(raw)
	case containsAny(column, "amount", "price", "value"):
		return formatCurrency(raw)
	case containsAny(column, "percent", "rate"):
		return formatPercent(raw)
	case containsAny(column, "count", "quantity", "days"):
		return formatCount(raw)
	default:
		return asString(raw)
	}
}

func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

func formatDate(raw any) string {
	t, ok := parseDate(raw)
	if !ok {
		return ""
	}
	return t.Format("02/01/2006")
}

func formatCurrency(raw any) string {
	f, _ := asFloat(raw)
	return currencySymbol + groupThousands(strconv.FormatFloat(f, 'f', 2, 64))
}

func formatPercent(raw any) string {
	f, ok := asFloat(raw)
	if !ok {
		return "0%"
	}
	return strconv.FormatFloat(f, 'f', 2, 64) + "%"
}

func formatCount(raw any) string {
	n, ok := asInt(raw)
	if !ok {
		return "0"
	}
	return groupThousands(strconv.FormatInt(n, 10))
}

// groupThousands inserts comma separators into the integer part of a
// plain decimal string.
func groupThousands(s string) string {
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	intPart, fracPart := s, ""
	if i := strings.Index(s, "."); i >= 0 {
		intPart, fracPart = s[:i], s[i:]
	}

	var b strings.Builder
	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}

	out := b.String() + fracPart
	if neg {
		out = "-" + out
	}
	return out
}
