package report

import (
	"fmt"
	"regexp"

	"github.com/crm-tools/quote-atlas/pkg/models/domain"
)

// datePattern is a format-level check only; out-of-range months or days
// are accepted here and left to the store's date column semantics.
var datePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// ValidateDateRange checks the optional report bounds. It returns an
// empty slice when the range is usable; callers must not touch the store
// while the slice is non-empty. Ordering is lexicographic, which matches
// chronological order for zero-padded ISO dates.
func ValidateDateRange(r domain.DateRange) []string {
	var msgs []string
	if r.From != "" && !datePattern.MatchString(r.From) {
		msgs = append(msgs, fmt.Sprintf("fecha inicial inválida: %q (se espera YYYY-MM-DD)", r.From))
	}
	if r.To != "" && !datePattern.MatchString(r.To) {
		msgs = append(msgs, fmt.Sprintf("fecha final inválida: %q (se espera YYYY-MM-DD)", r.To))
	}
	if len(msgs) == 0 && r.From != "" && r.To != "" && r.From > r.To {
		msgs = append(msgs, "la fecha inicial no puede ser posterior a la fecha final")
	}
	return msgs
}
