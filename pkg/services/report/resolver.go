package report

import "github.com/crm-tools/quote-atlas/pkg/models/domain"

// ResolveFields maps requested virtual-field tokens to catalog fields,
// preserving request order. Tokens not present in the domain's catalog
// are dropped without error; a token requested twice resolves twice and
// yields a duplicated column. Rejecting an empty selection is the
// assembler's job, not the resolver's.
func ResolveFields(d domain.Domain, tokens []string) []domain.Field {
	tables := catalogIndex[d]
	fields := make([]domain.Field, 0, len(tokens))
	for _, token := range tokens {
		table, column, ok := splitToken(token)
		if !ok {
			continue
		}
		entry, ok := tables[table][column]
		if !ok {
			continue
		}
		fields = append(fields, domain.Field{
			Token:       token,
			DataKey:     entry.dataKey,
			DisplayName: entry.displayName,
		})
	}
	return fields
}
