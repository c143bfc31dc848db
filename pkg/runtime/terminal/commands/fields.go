package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/crm-tools/quote-atlas/pkg/models/domain"
	"github.com/crm-tools/quote-atlas/pkg/services/report"
)

type FieldsCmd struct {
	domainName string
}

func NewFieldsCmd() *cobra.Command {
	fc := &FieldsCmd{}
	cmd := &cobra.Command{
		Use:   "fields",
		Short: "List the selectable virtual fields of a report domain",
		RunE:  fc.run,
	}

	cmd.Flags().StringVar(&fc.domainName, "domain", "", "Report domain (quotes, products, clients, sales)")

	_ = cmd.MarkFlagRequired("domain")

	return cmd
}

func (fc *FieldsCmd) run(cmd *cobra.Command, args []string) error {
	d, ok := domain.ParseDomain(fc.domainName)
	if !ok {
		return fmt.Errorf("unsupported report domain %q. Supported domains: %s",
			fc.domainName, joinDomains())
	}

	fields := report.CatalogFields(d)
	fmt.Fprintf(cmd.OutOrStdout(), "Fields for %s:\n", d)
	for _, f := range fields {
		fmt.Fprintf(cmd.OutOrStdout(), "  %-28s %s\n", f.Token, f.DisplayName)
	}
	return nil
}
