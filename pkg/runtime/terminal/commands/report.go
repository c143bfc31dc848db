package commands

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/crm-tools/quote-atlas/pkg/models/domain"
	"github.com/crm-tools/quote-atlas/pkg/services/export"
)

// ResultHandler renders an assembled report for the terminal user.
type ResultHandler interface {
	Handle(result *domain.ReportResult) error
}

type ReportCmd struct {
	profilePath string
	profileName string
	domainName  string
	fields      []string
	from        string
	to          string
	limit       int
	output      string
	reporter    ResultHandler
}

func NewReportCmd(reporter ResultHandler) *cobra.Command {
	rc := &ReportCmd{reporter: reporter}
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Run a report and print it as a table or write it to CSV",
		RunE:  rc.run,
	}

	cmd.Flags().StringVar(&rc.profilePath, "profile", "", "Path to the quote-atlas configuration file")
	cmd.Flags().StringVar(&rc.profileName, "profile-name", "default", "Profile name inside the configuration file")
	cmd.Flags().StringVar(&rc.domainName, "domain", "", "Report domain (quotes, products, clients, sales)")
	cmd.Flags().StringSliceVar(&rc.fields, "fields", nil, "Virtual fields to include, in column order (table.column)")
	cmd.Flags().StringVar(&rc.from, "from", "", "Lower date bound (YYYY-MM-DD)")
	cmd.Flags().StringVar(&rc.to, "to", "", "Upper date bound (YYYY-MM-DD)")
	cmd.Flags().IntVar(&rc.limit, "limit", 0, "Maximum rows to export (0 = all)")
	cmd.Flags().StringVar(&rc.output, "output", "", "Write the report to this CSV file instead of the terminal")

	_ = cmd.MarkFlagRequired("profile")
	_ = cmd.MarkFlagRequired("domain")
	_ = cmd.MarkFlagRequired("fields")

	return cmd
}

func (rc *ReportCmd) run(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(cmd.Context(), 60*time.Second)
	defer cancel()

	d, ok := domain.ParseDomain(rc.domainName)
	if !ok {
		return fmt.Errorf("unsupported report domain %q. Supported domains: %s",
			rc.domainName, joinDomains())
	}

	svc, closeStore, err := openReportService(ctx, rc.profilePath, rc.profileName)
	if err != nil {
		return err
	}
	defer closeStore()

	result, err := svc.Assemble(ctx, domain.ReportRequest{
		Domain: d,
		Fields: rc.fields,
		Range:  domain.DateRange{From: rc.from, To: rc.to},
		Mode:   domain.ModeExport,
		Limit:  rc.limit,
	})
	if err != nil {
		return fmt.Errorf("failed to assemble report: %w", err)
	}

	if rc.output == "" {
		return rc.reporter.Handle(result)
	}

	f, err := os.Create(rc.output)
	if err != nil {
		return fmt.Errorf("create output file: %w", err)
	}
	defer f.Close()

	if err := export.WriteCSV(f, result, export.Options{BOM: true}); err != nil {
		return fmt.Errorf("write csv report: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %d rows to %s\n", result.TotalRecords, rc.output)
	return nil
}

func joinDomains() string {
	names := make([]string, 0, 4)
	for _, d := range domain.Domains() {
		names = append(names, string(d))
	}
	return strings.Join(names, ", ")
}
