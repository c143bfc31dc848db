package commands

import (
	"context"
	"fmt"

	"github.com/crm-tools/quote-atlas/pkg/services/config"
	"github.com/crm-tools/quote-atlas/pkg/services/report"
	"github.com/crm-tools/quote-atlas/pkg/store/sqlite"
	sqlitereport "github.com/crm-tools/quote-atlas/pkg/store/sqlite/report"
)

// openReportService wires a report service onto the store profile named
// in the configuration file. The returned func closes the database.
func openReportService(ctx context.Context, profilePath, profileName string) (report.Service, func(), error) {
	registry, err := config.NewRegistry(profilePath)
	if err != nil {
		return nil, nil, fmt.Errorf("load configuration %s: %w", profilePath, err)
	}

	profile, err := registry.GetProfile(ctx, profileName)
	if err != nil {
		return nil, nil, err
	}

	db, err := sqlite.NewDB(sqlite.Settings{DbPath: profile.DbPath})
	if err != nil {
		return nil, nil, fmt.Errorf("open store for profile %s: %w", profileName, err)
	}

	st, err := sqlitereport.NewStore(db)
	if err != nil {
		db.Close()
		return nil, nil, err
	}

	return report.NewAssembler(st, nil), func() { db.Close() }, nil
}
