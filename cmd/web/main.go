package main

import (
	"fmt"
	"os"
	"os/user"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/crm-tools/quote-atlas/pkg/server"
	"github.com/crm-tools/quote-atlas/pkg/services/config"
	"github.com/crm-tools/quote-atlas/pkg/services/dashboard"
	"github.com/crm-tools/quote-atlas/pkg/services/report"
	"github.com/crm-tools/quote-atlas/pkg/store/sqlite"
	sqlitereport "github.com/crm-tools/quote-atlas/pkg/store/sqlite/report"
)

var (
	cfgPath     string
	profileName string
)

func main() {
	var rootCmd = &cobra.Command{
		Use:   "web",
		Short: "Start the web server for Quote Atlas",
		RunE:  runServer,
	}

	usr, _ := user.Current()
	defaultPath := fmt.Sprintf("%s/.quoteatlascfg", usr.HomeDir)

	rootCmd.Flags().StringVarP(&cfgPath, "config", "c", defaultPath,
		"Path to the .quoteatlascfg file (default is $HOME/.quoteatlascfg)")
	rootCmd.Flags().StringVarP(&profileName, "profile", "p", "default",
		"Store profile to serve")

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func runServer(cmd *cobra.Command, _ []string) error {
	if err := godotenv.Load(); err != nil {
		fmt.Printf("Error loading .env file: %v\n", err)
	}

	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()
	ctx := logger.WithContext(cmd.Context())

	v := viper.New()
	v.SetConfigName("server")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.SetDefault("addr", "127.0.0.1:8080")
	v.SetDefault("shutdown_timeout", "10s")
	v.SetEnvPrefix("QUOTE_ATLAS")
	v.AutomaticEnv()
	if err := v.ReadInConfig(); err != nil {
		logger.Info().Msg("no server.yaml found, using defaults")
	}

	registry, err := config.NewRegistry(cfgPath)
	if err != nil {
		return fmt.Errorf("failed to create config registry: %w", err)
	}

	profile, err := registry.GetProfile(ctx, profileName)
	if err != nil {
		return fmt.Errorf("failed to load profile %q: %w", profileName, err)
	}

	db, err := sqlite.NewDB(sqlite.Settings{DbPath: profile.DbPath})
	if err != nil {
		return fmt.Errorf("failed to open CRM database: %w", err)
	}
	defer db.Close()

	reportStore, err := sqlitereport.NewStore(db)
	if err != nil {
		return fmt.Errorf("failed to create report store: %w", err)
	}

	logger.Info().Msgf("Configuration found at `%s` successfully loaded.", cfgPath)
	logger.Info().Msgf("Serving profile `%s` (store: %s)", profile.Name, profile.DbPath)

	api := server.NewWebAPI(logger, server.Config{
		Addr:            v.GetString("addr"),
		ShutdownTimeout: v.GetDuration("shutdown_timeout"),
		Dependencies: server.Dependencies{
			Reports:   report.NewAssembler(reportStore, time.Now),
			Dashboard: dashboard.NewService(reportStore),
		},
	})

	return api.Start()
}
