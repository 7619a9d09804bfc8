package cmd

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/urlaubsplaner/urlaubsplaner/internal"
	"github.com/urlaubsplaner/urlaubsplaner/internal/auth"
	"github.com/urlaubsplaner/urlaubsplaner/internal/importer"
	"github.com/urlaubsplaner/urlaubsplaner/internal/overview"
	"github.com/urlaubsplaner/urlaubsplaner/internal/storage"
	"github.com/urlaubsplaner/urlaubsplaner/internal/team"
	"github.com/urlaubsplaner/urlaubsplaner/internal/user"
	"github.com/urlaubsplaner/urlaubsplaner/internal/vacation"
	"github.com/urlaubsplaner/urlaubsplaner/pkg/logger"
)

var rootCmd = &cobra.Command{
	Use:   "urlaubsplaner",
	Short: "Urlaubsplaner",
	Long:  `For managing employees, teams and vacation requests with an annual overview.`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func loadConfig(path string) (*internal.Config, error) {
	// In containerized or scripted deployments the config comes straight
	// from the environment.
	if os.Getenv("APP_ENV") == "production" || os.Getenv("CONFIG_FROM_ENV") == "true" {
		cfg := internal.LoadConfigFromEnv()
		if err := cfg.Validate(); err != nil {
			return nil, fmt.Errorf("error validating config from environment: %w", err)
		}
		return cfg, nil
	}

	v := viper.New()
	v.AddConfigPath(path)
	v.SetConfigName("config")
	v.SetConfigType("yml")
	v.SetEnvPrefix("ENV")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			// No config file is fine for a first run; fall back to the
			// environment defaults.
			cfg := internal.LoadConfigFromEnv()
			if err := cfg.Validate(); err != nil {
				return nil, fmt.Errorf("error validating default config: %w", err)
			}
			return cfg, nil
		}
		return nil, fmt.Errorf("error reading config: %w", err)
	}

	cfg := internal.LoadConfigFromEnv()
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("error validating config: %w", err)
	}

	return cfg, nil
}

type Dependencies struct {
	Config    *internal.Config
	Store     *storage.Store
	Users     *user.Service
	Teams     *team.Service
	Vacations *vacation.Service
	Auth      *auth.Service
	Importer  *importer.Importer
	Overview  *overview.Builder
	Logger    *slog.Logger
}

func initializeDependencies() (*Dependencies, error) {
	cfg, err := loadConfig(".")
	if err != nil {
		return nil, err
	}

	logger.Init(cfg.Logging.Level, cfg.Logging.Format)
	log := logger.LoggerWrapper()

	store, err := storage.Open(cfg.App.DataDir, log)
	if err != nil {
		return nil, fmt.Errorf("open record store: %w", err)
	}

	users := user.NewService(store)
	teams := team.NewService(store)
	vacations := vacation.NewService(store)

	tokens := auth.NewSessionTokenGenerator(cfg.Security.SessionSecret, cfg.Security.SessionDuration)

	return &Dependencies{
		Config:    cfg,
		Store:     store,
		Users:     users,
		Teams:     teams,
		Vacations: vacations,
		Auth:      auth.NewService(store, tokens, cfg.Security.BCryptCost),
		Importer:  importer.New(store),
		Overview:  overview.NewBuilder(teams, users, vacations),
		Logger:    log,
	}, nil
}

// holidaySet resolves the holiday source for the overview: an explicit
// --holidays flag wins over the configured region.
func holidaySet(cfg *internal.Config, flag string, year int) overview.HolidaySet {
	region := cfg.Overview.HolidayRegion
	if flag != "" {
		region = flag
	}
	switch region {
	case "nrw":
		return overview.GermanHolidaysNRW(year)
	default:
		return overview.HolidaySet{}
	}
}

func init() {
	rootCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(overviewCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(usersCmd)
	rootCmd.AddCommand(teamsCmd)
	rootCmd.AddCommand(vacationsCmd)
}
