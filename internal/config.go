package internal

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"
)

type Config struct {
	App      AppConfig      `mapstructure:"app"`
	Security SecurityConfig `mapstructure:"security"`
	Logging  LoggingConfig  `mapstructure:"logging"`
	Overview OverviewConfig `mapstructure:"overview"`
}

type AppConfig struct {
	// DataDir holds the three JSON collection files.
	DataDir string `mapstructure:"data_dir"`
}

type SecurityConfig struct {
	SessionSecret   string        `mapstructure:"session_secret"`
	SessionDuration time.Duration `mapstructure:"session_duration"`
	BCryptCost      int           `mapstructure:"bcrypt_cost"`
}

type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

type OverviewConfig struct {
	// HolidayRegion selects the computed public-holiday set for the annual
	// grid. Empty means no holidays are marked.
	HolidayRegion string `mapstructure:"holiday_region"`
}

// LoadConfigFromEnv builds a config purely from environment variables,
// used when no config file is present.
func LoadConfigFromEnv() *Config {
	return &Config{
		App: AppConfig{
			DataDir: getEnv("APP_DATA_DIR", "data"),
		},
		Security: SecurityConfig{
			SessionSecret:   getEnv("SECURITY_SESSION_SECRET", "urlaubsplaner-dev-session-secret"),
			SessionDuration: getEnvAsDuration("SECURITY_SESSION_DURATION", 8*time.Hour),
			BCryptCost:      getEnvAsInt("SECURITY_BCRYPT_COST", bcrypt.DefaultCost),
		},
		Logging: LoggingConfig{
			Level:  getEnv("LOGGING_LEVEL", "info"),
			Format: getEnv("LOGGING_FORMAT", "text"),
		},
		Overview: OverviewConfig{
			HolidayRegion: getEnv("OVERVIEW_HOLIDAY_REGION", ""),
		},
	}
}

// ----------------- HELPERS -----------------

func getEnv(key, defaultVal string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultVal
}

func getEnvAsInt(key string, defaultVal int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultVal
}

func getEnvAsDuration(key string, defaultVal time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultVal
}

// ----------------- VALIDATION -----------------

func (c *Config) Validate() error {
	var errs []string

	if err := c.App.Validate(); err != nil {
		errs = append(errs, fmt.Sprintf("app config: %v", err))
	}

	if err := c.Security.Validate(); err != nil {
		errs = append(errs, fmt.Sprintf("security config: %v", err))
	}

	if err := c.Logging.Validate(); err != nil {
		errs = append(errs, fmt.Sprintf("logging config: %v", err))
	}

	if err := c.Overview.Validate(); err != nil {
		errs = append(errs, fmt.Sprintf("overview config: %v", err))
	}

	if len(errs) > 0 {
		return errors.New(strings.Join(errs, "; "))
	}

	return nil
}

func (c *AppConfig) Validate() error {
	if c.DataDir == "" {
		return errors.New("data_dir is required")
	}
	return nil
}

func (c *SecurityConfig) Validate() error {
	if c.SessionSecret == "" {
		return errors.New("session_secret is required")
	}
	if c.SessionDuration < time.Minute {
		return errors.New("session_duration must be at least 1m")
	}
	if c.BCryptCost < bcrypt.MinCost || c.BCryptCost > 15 {
		return fmt.Errorf("bcrypt_cost must be between %d and 15", bcrypt.MinCost)
	}
	return nil
}

func (c *LoggingConfig) Validate() error {
	switch c.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log level %q", c.Level)
	}
	switch c.Format {
	case "json", "text":
	default:
		return fmt.Errorf("invalid log format %q", c.Format)
	}
	return nil
}

func (c *OverviewConfig) Validate() error {
	switch c.HolidayRegion {
	case "", "nrw":
	default:
		return fmt.Errorf("unknown holiday_region %q", c.HolidayRegion)
	}
	return nil
}
