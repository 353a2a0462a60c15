package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

// EnvPrefix prefixes every environment override.
const EnvPrefix = "SKIRMISH_"

// MatchServer holds all configuration for the match simulator.
type MatchServer struct {
	LogLevel string `yaml:"log_level" env:"LOG_LEVEL"`

	// Scheduling
	Workers  int   `yaml:"workers" env:"WORKERS"`
	Runs     int   `yaml:"runs" env:"RUNS"`
	MaxTicks int64 `yaml:"max_ticks" env:"MAX_TICKS"` // used when a scenario sets none

	Journal  JournalConfig  `yaml:"journal" envPrefix:"JOURNAL_"`
	Database DatabaseConfig `yaml:"database" envPrefix:"DATABASE_"`
}

// JournalConfig controls the per-match event journal.
type JournalConfig struct {
	Enabled bool   `yaml:"enabled" env:"ENABLED"`
	Dir     string `yaml:"dir" env:"DIR"`
}

// DatabaseConfig holds PostgreSQL connection parameters.
type DatabaseConfig struct {
	Enabled  bool   `yaml:"enabled" env:"ENABLED"`
	Host     string `yaml:"host" env:"HOST"`
	Port     int    `yaml:"port" env:"PORT"`
	User     string `yaml:"user" env:"USER"`
	Password string `yaml:"password" env:"PASSWORD"`
	DBName   string `yaml:"dbname" env:"NAME"`
	SSLMode  string `yaml:"sslmode" env:"SSLMODE"`
}

// DSN returns the PostgreSQL connection string.
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.DBName, d.SSLMode,
	)
}

// DefaultMatchServer returns MatchServer config with sensible defaults.
func DefaultMatchServer() MatchServer {
	return MatchServer{
		LogLevel: "info",
		Workers:  4,
		Runs:     1,
		MaxTicks: 600,
		Journal: JournalConfig{
			Enabled: true,
			Dir:     "journal",
		},
		Database: DatabaseConfig{
			Host:     "127.0.0.1",
			Port:     5432,
			User:     "skirmish",
			Password: "skirmish",
			DBName:   "skirmish",
			SSLMode:  "disable",
		},
	}
}

// DefaultPath is the config file read when SKIRMISH_CONFIG is unset.
const DefaultPath = "config/matchsim.yaml"

// Path returns the config file named by SKIRMISH_CONFIG, or DefaultPath.
func Path() (string, error) {
	var loc struct {
		File string `env:"CONFIG" envDefault:"config/matchsim.yaml"`
	}
	if err := env.ParseWithOptions(&loc, env.Options{Prefix: EnvPrefix}); err != nil {
		return "", fmt.Errorf("parsing env: %w", err)
	}
	return loc.File, nil
}

// LoadMatchServer loads config from a YAML file and then applies
// SKIRMISH_* environment overrides. If the file doesn't exist, the
// overrides are applied to defaults.
func LoadMatchServer(path string) (MatchServer, error) {
	cfg := DefaultMatchServer()

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parsing config %s: %w", path, err)
		}
	case os.IsNotExist(err):
	default:
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	}

	if err := env.ParseWithOptions(&cfg, env.Options{Prefix: EnvPrefix}); err != nil {
		return cfg, fmt.Errorf("parsing env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("validating config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate rejects values the simulator cannot run with.
func (c MatchServer) Validate() error {
	var errs []error
	if c.Workers < 1 {
		errs = append(errs, fmt.Errorf("workers must be positive, got %d", c.Workers))
	}
	if c.Runs < 1 {
		errs = append(errs, fmt.Errorf("runs must be positive, got %d", c.Runs))
	}
	if c.MaxTicks < 1 {
		errs = append(errs, fmt.Errorf("max_ticks must be positive, got %d", c.MaxTicks))
	}
	if c.Journal.Enabled && c.Journal.Dir == "" {
		errs = append(errs, errors.New("journal dir is empty"))
	}
	if _, err := c.SlogLevel(); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// SlogLevel parses LogLevel ("debug", "info", "warn", "error").
func (c MatchServer) SlogLevel() (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo, fmt.Errorf("log level: %w", err)
	}
	return lvl, nil
}
