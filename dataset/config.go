// Package dataset holds session configuration and the one-shot loaders.
package dataset

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/joeshaw/envdecode"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"
)

// DefaultConfigPath is consulted when LoadConfig is given no path.
const DefaultConfigPath = "config/wellog.yaml"

// Config selects where the session inputs come from. Precedence, low
// to high: built-in defaults, YAML file, .env file, WELLOG_* env vars.
type Config struct {
	// StandardPath is the depositional-environment color standard CSV.
	StandardPath string `yaml:"standard_path" env:"WELLOG_STANDARD_PATH"`
	// IntervalsPath is the per-well depth-interval CSV.
	IntervalsPath string `yaml:"intervals_path" env:"WELLOG_INTERVALS_PATH"`
	// ColorTablesPath is the color-tables JSON asset; empty selects the
	// built-in catalog.
	ColorTablesPath string `yaml:"color_tables_path" env:"WELLOG_COLOR_TABLES_PATH"`
	// PostgresDSN enables LoadPostgres as the source of the two tables.
	PostgresDSN string `yaml:"postgres_dsn" env:"WELLOG_POSTGRES_DSN"`
	// SpacerWidth overrides the viewer's inter-track gap; 0 keeps the
	// synchronizer default.
	SpacerWidth int `yaml:"spacer_width" env:"WELLOG_SPACER_WIDTH"`
	// LogLevel is a zerolog level name ("debug", "info", ...).
	LogLevel string `yaml:"log_level" env:"WELLOG_LOG_LEVEL"`
}

// DefaultConfig returns the historical asset locations.
func DefaultConfig() Config {
	return Config{
		StandardPath:  "data/DEPENV_colour_standard.csv",
		IntervalsPath: "data/lithstr_and_depenv_cleaned.csv",
		LogLevel:      "info",
	}
}

// LoadConfig resolves the session configuration. An empty path reads
// DefaultConfigPath and tolerates its absence; an explicit path must
// exist. A .env file in the working directory is overlaid when
// present, then WELLOG_* env vars take final precedence.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	explicit := path != ""
	if !explicit {
		path = DefaultConfigPath
	}
	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("dataset: parse config %s: %w", path, err)
		}
	case errors.Is(err, os.ErrNotExist) && !explicit:
		// No config file is fine; defaults + env carry the session.
	default:
		return Config{}, fmt.Errorf("dataset: read config %s: %w", path, err)
	}

	// .env is optional; ignore its absence.
	_ = godotenv.Load()

	// No WELLOG_* vars set at all is the normal case, not an error.
	if err := envdecode.Decode(&cfg); err != nil && !errors.Is(err, envdecode.ErrNoTargetFieldsAreSet) {
		return Config{}, fmt.Errorf("dataset: env overrides: %w", err)
	}

	return cfg, nil
}

// Logger builds the session logger at the configured level. Unknown
// level names fall back to info.
func (c Config) Logger(w io.Writer) zerolog.Logger {
	level, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}

	return zerolog.New(w).Level(level).With().Timestamp().Logger()
}
