// Package config loads settings for the schemaorg command from an optional
// YAML file, a .env file and SCHEMAORG_* environment variables, in
// increasing order of precedence.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/brochurekit/schemaorg-go"
	"github.com/brochurekit/schemaorg-go/internal/logging"
)

// EnvPrefix prefixes every environment override, e.g. SCHEMAORG_LOG_LEVEL.
const EnvPrefix = "SCHEMAORG"

// DefaultEnvFile is read when Options.EnvFile is empty.
const DefaultEnvFile = ".env"

// Config is the resolved command configuration.
type Config struct {
	Log    LogConfig    `mapstructure:"log"`
	Render RenderConfig `mapstructure:"render"`
}

// LogConfig selects the logger level and output format.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// RenderConfig holds the renderer defaults applied to every record.
type RenderConfig struct {
	// Strict enables unknown field rejection and strict hours.
	Strict         bool   `mapstructure:"strict"`
	DefaultCountry string `mapstructure:"default_country"`
}

// Options locates the inputs to Load.
type Options struct {
	// ConfigFile is an explicit config path. When empty, schemaorg.yaml is
	// looked up in the working directory and its absence is not an error.
	ConfigFile string
	// EnvFile is a dotenv file whose variables are exported before the
	// environment is read. A missing file is ignored.
	EnvFile string
}

// Load resolves the configuration described by opts.
func Load(opts Options) (*Config, error) {
	if err := loadEnvFile(opts.EnvFile); err != nil {
		return nil, err
	}

	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if opts.ConfigFile != "" {
		v.SetConfigFile(opts.ConfigFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", opts.ConfigFile, err)
		}
	} else {
		v.SetConfigName("schemaorg")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("config: read schemaorg.yaml: %w", err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("config: unmarshal: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", logging.FormatConsole)
	v.SetDefault("render.strict", false)
	v.SetDefault("render.default_country", schemaorg.DefaultCountry)
}

func loadEnvFile(path string) error {
	if path == "" {
		path = DefaultEnvFile
	}
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("config: load %s: %w", path, err)
	}
	return nil
}

// Validate reports every invalid setting.
func (c *Config) Validate() error {
	var problems []string
	switch strings.ToLower(c.Log.Level) {
	case "debug", "info", "warn", "warning", "error":
	default:
		problems = append(problems, fmt.Sprintf("log.level: unsupported value %q", c.Log.Level))
	}
	switch strings.ToLower(c.Log.Format) {
	case logging.FormatConsole, logging.FormatJSON:
	default:
		problems = append(problems, fmt.Sprintf("log.format: unsupported value %q", c.Log.Format))
	}
	if strings.TrimSpace(c.Render.DefaultCountry) == "" {
		problems = append(problems, "render.default_country: required")
	}
	if len(problems) > 0 {
		return fmt.Errorf("config: invalid configuration: %s", strings.Join(problems, "; "))
	}
	return nil
}

// RenderOptions returns the renderer options implied by c.
func (c *Config) RenderOptions() []schemaorg.RenderOption {
	opts := []schemaorg.RenderOption{schemaorg.WithDefaultCountry(c.Render.DefaultCountry)}
	if c.Render.Strict {
		opts = append(opts, schemaorg.WithValidation(
			schemaorg.WithStrictHours(),
			schemaorg.WithRejectUnknownFields(),
		))
	}
	return opts
}
