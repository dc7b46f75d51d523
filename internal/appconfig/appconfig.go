// internal/appconfig/appconfig.go
// Package appconfig manages loading and interpreting application configuration.
package appconfig

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/creasty/defaults"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	// DefaultConfigPath is the default path to the application's configuration file.
	DefaultConfigPath = "config/config.json"
	// DefaultEnvFile is the dotenv file read at startup when present.
	DefaultEnvFile = ".env"
	// EnvPrefix prefixes every environment variable that overrides a setting,
	// e.g. MLMON_LOGLEVEL.
	EnvPrefix = "MLMON"
)

// Config represents the top-level application configuration.
type Config struct {
	Debug            bool   `json:"debug"`
	LogFile          string `json:"logFile,omitempty" default:"mlmon.log"`
	LogLevel         string `json:"logLevel" default:"info" validate:"oneof=trace debug info warn error"`
	LogFormat        string `json:"logFormat" default:"console" validate:"oneof=console json"`
	Pretty           bool   `json:"pretty"`
	DefaultBinMethod string `json:"defaultBinMethod" default:"squareRoot" validate:"oneof=squareRoot sturges scott freedmanDiaconis fixedNumber"`
	DefaultBinNumber int    `json:"defaultBinNumber" default:"10" validate:"gte=2,lte=10000"`
	OutputDir        string `json:"outputDir,omitempty"`
	ConfigPath       string `json:"-" mapstructure:"-"`
}

var validate = validator.New()

// Defaults returns the configuration used when nothing else is set.
func Defaults() Config {
	var cfg Config
	defaults.MustSet(&cfg)
	return cfg
}

// Settings lists every configurable key with its value in c, keyed the way
// config files and flags spell them.
func (c Config) Settings() map[string]any {
	return map[string]any{
		"debug":            c.Debug,
		"logFile":          c.LogFile,
		"logLevel":         c.LogLevel,
		"logFormat":        c.LogFormat,
		"pretty":           c.Pretty,
		"defaultBinMethod": c.DefaultBinMethod,
		"defaultBinNumber": c.DefaultBinNumber,
		"outputDir":        c.OutputDir,
	}
}

// Validate reports settings outside their allowed values.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}

// LogFilePath returns the path to the application log file, applying a default if not set.
func (c Config) LogFilePath() string {
	if path := c.LogFile; strings.TrimSpace(path) != "" {
		return path
	}
	return "mlmon.log"
}

// EffectiveLogLevel is debug when Debug is set and LogLevel otherwise.
func (c Config) EffectiveLogLevel() string {
	if c.Debug {
		return "debug"
	}
	return c.LogLevel
}

// LoadEnv reads dotenv files into the process environment. Missing files are
// skipped; variables already set are kept.
func LoadEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{DefaultEnvFile}
	}
	for _, file := range files {
		if _, err := os.Stat(file); errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err := godotenv.Load(file); err != nil {
			return fmt.Errorf("could not read env file %q: %w", file, err)
		}
	}
	return nil
}

// Prepare registers defaults and MLMON_* environment overrides on v and
// points it at path when one is given.
func Prepare(v *viper.Viper, path string) {
	for key, value := range Defaults().Settings() {
		v.SetDefault(key, value)
	}
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()
	if path != "" {
		v.SetConfigFile(path)
	}
}

// Read loads the config file v points at. A missing file is not an error:
// defaults, environment and flags still apply.
func Read(v *viper.Viper) error {
	err := v.ReadInConfig()
	if err == nil {
		return nil
	}
	var notFound viper.ConfigFileNotFoundError
	if errors.As(err, &notFound) || errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return fmt.Errorf("failed to load config: %w", err)
}

// FromViper materializes the merged settings of v (flags > environment >
// file > defaults) and validates them.
func FromViper(v *viper.Viper) (Config, error) {
	cfg := Defaults()
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if file := v.ConfigFileUsed(); file != "" {
		if _, err := os.Stat(file); err == nil {
			cfg.ConfigPath = file
		}
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Load reads the configuration at path the same way the CLI does, without
// flags. An empty path uses DefaultConfigPath.
func Load(path string) (Config, error) {
	if path == "" {
		path = DefaultConfigPath
	}
	v := viper.New()
	Prepare(v, path)
	if err := Read(v); err != nil {
		return Config{}, err
	}
	return FromViper(v)
}
