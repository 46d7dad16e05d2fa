// Package config holds the vectordb runtime configuration and its viper
// wiring. Precedence (highest to lowest): CLI flags bound by the commands,
// VECTORDB_-prefixed environment variables, config.toml values, defaults.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config is the full runtime configuration.
type Config struct {
	API    APIConfig    `mapstructure:"api"`
	Search SearchConfig `mapstructure:"search"`
	Ingest IngestConfig `mapstructure:"ingest"`
}

// APIConfig holds HTTP server settings.
type APIConfig struct {
	// Listen is the address the API server binds to (e.g. ":8080").
	Listen string `mapstructure:"listen"`
}

// SearchConfig holds similarity search settings.
type SearchConfig struct {
	// DefaultTopK is the result limit applied when a search request
	// omits top_k.
	DefaultTopK int `mapstructure:"default_top_k"`
}

// IngestConfig holds worker pool settings for batch chunk ingestion.
type IngestConfig struct {
	Workers   uint `mapstructure:"workers"`
	QueueSize uint `mapstructure:"queue_size"`
}

const (
	defaultAPIListen   = ":8080"
	defaultTopK        = 10
	defaultWorkers     = 3
	defaultQueueSize   = 256
	envPrefix          = "VECTORDB"
	configFileBasename = "config"
)

// NewDefaultConfig returns a Config with sane defaults for all fields.
// This is the single source of truth for default values.
func NewDefaultConfig() *Config {
	return &Config{
		API: APIConfig{
			Listen: defaultAPIListen,
		},
		Search: SearchConfig{
			DefaultTopK: defaultTopK,
		},
		Ingest: IngestConfig{
			Workers:   defaultWorkers,
			QueueSize: defaultQueueSize,
		},
	}
}

// InitViper creates and returns a configured *viper.Viper: defaults from
// NewDefaultConfig(), an optional config.toml in configDir (or the working
// directory when empty), and VECTORDB_-prefixed environment variables.
func InitViper(configDir string) (*viper.Viper, error) {
	v := viper.New()

	setViperDefaults(v)

	v.SetConfigName(configFileBasename)
	v.SetConfigType("toml")
	if configDir != "" {
		v.AddConfigPath(configDir)
	} else {
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		// A missing config file is fine, defaults will apply.
		if !errors.As(err, &viper.ConfigFileNotFoundError{}) {
			return nil, fmt.Errorf("reading config: %w", err)
		}
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	return v, nil
}

// Load unmarshals the viper state into a Config.
func Load(v *viper.Viper) (*Config, error) {
	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}
	return cfg, nil
}

// setViperDefaults registers defaults from NewDefaultConfig() using
// dotted-key notation, keeping NewDefaultConfig as the single source of truth.
func setViperDefaults(v *viper.Viper) {
	d := NewDefaultConfig()

	v.SetDefault("api.listen", d.API.Listen)
	v.SetDefault("search.default_top_k", d.Search.DefaultTopK)
	v.SetDefault("ingest.workers", d.Ingest.Workers)
	v.SetDefault("ingest.queue_size", d.Ingest.QueueSize)
}
