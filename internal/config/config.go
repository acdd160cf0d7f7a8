// internal/config/config.go
// Package config loads settings from defaults, an optional YAML file and
// CLAIMDASH_* environment variables, in increasing order of priority.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"

	"claim-dashboard/internal/predictor"
)

const EnvPrefix = "CLAIMDASH"

type Config struct {
	Port        string          `mapstructure:"port" yaml:"port"`
	Environment string          `mapstructure:"environment" yaml:"environment"`
	Predictor   PredictorConfig `mapstructure:"predictor" yaml:"predictor"`
	Form        FormConfig      `mapstructure:"form" yaml:"form"`
	CORS        CORSConfig      `mapstructure:"cors" yaml:"cors"`
}

type PredictorConfig struct {
	URL string `mapstructure:"url" yaml:"url"`
	// Zero leaves the request bounded only by the transport.
	Timeout time.Duration `mapstructure:"timeout" yaml:"timeout"`
}

type FormConfig struct {
	DiscardStale bool `mapstructure:"discard_stale" yaml:"discard_stale"`
}

type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins" yaml:"allowed_origins"`
}

// IsProduction reports whether production logging and gin release mode apply.
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// SetDefaults registers every key with its default so environment variables
// are picked up for all of them.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("port", "8080")
	v.SetDefault("environment", "development")
	v.SetDefault("predictor.url", predictor.DefaultURL)
	v.SetDefault("predictor.timeout", time.Duration(0))
	v.SetDefault("form.discard_stale", false)
	v.SetDefault("cors.allowed_origins", []string{"http://localhost:3000"})
}

// New returns a viper instance wired for this application. When cfgFile is
// empty, claimdash.yaml is looked up in the working directory and in
// $HOME/.claimdash; a missing file is not an error.
func New(cfgFile string) (*viper.Viper, error) {
	v := viper.New()
	SetDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName("claimdash")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.claimdash")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	return v, nil
}

// Load builds the configuration from v.
func Load(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	if cfg.Predictor.Timeout < 0 {
		return nil, fmt.Errorf("predictor.timeout must not be negative, got %s", cfg.Predictor.Timeout)
	}
	return &cfg, nil
}

// FromFile is New followed by Load.
func FromFile(cfgFile string) (*Config, error) {
	v, err := New(cfgFile)
	if err != nil {
		return nil, err
	}
	return Load(v)
}
