package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment variable, e.g.
// SIGNMASTER_LOG_LEVEL for log.level.
const EnvPrefix = "SIGNMASTER"

// Options selects where configuration is read from.
type Options struct {
	// ConfigFile is an explicit config file. When empty, config.{yaml,toml,json}
	// is searched for in the XDG config directory and a missing file is fine.
	ConfigFile string

	// EnvFile is a dotenv file loaded into the process environment before
	// env vars are read. A missing file is ignored. Default: ".env".
	EnvFile string
}

// Load configuration from defaults, an optional config file and environment
// variables. Environment variables take precedence over the file.
func Load(opts Options) (*Config, error) {
	envFile := opts.EnvFile
	if envFile == "" {
		envFile = ".env"
	}
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load %s: %w", envFile, err)
	}

	v := viper.New()
	setDefaults(v, DefaultConfig())

	if opts.ConfigFile != "" {
		v.SetConfigFile(opts.ConfigFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	} else {
		v.SetConfigName("config")
		if dir, err := configDir(); err == nil {
			v.AddConfigPath(dir)
		}
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("read config file: %w", err)
			}
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal configuration: %w", err)
	}

	cfg.DefaultDomain = strings.ToLower(cfg.DefaultDomain)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the struct tags.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}
	return nil
}

// setDefaults registers every key so AutomaticEnv can see it on Unmarshal.
func setDefaults(v *viper.Viper, d Config) {
	v.SetDefault("db_path", d.DBPath)
	v.SetDefault("default_domain", d.DefaultDomain)
	v.SetDefault("catalog_dir", d.CatalogDir)

	v.SetDefault("log.level", d.Log.Level)
	v.SetDefault("log.format", d.Log.Format)
	v.SetDefault("log.file", d.Log.File)

	v.SetDefault("quiz.size", d.Quiz.Size)

	v.SetDefault("enrich.enabled", d.Enrich.Enabled)
	v.SetDefault("enrich.base_url", d.Enrich.BaseURL)
	v.SetDefault("enrich.timeout", d.Enrich.Timeout)
	v.SetDefault("enrich.retry.max_attempts", d.Enrich.Retry.MaxAttempts)
	v.SetDefault("enrich.retry.initial_wait", d.Enrich.Retry.InitialWait)
	v.SetDefault("enrich.retry.max_wait", d.Enrich.Retry.MaxWait)
	v.SetDefault("enrich.retry.multiplier", d.Enrich.Retry.Multiplier)
}

// configDir resolves $XDG_CONFIG_HOME/signmaster, falling back to
// ~/.config/signmaster.
func configDir() (string, error) {
	base := os.Getenv("XDG_CONFIG_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		base = filepath.Join(home, ".config")
	}
	return filepath.Join(base, "signmaster"), nil
}
