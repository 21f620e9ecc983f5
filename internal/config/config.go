// Package config loads application configuration from defaults, an optional
// config file and TASKTRACKER_ environment variables.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment variable Load reads.
const EnvPrefix = "TASKTRACKER"

// Config holds the application configuration.
type Config struct {
	DBPath        string `mapstructure:"db_path"`
	SessionPath   string `mapstructure:"session_path"`
	PasswordHash  string `mapstructure:"password_hash"`
	SessionSecret string `mapstructure:"session_secret"`
	LogLevel      string `mapstructure:"log_level"`
	LogFormat     string `mapstructure:"log_format"`
}

var defaults = map[string]string{
	"db_path":        "tasks.db",
	"session_path":   "session.txt",
	"password_hash":  "bcrypt",
	"session_secret": "",
	"log_level":      "warn",
	"log_format":     "text",
}

// Load reads configuration. configFile is optional; when set it must exist
// and may be YAML or TOML (by extension). Environment variables override the
// file: TASKTRACKER_DB_PATH, TASKTRACKER_SESSION_PATH, TASKTRACKER_PASSWORD_HASH,
// TASKTRACKER_SESSION_SECRET, TASKTRACKER_LOG_LEVEL, TASKTRACKER_LOG_FORMAT.
func Load(configFile string) (*Config, error) {
	v := viper.New()
	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config file %s: %w", configFile, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) validate() error {
	var errs []error

	if strings.TrimSpace(c.DBPath) == "" {
		errs = append(errs, errors.New("db_path must not be empty"))
	}
	if strings.TrimSpace(c.SessionPath) == "" {
		errs = append(errs, errors.New("session_path must not be empty"))
	}

	switch strings.ToLower(c.PasswordHash) {
	case "bcrypt", "sha256":
	default:
		errs = append(errs, fmt.Errorf("password_hash has invalid value %q (want bcrypt or sha256)", c.PasswordHash))
	}

	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "warning", "error":
	default:
		errs = append(errs, fmt.Errorf("log_level has invalid value %q", c.LogLevel))
	}

	switch strings.ToLower(c.LogFormat) {
	case "text", "json", "logfmt":
	default:
		errs = append(errs, fmt.Errorf("log_format has invalid value %q", c.LogFormat))
	}

	return errors.Join(errs...)
}

// String returns a string representation of the config (sensitive values are masked).
func (c *Config) String() string {
	secret := "unset"
	if c.SessionSecret != "" {
		secret = "*** (masked) ***"
	}
	return fmt.Sprintf("Config{DB: %s, Session: %s, Hash: %s, Secret: %s}",
		c.DBPath, c.SessionPath, c.PasswordHash, secret)
}
