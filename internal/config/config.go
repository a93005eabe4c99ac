// SPDX-License-Identifier: Apache-2.0

package config

import (
	"regexp"
	"strings"

	"github.com/automa-saga/logx"
	"github.com/joomcode/errorx"
	"github.com/spf13/viper"

	"github.com/printworks/printbot/internal/core"
	"github.com/printworks/printbot/pkg/sanity"
)

// Config holds the global configuration for the application.
//
// Device and job defaults (printer name, scanner device, booklet sizing) are
// deliberately not part of this file: they live in the printing defaults file
// inside the environment tree so the operator can manage them with the running
// service, and credentials live in the secrets file. This configuration covers
// the tool itself: logging, paths, and error reporting.
type Config struct {
	Log    logx.LoggingConfig `yaml:"log" json:"log"`
	Paths  PathsConfig        `yaml:"paths" json:"paths"`
	Sentry SentryConfig       `yaml:"sentry" json:"sentry"`
}

// PathsConfig allows relocating the service environment tree, primarily for
// staging hosts and tests.
type PathsConfig struct {
	Home string `yaml:"home" json:"home"` // environment tree root, default /opt/printbot
	Temp string `yaml:"temp" json:"temp"` // scratch space, default /tmp/printbot
}

// Validate validates the path overrides to ensure they are safe and secure.
// This performs early validation of user-provided paths to catch security
// issues before workflow execution begins.
func (c PathsConfig) Validate() error {
	if c.Home != "" {
		if _, err := sanity.SanitizePath(c.Home); err != nil {
			return errorx.IllegalArgument.Wrap(err, "invalid home path: %s", c.Home)
		}
	}

	if c.Temp != "" {
		if _, err := sanity.SanitizePath(c.Temp); err != nil {
			return errorx.IllegalArgument.Wrap(err, "invalid temp path: %s", c.Temp)
		}
	}

	return nil
}

// apply pushes non-empty overrides into the derived path set.
func (c PathsConfig) apply() {
	if c.Home != "" {
		core.SetHomeDir(c.Home)
	}

	if c.Temp != "" {
		core.SetTempDir(c.Temp)
	}
}

// SentryConfig represents the `sentry` configuration block for error reporting.
// Reporting is off unless a DSN is configured and Enabled is set.
type SentryConfig struct {
	Enabled     bool   `yaml:"enabled" json:"enabled"`
	DSN         string `yaml:"dsn" json:"dsn"`
	Environment string `yaml:"environment" json:"environment"`
}

var environmentRegex = regexp.MustCompile(`^[a-zA-Z0-9_-]+$`)

// Validate validates the Sentry configuration fields that are set.
func (c SentryConfig) Validate() error {
	if c.Enabled && c.DSN == "" {
		return errorx.IllegalArgument.New("sentry is enabled but no dsn is configured")
	}

	if c.DSN != "" {
		if err := sanity.ValidateURL(c.DSN); err != nil {
			return errorx.IllegalArgument.Wrap(err, "invalid sentry dsn (value redacted)")
		}
	}

	if c.Environment != "" && !environmentRegex.MatchString(c.Environment) {
		return errorx.IllegalArgument.New("invalid sentry environment: %s", c.Environment)
	}

	return nil
}

// Validate validates all configuration fields to ensure they are safe and secure.
func (c Config) Validate() error {
	if err := c.Paths.Validate(); err != nil {
		return err
	}

	if err := c.Sentry.Validate(); err != nil {
		return err
	}

	return nil
}

var globalConfig = Config{
	Log: logx.LoggingConfig{
		Level:          "Debug",
		ConsoleLogging: true,
		FileLogging:    false,
	},
	Sentry: SentryConfig{
		Enabled:     false,
		Environment: "production",
	},
}

func init() {
	// logging starts with the built-in defaults so early failures are visible;
	// Initialize reconfigures it once the config file is read
	_ = logx.Initialize(globalConfig.Log)
}

// Initialize loads the configuration from the specified file.
//
// Parameters:
//   - path: The path to the configuration file.
//
// Returns:
//   - An error if the configuration cannot be loaded.
func Initialize(path string) error {
	if path != "" {
		globalConfig = Config{}
		viper.Reset()
		viper.SetConfigFile(path)
		viper.SetEnvPrefix("PRINTBOT")
		viper.AutomaticEnv()
		viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

		err := viper.ReadInConfig()
		if err != nil {
			return NotFoundError.Wrap(err, "failed to read config file: %s", path).
				WithProperty(errorx.PropertyPayload(), path)
		}

		if err := viper.Unmarshal(&globalConfig); err != nil {
			return errorx.IllegalFormat.Wrap(err, "failed to parse configuration").
				WithProperty(errorx.PropertyPayload(), path)
		}

		if err := globalConfig.Validate(); err != nil {
			return err
		}

		globalConfig.Paths.apply()
	}

	return nil
}

// Get returns the loaded configuration.
//
// Returns:
//   - The global configuration.
func Get() Config {
	return globalConfig
}

func Set(c *Config) error {
	if c == nil {
		return errorx.IllegalArgument.New("config cannot be nil")
	}

	if err := c.Validate(); err != nil {
		return err
	}

	globalConfig = *c
	globalConfig.Paths.apply()
	return nil
}

// OverridePathsConfig updates the path configuration with provided overrides.
// Empty string values are ignored (not applied).
func OverridePathsConfig(overrides PathsConfig) {
	if overrides.Home != "" {
		globalConfig.Paths.Home = overrides.Home
	}
	if overrides.Temp != "" {
		globalConfig.Paths.Temp = overrides.Temp
	}

	globalConfig.Paths.apply()
}

// OverrideSentryConfig updates the Sentry configuration with provided overrides.
// Empty string values are ignored (not applied).
func OverrideSentryConfig(overrides SentryConfig) {
	globalConfig.Sentry.Enabled = overrides.Enabled
	if overrides.DSN != "" {
		globalConfig.Sentry.DSN = overrides.DSN
	}
	if overrides.Environment != "" {
		globalConfig.Sentry.Environment = overrides.Environment
	}
}
