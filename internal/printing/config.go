// SPDX-License-Identifier: Apache-2.0

// Package printing submits jobs to CUPS and assembles booklet impositions.
// Printer, scanner and job defaults come from the provisioned defaults file,
// with the embedded template as the built-in fallback.
package printing

import (
	"errors"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/automa-saga/logx"

	"github.com/printworks/printbot/internal/templates"
)

// PrinterConfig identifies the CUPS queue and its quality options.
type PrinterConfig struct {
	Name              string `toml:"name"`
	PageSize          string `toml:"page_size"`
	ColorModel        string `toml:"color_model"`
	QualityDPI        int    `toml:"quality_dpi"`
	BookletQualityDPI int    `toml:"booklet_quality_dpi"`
}

// ScannerConfig identifies the SANE device and capture settings.
type ScannerConfig struct {
	Device        string `toml:"device"`
	ResolutionDPI int    `toml:"resolution_dpi"`
	Mode          string `toml:"mode"`
}

// BookletConfig holds the signature sizing default.
type BookletConfig struct {
	DefaultSheets int `toml:"default_sheets"`
}

// JobsConfig bounds what the bot accepts per job.
type JobsConfig struct {
	DefaultCopies int    `toml:"default_copies"`
	MaxFileSizeMB int    `toml:"max_file_size_mb"`
	SpoolDir      string `toml:"spool_dir"`
}

// Config is the full printing defaults document.
type Config struct {
	Printer PrinterConfig `toml:"printer"`
	Scanner ScannerConfig `toml:"scanner"`
	Booklet BookletConfig `toml:"booklet"`
	Jobs    JobsConfig    `toml:"jobs"`
}

// Defaults returns the configuration baked into the binary. It is the same
// document provisioning materializes, so a fresh install and a missing file
// behave identically.
func Defaults() (*Config, error) {
	data, err := templates.Files.ReadFile(templates.PrintingDefaultsTemplateFile)
	if err != nil {
		return nil, ConfigError.Wrap(err, "embedded printing defaults are unreadable")
	}

	cfg := &Config{}
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, ConfigError.Wrap(err, "embedded printing defaults are invalid")
	}
	return cfg, nil
}

// Load reads the printing defaults from path on top of the built-in values,
// then applies the environment overrides. A missing file is not an error;
// keys absent from the file keep their defaults.
func Load(path string) (*Config, error) {
	cfg, err := Defaults()
	if err != nil {
		return nil, err
	}

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, ConfigError.Wrap(err, "cannot parse printing defaults %s", path)
		}
		logx.As().Warn().
			Str("path", path).
			Msg("Printing defaults file not found, using built-in defaults")
	}

	if err := cfg.applyEnv(os.Getenv); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// applyEnv lets the secrets file double as per-host device configuration.
// Under systemd its keys arrive in the process environment, and an exported
// variable wins over the defaults file for a single invocation too.
func (c *Config) applyEnv(lookup func(string) string) error {
	if v := strings.TrimSpace(lookup("PRINTER_NAME")); v != "" {
		c.Printer.Name = v
	}
	if v := strings.TrimSpace(lookup("SCANNER_DEVICE")); v != "" {
		c.Scanner.Device = v
	}
	if v := strings.TrimSpace(lookup("DEFAULT_SHEETS")); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return ConfigError.New("DEFAULT_SHEETS must be an integer, got %q", v)
		}
		c.Booklet.DefaultSheets = n
	}
	if v := strings.TrimSpace(lookup("DEFAULT_COPIES")); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return ConfigError.New("DEFAULT_COPIES must be an integer, got %q", v)
		}
		c.Jobs.DefaultCopies = n
	}
	return nil
}

// Validate rejects values the pipeline cannot work with.
func (c *Config) Validate() error {
	if c.Printer.Name == "" {
		return ConfigError.New("printer.name must not be empty")
	}
	if c.Printer.QualityDPI < 1 || c.Printer.BookletQualityDPI < 1 {
		return ConfigError.New("printer quality settings must be positive")
	}
	if c.Scanner.ResolutionDPI < 1 {
		return ConfigError.New("scanner.resolution_dpi must be positive, got %d", c.Scanner.ResolutionDPI)
	}
	if c.Booklet.DefaultSheets < 1 {
		return ConfigError.New("booklet.default_sheets must be at least 1, got %d", c.Booklet.DefaultSheets)
	}
	if c.Jobs.DefaultCopies < 1 {
		return ConfigError.New("jobs.default_copies must be at least 1, got %d", c.Jobs.DefaultCopies)
	}
	if c.Jobs.MaxFileSizeMB < 1 {
		return ConfigError.New("jobs.max_file_size_mb must be at least 1, got %d", c.Jobs.MaxFileSizeMB)
	}
	return nil
}

// MaxFileSizeBytes converts the configured upload cap to bytes.
func (c *Config) MaxFileSizeBytes() int64 {
	return int64(c.Jobs.MaxFileSizeMB) * 1024 * 1024
}
