// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package config provides configuration loading and management for fmc2csv.
//
// Supports both TOML and JSON configuration formats, with defaults,
// .env loading, environment variable overrides, and validation.
//
// Configuration file locations (in order of precedence):
//   - the path given with --config
//   - ./fmc2csv.toml
//   - ~/.fmc2csv/config.toml
//   - ~/.fmc2csv/config.json
//   - Built-in defaults
package config

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"

	"github.com/fmc2csv/fmc2csv/internal/flatten"
	"github.com/fmc2csv/fmc2csv/internal/util"
)

// =============================================================================
// CONFIG STRUCTURES
// =============================================================================

// Config represents the complete fmc2csv configuration.
type Config struct {
	Version string `toml:"version" json:"version"`

	// Export controls where export documents live and how tables are written.
	Export ExportConfig `toml:"export" json:"export"`

	// Kinds overrides file locations per object kind, keyed by kind name
	// or alias (e.g. "accessrules", "rules").
	Kinds map[string]KindConfig `toml:"kinds,omitempty" json:"kinds,omitempty"`

	// Logging configures the diagnostic logger.
	Logging LoggingConfig `toml:"logging" json:"logging"`

	// path is the file the config was loaded from, empty for defaults.
	path string
}

// ExportConfig contains the export directory and output settings.
type ExportConfig struct {
	// Dir is the directory holding fmc_<kind>.json export documents.
	Dir string `toml:"dir" json:"dir"`
	// Format is the output format: "csv", "json", "md" or "html".
	Format string `toml:"format" json:"format"`
	// Delimiter separates CSV fields. Must be a single character.
	Delimiter string `toml:"delimiter" json:"delimiter"`
}

// KindConfig overrides the source and destination of one kind.
// Relative paths are resolved against Export.Dir.
type KindConfig struct {
	Source      string `toml:"source,omitempty" json:"source,omitempty"`
	Destination string `toml:"destination,omitempty" json:"destination,omitempty"`
}

// LoggingConfig contains logger configuration.
type LoggingConfig struct {
	// Level is one of "debug", "info", "warn", "error".
	Level string `toml:"level" json:"level"`
	// Format is "console" or "json".
	Format string `toml:"format" json:"format"`
}

// =============================================================================
// DEFAULT CONFIGURATION
// =============================================================================

// Default returns a Config with default values.
func Default() *Config {
	return &Config{
		Version: "1.0.0",
		Export: ExportConfig{
			Dir:       "export",
			Format:    "csv",
			Delimiter: ",",
		},
		Logging: LoggingConfig{
			Level:  "warn",
			Format: "console",
		},
	}
}

// =============================================================================
// CONFIG PATH HELPERS
// =============================================================================

// LocalConfigName is the config file looked up in the working directory.
const LocalConfigName = "fmc2csv.toml"

// ConfigDir returns the fmc2csv configuration directory path.
func ConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("could not determine home directory: %w", err)
	}
	return filepath.Join(home, ".fmc2csv"), nil
}

// ConfigPathTOML returns the path to the user TOML config file.
func ConfigPathTOML() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// ConfigPathJSON returns the path to the user JSON config file.
func ConfigPathJSON() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

// SearchPaths returns the config file candidates in lookup order.
func SearchPaths() []string {
	paths := []string{LocalConfigName}
	if p, err := ConfigPathTOML(); err == nil {
		paths = append(paths, p)
	}
	if p, err := ConfigPathJSON(); err == nil {
		paths = append(paths, p)
	}
	return paths
}

// Path returns the file the config was loaded from, or "" for defaults.
func (c *Config) Path() string {
	return c.path
}

// =============================================================================
// LOAD FUNCTIONS
// =============================================================================

// LoadDotEnv loads KEY=VALUE pairs from the given files (default ".env")
// into the process environment. Variables already set are kept, and
// missing files are ignored.
func LoadDotEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	var present []string
	for _, f := range files {
		if _, err := os.Stat(f); err == nil {
			present = append(present, f)
		}
	}
	if len(present) == 0 {
		return nil
	}
	if err := godotenv.Load(present...); err != nil {
		return fmt.Errorf("failed to load %s: %w", strings.Join(present, ", "), err)
	}
	return nil
}

// Load resolves and loads the configuration. An explicit path must exist;
// otherwise the search paths are tried in order and defaults are used when
// none exists. Environment overrides are applied last, then the result is
// validated.
func Load(explicit string) (*Config, error) {
	if explicit != "" {
		return LoadFromPath(explicit)
	}

	for _, path := range SearchPaths() {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		return LoadFromPath(path)
	}

	cfg := Default()
	cfg.ApplyEnvOverrides()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// LoadTOML decodes a TOML file into cfg. Unknown keys are rejected.
func LoadTOML(cfg *Config, path string) error {
	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return fmt.Errorf("failed to decode TOML file: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return fmt.Errorf("unknown keys in TOML file: %s", strings.Join(keys, ", "))
	}
	fillDefaults(cfg)
	return nil
}

// LoadJSON decodes a JSON file into cfg.
func LoadJSON(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read JSON file: %w", err)
	}
	if err := json.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("failed to decode JSON file: %w", err)
	}
	fillDefaults(cfg)
	return nil
}

// LoadFromPath loads configuration from a specific file path with full validation.
func LoadFromPath(path string) (*Config, error) {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("config file not found: %s: %w", path, err)
		}
		return nil, fmt.Errorf("cannot access config file %s: %w", path, err)
	}

	cfg := &Config{}
	if strings.EqualFold(filepath.Ext(path), ".json") {
		if err := LoadJSON(cfg, path); err != nil {
			return nil, fmt.Errorf("failed to load JSON config from %s: %w", path, err)
		}
	} else {
		if err := LoadTOML(cfg, path); err != nil {
			return nil, fmt.Errorf("failed to load TOML config from %s: %w", path, err)
		}
	}
	cfg.path = path

	cfg.ApplyEnvOverrides()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// fillDefaults fills in any missing values with defaults.
func fillDefaults(cfg *Config) {
	defaults := Default()

	if cfg.Version == "" {
		cfg.Version = defaults.Version
	}
	if cfg.Export.Dir == "" {
		cfg.Export.Dir = defaults.Export.Dir
	}
	if cfg.Export.Format == "" {
		cfg.Export.Format = defaults.Export.Format
	}
	if cfg.Export.Delimiter == "" {
		cfg.Export.Delimiter = defaults.Export.Delimiter
	}
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = defaults.Logging.Level
	}
	if cfg.Logging.Format == "" {
		cfg.Logging.Format = defaults.Logging.Format
	}
}

// =============================================================================
// SAVE FUNCTIONS
// =============================================================================

// SaveTOML writes the configuration to a TOML file, creating parent
// directories as needed.
func SaveTOML(cfg *Config, path string) error {
	var buf bytes.Buffer
	buf.WriteString("# fmc2csv configuration file\n")
	buf.WriteString("# Generated by fmc2csv config init\n\n")

	if err := toml.NewEncoder(&buf).Encode(cfg); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	if err := util.AtomicWriteFile(path, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// =============================================================================
// VALIDATION
// =============================================================================

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidateErrors is a collection of validation errors.
type ValidateErrors []ValidationError

func (e ValidateErrors) Error() string {
	if len(e) == 0 {
		return "no validation errors"
	}
	msgs := make([]string, len(e))
	for i, err := range e {
		msgs[i] = err.Error()
	}
	return strings.Join(msgs, "; ")
}

var (
	validFormats   = []string{"csv", "json", "md", "html"}
	validLevels    = []string{"debug", "info", "warn", "error"}
	validLogFormat = []string{"console", "json"}
)

// Validate validates the configuration and returns ValidateErrors when
// any setting is invalid.
func (c *Config) Validate() error {
	var errs ValidateErrors

	if !contains(validFormats, strings.ToLower(c.Export.Format)) {
		errs = append(errs, ValidationError{
			Field:   "export.format",
			Message: fmt.Sprintf("invalid format '%s', must be one of: %s", c.Export.Format, strings.Join(validFormats, ", ")),
		})
	}

	if c.Export.Delimiter != "" {
		if _, err := ParseDelimiter(c.Export.Delimiter); err != nil {
			errs = append(errs, ValidationError{Field: "export.delimiter", Message: err.Error()})
		}
	}

	if !contains(validLevels, strings.ToLower(c.Logging.Level)) {
		errs = append(errs, ValidationError{
			Field:   "logging.level",
			Message: fmt.Sprintf("invalid level '%s', must be one of: %s", c.Logging.Level, strings.Join(validLevels, ", ")),
		})
	}
	if !contains(validLogFormat, strings.ToLower(c.Logging.Format)) {
		errs = append(errs, ValidationError{
			Field:   "logging.format",
			Message: fmt.Sprintf("invalid format '%s', must be one of: %s", c.Logging.Format, strings.Join(validLogFormat, ", ")),
		})
	}

	names := make([]string, 0, len(c.Kinds))
	for name := range c.Kinds {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		if _, err := flatten.ParseKind(name); err != nil {
			errs = append(errs, ValidationError{Field: "kinds." + name, Message: err.Error()})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ParseDelimiter returns the single rune of s. Quotes, line breaks and the
// Unicode replacement character cannot separate CSV fields.
func ParseDelimiter(s string) (rune, error) {
	if utf8.RuneCountInString(s) != 1 {
		return 0, fmt.Errorf("delimiter must be a single character, got %q", s)
	}
	r, _ := utf8.DecodeRuneInString(s)
	if r == '"' || r == '\r' || r == '\n' || r == utf8.RuneError {
		return 0, fmt.Errorf("invalid delimiter %q", s)
	}
	return r, nil
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

// =============================================================================
// ENVIRONMENT OVERRIDES
// =============================================================================

// ApplyEnvOverrides applies FMC2CSV_* environment variables.
func (c *Config) ApplyEnvOverrides() {
	if dir := os.Getenv("FMC2CSV_EXPORT_DIR"); dir != "" {
		c.Export.Dir = dir
	}
	if format := os.Getenv("FMC2CSV_FORMAT"); format != "" {
		c.Export.Format = format
	}
	if delim := os.Getenv("FMC2CSV_DELIMITER"); delim != "" {
		c.Export.Delimiter = delim
	}
	if level := os.Getenv("FMC2CSV_LOG_LEVEL"); level != "" {
		c.Logging.Level = level
	}
	if format := os.Getenv("FMC2CSV_LOG_FORMAT"); format != "" {
		c.Logging.Format = format
	}
}

// =============================================================================
// KIND PATHS
// =============================================================================

// kindConfig returns the override for kind, matching keys by alias.
func (c *Config) kindConfig(kind flatten.Kind) KindConfig {
	if kc, ok := c.Kinds[kind.String()]; ok {
		return kc
	}
	for name, kc := range c.Kinds {
		if k, err := flatten.ParseKind(name); err == nil && k == kind {
			return kc
		}
	}
	return KindConfig{}
}

// SourcePath returns the export document path for kind.
func (c *Config) SourcePath(kind flatten.Kind) string {
	if src := c.kindConfig(kind).Source; src != "" {
		return c.resolve(src)
	}
	return filepath.Join(c.Export.Dir, kind.SourceFile())
}

// DestinationPath returns the configured output path for kind, or "" to
// write next to the source.
func (c *Config) DestinationPath(kind flatten.Kind) string {
	if dest := c.kindConfig(kind).Destination; dest != "" {
		return c.resolve(dest)
	}
	return ""
}

func (c *Config) resolve(p string) string {
	if filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(c.Export.Dir, p)
}

// =============================================================================
// HELPERS
// =============================================================================

// Clone creates a deep copy of the configuration.
func (c *Config) Clone() *Config {
	clone := *c
	if c.Kinds != nil {
		clone.Kinds = make(map[string]KindConfig, len(c.Kinds))
		for k, v := range c.Kinds {
			clone.Kinds[k] = v
		}
	}
	return &clone
}

// String returns the config encoded as TOML.
func (c *Config) String() string {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(c); err != nil {
		return fmt.Sprintf("<config: %v>", err)
	}
	return buf.String()
}
