// Package config loads the chart-interpreter configuration file.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Config is the root of the configuration file.
type Config struct {
	Interpret InterpretConfig `yaml:"interpret"`
	Log       LogConfig       `yaml:"log"`
	Server    ServerConfig    `yaml:"server"`
	Output    OutputConfig    `yaml:"output"`
}

// InterpretConfig controls the analysis pipeline.
type InterpretConfig struct {
	// Parallel runs the four analyses concurrently. Defaults to true.
	Parallel *bool `yaml:"parallel" env:"CHART_INTERPRETER_PARALLEL"`
	// EnabledYogas restricts detection to the named rules. Empty means all.
	EnabledYogas []string `yaml:"enabledYogas,omitempty" env:"CHART_INTERPRETER_YOGAS" envSeparator:"," validate:"dive,required"`
}

// LogConfig controls the global logger.
type LogConfig struct {
	Format string `yaml:"format" env:"CHART_INTERPRETER_LOG_FORMAT" validate:"oneof=json text"`
	Dir    string `yaml:"dir,omitempty" env:"CHART_INTERPRETER_LOG_DIR"`
	Debug  bool   `yaml:"debug" env:"CHART_INTERPRETER_DEBUG"`
}

// ServerConfig controls the HTTP API.
type ServerConfig struct {
	Addr              string        `yaml:"addr" env:"CHART_INTERPRETER_ADDR" validate:"required"`
	ReadHeaderTimeout time.Duration `yaml:"readHeaderTimeout" env:"CHART_INTERPRETER_READ_HEADER_TIMEOUT" validate:"gt=0"`
	MaxBodyBytes      int64         `yaml:"maxBodyBytes" env:"CHART_INTERPRETER_MAX_BODY_BYTES" validate:"min=1024"`
	// RateLimit is the sustained request rate per second. Zero disables limiting.
	RateLimit float64 `yaml:"rateLimit" env:"CHART_INTERPRETER_RATE_LIMIT" validate:"gte=0"`
	// RateBurst is the token bucket size. Defaults to DefaultRateBurst when RateLimit is set.
	RateBurst int `yaml:"rateBurst" env:"CHART_INTERPRETER_RATE_BURST" validate:"gte=0"`
}

// OutputConfig controls CLI report rendering.
type OutputConfig struct {
	Format string `yaml:"format" env:"CHART_INTERPRETER_OUTPUT_FORMAT" validate:"oneof=json yaml text debug"`
}

// Defaults.
const (
	DefaultAddr              = ":8080"
	DefaultReadHeaderTimeout = 5 * time.Second
	DefaultMaxBodyBytes      = 1 << 20
	DefaultRateBurst         = 10
	DefaultLogFormat         = "text"
	DefaultOutputFormat      = "json"
)

var configValidate = validator.New(validator.WithRequiredStructEnabled())

// Default returns a Config with every default applied.
func Default() *Config {
	var c Config

	applyDefaults(&c)

	return &c
}

// LoadFile loads, defaults and validates a YAML config file. Environment
// variables are not consulted; see Load.
func LoadFile(path string) (*Config, error) {
	var c Config

	if err := decodeFile(path, &c); err != nil {
		return nil, err
	}

	return finish(&c)
}

// Parse parses YAML config data.
func Parse(data []byte) (*Config, error) {
	var c Config

	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("failed to parse config YAML: %w", err)
	}

	return finish(&c)
}

// Load builds the effective config: the YAML file at path (if any), then
// CHART_INTERPRETER_* environment overrides, then defaults.
func Load(path string) (*Config, error) {
	var c Config

	if path != "" {
		if err := decodeFile(path, &c); err != nil {
			return nil, err
		}
	}

	if err := ApplyEnv(&c); err != nil {
		return nil, err
	}

	return finish(&c)
}

// ApplyEnv overrides c with the CHART_INTERPRETER_* variables that are set.
func ApplyEnv(c *Config) error {
	if err := env.Parse(c); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}

	return nil
}

func decodeFile(path string, c *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("config %s: failed to parse config YAML: %w", path, err)
	}

	return nil
}

func finish(c *Config) (*Config, error) {
	applyDefaults(c)

	if err := c.Validate(); err != nil {
		return nil, err
	}

	return c, nil
}

// applyDefaults fills in default values for optional fields.
func applyDefaults(c *Config) {
	if c.Interpret.Parallel == nil {
		parallel := true
		c.Interpret.Parallel = &parallel
	}

	if c.Log.Format == "" {
		c.Log.Format = DefaultLogFormat
	}

	if c.Server.Addr == "" {
		c.Server.Addr = DefaultAddr
	}

	if c.Server.ReadHeaderTimeout == 0 {
		c.Server.ReadHeaderTimeout = DefaultReadHeaderTimeout
	}

	if c.Server.MaxBodyBytes == 0 {
		c.Server.MaxBodyBytes = DefaultMaxBodyBytes
	}

	if c.Server.RateLimit > 0 && c.Server.RateBurst == 0 {
		c.Server.RateBurst = DefaultRateBurst
	}

	if c.Output.Format == "" {
		c.Output.Format = DefaultOutputFormat
	}
}

// Validate checks the config's tagged rules.
func (c *Config) Validate() error {
	err := configValidate.Struct(c)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fmt.Sprintf("%s: failed %q rule (got %v)", fe.Namespace(), fe.Tag(), fe.Value()))
	}

	return fmt.Errorf("invalid config: %s", strings.Join(msgs, "; "))
}

// IsParallel reports whether the interpreter fans out.
func (c *InterpretConfig) IsParallel() bool {
	return c.Parallel == nil || *c.Parallel
}

// Marshal serializes a Config to YAML.
func Marshal(c *Config) ([]byte, error) {
	return yaml.Marshal(c)
}

// WriteFile writes a Config to the given path.
func WriteFile(c *Config, path string) error {
	data, err := Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config file %s: %w", path, err)
	}

	return nil
}
