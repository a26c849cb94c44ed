// Package config loads the settings of the bulma command and its showcase
// server from a YAML file, a .env file and the process environment.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/pthm/bulma"
)

// Environment variables that override the file. The process environment
// wins over the .env file.
const (
	EnvAddr         = "BULMA_ADDR"
	EnvTitle        = "BULMA_TITLE"
	EnvTheme        = "BULMA_THEME"
	EnvAccent       = "BULMA_ACCENT"
	EnvLogLevel     = "BULMA_LOG_LEVEL"
	EnvStateKey     = "BULMA_STATE_KEY"
	EnvEncryptState = "BULMA_ENCRYPT_STATE"
)

// Config holds the showcase settings.
type Config struct {
	// Addr is the listen address of the showcase server.
	Addr  string `yaml:"addr" validate:"required,hostname_port"`
	Title string `yaml:"title" validate:"required,max=80"`
	// Theme is auto, light or dark.
	Theme string `yaml:"theme" validate:"omitempty,bulma_theme"`
	// Accent is the color of primary actions in the demos.
	Accent string `yaml:"accent" validate:"omitempty,bulma_color"`
	// Stylesheet overrides the Bulma CDN link.
	Stylesheet string `yaml:"stylesheet"`
	// StateKey signs the state tokens of the interactive demos.
	StateKey string `yaml:"state_key" validate:"required,min=16"`
	// EncryptState makes demo state tokens opaque instead of signed.
	EncryptState bool      `yaml:"encrypt_state"`
	Metrics      bool      `yaml:"metrics"`
	Log          LogConfig `yaml:"log"`
}

// LogConfig configures lib/logger.
type LogConfig struct {
	Level         string `yaml:"level" validate:"omitempty,oneof=trace debug info warn error"`
	HumanReadable bool   `yaml:"human_readable"`
}

// Default returns the settings used when no file is given.
func Default() *Config {
	return &Config{
		Addr:     "127.0.0.1:8080",
		Title:    "Bulma components",
		Theme:    string(bulma.ThemeAuto),
		Accent:   string(bulma.ColorPrimary),
		StateKey: "change-me-in-production-please",
		Metrics:  true,
		Log:      LogConfig{Level: "info", HumanReadable: true},
	}
}

// Load reads path (skipped when empty) over the defaults, applies
// environment overrides from envFile (skipped when empty or missing) and
// the process, then validates the result.
func Load(path, envFile string) (*Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
		if err := decode(bytes.NewReader(data), cfg); err != nil {
			return nil, fmt.Errorf("config: parse %s: %w", path, err)
		}
	}

	env, err := readEnv(envFile)
	if err != nil {
		return nil, err
	}
	if err := cfg.apply(env); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Parse decodes YAML over the defaults and validates it. Environment
// variables are not consulted.
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	if err := decode(bytes.NewReader(data), cfg); err != nil {
		return nil, fmt.Errorf("config: parse: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func decode(r io.Reader, cfg *Config) error {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

// apply copies overrides onto c.
func (c *Config) apply(env map[string]string) error {
	set := func(key string, dst *string) {
		if v, ok := env[key]; ok && v != "" {
			*dst = v
		}
	}
	set(EnvAddr, &c.Addr)
	set(EnvTitle, &c.Title)
	set(EnvTheme, &c.Theme)
	set(EnvAccent, &c.Accent)
	set(EnvLogLevel, &c.Log.Level)
	set(EnvStateKey, &c.StateKey)

	if v, ok := env[EnvEncryptState]; ok && v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("config: %s: %w", EnvEncryptState, err)
		}
		c.EncryptState = b
	}
	return nil
}

// ThemeValue returns the parsed theme.
func (c *Config) ThemeValue() bulma.Theme {
	t, err := bulma.ParseTheme(c.Theme)
	if err != nil {
		return bulma.ThemeAuto
	}
	return t
}

// AccentValue returns the parsed accent color.
func (c *Config) AccentValue() bulma.Color {
	col, err := bulma.ParseColor(c.Accent)
	if err != nil {
		return bulma.ColorPrimary
	}
	return col
}
