// Package config loads basecanvas settings from TOML or YAML files.
//
// A config file may override any outline default and set the log level:
//
//	[log]
//	level = "debug"
//
//	[outline.circle]
//	r = "8"
//	stroke = "#ff0000"
//
// The same settings in YAML:
//
//	log:
//	  level: debug
//	outline:
//	  circle:
//	    r: "8"
//	    stroke: "#ff0000"
//
// Attribute values must be strings; quote numbers in TOML. Entries are
// merged key by key over [outline.DefaultValues]; keys that are
// not set keep their documented default.
package config

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	errs "github.com/matzehuels/basecanvas/pkg/errors"
	"github.com/matzehuels/basecanvas/pkg/outline"
)

// Config holds user settings.
type Config struct {
	Log     LogConfig     `toml:"log" yaml:"log"`
	Outline OutlineConfig `toml:"outline" yaml:"outline"`
}

// LogConfig configures logging.
type LogConfig struct {
	Level string `toml:"level" yaml:"level"`
}

// OutlineConfig overrides outline defaults, one table per kind.
type OutlineConfig struct {
	Circle map[string]string `toml:"circle" yaml:"circle"`
}

// Load reads the config file at path. The format is chosen by extension:
// ".toml" (the default for any other extension), ".yaml" or ".yml".
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, errs.Wrap(errs.ErrCodeFileNotFound, err, "read config %s", path)
	}
	if err != nil {
		return nil, errs.Wrap(errs.ErrCodeInvalidConfig, err, "read config %s", path)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return ParseYAML(data)
	default:
		return ParseTOML(data)
	}
}

// LoadOrDefault reads the config at path, returning an empty config when the
// file does not exist.
func LoadOrDefault(path string) (*Config, error) {
	cfg, err := Load(path)
	if errs.Is(err, errs.ErrCodeFileNotFound) {
		return &Config{}, nil
	}
	return cfg, err
}

// ParseTOML parses a TOML config.
func ParseTOML(data []byte) (*Config, error) {
	var cfg Config
	md, err := toml.NewDecoder(bytes.NewReader(data)).Decode(&cfg)
	if err != nil {
		return nil, errs.Wrap(errs.ErrCodeInvalidConfig, err, "parse toml")
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, errs.New(errs.ErrCodeInvalidConfig, "unknown config key %q", undecoded[0].String())
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// ParseYAML parses a YAML config.
func ParseYAML(data []byte) (*Config, error) {
	var cfg Config
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, errs.Wrap(errs.ErrCodeInvalidConfig, err, "parse yaml")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// validLevels are the log levels accepted in [log].
var validLevels = map[string]bool{"": true, "debug": true, "info": true, "warn": true, "error": true}

// Validate checks level names and attribute names. Attribute values are
// passed through unchecked.
func (c *Config) Validate() error {
	if !validLevels[strings.ToLower(c.Log.Level)] {
		return errs.New(errs.ErrCodeInvalidConfig, "invalid log level %q (must be debug, info, warn or error)", c.Log.Level)
	}
	for name := range c.Outline.Circle {
		if err := errs.ValidateAttributeName(name); err != nil {
			return err
		}
	}
	return nil
}

// Defaults returns the documented outline defaults with the config's
// overrides applied.
func (c *Config) Defaults() outline.Defaults {
	d := outline.DefaultValues()
	for name, value := range c.Outline.Circle {
		d[outline.KindCircle][name] = value
	}
	return d
}
