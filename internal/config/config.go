// Package config loads and saves session options as YAML or TOML, picking
// the format from the file extension.
package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/philipparndt/meshpath/internal/session"
	"github.com/philipparndt/meshpath/pkg/topology"
	"github.com/pkg/errors"
	"github.com/plan-systems/klog"
	"gopkg.in/yaml.v3"
)

// ErrUnknownFormat is returned for files that are neither YAML nor TOML.
var ErrUnknownFormat = errors.New("unknown config format")

// Format is a supported file format.
type Format int

const (
	YAML Format = iota
	TOML
)

// FormatOf picks the format from the extension of filename.
func FormatOf(filename string) (Format, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".yaml", ".yml":
		return YAML, nil
	case ".toml":
		return TOML, nil
	}
	return 0, errors.Wrapf(ErrUnknownFormat, "%s", filename)
}

// Load reads filename over the default options and validates the result.
func Load(filename string) (session.Config, error) {
	cfg := session.DefaultConfig()
	format, err := FormatOf(filename)
	if err != nil {
		return cfg, err
	}
	data, err := os.ReadFile(filename)
	if err != nil {
		return cfg, errors.Wrap(err, "read config")
	}
	if err := Decode(data, format, &cfg); err != nil {
		return session.DefaultConfig(), errors.Wrapf(err, "parse %s", filename)
	}
	if err := cfg.Validate(); err != nil {
		return session.DefaultConfig(), errors.Wrapf(err, "%s", filename)
	}
	klog.V(1).Infof("loaded config %s: %+v", filename, cfg)
	return cfg, nil
}

// LoadOrDefault is Load that treats a missing file as the default options.
func LoadOrDefault(filename string) (session.Config, error) {
	cfg, err := Load(filename)
	if errors.Is(err, os.ErrNotExist) {
		return session.DefaultConfig(), nil
	}
	return cfg, err
}

// Save writes cfg to filename in the format its extension names.
func Save(filename string, cfg session.Config) error {
	format, err := FormatOf(filename)
	if err != nil {
		return err
	}
	data, err := Encode(cfg, format)
	if err != nil {
		return err
	}
	if err := os.WriteFile(filename, data, 0o644); err != nil {
		return errors.Wrap(err, "write config")
	}
	return nil
}

// Decode parses data into cfg. Keys missing from data keep their value.
func Decode(data []byte, format Format, cfg *session.Config) error {
	if format == TOML {
		return toml.Unmarshal(data, cfg)
	}
	return yaml.Unmarshal(data, cfg)
}

// Encode renders cfg in format.
func Encode(cfg session.Config, format Format) ([]byte, error) {
	if format == TOML {
		return toml.Marshal(cfg)
	}
	return yaml.Marshal(cfg)
}

// ToolDefaults keeps the directives of finished sessions in a config file,
// so the next session starts with them.
type ToolDefaults struct {
	Filename string
	Config   session.Config
}

// SetDefaults stores d in the file.
func (t *ToolDefaults) SetDefaults(d topology.Directives) error {
	t.Config.Directives = d
	return Save(t.Filename, t.Config)
}
