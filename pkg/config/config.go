// Package config loads floorplan settings from TOML files.
//
// Settings are looked up in this order, later sources overriding earlier
// ones: built-in defaults, the user config file
// ($XDG_CONFIG_HOME/floorplan/config.toml or the platform equivalent), a
// .floorplan.toml in the working directory, and finally command-line flags
// (applied by the caller).
//
// Example file:
//
//	tolerance = 0.01
//	max_gap = 0
//	indent = "    "
//	log_level = "info"
package config

import (
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/floorplan/pkg/errors"
)

const (
	// AppName names the user config directory.
	AppName = "floorplan"

	// FileName is the per-project config file.
	FileName = ".floorplan.toml"

	// UserFileName is the config file inside the user config directory.
	UserFileName = "config.toml"
)

// Defaults.
const (
	DefaultTolerance = 0.01
	DefaultIndent    = "    "
	DefaultLogLevel  = "info"
)

var logLevels = []string{"debug", "info", "warn", "error"}

// Config holds user-tunable settings.
type Config struct {
	// Tolerance for adjacency, alignment and overlap checks.
	Tolerance float64 `toml:"tolerance"`

	// MaxGap ignores neighbours further apart than this when inferring
	// relative positions. Zero means unlimited.
	MaxGap float64 `toml:"max_gap"`

	// Indent for new rooms on floors with no room to copy from.
	Indent string `toml:"indent"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `toml:"log_level"`

	// Sources lists the files that contributed to this config.
	Sources []string `toml:"-"`

	// Unknown lists keys found in config files that are not recognized.
	Unknown []string `toml:"-"`
}

// Default returns a config with every field set to its default.
func Default() *Config {
	c := &Config{}
	c.SetDefaults()
	return c
}

// SetDefaults fills in zero-valued fields.
func (c *Config) SetDefaults() {
	if c.Tolerance == 0 {
		c.Tolerance = DefaultTolerance
	}
	if c.Indent == "" {
		c.Indent = DefaultIndent
	}
	if c.LogLevel == "" {
		c.LogLevel = DefaultLogLevel
	}
}

// Validate reports the first invalid setting.
func (c *Config) Validate() error {
	if err := errors.ValidateTolerance(c.Tolerance); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidConfig, err, "tolerance")
	}
	if math.IsNaN(c.MaxGap) || c.MaxGap < 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "max_gap must be a non-negative number, got %g", c.MaxGap)
	}
	if strings.Trim(c.Indent, " \t") != "" {
		return errors.New(errors.ErrCodeInvalidConfig, "indent must contain only spaces and tabs, got %q", c.Indent)
	}
	valid := false
	for _, l := range logLevels {
		if c.LogLevel == l {
			valid = true
		}
	}
	if !valid {
		return errors.New(errors.ErrCodeInvalidConfig, "log_level must be one of %s, got %q", strings.Join(logLevels, ", "), c.LogLevel)
	}
	return nil
}

// Load reads the config. With an explicit path only that file is read and it
// must exist. Otherwise the user file and the project file are merged, both
// optional. The result has defaults applied and is validated.
func Load(path string) (*Config, error) {
	c := &Config{}
	if path != "" {
		if _, err := os.Stat(path); err != nil {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "config file %s", path)
		}
		if err := c.merge(path); err != nil {
			return nil, err
		}
	} else {
		for _, p := range searchPaths() {
			if _, err := os.Stat(p); err != nil {
				continue
			}
			if err := c.merge(p); err != nil {
				return nil, err
			}
		}
	}
	c.SetDefaults()
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// searchPaths lists the implicit config files, lowest precedence first.
func searchPaths() []string {
	var paths []string
	if dir, err := os.UserConfigDir(); err == nil {
		paths = append(paths, filepath.Join(dir, AppName, UserFileName))
	}
	return append(paths, FileName)
}

// merge decodes path over c. Keys absent from the file keep their value.
func (c *Config) merge(path string) error {
	md, err := toml.DecodeFile(path, c)
	if err != nil {
		return errors.Wrap(errors.ErrCodeInvalidConfig, err, "parse %s", path)
	}
	for _, k := range md.Undecoded() {
		c.Unknown = append(c.Unknown, path+": "+k.String())
	}
	c.Sources = append(c.Sources, path)
	return nil
}
