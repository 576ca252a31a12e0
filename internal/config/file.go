package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/screa/sui-address-grinder/pkg/types"
)

// ErrNoConfigFile is returned by LoadLocal when no config file exists.
var ErrNoConfigFile = errors.New("no config file")

// LocalNames are the file names LoadLocal looks for, in order.
var LocalNames = []string{"sui-grinder.yaml", "sui-grinder.yml", ".sui-grinder.yaml", ".sui-grinder.yml"}

// FileConfig is the on-disk YAML configuration. Nil fields are unset.
type FileConfig struct {
	StartsWith       *string `yaml:"starts_with"`
	EndsWith         *string `yaml:"ends_with"`
	IgnoreCase       *bool   `yaml:"ignore_case"`
	Verbose          *bool   `yaml:"verbose"`
	Cores            *int    `yaml:"cores"`
	Scheme           *string `yaml:"scheme"`
	ProgressInterval *string `yaml:"progress_interval"`
	NoColor          *bool   `yaml:"no_color"`
}

// LoadFile reads a YAML config file from the provided path.
func LoadFile(path string) (FileConfig, error) {
	var fc FileConfig
	b, err := os.ReadFile(path)
	if err != nil {
		return fc, err
	}
	if err := yaml.Unmarshal(b, &fc); err != nil {
		return fc, fmt.Errorf("parse %s: %w", path, err)
	}
	return fc, nil
}

// LoadLocal looks for one of LocalNames in dir.
func LoadLocal(dir string) (FileConfig, string, error) {
	for _, name := range LocalNames {
		p := filepath.Join(dir, name)
		if _, err := os.Stat(p); err == nil {
			fc, err := LoadFile(p)
			return fc, p, err
		}
	}
	return FileConfig{}, "", ErrNoConfigFile
}

// Apply copies values from fc into c. Settings for which changed reports true
// were given explicitly on the command line and keep their value.
func (c *Config) Apply(fc FileConfig, changed func(flag string) bool) error {
	pickString(&c.StartsWith, fc.StartsWith, changed("starts-with"))
	pickString(&c.EndsWith, fc.EndsWith, changed("ends-with"))
	pickBool(&c.IgnoreCase, fc.IgnoreCase, changed("ignore-case"))
	pickBool(&c.Verbose, fc.Verbose, changed("verbose"))
	pickBool(&c.NoColor, fc.NoColor, changed("no-color"))
	if fc.Cores != nil && !changed("cores") {
		c.Cores = *fc.Cores
	}
	if fc.Scheme != nil && !changed("scheme") {
		s, err := types.ParseScheme(*fc.Scheme)
		if err != nil {
			return err
		}
		c.Scheme = s
	}
	if fc.ProgressInterval != nil && !changed("progress-interval") {
		d, err := time.ParseDuration(*fc.ProgressInterval)
		if err != nil {
			return fmt.Errorf("progress_interval: %w", err)
		}
		c.ProgressInterval = d
	}
	return nil
}

func pickString(dst *string, file *string, cli bool) {
	if cli || file == nil {
		return
	}
	*dst = *file
}

func pickBool(dst *bool, file *bool, cli bool) {
	if cli || file == nil {
		return
	}
	*dst = *file
}
