package config

import (
	"errors"
	"strings"
	"time"

	"github.com/screa/sui-address-grinder/pkg/types"
)

// Errors
var (
	ErrInvalidStartsWith = errors.New("invalid hex string for starts with")
	ErrInvalidEndsWith   = errors.New("invalid hex string for ends with")
	ErrInvalidCores      = errors.New("cores must not be negative")
	ErrInvalidInterval   = errors.New("progress interval must not be negative")
)

// DefaultProgressInterval is how often the progress line is refreshed.
const DefaultProgressInterval = 5 * time.Second

// Config holds the application configuration
type Config struct {
	StartsWith       string
	EndsWith         string
	IgnoreCase       bool
	Verbose          bool
	Cores            int // 0 uses every available core
	Scheme           types.Scheme
	ProgressInterval time.Duration
	MaxAttempts      uint64
	NoColor          bool
	ConfigFile       string
}

// NewConfig creates a new configuration with default values
func NewConfig() *Config {
	return &Config{
		Scheme:           types.ED25519,
		ProgressInterval: DefaultProgressInterval,
	}
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.StartsWith != "" && !IsValidHex(c.StartsWith) {
		return ErrInvalidStartsWith
	}
	if c.EndsWith != "" && !IsValidHex(c.EndsWith) {
		return ErrInvalidEndsWith
	}
	if c.Cores < 0 {
		return ErrInvalidCores
	}
	if c.ProgressInterval < 0 {
		return ErrInvalidInterval
	}
	return nil
}

// GetTargetDescription returns a human-readable description of the target
func (c *Config) GetTargetDescription() string {
	var parts []string
	if c.StartsWith != "" {
		parts = append(parts, "prefix: "+c.StartsWith)
	}
	if c.EndsWith != "" {
		parts = append(parts, "suffix: "+c.EndsWith)
	}
	if len(parts) == 0 {
		return "any address"
	}
	desc := strings.Join(parts, ", ")
	if c.IgnoreCase {
		desc += " (case-insensitive)"
	}
	return desc
}

// SearchConfig converts the validated configuration into the immutable
// search configuration. Pattern hex prefixes are removed here so the matcher
// compares bare hex on both sides.
func (c *Config) SearchConfig() types.SearchConfig {
	return types.SearchConfig{
		Pattern: types.Pattern{
			StartsWith: trimHexPrefix(c.StartsWith),
			EndsWith:   trimHexPrefix(c.EndsWith),
			IgnoreCase: c.IgnoreCase,
		},
		Scheme:           c.Scheme,
		CoreLimit:        c.Cores,
		MaxAttempts:      c.MaxAttempts,
		ProgressInterval: c.ProgressInterval,
	}
}

// IsValidHex reports whether s is a non-empty hex string, with or without 0x.
func IsValidHex(s string) bool {
	s = trimHexPrefix(s)
	if s == "" {
		return false
	}
	for _, c := range s {
		switch {
		case c >= '0' && c <= '9', c >= 'a' && c <= 'f', c >= 'A' && c <= 'F':
		default:
			return false
		}
	}
	return true
}

func trimHexPrefix(s string) string {
	return strings.TrimPrefix(s, "0x")
}
