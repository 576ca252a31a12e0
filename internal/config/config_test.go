package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/screa/sui-address-grinder/pkg/types"
	"github.com/stretchr/testify/require"
)

func TestIsValidHex(t *testing.T) {
	require.True(t, IsValidHex("0x123abc"))
	require.True(t, IsValidHex("123abc"))
	require.True(t, IsValidHex("ABCDEF"))
	require.False(t, IsValidHex("0x123xyz"))
	require.False(t, IsValidHex("123xyz"))
	require.False(t, IsValidHex(""))
	require.False(t, IsValidHex("0x"))
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(*Config)
		expected error
	}{
		{"defaults", func(*Config) {}, nil},
		{"valid patterns", func(c *Config) { c.StartsWith, c.EndsWith = "123", "0xabc" }, nil},
		{"invalid starts with", func(c *Config) { c.StartsWith, c.EndsWith = "xyz", "123" }, ErrInvalidStartsWith},
		{"invalid ends with", func(c *Config) { c.StartsWith, c.EndsWith = "123", "xyz" }, ErrInvalidEndsWith},
		{"bare 0x prefix", func(c *Config) { c.StartsWith = "0x" }, ErrInvalidStartsWith},
		{"negative cores", func(c *Config) { c.Cores = -1 }, ErrInvalidCores},
		{"negative interval", func(c *Config) { c.ProgressInterval = -time.Second }, ErrInvalidInterval},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			cfg := NewConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.expected == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tt.expected)
		})
	}
}

func TestSearchConfig(t *testing.T) {
	cfg := NewConfig()
	cfg.StartsWith = "0xABC"
	cfg.EndsWith = "00"
	cfg.IgnoreCase = true
	cfg.Cores = 4
	cfg.Scheme = types.Secp256r1

	sc := cfg.SearchConfig()
	require.Equal(t, types.Pattern{StartsWith: "ABC", EndsWith: "00", IgnoreCase: true}, sc.Pattern)
	require.Equal(t, 4, sc.CoreLimit)
	require.Equal(t, types.Secp256r1, sc.Scheme)
	require.Equal(t, DefaultProgressInterval, sc.ProgressInterval)
}

func TestGetTargetDescription(t *testing.T) {
	cfg := NewConfig()
	require.Equal(t, "any address", cfg.GetTargetDescription())

	cfg.StartsWith = "dead"
	require.Equal(t, "prefix: dead", cfg.GetTargetDescription())

	cfg.EndsWith = "beef"
	cfg.IgnoreCase = true
	require.Equal(t, "prefix: dead, suffix: beef (case-insensitive)", cfg.GetTargetDescription())
}

func TestLoadAndApply(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sui-grinder.yaml")
	err := os.WriteFile(path, []byte(`
starts_with: "0xcafe"
ends_with: "00"
ignore_case: true
cores: 2
scheme: secp256k1
progress_interval: 10s
`), 0o600)
	require.NoError(t, err)

	fc, found, err := LoadLocal(dir)
	require.NoError(t, err)
	require.Equal(t, path, found)

	cfg := NewConfig()
	cfg.EndsWith = "ff"
	cliSet := map[string]bool{"ends-with": true}
	require.NoError(t, cfg.Apply(fc, func(name string) bool { return cliSet[name] }))

	require.Equal(t, "0xcafe", cfg.StartsWith)
	require.Equal(t, "ff", cfg.EndsWith, "command line wins over the file")
	require.True(t, cfg.IgnoreCase)
	require.Equal(t, 2, cfg.Cores)
	require.Equal(t, types.Secp256k1, cfg.Scheme)
	require.Equal(t, 10*time.Second, cfg.ProgressInterval)
}

func TestApplyInvalidScheme(t *testing.T) {
	bad := "rsa"
	cfg := NewConfig()
	err := cfg.Apply(FileConfig{Scheme: &bad}, func(string) bool { return false })
	require.ErrorIs(t, err, types.ErrInvalidScheme)
}

func TestLoadLocalMissing(t *testing.T) {
	_, _, err := LoadLocal(t.TempDir())
	require.ErrorIs(t, err, ErrNoConfigFile)
}

func TestLoadFileInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("cores: [1"), 0o600))
	_, err := LoadFile(path)
	require.Error(t, err)
}
