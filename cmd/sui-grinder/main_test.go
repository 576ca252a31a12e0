package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/screa/sui-address-grinder/internal/config"
	"github.com/screa/sui-address-grinder/pkg/types"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd := newRootCmd(config.NewConfig())
	cmd.SetArgs(args)
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	err := cmd.ExecuteContext(context.Background())
	return stdout.String(), stderr.String(), err
}

func TestInvalidArguments(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		expected error
	}{
		{"starts with", []string{"--starts-with", "xyz"}, config.ErrInvalidStartsWith},
		{"ends with", []string{"--ends-with", "0xzz"}, config.ErrInvalidEndsWith},
		{"cores", []string{"--cores", "-2"}, config.ErrInvalidCores},
		{"interval", []string{"--progress-interval", "-1s"}, config.ErrInvalidInterval},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			chdir(t, t.TempDir())
			_, _, err := execute(t, tt.args...)
			require.ErrorIs(t, err, tt.expected)
		})
	}

	t.Run("scheme", func(t *testing.T) {
		_, _, err := execute(t, "--scheme", "rsa")
		require.ErrorContains(t, err, types.ErrInvalidScheme.Error())
	})
}

func TestGrind(t *testing.T) {
	if testing.Short() {
		t.Skip("derives real keys")
	}
	chdir(t, t.TempDir())

	stdout, stderr, err := execute(t,
		"--starts-with", "0x0", "--cores", "2", "--scheme", "secp256k1",
		"--progress-interval", "0", "--no-color")
	require.NoError(t, err)

	require.Contains(t, stdout, "Address:\t0x0")
	require.Contains(t, stdout, "Private key:\tsuiprivkey1")
	require.Contains(t, stderr, "found match")
	require.Contains(t, stderr, "run=")
}

func TestGrindExplicitConfigFile(t *testing.T) {
	chdir(t, t.TempDir())
	_, _, err := execute(t, "--config", filepath.Join(t.TempDir(), "missing.yaml"))
	require.ErrorContains(t, err, "load config")
}

func TestGrindUsesLocalConfigFile(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "sui-grinder.yaml"), []byte("cores: -3\n"), 0o600))

	_, _, err := execute(t)
	require.ErrorIs(t, err, config.ErrInvalidCores)

	// an explicit flag overrides the file
	_, _, err = execute(t, "--cores", "1", "--ends-with", "zz")
	require.ErrorIs(t, err, config.ErrInvalidEndsWith)
}

func TestPrintSolution(t *testing.T) {
	var buf bytes.Buffer
	printSolution(&buf, &types.Solution{Candidate: types.Candidate{
		Address: "0xabc",
		Secret:  types.Secret{Mnemonic: "word word", PrivateKey: "suiprivkey1xyz"},
	}}, false)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Equal(t, []string{
		separator,
		"Address:\t0xabc",
		"Seed phrase:\tword word",
		"Private key:\tsuiprivkey1xyz",
		separator,
	}, lines)
}

func TestVersion(t *testing.T) {
	stdout, _, err := execute(t, "version")
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(stdout, "sui-grinder"))
}
