package types

import (
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/require"
)

var _ pflag.Value = (*Scheme)(nil)

func TestParseScheme(t *testing.T) {
	for _, s := range Schemes {
		parsed, err := ParseScheme(s.String())
		require.NoError(t, err)
		require.Equal(t, s, parsed)
	}

	s, err := ParseScheme(" Secp256K1 ")
	require.NoError(t, err)
	require.Equal(t, Secp256k1, s)

	_, err = ParseScheme("unknown")
	require.ErrorIs(t, err, ErrInvalidScheme)
	require.Contains(t, err.Error(), "unknown")
}

func TestSchemeFlags(t *testing.T) {
	require.Equal(t, byte(0x00), ED25519.Flag())
	require.Equal(t, byte(0x01), Secp256k1.Flag())
	require.Equal(t, byte(0x02), Secp256r1.Flag())
	require.Equal(t, "scheme(7)", Scheme(7).String())
}

func TestSchemeFlagValue(t *testing.T) {
	s := ED25519
	require.NoError(t, s.Set("secp256r1"))
	require.Equal(t, Secp256r1, s)
	require.Equal(t, "scheme", s.Type())

	require.ErrorIs(t, s.Set("dsa"), ErrInvalidScheme)
	require.Equal(t, Secp256r1, s, "failed Set leaves the value untouched")

	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.Var(&s, "scheme", "")
	require.NoError(t, fs.Parse([]string{"--scheme", "ed25519"}))
	require.Equal(t, ED25519, s)
}
