package types

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrInvalidScheme is returned when a signature scheme name is not recognised.
var ErrInvalidScheme = errors.New("invalid signature scheme")

// Scheme selects the key algorithm used to derive an address.
// Its numeric value is the Sui signature flag byte.
type Scheme uint8

const (
	ED25519   Scheme = 0x00
	Secp256k1 Scheme = 0x01
	Secp256r1 Scheme = 0x02
)

// Schemes lists every supported scheme in flag order.
var Schemes = []Scheme{ED25519, Secp256k1, Secp256r1}

// ParseScheme converts a scheme name (ed25519, secp256k1, secp256r1) into a Scheme.
func ParseScheme(s string) (Scheme, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "ed25519":
		return ED25519, nil
	case "secp256k1":
		return Secp256k1, nil
	case "secp256r1":
		return Secp256r1, nil
	}
	return 0, fmt.Errorf("%w: %s", ErrInvalidScheme, s)
}

// Flag returns the Sui signature flag prepended to public keys when hashing addresses.
func (s Scheme) Flag() byte {
	return byte(s)
}

func (s Scheme) String() string {
	switch s {
	case ED25519:
		return "ed25519"
	case Secp256k1:
		return "secp256k1"
	case Secp256r1:
		return "secp256r1"
	}
	return fmt.Sprintf("scheme(%d)", uint8(s))
}

// Set implements pflag.Value so a Scheme can be bound directly to a flag.
func (s *Scheme) Set(v string) error {
	parsed, err := ParseScheme(v)
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// Type implements pflag.Value.
func (s *Scheme) Type() string {
	return "scheme"
}

// Pattern describes what a matching address looks like. Empty fields are absent.
type Pattern struct {
	StartsWith string
	EndsWith   string
	IgnoreCase bool
}

// SearchConfig is the immutable configuration of one search run.
// Workers receive it by value.
type SearchConfig struct {
	Pattern Pattern
	Scheme  Scheme

	// CoreLimit keeps only the first CoreLimit enumerated cores. Zero means all.
	CoreLimit int

	// MaxAttempts caps generation attempts per worker. Zero means unbounded.
	MaxAttempts uint64

	// ProgressInterval is the reporter sampling period. Zero disables reporting.
	ProgressInterval time.Duration
}

// Secret holds the key material behind an address.
type Secret struct {
	Mnemonic   string // BIP39 phrase the key was derived from
	PrivateKey string // bech32 "suiprivkey" encoding of flag || private key
}

// Candidate is one generated address and the secret it was derived from.
type Candidate struct {
	Address string
	Secret  Secret
}

// Solution is the first candidate claimed by a worker, with run statistics.
type Solution struct {
	Candidate
	Core     int
	Attempts uint64
	Duration time.Duration
}
