// Package keygen produces candidate Sui keypairs for the grinder.
//
// A Generator is owned by a single worker and is not safe for concurrent use;
// the grinder obtains one per worker from a Factory.
package keygen

import (
	"errors"
	"fmt"
	"hash"

	"github.com/screa/sui-address-grinder/internal/crypto"
	"github.com/screa/sui-address-grinder/pkg/types"
	"github.com/tyler-smith/go-bip39"
)

// EntropyBits is the entropy size of generated mnemonics (12 words).
const EntropyBits = 128

// ErrGeneration wraps every failure of a single generation attempt.
var ErrGeneration = errors.New("key generation failed")

// Generator produces one fresh candidate per call.
type Generator interface {
	Generate(scheme types.Scheme) (types.Candidate, error)
}

// Factory returns a new, independently owned Generator.
type Factory func() Generator

// GeneratorFunc adapts a function to the Generator interface.
type GeneratorFunc func(scheme types.Scheme) (types.Candidate, error)

func (f GeneratorFunc) Generate(scheme types.Scheme) (types.Candidate, error) {
	return f(scheme)
}

// SuiGenerator derives keypairs from random BIP39 mnemonics the same way the
// Sui keytool does, so a found mnemonic can be imported into any Sui wallet.
type SuiGenerator struct {
	hasher  hash.Hash
	addrBuf [crypto.AddressLen]byte
	entropy func(bits int) ([]byte, error)
}

// NewSuiGenerator creates a generator with its own hasher and buffers.
func NewSuiGenerator() *SuiGenerator {
	return &SuiGenerator{
		hasher:  crypto.NewAddressHasher(),
		entropy: bip39.NewEntropy,
	}
}

// NewFactory returns a Factory producing SuiGenerators.
func NewFactory() Factory {
	return func() Generator { return NewSuiGenerator() }
}

// Generate creates a random mnemonic and derives its candidate.
func (g *SuiGenerator) Generate(scheme types.Scheme) (types.Candidate, error) {
	entropy, err := g.entropy(EntropyBits)
	if err != nil {
		return types.Candidate{}, fmt.Errorf("%w: read entropy: %w", ErrGeneration, err)
	}
	mnemonic, err := bip39.NewMnemonic(entropy)
	if err != nil {
		return types.Candidate{}, fmt.Errorf("%w: build mnemonic: %w", ErrGeneration, err)
	}
	return g.FromMnemonic(scheme, mnemonic)
}

// FromMnemonic derives the candidate for a known mnemonic on the scheme's
// default derivation path.
func (g *SuiGenerator) FromMnemonic(scheme types.Scheme, mnemonic string) (types.Candidate, error) {
	seed := bip39.NewSeed(mnemonic, "")

	var (
		priv []byte
		pub  []byte
	)
	switch scheme {
	case types.ED25519:
		key, err := crypto.DeriveED25519(seed, crypto.ED25519Path)
		if err != nil {
			return types.Candidate{}, fmt.Errorf("%w: %w", ErrGeneration, err)
		}
		priv = key.Seed()
		pub = key[32:]
	case types.Secp256k1:
		key, err := crypto.DeriveSecp256k1(seed, crypto.Secp256k1Path)
		if err != nil {
			return types.Candidate{}, fmt.Errorf("%w: %w", ErrGeneration, err)
		}
		priv = key[:]
		pub = crypto.Secp256k1PublicKey(priv)
	case types.Secp256r1:
		// Sui derives r1 keys with the secp256k1 BIP32 arithmetic and reads the
		// resulting scalar as a P-256 key.
		key, err := crypto.DeriveSecp256k1(seed, crypto.Secp256r1Path)
		if err != nil {
			return types.Candidate{}, fmt.Errorf("%w: %w", ErrGeneration, err)
		}
		priv = key[:]
		if pub, err = crypto.Secp256r1PublicKey(priv); err != nil {
			return types.Candidate{}, fmt.Errorf("%w: %w", ErrGeneration, err)
		}
	default:
		return types.Candidate{}, fmt.Errorf("%w: %w: %s", ErrGeneration, types.ErrInvalidScheme, scheme)
	}

	encoded, err := crypto.EncodePrivateKey(scheme.Flag(), priv)
	if err != nil {
		return types.Candidate{}, fmt.Errorf("%w: %w", ErrGeneration, err)
	}

	return types.Candidate{
		Address: crypto.AddressInto(g.hasher, g.addrBuf[:], scheme.Flag(), pub),
		Secret: types.Secret{
			Mnemonic:   mnemonic,
			PrivateKey: encoded,
		},
	}, nil
}
