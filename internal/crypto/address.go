package crypto

import (
	"encoding/hex"
	"errors"
	"fmt"
	"hash"

	"github.com/btcsuite/btcd/btcutil/bech32"
	"golang.org/x/crypto/blake2b"
)

const (
	// AddressLen is the length of a Sui address in bytes (blake2b-256 digest).
	AddressLen = blake2b.Size256

	// PrivateKeyHRP is the bech32 human readable part of exported Sui private keys.
	PrivateKeyHRP = "suiprivkey"

	// PrivateKeyLen is the length of a raw private key for every supported scheme.
	PrivateKeyLen = 32
)

var ErrPrivateKeyLength = errors.New("private key must be 32 bytes")

// NewAddressHasher returns a blake2b-256 hasher suitable for AddressInto.
func NewAddressHasher() hash.Hash {
	h, err := blake2b.New256(nil)
	if err != nil {
		// only fails for keys longer than 64 bytes
		panic(err)
	}
	return h
}

// AddressInto hashes flag || pubkey with the provided hasher and returns the
// 0x-prefixed lowercase hex address. buf must hold at least AddressLen bytes.
// Reusing hasher and buf keeps the hot path free of per-candidate allocations
// other than the returned string.
func AddressInto(hasher hash.Hash, buf []byte, flag byte, pubkey []byte) string {
	hasher.Reset()
	hasher.Write([]byte{flag})
	hasher.Write(pubkey)
	sum := hasher.Sum(buf[:0])

	var out [2 + 2*AddressLen]byte
	out[0], out[1] = '0', 'x'
	hex.Encode(out[2:], sum[:AddressLen])
	return string(out[:])
}

// Address computes the Sui address for a public key of the given scheme flag.
func Address(flag byte, pubkey []byte) string {
	var buf [AddressLen]byte
	return AddressInto(NewAddressHasher(), buf[:], flag, pubkey)
}

// EncodePrivateKey encodes flag || key as a bech32 "suiprivkey1..." string.
func EncodePrivateKey(flag byte, key []byte) (string, error) {
	if len(key) != PrivateKeyLen {
		return "", ErrPrivateKeyLength
	}
	payload := make([]byte, 0, 1+PrivateKeyLen)
	payload = append(payload, flag)
	payload = append(payload, key...)

	conv, err := bech32.ConvertBits(payload, 8, 5, true)
	if err != nil {
		return "", fmt.Errorf("convert private key bits: %w", err)
	}
	return bech32.Encode(PrivateKeyHRP, conv)
}

// DecodePrivateKey reverses EncodePrivateKey.
func DecodePrivateKey(s string) (byte, []byte, error) {
	hrp, data, err := bech32.Decode(s)
	if err != nil {
		return 0, nil, fmt.Errorf("decode private key: %w", err)
	}
	if hrp != PrivateKeyHRP {
		return 0, nil, fmt.Errorf("unexpected private key prefix %q", hrp)
	}
	payload, err := bech32.ConvertBits(data, 5, 8, false)
	if err != nil {
		return 0, nil, fmt.Errorf("convert private key bits: %w", err)
	}
	if len(payload) != 1+PrivateKeyLen {
		return 0, nil, ErrPrivateKeyLength
	}
	return payload[0], payload[1:], nil
}
