package crypto

import (
	"crypto/ecdh"
	"crypto/ed25519"
	"crypto/hmac"
	"crypto/sha512"
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
)

// Hardened marks a hardened derivation index.
const Hardened uint32 = 0x80000000

// Path is a BIP32 / SLIP-10 derivation path as a list of child indexes.
type Path []uint32

// Default Sui derivation paths, one per signature scheme.
var (
	ED25519Path   = Path{44 | Hardened, 784 | Hardened, 0 | Hardened, 0 | Hardened, 0 | Hardened}
	Secp256k1Path = Path{54 | Hardened, 784 | Hardened, 0 | Hardened, 0, 0}
	Secp256r1Path = Path{74 | Hardened, 784 | Hardened, 0 | Hardened, 0, 0}
)

var (
	ErrNonHardenedIndex = errors.New("ed25519 derivation supports hardened indexes only")
	ErrInvalidChildKey  = errors.New("derived key is not a valid scalar")
)

var (
	ed25519SeedKey = []byte("ed25519 seed")
	bip32SeedKey   = []byte("Bitcoin seed")
)

func (p Path) String() string {
	s := "m"
	for _, i := range p {
		if i&Hardened != 0 {
			s += fmt.Sprintf("/%d'", i&^Hardened)
		} else {
			s += fmt.Sprintf("/%d", i)
		}
	}
	return s
}

func hmacSHA512(key []byte, parts ...[]byte) (il, ir []byte) {
	mac := hmac.New(sha512.New, key)
	for _, p := range parts {
		mac.Write(p)
	}
	sum := mac.Sum(nil)
	return sum[:32], sum[32:]
}

func ser32(i uint32) []byte {
	var b [4]byte
	binary.BigEndian.PutUint32(b[:], i)
	return b[:]
}

// DeriveED25519 derives an ed25519 key from a BIP39 seed following SLIP-10.
func DeriveED25519(seed []byte, path Path) (ed25519.PrivateKey, error) {
	key, chain := hmacSHA512(ed25519SeedKey, seed)
	for _, i := range path {
		if i&Hardened == 0 {
			return nil, fmt.Errorf("%w: %s", ErrNonHardenedIndex, path)
		}
		key, chain = hmacSHA512(chain, []byte{0x00}, key, ser32(i))
	}
	return ed25519.NewKeyFromSeed(key), nil
}

// DeriveSecp256k1 derives a 32-byte secp256k1 private scalar from a BIP39 seed
// following BIP32.
func DeriveSecp256k1(seed []byte, path Path) ([PrivateKeyLen]byte, error) {
	var out [PrivateKeyLen]byte

	il, chain := hmacSHA512(bip32SeedKey, seed)
	var k secp256k1.ModNScalar
	if overflow := k.SetByteSlice(il); overflow || k.IsZero() {
		return out, ErrInvalidChildKey
	}

	for _, i := range path {
		var data []byte
		if i&Hardened != 0 {
			kb := k.Bytes()
			data = append([]byte{0x00}, kb[:]...)
		} else {
			data = secp256k1.NewPrivateKey(&k).PubKey().SerializeCompressed()
		}
		il, ir := hmacSHA512(chain, data, ser32(i))

		var tweak secp256k1.ModNScalar
		if overflow := tweak.SetByteSlice(il); overflow {
			return out, fmt.Errorf("%w at index %d", ErrInvalidChildKey, i)
		}
		k.Add(&tweak)
		if k.IsZero() {
			return out, fmt.Errorf("%w at index %d", ErrInvalidChildKey, i)
		}
		chain = ir
	}

	out = k.Bytes()
	return out, nil
}

// Secp256k1PublicKey returns the 33-byte compressed public key of a private scalar.
func Secp256k1PublicKey(priv []byte) []byte {
	return secp256k1.PrivKeyFromBytes(priv).PubKey().SerializeCompressed()
}

// Secp256r1PublicKey returns the 33-byte compressed P-256 public key of a private scalar.
func Secp256r1PublicKey(priv []byte) ([]byte, error) {
	key, err := ecdh.P256().NewPrivateKey(priv)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidChildKey, err)
	}
	return compressP256(key.PublicKey().Bytes()), nil
}

// compressP256 converts an uncompressed 0x04 || X || Y point to 0x02/0x03 || X.
func compressP256(uncompressed []byte) []byte {
	const coord = 32
	out := make([]byte, 1+coord)
	out[0] = 0x02 | (uncompressed[2*coord] & 1)
	copy(out[1:], uncompressed[1:1+coord])
	return out
}
