package program

import (
	"crypto/ed25519"
	"encoding/hex"
	"fmt"
	"io"
)

// KeySize is the byte length of a key.
const KeySize = 32

// Key identifies an account or an owner.
type Key [KeySize]byte

// String returns the hex representation of the key.
func (k Key) String() string {
	return hex.EncodeToString(k[:])
}

// IsZero returns whether the key is unset.
func (k Key) IsZero() bool {
	return k == Key{}
}

// ParseKey parses a hex encoded key.
func ParseKey(str string) (Key, error) {
	// decode
	buf, err := hex.DecodeString(str)
	if err != nil {
		return Key{}, fmt.Errorf("invalid key %q: %w", str, err)
	}

	// check length
	if len(buf) != KeySize {
		return Key{}, fmt.Errorf("invalid key %q: expected %d bytes, got %d", str, KeySize, len(buf))
	}

	// copy
	var key Key
	copy(key[:], buf)

	return key, nil
}

// GenerateKey creates a new ed25519 identity and returns its public key.
func GenerateKey(rand io.Reader) (Key, ed25519.PrivateKey, error) {
	// generate
	pub, priv, err := ed25519.GenerateKey(rand)
	if err != nil {
		return Key{}, nil, err
	}

	// copy
	var key Key
	copy(key[:], pub)

	return key, priv, nil
}
