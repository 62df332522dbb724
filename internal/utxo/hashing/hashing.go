// Package hashing provides the digest primitives and hex renderings used for block and transaction identifiers.
package hashing

import (
	"encoding/hex"
	"fmt"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"golang.org/x/crypto/ripemd160" //nolint:staticcheck // hash160 is defined over ripemd160
)

// Sha256 returns a single SHA-256 digest.
func Sha256(b []byte) [32]byte {
	return chainhash.HashH(b)
}

// DoubleSha256 returns sha256(sha256(b)).
func DoubleSha256(b []byte) [32]byte {
	return chainhash.DoubleHashH(b)
}

// Ripemd160 returns a RIPEMD-160 digest.
func Ripemd160(b []byte) [20]byte {
	h := ripemd160.New()
	_, _ = h.Write(b)
	var out [20]byte
	copy(out[:], h.Sum(nil))
	return out
}

// Hash160 returns ripemd160(sha256(b)), the digest embedded in pay-to-hash scripts.
func Hash160(b []byte) [20]byte {
	sum := Sha256(b)
	return Ripemd160(sum[:])
}

// ToHex renders bytes in the given order as lowercase hex.
func ToHex(b []byte) string {
	return hex.EncodeToString(b)
}

// ToReverseHex renders bytes in reverse order, the display convention for block and tx hashes.
func ToReverseHex(b []byte) string {
	return hex.EncodeToString(reversed(b))
}

// FromReverseHex parses a reverse-hex string back to internal byte order.
func FromReverseHex(s string) ([]byte, error) {
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("decode hex: %w", err)
	}
	return reversed(b), nil
}

func reversed(b []byte) []byte {
	out := make([]byte, len(b))
	for i := range b {
		out[len(b)-1-i] = b[i]
	}
	return out
}
