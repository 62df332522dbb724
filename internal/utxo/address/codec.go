// Package address encodes hashed keys and scripts into network specific address strings.
package address

import (
	"fmt"

	"github.com/btcsuite/btcd/btcutil/base58"
	"github.com/btcsuite/btcd/btcutil/bech32"
	"github.com/goodnatureofminers/blockinsight7000-indexer/internal/utxo/coinparams"
	"github.com/goodnatureofminers/blockinsight7000-indexer/internal/utxo/hashing"
)

const witnessVersion0 = 0x00

// Codec renders addresses with the version bytes and prefix of a single network.
type Codec struct {
	p2pkhVersion byte
	p2shVersion  byte
	bech32Prefix string
}

// NewCodec builds a Codec for params.
func NewCodec(params coinparams.Params) *Codec {
	return &Codec{
		p2pkhVersion: params.P2PKHVersion,
		p2shVersion:  params.P2SHVersion,
		bech32Prefix: params.Bech32Prefix,
	}
}

// PubKeyHash encodes a hash160 of a public key.
func (c *Codec) PubKeyHash(hash []byte) string {
	return Base58Check(c.p2pkhVersion, hash)
}

// ScriptHash encodes a hash160 of a redeem script.
func (c *Codec) ScriptHash(hash []byte) string {
	return Base58Check(c.p2shVersion, hash)
}

// PubKey hashes a raw public key and encodes it as a pay-to-pubkey-hash address.
func (c *Codec) PubKey(pubKey []byte) string {
	hash := hashing.Hash160(pubKey)
	return c.PubKeyHash(hash[:])
}

// WitnessV0 encodes a version 0 witness program (20 or 32 bytes).
func (c *Codec) WitnessV0(program []byte) (string, error) {
	return Bech32(c.bech32Prefix, program)
}

// Base58Check prepends version, appends the first four bytes of the double SHA-256 and encodes.
func Base58Check(version byte, payload []byte) string {
	return base58.CheckEncode(payload, version)
}

// Bech32 encodes a witness v0 program under hrp.
func Bech32(hrp string, program []byte) (string, error) {
	conv, err := bech32.ConvertBits(program, 8, 5, true)
	if err != nil {
		return "", fmt.Errorf("convert witness program: %w", err)
	}
	data := make([]byte, 0, len(conv)+1)
	data = append(data, witnessVersion0)
	data = append(data, conv...)
	encoded, err := bech32.Encode(hrp, data)
	if err != nil {
		return "", fmt.Errorf("bech32 encode: %w", err)
	}
	return encoded, nil
}
