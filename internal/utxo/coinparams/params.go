// Package coinparams holds the per-network constants needed to frame block files and encode addresses.
package coinparams

import (
	"encoding/binary"
	"fmt"
	"strings"

	"github.com/btcsuite/btcd/chaincfg"
	"github.com/goodnatureofminers/blockinsight7000-indexer/internal/utxo/model"
)

// Params describes one coin network.
type Params struct {
	Network model.Network
	// Magic is the record delimiter as it appears on disk.
	Magic [4]byte
	// TestnetMagic is accepted as a second delimiter; zero value disables it.
	TestnetMagic [4]byte
	Bech32Prefix string
	P2PKHVersion byte
	P2SHVersion  byte
}

// HasTestnetMagic reports whether a testnet delimiter is configured.
func (p Params) HasTestnetMagic() bool {
	return p.TestnetMagic != [4]byte{}
}

// FromNetwork derives parameters from the btcd chain definitions.
func FromNetwork(network model.Network) (Params, error) {
	params, err := chainParamsForNetwork(network)
	if err != nil {
		return Params{}, err
	}
	out := fromChainParams(network, params)
	if params.Net == chaincfg.MainNetParams.Net {
		out.TestnetMagic = magicBytes(chaincfg.TestNet3Params)
	}
	return out, nil
}

func fromChainParams(network model.Network, params *chaincfg.Params) Params {
	return Params{
		Network:      network,
		Magic:        magicBytes(*params),
		Bech32Prefix: params.Bech32HRPSegwit,
		P2PKHVersion: params.PubKeyHashAddrID,
		P2SHVersion:  params.ScriptHashAddrID,
	}
}

func magicBytes(params chaincfg.Params) [4]byte {
	var out [4]byte
	binary.LittleEndian.PutUint32(out[:], uint32(params.Net))
	return out
}

func chainParamsForNetwork(network model.Network) (*chaincfg.Params, error) {
	switch strings.ToLower(string(network)) {
	case "main", "mainnet", "bitcoin":
		return &chaincfg.MainNetParams, nil
	case "testnet", "testnet3":
		return &chaincfg.TestNet3Params, nil
	case "regtest":
		return &chaincfg.RegressionNetParams, nil
	case "signet":
		return &chaincfg.SigNetParams, nil
	default:
		return nil, fmt.Errorf("unsupported network %q", network)
	}
}
