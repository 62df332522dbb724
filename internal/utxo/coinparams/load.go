package coinparams

import (
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/goodnatureofminers/blockinsight7000-indexer/internal/utxo/model"
	"github.com/pelletier/go-toml/v2"
)

type fileParams struct {
	Magic        string `json:"magic" toml:"magic"`
	MagicTestnet string `json:"magic_testnet" toml:"magic_testnet"`
	PrefixBech32 string `json:"prefix_bech32" toml:"prefix_bech32"`
	VersionP2SH  string `json:"version_p2sh" toml:"version_p2sh"`
	VersionP2PKH string `json:"version_p2pkh" toml:"version_p2pkh"`
}

// Load reads coin parameters from a .json or .toml file. Byte values are hex strings.
func Load(path string, network model.Network) (Params, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Params{}, fmt.Errorf("read coin params: %w", err)
	}

	var fp fileParams
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		err = json.Unmarshal(raw, &fp)
	case ".toml":
		err = toml.Unmarshal(raw, &fp)
	default:
		return Params{}, fmt.Errorf("unsupported coin params format %q", filepath.Ext(path))
	}
	if err != nil {
		return Params{}, fmt.Errorf("decode coin params %s: %w", path, err)
	}
	return fp.params(network)
}

func (fp fileParams) params(network model.Network) (Params, error) {
	if fp.Magic == "" {
		return Params{}, errors.New("magic is required")
	}
	if fp.PrefixBech32 == "" {
		return Params{}, errors.New("prefix_bech32 is required")
	}

	out := Params{Network: network, Bech32Prefix: fp.PrefixBech32}
	var err error
	if out.Magic, err = parseMagic(fp.Magic); err != nil {
		return Params{}, fmt.Errorf("magic: %w", err)
	}
	if fp.MagicTestnet != "" {
		if out.TestnetMagic, err = parseMagic(fp.MagicTestnet); err != nil {
			return Params{}, fmt.Errorf("magic_testnet: %w", err)
		}
	}
	if out.P2SHVersion, err = parseVersion(fp.VersionP2SH); err != nil {
		return Params{}, fmt.Errorf("version_p2sh: %w", err)
	}
	if out.P2PKHVersion, err = parseVersion(fp.VersionP2PKH); err != nil {
		return Params{}, fmt.Errorf("version_p2pkh: %w", err)
	}
	return out, nil
}

func parseMagic(s string) ([4]byte, error) {
	var out [4]byte
	b, err := hex.DecodeString(strings.TrimPrefix(s, "0x"))
	if err != nil {
		return out, err
	}
	if len(b) != len(out) {
		return out, fmt.Errorf("want %d bytes, got %d", len(out), len(b))
	}
	copy(out[:], b)
	return out, nil
}

func parseVersion(s string) (byte, error) {
	if s == "" {
		return 0, errors.New("value is required")
	}
	v, err := strconv.ParseUint(strings.TrimPrefix(s, "0x"), 16, 8)
	if err != nil {
		return 0, err
	}
	return byte(v), nil
}
