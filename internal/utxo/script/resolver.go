// Package script classifies output scripts by byte pattern and extracts the addresses they pay to.
package script

import (
	"github.com/btcsuite/btcd/txscript"
	"github.com/goodnatureofminers/blockinsight7000-indexer/internal/utxo/address"
	"github.com/goodnatureofminers/blockinsight7000-indexer/internal/utxo/hashing"
	"go.uber.org/zap"
)

type matcher func(r *Resolver, script []byte) (Class, []string, bool)

// Order matters only for which Class is reported; every matcher runs.
var matchers = []matcher{
	matchPubKeyHash,
	matchPubKey,
	matchWitnessV0,
	matchNullData,
	matchScriptHash,
	matchNonStandard,
}

// Resolver extracts addresses from output scripts for one network.
type Resolver struct {
	codec  *address.Codec
	logger *zap.Logger
}

// NewResolver builds a Resolver that renders addresses with codec.
func NewResolver(codec *address.Codec, logger *zap.Logger) *Resolver {
	return &Resolver{
		codec:  codec,
		logger: logger.Named("scriptResolver"),
	}
}

// Addresses returns the addresses script pays to. It never fails.
func (r *Resolver) Addresses(script []byte) []string {
	return r.Resolve(script).Addresses
}

// Resolve classifies script. Unmatched scripts are logged and yield no addresses.
func (r *Resolver) Resolve(script []byte) Resolution {
	res := Resolution{Class: Unrecognized}
	matched := false
	for _, m := range matchers {
		class, addrs, ok := m(r, script)
		if !ok {
			continue
		}
		if !matched {
			res.Class = class
			matched = true
		}
		res.Addresses = append(res.Addresses, addrs...)
	}

	if IsMultiSig(script) {
		keys := multisigPubKeys(script)
		if len(keys) > 0 {
			required, _ := RequiredSignatures(script)
			res.Multisig = &MultisigPolicy{Required: required, PubKeys: len(keys)}
			for _, key := range keys {
				res.Addresses = append(res.Addresses, r.codec.PubKey(key))
			}
			if !matched {
				res.Class = Multisig
				matched = true
			}
		}
	}

	if !matched {
		r.logger.Debug("unrecognized output script", zap.String("script", hashing.ToHex(script)))
	}
	return res
}

// IsMultiSig reports whether the script ends in OP_CHECKMULTISIG.
func IsMultiSig(script []byte) bool {
	return len(script) > 0 && script[len(script)-1] == txscript.OP_CHECKMULTISIG
}

// RequiredSignatures decodes the leading OP_N of a multisig script.
func RequiredSignatures(script []byte) (int, bool) {
	if !IsMultiSig(script) {
		return 0, false
	}
	op := script[0]
	if op < txscript.OP_1 || op > txscript.OP_16 {
		return 0, false
	}
	return int(op-txscript.OP_1) + 1, true
}

func isTrailingNop(op byte) bool {
	return op == txscript.OP_NOP || (op >= txscript.OP_NOP1 && op <= txscript.OP_NOP10)
}

func matchPubKeyHash(r *Resolver, s []byte) (Class, []string, bool) {
	if len(s) < 25 || s[0] != txscript.OP_DUP || s[1] != txscript.OP_HASH160 || s[2] != txscript.OP_DATA_20 ||
		s[23] != txscript.OP_EQUALVERIFY {
		return 0, nil, false
	}
	switch {
	case len(s) == 25 && (s[24] == txscript.OP_CHECKSIG || s[24] == txscript.OP_NOP1):
	case len(s) == 26 && s[24] == txscript.OP_CHECKSIG && isTrailingNop(s[25]):
	default:
		return 0, nil, false
	}
	return PubKeyHash, []string{r.codec.PubKeyHash(s[3:23])}, true
}

func matchPubKey(r *Resolver, s []byte) (Class, []string, bool) {
	switch {
	case len(s) == 67 && s[0] == txscript.OP_DATA_65 && s[66] == txscript.OP_CHECKSIG:
		return PubKey, []string{r.codec.PubKey(s[1:66])}, true
	case len(s) == 35 && s[0] == txscript.OP_DATA_33 && s[34] == txscript.OP_CHECKSIG:
		return PubKey, []string{r.codec.PubKey(s[1:34])}, true
	}
	return 0, nil, false
}

func matchWitnessV0(r *Resolver, s []byte) (Class, []string, bool) {
	var class Class
	switch {
	case len(s) == 22 && s[0] == txscript.OP_0 && s[1] == txscript.OP_DATA_20:
		class = WitnessPubKeyHash
	case len(s) == 34 && s[0] == txscript.OP_0 && s[1] == txscript.OP_DATA_32:
		class = WitnessScriptHash
	default:
		return 0, nil, false
	}
	addr, err := r.codec.WitnessV0(s[2:])
	if err != nil {
		r.logger.Warn("encode witness address failed", zap.String("script", hashing.ToHex(s)), zap.Error(err))
		return class, nil, true
	}
	return class, []string{addr}, true
}

func matchNullData(_ *Resolver, s []byte) (Class, []string, bool) {
	if len(s) > 0 && s[0] == txscript.OP_RETURN {
		return NullData, nil, true
	}
	return 0, nil, false
}

func matchScriptHash(r *Resolver, s []byte) (Class, []string, bool) {
	if len(s) == 23 && s[0] == txscript.OP_HASH160 && s[1] == txscript.OP_DATA_20 && s[22] == txscript.OP_EQUAL {
		return ScriptHash, []string{r.codec.ScriptHash(s[2:22])}, true
	}
	return 0, nil, false
}

// matchNonStandard recognizes scripts seen on chain that pay to no derivable address.
func matchNonStandard(_ *Resolver, s []byte) (Class, []string, bool) {
	switch {
	case len(s) == 33 && s[0] == txscript.OP_DATA_32,
		len(s) == 37 && s[0] == txscript.OP_DATA_36,
		len(s) == 24 && s[0] == txscript.OP_DATA_20:
		return NonStandard, nil, true
	case len(s) == 6 && s[0] == txscript.OP_IFDUP && s[1] == txscript.OP_IF && s[2] == txscript.OP_2SWAP &&
		s[3] == txscript.OP_VERIFY && s[4] == txscript.OP_2OVER && s[5] == txscript.OP_DEPTH:
		// broken p2pool payout
		return NonStandard, nil, true
	case len(s) >= 5 && s[0] == txscript.OP_DUP && s[1] == txscript.OP_HASH160 && s[2] == txscript.OP_0 &&
		s[3] == txscript.OP_EQUALVERIFY && s[4] == txscript.OP_CHECKSIG:
		return NonStandard, nil, true
	}
	return 0, nil, false
}

// multisigPubKeys walks the key pushes after the leading OP_N.
func multisigPubKeys(s []byte) [][]byte {
	var keys [][]byte
	pos := 1
	for pos < len(s)-2 {
		switch {
		case s[pos] == txscript.OP_DATA_33 && pos+34 <= len(s):
			keys = append(keys, s[pos+1:pos+34])
			pos += 34
		case s[pos] == txscript.OP_DATA_65 && pos+66 <= len(s):
			keys = append(keys, s[pos+1:pos+66])
			pos += 66
		default:
			return keys
		}
	}
	return keys
}
