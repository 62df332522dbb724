package script

// Class is the output script template a script matched.
type Class int

const (
	Unrecognized Class = iota
	PubKeyHash
	PubKey
	WitnessPubKeyHash
	WitnessScriptHash
	NullData
	ScriptHash
	NonStandard
	Multisig
)

var classNames = map[Class]string{
	Unrecognized:      "unrecognized",
	PubKeyHash:        "pubkeyhash",
	PubKey:            "pubkey",
	WitnessPubKeyHash: "witness_v0_keyhash",
	WitnessScriptHash: "witness_v0_scripthash",
	NullData:          "nulldata",
	ScriptHash:        "scripthash",
	NonStandard:       "nonstandard",
	Multisig:          "multisig",
}

func (c Class) String() string {
	if name, ok := classNames[c]; ok {
		return name
	}
	return "unknown"
}

// MultisigPolicy is recorded for scripts ending in OP_CHECKMULTISIG.
type MultisigPolicy struct {
	Required int
	PubKeys  int
}

// Resolution is the outcome of resolving one output script.
type Resolution struct {
	// Class is the first template matched; Multisig when only the multisig walk matched.
	Class     Class
	Addresses []string
	Multisig  *MultisigPolicy
}
