package model

// ZeroHash is the reverse-hex rendering of 32 zero bytes.
const ZeroHash = "0000000000000000000000000000000000000000000000000000000000000000"

// CoinbaseOutputIndex is the previous output index carried by a coinbase input.
const CoinbaseOutputIndex uint32 = 0xFFFFFFFF

// Transaction is a decoded transaction with both identifiers.
type Transaction struct {
	Version     uint32
	LockTime    uint32
	Hash        string
	WitnessHash string
	FileOffset  int64
	Inputs      []TransactionInput
	Outputs     []TransactionOutput
}

// IsSegwit reports whether the transaction was serialized with witness data.
func (t Transaction) IsSegwit() bool {
	return t.Hash != t.WitnessHash
}

// TransactionInput references a previous transaction output.
type TransactionInput struct {
	Index           uint32
	PrevTxHash      string
	PrevOutputIndex uint32
	Sequence        uint32
	Script          []byte
	Witness         [][]byte
	Coinbase        bool
}

// TransactionOutput represents an output produced by a transaction.
type TransactionOutput struct {
	Index  uint32
	Value  uint64
	Script []byte
}
