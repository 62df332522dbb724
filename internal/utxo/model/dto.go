package model

// Outpoint identifies a single transaction output.
type Outpoint struct {
	TxHash string
	Index  uint32
}

// Spend describes the transaction that consumed an outpoint.
type Spend struct {
	BlockHash   string
	TxHash      string
	Unconfirmed bool
}

// AddressTxo is an output paying to an address, as stored under the address prefix.
type AddressTxo struct {
	TxHash      string
	OutputIndex uint32
	Height      uint64
	Value       uint64
	Spend       *Spend
	Unconfirmed bool
}

// BlockInfo is header level block metadata read back from the index and the block file.
type BlockInfo struct {
	Height     uint64
	Hash       string
	PrevHash   string
	MerkleRoot string
	Version    uint32
	Time       uint32
	Bits       uint32
	Nonce      uint32
	ByteSize   uint32
	TxCount    uint32
	SourceFile string
	FileOffset int64
}

// AddressBalance splits the value held by an address by confirmation state.
type AddressBalance struct {
	Address string
	// Confirmed is the sum of unspent outputs in indexed blocks.
	Confirmed uint64
	// PendingSpent is the part of Confirmed spent by unconfirmed transactions.
	PendingSpent uint64
	// Unconfirmed is the sum of unspent outputs of unconfirmed transactions.
	Unconfirmed uint64
}

// Spendable returns Confirmed minus PendingSpent, plus Unconfirmed when requested.
func (b AddressBalance) Spendable(includeUnconfirmed bool) uint64 {
	total := b.Confirmed - b.PendingSpent
	if includeUnconfirmed {
		total += b.Unconfirmed
	}
	return total
}
