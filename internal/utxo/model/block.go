// Package model defines domain models for block file indexing.
package model

// ScannedBlock is a block record located by a scan pass. Only the header has been read.
type ScannedBlock struct {
	SourceFile string
	// FileOffset points at the first header byte, right after the size field.
	FileOffset int64
	ByteSize   uint32
	Hash       string
	PrevHash   string
	// Testnet is set when the record was framed with the testnet magic.
	Testnet bool
}

// Block is a fully decoded block placed at its canonical height.
type Block struct {
	Hash         string
	PrevHash     string
	MerkleRoot   string
	Version      uint32
	Time         uint32
	Bits         uint32
	Nonce        uint32
	Height       uint64
	ByteSize     uint32
	SourceFile   string
	FileOffset   int64
	Transactions []Transaction
}

// IsGenesis reports whether the block links to the all-zero hash.
func (b Block) IsGenesis() bool {
	return b.PrevHash == ZeroHash
}
