package blockfile

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"os"
	"sync"

	"github.com/goodnatureofminers/blockinsight7000-indexer/internal/utxo/hashing"
	"github.com/goodnatureofminers/blockinsight7000-indexer/internal/utxo/model"
)

// Reader decodes blocks from block files, keeping file handles open between calls.
type Reader struct {
	mu    sync.Mutex
	files map[string]*os.File
}

// NewReader creates a Reader with no open files.
func NewReader() *Reader {
	return &Reader{files: make(map[string]*os.File)}
}

// ReadBlock decodes the block whose header starts at offset in path.
// With headerOnly set the transactions are not read.
func (r *Reader) ReadBlock(path string, offset int64, height uint64, headerOnly bool) (model.Block, error) {
	f, err := r.file(path)
	if err != nil {
		return model.Block{}, err
	}

	var sizeBuf [blockSizeLength]byte
	if _, err = f.ReadAt(sizeBuf[:], offset-blockSizeLength); err != nil {
		return model.Block{}, fmt.Errorf("read block size at %s:%d: %w", path, offset, err)
	}
	size := binary.LittleEndian.Uint32(sizeBuf[:])
	if size < headerSize {
		return model.Block{}, fmt.Errorf("block size %d at %s:%d: %w", size, path, offset, ErrTruncatedInput)
	}

	readLen := int64(size)
	if headerOnly {
		readLen = headerSize
	}
	raw := make([]byte, readLen)
	if _, err = f.ReadAt(raw, offset); err != nil {
		return model.Block{}, fmt.Errorf("read block at %s:%d: %w", path, offset, err)
	}

	block, err := DecodeBlock(raw, headerOnly)
	if err != nil {
		return model.Block{}, fmt.Errorf("decode block at %s:%d: %w", path, offset, err)
	}
	block.Height = height
	block.ByteSize = size
	block.SourceFile = path
	block.FileOffset = offset
	for i := range block.Transactions {
		block.Transactions[i].FileOffset += offset
	}
	return block, nil
}

// Close closes every cached file handle.
func (r *Reader) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	var firstErr error
	for path, f := range r.files {
		if err := f.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
		delete(r.files, path)
	}
	return firstErr
}

func (r *Reader) file(path string) (*os.File, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if f, ok := r.files[path]; ok {
		return f, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open block file: %w", err)
	}
	r.files[path] = f
	return f, nil
}

// DecodeBlock decodes a serialized block. Transaction offsets are relative to raw.
func DecodeBlock(raw []byte, headerOnly bool) (model.Block, error) {
	reader, err := NewByteReader(bytes.NewReader(raw))
	if err != nil {
		return model.Block{}, err
	}
	block, err := readHeader(reader)
	if err != nil {
		return model.Block{}, err
	}
	if headerOnly {
		return block, nil
	}

	count, err := reader.readCount()
	if err != nil {
		return model.Block{}, fmt.Errorf("transaction count: %w", err)
	}
	block.Transactions = make([]model.Transaction, 0, count)
	for i := 0; i < count; i++ {
		tx, err := ReadTransaction(reader)
		if err != nil {
			return model.Block{}, fmt.Errorf("transaction %d: %w", i, err)
		}
		block.Transactions = append(block.Transactions, tx)
	}
	return block, nil
}

func readHeader(r *ByteReader) (model.Block, error) {
	start := r.Position()
	var (
		block model.Block
		err   error
	)
	if block.Version, err = ReadFixed[uint32](r); err != nil {
		return block, err
	}
	prev, err := r.ReadHash32()
	if err != nil {
		return block, err
	}
	merkle, err := r.ReadHash32()
	if err != nil {
		return block, err
	}
	if block.Time, err = ReadFixed[uint32](r); err != nil {
		return block, err
	}
	if block.Bits, err = ReadFixed[uint32](r); err != nil {
		return block, err
	}
	if block.Nonce, err = ReadFixed[uint32](r); err != nil {
		return block, err
	}
	header, err := r.ReadRange(start, r.Position())
	if err != nil {
		return block, err
	}
	hash := hashing.DoubleSha256(header)
	block.Hash = hashing.ToReverseHex(hash[:])
	block.PrevHash = hashing.ToReverseHex(prev[:])
	block.MerkleRoot = hashing.ToReverseHex(merkle[:])
	return block, nil
}

// DecodeTransaction decodes a single serialized transaction.
func DecodeTransaction(raw []byte) (model.Transaction, error) {
	reader, err := NewByteReader(bytes.NewReader(raw))
	if err != nil {
		return model.Transaction{}, err
	}
	tx, err := ReadTransaction(reader)
	if err != nil {
		return model.Transaction{}, err
	}
	if reader.Remaining() != 0 {
		return model.Transaction{}, fmt.Errorf("%d trailing bytes after transaction", reader.Remaining())
	}
	return tx, nil
}

// ReadTransaction decodes the transaction at the cursor. Hash covers the bytes as they
// appear in the source with the witness section cut out; WitnessHash covers all of them.
func ReadTransaction(r *ByteReader) (model.Transaction, error) {
	tx := model.Transaction{FileOffset: r.Position()}
	start := r.Position()

	var err error
	if tx.Version, err = ReadFixed[uint32](r); err != nil {
		return tx, err
	}

	segwit, err := readSegwitMarker(r)
	if err != nil {
		return tx, err
	}

	bodyStart := r.Position()
	if tx.Inputs, err = readInputs(r); err != nil {
		return tx, fmt.Errorf("inputs: %w", err)
	}
	if tx.Outputs, err = readOutputs(r); err != nil {
		return tx, fmt.Errorf("outputs: %w", err)
	}
	bodyEnd := r.Position()

	if segwit {
		for i := range tx.Inputs {
			if tx.Inputs[i].Witness, err = readWitness(r); err != nil {
				return tx, fmt.Errorf("witness %d: %w", i, err)
			}
		}
	}
	if tx.LockTime, err = ReadFixed[uint32](r); err != nil {
		return tx, err
	}
	end := r.Position()

	legacy, err := legacyBytes(r, start, bodyStart, bodyEnd, end)
	if err != nil {
		return tx, err
	}
	hash := hashing.DoubleSha256(legacy)
	tx.Hash = hashing.ToReverseHex(hash[:])
	tx.WitnessHash = tx.Hash
	if segwit {
		full, err := r.ReadRange(start, end)
		if err != nil {
			return tx, err
		}
		witnessHash := hashing.DoubleSha256(full)
		tx.WitnessHash = hashing.ToReverseHex(witnessHash[:])
	}
	return tx, nil
}

// readSegwitMarker consumes the marker and flag when present. A zero flag byte
// means the zero was an empty input count, so the cursor is rewound.
func readSegwitMarker(r *ByteReader) (bool, error) {
	pos := r.Position()
	peek, err := r.ReadFull(2)
	if err != nil {
		return false, err
	}
	if peek[0] == 0x00 && peek[1] != 0x00 {
		return true, nil
	}
	return false, r.Seek(pos)
}

func legacyBytes(r *ByteReader, start, bodyStart, bodyEnd, end int64) ([]byte, error) {
	version, err := r.ReadRange(start, start+4)
	if err != nil {
		return nil, err
	}
	body, err := r.ReadRange(bodyStart, bodyEnd)
	if err != nil {
		return nil, err
	}
	lockTime, err := r.ReadRange(end-4, end)
	if err != nil {
		return nil, err
	}
	out := make([]byte, 0, len(version)+len(body)+len(lockTime))
	out = append(out, version...)
	out = append(out, body...)
	return append(out, lockTime...), nil
}

func readInputs(r *ByteReader) ([]model.TransactionInput, error) {
	count, err := r.readCount()
	if err != nil {
		return nil, err
	}
	inputs := make([]model.TransactionInput, 0, count)
	for i := 0; i < count; i++ {
		in := model.TransactionInput{Index: uint32(i)}
		prev, err := r.ReadHash32()
		if err != nil {
			return nil, err
		}
		in.PrevTxHash = hashing.ToReverseHex(prev[:])
		if in.PrevOutputIndex, err = ReadFixed[uint32](r); err != nil {
			return nil, err
		}
		if in.Script, err = r.ReadLengthPrefixedBytes(); err != nil {
			return nil, err
		}
		if in.Sequence, err = ReadFixed[uint32](r); err != nil {
			return nil, err
		}
		in.Coinbase = i == 0 && prev == [32]byte{} && in.PrevOutputIndex == model.CoinbaseOutputIndex
		inputs = append(inputs, in)
	}
	return inputs, nil
}

func readOutputs(r *ByteReader) ([]model.TransactionOutput, error) {
	count, err := r.readCount()
	if err != nil {
		return nil, err
	}
	outputs := make([]model.TransactionOutput, 0, count)
	for i := 0; i < count; i++ {
		out := model.TransactionOutput{Index: uint32(i)}
		if out.Value, err = ReadFixed[uint64](r); err != nil {
			return nil, err
		}
		if out.Script, err = r.ReadLengthPrefixedBytes(); err != nil {
			return nil, err
		}
		outputs = append(outputs, out)
	}
	return outputs, nil
}

func readWitness(r *ByteReader) ([][]byte, error) {
	count, err := r.readCount()
	if err != nil {
		return nil, err
	}
	items := make([][]byte, 0, count)
	for i := 0; i < count; i++ {
		item, err := r.ReadLengthPrefixedBytes()
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}
