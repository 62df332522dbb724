package blockfile

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"github.com/goodnatureofminers/blockinsight7000-indexer/internal/utxo/coinparams"
	"github.com/goodnatureofminers/blockinsight7000-indexer/internal/utxo/hashing"
	"github.com/goodnatureofminers/blockinsight7000-indexer/internal/utxo/model"
	"go.uber.org/zap"
)

const (
	magicSize       = 4
	headerSize      = 80
	prevHashOffset  = 4
	merkleOffset    = 36
	blockSizeLength = 4
)

// Scanner walks the block records of one file reading only their headers.
// The zero state is closed; Open, then alternate MoveNext and ScanNextBlock.
type Scanner struct {
	path    string
	params  coinparams.Params
	file    *os.File
	reader  *ByteReader
	testnet bool
	ready   bool
}

// NewScanner creates a closed scanner for path.
func NewScanner(path string, params coinparams.Params) *Scanner {
	return &Scanner{path: path, params: params}
}

// Open opens the file. It reports false if the file cannot be read.
func (s *Scanner) Open() bool {
	f, err := os.Open(s.path)
	if err != nil {
		return false
	}
	reader, err := NewByteReader(f)
	if err != nil {
		_ = f.Close()
		return false
	}
	s.file = f
	s.reader = reader
	return true
}

// Close releases the file.
func (s *Scanner) Close() error {
	if s.file == nil {
		return nil
	}
	err := s.file.Close()
	s.file = nil
	s.reader = nil
	s.ready = false
	return err
}

// MoveNext reads the next magic. It reports false at end of file or on a magic mismatch.
func (s *Scanner) MoveNext() bool {
	s.ready = false
	if s.reader == nil {
		return false
	}
	magic, err := s.reader.ReadFull(magicSize)
	if err != nil {
		return false
	}
	switch {
	case bytes.Equal(magic, s.params.Magic[:]):
		s.testnet = false
	case s.params.HasTestnetMagic() && bytes.Equal(magic, s.params.TestnetMagic[:]):
		s.testnet = true
	default:
		return false
	}
	s.ready = true
	return true
}

// ScanNextBlock reads the record framed by the magic just consumed and skips its body.
func (s *Scanner) ScanNextBlock() (model.ScannedBlock, error) {
	if !s.ready {
		return model.ScannedBlock{}, errors.New("scan without a preceding magic")
	}
	s.ready = false

	size, err := ReadFixed[uint32](s.reader)
	if err != nil {
		return model.ScannedBlock{}, err
	}
	if size < headerSize {
		return model.ScannedBlock{}, fmt.Errorf("block size %d below header size: %w", size, ErrTruncatedInput)
	}

	offset := s.reader.Position()
	if int64(size) > s.reader.Remaining() {
		return model.ScannedBlock{}, fmt.Errorf("block at %d needs %d bytes: %w", offset, size, ErrTruncatedInput)
	}
	header, err := s.reader.ReadFull(headerSize)
	if err != nil {
		return model.ScannedBlock{}, err
	}
	hash := hashing.DoubleSha256(header)

	if err = s.reader.Skip(int64(size) - headerSize); err != nil {
		return model.ScannedBlock{}, err
	}

	return model.ScannedBlock{
		SourceFile: s.path,
		FileOffset: offset,
		ByteSize:   size,
		Hash:       hashing.ToReverseHex(hash[:]),
		PrevHash:   hashing.ToReverseHex(header[prevHashOffset:merkleOffset]),
		Testnet:    s.testnet,
	}, nil
}

// ScanFile returns every block record in path up to the first unreadable record.
func ScanFile(path string, params coinparams.Params, logger *zap.Logger) ([]model.ScannedBlock, error) {
	s := NewScanner(path, params)
	if !s.Open() {
		return nil, fmt.Errorf("open block file %s", path)
	}
	defer func() {
		_ = s.Close()
	}()

	var blocks []model.ScannedBlock
	for s.MoveNext() {
		block, err := s.ScanNextBlock()
		if err != nil {
			logger.Debug("stop scanning block file", zap.String("file", path), zap.Int("blocks", len(blocks)), zap.Error(err))
			break
		}
		blocks = append(blocks, block)
	}
	return blocks, nil
}
