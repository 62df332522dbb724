// Package blockfile scans and decodes the flat block files written by a full node.
package blockfile

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	"github.com/goodnatureofminers/blockinsight7000-indexer/pkg/safe"
)

// ErrTruncatedInput is returned when fewer bytes remain than a read requires.
var ErrTruncatedInput = errors.New("truncated input")

// Fixed is the set of little-endian integers read by ReadFixed.
type Fixed interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64 | ~int32 | ~int64
}

// ByteReader is a sequential cursor over a seekable byte source.
type ByteReader struct {
	src  io.ReadSeeker
	pos  int64
	size int64
}

// NewByteReader wraps src, starting at its current position.
func NewByteReader(src io.ReadSeeker) (*ByteReader, error) {
	pos, err := src.Seek(0, io.SeekCurrent)
	if err != nil {
		return nil, fmt.Errorf("current position: %w", err)
	}
	size, err := src.Seek(0, io.SeekEnd)
	if err != nil {
		return nil, fmt.Errorf("seek end: %w", err)
	}
	if _, err = src.Seek(pos, io.SeekStart); err != nil {
		return nil, fmt.Errorf("restore position: %w", err)
	}
	return &ByteReader{src: src, pos: pos, size: size}, nil
}

// Position returns the absolute offset of the next byte.
func (r *ByteReader) Position() int64 {
	return r.pos
}

// Remaining returns the number of unread bytes.
func (r *ByteReader) Remaining() int64 {
	return r.size - r.pos
}

// Seek moves the cursor to an absolute offset.
func (r *ByteReader) Seek(pos int64) error {
	if pos < 0 || pos > r.size {
		return fmt.Errorf("seek to %d: %w", pos, ErrTruncatedInput)
	}
	if _, err := r.src.Seek(pos, io.SeekStart); err != nil {
		return err
	}
	r.pos = pos
	return nil
}

// Skip advances the cursor by n bytes.
func (r *ByteReader) Skip(n int64) error {
	return r.Seek(r.pos + n)
}

// ReadFull reads exactly n bytes.
func (r *ByteReader) ReadFull(n int) ([]byte, error) {
	if n < 0 || int64(n) > r.Remaining() {
		return nil, ErrTruncatedInput
	}
	buf := make([]byte, n)
	read, err := io.ReadFull(r.src, buf)
	r.pos += int64(read)
	if err != nil {
		if errors.Is(err, io.ErrUnexpectedEOF) || errors.Is(err, io.EOF) {
			return nil, ErrTruncatedInput
		}
		return nil, err
	}
	return buf, nil
}

// ReadRange returns the bytes in [start, end) and leaves the cursor where it was.
func (r *ByteReader) ReadRange(start, end int64) ([]byte, error) {
	back := r.pos
	if err := r.Seek(start); err != nil {
		return nil, err
	}
	buf, err := r.ReadFull(int(end - start))
	if err != nil {
		return nil, err
	}
	return buf, r.Seek(back)
}

// ReadFixed reads a little-endian integer of T's width.
func ReadFixed[T Fixed](r *ByteReader) (T, error) {
	var v T
	buf, err := r.ReadFull(binary.Size(v))
	if err != nil {
		return v, err
	}
	switch len(buf) {
	case 1:
		v = T(buf[0])
	case 2:
		v = T(binary.LittleEndian.Uint16(buf))
	case 4:
		v = T(binary.LittleEndian.Uint32(buf))
	default:
		v = T(binary.LittleEndian.Uint64(buf))
	}
	return v, nil
}

// ReadVarInt reads a compact size integer: values below 0xfd are inline,
// 0xfd, 0xfe and 0xff prefix a 2, 4 or 8 byte little-endian value.
func (r *ByteReader) ReadVarInt() (uint64, error) {
	prefix, err := ReadFixed[uint8](r)
	if err != nil {
		return 0, err
	}
	switch prefix {
	case 0xfd:
		v, err := ReadFixed[uint16](r)
		return uint64(v), err
	case 0xfe:
		v, err := ReadFixed[uint32](r)
		return uint64(v), err
	case 0xff:
		return ReadFixed[uint64](r)
	default:
		return uint64(prefix), nil
	}
}

// ReadHash32 reads a 32 byte hash in internal byte order.
func (r *ByteReader) ReadHash32() ([32]byte, error) {
	var out [32]byte
	buf, err := r.ReadFull(len(out))
	if err != nil {
		return out, err
	}
	copy(out[:], buf)
	return out, nil
}

// ReadLengthPrefixedBytes reads a varint length followed by that many bytes.
func (r *ByteReader) ReadLengthPrefixedBytes() ([]byte, error) {
	n, err := r.ReadVarInt()
	if err != nil {
		return nil, err
	}
	length, err := safe.Len(n)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrTruncatedInput, err)
	}
	return r.ReadFull(length)
}

// readCount reads a varint element count, rejecting counts that cannot fit in the remaining bytes.
func (r *ByteReader) readCount() (int, error) {
	n, err := r.ReadVarInt()
	if err != nil {
		return 0, err
	}
	if n > uint64(r.Remaining()) {
		return 0, fmt.Errorf("count %d exceeds remaining %d bytes: %w", n, r.Remaining(), ErrTruncatedInput)
	}
	return safe.Len(n)
}
