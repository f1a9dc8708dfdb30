package binary

import (
	"encoding/binary"
	"fmt"
	"io"
)

// Reader wraps an io.Reader with position tracking and contextual error
// messages. Underlying I/O failures propagate unchanged inside the wrap;
// the codec never retries.
type Reader struct {
	r      io.Reader
	offset int64
}

// NewReader creates a new Reader.
func NewReader(r io.Reader) *Reader {
	return &Reader{r: r}
}

// Offset returns the number of bytes consumed so far.
func (r *Reader) Offset() int64 {
	return r.offset
}

// ReadFull fills b from the stream, with context for error messages.
func (r *Reader) ReadFull(b []byte, what string) error {
	n, err := io.ReadFull(r.r, b)
	r.offset += int64(n)
	if err != nil {
		return fmt.Errorf("read %s at offset %d: %w", what, r.offset, err)
	}
	return nil
}

// ReadUint32 reads a big-endian uint32.
func (r *Reader) ReadUint32(what string) (uint32, error) {
	var buf [4]byte
	if err := r.ReadFull(buf[:], what); err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint32(buf[:]), nil
}

// ReadUint24 reads a 3-byte big-endian value, the ID3v2.2 size width.
func (r *Reader) ReadUint24(what string) (uint32, error) {
	var buf [3]byte
	if err := r.ReadFull(buf[:], what); err != nil {
		return 0, err
	}
	return uint32(buf[0])<<16 | uint32(buf[1])<<8 | uint32(buf[2]), nil
}
