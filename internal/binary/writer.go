// Package binary provides stream reading and writing primitives with
// offset tracking. ID3v2 is big-endian throughout, so that is the only
// byte order offered.
package binary

import (
	"encoding/binary"
	"io"
)

// Writer wraps an io.Writer with position tracking, so codecs can report
// the exact number of bytes they produced.
type Writer struct {
	w      io.Writer
	offset int64
}

// NewWriter creates a new Writer.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

// Offset returns the number of bytes written so far.
func (w *Writer) Offset() int64 {
	return w.offset
}

// WriteBytes writes raw bytes to the underlying writer.
func (w *Writer) WriteBytes(b []byte) error {
	n, err := w.w.Write(b)
	w.offset += int64(n)
	return err
}

// WriteString writes a string as bytes to the underlying writer.
func (w *Writer) WriteString(s string) error {
	return w.WriteBytes([]byte(s))
}

// WriteUint32 writes a big-endian uint32.
func (w *Writer) WriteUint32(v uint32) error {
	var buf [4]byte
	binary.BigEndian.PutUint32(buf[:], v)
	return w.WriteBytes(buf[:])
}

// WriteUint24 writes the low 24 bits of v as a 3-byte big-endian value.
// ID3v2.2 frame sizes use this width.
func (w *Writer) WriteUint24(v uint32) error {
	buf := [3]byte{byte(v >> 16), byte(v >> 8), byte(v)}
	return w.WriteBytes(buf[:])
}
