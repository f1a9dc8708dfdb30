// Package header implements the per-version frame header codecs of ID3v2.
//
// Each version pairs a write function with a read function. The header
// codec owns the identifier, size field and flag bytes; body bytes are
// produced and consumed by the content codec and pass through here, except
// for the transforms the header flags call for (unsynchronization,
// compression, the data length indicator).
//
//	ID3v2.2  3-byte id + 3-byte plain big-endian size
//	ID3v2.3  4-byte id + 4-byte plain big-endian size + 2 flag bytes
//	ID3v2.4  4-byte id + 4-byte synch-safe size + 2 flag bytes
package header

import (
	"errors"
	"io"

	"github.com/simonhull/id3codec/internal/flags"
	"github.com/simonhull/id3codec/internal/id"
	"github.com/simonhull/id3codec/internal/types"
)

// maxFrameSize is a sanity bound on the declared body size. Real frames
// (even embedded artwork) stay far below it; anything larger is a
// corrupted size field.
const maxFrameSize = 100 * 1024 * 1024

// Decoded is the result of reading one frame header plus its body bytes,
// with header-level transforms already undone.
type Decoded struct {
	// ID is the identifier, normalized to the 4-character form.
	ID string
	// Flags are the decoded frame flags (zero for ID3v2.2).
	Flags flags.Flags
	// Body is the frame body, unstuffed and decompressed as the flags
	// dictate, ready for the content codec.
	Body []byte
}

// checkIdentifier validates the wire shape of an identifier read from a
// stream.
func checkIdentifier(raw []byte, offset int64) error {
	if !id.Valid(string(raw)) {
		return &types.CorruptedFrameError{
			Reason: "identifier is not uppercase ASCII letters and digits",
			Offset: offset,
		}
	}
	return nil
}

// bodyReadError converts a truncated body read into a structural error:
// a size field pointing past the end of the stream is corruption, not I/O.
func bodyReadError(err error, offset int64) error {
	if errors.Is(err, io.ErrUnexpectedEOF) {
		return &types.CorruptedFrameError{
			Reason: "size field exceeds remaining stream",
			Offset: offset,
		}
	}
	return err
}

// checkSize rejects size fields beyond the sanity bound.
func checkSize(size uint32, offset int64) error {
	if size > maxFrameSize {
		return &types.CorruptedFrameError{
			Reason: "size field exceeds sanity bound",
			Offset: offset,
		}
	}
	return nil
}
