package header

import (
	"encoding/binary"
	"io"

	bin "github.com/simonhull/id3codec/internal/binary"
	"github.com/simonhull/id3codec/internal/flags"
	"github.com/simonhull/id3codec/internal/types"
	"github.com/simonhull/id3codec/internal/unsynch"
)

// ReadV3 reads one ID3v2.3 frame. A nil Decoded with a nil error means
// padding. The unsynchronization argument is the tag-level flag; v2.3 has
// no per-frame unsynchronization.
func ReadV3(r io.Reader, unsynchronization bool) (int64, *Decoded, error) {
	br := bin.NewReader(r)

	var rawID [4]byte
	if err := br.ReadFull(rawID[:], "frame identifier"); err != nil {
		return br.Offset(), nil, err
	}
	if rawID[0] == 0 {
		return br.Offset(), nil, nil
	}
	if err := checkIdentifier(rawID[:], 0); err != nil {
		return br.Offset(), nil, err
	}

	size, err := br.ReadUint32("frame size")
	if err != nil {
		return br.Offset(), nil, err
	}
	if err := checkSize(size, br.Offset()); err != nil {
		return br.Offset(), nil, err
	}

	var flagBytes [2]byte
	if err := br.ReadFull(flagBytes[:], "frame flags"); err != nil {
		return br.Offset(), nil, err
	}
	f, err := flags.Decode(flagBytes[0], flagBytes[1], types.ID3v23)
	if err != nil {
		return br.Offset(), nil, err
	}

	body := make([]byte, size)
	if err := br.ReadFull(body, "frame body"); err != nil {
		return br.Offset(), nil, bodyReadError(err, br.Offset())
	}
	if unsynchronization {
		body = unsynch.Decode(body)
	}

	if f.Compression {
		// A 4-byte decompressed-size field precedes the deflate stream.
		if len(body) < 4 {
			return br.Offset(), nil, &types.CorruptedFrameError{
				Reason: "compressed frame too short for its size field",
			}
		}
		want := binary.BigEndian.Uint32(body[:4])
		body, err = zlibDecompress(body[4:], want)
		if err != nil {
			return br.Offset(), nil, &types.CorruptedFrameError{
				Reason: "decompress body: " + err.Error(),
			}
		}
	}

	return br.Offset(), &Decoded{ID: string(rawID[:]), Flags: f, Body: body}, nil
}

// WriteV3 writes one ID3v2.3 frame: identifier, plain big-endian size,
// two flag bytes, body. Compression, when flagged, is applied here with
// the decompressed size recorded ahead of the deflate stream.
func WriteV3(w io.Writer, frameID string, f flags.Flags, body []byte, unsynchronization bool) (int64, error) {
	if f.Compression {
		compressed, err := zlibCompress(body)
		if err != nil {
			return 0, err
		}
		withSize := make([]byte, 4, 4+len(compressed))
		binary.BigEndian.PutUint32(withSize, uint32(len(body)))
		body = append(withSize, compressed...)
	}
	if unsynchronization {
		body = unsynch.Encode(body)
	}

	flagBytes, err := flags.Encode(f, types.ID3v23)
	if err != nil {
		return 0, err
	}

	bw := bin.NewWriter(w)
	if err := bw.WriteString(frameID); err != nil {
		return bw.Offset(), err
	}
	if err := bw.WriteUint32(uint32(len(body))); err != nil {
		return bw.Offset(), err
	}
	if err := bw.WriteBytes(flagBytes); err != nil {
		return bw.Offset(), err
	}
	if err := bw.WriteBytes(body); err != nil {
		return bw.Offset(), err
	}
	return bw.Offset(), nil
}
