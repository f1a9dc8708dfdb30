package header

import (
	"io"

	bin "github.com/simonhull/id3codec/internal/binary"
	"github.com/simonhull/id3codec/internal/id"
	"github.com/simonhull/id3codec/internal/types"
	"github.com/simonhull/id3codec/internal/unsynch"
)

// ReadV2 reads one ID3v2.2 frame. A nil Decoded with a nil error means
// padding was encountered; the returned count is the bytes consumed either
// way. The unsynchronization argument is the tag-level flag, since v2.2
// has no per-frame flags.
func ReadV2(r io.Reader, unsynchronization bool) (int64, *Decoded, error) {
	br := bin.NewReader(r)

	var rawID [3]byte
	if err := br.ReadFull(rawID[:], "frame identifier"); err != nil {
		return br.Offset(), nil, err
	}
	if rawID[0] == 0 {
		// Padding: valid and expected at tag end.
		return br.Offset(), nil, nil
	}
	if err := checkIdentifier(rawID[:], 0); err != nil {
		return br.Offset(), nil, err
	}

	size, err := br.ReadUint24("frame size")
	if err != nil {
		return br.Offset(), nil, err
	}
	if err := checkSize(size, br.Offset()); err != nil {
		return br.Offset(), nil, err
	}

	body := make([]byte, size)
	if err := br.ReadFull(body, "frame body"); err != nil {
		return br.Offset(), nil, bodyReadError(err, br.Offset())
	}
	if unsynchronization {
		body = unsynch.Decode(body)
	}

	longID, err := id.ToLong(string(rawID[:]))
	if err != nil {
		return br.Offset(), nil, &types.CorruptedFrameError{
			Reason: "unknown ID3v2.2 identifier " + string(rawID[:]),
		}
	}

	return br.Offset(), &Decoded{ID: longID, Body: body}, nil
}

// WriteV2 writes one ID3v2.2 frame. The identifier must already be the
// 3-character form. v2.2 has no flags field, so frame flags are not
// representable and are dropped by the caller.
func WriteV2(w io.Writer, shortID string, body []byte, unsynchronization bool) (int64, error) {
	if unsynchronization {
		body = unsynch.Encode(body)
	}
	if len(body) > 0xFFFFFF {
		return 0, &types.InvalidFrameDataError{
			ID:     shortID,
			Reason: "body exceeds the 3-byte size field",
		}
	}

	bw := bin.NewWriter(w)
	if err := bw.WriteString(shortID); err != nil {
		return bw.Offset(), err
	}
	if err := bw.WriteUint24(uint32(len(body))); err != nil {
		return bw.Offset(), err
	}
	if err := bw.WriteBytes(body); err != nil {
		return bw.Offset(), err
	}
	return bw.Offset(), nil
}
