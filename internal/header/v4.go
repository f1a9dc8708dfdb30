package header

import (
	"io"

	bin "github.com/simonhull/id3codec/internal/binary"
	"github.com/simonhull/id3codec/internal/flags"
	"github.com/simonhull/id3codec/internal/types"
	"github.com/simonhull/id3codec/internal/unsynch"
)

// ReadV4 reads one ID3v2.4 frame. A nil Decoded with a nil error means
// padding. The size field is always synch-safe, with or without the
// unsynchronization flag; the unsynchronization argument is the tag-level
// flag and is combined with the per-frame one.
func ReadV4(r io.Reader, unsynchronization bool) (int64, *Decoded, error) {
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

	var sizeBytes [4]byte
	if err := br.ReadFull(sizeBytes[:], "frame size"); err != nil {
		return br.Offset(), nil, err
	}
	size := unsynch.DecodeUint32(sizeBytes)
	if err := checkSize(size, br.Offset()); err != nil {
		return br.Offset(), nil, err
	}

	var flagBytes [2]byte
	if err := br.ReadFull(flagBytes[:], "frame flags"); err != nil {
		return br.Offset(), nil, err
	}
	f, err := flags.Decode(flagBytes[0], flagBytes[1], types.ID3v24)
	if err != nil {
		return br.Offset(), nil, err
	}

	body := make([]byte, size)
	if err := br.ReadFull(body, "frame body"); err != nil {
		return br.Offset(), nil, bodyReadError(err, br.Offset())
	}
	if unsynchronization || f.Unsynchronization {
		body = unsynch.Decode(body)
	}

	if f.DataLengthIndicator {
		if len(body) < 4 {
			return br.Offset(), nil, &types.CorruptedFrameError{
				Reason: "frame too short for its data length indicator",
			}
		}
		var dl [4]byte
		copy(dl[:], body[:4])
		dataLen := unsynch.DecodeUint32(dl)
		body = body[4:]
		if f.Compression {
			body, err = zlibDecompress(body, dataLen)
			if err != nil {
				return br.Offset(), nil, &types.CorruptedFrameError{
					Reason: "decompress body: " + err.Error(),
				}
			}
		}
	} else if f.Compression {
		return br.Offset(), nil, &types.CorruptedFrameError{
			Reason: "compression flag set without a data length indicator",
		}
	}

	return br.Offset(), &Decoded{ID: string(rawID[:]), Flags: f, Body: body}, nil
}

// WriteV4 writes one ID3v2.4 frame. The unsynchronization argument is the
// tag-level flag; when set it is recorded in the frame's own flag bits, as
// v2.4 moved unsynchronization to the frame level.
func WriteV4(w io.Writer, frameID string, f flags.Flags, body []byte, unsynchronization bool) (int64, error) {
	f.Unsynchronization = f.Unsynchronization || unsynchronization
	if f.Compression {
		// Decompression needs the original size recorded, so compression
		// implies the data length indicator.
		f.DataLengthIndicator = true
	}

	dataLen := uint32(len(body))
	if f.Compression {
		compressed, err := zlibCompress(body)
		if err != nil {
			return 0, err
		}
		body = compressed
	}
	if f.DataLengthIndicator {
		dl := unsynch.EncodeUint32(dataLen)
		body = append(dl[:], body...)
	}
	if f.Unsynchronization {
		body = unsynch.Encode(body)
	}
	if len(body) > 0x0FFFFFFF {
		return 0, &types.InvalidFrameDataError{
			ID:     frameID,
			Reason: "body exceeds the 28-bit synch-safe size field",
		}
	}

	flagBytes, err := flags.Encode(f, types.ID3v24)
	if err != nil {
		return 0, err
	}

	bw := bin.NewWriter(w)
	if err := bw.WriteString(frameID); err != nil {
		return bw.Offset(), err
	}
	size := unsynch.EncodeUint32(uint32(len(body)))
	if err := bw.WriteBytes(size[:]); err != nil {
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
