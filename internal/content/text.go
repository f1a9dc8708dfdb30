package content

import (
	"bytes"
	"fmt"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"

	"github.com/simonhull/id3codec/internal/types"
)

var (
	latin1   = charmap.ISO8859_1
	utf16be  = unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM)
	utf16le  = unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM)
	utf16bom = unicode.UTF16(unicode.LittleEndian, unicode.UseBOM)
)

// decodeString converts frame body bytes to a Go string per the declared
// encoding marker.
func decodeString(data []byte, enc types.Encoding) (string, error) {
	switch enc {
	case types.EncodingLatin1:
		out, err := latin1.NewDecoder().Bytes(data)
		if err != nil {
			return "", fmt.Errorf("decode ISO-8859-1: %w", err)
		}
		return string(out), nil
	case types.EncodingUTF16:
		// BOM selects the byte order; without one, big-endian is assumed.
		codec := utf16be
		if len(data) >= 2 {
			if data[0] == 0xFF && data[1] == 0xFE {
				codec = utf16le
				data = data[2:]
			} else if data[0] == 0xFE && data[1] == 0xFF {
				data = data[2:]
			}
		}
		out, err := codec.NewDecoder().Bytes(data)
		if err != nil {
			return "", fmt.Errorf("decode UTF-16: %w", err)
		}
		return string(out), nil
	case types.EncodingUTF16BE:
		out, err := utf16be.NewDecoder().Bytes(data)
		if err != nil {
			return "", fmt.Errorf("decode UTF-16BE: %w", err)
		}
		return string(out), nil
	case types.EncodingUTF8:
		return string(data), nil
	default:
		return "", fmt.Errorf("invalid text encoding marker %d", byte(enc))
	}
}

// encodeString converts a Go string to frame body bytes in the given
// encoding. UTF-16 output carries a little-endian byte order mark, which
// is what the vast majority of taggers emit.
func encodeString(s string, enc types.Encoding) ([]byte, error) {
	switch enc {
	case types.EncodingLatin1:
		out, err := latin1.NewEncoder().Bytes([]byte(s))
		if err != nil {
			return nil, fmt.Errorf("encode ISO-8859-1: %w", err)
		}
		return out, nil
	case types.EncodingUTF16:
		out, err := utf16bom.NewEncoder().Bytes([]byte(s))
		if err != nil {
			return nil, fmt.Errorf("encode UTF-16: %w", err)
		}
		return out, nil
	case types.EncodingUTF16BE:
		out, err := utf16be.NewEncoder().Bytes([]byte(s))
		if err != nil {
			return nil, fmt.Errorf("encode UTF-16BE: %w", err)
		}
		return out, nil
	case types.EncodingUTF8:
		return []byte(s), nil
	default:
		return nil, fmt.Errorf("invalid text encoding marker %d", byte(enc))
	}
}

// terminator returns the null terminator for the encoding: one byte for
// single-byte encodings, two for UTF-16 forms.
func terminator(enc types.Encoding) []byte {
	switch enc {
	case types.EncodingUTF16, types.EncodingUTF16BE:
		return []byte{0, 0}
	default:
		return []byte{0}
	}
}

// findTerminator locates the null terminator in data for the encoding,
// returning the index and the terminator width. UTF-16 terminators are
// scanned on code unit boundaries. Returns index -1 when absent.
func findTerminator(data []byte, enc types.Encoding) (idx, width int) {
	switch enc {
	case types.EncodingUTF16, types.EncodingUTF16BE:
		for i := 0; i+1 < len(data); i += 2 {
			if data[i] == 0 && data[i+1] == 0 {
				return i, 2
			}
		}
		return -1, 2
	default:
		return bytes.IndexByte(data, 0), 1
	}
}
