package types

import "fmt"

// Encoding is the text encoding marker byte used inside frame bodies.
type Encoding byte

// Text encodings defined by ID3v2. UTF16BE and UTF8 were introduced in
// ID3v2.4 and are invalid in earlier versions.
const (
	EncodingLatin1  Encoding = 0 // ISO-8859-1
	EncodingUTF16   Encoding = 1 // UTF-16 with byte order mark
	EncodingUTF16BE Encoding = 2 // UTF-16 big-endian, no byte order mark
	EncodingUTF8    Encoding = 3 // UTF-8
)

// ValidFor reports whether the encoding may appear in a tag of the given
// version.
func (e Encoding) ValidFor(v Version) bool {
	switch e {
	case EncodingLatin1, EncodingUTF16:
		return true
	case EncodingUTF16BE, EncodingUTF8:
		return v == ID3v24
	default:
		return false
	}
}

// String returns the conventional encoding name.
func (e Encoding) String() string {
	switch e {
	case EncodingLatin1:
		return "ISO-8859-1"
	case EncodingUTF16:
		return "UTF-16"
	case EncodingUTF16BE:
		return "UTF-16BE"
	case EncodingUTF8:
		return "UTF-8"
	default:
		return fmt.Sprintf("unknown encoding (%d)", byte(e))
	}
}

// DefaultEncoding returns the encoding written when the caller does not
// choose one: UTF-16 for v2.2/v2.3 tags, UTF-8 for v2.4.
func DefaultEncoding(v Version) Encoding {
	if v == ID3v24 {
		return EncodingUTF8
	}
	return EncodingUTF16
}
