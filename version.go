package id3codec

import "github.com/simonhull/id3codec/internal/types"

// Version is an alias to types.Version.
// Re-exporting from internal/types to keep one definition module-wide.
type Version = types.Version

// Re-export the supported tag versions.
const (
	ID3v22 = types.ID3v22
	ID3v23 = types.ID3v23
	ID3v24 = types.ID3v24
)

// Encoding is an alias to types.Encoding.
// Re-exporting from internal/types to keep one definition module-wide.
type Encoding = types.Encoding

// Re-export the text encodings.
const (
	EncodingLatin1  = types.EncodingLatin1
	EncodingUTF16   = types.EncodingUTF16
	EncodingUTF16BE = types.EncodingUTF16BE
	EncodingUTF8    = types.EncodingUTF8
)
