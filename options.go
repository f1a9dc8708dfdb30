package id3codec

import "github.com/simonhull/id3codec/internal/types"

// WriteOption configures frame serialization.
//
// Options use the functional options pattern:
//
//	n, err := frame.WriteTo(w, id3codec.ID3v23, false,
//	    id3codec.WithEncoding(id3codec.EncodingLatin1),
//	)
type WriteOption func(*writeOptions)

// writeOptions holds configuration for writing frames.
type writeOptions struct {
	encoding Encoding
}

// defaultWriteOptions returns the default configuration for the version:
// UTF-16 for ID3v2.2 and ID3v2.3, UTF-8 for ID3v2.4.
func defaultWriteOptions(version Version) *writeOptions {
	return &writeOptions{encoding: types.DefaultEncoding(version)}
}

// WithEncoding selects the text encoding used for the frame body.
//
// UTF-16BE and UTF-8 were introduced in ID3v2.4; requesting them for an
// earlier version makes WriteTo fail rather than emit an invalid tag.
func WithEncoding(encoding Encoding) WriteOption {
	return func(o *writeOptions) {
		o.encoding = encoding
	}
}
