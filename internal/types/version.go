// Package types holds the shared types of the id3codec module.
//
// The root package re-exports these via type aliases so that internal
// packages and the public API agree on a single definition.
package types

import "fmt"

// Version selects one of the three ID3v2 wire formats.
//
// A Version is passed into every encode/decode call; frames themselves are
// version-agnostic. The numeric value is the major version byte as it
// appears in the tag header.
type Version byte

// Supported tag versions.
const (
	ID3v22 Version = 2 // ID3v2.2: 3-byte ids, 3-byte sizes, no frame flags
	ID3v23 Version = 3 // ID3v2.3: 4-byte ids, plain big-endian sizes
	ID3v24 Version = 4 // ID3v2.4: 4-byte ids, synch-safe sizes
)

// Supported reports whether v is one of the three supported versions.
func (v Version) Supported() bool {
	return v == ID3v22 || v == ID3v23 || v == ID3v24
}

// String returns the conventional name, e.g. "ID3v2.3".
func (v Version) String() string {
	if v.Supported() {
		return fmt.Sprintf("ID3v2.%d", byte(v))
	}
	return fmt.Sprintf("ID3v2.%d (unsupported)", byte(v))
}
