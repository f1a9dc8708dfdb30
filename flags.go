package id3codec

import "github.com/simonhull/id3codec/internal/flags"

// Flags is an alias to flags.Flags, the set of per-frame boolean
// switches. Flags carry no version of their own; the bit layout is chosen
// at serialization time for the requested version.
//
// Prefer Frame.SetCompression over toggling the Compression field
// directly: the setter also maintains the data length indicator, which
// decompression requires.
type Flags = flags.Flags
