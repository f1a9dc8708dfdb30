// Package flags models the per-frame status and format flags of ID3v2.
//
// A Flags value carries no version of its own. The bit layout, and whether
// flag bytes exist at all, is chosen at serialization time:
//
//	ID3v2.2  no flag bytes
//	ID3v2.3  %abc00000 %ijk00000
//	ID3v2.4  %0abc0000 %0h00kmnp
//
// Unused bit positions are written as zero and ignored on read.
package flags

import "github.com/simonhull/id3codec/internal/types"

// ID3v2.3 flag bits.
const (
	v3TagAlterPreservation  = 0x80 // byte 1
	v3FileAlterPreservation = 0x40 // byte 1
	v3ReadOnly              = 0x20 // byte 1
	v3Compression           = 0x80 // byte 2
	v3Encryption            = 0x40 // byte 2
	v3GroupingIdentity      = 0x20 // byte 2
)

// ID3v2.4 flag bits.
const (
	v4TagAlterPreservation  = 0x40 // byte 1
	v4FileAlterPreservation = 0x20 // byte 1
	v4ReadOnly              = 0x10 // byte 1
	v4GroupingIdentity      = 0x40 // byte 2
	v4Compression           = 0x08 // byte 2
	v4Encryption            = 0x04 // byte 2
	v4Unsynchronization     = 0x02 // byte 2
	v4DataLengthIndicator   = 0x01 // byte 2
)

// Flags is the set of per-frame boolean switches.
//
// Unsynchronization and DataLengthIndicator are meaningful from ID3v2.4
// onward; earlier versions have no bit positions for them.
type Flags struct {
	TagAlterPreservation  bool
	FileAlterPreservation bool
	ReadOnly              bool
	Compression           bool
	Encryption            bool
	GroupingIdentity      bool
	Unsynchronization     bool
	DataLengthIndicator   bool
}

// Encode packs the flags into the wire form for the given version.
//
// For ID3v2.2 the result is nil: the format predates per-frame flags, so
// there is nowhere to record them. For other versions the result is
// exactly two bytes.
func Encode(f Flags, version types.Version) ([]byte, error) {
	switch version {
	case types.ID3v22:
		return nil, nil
	case types.ID3v23:
		var b1, b2 byte
		if f.TagAlterPreservation {
			b1 |= v3TagAlterPreservation
		}
		if f.FileAlterPreservation {
			b1 |= v3FileAlterPreservation
		}
		if f.ReadOnly {
			b1 |= v3ReadOnly
		}
		if f.Compression {
			b2 |= v3Compression
		}
		if f.Encryption {
			b2 |= v3Encryption
		}
		if f.GroupingIdentity {
			b2 |= v3GroupingIdentity
		}
		return []byte{b1, b2}, nil
	case types.ID3v24:
		var b1, b2 byte
		if f.TagAlterPreservation {
			b1 |= v4TagAlterPreservation
		}
		if f.FileAlterPreservation {
			b1 |= v4FileAlterPreservation
		}
		if f.ReadOnly {
			b1 |= v4ReadOnly
		}
		if f.GroupingIdentity {
			b2 |= v4GroupingIdentity
		}
		if f.Compression {
			b2 |= v4Compression
		}
		if f.Encryption {
			b2 |= v4Encryption
		}
		if f.Unsynchronization {
			b2 |= v4Unsynchronization
		}
		if f.DataLengthIndicator {
			b2 |= v4DataLengthIndicator
		}
		return []byte{b1, b2}, nil
	default:
		return nil, &types.UnsupportedVersionError{Version: version}
	}
}

// Decode unpacks two wire flag bytes for the given version. Bits outside
// the named positions are ignored. ID3v2.2 frames have no flag bytes, so
// decoding for that version always yields the zero Flags.
func Decode(b1, b2 byte, version types.Version) (Flags, error) {
	var f Flags
	switch version {
	case types.ID3v22:
		return f, nil
	case types.ID3v23:
		f.TagAlterPreservation = b1&v3TagAlterPreservation != 0
		f.FileAlterPreservation = b1&v3FileAlterPreservation != 0
		f.ReadOnly = b1&v3ReadOnly != 0
		f.Compression = b2&v3Compression != 0
		f.Encryption = b2&v3Encryption != 0
		f.GroupingIdentity = b2&v3GroupingIdentity != 0
		return f, nil
	case types.ID3v24:
		f.TagAlterPreservation = b1&v4TagAlterPreservation != 0
		f.FileAlterPreservation = b1&v4FileAlterPreservation != 0
		f.ReadOnly = b1&v4ReadOnly != 0
		f.GroupingIdentity = b2&v4GroupingIdentity != 0
		f.Compression = b2&v4Compression != 0
		f.Encryption = b2&v4Encryption != 0
		f.Unsynchronization = b2&v4Unsynchronization != 0
		f.DataLengthIndicator = b2&v4DataLengthIndicator != 0
		return f, nil
	default:
		return f, &types.UnsupportedVersionError{Version: version}
	}
}
