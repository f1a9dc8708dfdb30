package id3codec

import (
	"fmt"
	"hash/fnv"
	"io"

	"github.com/simonhull/id3codec/internal/content"
	"github.com/simonhull/id3codec/internal/header"
	"github.com/simonhull/id3codec/internal/id"
)

// Frame is one identifier-tagged unit of metadata inside an ID3v2 tag.
//
// The identifier is fixed at construction and always stored in its
// 4-character ID3v2.3/ID3v2.4 form; content and flags stay mutable. A
// Frame is a plain value with no shared state: concurrent work on
// independent frames needs no locking.
//
// Equality and hashing follow the ID3 specification rather than plain
// structural equality: frames with Text content are equal when their
// identifiers match, while every other variant also compares content.
// The spec permits at most one text frame per identifier in a tag, but
// many pictures may share "APIC" and differ only in payload; collapsing
// those by identifier would silently discard data.
type Frame struct {
	id      string
	content Content
	flags   Flags
}

// New creates a frame with the given identifier and content.
//
// Both 3-character (ID3v2.2) and 4-character identifiers are accepted;
// 3-character identifiers are translated to their 4-character form
// immediately. Any other length, a malformed identifier, or a 3-character
// identifier with no 4-character equivalent returns
// InvalidIdentifierError. Flags start all-false.
func New(frameID string, c Content) (*Frame, error) {
	if !id.Valid(frameID) {
		return nil, &InvalidIdentifierError{
			ID:     frameID,
			Reason: "must be 3 or 4 uppercase ASCII letters and digits",
		}
	}
	if len(frameID) == 3 {
		long, err := id.ToLong(frameID)
		if err != nil {
			return nil, err
		}
		frameID = long
	}
	return &Frame{id: frameID, content: c}, nil
}

// ID returns the 4-character identifier.
func (f *Frame) ID() string {
	return f.id
}

// IDForVersion returns the identifier compatible with the given version.
// For ID3v2.2 the second return is false when the frame type postdates
// that version; callers must then drop the frame or fail.
func (f *Frame) IDForVersion(version Version) (string, bool) {
	switch version {
	case ID3v22:
		return id.ToShort(f.id)
	case ID3v23, ID3v24:
		return f.id, true
	default:
		return "", false
	}
}

// Content returns the frame's payload.
func (f *Frame) Content() Content {
	return f.content
}

// SetContent replaces the frame's payload.
func (f *Frame) SetContent(c Content) {
	f.content = c
}

// Flags returns the frame's flags for direct inspection or mutation.
func (f *Frame) Flags() *Flags {
	return &f.flags
}

// Compression reports whether the compression flag is set.
func (f *Frame) Compression() bool {
	return f.flags.Compression
}

// SetCompression sets the compression flag. It also sets the data length
// indicator: decompression requires the recorded original size.
func (f *Frame) SetCompression(compression bool) {
	f.flags.Compression = compression
	f.flags.DataLengthIndicator = compression
}

// TagAlterPreservation reports whether the tag alter preservation flag is
// set.
func (f *Frame) TagAlterPreservation() bool {
	return f.flags.TagAlterPreservation
}

// SetTagAlterPreservation sets the tag alter preservation flag.
func (f *Frame) SetTagAlterPreservation(preserve bool) {
	f.flags.TagAlterPreservation = preserve
}

// FileAlterPreservation reports whether the file alter preservation flag
// is set.
func (f *Frame) FileAlterPreservation() bool {
	return f.flags.FileAlterPreservation
}

// SetFileAlterPreservation sets the file alter preservation flag.
func (f *Frame) SetFileAlterPreservation(preserve bool) {
	f.flags.FileAlterPreservation = preserve
}

// Equal reports frame equality per the ID3 specification: identifier
// alone for Text content, identifier plus full content equality for every
// other variant. Flags never participate.
func (f *Frame) Equal(other *Frame) bool {
	if other == nil {
		return false
	}
	if _, isText := f.content.(Text); isText {
		return f.id == other.id
	}
	return f.id == other.id && f.content.Equal(other.content)
}

// Hash returns a hash consistent with Equal: frames that compare equal
// hash identically.
func (f *Frame) Hash() uint64 {
	h := fnv.New64a()
	h.Write([]byte(f.id))
	if _, isText := f.content.(Text); !isText {
		h.Write(content.Fingerprint(nil, f.content))
	}
	return h.Sum64()
}

// String renders the parsed content for diagnostics. The rendering is
// lossy and is not a decode/encode path.
func (f *Frame) String() string {
	return f.content.String()
}

// ReadFrom attempts to read one frame from the reader in the given
// version's wire format.
//
// It returns the number of bytes consumed and the decoded frame. A nil
// frame with a nil error means padding was encountered, which is valid
// and expected at tag end, not a malformed frame. The unsynchronization
// argument is the tag-level flag of the surrounding tag.
//
// Only versions 2.2, 2.3 and 2.4 are supported; any other version fails
// with UnsupportedVersionError.
func ReadFrom(r io.Reader, version Version, unsynchronization bool) (int64, *Frame, error) {
	var (
		n   int64
		dec *header.Decoded
		err error
	)
	switch version {
	case ID3v22:
		n, dec, err = header.ReadV2(r, unsynchronization)
	case ID3v23:
		n, dec, err = header.ReadV3(r, unsynchronization)
	case ID3v24:
		n, dec, err = header.ReadV4(r, unsynchronization)
	default:
		return 0, nil, &UnsupportedVersionError{Version: version}
	}
	if err != nil {
		return n, nil, err
	}
	if dec == nil {
		// Padding.
		return n, nil, nil
	}

	c, err := content.Decode(dec.ID, version, dec.Body)
	if err != nil {
		return n, nil, err
	}
	return n, &Frame{id: dec.ID, content: c, flags: dec.Flags}, nil
}

// WriteTo writes the frame to the writer in the given version's wire
// format and returns the number of bytes written.
//
// The body is encoded with the version's default text encoding (UTF-16
// for v2.2/v2.3, UTF-8 for v2.4) unless WithEncoding overrides it.
// Writing a frame with no ID3v2.2 identifier as v2.2 fails; compression,
// encryption and grouping flags are silently dropped for v2.2, which has
// no flags field to record them in — an explicit compatibility loss.
//
// Only versions 2.2, 2.3 and 2.4 are supported; any other version fails
// with UnsupportedVersionError.
func (f *Frame) WriteTo(w io.Writer, version Version, unsynchronization bool, opts ...WriteOption) (int64, error) {
	if !version.Supported() {
		return 0, &UnsupportedVersionError{Version: version}
	}

	options := defaultWriteOptions(version)
	for _, opt := range opts {
		opt(options)
	}
	if !options.encoding.ValidFor(version) {
		return 0, &InvalidFrameDataError{
			ID:     f.id,
			Reason: fmt.Sprintf("%s text encoding is not valid in %s", options.encoding, version),
		}
	}

	body, err := content.Encode(f.content, options.encoding, version)
	if err != nil {
		return 0, err
	}

	switch version {
	case ID3v22:
		shortID, ok := id.ToShort(f.id)
		if !ok {
			return 0, &InvalidIdentifierError{
				ID:     f.id,
				Reason: "frame type is not representable in ID3v2.2",
			}
		}
		return header.WriteV2(w, shortID, body, unsynchronization)
	case ID3v23:
		return header.WriteV3(w, f.id, f.flags, body, unsynchronization)
	default:
		return header.WriteV4(w, f.id, f.flags, body, unsynchronization)
	}
}

// DecodeContent re-interprets raw body bytes as the content variant the
// identifier calls for. Exposed for callers that carry frame bodies
// around on their own (tag containers, test fixtures).
func DecodeContent(frameID string, version Version, body []byte) (Content, error) {
	if !version.Supported() {
		return nil, &UnsupportedVersionError{Version: version}
	}
	if !id.Valid(frameID) || len(frameID) != 4 {
		return nil, &InvalidIdentifierError{
			ID:     frameID,
			Reason: "must be 4 uppercase ASCII letters and digits",
		}
	}
	return content.Decode(frameID, version, body)
}
