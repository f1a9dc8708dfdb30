package types

import "fmt"

// InvalidIdentifierError is returned when a frame is constructed with an
// identifier that is neither a valid 3-character nor 4-character frame id.
type InvalidIdentifierError struct {
	ID     string
	Reason string
}

func (e *InvalidIdentifierError) Error() string {
	return fmt.Sprintf("invalid frame identifier %q: %s", e.ID, e.Reason)
}

// UnsupportedVersionError is returned when a read or write is requested for
// a version outside ID3v2.2, ID3v2.3 and ID3v2.4.
type UnsupportedVersionError struct {
	Version Version
}

func (e *UnsupportedVersionError) Error() string {
	return fmt.Sprintf("unsupported tag version: %s", e.Version)
}

// CorruptedFrameError is returned when the frame header structure is
// inconsistent with the stream: a size field larger than a sane bound, a
// truncated header, or a malformed identifier.
type CorruptedFrameError struct {
	Reason string
	Offset int64
}

func (e *CorruptedFrameError) Error() string {
	if e.Offset > 0 {
		return fmt.Sprintf("corrupted frame at offset %d: %s", e.Offset, e.Reason)
	}
	return fmt.Sprintf("corrupted frame: %s", e.Reason)
}

// InvalidFrameDataError is returned when a frame body cannot be decoded
// into the content variant its identifier calls for: truncated sub-fields,
// an invalid encoding marker, or a missing terminator.
type InvalidFrameDataError struct {
	ID     string
	Reason string
}

func (e *InvalidFrameDataError) Error() string {
	if e.ID == "" {
		return fmt.Sprintf("invalid frame data: %s", e.Reason)
	}
	return fmt.Sprintf("invalid %s frame data: %s", e.ID, e.Reason)
}
