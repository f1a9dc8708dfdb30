// Package content models the decoded payload of an ID3v2 frame and the
// byte-level codec between payloads and frame bodies.
//
// Content is a closed variant: every consumption site (rendering,
// equality, encode, decode) handles each variant explicitly, so adding a
// variant fails to compile until every site is updated.
package content

import (
	"bytes"
	"fmt"
)

// Content is the decoded payload of a frame. The frame identifier
// determines which variant is semantically expected; decoding an
// unrecognized identifier yields Unknown rather than failing.
type Content interface {
	fmt.Stringer

	// Equal reports full structural equality with another Content value.
	Equal(Content) bool

	sealed()
}

// Text is the payload of a text information frame (T000-TZZZ except TXXX).
type Text string

// Link is the payload of a URL link frame (W000-WZZZ except WXXX).
type Link string

// ExtendedText is a user-defined text frame payload (TXXX).
type ExtendedText struct {
	Description string
	Value       string
}

// ExtendedLink is a user-defined URL frame payload (WXXX).
type ExtendedLink struct {
	Description string
	Link        string
}

// Comment is a comment frame payload (COMM).
type Comment struct {
	Lang        string // ISO-639-2, 3 characters
	Description string
	Text        string
}

// Lyrics is an unsynchronized lyrics frame payload (USLT).
type Lyrics struct {
	Lang        string // ISO-639-2, 3 characters
	Description string
	Text        string
}

// Picture is an attached picture frame payload (APIC).
type Picture struct {
	MIMEType    string
	PictureType PictureType
	Description string
	Data        []byte
}

// Unknown holds the raw body of a frame whose identifier is unrecognized
// or whose decoding is not implemented. It is a visible tag, not a hidden
// failure.
type Unknown []byte

func (Text) sealed()         {}
func (Link) sealed()         {}
func (ExtendedText) sealed() {}
func (ExtendedLink) sealed() {}
func (Comment) sealed()      {}
func (Lyrics) sealed()       {}
func (Picture) sealed()      {}
func (Unknown) sealed()      {}

// String renders the bare text value.
func (c Text) String() string { return string(c) }

// String renders the bare URL.
func (c Link) String() string { return string(c) }

func (c ExtendedText) String() string {
	return fmt.Sprintf("%s: %s", c.Description, c.Value)
}

func (c ExtendedLink) String() string {
	return fmt.Sprintf("%s: %s", c.Description, c.Link)
}

func (c Comment) String() string {
	return fmt.Sprintf("%s: %s", c.Description, c.Text)
}

// String renders the lyrics body only.
func (c Lyrics) String() string { return c.Text }

func (c Picture) String() string {
	return fmt.Sprintf("%s: %s (%s)", c.Description, c.PictureType, c.MIMEType)
}

func (c Unknown) String() string {
	return fmt.Sprintf("unknown, %d bytes", len(c))
}

func (c Text) Equal(other Content) bool {
	o, ok := other.(Text)
	return ok && c == o
}

func (c Link) Equal(other Content) bool {
	o, ok := other.(Link)
	return ok && c == o
}

func (c ExtendedText) Equal(other Content) bool {
	o, ok := other.(ExtendedText)
	return ok && c == o
}

func (c ExtendedLink) Equal(other Content) bool {
	o, ok := other.(ExtendedLink)
	return ok && c == o
}

func (c Comment) Equal(other Content) bool {
	o, ok := other.(Comment)
	return ok && c == o
}

func (c Lyrics) Equal(other Content) bool {
	o, ok := other.(Lyrics)
	return ok && c == o
}

func (c Picture) Equal(other Content) bool {
	o, ok := other.(Picture)
	if !ok {
		return false
	}
	return c.MIMEType == o.MIMEType &&
		c.PictureType == o.PictureType &&
		c.Description == o.Description &&
		bytes.Equal(c.Data, o.Data)
}

func (c Unknown) Equal(other Content) bool {
	o, ok := other.(Unknown)
	return ok && bytes.Equal(c, o)
}

// Fingerprint appends a deterministic byte representation of c to dst,
// with a leading variant tag and NUL-separated fields. Used for hashing;
// not a wire format.
func Fingerprint(dst []byte, c Content) []byte {
	switch v := c.(type) {
	case Text:
		dst = append(dst, 'T')
		dst = append(dst, v...)
	case Link:
		dst = append(dst, 'W')
		dst = append(dst, v...)
	case ExtendedText:
		dst = append(dst, 'X')
		dst = append(dst, v.Description...)
		dst = append(dst, 0)
		dst = append(dst, v.Value...)
	case ExtendedLink:
		dst = append(dst, 'Y')
		dst = append(dst, v.Description...)
		dst = append(dst, 0)
		dst = append(dst, v.Link...)
	case Comment:
		dst = append(dst, 'C')
		dst = append(dst, v.Lang...)
		dst = append(dst, 0)
		dst = append(dst, v.Description...)
		dst = append(dst, 0)
		dst = append(dst, v.Text...)
	case Lyrics:
		dst = append(dst, 'L')
		dst = append(dst, v.Lang...)
		dst = append(dst, 0)
		dst = append(dst, v.Description...)
		dst = append(dst, 0)
		dst = append(dst, v.Text...)
	case Picture:
		dst = append(dst, 'P')
		dst = append(dst, v.MIMEType...)
		dst = append(dst, 0, byte(v.PictureType))
		dst = append(dst, v.Description...)
		dst = append(dst, 0)
		dst = append(dst, v.Data...)
	case Unknown:
		dst = append(dst, 'U')
		dst = append(dst, v...)
	}
	return dst
}
