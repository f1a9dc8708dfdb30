// Package id3codec provides a frame-level codec for ID3v2 metadata.
//
// A frame is the unit of information inside an ID3v2 tag: an identifier,
// a decoded payload (Content), and a set of status flags. id3codec
// encodes and decodes individual frames across the three mutually
// incompatible wire formats ID3v2.2, ID3v2.3 and ID3v2.4.
//
// # Quick Start
//
// Constructing and serializing a frame:
//
//	frame, err := id3codec.New("TIT2", id3codec.Text("title"))
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	var buf bytes.Buffer
//	n, err := frame.WriteTo(&buf, id3codec.ID3v23, false)
//
// Decoding is the mirror:
//
//	n, frame, err := id3codec.ReadFrom(r, id3codec.ID3v23, false)
//	if err != nil {
//		log.Fatal(err)
//	}
//	if frame == nil {
//		// Padding: the tag's frame data has ended.
//	}
//
// # Versions
//
// Frames themselves are version-agnostic; the Version passed to ReadFrom
// and WriteTo selects the header layout:
//
//   - ID3v2.2: 3-character identifiers, 3-byte big-endian sizes, no frame
//     flags
//   - ID3v2.3: 4-character identifiers, 4-byte big-endian sizes, two flag
//     bytes
//   - ID3v2.4: 4-character identifiers, 4-byte synch-safe sizes, two flag
//     bytes
//
// Identifiers are always stored internally in their 4-character form;
// 3-character ID3v2.2 identifiers are translated at construction. Frame
// types introduced after ID3v2.2 have no 3-character form and cannot be
// written as v2.2 — IDForVersion reports this.
//
// # Equality
//
// Frame equality follows the ID3 specification rather than plain
// structural equality: a tag holds at most one text frame per identifier,
// so text frames compare by identifier alone, while every other content
// variant also compares its payload. Equal and Hash agree on this.
//
// # Scope
//
// id3codec deliberately stops at the frame boundary. The tag container
// (tag header, frame collection, padding, file I/O) is the caller's
// concern; cmd/id3dump shows a minimal container walk built on this
// package.
package id3codec
