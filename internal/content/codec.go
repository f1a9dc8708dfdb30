package content

import (
	"strings"

	"github.com/simonhull/id3codec/internal/types"
)

// v2.2 PIC frames store a 3-character image format instead of a MIME type.
var imageFormats = map[string]string{
	"PNG": "image/png",
	"JPG": "image/jpeg",
	"GIF": "image/gif",
	"BMP": "image/bmp",
}

// Decode interprets raw body bytes as the content variant selected by the
// frame identifier. The identifier must already be in its 4-character
// form; version matters only where the body layout itself differs between
// versions (the APIC picture header).
//
// Identifiers with no implemented decoding yield Unknown. Recognized
// identifiers with malformed bodies fail with InvalidFrameDataError.
func Decode(id string, version types.Version, data []byte) (Content, error) {
	switch {
	case id == "TXXX":
		return decodeExtendedText(id, data)
	case strings.HasPrefix(id, "T"):
		return decodeText(id, data)
	case id == "WXXX":
		return decodeExtendedLink(id, data)
	case strings.HasPrefix(id, "W"):
		return Link(data), nil
	case id == "COMM":
		d, err := decodeLangDescText(id, data)
		if err != nil {
			return nil, err
		}
		return Comment(d), nil
	case id == "USLT":
		d, err := decodeLangDescText(id, data)
		if err != nil {
			return nil, err
		}
		return Lyrics(d), nil
	case id == "APIC":
		return decodePicture(id, version, data)
	default:
		raw := make([]byte, len(data))
		copy(raw, data)
		return Unknown(raw), nil
	}
}

// Encode produces body bytes for the content in the given text encoding.
// The inverse of Decode. The caller supplies the identifier and version
// separately when writing the header; content shape is a negotiated
// convention and is not validated against the identifier here.
func Encode(c Content, enc types.Encoding, version types.Version) ([]byte, error) {
	switch v := c.(type) {
	case Text:
		text, err := encodeString(string(v), enc)
		if err != nil {
			return nil, err
		}
		body := make([]byte, 0, 1+len(text))
		body = append(body, byte(enc))
		return append(body, text...), nil
	case Link:
		return []byte(v), nil
	case ExtendedText:
		return encodeDescValue(v.Description, v.Value, enc)
	case ExtendedLink:
		// The link itself is always ISO-8859-1; only the description uses
		// the declared encoding.
		desc, err := encodeString(v.Description, enc)
		if err != nil {
			return nil, err
		}
		body := make([]byte, 0, 1+len(desc)+2+len(v.Link))
		body = append(body, byte(enc))
		body = append(body, desc...)
		body = append(body, terminator(enc)...)
		return append(body, v.Link...), nil
	case Comment:
		return encodeLangDescText(langDescText(v), enc)
	case Lyrics:
		return encodeLangDescText(langDescText(v), enc)
	case Picture:
		return encodePicture(v, enc, version)
	case Unknown:
		body := make([]byte, len(v))
		copy(body, v)
		return body, nil
	default:
		return nil, &types.InvalidFrameDataError{Reason: "unhandled content variant"}
	}
}

func decodeText(id string, data []byte) (Content, error) {
	if len(data) < 1 {
		return nil, &types.InvalidFrameDataError{ID: id, Reason: "empty body"}
	}
	enc := types.Encoding(data[0])
	body := data[1:]
	// A trailing terminator is legal and not part of the value.
	if idx, _ := findTerminator(body, enc); idx >= 0 {
		body = body[:idx]
	}
	text, err := decodeString(body, enc)
	if err != nil {
		return nil, &types.InvalidFrameDataError{ID: id, Reason: err.Error()}
	}
	return Text(text), nil
}

func decodeExtendedText(id string, data []byte) (Content, error) {
	enc, desc, rest, err := decodeDescribed(id, data)
	if err != nil {
		return nil, err
	}
	value, err := decodeString(rest, enc)
	if err != nil {
		return nil, &types.InvalidFrameDataError{ID: id, Reason: err.Error()}
	}
	return ExtendedText{Description: desc, Value: value}, nil
}

func decodeExtendedLink(id string, data []byte) (Content, error) {
	_, desc, rest, err := decodeDescribed(id, data)
	if err != nil {
		return nil, err
	}
	// The link itself is always ISO-8859-1, unterminated.
	return ExtendedLink{Description: desc, Link: string(rest)}, nil
}

// decodeDescribed splits an [encoding][description<term>][rest] body.
func decodeDescribed(id string, data []byte) (types.Encoding, string, []byte, error) {
	if len(data) < 2 {
		return 0, "", nil, &types.InvalidFrameDataError{ID: id, Reason: "body too short"}
	}
	enc := types.Encoding(data[0])
	rest := data[1:]
	idx, width := findTerminator(rest, enc)
	if idx < 0 {
		return 0, "", nil, &types.InvalidFrameDataError{ID: id, Reason: "description not terminated"}
	}
	desc, err := decodeString(rest[:idx], enc)
	if err != nil {
		return 0, "", nil, &types.InvalidFrameDataError{ID: id, Reason: err.Error()}
	}
	return enc, desc, rest[idx+width:], nil
}

// langDescText is the shared layout of COMM and USLT bodies.
type langDescText struct {
	Lang        string
	Description string
	Text        string
}

func decodeLangDescText(id string, data []byte) (langDescText, error) {
	if len(data) < 5 {
		return langDescText{}, &types.InvalidFrameDataError{ID: id, Reason: "body too short"}
	}
	enc := types.Encoding(data[0])
	lang := string(data[1:4])
	rest := data[4:]
	idx, width := findTerminator(rest, enc)
	if idx < 0 {
		return langDescText{}, &types.InvalidFrameDataError{ID: id, Reason: "description not terminated"}
	}
	desc, err := decodeString(rest[:idx], enc)
	if err != nil {
		return langDescText{}, &types.InvalidFrameDataError{ID: id, Reason: err.Error()}
	}
	text, err := decodeString(rest[idx+width:], enc)
	if err != nil {
		return langDescText{}, &types.InvalidFrameDataError{ID: id, Reason: err.Error()}
	}
	return langDescText{Lang: lang, Description: desc, Text: text}, nil
}

func encodeLangDescText(v langDescText, enc types.Encoding) ([]byte, error) {
	if len(v.Lang) != 3 {
		return nil, &types.InvalidFrameDataError{Reason: "language must be 3 characters"}
	}
	desc, err := encodeString(v.Description, enc)
	if err != nil {
		return nil, err
	}
	text, err := encodeString(v.Text, enc)
	if err != nil {
		return nil, err
	}
	body := make([]byte, 0, 4+len(desc)+2+len(text))
	body = append(body, byte(enc))
	body = append(body, v.Lang...)
	body = append(body, desc...)
	body = append(body, terminator(enc)...)
	return append(body, text...), nil
}

func encodeDescValue(description, value string, enc types.Encoding) ([]byte, error) {
	desc, err := encodeString(description, enc)
	if err != nil {
		return nil, err
	}
	val, err := encodeString(value, enc)
	if err != nil {
		return nil, err
	}
	body := make([]byte, 0, 1+len(desc)+2+len(val))
	body = append(body, byte(enc))
	body = append(body, desc...)
	body = append(body, terminator(enc)...)
	return append(body, val...), nil
}

func decodePicture(id string, version types.Version, data []byte) (Content, error) {
	if len(data) < 4 {
		return nil, &types.InvalidFrameDataError{ID: id, Reason: "body too short"}
	}
	enc := types.Encoding(data[0])

	var mime string
	var rest []byte
	if version == types.ID3v22 {
		// [encoding][format(3)][type][description<term>][data]
		format := string(data[1:4])
		m, ok := imageFormats[format]
		if !ok {
			m = "image/" + strings.ToLower(format)
		}
		mime = m
		rest = data[4:]
	} else {
		// [encoding][mime<0>][type][description<term>][data]
		idx, width := findTerminator(data[1:], types.EncodingLatin1)
		if idx < 0 {
			return nil, &types.InvalidFrameDataError{ID: id, Reason: "MIME type not terminated"}
		}
		mime = string(data[1 : 1+idx])
		rest = data[1+idx+width:]
	}

	if len(rest) < 1 {
		return nil, &types.InvalidFrameDataError{ID: id, Reason: "truncated after MIME type"}
	}
	picType := PictureType(rest[0])
	rest = rest[1:]

	idx, width := findTerminator(rest, enc)
	if idx < 0 {
		return nil, &types.InvalidFrameDataError{ID: id, Reason: "description not terminated"}
	}
	desc, err := decodeString(rest[:idx], enc)
	if err != nil {
		return nil, &types.InvalidFrameDataError{ID: id, Reason: err.Error()}
	}
	img := make([]byte, len(rest[idx+width:]))
	copy(img, rest[idx+width:])
	return Picture{
		MIMEType:    mime,
		PictureType: picType,
		Description: desc,
		Data:        img,
	}, nil
}

func encodePicture(v Picture, enc types.Encoding, version types.Version) ([]byte, error) {
	desc, err := encodeString(v.Description, enc)
	if err != nil {
		return nil, err
	}
	body := make([]byte, 0, 8+len(desc)+len(v.Data))
	body = append(body, byte(enc))
	if version == types.ID3v22 {
		body = append(body, imageFormat(v.MIMEType)...)
	} else {
		body = append(body, v.MIMEType...)
		body = append(body, 0)
	}
	body = append(body, byte(v.PictureType))
	body = append(body, desc...)
	body = append(body, terminator(enc)...)
	return append(body, v.Data...), nil
}

// imageFormat maps a MIME type back to the 3-character ID3v2.2 form.
func imageFormat(mime string) string {
	for format, m := range imageFormats {
		if m == mime {
			return format
		}
	}
	// Fall back to the subtype, upper-cased and clamped to 3 characters.
	if i := strings.IndexByte(mime, '/'); i >= 0 && len(mime) > i+1 {
		sub := strings.ToUpper(mime[i+1:])
		if len(sub) > 3 {
			sub = sub[:3]
		}
		for len(sub) < 3 {
			sub += " "
		}
		return sub
	}
	return "   "
}
