package content

import (
	"bytes"
	"testing"

	"github.com/simonhull/id3codec/internal/types"
)

func TestDecode_TextLatin1(t *testing.T) {
	body := append([]byte{0x00}, "title"...)
	c, err := Decode("TIT2", types.ID3v23, body)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if c != Text("title") {
		t.Errorf("got %#v, want Text(title)", c)
	}
}

func TestDecode_TextUTF16(t *testing.T) {
	// "ab" in UTF-16LE with byte order mark.
	body := []byte{0x01, 0xFF, 0xFE, 'a', 0x00, 'b', 0x00}
	c, err := Decode("TALB", types.ID3v23, body)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if c != Text("ab") {
		t.Errorf("got %#v, want Text(ab)", c)
	}
}

func TestDecode_TextTrailingTerminator(t *testing.T) {
	body := append([]byte{0x03}, "x\x00"...)
	c, err := Decode("TPE1", types.ID3v24, body)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if c != Text("x") {
		t.Errorf("terminator should not be part of the value, got %#v", c)
	}
}

func TestDecode_TextEmptyBody(t *testing.T) {
	if _, err := Decode("TIT2", types.ID3v23, nil); err == nil {
		t.Error("expected error for empty text body")
	}
}

func TestDecode_InvalidEncodingMarker(t *testing.T) {
	body := append([]byte{0x07}, "x"...)
	if _, err := Decode("TIT2", types.ID3v23, body); err == nil {
		t.Error("expected error for invalid encoding marker")
	}
}

func TestDecode_ExtendedText(t *testing.T) {
	body := append([]byte{0x03}, "desc\x00value"...)
	c, err := Decode("TXXX", types.ID3v24, body)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	want := ExtendedText{Description: "desc", Value: "value"}
	if c != want {
		t.Errorf("got %#v, want %#v", c, want)
	}
}

func TestDecode_ExtendedTextUnterminated(t *testing.T) {
	body := append([]byte{0x00}, "no terminator"...)
	if _, err := Decode("TXXX", types.ID3v23, body); err == nil {
		t.Error("expected error for unterminated description")
	}
}

func TestDecode_Link(t *testing.T) {
	c, err := Decode("WOAR", types.ID3v23, []byte("http://example.com"))
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if c != Link("http://example.com") {
		t.Errorf("got %#v", c)
	}
}

func TestDecode_Comment(t *testing.T) {
	body := append([]byte{0x00}, "engshort\x00the comment"...)
	c, err := Decode("COMM", types.ID3v23, body)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	want := Comment{Lang: "eng", Description: "short", Text: "the comment"}
	if c != want {
		t.Errorf("got %#v, want %#v", c, want)
	}
}

func TestDecode_Lyrics(t *testing.T) {
	body := append([]byte{0x00}, "eng\x00la la la"...)
	c, err := Decode("USLT", types.ID3v23, body)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	want := Lyrics{Lang: "eng", Description: "", Text: "la la la"}
	if c != want {
		t.Errorf("got %#v, want %#v", c, want)
	}
}

func TestDecode_Unknown(t *testing.T) {
	raw := []byte{0x01, 0x02, 0x03}
	c, err := Decode("MCDI", types.ID3v23, raw)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	u, ok := c.(Unknown)
	if !ok || !bytes.Equal(u, raw) {
		t.Errorf("got %#v, want Unknown(%#v)", c, raw)
	}
}

func TestPicture_RoundTripV23(t *testing.T) {
	pic := Picture{
		MIMEType:    "image/jpeg",
		PictureType: PictureCoverFront,
		Description: "front",
		Data:        []byte{0xDE, 0xAD, 0xBE, 0xEF},
	}
	body, err := Encode(pic, types.EncodingLatin1, types.ID3v23)
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	c, err := Decode("APIC", types.ID3v23, body)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if !pic.Equal(c) {
		t.Errorf("round trip = %#v, want %#v", c, pic)
	}
}

func TestPicture_RoundTripV22(t *testing.T) {
	pic := Picture{
		MIMEType:    "image/png",
		PictureType: PictureCoverBack,
		Description: "back",
		Data:        []byte{0x89, 0x50},
	}
	body, err := Encode(pic, types.EncodingLatin1, types.ID3v22)
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	// The v2.2 layout carries a 3-character image format, not a MIME type.
	if !bytes.Equal(body[1:4], []byte("PNG")) {
		t.Fatalf("v2.2 image format = %q, want PNG", body[1:4])
	}
	c, err := Decode("APIC", types.ID3v22, body)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if !pic.Equal(c) {
		t.Errorf("round trip = %#v, want %#v", c, pic)
	}
}

func TestPicture_TruncatedBody(t *testing.T) {
	if _, err := Decode("APIC", types.ID3v23, []byte{0x00, 'i', 'm'}); err == nil {
		t.Error("expected error for truncated APIC body")
	}
}

func TestEncode_RoundTripVariants(t *testing.T) {
	cases := []struct {
		id string
		c  Content
	}{
		{"TIT2", Text("Title")},
		{"TXXX", ExtendedText{Description: "replaygain", Value: "-3.2 dB"}},
		{"WOAF", Link("http://example.com/a")},
		{"WXXX", ExtendedLink{Description: "store", Link: "http://example.com/b"}},
		{"COMM", Comment{Lang: "eng", Description: "note", Text: "hello"}},
		{"USLT", Lyrics{Lang: "ger", Description: "v1", Text: "text body"}},
		{"PRIV", Unknown([]byte{0x00, 0x01})},
	}
	for _, enc := range []types.Encoding{types.EncodingLatin1, types.EncodingUTF16} {
		for _, tt := range cases {
			body, err := Encode(tt.c, enc, types.ID3v23)
			if err != nil {
				t.Fatalf("Encode(%s, %s) failed: %v", tt.id, enc, err)
			}
			got, err := Decode(tt.id, types.ID3v23, body)
			if err != nil {
				t.Fatalf("Decode(%s, %s) failed: %v", tt.id, enc, err)
			}
			if !tt.c.Equal(got) {
				t.Errorf("%s/%s round trip = %#v, want %#v", tt.id, enc, got, tt.c)
			}
		}
	}
}

func TestString(t *testing.T) {
	tests := []struct {
		c    Content
		want string
	}{
		{Text("title"), "title"},
		{Link("http://x"), "http://x"},
		{ExtendedText{Description: "d", Value: "v"}, "d: v"},
		{ExtendedLink{Description: "d", Link: "http://x"}, "d: http://x"},
		{Comment{Lang: "eng", Description: "d", Text: "t"}, "d: t"},
		{Lyrics{Lang: "eng", Description: "d", Text: "body"}, "body"},
		{Picture{MIMEType: "image/png", PictureType: PictureCoverFront, Description: "cover"}, "cover: CoverFront (image/png)"},
		{Unknown([]byte{1, 2, 3}), "unknown, 3 bytes"},
	}
	for _, tt := range tests {
		if got := tt.c.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

func TestEqual_CrossVariant(t *testing.T) {
	if (Text("x")).Equal(Link("x")) {
		t.Error("Text and Link must not compare equal")
	}
	if (Unknown(nil)).Equal(Text("")) {
		t.Error("Unknown and Text must not compare equal")
	}
}
