package id3codec

import (
	"bytes"
	"errors"
	"testing"
)

// utf16LE encodes s as UTF-16LE with a byte order mark, the form the
// codec writes for EncodingUTF16.
func utf16LE(s string) []byte {
	out := []byte{0xFF, 0xFE}
	for _, r := range s {
		out = append(out, byte(r), byte(r>>8))
	}
	return out
}

func mustNew(t *testing.T, id string, c Content) *Frame {
	t.Helper()
	f, err := New(id, c)
	if err != nil {
		t.Fatalf("New(%q) failed: %v", id, err)
	}
	return f
}

func TestNew_TranslatesShortIdentifier(t *testing.T) {
	f := mustNew(t, "TT2", Text("title"))
	if f.ID() != "TIT2" {
		t.Errorf("ID() = %q, want TIT2", f.ID())
	}
}

func TestNew_InvalidIdentifiers(t *testing.T) {
	cases := []string{"", "TI", "TIT22", "tit2", "ZZZ", "TI 2"}
	for _, id := range cases {
		if _, err := New(id, Text("x")); err == nil {
			t.Errorf("New(%q) should fail", id)
		}
	}
}

func TestIDForVersion(t *testing.T) {
	f := mustNew(t, "TIT2", Text("title"))

	id, ok := f.IDForVersion(ID3v22)
	if !ok || id != "TT2" {
		t.Errorf("IDForVersion(v2.2) = %q, %v; want TT2, true", id, ok)
	}
	id, ok = f.IDForVersion(ID3v23)
	if !ok || id != "TIT2" {
		t.Errorf("IDForVersion(v2.3) = %q, %v; want TIT2, true", id, ok)
	}

	// TSST (set subtitle) postdates ID3v2.2.
	f = mustNew(t, "TSST", Text("disc one"))
	if _, ok := f.IDForVersion(ID3v22); ok {
		t.Error("TSST should have no v2.2 identifier")
	}
}

func TestWriteTo_V22(t *testing.T) {
	f := mustNew(t, "TAL", Text("album"))

	var buf bytes.Buffer
	n, err := f.WriteTo(&buf, ID3v22, false)
	if err != nil {
		t.Fatalf("WriteTo failed: %v", err)
	}

	body := append([]byte{byte(EncodingUTF16)}, utf16LE("album")...)
	want := []byte("TAL")
	want = append(want, 0x00, 0x00, byte(len(body)))
	want = append(want, body...)

	if !bytes.Equal(buf.Bytes(), want) {
		t.Errorf("wire = % x\nwant   % x", buf.Bytes(), want)
	}
	if n != int64(len(want)) {
		t.Errorf("n = %d, want %d", n, len(want))
	}
}

func TestWriteTo_V23(t *testing.T) {
	f := mustNew(t, "TALB", Text("album"))

	var buf bytes.Buffer
	if _, err := f.WriteTo(&buf, ID3v23, false); err != nil {
		t.Fatalf("WriteTo failed: %v", err)
	}

	body := append([]byte{byte(EncodingUTF16)}, utf16LE("album")...)
	want := []byte("TALB")
	want = append(want, 0x00, 0x00, 0x00, byte(len(body)))
	want = append(want, 0x00, 0x00)
	want = append(want, body...)

	if !bytes.Equal(buf.Bytes(), want) {
		t.Errorf("wire = % x\nwant   % x", buf.Bytes(), want)
	}
}

func TestWriteTo_V24(t *testing.T) {
	f := mustNew(t, "TALB", Text("album"))
	f.SetTagAlterPreservation(true)
	f.SetFileAlterPreservation(true)

	var buf bytes.Buffer
	if _, err := f.WriteTo(&buf, ID3v24, false); err != nil {
		t.Fatalf("WriteTo failed: %v", err)
	}

	body := append([]byte{byte(EncodingUTF8)}, "album"...)
	want := []byte("TALB")
	want = append(want, 0x00, 0x00, 0x00, byte(len(body))) // synch-safe, small value
	want = append(want, 0x60, 0x00)
	want = append(want, body...)

	if !bytes.Equal(buf.Bytes(), want) {
		t.Errorf("wire = % x\nwant   % x", buf.Bytes(), want)
	}
}

func TestRoundTrip_V23(t *testing.T) {
	frames := []*Frame{
		mustNew(t, "TIT2", Text("Title")),
		mustNew(t, "TXXX", ExtendedText{Description: "d", Value: "v"}),
		mustNew(t, "COMM", Comment{Lang: "eng", Description: "c", Text: "body"}),
		mustNew(t, "USLT", Lyrics{Lang: "eng", Description: "", Text: "la la"}),
		mustNew(t, "APIC", Picture{
			MIMEType:    "image/png",
			PictureType: PictureCoverFront,
			Description: "front",
			Data:        []byte{1, 2, 3},
		}),
		mustNew(t, "WOAR", Link("http://example.com")),
		mustNew(t, "MCDI", Unknown([]byte{9, 8, 7})),
	}
	frames[0].SetCompression(true)
	frames[1].SetTagAlterPreservation(true)
	frames[2].Flags().Encryption = true
	frames[3].Flags().GroupingIdentity = true
	frames[4].SetFileAlterPreservation(true)

	for _, f := range frames {
		var buf bytes.Buffer
		n, err := f.WriteTo(&buf, ID3v23, false)
		if err != nil {
			t.Fatalf("%s: WriteTo failed: %v", f.ID(), err)
		}
		rn, got, err := ReadFrom(&buf, ID3v23, false)
		if err != nil {
			t.Fatalf("%s: ReadFrom failed: %v", f.ID(), err)
		}
		if got == nil {
			t.Fatalf("%s: unexpected padding", f.ID())
		}
		if rn != n {
			t.Errorf("%s: wrote %d bytes but read %d", f.ID(), n, rn)
		}
		if !f.Equal(got) {
			t.Errorf("%s: round trip = %v, want %v", f.ID(), got, f)
		}
		if !f.Content().Equal(got.Content()) {
			t.Errorf("%s: content = %#v, want %#v", f.ID(), got.Content(), f.Content())
		}
	}
}

func TestRoundTrip_V24_Unsynchronized(t *testing.T) {
	f := mustNew(t, "APIC", Picture{
		MIMEType:    "image/jpeg",
		PictureType: PictureCoverFront,
		Description: "art",
		Data:        []byte{0xFF, 0xE0, 0xFF, 0x00, 0x42},
	})

	var buf bytes.Buffer
	if _, err := f.WriteTo(&buf, ID3v24, true); err != nil {
		t.Fatalf("WriteTo failed: %v", err)
	}
	_, got, err := ReadFrom(&buf, ID3v24, true)
	if err != nil {
		t.Fatalf("ReadFrom failed: %v", err)
	}
	if !f.Content().Equal(got.Content()) {
		t.Errorf("content = %#v, want %#v", got.Content(), f.Content())
	}
}

func TestRoundTrip_V22(t *testing.T) {
	f := mustNew(t, "TAL", Text("Album Name"))

	var buf bytes.Buffer
	if _, err := f.WriteTo(&buf, ID3v22, false); err != nil {
		t.Fatalf("WriteTo failed: %v", err)
	}
	_, got, err := ReadFrom(&buf, ID3v22, false)
	if err != nil {
		t.Fatalf("ReadFrom failed: %v", err)
	}
	if got.ID() != "TALB" {
		t.Errorf("ID() = %q, want TALB", got.ID())
	}
	if !f.Equal(got) {
		t.Error("round trip through v2.2 lost identity")
	}
}

func TestWriteTo_V22_DropsFlags(t *testing.T) {
	f := mustNew(t, "TAL", Text("album"))
	f.SetCompression(true)

	var buf bytes.Buffer
	if _, err := f.WriteTo(&buf, ID3v22, false); err != nil {
		t.Fatalf("WriteTo failed: %v", err)
	}
	_, got, err := ReadFrom(&buf, ID3v22, false)
	if err != nil {
		t.Fatalf("ReadFrom failed: %v", err)
	}
	// v2.2 has no flags field; the compression flag is an accepted loss.
	if got.Compression() {
		t.Error("compression flag cannot survive a v2.2 round trip")
	}
	if got.Content() != Text("album") {
		t.Errorf("content = %#v, want Text(album)", got.Content())
	}
}

func TestWriteTo_V22_UnrepresentableFrame(t *testing.T) {
	f := mustNew(t, "TSST", Text("x"))

	var buf bytes.Buffer
	_, err := f.WriteTo(&buf, ID3v22, false)
	var invalid *InvalidIdentifierError
	if !errors.As(err, &invalid) {
		t.Errorf("expected InvalidIdentifierError, got %v", err)
	}
	if buf.Len() != 0 {
		t.Error("no partial output on failure")
	}
}

func TestUnsupportedVersion(t *testing.T) {
	f := mustNew(t, "TIT2", Text("x"))

	var buf bytes.Buffer
	var unsupported *UnsupportedVersionError
	if _, err := f.WriteTo(&buf, Version(5), false); !errors.As(err, &unsupported) {
		t.Errorf("WriteTo: expected UnsupportedVersionError, got %v", err)
	}
	if _, _, err := ReadFrom(&buf, Version(1), false); !errors.As(err, &unsupported) {
		t.Errorf("ReadFrom: expected UnsupportedVersionError, got %v", err)
	}
}

func TestWriteTo_EncodingVersionMismatch(t *testing.T) {
	f := mustNew(t, "TIT2", Text("x"))

	var buf bytes.Buffer
	_, err := f.WriteTo(&buf, ID3v23, false, WithEncoding(EncodingUTF8))
	if err == nil {
		t.Error("UTF-8 is not valid before ID3v2.4")
	}
	if _, err := f.WriteTo(&buf, ID3v24, false, WithEncoding(EncodingUTF8)); err != nil {
		t.Errorf("UTF-8 should be valid in ID3v2.4: %v", err)
	}
}

func TestReadFrom_Padding(t *testing.T) {
	_, f, err := ReadFrom(bytes.NewReader(make([]byte, 32)), ID3v23, false)
	if err != nil {
		t.Fatalf("padding must not be an error: %v", err)
	}
	if f != nil {
		t.Errorf("expected no frame for padding, got %v", f)
	}
}

func TestEquality_TextByIdentifier(t *testing.T) {
	a := mustNew(t, "TIT2", Text("one"))
	b := mustNew(t, "TIT2", Text("two"))

	if !a.Equal(b) {
		t.Error("text frames with the same identifier must be equal")
	}
	if a.Hash() != b.Hash() {
		t.Error("equal frames must hash identically")
	}

	c := mustNew(t, "TALB", Text("one"))
	if a.Equal(c) {
		t.Error("different identifiers must not be equal")
	}
}

func TestEquality_PictureByContent(t *testing.T) {
	a := mustNew(t, "APIC", Picture{MIMEType: "image/png", PictureType: PictureCoverFront, Data: []byte{1}})
	b := mustNew(t, "APIC", Picture{MIMEType: "image/png", PictureType: PictureCoverBack, Data: []byte{2}})

	if a.Equal(b) {
		t.Error("picture frames with different content must not be equal")
	}
	if a.Hash() == b.Hash() {
		t.Error("unequal picture frames should hash differently")
	}

	c := mustNew(t, "APIC", Picture{MIMEType: "image/png", PictureType: PictureCoverFront, Data: []byte{1}})
	if !a.Equal(c) || a.Hash() != c.Hash() {
		t.Error("structurally equal picture frames must be equal and hash identically")
	}
}

func TestSetCompression_CouplesDataLengthIndicator(t *testing.T) {
	f := mustNew(t, "TIT2", Text("x"))
	f.SetCompression(true)
	if !f.Flags().DataLengthIndicator {
		t.Error("compression must set the data length indicator")
	}
	f.SetCompression(false)
	if f.Flags().DataLengthIndicator {
		t.Error("clearing compression must clear the data length indicator")
	}
}

func TestFrameString(t *testing.T) {
	f := mustNew(t, "TXXX", ExtendedText{Description: "description", Value: "value"})
	if got := f.String(); got != "description: value" {
		t.Errorf("String() = %q", got)
	}
}

func TestDecodeContent(t *testing.T) {
	body := append([]byte{0x00}, "hello"...)
	c, err := DecodeContent("TIT2", ID3v23, body)
	if err != nil {
		t.Fatalf("DecodeContent failed: %v", err)
	}
	if c != Text("hello") {
		t.Errorf("got %#v, want Text(hello)", c)
	}

	if _, err := DecodeContent("TT2", ID3v23, body); err == nil {
		t.Error("DecodeContent requires the 4-character form")
	}
}
