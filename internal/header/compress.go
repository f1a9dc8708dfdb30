package header

import (
	"bytes"
	"compress/zlib"
	"fmt"
	"io"
)

// zlibCompress deflates a frame body for the compression flag.
func zlibCompress(body []byte) ([]byte, error) {
	var buf bytes.Buffer
	zw := zlib.NewWriter(&buf)
	if _, err := zw.Write(body); err != nil {
		return nil, fmt.Errorf("compress frame body: %w", err)
	}
	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("compress frame body: %w", err)
	}
	return buf.Bytes(), nil
}

// zlibDecompress inflates a compressed frame body. want is the recorded
// original size and bounds the read, so a corrupted stream cannot balloon.
func zlibDecompress(body []byte, want uint32) ([]byte, error) {
	if want > maxFrameSize {
		return nil, fmt.Errorf("recorded size %d exceeds sanity bound", want)
	}
	zr, err := zlib.NewReader(bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	defer zr.Close()

	out := make([]byte, want)
	if _, err := io.ReadFull(zr, out); err != nil {
		return nil, err
	}
	return out, nil
}
