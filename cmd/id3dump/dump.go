package main

import (
	"bytes"
	"context"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"
	"runtime"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/simonhull/id3codec"
	"github.com/simonhull/id3codec/internal/logging"
	"github.com/simonhull/id3codec/internal/unsynch"
)

// Tag header flag bits.
const (
	tagUnsynchronization = 0x80
	tagExtendedHeader    = 0x40
)

// fileDump collects one file's rendered frames so concurrent workers can
// print in argument order.
type fileDump struct {
	path    string
	version id3codec.Version
	lines   []string
}

// dumpFiles processes every path concurrently and prints results in
// order.
func dumpFiles(paths []string, cfg *Config) error {
	dumps := make([]*fileDump, len(paths))

	g, _ := errgroup.WithContext(context.Background())
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			d, err := dumpFile(path, cfg)
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
			dumps[i] = d
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	for _, d := range dumps {
		fmt.Printf("%s (%s)\n", d.path, d.version)
		for _, line := range d.lines {
			fmt.Printf("  %s\n", line)
		}
	}
	return nil
}

// dumpFile walks one file's tag container and decodes every frame.
func dumpFile(path string, cfg *Config) (*fileDump, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var hdr [10]byte
	if _, err := io.ReadFull(f, hdr[:]); err != nil {
		return nil, fmt.Errorf("read tag header: %w", err)
	}
	if string(hdr[0:3]) != "ID3" {
		return nil, errors.New("no ID3v2 tag")
	}

	version := id3codec.Version(hdr[3])
	if !version.Supported() {
		return nil, &id3codec.UnsupportedVersionError{Version: version}
	}
	unsynchronized := hdr[5]&tagUnsynchronization != 0
	extended := hdr[5]&tagExtendedHeader != 0
	tagSize := unsynch.DecodeUint32([4]byte(hdr[6:10]))

	data := make([]byte, tagSize)
	if _, err := io.ReadFull(f, data); err != nil {
		return nil, fmt.Errorf("read tag data: %w", err)
	}

	r := bytes.NewReader(data)
	if extended {
		if err := skipExtendedHeader(r, version); err != nil {
			return nil, err
		}
	}

	log := logging.L().With(zap.String("path", path))
	dump := &fileDump{path: path, version: version}

	var offset int64
	for r.Len() > 0 {
		n, frame, err := id3codec.ReadFrom(r, version, unsynchronized)
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			log.Warn("stopping at undecodable frame",
				zap.Int64("offset", offset),
				zap.Error(err),
			)
			break
		}
		if frame == nil {
			log.Debug("padding reached", zap.Int64("offset", offset))
			break
		}

		log.Debug("frame decoded",
			zap.String("id", frame.ID()),
			zap.Int64("size", n),
		)
		if line, ok := renderFrame(frame, offset, cfg); ok {
			dump.lines = append(dump.lines, line)
		}
		offset += n
	}
	return dump, nil
}

// skipExtendedHeader consumes the extended header, whose size field is
// plain big-endian and exclusive of itself in v2.3 but synch-safe and
// inclusive in v2.4. v2.2 has no extended header.
func skipExtendedHeader(r *bytes.Reader, version id3codec.Version) error {
	if version == id3codec.ID3v22 {
		return nil
	}
	var sizeBytes [4]byte
	if _, err := io.ReadFull(r, sizeBytes[:]); err != nil {
		return fmt.Errorf("read extended header: %w", err)
	}
	var skip int64
	if version == id3codec.ID3v23 {
		skip = int64(binary.BigEndian.Uint32(sizeBytes[:]))
	} else {
		skip = int64(unsynch.DecodeUint32(sizeBytes)) - 4
	}
	if skip < 0 || skip > int64(r.Len()) {
		return errors.New("extended header size exceeds tag")
	}
	if _, err := r.Seek(skip, io.SeekCurrent); err != nil {
		return err
	}
	return nil
}

// renderFrame formats one frame per the display config. The second
// return is false when the config filters the frame out.
func renderFrame(frame *id3codec.Frame, offset int64, cfg *Config) (string, bool) {
	if _, unknown := frame.Content().(id3codec.Unknown); unknown && !cfg.ShowUnknown {
		return "", false
	}

	value := frame.String()
	if cfg.MaxValueLength > 0 && len(value) > cfg.MaxValueLength {
		value = value[:cfg.MaxValueLength] + "..."
	}
	if cfg.ShowOffsets {
		return fmt.Sprintf("%6d  %s  %s", offset, frame.ID(), value), true
	}
	return fmt.Sprintf("%s  %s", frame.ID(), value), true
}
