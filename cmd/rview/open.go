package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/go-logr/logr"
	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/snappy"
	"github.com/klauspost/compress/zstd"

	"github.com/dacapoday/ranges/view"
)

// maxLine is the longest line rview accepts.
const maxLine = 1 << 20

type closerFunc func() error

func (f closerFunc) Close() error { return f() }

// openLines streams the lines of filename, decompressing it if its
// extension names a known codec. Closing the result closes the file.
func openLines(log logr.Logger, filename string) (*view.LineSource, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}

	ext := filepath.Ext(filename)
	r, closers, err := decode(ext, f)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	log.V(1).Info("opened", "file", filename, "codec", codec(ext))

	lines := view.Lines(r, append(closers, f)...)
	lines.Buffer(make([]byte, 0, 64*1024), maxLine)
	return lines, nil
}

func codec(ext string) string {
	switch ext {
	case ".gz":
		return "gzip"
	case ".zst":
		return "zstd"
	case ".sz":
		return "snappy"
	}
	return "none"
}

// decode wraps r in the decompressor for ext. The returned closers release
// the decompressor, not r.
func decode(ext string, r io.Reader) (io.Reader, []io.Closer, error) {
	switch ext {
	case ".gz":
		zr, err := gzip.NewReader(r)
		if err != nil {
			return nil, nil, err
		}
		return zr, []io.Closer{zr}, nil
	case ".zst":
		zr, err := zstd.NewReader(r)
		if err != nil {
			return nil, nil, err
		}
		return zr, []io.Closer{closerFunc(func() error {
			zr.Close()
			return nil
		})}, nil
	case ".sz":
		return snappy.NewReader(r), nil, nil
	}
	return r, nil, nil
}
