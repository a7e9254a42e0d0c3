// Package seqio opens sequence-related inputs: plain files, gzip files,
// and "-" for stdin.
package seqio

import (
	"bufio"
	"bytes"
	"compress/gzip"
	"errors"
	"io"
	"io/fs"
	"os"
	"strings"
)

// Stdin is the input name that selects os.Stdin.
const Stdin Input = "-"

var gzipMagic = []byte{0x1f, 0x8b}

// Input names a sequence source: a file path or Stdin.
type Input string

// Exists reports whether the input can be looked up. Stdin always exists;
// a stat error other than "not exist" is left for Open to report.
func (in Input) Exists() bool {
	if in == Stdin {
		return true
	}
	_, err := os.Stat(string(in))
	return !errors.Is(err, fs.ErrNotExist)
}

// Open returns a reader over the decompressed contents of in. Gzip is
// recognised by its magic bytes, on stdin as well as on files; a .gz name
// without them is an error.
func (in Input) Open() (io.ReadCloser, error) {
	var src io.ReadCloser = io.NopCloser(os.Stdin)
	if in != Stdin {
		fh, err := os.Open(string(in))
		if err != nil {
			return nil, err
		}
		src = fh
	}

	br := bufio.NewReader(src)
	head, _ := br.Peek(len(gzipMagic))
	if !bytes.Equal(head, gzipMagic) && !strings.HasSuffix(string(in), ".gz") {
		return readCloser{Reader: br, close: src.Close}, nil
	}
	zr, err := gzip.NewReader(br)
	if err != nil {
		_ = src.Close()
		return nil, err
	}
	return readCloser{Reader: zr, close: func() error {
		return errors.Join(zr.Close(), src.Close())
	}}, nil
}

// Open is shorthand for Input(path).Open().
func Open(path string) (io.ReadCloser, error) { return Input(path).Open() }

type readCloser struct {
	io.Reader
	close func() error
}

func (r readCloser) Close() error { return r.close() }
