package writers

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"syscall"
)

// Stdout is the path placeholder that selects the stdout writer.
const Stdout = "-"

// Staged is output written to a temp file next to its destination and not
// yet visible under its final name. Stdout output is held in memory.
type Staged struct {
	path   string
	tmp    string
	data   []byte
	stdout io.Writer
}

// Stage writes data to a temp file in the directory of path. Nothing is
// visible at path until Commit; Discard drops the temp file.
func Stage(path string, data []byte, stdout io.Writer) (*Staged, error) {
	s := &Staged{path: path, data: data, stdout: stdout}
	if path == Stdout {
		return s, nil
	}
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".tmp-*")
	if err != nil {
		return nil, fmt.Errorf("create %s: %w", path, err)
	}
	s.tmp = tmp.Name()
	werr := func() error {
		if _, err := tmp.Write(data); err != nil {
			return err
		}
		if err := tmp.Sync(); err != nil {
			return err
		}
		return tmp.Chmod(0o644)
	}()
	if cerr := tmp.Close(); werr == nil {
		werr = cerr
	}
	if werr != nil {
		s.Discard()
		return nil, fmt.Errorf("write %s: %w", path, werr)
	}
	return s, nil
}

// Commit moves the staged file into place, or writes the data to stdout.
func (s *Staged) Commit() error {
	if s.path == Stdout {
		_, err := s.stdout.Write(s.data)
		return err
	}
	if err := os.Rename(s.tmp, s.path); err != nil {
		s.Discard()
		return fmt.Errorf("write %s: %w", s.path, err)
	}
	s.tmp = ""
	return nil
}

// Discard removes an uncommitted temp file. It is a no-op after Commit.
func (s *Staged) Discard() {
	if s.tmp != "" {
		_ = os.Remove(s.tmp)
		s.tmp = ""
	}
}

// Remove deletes a committed file. Stdout cannot be taken back.
func (s *Staged) Remove() {
	if s.path != Stdout {
		_ = os.Remove(s.path)
	}
}

// WriteFile writes data to path, replacing any existing file atomically.
// When path is "-" data goes to stdout instead.
func WriteFile(path string, data []byte, stdout io.Writer) error {
	s, err := Stage(path, data, stdout)
	if err != nil {
		return err
	}
	return s.Commit()
}

// IsBrokenPipe reports whether err comes from a downstream reader that went
// away (EPIPE or a closed pipe), e.g. `ctfold ... -o - | head -1`.
func IsBrokenPipe(err error) bool {
	return err != nil && (errors.Is(err, syscall.EPIPE) || errors.Is(err, io.ErrClosedPipe))
}
