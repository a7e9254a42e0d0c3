package pipeline

import (
	"fmt"
	"io/fs"
)

// MissingInputError reports an input path that does not exist.
type MissingInputError struct {
	Path string
}

func (e *MissingInputError) Error() string { return fmt.Sprintf("%s does not exist", e.Path) }

// Unwrap lets errors.Is(err, fs.ErrNotExist) match.
func (e *MissingInputError) Unwrap() error { return fs.ErrNotExist }

// LengthMismatchError reports a CT seed whose length differs from end-start.
type LengthMismatchError struct {
	Seed     int
	Declared int
}

func (e *LengthMismatchError) Error() string {
	return fmt.Sprintf("inconsistent seed length: CT file has %d nt, start/end span %d nt", e.Seed, e.Declared)
}
