// Package fasta reads the single-record FASTA file a seed is folded into.
package fasta

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"ctfold/internal/seqio"
)

// Record is a parsed FASTA record.
type Record struct {
	ID  string
	Seq string
}

// CardinalityError reports a FASTA input that does not hold exactly one record.
type CardinalityError struct {
	Path    string
	Records int
}

func (e *CardinalityError) Error() string {
	return fmt.Sprintf("%s: one and only one sequence should be present in the input file (found %d)", e.Path, e.Records)
}

// ReadSingle opens path ("-" for stdin, gzip detected) and parses it with ParseSingle.
func ReadSingle(ctx context.Context, path string) (Record, error) {
	rc, err := seqio.Open(path)
	if err != nil {
		return Record{}, err
	}
	defer func() { _ = rc.Close() }()
	return ParseSingle(ctx, rc, path)
}

// ParseSingle reads exactly one FASTA record from r; name labels errors.
// Lines are trimmed and blank lines skipped. The ID is the full header
// text after '>'. Sequence lines are concatenated as-is.
func ParseSingle(ctx context.Context, r io.Reader, name string) (Record, error) {
	sc := bufio.NewScanner(r)
	const maxLine = 64 * 1024 * 1024 // allow very long single-line sequences (64 MiB)
	sc.Buffer(make([]byte, 64*1024), maxLine)

	var (
		rec     Record
		seq     strings.Builder
		headers int
	)
	for sc.Scan() {
		select {
		case <-ctx.Done():
			return Record{}, ctx.Err()
		default:
		}
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		if line[0] == '>' {
			headers++
			rec.ID = strings.TrimSpace(line[1:])
			continue
		}
		seq.WriteString(line)
	}
	if err := sc.Err(); err != nil {
		return Record{}, fmt.Errorf("fasta scan %s: %w", name, err)
	}
	if headers != 1 {
		return Record{}, &CardinalityError{Path: name, Records: headers}
	}
	rec.Seq = seq.String()
	return rec, nil
}
