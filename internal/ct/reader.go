// Package ct reads connectivity-table (CT) files describing the secondary
// structure of a seed sequence.
package ct

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"ctfold/internal/pairing"
	"ctfold/internal/seqio"
)

// minFields is the field count needed to reach the paired-with column.
const minFields = 5

// Table is the parsed content of a CT file.
type Table struct {
	Header   string
	Seq      string
	Pairs    []pairing.Pair
	Unpaired []int
}

// FormatError reports a malformed CT record.
type FormatError struct {
	Path   string
	Line   int
	Reason string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("%s:%d: malformed CT record: %s", e.Path, e.Line, e.Reason)
}

// Read opens path ("-" for stdin, gzip detected) and parses it with Parse.
func Read(ctx context.Context, path string) (Table, error) {
	rc, err := seqio.Open(path)
	if err != nil {
		return Table{}, err
	}
	defer func() { _ = rc.Close() }()
	return Parse(ctx, rc, path)
}

// Parse reads a CT table from r; name labels errors.
//
// The first line is the header. Each following non-blank line is a record
// whose 1st field is the position, 2nd the nucleotide and 5th the
// paired-with position (0 = unpaired). The table must be symmetric: if a
// lists b as partner, b lists a. A pair is recorded at its first
// encounter; the mirrored record is skipped because its position was
// already seen as a partner. Asymmetric tables are not rejected and yield
// whatever pairs that rule produces.
func Parse(ctx context.Context, r io.Reader, name string) (Table, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), 16*1024*1024)

	var (
		t       Table
		seq     strings.Builder
		partner = make(map[int]struct{})
		ln      int
	)
	for sc.Scan() {
		select {
		case <-ctx.Done():
			return Table{}, ctx.Err()
		default:
		}
		ln++
		if ln == 1 {
			t.Header = strings.TrimSpace(sc.Text())
			continue
		}
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		f := strings.Fields(line)
		if len(f) < minFields {
			return Table{}, &FormatError{Path: name, Line: ln, Reason: fmt.Sprintf("want at least %d fields, got %d", minFields, len(f))}
		}
		pos, err := strconv.Atoi(f[0])
		if err != nil {
			return Table{}, &FormatError{Path: name, Line: ln, Reason: fmt.Sprintf("bad position %q", f[0])}
		}
		with, err := strconv.Atoi(f[4])
		if err != nil {
			return Table{}, &FormatError{Path: name, Line: ln, Reason: fmt.Sprintf("bad paired-with position %q", f[4])}
		}
		if len(f[1]) != 1 {
			return Table{}, &FormatError{Path: name, Line: ln, Reason: fmt.Sprintf("bad nucleotide %q", f[1])}
		}

		if with == 0 {
			t.Unpaired = append(t.Unpaired, pos)
		} else {
			partner[with] = struct{}{}
			if _, closing := partner[pos]; !closing {
				t.Pairs = append(t.Pairs, pairing.Pair{X: pos, Y: with})
			}
		}
		seq.WriteString(f[1])
	}
	if err := sc.Err(); err != nil {
		return Table{}, fmt.Errorf("ct scan %s: %w", name, err)
	}
	t.Seq = seq.String()
	return t, nil
}
