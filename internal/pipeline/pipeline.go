package pipeline

import (
	"context"
	"fmt"
	"strings"

	"ctfold/internal/constraint"
	"ctfold/internal/ct"
	"ctfold/internal/fasta"
	"ctfold/internal/pairing"
	"ctfold/internal/remap"
	"ctfold/internal/seqio"
)

// Config holds the validated inputs of one run.
type Config struct {
	CTPath    string
	FastaPath string
	Start     int // 0-based seed start within the full sequence
	End       int // 0-based, exclusive
	Format    constraint.Format
}

// SeedCheck compares the CT seed with full[start:end].
type SeedCheck struct {
	Checked bool   // false when start/end fall outside the full sequence
	Match   bool   // case-insensitive, T and U equivalent
	Full    string // full[start:end] when Checked
}

// Result is everything a run produced.
type Result struct {
	Record     fasta.Record
	Table      ct.Table
	Validation pairing.Result
	Offset     int
	Pairs      []pairing.Pair // full-sequence coordinates
	Unpaired   []int          // full-sequence coordinates
	Seed       SeedCheck
	Doc        constraint.Document
}

// Run executes the conversion described by cfg.
func Run(ctx context.Context, cfg Config) (Result, error) {
	for _, p := range []string{cfg.CTPath, cfg.FastaPath} {
		if !seqio.Input(p).Exists() {
			return Result{}, &MissingInputError{Path: p}
		}
	}

	var (
		res Result
		err error
	)
	res.Record, err = fasta.ReadSingle(ctx, cfg.FastaPath)
	if err != nil {
		return Result{}, fmt.Errorf("read sequence: %w", err)
	}
	res.Table, err = ct.Read(ctx, cfg.CTPath)
	if err != nil {
		return Result{}, fmt.Errorf("read CT: %w", err)
	}
	res.Validation = pairing.Validate(res.Table.Seq, res.Table.Pairs)

	if declared := cfg.End - cfg.Start; len(res.Table.Seq) != declared {
		return Result{}, &LengthMismatchError{Seed: len(res.Table.Seq), Declared: declared}
	}

	res.Offset = cfg.Start
	res.Pairs, res.Unpaired = remap.Shift(res.Validation.Kept, res.Table.Unpaired, res.Offset)
	res.Seed = checkSeed(res.Record.Seq, res.Table.Seq, cfg.Start, cfg.End)

	res.Doc, err = constraint.Render(cfg.Format, constraint.Input{
		ID:       res.Record.ID,
		Seq:      res.Record.Seq,
		Pairs:    res.Pairs,
		Unpaired: res.Unpaired,
	})
	if err != nil {
		return Result{}, fmt.Errorf("render %s: %w", cfg.Format, err)
	}
	return res, nil
}

func checkSeed(full, seed string, start, end int) SeedCheck {
	if start < 0 || end > len(full) || start > end {
		return SeedCheck{}
	}
	sub := full[start:end]
	return SeedCheck{Checked: true, Match: normalize(sub) == normalize(seed), Full: sub}
}

func normalize(s string) string {
	return strings.ReplaceAll(strings.ToUpper(s), "T", "U")
}
