// internal/app/app.go
package app

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"

	"ctfold/internal/cli"
	"ctfold/internal/cmdutil"
	"ctfold/internal/config"
	"ctfold/internal/ct"
	"ctfold/internal/fasta"
	"ctfold/internal/pipeline"
	"ctfold/internal/report"
	"ctfold/internal/version"
	"ctfold/internal/writers"
)

// Exit codes.
const (
	ExitOK          = 0
	ExitFailure     = 1 // missing input, malformed CT, I/O
	ExitUsage       = 2 // bad flags, seed length mismatch
	ExitCardinality = 3 // FASTA without exactly one record
	ExitInterrupted = 130
)

func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	outw := bufio.NewWriter(stdout)
	code := run(parent, argv, outw, stderr)
	if e := outw.Flush(); writers.IsBrokenPipe(e) {
		return code
	} else if e != nil {
		_, _ = fmt.Fprintln(stderr, e)
		return ExitFailure
	}
	return code
}

func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}

func run(ctx context.Context, argv []string, outw io.Writer, stderr io.Writer) int {
	fs := cli.NewFlagSet("ctfold")
	fs.SetOutput(io.Discard)

	opts, err := cli.ParseArgs(fs, argv)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			fs.SetOutput(outw)
			fs.Usage()
			return ExitOK
		}
		_, _ = fmt.Fprintln(stderr, err)
		fs.SetOutput(stderr)
		fs.Usage()
		return ExitUsage
	}
	if opts.Version {
		_, _ = fmt.Fprintf(outw, "ctfold version %s\n", version.Version)
		return ExitOK
	}

	cfg, err := config.Load(opts.ConfigFile)
	if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return ExitUsage
	}
	format, err := opts.ApplyConfig(cfg)
	if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return ExitUsage
	}

	log := cmdutil.Logger{Dst: stderr, Quiet: opts.Quiet}
	pcfg := pipeline.Config{
		CTPath:    opts.CTFile,
		FastaPath: opts.FastaFile,
		Start:     opts.Start,
		End:       opts.End,
		Format:    format,
	}
	res, err := pipeline.Run(ctx, pcfg)
	if err != nil {
		return fail(log, err)
	}
	logDiagnostics(log, pcfg, res)

	if err := persist(opts, pcfg, res, outw); err != nil {
		if writers.IsBrokenPipe(err) {
			return ExitOK
		}
		log.Errorf("%v", err)
		return ExitFailure
	}
	return ExitOK
}

// persist writes the constraint document and the optional report. Both are
// encoded and staged before either is committed, so a failure leaves neither
// file behind.
func persist(opts cli.Options, pcfg pipeline.Config, res pipeline.Result, stdout io.Writer) error {
	var rep bytes.Buffer
	if opts.ReportFile != "" {
		if err := report.Encode(&rep, report.EncodingFor(opts.ReportFile), report.FromResult(pcfg, res)); err != nil {
			return fmt.Errorf("report: %w", err)
		}
	}

	doc, err := writers.Stage(opts.OutputFile, res.Doc.Bytes(), stdout)
	if err != nil {
		return err
	}
	if opts.ReportFile == "" {
		return doc.Commit()
	}
	rs, err := writers.Stage(opts.ReportFile, rep.Bytes(), stdout)
	if err != nil {
		doc.Discard()
		return fmt.Errorf("report: %w", err)
	}
	if err := doc.Commit(); err != nil {
		rs.Discard()
		return err
	}
	if err := rs.Commit(); err != nil {
		if !writers.IsBrokenPipe(err) {
			doc.Remove()
		}
		return fmt.Errorf("report: %w", err)
	}
	return nil
}

// fail reports err and maps it to an exit code.
func fail(log cmdutil.Logger, err error) int {
	var (
		missing  *pipeline.MissingInputError
		mismatch *pipeline.LengthMismatchError
		card     *fasta.CardinalityError
		format   *ct.FormatError
	)
	switch {
	case errors.Is(err, context.Canceled):
		return ExitInterrupted
	case errors.As(err, &missing):
		log.Errorf("%s does not exist", missing.Path)
		return ExitFailure
	case errors.As(err, &card):
		log.Errorf("%v", card)
		return ExitCardinality
	case errors.As(err, &mismatch):
		log.Errorf("%v", mismatch)
		return ExitUsage
	case errors.As(err, &format):
		log.Errorf("%v", format)
		return ExitFailure
	default:
		log.Errorf("%v", err)
		return ExitFailure
	}
}

func logDiagnostics(log cmdutil.Logger, cfg pipeline.Config, res pipeline.Result) {
	for _, rj := range res.Validation.Rejected {
		log.Infof("dropped pair %s", rj)
	}
	log.Infof("%d non-canonical base pair(s) removed from the seed structure", res.Validation.Dropped())

	switch {
	case !res.Seed.Checked:
		log.Warnf("seed span [%d,%d) lies outside the %d nt sequence %q; seed not compared",
			cfg.Start, cfg.End, len(res.Record.Seq), res.Record.ID)
	case !res.Seed.Match:
		log.Warnf("seed %s differs from %s[%d:%d] %s",
			res.Table.Seq, res.Record.ID, cfg.Start, cfg.End, res.Seed.Full)
	}
}
