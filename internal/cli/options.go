// internal/cli/options.go
package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"

	"ctfold/internal/config"
	"ctfold/internal/constraint"
	"ctfold/internal/version"
)

// Options holds all CLI flags.
type Options struct {
	// Input
	CTFile    string
	FastaFile string
	Start     int
	End       int

	// Output
	Format     string
	OutputFile string
	ReportFile string

	// Misc
	ConfigFile string
	Quiet      bool
	Version    bool

	quietSet bool // --quiet/-q given explicitly; config may not override it
}

// NewFlagSet returns a ContinueOnError FlagSet with the grouped usage text.
func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.Usage = func() { usage(fs.Output(), name) }
	return fs
}

func usage(out io.Writer, name string) {
	_, _ = fmt.Fprintf(out, "%s – seed structure to folding constraints\n\n", name)
	_, _ = fmt.Fprintln(out, "License: MIT")
	_, _ = fmt.Fprintf(out, "Version: %s\n\n", version.Version)

	_, _ = fmt.Fprintln(out, "Usage:")
	_, _ = fmt.Fprintf(out, "  %s -ct seed.ct -fa target.fa -s START -e END -o out.const\n", name)
	_, _ = fmt.Fprintf(out, "  %s -ct seed.ct -fa target.fa -s START -e END -f ViennaRNA -o out.fa\n", name)

	_, _ = fmt.Fprintln(out, "\nInput:")
	_, _ = fmt.Fprintln(out, "  -ct, --ct-file file         CT file of the seed structure ('-' for STDIN) [*]")
	_, _ = fmt.Fprintln(out, "  -fa, --fasta file           Single-record FASTA to fold [*]")
	_, _ = fmt.Fprintln(out, "  -s,  --start int            Seed start, 0-based within the FASTA sequence [*]")
	_, _ = fmt.Fprintln(out, "  -e,  --end int              Seed end, 0-based exclusive [*]")

	_, _ = fmt.Fprintln(out, "\nOutput:")
	_, _ = fmt.Fprintf(out, "  -f,  --format string        Constraint format: RNAstructure | ViennaRNA [%s]\n", config.DefaultFormat)
	_, _ = fmt.Fprintln(out, "  -o,  --output file          Output constraint file ('-' for STDOUT) [*]")
	_, _ = fmt.Fprintln(out, "       --report file          Diagnostic report (.json, .yaml/.yml)")

	_, _ = fmt.Fprintln(out, "\nMiscellaneous:")
	_, _ = fmt.Fprintln(out, "       --config file          YAML defaults (format, quiet, report)")
	_, _ = fmt.Fprintln(out, "  -q,  --quiet                Suppress informational diagnostics [false]")
	_, _ = fmt.Fprintln(out, "  -v,  --version              Print version and exit")
	_, _ = fmt.Fprintln(out, "  -h,  --help                 Show this help and exit")

	_, _ = fmt.Fprintf(out, "\nEnvironment: %s, %s, %s (also read from ./.env)\n", config.EnvFormat, config.EnvQuiet, config.EnvReport)
}

// ParseArgs registers and parses all flags. Format, report and quiet left
// unset here are filled from config by ApplyConfig.
func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var opt Options
	var help bool

	// Input
	fs.StringVar(&opt.CTFile, "ct-file", "", "CT file of the seed")
	fs.StringVar(&opt.CTFile, "ct", "", "alias of --ct-file")
	fs.StringVar(&opt.FastaFile, "fasta", "", "single-record FASTA file")
	fs.StringVar(&opt.FastaFile, "fa", "", "alias of --fasta")
	fs.IntVar(&opt.Start, "start", 0, "seed start, 0-based")
	fs.IntVar(&opt.Start, "s", 0, "alias of --start")
	fs.IntVar(&opt.End, "end", 0, "seed end, 0-based exclusive")
	fs.IntVar(&opt.End, "e", 0, "alias of --end")

	// Output
	fs.StringVar(&opt.Format, "format", "", "constraint format: RNAstructure | ViennaRNA")
	fs.StringVar(&opt.Format, "f", "", "alias of --format")
	fs.StringVar(&opt.OutputFile, "output", "", "output constraint file")
	fs.StringVar(&opt.OutputFile, "o", "", "alias of --output")
	fs.StringVar(&opt.ReportFile, "report", "", "diagnostic report file")

	// Misc
	fs.StringVar(&opt.ConfigFile, "config", "", "YAML defaults file")
	fs.BoolVar(&opt.Quiet, "quiet", false, "suppress informational diagnostics")
	fs.BoolVar(&opt.Quiet, "q", false, "alias of --quiet")
	fs.BoolVar(&opt.Version, "version", false, "print version and exit")
	fs.BoolVar(&opt.Version, "v", false, "alias of --version")
	fs.BoolVar(&help, "help", false, "show this help")
	fs.BoolVar(&help, "h", false, "alias of --help")

	if err := fs.Parse(argv); err != nil {
		return opt, err
	}
	if help {
		return opt, flag.ErrHelp
	}
	if opt.Version {
		return opt, nil
	}
	if fs.NArg() > 0 {
		return opt, fmt.Errorf("unexpected argument %q", fs.Arg(0))
	}

	set := map[string]bool{}
	fs.Visit(func(f *flag.Flag) { set[f.Name] = true })
	opt.quietSet = set["quiet"] || set["q"]

	switch {
	case opt.CTFile == "":
		return opt, errors.New("--ct-file is required")
	case opt.FastaFile == "":
		return opt, errors.New("--fasta is required")
	case !set["start"] && !set["s"]:
		return opt, errors.New("--start is required")
	case !set["end"] && !set["e"]:
		return opt, errors.New("--end is required")
	case opt.OutputFile == "":
		return opt, errors.New("--output is required")
	}
	if opt.Start < 0 {
		return opt, errors.New("--start must be ≥ 0")
	}
	if opt.CTFile == stdinPath && opt.FastaFile == stdinPath {
		return opt, fmt.Errorf("at most one input may be '%s'", stdinPath)
	}
	return opt, nil
}

// stdinPath selects stdin for an input flag.
const stdinPath = "-"

// ApplyConfig fills unset options from cfg and resolves the format. An
// explicit --quiet (true or false) wins over cfg.Quiet.
func (o *Options) ApplyConfig(cfg config.Config) (constraint.Format, error) {
	if o.Format == "" {
		o.Format = cfg.Format
	}
	if o.ReportFile == "" {
		o.ReportFile = cfg.Report
	}
	if !o.quietSet {
		o.Quiet = cfg.Quiet
	}
	f, err := constraint.ParseFormat(o.Format)
	if err != nil {
		return "", fmt.Errorf("--format: %w", err)
	}
	o.Format = string(f)
	return f, nil
}
