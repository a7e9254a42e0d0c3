// internal/cli/options_test.go
package cli

import (
	"bytes"
	"errors"
	"flag"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ctfold/internal/config"
	"ctfold/internal/constraint"
)

func newFS() *flag.FlagSet {
	fs := NewFlagSet("test")
	fs.SetOutput(&bytes.Buffer{})
	return fs
}

func mustParse(t *testing.T, args ...string) Options {
	t.Helper()
	opts, err := ParseArgs(newFS(), args)
	require.NoError(t, err)
	return opts
}

func TestLongFlags(t *testing.T) {
	o := mustParse(t,
		"--ct-file", "seed.ct", "--fasta", "t.fa",
		"--start", "10", "--end", "30",
		"--format", "ViennaRNA", "--output", "out.fa", "--report", "r.json",
	)
	assert.Equal(t, Options{
		CTFile: "seed.ct", FastaFile: "t.fa", Start: 10, End: 30,
		Format: "ViennaRNA", OutputFile: "out.fa", ReportFile: "r.json",
	}, o)
}

func TestShortFlags(t *testing.T) {
	o := mustParse(t, "-ct", "seed.ct", "-fa", "t.fa", "-s", "0", "-e", "5", "-o", "-", "-q")
	assert.Equal(t, "seed.ct", o.CTFile)
	assert.Equal(t, 0, o.Start)
	assert.Equal(t, 5, o.End)
	assert.Equal(t, "-", o.OutputFile)
	assert.True(t, o.Quiet)
	assert.Empty(t, o.Format, "format is resolved later from config")
}

func TestRequiredFlags(t *testing.T) {
	full := []string{"-ct", "a.ct", "-fa", "a.fa", "-s", "0", "-e", "5", "-o", "out"}
	drop := map[string]string{
		"-ct": "--ct-file is required",
		"-fa": "--fasta is required",
		"-s":  "--start is required",
		"-e":  "--end is required",
		"-o":  "--output is required",
	}
	for flagName, msg := range drop {
		var args []string
		for i := 0; i < len(full); i += 2 {
			if full[i] != flagName {
				args = append(args, full[i], full[i+1])
			}
		}
		_, err := ParseArgs(newFS(), args)
		require.EqualError(t, err, msg)
	}
}

func TestNegativeStart(t *testing.T) {
	_, err := ParseArgs(newFS(), []string{"-ct", "a", "-fa", "b", "-s", "-1", "-e", "5", "-o", "c"})
	require.Error(t, err)
}

func TestStrayArgument(t *testing.T) {
	_, err := ParseArgs(newFS(), []string{"-ct", "a", "-fa", "b", "-s", "1", "-e", "5", "-o", "c", "extra"})
	require.ErrorContains(t, err, "unexpected argument")
}

func TestHelpAndVersion(t *testing.T) {
	_, err := ParseArgs(newFS(), []string{"-h"})
	require.True(t, errors.Is(err, flag.ErrHelp))

	o, err := ParseArgs(newFS(), []string{"--version"})
	require.NoError(t, err)
	require.True(t, o.Version)
}

func TestUsageMentionsFormats(t *testing.T) {
	var b bytes.Buffer
	fs := NewFlagSet("ctfold")
	fs.SetOutput(&b)
	fs.Usage()
	require.Contains(t, b.String(), "RNAstructure | ViennaRNA")
	require.Contains(t, b.String(), "--ct-file")
}

func TestApplyConfig(t *testing.T) {
	o := Options{}
	f, err := o.ApplyConfig(config.Config{Format: "vienna", Quiet: true, Report: "r.yaml"})
	require.NoError(t, err)
	require.Equal(t, constraint.FormatViennaRNA, f)
	require.Equal(t, "ViennaRNA", o.Format)
	require.Equal(t, "r.yaml", o.ReportFile)
	require.True(t, o.Quiet)

	o = Options{Format: "rnastructure", ReportFile: "mine.json"}
	f, err = o.ApplyConfig(config.Config{Format: "ViennaRNA", Report: "r.yaml"})
	require.NoError(t, err)
	require.Equal(t, constraint.FormatRNAstructure, f)
	require.Equal(t, "mine.json", o.ReportFile)
}

func TestQuietFlagOverridesConfig(t *testing.T) {
	base := []string{"-ct", "a.ct", "-fa", "a.fa", "-s", "0", "-e", "5", "-o", "out"}
	cfg := config.Config{Format: config.DefaultFormat, Quiet: true}

	for _, explicit := range []string{"--quiet=false", "-q=false"} {
		o := mustParse(t, append(append([]string{}, base...), explicit)...)
		_, err := o.ApplyConfig(cfg)
		require.NoError(t, err)
		require.False(t, o.Quiet, explicit)
	}

	o := mustParse(t, base...)
	_, err := o.ApplyConfig(cfg)
	require.NoError(t, err)
	require.True(t, o.Quiet, "config applies when the flag is absent")

	o = mustParse(t, append(append([]string{}, base...), "-q")...)
	_, err = o.ApplyConfig(config.Config{Format: config.DefaultFormat})
	require.NoError(t, err)
	require.True(t, o.Quiet)
}

func TestSingleStdinInput(t *testing.T) {
	_, err := ParseArgs(newFS(), []string{"-ct", "-", "-fa", "-", "-s", "0", "-e", "5", "-o", "out"})
	require.EqualError(t, err, "at most one input may be '-'")

	o := mustParse(t, "-ct", "-", "-fa", "a.fa", "-s", "0", "-e", "5", "-o", "out")
	require.Equal(t, "-", o.CTFile)
}

func TestApplyConfigUnknownFormat(t *testing.T) {
	o := Options{Format: "bpseq"}
	_, err := o.ApplyConfig(config.Default())
	require.ErrorContains(t, err, "--format")
}
