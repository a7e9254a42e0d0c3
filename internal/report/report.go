// Package report builds and encodes the diagnostic report of a run.
package report

import (
	"encoding/json"
	"io"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"ctfold/internal/pipeline"
	"ctfold/pkg/api"
)

// Encoding is a report serialization.
type Encoding string

const (
	EncodingJSON Encoding = "json"
	EncodingYAML Encoding = "yaml"
)

// EncodingFor picks the encoding from the path extension; JSON unless .yaml/.yml.
func EncodingFor(path string) Encoding {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return EncodingYAML
	default:
		return EncodingJSON
	}
}

// FromResult converts a finished run to the v1 wire schema.
func FromResult(cfg pipeline.Config, res pipeline.Result) api.ReportV1 {
	r := api.ReportV1{
		CTFile:       cfg.CTPath,
		FastaFile:    cfg.FastaPath,
		SequenceID:   res.Record.ID,
		Format:       string(cfg.Format),
		Start:        cfg.Start,
		End:          cfg.End,
		SeedLength:   len(res.Table.Seq),
		FullLength:   len(res.Record.Seq),
		Unpaired:     len(res.Table.Unpaired),
		PairsRaw:     len(res.Table.Pairs),
		PairsKept:    len(res.Validation.Kept),
		PairsDropped: res.Validation.Dropped(),
		Duplicates:   res.Validation.Duplicates,
		SeedChecked:  res.Seed.Checked,
		SeedMatch:    res.Seed.Match,
		SeedFull:     res.Seed.Full,
	}
	for _, rj := range res.Validation.Rejected {
		v := api.RejectV1{X: rj.Pair.X, Y: rj.Pair.Y, Reason: rj.Reason}
		if rj.A != 0 && rj.B != 0 {
			v.Pair = string([]byte{rj.A, rj.B})
		}
		r.Rejected = append(r.Rejected, v)
	}
	return r
}

// Encode writes r to w as indented JSON or YAML.
func Encode(w io.Writer, enc Encoding, r api.ReportV1) error {
	if enc == EncodingYAML {
		ye := yaml.NewEncoder(w)
		ye.SetIndent(2)
		if err := ye.Encode(r); err != nil {
			return err
		}
		return ye.Close()
	}
	je := json.NewEncoder(w)
	je.SetIndent("", "  ")
	return je.Encode(r)
}
