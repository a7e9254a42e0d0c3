// Package constraint renders remapped seed structure into the constraint
// grammars read by RNA folding tools.
//
// Renderers are registered per Format; Render dispatches on the format and
// returns an immutable Document.
package constraint

import (
	"fmt"
	"sort"
	"strings"

	"ctfold/internal/pairing"
)

// Format selects a constraint grammar.
type Format string

const (
	// FormatRNAstructure is the sectioned DS/SS/Mod/Pairs/FMN/Forbids file.
	FormatRNAstructure Format = "RNAstructure"
	// FormatViennaRNA is FASTA header, sequence and a dot-bracket constraint line.
	FormatViennaRNA Format = "ViennaRNA"
)

var aliases = map[string]Format{
	"rnastructure": FormatRNAstructure,
	"viennarna":    FormatViennaRNA,
	"vienna":       FormatViennaRNA,
}

// ParseFormat resolves a user-supplied format name (case-insensitive).
func ParseFormat(s string) (Format, error) {
	if f, ok := aliases[strings.ToLower(strings.TrimSpace(s))]; ok {
		return f, nil
	}
	return "", fmt.Errorf("invalid format %q (want %s)", s, strings.Join(formatNames(), " | "))
}

// Input is what every renderer consumes. Positions are full-sequence, 1-based.
type Input struct {
	ID       string
	Seq      string
	Pairs    []pairing.Pair
	Unpaired []int
}

// Document is a rendered constraint file.
type Document struct {
	Format Format
	Body   string
}

// Bytes returns the file content: the body and one trailing newline.
func (d Document) Bytes() []byte { return []byte(d.Body + "\n") }

// Renderer produces the document body for one grammar.
type Renderer func(Input) (string, error)

var renderers = map[Format]Renderer{}

// Register installs r for f (last wins).
func Register(f Format, r Renderer) { renderers[f] = r }

// Render dispatches in to the renderer registered for f.
func Render(f Format, in Input) (Document, error) {
	r, ok := renderers[f]
	if !ok {
		return Document{}, fmt.Errorf("unknown constraint format %q (no renderer registered)", f)
	}
	body, err := r(in)
	if err != nil {
		return Document{}, err
	}
	return Document{Format: f, Body: body}, nil
}

// Formats lists the registered formats, sorted.
func Formats() []Format {
	out := make([]Format, 0, len(renderers))
	for f := range renderers {
		out = append(out, f)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

func formatNames() []string {
	fs := Formats()
	out := make([]string, len(fs))
	for i, f := range fs {
		out[i] = string(f)
	}
	return out
}
