package constraint

import (
	"strconv"
	"strings"

	"ctfold/internal/pairing"
)

func init() {
	Register(FormatRNAstructure, func(in Input) (string, error) {
		return RNAstructure(in.Pairs, in.Unpaired), nil
	})
}

// RNAstructure renders the sectioned constraint block. Sections and their
// -1 / "-1 -1" terminators are fixed by the consuming tool; only SS and
// Pairs carry entries. Pairs are written low position first. There is no
// trailing newline.
func RNAstructure(pairs []pairing.Pair, unpaired []int) string {
	var b strings.Builder
	b.WriteString("DS:\n-1\n")
	b.WriteString("SS:\n")
	for _, u := range unpaired {
		b.WriteString(strconv.Itoa(u))
		b.WriteByte('\n')
	}
	b.WriteString("-1\n")
	b.WriteString("Mod:\n-1\n")
	b.WriteString("Pairs:\n")
	for _, p := range pairs {
		lo, hi := p.Ordered()
		b.WriteString(strconv.Itoa(lo))
		b.WriteByte(' ')
		b.WriteString(strconv.Itoa(hi))
		b.WriteByte('\n')
	}
	b.WriteString("-1 -1\n")
	b.WriteString("FMN:\n-1\n")
	b.WriteString("Forbids:\n-1 -1")
	return b.String()
}
