package constraint

import (
	"fmt"

	"ctfold/internal/pairing"
)

// ViennaRNA constraint symbols.
const (
	SymFree     = '.' // no constraint
	SymUnpaired = 'x' // forced unpaired
	SymOpen     = '(' // paired with a downstream base
	SymClose    = ')' // paired with an upstream base
)

// RangeError reports a position that does not fall inside the full sequence.
type RangeError struct {
	Pos    int
	Length int
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("position %d outside full sequence of length %d", e.Pos, e.Length)
}

func init() {
	Register(FormatViennaRNA, func(in Input) (string, error) {
		ann, err := Annotate(len(in.Seq), in.Pairs, in.Unpaired)
		if err != nil {
			return "", err
		}
		return ">" + in.ID + "\n" + in.Seq + "\n" + ann, nil
	})
}

// Annotate builds the constraint line for a sequence of the given length.
// Pairs are marked first, then unpaired positions, so an 'x' overrides a
// bracket at the same position.
func Annotate(length int, pairs []pairing.Pair, unpaired []int) (string, error) {
	buf := make([]byte, length)
	for i := range buf {
		buf[i] = SymFree
	}
	set := func(pos int, sym byte) error {
		if pos < 1 || pos > length {
			return &RangeError{Pos: pos, Length: length}
		}
		buf[pos-1] = sym
		return nil
	}
	for _, p := range pairs {
		lo, hi := p.Ordered()
		if err := set(lo, SymOpen); err != nil {
			return "", err
		}
		if err := set(hi, SymClose); err != nil {
			return "", err
		}
	}
	for _, u := range unpaired {
		if err := set(u, SymUnpaired); err != nil {
			return "", err
		}
	}
	return string(buf), nil
}
