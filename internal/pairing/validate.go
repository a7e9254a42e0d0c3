package pairing

import "fmt"

// Reject describes a pair removed by Validate.
type Reject struct {
	Pair   Pair
	A, B   byte // symbols at X and Y; 0 when the position is out of range
	Reason string
}

func (r Reject) String() string {
	if r.A == 0 || r.B == 0 {
		return fmt.Sprintf("%d %d\t%s", r.Pair.X, r.Pair.Y, r.Reason)
	}
	return fmt.Sprintf("%d %d\t%c %c", r.Pair.X, r.Pair.Y, r.A, r.B)
}

// Reasons attached to rejects.
const (
	ReasonNonCanonical = "non-canonical"
	ReasonOutOfRange   = "position outside seed sequence"
)

// Result is the outcome of Validate. Kept preserves input order.
// len(Kept) + Dropped() + Duplicates equals the number of input pairs.
type Result struct {
	Kept       []Pair
	Rejected   []Reject
	Duplicates int // canonical pairs seen again after their first occurrence
}

// Dropped is the number of non-canonical and out-of-range pairs removed.
// Repeats of a kept pair are counted in Duplicates instead.
func (r Result) Dropped() int { return len(r.Rejected) }

// Validate keeps the pairs of seq whose symbols form a canonical pairing.
// Positions are 1-based into seq. Pairs are only ever removed, and repeated
// pairs are kept once.
func Validate(seq string, pairs []Pair) Result {
	res := Result{Kept: make([]Pair, 0, len(pairs))}
	seen := make(map[Pair]struct{}, len(pairs))
	for _, p := range pairs {
		if !inSeq(seq, p.X) || !inSeq(seq, p.Y) {
			res.Rejected = append(res.Rejected, Reject{Pair: p, Reason: ReasonOutOfRange})
			continue
		}
		a, b := seq[p.X-1], seq[p.Y-1]
		if !Canonical(a, b) {
			res.Rejected = append(res.Rejected, Reject{Pair: p, A: a, B: b, Reason: ReasonNonCanonical})
			continue
		}
		if _, dup := seen[p]; dup {
			res.Duplicates++
			continue
		}
		seen[p] = struct{}{}
		res.Kept = append(res.Kept, p)
	}
	return res
}

func inSeq(seq string, pos int) bool { return pos >= 1 && pos <= len(seq) }
