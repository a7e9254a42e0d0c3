// Package pairing holds the base-pair model and the canonical-pairing filter
// applied to seed structures.
package pairing

import "fmt"

// Pair is a base pair between two 1-based positions. X < Y is not
// guaranteed; use Ordered when a low/high orientation is required.
type Pair struct {
	X int
	Y int
}

// Ordered returns the pair positions as (low, high).
func (p Pair) Ordered() (lo, hi int) {
	if p.X < p.Y {
		return p.X, p.Y
	}
	return p.Y, p.X
}

func (p Pair) String() string { return fmt.Sprintf("%d %d", p.X, p.Y) }
