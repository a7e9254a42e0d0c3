// Package remap moves seed-local positions into full-sequence coordinates.
package remap

import "ctfold/internal/pairing"

// Position shifts a single position by offset.
func Position(p, offset int) int { return p + offset }

// Shift returns copies of pairs and unpaired with every position moved by
// offset. Pair membership and order are preserved. The inputs are not modified.
func Shift(pairs []pairing.Pair, unpaired []int, offset int) ([]pairing.Pair, []int) {
	outPairs := make([]pairing.Pair, len(pairs))
	for i, p := range pairs {
		outPairs[i] = pairing.Pair{X: Position(p.X, offset), Y: Position(p.Y, offset)}
	}
	outUnpaired := make([]int, len(unpaired))
	for i, u := range unpaired {
		outUnpaired[i] = Position(u, offset)
	}
	return outPairs, outUnpaired
}
