package pairing

// canonical lists Watson-Crick and wobble pairings, both orientations,
// with T and U interchangeable. Keys are uppercase.
var canonical = map[[2]byte]struct{}{
	{'A', 'U'}: {}, {'A', 'T'}: {},
	{'C', 'G'}: {},
	{'G', 'U'}: {}, {'G', 'T'}: {}, {'G', 'C'}: {},
	{'T', 'A'}: {}, {'T', 'G'}: {},
	{'U', 'A'}: {}, {'U', 'G'}: {},
}

// Canonical reports whether nucleotide a can pair with nucleotide b.
// Lookup is case-insensitive.
func Canonical(a, b byte) bool {
	_, ok := canonical[[2]byte{upper(a), upper(b)}]
	return ok
}

func upper(c byte) byte {
	if c >= 'a' && c <= 'z' {
		return c - ('a' - 'A')
	}
	return c
}
