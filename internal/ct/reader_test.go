package ct

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"ctfold/internal/pairing"
)

// hairpin: GGGAAACCC with 1-9, 2-8, 3-7 paired.
const hairpin = `9 ENERGY = -1.2 seed
1 G 0 2 9 1
2 G 1 3 8 2
3 G 2 4 7 3

4 A 3 5 0 4
5 A 4 6 0 5
6 A 5 7 0 6
7 C 6 8 3 7
8 C 7 9 2 8
9 C 8 0 1 9
`

func parse(t *testing.T, s string) (Table, error) {
	t.Helper()
	return Parse(context.Background(), strings.NewReader(s), "test.ct")
}

func TestParseHairpin(t *testing.T) {
	tab, err := parse(t, hairpin)
	require.NoError(t, err)
	require.Equal(t, "9 ENERGY = -1.2 seed", tab.Header)
	require.Equal(t, "GGGAAACCC", tab.Seq)
	require.Equal(t, []pairing.Pair{{X: 1, Y: 9}, {X: 2, Y: 8}, {X: 3, Y: 7}}, tab.Pairs)
	require.Equal(t, []int{4, 5, 6}, tab.Unpaired)
}

func TestParseSkipsMirroredRecordOnly(t *testing.T) {
	// 1-4 and 2-3 nested; each pair appears once.
	tab, err := parse(t, "4 x\n1 G 0 2 4 1\n2 G 1 3 3 2\n3 C 2 4 2 3\n4 C 3 0 1 4\n")
	require.NoError(t, err)
	require.Equal(t, []pairing.Pair{{X: 1, Y: 4}, {X: 2, Y: 3}}, tab.Pairs)
	require.Empty(t, tab.Unpaired)
}

func TestParseAsymmetricTableIsNotRejected(t *testing.T) {
	// 1 lists 3, 3 lists nothing: pair recorded once from the opening side.
	tab, err := parse(t, "3 x\n1 G 0 2 3 1\n2 A 1 3 0 2\n3 C 2 0 0 3\n")
	require.NoError(t, err)
	require.Equal(t, []pairing.Pair{{X: 1, Y: 3}}, tab.Pairs)
	require.Equal(t, []int{2, 3}, tab.Unpaired)
}

func TestParseHeaderOnly(t *testing.T) {
	tab, err := parse(t, "0 empty\n")
	require.NoError(t, err)
	require.Empty(t, tab.Seq)
	require.Empty(t, tab.Pairs)
	require.Empty(t, tab.Unpaired)
}

func TestParseFormatErrors(t *testing.T) {
	cases := map[string]string{
		"too few fields":  "1 x\n1 G 0 2\n",
		"bad position":    "1 x\n1a G 0 2 0 1\n",
		"bad paired-with": "1 x\n1 G 0 2 zero 1\n",
		"bad nucleotide":  "1 x\n1 GG 0 2 0 1\n",
		"late bad record": "2 x\n1 G 0 2 0 1\n\n2 C 1\n",
	}
	for name, in := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := parse(t, in)
			var fe *FormatError
			require.True(t, errors.As(err, &fe), "want FormatError, got %v", err)
			require.Equal(t, "test.ct", fe.Path)
			require.Greater(t, fe.Line, 1)
		})
	}
}

func TestParseFormatErrorLine(t *testing.T) {
	_, err := parse(t, "2 x\n1 G 0 2 0 1\n\n2 C 1\n")
	var fe *FormatError
	require.ErrorAs(t, err, &fe)
	require.Equal(t, 4, fe.Line)
	require.Contains(t, fe.Error(), "test.ct:4")
}

func TestParseHonorsCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := Parse(ctx, strings.NewReader(hairpin), "test.ct")
	require.ErrorIs(t, err, context.Canceled)
}

func TestReadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seed.ct")
	require.NoError(t, os.WriteFile(path, []byte(hairpin), 0o644))
	tab, err := Read(context.Background(), path)
	require.NoError(t, err)
	require.Len(t, tab.Seq, 9)
}

func TestReadMissing(t *testing.T) {
	_, err := Read(context.Background(), filepath.Join(t.TempDir(), "nope.ct"))
	require.ErrorIs(t, err, os.ErrNotExist)
}
