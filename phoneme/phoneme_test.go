package phoneme

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefaultTableParsesAndCaches(t *testing.T) {
	t1 := Default()
	t2 := Default()
	require.NotEmpty(t, t1)
	require.Equal(t, len(t1), len(t2))
}

func TestDefaultTableContainsCoreSymbols(t *testing.T) {
	table := Default()
	for _, sym := range []string{"h", "æ", "ɛ", "k", "t", "s", "m", "l"} {
		_, ok := table.Lookup(sym)
		require.Truef(t, ok, "expected symbol %q in the default table", sym)
	}
}

func TestLoadTableRejectsMissingSymbol(t *testing.T) {
	_, err := LoadTable([]byte("phonemes:\n  - isVowel: true\n"))
	require.Error(t, err)
}

func TestLoadTableRoundTripsFields(t *testing.T) {
	data := []byte(`
phonemes:
  - symbol: "x"
    isVowel: true
    cf1: 500
    cf2: 1500
`)
	table, err := LoadTable(data)
	require.NoError(t, err)
	d, ok := table.Lookup("x")
	require.True(t, ok)
	require.True(t, d.IsVowel)
	require.Equal(t, 500.0, d.CF1)
	require.Equal(t, 1500.0, d.CF2)
}

func TestLookupMissingSymbol(t *testing.T) {
	table := Default()
	_, ok := table.Lookup("not-a-real-symbol")
	require.False(t, ok)
}
