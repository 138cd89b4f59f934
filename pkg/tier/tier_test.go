package tier

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCoversTruthTable(t *testing.T) {
	all := All()
	for i, current := range all {
		for j, required := range all {
			got := Covers(current, required)
			want := i >= j
			assert.Equalf(t, want, got, "Covers(%s, %s)", current, required)
		}
	}
}

func TestCoversUnknownDenies(t *testing.T) {
	assert.False(t, Covers("platinum", Free))
	assert.False(t, Covers(Super, "platinum"))
	assert.False(t, Covers("", ""))
}

func TestParse(t *testing.T) {
	for _, s := range []string{"free", "premium", "business", "super"} {
		got, err := Parse(s)
		require.NoError(t, err)
		assert.Equal(t, Tier(s), got)
	}

	_, err := Parse("platinum")
	assert.Error(t, err)
	_, err = Parse("")
	assert.Error(t, err)
}

func TestRankOrdering(t *testing.T) {
	assert.Equal(t, 0, Free.Rank())
	assert.Equal(t, 1, Premium.Rank())
	assert.Equal(t, 2, Business.Rank())
	assert.Equal(t, 3, Super.Rank())
	assert.Equal(t, -1, Tier("gold").Rank())
}
