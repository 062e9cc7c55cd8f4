package suffix

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildSnapshots(t *testing.T) {
	x := New()
	snapshots := x.Build([]string{"cat", "car", "dog"})

	expected := []Snapshot{
		{Word: "cat", Structure: "cat"},
		{Word: "car", Structure: "ca(r)(t)"},
		{Word: "dog", Structure: "(ca(r)(t))(dog)"},
	}
	assert.Equal(t, expected, snapshots)
}

func TestQueryEndToEnd(t *testing.T) {
	x := New()
	x.Build([]string{"cat", "car", "dog"})

	results := x.Query([]string{"t", "ar", "og", "z"})
	expected := []Result{
		{Query: "t", Found: true},
		{Query: "ar", Found: true},
		{Query: "og", Found: true},
		{Query: "z", Found: false},
	}
	assert.Equal(t, expected, results)
}

func TestHasSuffix(t *testing.T) {
	x := New()
	x.Insert("banana")

	tests := []struct {
		query    string
		expected bool
	}{
		{"ana", true},
		{"a", true},
		{"banana", true},
		{"nana", true},
		{"", true},
		{"xyz", false},
		{"ban", false},
		{"bananas", false},
	}
	for _, test := range tests {
		assert.Equal(t, test.expected, x.HasSuffix(test.query), "query %q", test.query)
	}
}

func TestHasSuffixEmptyIndex(t *testing.T) {
	x := New()
	assert.False(t, x.HasSuffix(""))
	assert.False(t, x.HasSuffix("a"))
}

func TestHasSuffixEveryWordSuffix(t *testing.T) {
	words := []string{"prefix", "suffix", "日本語", "héllo"}
	x := New()
	x.Build(words)

	for _, w := range words {
		chars := []rune(w)
		for i := range chars {
			s := string(chars[i:])
			assert.True(t, x.HasSuffix(s), "suffix %q of %q", s, w)
		}
	}
}

func TestTriesAreIndependent(t *testing.T) {
	x := New()
	x.Insert("ab")

	require.NotSame(t, x.Forward().Root(), x.Reversed().Root())
	assert.Equal(t, "ab", x.Forward().String())
	assert.Equal(t, "ba", x.Reversed().String())
	assert.True(t, x.Forward().Contains("ab"))
	assert.True(t, x.Reversed().Contains("ba"))
}
