package trie

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func build(words ...string) *Trie {
	t := New()
	for _, w := range words {
		t.Insert(w)
	}
	return t
}

func TestInsertIdempotent(t *testing.T) {
	once := build("abc", "abd")
	twice := build("abc", "abd", "abc", "abd")

	assert.Equal(t, once.String(), twice.String())
	assert.Equal(t, once.Len(), twice.Len())
	assert.True(t, twice.Contains("abc"))
}

func TestInsertKeepsChildrenSortedAndUnique(t *testing.T) {
	tr := build("c", "a", "b", "a", "c")

	labels := []rune{}
	for _, c := range tr.Root().Children() {
		labels = append(labels, c.Label)
	}
	assert.Equal(t, []rune{'a', 'b', 'c'}, labels)
	assert.Equal(t, 3, tr.Len())
}

func TestInsertEmptyStringMarksRoot(t *testing.T) {
	tr := New()
	tr.Insert("")

	assert.True(t, tr.Root().Terminal)
	assert.True(t, tr.Empty())
	assert.True(t, tr.Contains(""))
	assert.False(t, tr.ContainsPrefix(""))
	assert.Equal(t, "", tr.String())
}

func TestContainsPrefixMonotonic(t *testing.T) {
	words := []string{"banana", "band", "héllo", "日本語"}
	tr := build(words...)

	for _, w := range words {
		chars := Chars(w)
		for i := 0; i <= len(chars); i++ {
			p := string(chars[:i])
			assert.True(t, tr.ContainsPrefix(p), "prefix %q of %q", p, w)
		}
	}
}

func TestContainsPrefix(t *testing.T) {
	tr := build("cat", "car")

	tests := []struct {
		query    string
		expected bool
	}{
		{"", true},
		{"c", true},
		{"ca", true},
		{"car", true},
		{"cart", false},
		{"at", false},
		{"d", false},
	}
	for _, test := range tests {
		assert.Equal(t, test.expected, tr.ContainsPrefix(test.query), "query %q", test.query)
	}
}

func TestContainsPrefixEmptyTrie(t *testing.T) {
	tr := New()
	for _, q := range []string{"", "a", "abc", "日"} {
		assert.False(t, tr.ContainsPrefix(q), "query %q", q)
	}
}

func TestContainsIgnoresPrefixes(t *testing.T) {
	tr := build("cat")

	assert.True(t, tr.ContainsPrefix("ca"))
	assert.False(t, tr.Contains("ca"))
	assert.True(t, tr.Contains("cat"))
	assert.False(t, tr.Contains("cats"))
}

func TestChild(t *testing.T) {
	tr := build("ab")

	a, ok := tr.Root().Child('a')
	require.True(t, ok)
	assert.False(t, a.Terminal)

	b, ok := a.Child('b')
	require.True(t, ok)
	assert.True(t, b.Terminal)
	assert.Empty(t, b.Children())

	_, ok = tr.Root().Child('b')
	assert.False(t, ok)
}

func TestReverse(t *testing.T) {
	tests := map[string]string{
		"":       "",
		"a":      "a",
		"abc":    "cba",
		"héllo":  "olléh",
		"日本語":    "語本日",
		"banana": "ananab",
	}
	for in, expected := range tests {
		assert.Equal(t, expected, Reverse(in))
	}
}
