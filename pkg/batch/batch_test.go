package batch

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRead(t *testing.T) {
	b, err := Read(strings.NewReader("3\ncat\ncar\ndog\nt\nar\nog\nz\n"), Options{})
	require.NoError(t, err)

	assert.Equal(t, []string{"cat", "car", "dog"}, b.Words)
	assert.Equal(t, []string{"t", "ar", "og", "z"}, b.Queries)
}

func TestReadTrimsAndKeepsBlankLines(t *testing.T) {
	b, err := Read(strings.NewReader(" 2 \r\n  cat\t\r\n\r\nat\r\n"), Options{})
	require.NoError(t, err)

	assert.Equal(t, []string{"cat", ""}, b.Words)
	assert.Equal(t, []string{"at"}, b.Queries)
}

func TestReadNoQueries(t *testing.T) {
	b, err := Read(strings.NewReader("1\nbanana"), Options{})
	require.NoError(t, err)

	assert.Equal(t, []string{"banana"}, b.Words)
	assert.Empty(t, b.Queries)
}

func TestReadHeaderCountsWordsOnly(t *testing.T) {
	// 旧格式下N=3表示含数量行在内的3行, 即两个词
	b, err := Read(strings.NewReader("3\na\nb\nc\n"), Options{})
	require.NoError(t, err)

	assert.Equal(t, []string{"a", "b", "c"}, b.Words)
	assert.Empty(t, b.Queries)
}

func TestReadZeroWords(t *testing.T) {
	b, err := Read(strings.NewReader("0\nabc\n"), Options{})
	require.NoError(t, err)

	assert.Empty(t, b.Words)
	assert.Equal(t, []string{"abc"}, b.Queries)
}

func TestReadErrors(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		opts     Options
		expected error
	}{
		{"empty", "", Options{}, ErrMissingHeader},
		{"not a number", "three\na\n", Options{}, ErrInvalidHeader},
		{"negative", "-1\na\n", Options{}, ErrInvalidHeader},
		{"blank header", "\na\n", Options{}, ErrInvalidHeader},
		{"short", "3\na\nb\n", Options{}, ErrShortInput},
		{"encoding", "1\na\n", Options{Encoding: "ebcdic"}, ErrUnknownEncoding},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			b, err := Read(strings.NewReader(test.input), test.opts)
			assert.Nil(t, b)
			assert.True(t, errors.Is(err, test.expected), "got %v", err)
		})
	}
}

func TestReadLineTooLong(t *testing.T) {
	input := "1\n" + strings.Repeat("a", 100) + "\n"
	_, err := Read(strings.NewReader(input), Options{MaxLineBytes: 16})
	assert.Error(t, err)
}

func TestReadLatin1(t *testing.T) {
	// "café" in ISO-8859-1
	input := []byte("1\ncaf\xe9\n\xe9\n")
	b, err := Read(strings.NewReader(string(input)), Options{Encoding: EncodingISO88591})
	require.NoError(t, err)

	assert.Equal(t, []string{"café"}, b.Words)
	assert.Equal(t, []string{"é"}, b.Queries)
}

func TestReadWindows1252(t *testing.T) {
	// 0x80 is the euro sign in windows-1252
	b, err := Read(strings.NewReader("1\n\x80uro\n"), Options{Encoding: EncodingWindows1252})
	require.NoError(t, err)

	assert.Equal(t, []string{"€uro"}, b.Words)
}

func TestReadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "input.txt")
	require.NoError(t, os.WriteFile(path, []byte("1\nbanana\nana\n"), 0644))

	b, err := ReadFile(path, Options{})
	require.NoError(t, err)
	assert.Equal(t, &Batch{Words: []string{"banana"}, Queries: []string{"ana"}}, b)

	_, err = ReadFile(filepath.Join(t.TempDir(), "missing.txt"), Options{})
	assert.True(t, errors.Is(err, os.ErrNotExist))
}
