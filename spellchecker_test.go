package spellchecker_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	spellchecker "github.com/LivewareIssue/spell-checker"
	"github.com/LivewareIssue/spell-checker/radix"
)

func newChecker(words ...string) *spellchecker.Checker {
	dict := radix.New()
	for _, word := range words {
		dict.Insert(word)
	}
	return spellchecker.New(dict)
}

func TestCheckCleanDocument(t *testing.T) {
	checker := newChecker("the", "cat", "sat", "on", "mat")

	mistakes, err := checker.Check(strings.NewReader("The cat sat on the mat.\n"))
	require.NoError(t, err)
	assert.Empty(t, mistakes)
}

func TestCheckReportsLinesAndWords(t *testing.T) {
	checker := newChecker("the", "cat", "sat", "on", "mat")

	doc := "The cat sat on the mat.\n" +
		"Teh cat zat on the mat.\n" +
		"\n" +
		"the mat sat on the CAT\n" +
		"teh\n"

	mistakes, err := checker.Check(strings.NewReader(doc))
	require.NoError(t, err)
	require.Len(t, mistakes, 2)

	assert.Equal(t, 1, mistakes[0].Line)
	assert.Equal(t, "Teh cat zat on the mat.", mistakes[0].Text)
	assert.Equal(t, []string{"teh", "zat"}, mistakes[0].Words)

	assert.Equal(t, 4, mistakes[1].Line)
	assert.Equal(t, []string{"teh"}, mistakes[1].Words)
}

func TestCheckTokenization(t *testing.T) {
	checker := newChecker("cat", "mat")

	// punctuation separates words, digits and mixed tokens are ignored,
	// lookups are lowercased
	doc := `"Cat!" (mat); ... 123 c4t 42cat`
	mistakes, err := checker.Check(strings.NewReader(doc))
	require.NoError(t, err)
	assert.Empty(t, mistakes)

	// the apostrophe is punctuation too, so contractions split around it
	mistakes, err = checker.Check(strings.NewReader("wasn't a cat"))
	require.NoError(t, err)
	require.Len(t, mistakes, 1)
	assert.Equal(t, []string{"wasn", "t", "a"}, mistakes[0].Words)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "words")
	require.NoError(t, os.WriteFile(path, []byte("Cat\ncar\n\nCART\n"), 0o644))

	checker, err := spellchecker.Load(path)
	require.NoError(t, err)

	dict := checker.Dictionary()
	assert.Equal(t, 3, dict.NumWords())

	// loaded lowercased, blank line skipped
	assert.True(t, dict.Contains("cat"))
	assert.True(t, dict.Contains("cart"))
	assert.False(t, dict.Contains("Cat"))
	assert.False(t, dict.Contains(""))

	mistakes, err := checker.Check(strings.NewReader("a CART and a car\n"))
	require.NoError(t, err)
	require.Len(t, mistakes, 1)
	assert.Equal(t, []string{"a", "and", "a"}, mistakes[0].Words)
}

func TestLoadMissingDictionary(t *testing.T) {
	_, err := spellchecker.Load(filepath.Join(t.TempDir(), "nope"))
	assert.Error(t, err)
}

func TestCheckFile(t *testing.T) {
	checker := newChecker("hello", "world")

	path := filepath.Join(t.TempDir(), "doc.txt")
	require.NoError(t, os.WriteFile(path, []byte("hello wrold\n"), 0o644))

	mistakes, err := checker.CheckFile(path)
	require.NoError(t, err)
	require.Len(t, mistakes, 1)
	assert.Equal(t, 0, mistakes[0].Line)
	assert.Equal(t, []string{"wrold"}, mistakes[0].Words)

	_, err = checker.CheckFile(filepath.Join(t.TempDir(), "missing.txt"))
	assert.Error(t, err)
}
