// Package spellchecker checks documents for words that do not appear in a
// dictionary. The dictionary is a word list, one word per line, loaded into
// a radix tree; documents are tokenized line by line and every token is
// looked up after lowercasing.
package spellchecker

import (
	"bufio"
	"io"
	"os"
	"regexp"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/exp/mmap"

	"github.com/LivewareIssue/spell-checker/radix"
)

// DefaultDictionary is the word list used when the caller does not name one.
const DefaultDictionary = "/usr/share/dict/words"

var (
	// Lines are split into candidate tokens at runs of punctuation and
	// whitespace; only tokens made of letters and apostrophes count as
	// words. Everything else (numbers, mixed garbage) is ignored rather
	// than reported.
	separators = regexp.MustCompile(`[[:punct:]\s]+`)
	wordShape  = regexp.MustCompile(`^[A-Za-z']+$`)
)

// Mistake is one document line containing words missing from the
// dictionary. Line numbers start at zero.
type Mistake struct {
	Line  int
	Text  string
	Words []string
}

// Checker checks text against a populated dictionary. It is cheap to share
// once built: checking never mutates the dictionary.
type Checker struct {
	dict *radix.Tree
}

// New returns a Checker over an already populated dictionary.
func New(dict *radix.Tree) *Checker {
	return &Checker{dict: dict}
}

// Load reads a dictionary file and returns a Checker over it. The file is
// mapped rather than read into a buffer, since word lists like the system
// dictionary run to megabytes. Each line is lowercased before insertion;
// blank lines are skipped.
func Load(path string) (*Checker, error) {
	r, err := mmap.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "open dictionary %s", path)
	}
	defer r.Close()

	dict := radix.New()
	scanner := bufio.NewScanner(io.NewSectionReader(r, 0, int64(r.Len())))
	for scanner.Scan() {
		word := strings.ToLower(strings.TrimSpace(scanner.Text()))
		if word == "" {
			continue
		}
		dict.Insert(word)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrapf(err, "read dictionary %s", path)
	}

	return New(dict), nil
}

// Dictionary exposes the underlying tree, e.g. for reporting its size.
func (c *Checker) Dictionary() *radix.Tree {
	return c.dict
}

// Check reads a document line by line and returns one Mistake per line that
// contains at least one word missing from the dictionary. A document with
// no misspellings yields no mistakes and a nil error.
func (c *Checker) Check(r io.Reader) ([]Mistake, error) {
	var mistakes []Mistake

	scanner := bufio.NewScanner(r)
	for line := 0; scanner.Scan(); line++ {
		text := scanner.Text()

		var missing []string
		for _, token := range separators.Split(text, -1) {
			if !wordShape.MatchString(token) {
				continue
			}
			word := strings.ToLower(token)
			if !c.dict.Contains(word) {
				missing = append(missing, word)
			}
		}

		if len(missing) > 0 {
			mistakes = append(mistakes, Mistake{Line: line, Text: text, Words: missing})
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "read document")
	}

	return mistakes, nil
}

// CheckFile opens a document and checks it against the dictionary.
func (c *Checker) CheckFile(path string) ([]Mistake, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "open document %s", path)
	}
	defer f.Close()

	return c.Check(f)
}
