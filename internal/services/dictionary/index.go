package dictionary

import (
	"slices"
	"unicode/utf8"

	"github.com/samber/lo"

	"github.com/mcoot/royalsquare/internal/model"
)

// Index is an immutable word set with a secondary index by word length.
// The length buckets partition the set exactly.
type Index struct {
	words    map[string]struct{}
	byLength map[int][]string
}

// NewIndex builds an index from raw words. Words are normalized, blanks dropped.
func NewIndex(raw []string) *Index {
	normalized := lo.Uniq(lo.FilterMap(raw, func(w string, _ int) (string, bool) {
		n := model.NormalizeWord(w)
		return n, n != ""
	}))

	words := make(map[string]struct{}, len(normalized))
	for _, w := range normalized {
		words[w] = struct{}{}
	}

	byLength := lo.GroupBy(normalized, func(w string) int {
		return utf8.RuneCountInString(w)
	})
	for _, bucket := range byLength {
		slices.Sort(bucket)
	}

	return &Index{
		words:    words,
		byLength: byLength,
	}
}

// Contains is a case-insensitive membership test
func (i *Index) Contains(word string) bool {
	_, ok := i.words[model.NormalizeWord(word)]
	return ok
}

// WordsOfLength returns every word with exactly n letters, sorted.
// The result is a copy.
func (i *Index) WordsOfLength(n int) []string {
	return slices.Clone(i.byLength[n])
}

// Lengths returns the word lengths present in the index, ascending
func (i *Index) Lengths() []int {
	lengths := lo.Keys(i.byLength)
	slices.Sort(lengths)
	return lengths
}

// Len returns the number of words
func (i *Index) Len() int {
	return len(i.words)
}

// Words returns all words, sorted
func (i *Index) Words() []string {
	words := lo.Keys(i.words)
	slices.Sort(words)
	return words
}
