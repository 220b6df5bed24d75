package dictionary

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIndexContainsIsCaseInsensitive(t *testing.T) {
	index := NewIndex([]string{"Игра", "СЛОВО"})

	assert.True(t, index.Contains("игра"))
	assert.True(t, index.Contains("ИГРА"))
	assert.True(t, index.Contains("  слово "))
	assert.False(t, index.Contains("дом"))
	assert.False(t, index.Contains(""))
}

func TestIndexNormalizesDecomposedInput(t *testing.T) {
	// "й" as и + combining breve
	index := NewIndex([]string{"чай"})

	assert.True(t, index.Contains("ча\u0438\u0306"))
}

func TestIndexDropsBlanksAndDuplicates(t *testing.T) {
	index := NewIndex([]string{"дом", "", "  ", "ДОМ", "сад"})

	assert.Equal(t, 2, index.Len())
	assert.Equal(t, []string{"дом", "сад"}, index.Words())
}

func TestWordsOfLengthPartitionsDictionary(t *testing.T) {
	words := []string{"ход", "нос", "игра", "рука", "слово", "квадрат"}
	index := NewIndex(words)

	assert.Equal(t, []string{"нос", "ход"}, index.WordsOfLength(3))
	assert.Equal(t, []string{"игра", "рука"}, index.WordsOfLength(4))
	assert.Equal(t, []string{"слово"}, index.WordsOfLength(5))
	assert.Equal(t, []string{"квадрат"}, index.WordsOfLength(7))
	assert.Empty(t, index.WordsOfLength(2))
	assert.Equal(t, []int{3, 4, 5, 7}, index.Lengths())

	total := 0
	for _, n := range index.Lengths() {
		total += len(index.WordsOfLength(n))
	}
	assert.Equal(t, index.Len(), total)
}

func TestWordsOfLengthCountsLettersNotBytes(t *testing.T) {
	index := NewIndex([]string{"дом", "cat"})

	assert.ElementsMatch(t, []string{"дом", "cat"}, index.WordsOfLength(3))
	assert.Empty(t, index.WordsOfLength(6))
}

func TestWordsOfLengthReturnsCopy(t *testing.T) {
	index := NewIndex([]string{"дом"})

	bucket := index.WordsOfLength(3)
	bucket[0] = "кот"

	assert.Equal(t, []string{"дом"}, index.WordsOfLength(3))
}
