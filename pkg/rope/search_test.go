package rope

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// S5: PatternFinder.all(from("Hello world, I live in a world."), from("world")) = [6, 25].
func TestSearch_S5_MultipleMatches(t *testing.T) {
	text := New("Hello world, I live in a world.")
	pattern := New("world")
	assert.Equal(t, []int{6, 25}, All(text, pattern))
}

func TestSearch_NoMatch(t *testing.T) {
	assert.Nil(t, All(New("abcdef"), New("xyz")))
}

func TestSearch_BothEmpty(t *testing.T) {
	assert.Equal(t, []int{0}, All(Empty, Empty))
}

func TestSearch_EmptyPatternMatchesEveryOffset(t *testing.T) {
	assert.Equal(t, []int{0, 1, 2}, All(New("abc"), Empty))
}

func TestSearch_NonEmptyPatternAgainstEmptyText(t *testing.T) {
	assert.Nil(t, All(Empty, New("a")))
}

func TestSearch_PatternLongerThanText(t *testing.T) {
	assert.Nil(t, All(New("ab"), New("abc")))
}

func TestSearch_EqualLengthEqualTexts(t *testing.T) {
	assert.Equal(t, []int{0}, All(New("abc"), New("abc")))
}

func TestSearch_EqualLengthDifferentTexts(t *testing.T) {
	assert.Nil(t, All(New("abc"), New("abd")))
}

func TestSearch_OverlappingMatches(t *testing.T) {
	// KMP does not skip past an overlapping match: "aaaa" contains "aa"
	// starting at every position but the last.
	assert.Equal(t, []int{0, 1, 2}, All(New("aaaa"), New("aa")))
}

func TestSearch_IndexOf(t *testing.T) {
	i, ok := IndexOf(New("Hello world, I live in a world."), New("world"))
	assert.True(t, ok)
	assert.Equal(t, 6, i)

	_, ok = IndexOf(New("Hello"), New("xyz"))
	assert.False(t, ok)
}

func TestSearch_StartsWith(t *testing.T) {
	assert.True(t, StartsWith(New("Hello world"), New("Hello")))
	assert.False(t, StartsWith(New("Hello world"), New("world")))
	assert.True(t, StartsWith(New("anything"), Empty))
	assert.False(t, StartsWith(New("ab"), New("abc")))
}

func TestSearch_AcrossConcatBoundary(t *testing.T) {
	text := rawConcat(New("Hello wo"), New("rld, I live in a world."))
	pattern := New("world")
	assert.Equal(t, []int{6, 25}, All(text, pattern))
}
