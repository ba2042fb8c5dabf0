package mindguard

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnglishStopwords(t *testing.T) {
	set := EnglishStopwords()

	for _, word := range []string{"the", "is", "i", "am", "and", "don", "should've"} {
		assert.True(t, set.Contains(word), "expected %q to be a stop word", word)
	}
	for _, word := range NegationWords {
		assert.False(t, set.Contains(word), "negation %q must not be a stop word", word)
	}
	assert.False(t, set.Contains("stress"))

	// 179 NLTK words minus "no", "nor" and "not".
	assert.Len(t, set.Words(), 176)
	assert.Equal(t, 176, set.Len())
}

func TestNewStopwordSet(t *testing.T) {
	set := NewStopwordSet([]string{"b", "a", "not", "a"}, "not")
	assert.Equal(t, []string{"a", "b"}, set.Words())
	assert.False(t, set.Contains("not"))

	var empty StopwordSet
	assert.False(t, empty.Contains("a"))
	assert.Zero(t, empty.Len())
	assert.True(t, empty.Equal(NewStopwordSet(nil)))
}

func TestStopwordsFromSource(t *testing.T) {
	set, err := StopwordsFromSource("")
	require.NoError(t, err)
	assert.True(t, EnglishStopwords().Equal(set))

	_, err = StopwordsFromSource("klingon")
	assert.Error(t, err)
}

func TestStopWordsLibraryIntegration(t *testing.T) {
	set, err := StopwordsFromSource(BbaletSource)
	require.NoError(t, err)

	assert.NotZero(t, set.Len())
	assert.True(t, set.Contains("the"))
	assert.False(t, set.Contains("exam"))
	for _, word := range NegationWords {
		assert.False(t, set.Contains(word), "negation %q must not be a stop word", word)
	}
}
