package mindguard

import (
	"fmt"
	"sort"
	"strings"

	"github.com/bbalet/stopwords"
	mapset "github.com/deckarep/golang-set/v2"
)

// NegationWords are never treated as stop words, so that "not happy" keeps
// its "not".
var NegationWords = []string{"not", "no", "nor", "never", "dont", "cant"}

// A StopwordSet is a read-only set of words removed during cleaning.
type StopwordSet struct {
	words mapset.Set[string]
}

// NewStopwordSet builds a set from words, leaving out anything in keep.
func NewStopwordSet(words []string, keep ...string) StopwordSet {
	set := mapset.NewThreadUnsafeSet(words...)
	for _, w := range keep {
		set.Remove(w)
	}
	return StopwordSet{words: set}
}

// Contains reports whether word is a stop word.
func (s StopwordSet) Contains(word string) bool {
	return s.words != nil && s.words.Contains(word)
}

// Len returns the number of stop words.
func (s StopwordSet) Len() int {
	if s.words == nil {
		return 0
	}
	return s.words.Cardinality()
}

// Equal reports whether s and other hold the same words.
func (s StopwordSet) Equal(other StopwordSet) bool {
	if s.Len() == 0 || other.Len() == 0 {
		return s.Len() == other.Len()
	}
	return s.words.Equal(other.words)
}

// Words returns the set's members in sorted order.
func (s StopwordSet) Words() []string {
	if s.words == nil {
		return nil
	}
	words := s.words.ToSlice()
	sort.Strings(words)
	return words
}

// StopwordSource selects where the stop word corpus comes from.
type StopwordSource string

const (
	// NLTKSource is the NLTK English corpus.
	NLTKSource StopwordSource = "nltk"
	// BbaletSource probes the github.com/bbalet/stopwords English corpus.
	BbaletSource StopwordSource = "bbalet"
)

// EnglishStopwords returns the default stop word set: the NLTK English
// corpus without the negation words.
func EnglishStopwords() StopwordSet {
	return NewStopwordSet(nltkEnglish, NegationWords...)
}

// StopwordsFromSource returns the English stop words for source, without the
// negation words.
func StopwordsFromSource(source StopwordSource) (StopwordSet, error) {
	switch source {
	case NLTKSource, "":
		return EnglishStopwords(), nil
	case BbaletSource:
		return StopwordsFromCorpus("en", NegationWords...), nil
	default:
		return StopwordSet{}, fmt.Errorf("unknown stop word source %q (want %q or %q)", source, NLTKSource, BbaletSource)
	}
}

// StopwordsFromCorpus builds a set from the bbalet/stopwords corpus for
// langCode.
//
// The library doesn't export its lists, so each candidate word is run
// through it and counted as a stop word when nothing survives.
func StopwordsFromCorpus(langCode string, keep ...string) StopwordSet {
	var words []string
	for _, candidate := range corpusCandidates() {
		cleaned := stopwords.CleanString(candidate, langCode, false)
		if strings.TrimSpace(cleaned) == "" {
			words = append(words, candidate)
		}
	}
	return NewStopwordSet(words, keep...)
}

// corpusCandidates lists the words probed against an external corpus. Only
// words that can survive cleaning (a-z) are worth probing.
func corpusCandidates() []string {
	seen := make(map[string]bool)
	var out []string
	for _, list := range [][]string{nltkEnglish, commonEnglish} {
		for _, w := range list {
			if strings.ContainsRune(w, '\'') || seen[w] {
				continue
			}
			seen[w] = true
			out = append(out, w)
		}
	}
	return out
}

var nltkEnglish = []string{
	"i", "me", "my", "myself", "we", "our", "ours", "ourselves", "you",
	"you're", "you've", "you'll", "you'd", "your", "yours", "yourself",
	"yourselves", "he", "him", "his", "himself", "she", "she's", "her", "hers",
	"herself", "it", "it's", "its", "itself", "they", "them", "their",
	"theirs", "themselves", "what", "which", "who", "whom", "this", "that",
	"that'll", "these", "those", "am", "is", "are", "was", "were", "be",
	"been", "being", "have", "has", "had", "having", "do", "does", "did",
	"doing", "a", "an", "the", "and", "but", "if", "or", "because", "as",
	"until", "while", "of", "at", "by", "for", "with", "about", "against",
	"between", "into", "through", "during", "before", "after", "above",
	"below", "to", "from", "up", "down", "in", "out", "on", "off", "over",
	"under", "again", "further", "then", "once", "here", "there", "when",
	"where", "why", "how", "all", "any", "both", "each", "few", "more",
	"most", "other", "some", "such", "no", "nor", "not", "only", "own",
	"same", "so", "than", "too", "very", "s", "t", "can", "will", "just",
	"don", "don't", "should", "should've", "now", "d", "ll", "m", "o", "re",
	"ve", "y", "ain", "aren", "aren't", "couldn", "couldn't", "didn",
	"didn't", "doesn", "doesn't", "hadn", "hadn't", "hasn", "hasn't", "haven",
	"haven't", "isn", "isn't", "ma", "mightn", "mightn't", "mustn", "mustn't",
	"needn", "needn't", "shan", "shan't", "shouldn", "shouldn't", "wasn",
	"wasn't", "weren", "weren't", "won", "won't", "wouldn", "wouldn't",
}

// commonEnglish widens the probe beyond NLTK for corpora with longer lists.
var commonEnglish = []string{
	"also", "among", "another", "anyone", "anything", "around", "back",
	"became", "become", "could", "dont", "cant", "either", "else", "enough",
	"even", "ever", "every", "get", "got", "however", "indeed", "instead",
	"less", "many", "may", "might", "much", "must", "neither", "never",
	"nobody", "nothing", "often", "perhaps", "quite", "rather", "really",
	"several", "since", "still", "therefore", "though", "thus", "toward",
	"upon", "us", "whether", "within", "without", "would", "yet",
}
