package mindguard

import (
	"regexp"
	"strings"
	"unicode"
)

// A Normalizer turns raw text into the cleaned form used for training and
// prediction: lowercase, letters a-z only, stop words removed.
type Normalizer struct {
	stopwords StopwordSet
	keep      map[string]bool
}

// NormalizerOptFunc configures a Normalizer.
type NormalizerOptFunc func(*Normalizer)

// UsingStopwords replaces the default NLTK English stop words.
func UsingStopwords(set StopwordSet) NormalizerOptFunc {
	return func(n *Normalizer) {
		n.stopwords = set
	}
}

// KeepingWords protects additional words from stop word removal. The
// negation words are always protected.
func KeepingWords(words ...string) NormalizerOptFunc {
	return func(n *Normalizer) {
		for _, w := range words {
			n.keep[w] = true
		}
	}
}

// NewNormalizer creates a Normalizer.
func NewNormalizer(opts ...NormalizerOptFunc) *Normalizer {
	n := &Normalizer{
		stopwords: EnglishStopwords(),
		keep:      make(map[string]bool),
	}
	for _, w := range NegationWords {
		n.keep[w] = true
	}
	for _, applyOpt := range opts {
		applyOpt(n)
	}
	return n
}

// Clean lowercases text, deletes every character that is not a-z or
// whitespace, drops stop words and joins what remains with single spaces.
// Text made only of stop words cleans to "".
func (n *Normalizer) Clean(text string) string {
	text = strings.Map(func(r rune) rune {
		if (r >= 'a' && r <= 'z') || unicode.IsSpace(r) {
			return r
		}
		return -1
	}, strings.ToLower(text))

	words := strings.Fields(text)
	kept := words[:0]
	for _, w := range words {
		if n.keep[w] || !n.stopwords.Contains(w) {
			kept = append(kept, w)
		}
	}
	return strings.Join(kept, " ")
}

// An Analyzer splits cleaned text into the terms counted by a Vectorizer:
// word n-grams over tokens of two or more word characters.
type Analyzer struct {
	tokenRE *regexp.Regexp
	minN    int
	maxN    int
}

// AnalyzerOptFunc configures an Analyzer.
type AnalyzerOptFunc func(*Analyzer)

// UsingNGramRange sets the inclusive range of n-gram sizes.
func UsingNGramRange(minN, maxN int) AnalyzerOptFunc {
	return func(a *Analyzer) {
		a.minN, a.maxN = minN, maxN
	}
}

// UsingTokenPattern replaces the token regex.
func UsingTokenPattern(re *regexp.Regexp) AnalyzerOptFunc {
	return func(a *Analyzer) {
		a.tokenRE = re
	}
}

// NewAnalyzer creates an Analyzer producing unigrams and bigrams.
func NewAnalyzer(opts ...AnalyzerOptFunc) *Analyzer {
	a := &Analyzer{tokenRE: tokenRE, minN: 1, maxN: 2}
	for _, applyOpt := range opts {
		applyOpt(a)
	}
	if a.minN < 1 {
		a.minN = 1
	}
	if a.maxN < a.minN {
		a.maxN = a.minN
	}
	return a
}

// Terms returns the n-grams of doc, unigrams first, in text order.
func (a *Analyzer) Terms(doc string) []string {
	tokens := a.tokenRE.FindAllString(strings.ToLower(doc), -1)

	var terms []string
	if a.minN == 1 {
		terms = append(terms, tokens...)
	}
	start := a.minN
	if start < 2 {
		start = 2
	}
	for n := start; n <= a.maxN && n <= len(tokens); n++ {
		for i := 0; i+n <= len(tokens); i++ {
			terms = append(terms, strings.Join(tokens[i:i+n], " "))
		}
	}
	return terms
}

var tokenRE = regexp.MustCompile(`\b\w\w+\b`)
