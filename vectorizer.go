package mindguard

import (
	"errors"
	"math"
	"sort"

	"gonum.org/v1/gonum/mat"
)

// ErrAlreadyFitted is returned when Fit is called on a fitted Vectorizer.
var ErrAlreadyFitted = errors.New("vectorizer has already been fitted")

// A Vectorizer maps cleaned documents to L2-normalised TF-IDF vectors over a
// vocabulary learned once by Fit.
type Vectorizer struct {
	analyzer   *Analyzer
	vocabulary map[string]int // term -> column
	terms      []string       // column -> term
	idf        *mat.VecDense
}

// NewVectorizer creates an unfitted Vectorizer. A nil analyzer means
// unigrams and bigrams.
func NewVectorizer(analyzer *Analyzer) *Vectorizer {
	if analyzer == nil {
		analyzer = NewAnalyzer()
	}
	return &Vectorizer{analyzer: analyzer}
}

// Fit learns the vocabulary and inverse document frequencies of docs.
//
// Columns are assigned in lexicographic term order and
// idf = ln((1+n)/(1+df)) + 1.
func (v *Vectorizer) Fit(docs []string) error {
	if v.idf != nil {
		return ErrAlreadyFitted
	}
	if len(docs) == 0 {
		return ErrNoTrainingData
	}

	df := make(map[string]int)
	for _, doc := range docs {
		seen := make(map[string]bool)
		for _, term := range v.analyzer.Terms(doc) {
			if !seen[term] {
				seen[term] = true
				df[term]++
			}
		}
	}
	if len(df) == 0 {
		return ErrEmptyVocabulary
	}

	terms := make([]string, 0, len(df))
	for term := range df {
		terms = append(terms, term)
	}
	sort.Strings(terms)

	n := float64(len(docs))
	vocabulary := make(map[string]int, len(terms))
	idf := mat.NewVecDense(len(terms), nil)
	for col, term := range terms {
		vocabulary[term] = col
		idf.SetVec(col, math.Log((1+n)/(1+float64(df[term])))+1)
	}

	v.terms = terms
	v.vocabulary = vocabulary
	v.idf = idf
	return nil
}

// FitTransform fits the vectorizer and returns the document-term matrix of
// docs, one row per document.
func (v *Vectorizer) FitTransform(docs []string) (*mat.Dense, error) {
	if err := v.Fit(docs); err != nil {
		return nil, err
	}
	return v.Transform(docs)
}

// Transform returns the document-term matrix of docs using the fitted
// vocabulary.
func (v *Vectorizer) Transform(docs []string) (*mat.Dense, error) {
	if v.idf == nil {
		return nil, ErrNotFitted
	}
	if len(docs) == 0 {
		return nil, ErrNoTrainingData
	}

	x := mat.NewDense(len(docs), len(v.terms), nil)
	for i, doc := range docs {
		x.SetRow(i, v.row(doc))
	}
	return x, nil
}

// TransformOne returns the TF-IDF vector of a single document. Terms outside
// the vocabulary contribute nothing; a document with no known term yields
// the zero vector.
func (v *Vectorizer) TransformOne(doc string) (*mat.VecDense, error) {
	if v.idf == nil {
		return nil, ErrNotFitted
	}
	return mat.NewVecDense(len(v.terms), v.row(doc)), nil
}

func (v *Vectorizer) row(doc string) []float64 {
	row := make([]float64, len(v.terms))
	for _, term := range v.analyzer.Terms(doc) {
		if col, found := v.vocabulary[term]; found {
			row[col]++
		}
	}

	var norm float64
	for col, count := range row {
		if count == 0 {
			continue
		}
		row[col] = count * v.idf.AtVec(col)
		norm += row[col] * row[col]
	}
	if norm > 0 {
		norm = math.Sqrt(norm)
		for col := range row {
			row[col] /= norm
		}
	}
	return row
}

// Vocabulary returns the fitted terms in column order.
func (v *Vectorizer) Vocabulary() []string {
	return append([]string(nil), v.terms...)
}

// IDF returns the inverse document frequency of term.
func (v *Vectorizer) IDF(term string) (float64, bool) {
	col, found := v.vocabulary[term]
	if !found {
		return 0, false
	}
	return v.idf.AtVec(col), true
}

// Fitted reports whether Fit has completed.
func (v *Vectorizer) Fitted() bool {
	return v.idf != nil
}
