package mindguard

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
)

// A Model holds the fitted structures used for prediction: the text
// normalizer, the TF-IDF vectorizer and the Naive Bayes classifier.
//
// A Model is read-only once trained; there is no way to refit it.
type Model struct {
	Name string

	normalizer *Normalizer
	vectorizer *Vectorizer
	classifier *NaiveBayes
}

// ModelFromData trains a new Model on user-provided records with the
// default training configuration.
func ModelFromData(name string, data []Record) (*Model, error) {
	model, _, err := NewTrainer(DefaultTrainingConfig()).Train(data)
	if err != nil {
		return nil, err
	}
	model.Name = name
	return model, nil
}

// Clean normalizes text the same way the training data was normalized.
func (m *Model) Clean(text string) string {
	return m.normalizer.Clean(text)
}

// Classes returns the labels the classifier can predict.
func (m *Model) Classes() []Label {
	return m.classifier.Classes()
}

// Vocabulary returns the fitted unigram and bigram terms.
func (m *Model) Vocabulary() []string {
	return m.vectorizer.Vocabulary()
}

// Score classifies already-cleaned text, returning the arg-max label, its
// probability and the probability of every class.
func (m *Model) Score(cleaned string) (Label, float64, map[Label]float64, error) {
	vec, err := m.vectorizer.TransformOne(cleaned)
	if err != nil {
		return "", 0, nil, fmt.Errorf("vectorize: %w", err)
	}
	probs, err := m.classifier.PredictProba(vec)
	if err != nil {
		return "", 0, nil, fmt.Errorf("classify: %w", err)
	}

	classes := m.classifier.Classes()
	byLabel := make(map[Label]float64, len(classes))
	for i, class := range classes {
		byLabel[class] = probs[i]
	}
	best := floats.MaxIdx(probs)
	return classes[best], probs[best], byLabel, nil
}
