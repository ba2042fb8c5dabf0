package mindguard

import "errors"

// A Label is the outcome of a prediction.
type Label string

const (
	Stress   Label = "stress"    // High mental stress
	NoStress Label = "no_stress" // No significant stress
	Unsure   Label = "unsure"    // Not enough signal to decide
)

// A Record represents one labeled row of training data.
type Record struct {
	Text  string // The raw, uncleaned text.
	Label Label  // The label as it appears in the dataset.
}

// Source names the stage of the predictor that produced a Decision.
type Source string

const (
	SourceModel         Source = "model"          // Classifier prediction above the threshold
	SourceEmpty         Source = "empty"          // Cleaning removed every token
	SourceLowConfidence Source = "low_confidence" // Classifier prediction below the threshold
)

// A Decision is the full result of a prediction.
type Decision struct {
	Label  Label  // The final label.
	Source Source // A rule name, or one of the Source constants above.

	// Confidence is the highest class probability when the model ran; it is
	// zero for rule and empty-input decisions.
	Confidence float64

	// Probabilities holds per-class probabilities when the model ran.
	Probabilities map[Label]float64
}

// ConfidenceLevel is a minimum class probability for trusting the model.
type ConfidenceLevel float64

// DefaultConfidence is the minimum class probability required before the
// classifier's arg-max label is accepted.
const DefaultConfidence ConfidenceLevel = 0.55

var (
	// ErrDatasetMissing is returned when the training file does not exist.
	ErrDatasetMissing = errors.New("dataset not found")

	// ErrNoTrainingData is returned when a dataset holds no rows.
	ErrNoTrainingData = errors.New("training data is empty")

	// ErrEmptyVocabulary is returned when no document yields a usable term.
	ErrEmptyVocabulary = errors.New("empty vocabulary; perhaps the documents only contain stop words")

	// ErrNotFitted is returned when a vectorizer or classifier is used before Fit.
	ErrNotFitted = errors.New("model has not been fitted")
)
