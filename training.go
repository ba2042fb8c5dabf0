package mindguard

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
)

// TrainingConfig contains configuration for model training
type TrainingConfig struct {
	Alpha            float64 // Additive smoothing for Naive Bayes; 0 means 1
	NGramMin         int // 0 for both means unigrams and bigrams
	NGramMax         int
	Normalizer       *Normalizer // nil means NewNormalizer()
	Context          context.Context
	Logger           *zap.Logger
	ProgressCallback func(done, total int)
}

// DefaultTrainingConfig returns a default training configuration: unigrams
// and bigrams with Laplace smoothing.
func DefaultTrainingConfig() TrainingConfig {
	return TrainingConfig{
		Alpha:    1.0,
		NGramMin: 1,
		NGramMax: 2,
		Context:  context.Background(),
	}
}

// TrainingMetrics contains metrics from training
type TrainingMetrics struct {
	Documents      int
	VocabularySize int
	Classes        []Label
	ClassCounts    map[Label]int
	TrainingTime   time.Duration
}

// Trainer fits a Model from labeled records.
type Trainer struct {
	config TrainingConfig
	logger *zap.Logger
}

// NewTrainer creates a new trainer with the given configuration. Zero
// fields take their DefaultTrainingConfig values.
func NewTrainer(config TrainingConfig) *Trainer {
	defaults := DefaultTrainingConfig()
	if config.Alpha == 0 {
		config.Alpha = defaults.Alpha
	}
	if config.NGramMin == 0 && config.NGramMax == 0 {
		config.NGramMin, config.NGramMax = defaults.NGramMin, defaults.NGramMax
	}
	if config.Context == nil {
		config.Context = context.Background()
	}
	if config.Normalizer == nil {
		config.Normalizer = NewNormalizer()
	}
	logger := config.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Trainer{config: config, logger: logger}
}

// Train cleans every record, fits the vectorizer on the full corpus and
// fits the classifier on the resulting matrix.
func (t *Trainer) Train(data []Record) (*Model, TrainingMetrics, error) {
	startTime := time.Now()

	if len(data) == 0 {
		return nil, TrainingMetrics{}, ErrNoTrainingData
	}

	docs := make([]string, len(data))
	labels := make([]Label, len(data))
	counts := make(map[Label]int)
	for i, record := range data {
		select {
		case <-t.config.Context.Done():
			return nil, TrainingMetrics{}, t.config.Context.Err()
		default:
		}

		docs[i] = t.config.Normalizer.Clean(record.Text)
		labels[i] = record.Label
		counts[record.Label]++

		if t.config.ProgressCallback != nil {
			t.config.ProgressCallback(i+1, len(data))
		}
	}

	vectorizer := NewVectorizer(NewAnalyzer(UsingNGramRange(t.config.NGramMin, t.config.NGramMax)))
	x, err := vectorizer.FitTransform(docs)
	if err != nil {
		return nil, TrainingMetrics{}, fmt.Errorf("fit vectorizer: %w", err)
	}
	t.logger.Debug("vectorizer fitted",
		zap.Int("documents", len(docs)),
		zap.Int("vocabulary", len(vectorizer.terms)))

	classifier := NewNaiveBayes(t.config.Alpha)
	if err := classifier.Fit(x, labels); err != nil {
		return nil, TrainingMetrics{}, fmt.Errorf("fit classifier: %w", err)
	}

	metrics := TrainingMetrics{
		Documents:      len(data),
		VocabularySize: len(vectorizer.terms),
		Classes:        classifier.Classes(),
		ClassCounts:    counts,
		TrainingTime:   time.Since(startTime),
	}
	t.logger.Info("model trained",
		zap.Int("documents", metrics.Documents),
		zap.Int("vocabulary", metrics.VocabularySize),
		zap.Any("classes", metrics.Classes),
		zap.Duration("elapsed", metrics.TrainingTime))

	return &Model{
		normalizer: t.config.Normalizer,
		vectorizer: vectorizer,
		classifier: classifier,
	}, metrics, nil
}
