package mindguard

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTrain(t *testing.T) {
	var calls int
	config := DefaultTrainingConfig()
	config.ProgressCallback = func(done, total int) {
		calls++
		assert.Equal(t, 20, total)
	}

	model, metrics, err := NewTrainer(config).Train(trainingRecords())
	require.NoError(t, err)

	assert.Equal(t, 20, calls)
	assert.Equal(t, 20, metrics.Documents)
	assert.Equal(t, 10, metrics.VocabularySize)
	assert.Equal(t, []Label{NoStress, Stress}, metrics.Classes)
	assert.Equal(t, map[Label]int{Stress: 10, NoStress: 10}, metrics.ClassCounts)
	assert.Equal(t, []Label{NoStress, Stress}, model.Classes())
	assert.Contains(t, model.Vocabulary(), "exam pressure")
}

func TestModelScore(t *testing.T) {
	model := trainedModel(t)
	assert.Equal(t, "test", model.Name)

	label, confidence, probs, err := model.Score(model.Clean("Exam pressure"))
	require.NoError(t, err)
	assert.Equal(t, Stress, label)
	assert.Greater(t, confidence, 0.9)
	assert.InDelta(t, 1.0, probs[Stress]+probs[NoStress], 1e-9)
	assert.Equal(t, probs[label], confidence)

	// Nothing known: the priors decide, and they are even.
	label, confidence, _, err = model.Score("zebra")
	require.NoError(t, err)
	assert.Equal(t, NoStress, label)
	assert.InDelta(t, 0.5, confidence, 1e-9)
}

func TestTrainErrors(t *testing.T) {
	_, _, err := NewTrainer(DefaultTrainingConfig()).Train(nil)
	assert.ErrorIs(t, err, ErrNoTrainingData)

	_, _, err = NewTrainer(DefaultTrainingConfig()).Train([]Record{{Text: "The, the... and I!", Label: Stress}})
	assert.ErrorIs(t, err, ErrEmptyVocabulary)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	config := DefaultTrainingConfig()
	config.Context = ctx
	_, _, err = NewTrainer(config).Train(trainingRecords())
	assert.ErrorIs(t, err, context.Canceled)
}

func TestTrainWithCustomNormalizer(t *testing.T) {
	config := DefaultTrainingConfig()
	config.Normalizer = NewNormalizer(UsingStopwords(NewStopwordSet([]string{"exam"})))
	config.NGramMax = 1

	model, metrics, err := NewTrainer(config).Train(trainingRecords())
	require.NoError(t, err)
	assert.Equal(t, 6, metrics.VocabularySize) // "with" is no longer a stop word
	assert.NotContains(t, model.Vocabulary(), "exam")
	assert.Equal(t, "with pressure", model.Clean("with exam pressure"))
}

func TestNewTrainerZeroConfig(t *testing.T) {
	model, metrics, err := NewTrainer(TrainingConfig{}).Train(trainingRecords())
	require.NoError(t, err)
	assert.Equal(t, 10, metrics.VocabularySize)

	label, confidence, _, err := model.Score(model.Clean("Exam pressure"))
	require.NoError(t, err)
	assert.Equal(t, Stress, label)
	assert.Greater(t, confidence, 0.9)
}
