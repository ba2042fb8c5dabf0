package mindguard

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPredict(t *testing.T) {
	tests := []struct {
		text   string
		label  Label
		source Source
		desc   string
	}{
		{"I feel so sad and hopeless today", Stress, "stress", "Stress triggers"},
		{"wow this is great", NoStress, "happy", "Happy triggers"},
		{"maybe I am sad", Unsure, "unsure", "Unsure beats stress"},
		{"IDK, life is bad", Unsure, "unsure", "Triggers are case-insensitive"},
		{"not die", Stress, "stress", "Unlisted negation is not exempt"},
		{"no stress today, feeling great", NoStress, "happy", "Exempt stress falls to happy"},
		{"the the the", Unsure, SourceEmpty, "Only stop words"},
		{"not happy at all", Unsure, SourceLowConfidence, "Exempt happy falls to the model"},
		{"not stressed at all", Unsure, SourceLowConfidence, "Exempt stress falls to the model"},
		{"Exam pressure", Stress, SourceModel, "Model predicts stress"},
		{"sunny picnic", NoStress, SourceModel, "Model predicts no stress"},
		{"zebra", Unsure, SourceLowConfidence, "Unknown words"},
	}

	predictor := NewPredictor(trainedModel(t), DefaultPredictorConfig(), nil)
	for _, tt := range tests {
		t.Run(tt.desc, func(t *testing.T) {
			decision, err := predictor.Predict(tt.text)
			require.NoError(t, err)
			assert.Equal(t, tt.label, decision.Label, "text %q", tt.text)
			assert.Equal(t, tt.source, decision.Source, "text %q", tt.text)
		})
	}
}

func TestUnsureTriggersDominate(t *testing.T) {
	predictor := NewPredictor(trainedModel(t), DefaultPredictorConfig(), nil)
	for _, trigger := range DefaultRules()[0].Triggers {
		for _, rest := range []string{"", " but I am sad", " wow great", " exam pressure", " no stress, not happy"} {
			label, err := predictor.Classify("so " + trigger + rest)
			require.NoError(t, err)
			assert.Equal(t, Unsure, label, "input %q", "so "+trigger+rest)
		}
	}
}

func TestPredictIsIdempotent(t *testing.T) {
	predictor := NewPredictor(trainedModel(t), DefaultPredictorConfig(), nil)
	for _, text := range []string{"Exam pressure", "sunny friends", "zebra", "wow", "the the the"} {
		first, err := predictor.Predict(text)
		require.NoError(t, err)
		second, err := predictor.Predict(text)
		require.NoError(t, err)
		assert.Equal(t, first, second)
	}
}

func TestPredictThreshold(t *testing.T) {
	model := trainedModel(t)

	strict := DefaultPredictorConfig()
	strict.MinConfidence = 0.99
	decision, err := NewPredictor(model, strict, nil).Predict("Exam pressure")
	require.NoError(t, err)
	assert.Equal(t, Unsure, decision.Label)
	assert.Equal(t, SourceLowConfidence, decision.Source)
	assert.Greater(t, decision.Confidence, 0.9)
	assert.Len(t, decision.Probabilities, 2)

	// At exactly the threshold the model's label stands.
	lenient := DefaultPredictorConfig()
	lenient.MinConfidence = 0.5
	decision, err = NewPredictor(model, lenient, nil).Predict("zebra")
	require.NoError(t, err)
	assert.Equal(t, NoStress, decision.Label)
	assert.Equal(t, SourceModel, decision.Source)
}

func TestPredictWithoutModel(t *testing.T) {
	predictor := NewPredictor(nil, DefaultPredictorConfig(), nil)

	label, err := predictor.Classify("wow")
	require.NoError(t, err)
	assert.Equal(t, NoStress, label)

	_, err = predictor.Predict("zebra")
	assert.ErrorIs(t, err, ErrNotFitted)
}

func TestIsRuleDecision(t *testing.T) {
	assert.True(t, IsRuleDecision(Decision{Source: "stress"}))
	assert.False(t, IsRuleDecision(Decision{Source: SourceModel}))
	assert.False(t, IsRuleDecision(Decision{Source: SourceEmpty}))
	assert.False(t, IsRuleDecision(Decision{}))
}
