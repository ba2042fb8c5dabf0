package mindguard

import "go.uber.org/zap"

// PredictorConfig configures a Predictor
type PredictorConfig struct {
	MinConfidence ConfidenceLevel // Below this the model's answer becomes Unsure
	Rules         RuleTable       // Checked in order before the model
}

// DefaultPredictorConfig returns the built-in rules and a 0.55 threshold.
func DefaultPredictorConfig() PredictorConfig {
	return PredictorConfig{
		MinConfidence: DefaultConfidence,
		Rules:         DefaultRules(),
	}
}

// A Predictor labels a single piece of text: first with its rule table,
// then with the trained model.
type Predictor struct {
	model  *Model
	config PredictorConfig
	logger *zap.Logger
}

// NewPredictor creates a predictor backed by a trained model. A nil logger
// discards log output.
func NewPredictor(model *Model, config PredictorConfig, logger *zap.Logger) *Predictor {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Predictor{model: model, config: config, logger: logger}
}

// Predict returns the decision for text.
//
// Rules see the lowercased raw text. Only when none applies is the text
// cleaned and handed to the model: empty cleaned text, or a top class
// probability under MinConfidence, both give Unsure.
func (p *Predictor) Predict(text string) (Decision, error) {
	if rule, ok := p.config.Rules.Evaluate(text); ok {
		p.logger.Debug("rule matched", zap.String("rule", rule.Name), zap.String("label", string(rule.Label)))
		return Decision{Label: rule.Label, Source: Source(rule.Name)}, nil
	}

	if p.model == nil {
		return Decision{}, ErrNotFitted
	}

	cleaned := p.model.Clean(text)
	if cleaned == "" {
		p.logger.Debug("nothing left after cleaning")
		return Decision{Label: Unsure, Source: SourceEmpty}, nil
	}

	label, confidence, probs, err := p.model.Score(cleaned)
	if err != nil {
		return Decision{}, err
	}

	decision := Decision{
		Label:         label,
		Source:        SourceModel,
		Confidence:    confidence,
		Probabilities: probs,
	}
	if confidence < float64(p.config.MinConfidence) {
		decision.Label = Unsure
		decision.Source = SourceLowConfidence
	}

	p.logger.Debug("model decision",
		zap.String("cleaned", cleaned),
		zap.String("predicted", string(label)),
		zap.Float64("confidence", confidence),
		zap.String("label", string(decision.Label)))
	return decision, nil
}

// Classify returns only the label of Predict.
func (p *Predictor) Classify(text string) (Label, error) {
	decision, err := p.Predict(text)
	if err != nil {
		return "", err
	}
	return decision.Label, nil
}

// IsRuleDecision reports whether d came from the rule table rather than the
// model stage.
func IsRuleDecision(d Decision) bool {
	switch d.Source {
	case SourceModel, SourceEmpty, SourceLowConfidence, "":
		return false
	}
	return true
}
