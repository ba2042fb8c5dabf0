package mindguard

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// NaiveBayes is a multinomial Naive Bayes classifier over (fractional)
// feature counts such as TF-IDF weights.
type NaiveBayes struct {
	alpha float64

	classes        []Label
	classCount     []float64
	featureCount   *mat.Dense // classes x features
	featureLogProb *mat.Dense // classes x features
	classLogPrior  *mat.VecDense
}

// minAlpha is the smallest smoothing applied, so that a feature never seen
// with a class keeps a finite log probability.
const minAlpha = 1e-10

// NewNaiveBayes creates an unfitted classifier with additive smoothing alpha.
// Alpha below 1e-10 is raised to 1e-10.
func NewNaiveBayes(alpha float64) *NaiveBayes {
	return &NaiveBayes{alpha: alpha}
}

// Fit estimates class priors and per-feature likelihoods from x, one row
// per document, and the matching labels y. Classes are kept in sorted order.
func (nb *NaiveBayes) Fit(x *mat.Dense, y []Label) error {
	if nb.alpha < 0 {
		return fmt.Errorf("smoothing parameter alpha must be >= 0, got %g", nb.alpha)
	}
	alpha := math.Max(nb.alpha, minAlpha)
	rows, cols := x.Dims()
	if rows != len(y) {
		return fmt.Errorf("found %d documents but %d labels", rows, len(y))
	}
	if rows == 0 {
		return ErrNoTrainingData
	}

	index := make(map[Label]int)
	for _, label := range y {
		index[label] = 0
	}
	classes := make([]Label, 0, len(index))
	for label := range index {
		classes = append(classes, label)
	}
	sort.Slice(classes, func(i, j int) bool { return classes[i] < classes[j] })
	for i, label := range classes {
		index[label] = i
	}

	// One-hot label matrix, so that feature counts are Yᵀ·X.
	onehot := mat.NewDense(rows, len(classes), nil)
	classCount := make([]float64, len(classes))
	for i, label := range y {
		onehot.Set(i, index[label], 1)
		classCount[index[label]]++
	}

	featureCount := mat.NewDense(len(classes), cols, nil)
	featureCount.Mul(onehot.T(), x)

	featureLogProb := mat.NewDense(len(classes), cols, nil)
	featureLogProb.Apply(func(_, _ int, v float64) float64 {
		return v + alpha
	}, featureCount)
	for c := range classes {
		row := featureLogProb.RawRowView(c)
		logTotal := math.Log(floats.Sum(row))
		for j := range row {
			row[j] = math.Log(row[j]) - logTotal
		}
	}

	logTotal := math.Log(float64(rows))
	classLogPrior := mat.NewVecDense(len(classes), nil)
	for c, count := range classCount {
		classLogPrior.SetVec(c, math.Log(count)-logTotal)
	}

	nb.classes = classes
	nb.classCount = classCount
	nb.featureCount = featureCount
	nb.featureLogProb = featureLogProb
	nb.classLogPrior = classLogPrior
	return nil
}

// Classes returns the fitted class labels in column order of PredictProba.
func (nb *NaiveBayes) Classes() []Label {
	return append([]Label(nil), nb.classes...)
}

// JointLogLikelihood returns log P(c) + Σ x_j·log P(j|c) for every class.
func (nb *NaiveBayes) JointLogLikelihood(x mat.Vector) ([]float64, error) {
	if nb.featureLogProb == nil {
		return nil, ErrNotFitted
	}
	_, cols := nb.featureLogProb.Dims()
	if x.Len() != cols {
		return nil, fmt.Errorf("vector has %d features, classifier expects %d", x.Len(), cols)
	}

	jll := mat.NewVecDense(len(nb.classes), nil)
	jll.MulVec(nb.featureLogProb, x)
	jll.AddVec(jll, nb.classLogPrior)
	return jll.RawVector().Data, nil
}

// PredictProba returns the posterior probability of each class, in the
// order of Classes.
func (nb *NaiveBayes) PredictProba(x mat.Vector) ([]float64, error) {
	jll, err := nb.JointLogLikelihood(x)
	if err != nil {
		return nil, err
	}
	norm := floats.LogSumExp(jll)
	probs := make([]float64, len(jll))
	for i, v := range jll {
		probs[i] = math.Exp(v - norm)
	}
	return probs, nil
}

// Predict returns the most probable class and its probability. Ties go to
// the class that sorts first.
func (nb *NaiveBayes) Predict(x mat.Vector) (Label, float64, error) {
	probs, err := nb.PredictProba(x)
	if err != nil {
		return "", 0, err
	}
	best := floats.MaxIdx(probs)
	return nb.classes[best], probs[best], nil
}
