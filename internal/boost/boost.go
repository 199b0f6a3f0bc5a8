// Package boost trains a gradient-boosted ensemble of decision stumps for
// binary classification with logistic loss.
package boost

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
)

const (
	defaultRounds       = 100
	defaultLearningRate = 0.3
	lambda              = 1.0 // L2 regularization on leaf weights
	minGain             = 1e-7
)

type stump struct {
	feature   int
	threshold float64
	left      float64 // log-odds increment when x[feature] < threshold
	right     float64
}

// Classifier is fit once and then applied; incremental retraining is not
// supported.
type Classifier struct {
	Rounds       int
	LearningRate float64

	bias     float64
	stumps   []stump
	features int
}

func NewClassifier() *Classifier {
	return &Classifier{Rounds: defaultRounds, LearningRate: defaultLearningRate}
}

// Fit trains on a dense feature matrix and binary labels (0 or 1). Rows
// must be non-empty and uniform in width.
func (c *Classifier) Fit(x [][]float64, y []int) error {
	if len(x) == 0 {
		return fmt.Errorf("fit: empty feature matrix")
	}
	if len(x) != len(y) {
		return fmt.Errorf("fit: %d rows but %d labels", len(x), len(y))
	}
	width := len(x[0])
	if width == 0 {
		return fmt.Errorf("fit: rows have no features")
	}
	for i, row := range x {
		if len(row) != width {
			return fmt.Errorf("fit: row %d has %d features, want %d", i, len(row), width)
		}
	}
	targets := make([]float64, len(y))
	positives := 0.0
	for i, label := range y {
		if label != 0 && label != 1 {
			return fmt.Errorf("fit: label %d is %d, want 0 or 1", i, label)
		}
		targets[i] = float64(label)
		positives += targets[i]
	}

	base := clampProb(positives / float64(len(y)))
	c.bias = math.Log(base / (1 - base))
	c.features = width
	c.stumps = nil

	scores := make([]float64, len(y))
	for i := range scores {
		scores[i] = c.bias
	}

	grad := make([]float64, len(y))
	hess := make([]float64, len(y))
	for round := 0; round < c.Rounds; round++ {
		for i, score := range scores {
			p := sigmoid(score)
			grad[i] = targets[i] - p
			hess[i] = p * (1 - p)
		}
		s, gain := bestStump(x, grad, hess)
		if gain < minGain {
			break
		}
		s.left *= c.LearningRate
		s.right *= c.LearningRate
		c.stumps = append(c.stumps, s)
		for i, row := range x {
			scores[i] += s.apply(row)
		}
	}
	return nil
}

// Predict returns one binary label per row, thresholding the predicted
// probability at 0.5.
func (c *Classifier) Predict(x [][]float64) ([]int, error) {
	if c.features == 0 {
		return nil, fmt.Errorf("predict: classifier is not fitted")
	}
	labels := make([]int, len(x))
	for i, row := range x {
		if len(row) != c.features {
			return nil, fmt.Errorf("predict: row %d has %d features, want %d", i, len(row), c.features)
		}
		if sigmoid(c.score(row)) >= 0.5 {
			labels[i] = 1
		}
	}
	return labels, nil
}

func (c *Classifier) score(row []float64) float64 {
	score := c.bias
	for _, s := range c.stumps {
		score += s.apply(row)
	}
	return score
}

func (s stump) apply(row []float64) float64 {
	if row[s.feature] < s.threshold {
		return s.left
	}
	return s.right
}

// bestStump greedily searches every feature and every midpoint between
// adjacent distinct values for the split with the highest gain.
func bestStump(x [][]float64, grad, hess []float64) (stump, float64) {
	totalG := floats.Sum(grad)
	totalH := floats.Sum(hess)
	parent := leafScore(totalG, totalH)

	var best stump
	bestGain := math.Inf(-1)

	order := make([]int, len(x))
	for feature := 0; feature < len(x[0]); feature++ {
		for i := range order {
			order[i] = i
		}
		sort.Slice(order, func(a, b int) bool {
			return x[order[a]][feature] < x[order[b]][feature]
		})

		leftG, leftH := 0.0, 0.0
		for pos := 0; pos < len(order)-1; pos++ {
			i := order[pos]
			leftG += grad[i]
			leftH += hess[i]

			lo := x[i][feature]
			hi := x[order[pos+1]][feature]
			if lo == hi {
				continue
			}
			rightG := totalG - leftG
			rightH := totalH - leftH
			gain := leafScore(leftG, leftH) + leafScore(rightG, rightH) - parent
			if gain > bestGain {
				bestGain = gain
				best = stump{
					feature:   feature,
					threshold: (lo + hi) / 2,
					left:      leafWeight(leftG, leftH),
					right:     leafWeight(rightG, rightH),
				}
			}
		}
	}
	return best, bestGain
}

func leafScore(g, h float64) float64  { return g * g / (h + lambda) }
func leafWeight(g, h float64) float64 { return g / (h + lambda) }

func sigmoid(z float64) float64 {
	return 1 / (1 + math.Exp(-z))
}

func clampProb(p float64) float64 {
	return math.Min(math.Max(p, 1e-6), 1-1e-6)
}
