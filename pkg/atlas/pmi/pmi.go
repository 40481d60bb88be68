package pmi

import "math"

// DefaultEpsilon is the smoothing constant used by NewCalculator when
// given a non-positive value.
const DefaultEpsilon = 1.0

// Calculator handles PMI (Pointwise Mutual Information) calculations
type Calculator struct {
	epsilon float64 // smoothing constant
}

// NewCalculator creates a new PMI calculator with the given epsilon
func NewCalculator(epsilon float64) *Calculator {
	if epsilon <= 0 {
		epsilon = DefaultEpsilon
	}
	return &Calculator{epsilon: epsilon}
}

// PMI calculates the pointwise mutual information between two labels
//
// PMI(a,b) = log((N_ab + ε) * N / ((N_a + ε)(N_b + ε)))
//
// Where:
//   - N_ab = number of sentences containing both a and b
//   - N_a, N_b = number of sentences containing each label
//   - N = total number of sentences
//   - ε = smoothing constant
func (c *Calculator) PMI(nAB, nA, nB, n int64) float64 {
	if n == 0 {
		return 0
	}

	numerator := (float64(nAB) + c.epsilon) * float64(n)
	denominator := (float64(nA) + c.epsilon) * (float64(nB) + c.epsilon)

	return math.Log(numerator / denominator)
}

// NPMI calculates normalized PMI, bounded to [-1, 1].
// NPMI(a,b) = PMI(a,b) / -log(P(a,b))
func (c *Calculator) NPMI(nAB, nA, nB, n int64) float64 {
	if n == 0 || nAB == 0 {
		return 0
	}

	// Normalize by the unsmoothed joint probability so that -log(p) stays
	// positive on small texts.
	pAB := float64(nAB) / float64(n)
	if pAB >= 1 {
		return 1
	}
	logPAB := math.Log(pAB)

	v := c.PMI(nAB, nA, nB, n) / -logPAB
	return math.Max(-1, math.Min(1, v))
}

// Score computes the NPMI of a pair from counter totals.
func (c *Calculator) Score(counter *Counter, x, y string) float64 {
	return c.NPMI(counter.PairCount(x, y), counter.LabelCount(x), counter.LabelCount(y), counter.TotalSentences())
}
