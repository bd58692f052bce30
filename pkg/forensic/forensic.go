// Package forensic implements the forensic-genetics statistics reported
// alongside a panel match: random match probability, combined probability of
// inclusion, probability of inclusion, kinship likelihood ratio and full
// sibling index.
//
// All functions are pure reductions over their inputs. Allele frequencies at
// a locus are not normalized.
package forensic

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// DefaultTheta is the usual population substructure correction for
// ProbabilityOfInclusion.
const DefaultTheta = 0.01

// ErrInvalidArgument reports inputs for which a formula is undefined.
var ErrInvalidArgument = errors.New("invalid argument")

// Locus holds allele frequencies observed at one locus.
type Locus []float64

// Profile holds one Locus per analysed locus.
type Profile []Locus

// Homozygosity returns the sum of squared frequencies at the locus.
func (l Locus) Homozygosity() float64 {
	return floats.Dot(l, l)
}

// RandomMatchProbability is the product over loci of Σf².
// An empty profile yields 1.
func RandomMatchProbability(profile Profile) float64 {
	var perLocus = make([]float64, len(profile))
	for i, locus := range profile {
		perLocus[i] = locus.Homozygosity()
	}
	return floats.Prod(perLocus)
}

// CombinedProbabilityOfInclusion is the product over loci of 1-Σf².
func CombinedProbabilityOfInclusion(profile Profile) float64 {
	var perLocus = make([]float64, len(profile))
	for i, locus := range profile {
		perLocus[i] = 1 - locus.Homozygosity()
	}
	return floats.Prod(perLocus)
}

// ProbabilityOfInclusion returns freq / (theta + (1-theta)*freq).
// freq and theta both zero is undefined and reported as ErrInvalidArgument.
func ProbabilityOfInclusion(obligateFreq, theta float64) (float64, error) {
	denominator := theta + (1-theta)*obligateFreq
	if denominator == 0 {
		return 0, fmt.Errorf("probability of inclusion with obligate allele frequency %v and theta %v: %w", obligateFreq, theta, ErrInvalidArgument)
	}
	pi := obligateFreq / denominator
	if math.IsNaN(pi) {
		return 0, fmt.Errorf("probability of inclusion with obligate allele frequency %v and theta %v: %w", obligateFreq, theta, ErrInvalidArgument)
	}
	return pi, nil
}

// KinshipLikelihoodRatio returns prod(shared) / prod(unrelated).
// A zero in unrelated is reported as ErrInvalidArgument.
func KinshipLikelihoodRatio(sharedProbs, unrelatedProbs []float64) (float64, error) {
	for i, p := range unrelatedProbs {
		if p == 0 {
			return 0, fmt.Errorf("kinship likelihood ratio: unrelated probability at locus %d is zero: %w", i+1, ErrInvalidArgument)
		}
	}
	denominator := floats.Prod(unrelatedProbs)
	if denominator == 0 {
		// every factor is non-zero but the product underflowed
		return 0, fmt.Errorf("kinship likelihood ratio: product of unrelated probabilities underflows to zero: %w", ErrInvalidArgument)
	}
	return floats.Prod(sharedProbs) / denominator, nil
}

// SiblingIndex is the product over p of 2p² / (2p + (1-p)²).
// The denominator equals p²+1, so it never divides by zero.
func SiblingIndex(sharedProbs []float64) float64 {
	var perLocus = make([]float64, len(sharedProbs))
	for i, p := range sharedProbs {
		perLocus[i] = (2 * p * p) / (2*p + (1-p)*(1-p))
	}
	return floats.Prod(perLocus)
}
