// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package biometric

import (
	"fmt"
	"math"

	"github.com/MKhiriev/red-box/models"
)

// DefaultVoiceThreshold is the minimum cosine similarity at which a live
// voice sample is accepted.
const DefaultVoiceThreshold = 0.80

// DefaultFaceTolerance is the maximum euclidean distance at which two face
// embeddings are considered the same person.
const DefaultFaceTolerance = 0.6

// Dot returns the dot product of a and b. Both must have the same length.
func Dot(a, b models.Embedding) float64 {
	var sum float64
	for i := range a {
		sum += a[i] * b[i]
	}
	return sum
}

// Norm returns the L2 norm of v.
func Norm(v models.Embedding) float64 {
	return math.Sqrt(Dot(v, v))
}

// CosineSimilarity returns (a·b)/(‖a‖·‖b‖), a value in [-1, 1]. It is
// symmetric and equals 1 for identical non-zero vectors.
func CosineSimilarity(a, b models.Embedding) (float64, error) {
	if err := checkPair(a, b); err != nil {
		return 0, err
	}

	na, nb := Norm(a), Norm(b)
	if na == 0 || nb == 0 {
		return 0, ErrZeroVector
	}

	sim := Dot(a, b) / (na * nb)
	// rounding can push identical vectors a hair past 1
	return math.Max(-1, math.Min(1, sim)), nil
}

// EuclideanDistance returns ‖a-b‖.
func EuclideanDistance(a, b models.Embedding) (float64, error) {
	if err := checkPair(a, b); err != nil {
		return 0, err
	}

	var sum float64
	for i := range a {
		d := a[i] - b[i]
		sum += d * d
	}
	return math.Sqrt(sum), nil
}

func checkPair(a, b models.Embedding) error {
	if a.Dim() == 0 || b.Dim() == 0 {
		return ErrEmptyEmbedding
	}
	if a.Dim() != b.Dim() {
		return fmt.Errorf("%w: %d != %d", ErrDimensionMismatch, a.Dim(), b.Dim())
	}
	return nil
}

// Comparator scores a live voice template against the enrolled one.
type Comparator struct {
	threshold float64
}

// NewComparator returns a Comparator accepting similarities >= threshold.
func NewComparator(threshold float64) *Comparator {
	return &Comparator{threshold: threshold}
}

// Threshold returns the acceptance threshold.
func (c *Comparator) Threshold() float64 {
	return c.threshold
}

// Passes reports whether score clears the threshold. The boundary value
// itself passes.
func (c *Comparator) Passes(score float64) bool {
	return score >= c.threshold
}

// CompareVoice returns the cosine similarity of the two templates and
// whether it passes. Dimension mismatch and zero vectors are errors, not
// verdicts.
func (c *Comparator) CompareVoice(enrolled, live models.VoiceTemplate) (float64, bool, error) {
	score, err := CosineSimilarity(enrolled.Vector, live.Vector)
	if err != nil {
		return 0, false, fmt.Errorf("compare voice templates: %w", err)
	}
	return score, c.Passes(score), nil
}

// EuclideanFaceMatcher is the default [FaceMatcher]: two embeddings match
// when their distance is within tolerance.
type EuclideanFaceMatcher struct {
	Tolerance float64
}

// NewEuclideanFaceMatcher returns a matcher with the given tolerance.
func NewEuclideanFaceMatcher(tolerance float64) *EuclideanFaceMatcher {
	return &EuclideanFaceMatcher{Tolerance: tolerance}
}

// MatchFace implements [FaceMatcher]. Embeddings that cannot be compared
// never match.
func (m *EuclideanFaceMatcher) MatchFace(enrolled, live models.FaceTemplate) bool {
	d, err := EuclideanDistance(enrolled.Vector, live.Vector)
	if err != nil {
		return false
	}
	return d <= m.Tolerance
}
