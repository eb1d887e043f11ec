package services

import (
	"errors"
	"math"
	"sort"

	"canteen/internal/core/domain/model/courier"
	"canteen/internal/core/domain/model/kernel"
	"canteen/internal/pkg/errs"
)

// DefaultEpsilon is the probability of choosing the pure-fairness branch
// over the rating-weighted branch when breaking ties among least-loaded
// couriers.
const DefaultEpsilon = 0.7

// ErrNoActiveCouriers is returned when the courier pool contains no active
// member, so no assignment can be made.
var ErrNoActiveCouriers = errors.New("no active couriers available")

// RandSource supplies the randomness consumed by the selector. math/rand's
// *rand.Rand satisfies it; tests inject fixed or seeded sources to make
// every branch deterministic.
type RandSource interface {
	Float64() float64
	Intn(n int) int
}

// CourierSelector is a domain service that picks one courier for a batch of
// ready delivery orders. Selection runs in two stages:
//
//  1. Fairness filter: among active couriers, keep only those tied for the
//     fewest assignments within the trailing fairness window. A courier with
//     no recent assignments counts as zero, so at system start the whole
//     active pool ties.
//  2. Tie-break: with probability epsilon, favor recency — the courier idle
//     longest (or never assigned) wins. Otherwise draw proportionally to a
//     softmax over courier ratings, so well-rated couriers are preferred but
//     unrated ones keep a nonzero chance.
//
// The two-stage split means ratings can never override fairness: a
// top-rated courier that is not among the least loaded is simply not a
// candidate this round.
//
// Example usage:
//
//	selector, _ := services.NewCourierSelector(services.DefaultEpsilon, rnd)
//	chosen, err := selector.Select(activeCouriers, recentCounts)
//	if errors.Is(err, services.ErrNoActiveCouriers) {
//	    // no courier to assign
//	}
type CourierSelector struct {
	epsilon float64
	rnd     RandSource
}

// NewCourierSelector creates a CourierSelector with the given exploration
// probability and randomness source. Epsilon must lie in [0,1]; 1 means
// always pure fairness, 0 means always rating-weighted.
func NewCourierSelector(epsilon float64, rnd RandSource) (CourierSelector, error) {
	if math.IsNaN(epsilon) || epsilon < 0 || epsilon > 1 {
		return CourierSelector{}, errs.NewValueIsOutOfRangeError("epsilon", epsilon, 0.0, 1.0)
	}
	if rnd == nil {
		return CourierSelector{}, errs.NewValueIsRequiredError("rnd")
	}

	return CourierSelector{epsilon: epsilon, rnd: rnd}, nil
}

// Validate ensures the selector was built through the constructor. A
// zero-value selector carries no randomness source and cannot break ties.
func (s CourierSelector) Validate() error {
	if s.rnd == nil {
		return errs.NewValueIsRequiredError("rnd")
	}

	return nil
}

// Select composes the fairness filter and the tie-break pick into a single
// decision: one courier for the whole batch.
func (s CourierSelector) Select(couriers []*courier.Courier, recentCounts map[kernel.UUID]int) (*courier.Courier, error) {
	candidates, err := s.LeastLoaded(couriers, recentCounts)
	if err != nil {
		return nil, err
	}

	return s.Pick(candidates)
}

// LeastLoaded returns the subset of active couriers tied for the minimum
// recent-assignment count. Couriers absent from recentCounts have an
// implicit count of zero. The result is never empty when at least one
// active courier exists; otherwise ErrNoActiveCouriers is returned.
//
// Pure read, no side effects.
func (s CourierSelector) LeastLoaded(couriers []*courier.Courier, recentCounts map[kernel.UUID]int) ([]*courier.Courier, error) {
	var candidates []*courier.Courier
	minCount := math.MaxInt

	for _, c := range couriers {
		if err := c.Validate(); err != nil {
			return nil, err
		}

		if !c.IsActive() {
			continue
		}

		count := recentCounts[c.ID()]
		switch {
		case count < minCount:
			minCount = count
			candidates = append(candidates[:0], c)
		case count == minCount:
			candidates = append(candidates, c)
		}
	}

	if len(candidates) == 0 {
		return nil, ErrNoActiveCouriers
	}

	return candidates, nil
}

// Pick chooses exactly one courier from the candidate set.
//
// A single candidate is returned immediately, consuming no randomness.
// Otherwise one draw u decides the branch: u < epsilon applies the
// pure-fairness rule (idle longest wins, never-assigned before any
// timestamp), u >= epsilon draws from a softmax over ratings.
func (s CourierSelector) Pick(candidates []*courier.Courier) (*courier.Courier, error) {
	if len(candidates) == 0 {
		return nil, ErrNoActiveCouriers
	}

	if len(candidates) == 1 {
		if err := candidates[0].Validate(); err != nil {
			return nil, err
		}
		return candidates[0], nil
	}

	for _, c := range candidates {
		if err := c.Validate(); err != nil {
			return nil, err
		}
	}

	if s.rnd.Float64() < s.epsilon {
		return s.pickLeastRecent(candidates), nil
	}

	return s.pickBySoftmax(candidates), nil
}

// pickLeastRecent returns the candidate idle the longest. The candidates are
// shuffled before the stable recency sort, so couriers with identical
// lastAssignedAt values are not always resolved in input order.
func (s CourierSelector) pickLeastRecent(candidates []*courier.Courier) *courier.Courier {
	shuffled := make([]*courier.Courier, len(candidates))
	copy(shuffled, candidates)
	for i := len(shuffled) - 1; i > 0; i-- {
		j := s.rnd.Intn(i + 1)
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	}

	sort.SliceStable(shuffled, func(i, j int) bool {
		left, right := shuffled[i].LastAssignedAt(), shuffled[j].LastAssignedAt()
		if left == nil {
			return right != nil
		}
		if right == nil {
			return false
		}
		return left.Before(*right)
	})

	return shuffled[0]
}

// pickBySoftmax draws one candidate with probability proportional to
// softmax over courier ratings. The max score is subtracted before
// exponentiating for numerical stability; an unrated (zero) courier keeps a
// nonzero weight and stays selectable.
func (s CourierSelector) pickBySoftmax(candidates []*courier.Courier) *courier.Courier {
	maxScore := math.Inf(-1)
	for _, c := range candidates {
		if v := c.Rating().Value(); v > maxScore {
			maxScore = v
		}
	}

	weights := make([]float64, len(candidates))
	var total float64
	for i, c := range candidates {
		weights[i] = math.Exp(c.Rating().Value() - maxScore)
		total += weights[i]
	}

	draw := s.rnd.Float64() * total
	var cumulative float64
	for i, w := range weights {
		cumulative += w
		if draw < cumulative {
			return candidates[i]
		}
	}

	// Float64 returns values in [0,1), so rounding is the only way here.
	return candidates[len(candidates)-1]
}
