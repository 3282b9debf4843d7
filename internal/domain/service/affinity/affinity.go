// Package affinity derives the mutual-rating graph of a cohort.
package affinity

import (
	"cmp"
	"slices"

	"seatplan/internal/domain/entity"
)

// Build returns every mutual rating pair and the registered blocks.
// Pairs come out sorted by (A, B); self ratings are ignored.
func Build(ballots entity.Ballots) ([]entity.AffinityPair, entity.BlockedPairs) {
	blocked := make(entity.BlockedPairs)
	var pairs []entity.AffinityPair

	for _, voter := range ballots.Voters() {
		ballot := ballots[voter]

		if ballot.Blocked != nil && *ballot.Blocked != voter {
			blocked.Add(voter, *ballot.Blocked)
		}

		for _, target := range ballot.Targets() {
			// each unordered pair is emitted from its smaller side
			if target <= voter {
				continue
			}
			if pair, ok := pairOf(ballots, voter, target); ok {
				pairs = append(pairs, pair)
			}
		}
	}

	return pairs, blocked
}

// Mutual is the average of both directions, false when either is missing.
func Mutual(ballots entity.Ballots, a, b entity.StudentID) (float64, bool) {
	pair, ok := pairOf(ballots, a, b)
	if !ok {
		return 0, false
	}
	return pair.Average, true
}

// Pair builds the AffinityPair of a and b from both rating maps.
func Pair(ballots entity.Ballots, a, b entity.StudentID) (entity.AffinityPair, bool) {
	if a > b {
		a, b = b, a
	}
	return pairOf(ballots, a, b)
}

func pairOf(ballots entity.Ballots, a, b entity.StudentID) (entity.AffinityPair, bool) {
	if a == b {
		return entity.AffinityPair{}, false
	}

	ab, ok := ballots.Score(a, b)
	if !ok {
		return entity.AffinityPair{}, false
	}

	ba, ok := ballots.Score(b, a)
	if !ok {
		return entity.AffinityPair{}, false
	}

	diff := ab - ba
	if diff < 0 {
		diff = -diff
	}

	return entity.AffinityPair{
		A:          a,
		B:          b,
		Average:    float64(ab+ba) / 2,
		Difference: diff,
	}, true
}

// Rank sorts pairs best first: highest average, then smallest difference,
// then by ids.
func Rank(pairs []entity.AffinityPair) {
	slices.SortStableFunc(pairs, Compare)
}

// Compare orders two pairs the way Rank does.
func Compare(x, y entity.AffinityPair) int {
	return cmp.Or(
		cmp.Compare(y.Average, x.Average),
		cmp.Compare(x.Difference, y.Difference),
		cmp.Compare(x.A, y.A),
		cmp.Compare(x.B, y.B),
	)
}
