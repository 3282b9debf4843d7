// Package insight computes descriptive statistics over the raw ballots of a
// cohort: who gets blocked, who is popular, which pairs like each other most.
package insight

import (
	"cmp"
	"slices"

	"seatplan/internal/domain/entity"
	"seatplan/internal/domain/service/affinity"
)

// Blocks counts blocks received and lists pairs that blocked each other.
func Blocks(ballots entity.Ballots) entity.BlockReport {
	received := make(map[entity.StudentID]int)
	var mutual [][2]entity.StudentID

	for _, voter := range ballots.Voters() {
		blocked := ballots[voter].Blocked
		if blocked == nil {
			continue
		}

		received[*blocked]++

		other, ok := ballots[*blocked]
		if ok && other.Blocked != nil && *other.Blocked == voter && voter < *blocked {
			mutual = append(mutual, [2]entity.StudentID{voter, *blocked})
		}
	}

	report := entity.BlockReport{
		Received: make([]entity.BlockCount, 0, len(received)),
		Mutual:   mutual,
	}

	for id, n := range received {
		report.Received = append(report.Received, entity.BlockCount{Student: id, Count: n})
	}

	slices.SortFunc(report.Received, func(x, y entity.BlockCount) int {
		return cmp.Or(cmp.Compare(y.Count, x.Count), cmp.Compare(x.Student, y.Student))
	})

	return report
}

// Popularity aggregates the scores each student received, most liked first.
func Popularity(ballots entity.Ballots) []entity.Popularity {
	stats := make(map[entity.StudentID]*entity.Popularity)
	sums := make(map[entity.StudentID]int)

	for _, voter := range ballots.Voters() {
		for target, score := range ballots[voter].Ratings {
			if target == voter {
				continue
			}

			p, ok := stats[target]
			if !ok {
				p = &entity.Popularity{Student: target, Min: score, Max: score}
				stats[target] = p
			}

			p.Votes++
			p.Min = min(p.Min, score)
			p.Max = max(p.Max, score)
			sums[target] += score
		}
	}

	out := make([]entity.Popularity, 0, len(stats))
	for id, p := range stats {
		p.Mean = float64(sums[id]) / float64(p.Votes)
		out = append(out, *p)
	}

	slices.SortFunc(out, func(x, y entity.Popularity) int {
		return cmp.Or(cmp.Compare(y.Mean, x.Mean), cmp.Compare(x.Student, y.Student))
	})

	return out
}

// TopAffinities returns at most n of the best mutual pairs.
func TopAffinities(pairs []entity.AffinityPair, n int) []entity.AffinityPair {
	ranked := slices.Clone(pairs)
	affinity.Rank(ranked)

	if n >= 0 && len(ranked) > n {
		ranked = ranked[:n]
	}

	return ranked
}
