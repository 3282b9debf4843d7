package quality

import (
	"seatplan/internal/domain/entity"
	"seatplan/internal/domain/service/affinity"
	"seatplan/internal/domain/value"
)

// Evaluate reports the share of groups whose members like each other and the
// mean of every within-group mutual affinity. It never modifies groups.
func Evaluate(groups []entity.Group, ballots entity.Ballots, thresholds value.Thresholds) entity.Quality {
	q := entity.Quality{TotalGroups: len(groups)}

	var (
		sum   float64
		count int
	)

	for _, g := range groups {
		q.TotalStudents += g.Size()

		if g.Size() < 2 {
			continue
		}

		values := Within(g, ballots)
		if len(values) == 0 {
			continue
		}

		groupSum := 0.0
		for _, v := range values {
			groupSum += v
		}

		if groupSum/float64(len(values)) >= thresholds.Success {
			q.SuccessfulGroups++
		}

		sum += groupSum
		count += len(values)
	}

	if q.TotalGroups > 0 {
		q.SuccessRate = float64(q.SuccessfulGroups) / float64(q.TotalGroups) * 100
	}
	if count > 0 {
		q.MeanAffinity = sum / float64(count)
	}

	return q
}

// Within lists the mutual affinity of every member pair of g that rated
// each other in both directions.
func Within(g entity.Group, ballots entity.Ballots) []float64 {
	var out []float64
	for i, a := range g.Members {
		for _, b := range g.Members[i+1:] {
			if v, ok := affinity.Mutual(ballots, a, b); ok {
				out = append(out, v)
			}
		}
	}
	return out
}
