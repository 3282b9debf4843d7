package server

import (
	"github.com/samber/lo"

	"seatplan/internal/domain/entity"
	"seatplan/internal/domain/service/planner"
	"seatplan/pkg/lox"
	"seatplan/pkg/rest"
)

func newRESTStudents(cohort string, roster entity.Roster) rest.Students {
	return rest.Students{
		Cohort:   cohort,
		Students: lox.Strings[string](roster),
	}
}

func newDomainBallot(b rest.Ballot) (entity.StudentID, entity.Ballot) {
	ballot := entity.Ballot{Ratings: make(map[entity.StudentID]int, len(b.Ratings))}

	for target, score := range b.Ratings {
		ballot.Ratings[entity.StudentID(target)] = score
	}

	if b.Blocked != nil {
		blocked := entity.StudentID(*b.Blocked)
		ballot.Blocked = &blocked
	}

	return entity.StudentID(b.Voter), ballot
}

func newRESTGroup(g entity.Group) rest.Group {
	return rest.Group{
		ID:      g.ID,
		Members: lox.Strings[string](g.Members),
		Phase:   g.Phase.String(),
	}
}

func newRESTQuality(q entity.Quality) rest.Quality {
	return rest.Quality{
		TotalGroups:      q.TotalGroups,
		TotalStudents:    q.TotalStudents,
		SuccessfulGroups: q.SuccessfulGroups,
		SuccessRate:      q.SuccessRate,
		MeanAffinity:     q.MeanAffinity,
	}
}

func newRESTPair(p entity.AffinityPair) rest.AffinityPair {
	return rest.AffinityPair{
		A:          p.A.String(),
		B:          p.B.String(),
		Average:    p.Average,
		Difference: p.Difference,
	}
}

func newRESTPlan(p planner.Plan) rest.Plan {
	return rest.Plan{
		Groups:  lo.Map(p.Groups, func(g entity.Group, _ int) rest.Group { return newRESTGroup(g) }),
		Quality: newRESTQuality(p.Quality),
		Pairs:   newRESTPairs(p.Pairs),
	}
}

func newRESTLayout(l entity.ClassroomLayout) rest.Layout {
	seats := make([]rest.Seat, 0, l.OccupiedSeats())

	for _, s := range l.Seats {
		if !s.Occupied {
			continue
		}

		seats = append(seats, rest.Seat{
			Row:       s.Row,
			Column:    s.Column,
			Occupants: lox.Strings[string](s.Occupants),
			GroupID:   s.GroupID,
		})
	}

	return rest.Layout{
		Rows:    l.Rows,
		Columns: l.Columns,
		Seed:    l.Seed,
		Seats:   seats,
	}
}

func newRESTArrangement(a entity.Arrangement) rest.Arrangement {
	return rest.Arrangement{
		ID:        a.ID,
		Name:      a.Name,
		Students:  a.Students,
		IsCurrent: a.IsCurrent,
		CreatedAt: a.CreatedAt,
		Layout:    newRESTLayout(a.Layout),
	}
}

func newRESTInsights(in planner.Insights) rest.Insights {
	mutual := make([][2]string, len(in.Blocks.Mutual))
	for i, pair := range in.Blocks.Mutual {
		mutual[i] = [2]string{pair[0].String(), pair[1].String()}
	}

	return rest.Insights{
		BlocksReceived: lo.Map(in.Blocks.Received, func(b entity.BlockCount, _ int) rest.BlockCount {
			return rest.BlockCount{Student: b.Student.String(), Count: b.Count}
		}),
		MutualBlocks: mutual,
		Popularity: lo.Map(in.Popularity, func(p entity.Popularity, _ int) rest.Popularity {
			return rest.Popularity{Student: p.Student.String(), Mean: p.Mean, Votes: p.Votes, Min: p.Min, Max: p.Max}
		}),
		TopPairs: newRESTPairs(in.TopPairs),
	}
}

func newRESTPairs(pairs []entity.AffinityPair) []rest.AffinityPair {
	return lo.Map(pairs, func(p entity.AffinityPair, _ int) rest.AffinityPair { return newRESTPair(p) })
}

func newRESTArrangements(list []entity.Arrangement) []rest.Arrangement {
	return lo.Map(list, func(a entity.Arrangement, _ int) rest.Arrangement { return newRESTArrangement(a) })
}
