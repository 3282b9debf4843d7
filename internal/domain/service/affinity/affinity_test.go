package affinity_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"seatplan/internal/domain/entity"
	"seatplan/internal/domain/service/affinity"
)

func id(s string) *entity.StudentID {
	v := entity.StudentID(s)
	return &v
}

func TestBuild(t *testing.T) {
	rq := require.New(t)

	ballots := entity.Ballots{
		"ana":   {Ratings: map[entity.StudentID]int{"bruno": 5, "carla": 2}},
		"bruno": {Ratings: map[entity.StudentID]int{"ana": 4, "dario": 1}, Blocked: id("dario")},
		"carla": {Ratings: map[entity.StudentID]int{"dario": 3}},
		"dario": {Ratings: map[entity.StudentID]int{"carla": 5, "bruno": 1}},
	}

	pairs, blocked := affinity.Build(ballots)

	rq.Equal([]entity.AffinityPair{
		{A: "ana", B: "bruno", Average: 4.5, Difference: 1},
		{A: "bruno", B: "dario", Average: 1, Difference: 0},
		{A: "carla", B: "dario", Average: 4, Difference: 2},
	}, pairs)

	rq.Len(blocked, 1)
	rq.True(blocked.Blocks("bruno", "dario"))
	rq.True(blocked.Blocks("dario", "bruno"))
	rq.False(blocked.Blocks("ana", "bruno"))
}

func TestBuildIgnoresOneSidedAndSelfRatings(t *testing.T) {
	rq := require.New(t)

	ballots := entity.Ballots{
		"ana":   {Ratings: map[entity.StudentID]int{"ana": 5, "bruno": 5}, Blocked: id("ana")},
		"bruno": {Ratings: map[entity.StudentID]int{"carla": 5}},
	}

	pairs, blocked := affinity.Build(ballots)

	rq.Empty(pairs)
	rq.Empty(blocked)
}

func TestBuildEmpty(t *testing.T) {
	rq := require.New(t)

	pairs, blocked := affinity.Build(nil)

	rq.Empty(pairs)
	rq.NotNil(blocked)
}

func TestMutual(t *testing.T) {
	rq := require.New(t)

	ballots := entity.Ballots{
		"a": {Ratings: map[entity.StudentID]int{"b": 3}},
		"b": {Ratings: map[entity.StudentID]int{"a": 2}},
		"c": {Ratings: map[entity.StudentID]int{"a": 5}},
	}

	v, ok := affinity.Mutual(ballots, "b", "a")
	rq.True(ok)
	rq.InDelta(2.5, v, 1e-9)

	_, ok = affinity.Mutual(ballots, "a", "c")
	rq.False(ok)

	p, ok := affinity.Pair(ballots, "b", "a")
	rq.True(ok)
	rq.Equal(entity.StudentID("a"), p.A)
	rq.Equal(1, p.Difference)
}

func TestRank(t *testing.T) {
	rq := require.New(t)

	pairs := []entity.AffinityPair{
		{A: "c", B: "d", Average: 4, Difference: 2},
		{A: "a", B: "b", Average: 4, Difference: 0},
		{A: "e", B: "f", Average: 5, Difference: 0},
		{A: "a", B: "c", Average: 4, Difference: 0},
	}

	affinity.Rank(pairs)

	rq.Equal([]entity.AffinityPair{
		{A: "e", B: "f", Average: 5, Difference: 0},
		{A: "a", B: "b", Average: 4, Difference: 0},
		{A: "a", B: "c", Average: 4, Difference: 0},
		{A: "c", B: "d", Average: 4, Difference: 2},
	}, pairs)
}
