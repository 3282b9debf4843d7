package insight_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"seatplan/internal/domain/entity"
	"seatplan/internal/domain/service/insight"
)

func id(s entity.StudentID) *entity.StudentID { return &s }

func TestBlocks(t *testing.T) {
	rq := require.New(t)

	ballots := entity.Ballots{
		"A": {Blocked: id("B")},
		"B": {Blocked: id("A")},
		"C": {Blocked: id("B")},
		"D": {Blocked: id("C")},
		"E": {},
	}

	report := insight.Blocks(ballots)

	rq.Equal([]entity.BlockCount{
		{Student: "B", Count: 2},
		{Student: "A", Count: 1},
		{Student: "C", Count: 1},
	}, report.Received)
	rq.Equal([][2]entity.StudentID{{"A", "B"}}, report.Mutual)
}

func TestBlocksEmpty(t *testing.T) {
	rq := require.New(t)

	report := insight.Blocks(nil)

	rq.Empty(report.Received)
	rq.Empty(report.Mutual)
}

func TestPopularity(t *testing.T) {
	rq := require.New(t)

	ballots := entity.Ballots{
		"A": {Ratings: map[entity.StudentID]int{"B": 5, "C": 2}},
		"B": {Ratings: map[entity.StudentID]int{"A": 4, "C": 4}},
		"C": {Ratings: map[entity.StudentID]int{"A": 4, "C": 5}},
	}

	got := insight.Popularity(ballots)

	rq.Equal([]entity.Popularity{
		{Student: "B", Mean: 5, Votes: 1, Min: 5, Max: 5},
		{Student: "A", Mean: 4, Votes: 2, Min: 4, Max: 4},
		{Student: "C", Mean: 3, Votes: 2, Min: 2, Max: 4},
	}, got)
}

func TestTopAffinities(t *testing.T) {
	pairs := []entity.AffinityPair{
		{A: "C", B: "D", Average: 3, Difference: 0},
		{A: "A", B: "B", Average: 5, Difference: 0},
		{A: "E", B: "F", Average: 4.5, Difference: 1},
	}

	testCases := []struct {
		name string
		n    int
		want []entity.StudentID
	}{
		{name: "Two best", n: 2, want: []entity.StudentID{"A", "E"}},
		{name: "More than available", n: 10, want: []entity.StudentID{"A", "E", "C"}},
		{name: "Negative means all", n: -1, want: []entity.StudentID{"A", "E", "C"}},
		{name: "Zero", n: 0, want: []entity.StudentID{}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			rq := require.New(t)

			got := insight.TopAffinities(pairs, tc.n)

			firsts := make([]entity.StudentID, 0, len(got))
			for _, p := range got {
				firsts = append(firsts, p.A)
			}
			rq.Equal(tc.want, firsts)
		})
	}

	require.Equal(t, entity.StudentID("C"), pairs[0].A)
}
