package grouping_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"seatplan/internal/domain/entity"
	"seatplan/internal/domain/service/affinity"
	"seatplan/internal/domain/service/grouping"
	"seatplan/internal/domain/value"
	"seatplan/pkg/tests"
)

type ratings = map[entity.StudentID]int

func blockedRef(s entity.StudentID) *entity.StudentID {
	return &s
}

func form(ballots entity.Ballots, roster entity.Roster) []entity.Group {
	_, blocked := affinity.Build(ballots)
	return grouping.FormGroups(ballots, blocked, roster, value.DefaultThresholds())
}

func members(groups []entity.Group) [][]entity.StudentID {
	out := make([][]entity.StudentID, len(groups))
	for i, g := range groups {
		out[i] = g.Members
	}
	return out
}

func TestFormGroups(t *testing.T) {
	testCases := []struct {
		name    string
		roster  entity.Roster
		ballots entity.Ballots
		want    [][]entity.StudentID
	}{
		{
			name:   "Mutual pair and two low-rated singletons",
			roster: entity.Roster{"A", "B", "C", "D"},
			ballots: entity.Ballots{
				"A": {Ratings: ratings{"B": 5}},
				"B": {Ratings: ratings{"A": 5}},
				"C": {Ratings: ratings{"D": 1}},
				"D": {Ratings: ratings{"C": 1}},
			},
			want: [][]entity.StudentID{{"A", "B"}, {"C"}, {"D"}},
		},
		{
			name:   "Block cancels an otherwise perfect pair",
			roster: entity.Roster{"A", "B"},
			ballots: entity.Ballots{
				"A": {Ratings: ratings{"B": 5}, Blocked: blockedRef("B")},
				"B": {Ratings: ratings{"A": 5}},
			},
			want: [][]entity.StudentID{{"A"}, {"B"}},
		},
		{
			name:   "Expansion joins a student who rates the members well",
			roster: entity.Roster{"A", "B", "C", "D"},
			ballots: entity.Ballots{
				"A": {Ratings: ratings{"B": 5}},
				"B": {Ratings: ratings{"A": 4}},
				"C": {Ratings: ratings{"A": 4, "B": 3}},
				"D": {Ratings: ratings{"A": 2}},
			},
			want: [][]entity.StudentID{{"A", "B", "C"}, {"D"}},
		},
		{
			name:   "Expansion respects blocks from either side",
			roster: entity.Roster{"A", "B", "E"},
			ballots: entity.Ballots{
				"A": {Ratings: ratings{"B": 5}},
				"B": {Ratings: ratings{"A": 5, "E": 1}, Blocked: blockedRef("E")},
				"E": {Ratings: ratings{"A": 5}},
			},
			want: [][]entity.StudentID{{"A", "B"}, {"E"}},
		},
		{
			name:   "Expansion picks the best group and breaks ties by formation order",
			roster: entity.Roster{"A", "B", "C", "D", "E", "F"},
			ballots: entity.Ballots{
				"A": {Ratings: ratings{"B": 5}},
				"B": {Ratings: ratings{"A": 5}},
				"C": {Ratings: ratings{"D": 5}},
				"D": {Ratings: ratings{"C": 5}},
				"E": {Ratings: ratings{"A": 3, "B": 3, "C": 5}},
				"F": {Ratings: ratings{"A": 4, "C": 4}},
			},
			want: [][]entity.StudentID{{"A", "B", "F"}, {"C", "D", "E"}},
		},
		{
			name:   "Full groups take no more members",
			roster: entity.Roster{"A", "B", "C", "D", "E"},
			ballots: entity.Ballots{
				"A": {Ratings: ratings{"B": 5}},
				"B": {Ratings: ratings{"A": 5}},
				"C": {Ratings: ratings{"A": 5, "B": 5}},
				"D": {Ratings: ratings{"A": 5, "B": 5}},
				"E": {Ratings: ratings{"A": 5, "B": 5}},
			},
			want: [][]entity.StudentID{{"A", "B", "C", "D"}, {"E"}},
		},
		{
			name:   "Residual pairing accepts weaker mutual pairs",
			roster: entity.Roster{"F", "G", "H", "I"},
			ballots: entity.Ballots{
				"F": {Ratings: ratings{"G": 3}},
				"G": {Ratings: ratings{"F": 2}},
				"H": {Ratings: ratings{"I": 2}},
				"I": {Ratings: ratings{"H": 2}},
			},
			want: [][]entity.StudentID{{"F", "G"}, {"H"}, {"I"}},
		},
		{
			name:   "Roster members without a ballot become singletons",
			roster: entity.Roster{"A", "Z", "B", "Y"},
			ballots: entity.Ballots{
				"A": {Ratings: ratings{"B": 4}},
				"B": {Ratings: ratings{"A": 4}},
			},
			want: [][]entity.StudentID{{"A", "B"}, {"Z"}, {"Y"}},
		},
		{
			name:    "Empty input",
			roster:  nil,
			ballots: nil,
			want:    [][]entity.StudentID{},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			rq := require.New(t)

			groups := form(tc.ballots, tc.roster)

			rq.Equal(tc.want, members(groups))

			for i, g := range groups {
				rq.Equal(i+1, g.ID)
			}
		})
	}
}

func TestFormGroupsPhases(t *testing.T) {
	rq := require.New(t)

	ballots := entity.Ballots{
		"A": {Ratings: ratings{"B": 5}},
		"B": {Ratings: ratings{"A": 5}},
		"F": {Ratings: ratings{"G": 3}},
		"G": {Ratings: ratings{"F": 2}},
		"H": {Ratings: ratings{"A": 1}},
	}

	groups := form(ballots, entity.Roster{"A", "B", "F", "G", "H", "Q"})

	rq.Len(groups, 4)
	rq.Equal(entity.PhaseSeedPairing, groups[0].Phase)
	rq.Equal(entity.PhaseResidual, groups[1].Phase)
	rq.Equal(entity.PhaseCompletion, groups[2].Phase)
	rq.Equal([]entity.StudentID{"H"}, groups[2].Members)
	rq.Equal([]entity.StudentID{"Q"}, groups[3].Members)
}

func TestFormGroupsInclusiveThresholds(t *testing.T) {
	testCases := []struct {
		name    string
		ballots entity.Ballots
		roster  entity.Roster
		want    [][]entity.StudentID
		phases  []entity.Phase
	}{
		{
			name: "Seed pair at exactly the seed threshold",
			ballots: entity.Ballots{
				"A": {Ratings: ratings{"B": 4}},
				"B": {Ratings: ratings{"A": 3}},
			},
			roster: entity.Roster{"A", "B"},
			want:   [][]entity.StudentID{{"A", "B"}},
			phases: []entity.Phase{entity.PhaseSeedPairing},
		},
		{
			name: "Pair below the seed threshold waits for residual pairing",
			ballots: entity.Ballots{
				"A": {Ratings: ratings{"B": 4}},
				"B": {Ratings: ratings{"A": 2}},
			},
			roster: entity.Roster{"A", "B"},
			want:   [][]entity.StudentID{{"A", "B"}},
			phases: []entity.Phase{entity.PhaseResidual},
		},
		{
			name: "Expansion mean at exactly the expansion threshold joins",
			ballots: entity.Ballots{
				"A": {Ratings: ratings{"B": 5}},
				"B": {Ratings: ratings{"A": 5}},
				"C": {Ratings: ratings{"A": 3, "B": 3}},
			},
			roster: entity.Roster{"A", "B", "C"},
			want:   [][]entity.StudentID{{"A", "B", "C"}},
			phases: []entity.Phase{entity.PhaseSeedPairing},
		},
		{
			name: "Expansion mean below the expansion threshold stays out",
			ballots: entity.Ballots{
				"A": {Ratings: ratings{"B": 5}},
				"B": {Ratings: ratings{"A": 5}},
				"C": {Ratings: ratings{"A": 3, "B": 2}},
			},
			roster: entity.Roster{"A", "B", "C"},
			want:   [][]entity.StudentID{{"A", "B"}, {"C"}},
			phases: []entity.Phase{entity.PhaseSeedPairing, entity.PhaseCompletion},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			rq := require.New(t)

			groups := form(tc.ballots, tc.roster)

			rq.Equal(tc.want, members(groups))

			phases := make([]entity.Phase, len(groups))
			for i, g := range groups {
				phases[i] = g.Phase
			}
			rq.Equal(tc.phases, phases)
		})
	}
}

func TestFormGroupsCustomThresholds(t *testing.T) {
	rq := require.New(t)

	ballots := entity.Ballots{
		"A": {Ratings: ratings{"B": 3}},
		"B": {Ratings: ratings{"A": 3}},
		"C": {Ratings: ratings{"A": 5, "B": 5}},
	}

	thresholds := value.DefaultThresholds()
	thresholds.SeedPairing = 3
	thresholds.GroupCap = 2

	groups := grouping.FormGroups(ballots, nil, entity.Roster{"A", "B", "C"}, thresholds)

	rq.Equal([][]entity.StudentID{{"A", "B"}, {"C"}}, members(groups))
	rq.Equal(entity.PhaseSeedPairing, groups[0].Phase)
}

func TestFormGroupsProperties(t *testing.T) {
	thresholds := value.DefaultThresholds()

	for seed := int64(1); seed <= 50; seed++ {
		r := tests.NewRandomizer(seed)
		roster := tests.Roster(5 + r.Intn(30))
		ballots := r.Ballots(roster, 5)

		// Some students never vote.
		for _, s := range roster {
			if r.Intn(8) == 0 {
				delete(ballots, s)
			}
		}

		_, blocked := affinity.Build(ballots)
		groups := grouping.FormGroups(ballots, blocked, roster, thresholds)

		rq := require.New(t)

		seen := make(map[entity.StudentID]int)
		for _, g := range groups {
			rq.NotEmpty(g.Members)
			rq.LessOrEqual(g.Size(), thresholds.GroupCap, "seed %d", seed)

			for _, m := range g.Members {
				seen[m]++
			}

			for i, a := range g.Members {
				for _, b := range g.Members[i+1:] {
					rq.False(blocked.Blocks(a, b), "seed %d: %s and %s blocked", seed, a, b)
				}
			}

			switch g.Phase {
			case entity.PhaseSeedPairing:
				v, ok := affinity.Mutual(ballots, g.Members[0], g.Members[1])
				rq.True(ok)
				rq.GreaterOrEqual(v, thresholds.SeedPairing)
			case entity.PhaseResidual:
				rq.Len(g.Members, 2)
			case entity.PhaseCompletion:
				rq.Len(g.Members, 1)
			}
		}

		rq.Len(seen, len(roster), "seed %d", seed)
		for _, s := range roster {
			rq.Equal(1, seen[s], "seed %d: %s", seed, s)
		}

		for i := 1; i < len(groups); i++ {
			rq.GreaterOrEqual(groups[i-1].Size(), groups[i].Size())
		}

		rq.Equal(groups, grouping.FormGroups(ballots, blocked, roster, thresholds))
	}
}
