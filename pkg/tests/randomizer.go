package tests

import (
	"fmt"
	"math/rand"

	"seatplan/internal/domain/entity"
)

type Randomizer struct {
	Float64 func() float64
	Bool    func() bool
	Intn    func(n int) int
	Perm    func(n int) []int
}

// NewRandomizer returns a randomizer with a fixed seed so failing cases can
// be replayed.
func NewRandomizer(seed int64) Randomizer {
	random := rand.New(rand.NewSource(seed)) //nolint:gosec // for tests

	return Randomizer{
		Float64: random.Float64,
		Bool:    func() bool { return random.Intn(2) == 0 }, //nolint:mnd // skip
		Intn:    random.Intn,
		Perm:    random.Perm,
	}
}

// Roster returns n students named S01..Snn.
func Roster(n int) entity.Roster {
	roster := make(entity.Roster, n)
	for i := range roster {
		roster[i] = entity.StudentID(fmt.Sprintf("S%02d", i+1))
	}
	return roster
}

// Ballots simulates a voting round: every student rates peers other students
// with a random score from 1 to 5, and sometimes blocks one of them.
func (r Randomizer) Ballots(roster entity.Roster, peers int) entity.Ballots {
	ballots := make(entity.Ballots, len(roster))

	for i, voter := range roster {
		order := r.Perm(len(roster))
		ratings := make(map[entity.StudentID]int, peers)

		for _, j := range order {
			if len(ratings) == peers {
				break
			}
			if j == i {
				continue
			}
			ratings[roster[j]] = r.Intn(5) + 1 //nolint:mnd // score range
		}

		ballot := entity.Ballot{Ratings: ratings}

		if len(ratings) > 0 && r.Intn(4) == 0 { //nolint:mnd // one voter in four blocks
			targets := ballot.Targets()
			blocked := targets[r.Intn(len(targets))]
			ballot.Blocked = &blocked
		}

		ballots[voter] = ballot
	}

	return ballots
}
