// Package grouping partitions a cohort into small groups of mutually
// well-rated students.
//
// The partition is built in four greedy phases that only ever move a student
// from unassigned to grouped:
//
//  1. seed pairing of the best mutual pairs,
//  2. expansion of those pairs by students who rate the members well,
//  3. residual pairing of whoever is left,
//  4. completion with singletons so the whole roster is covered.
//
// Every loop walks students and pairs in a fixed order, so equal input gives
// an equal partition.
package grouping

import (
	"slices"

	"seatplan/internal/domain/entity"
	"seatplan/internal/domain/service/affinity"
	"seatplan/internal/domain/value"
)

type engine struct {
	ballots    entity.Ballots
	blocked    entity.BlockedPairs
	thresholds value.Thresholds

	grouped map[entity.StudentID]bool
	groups  []entity.Group
}

// FormGroups returns the groups of roster ordered by descending size.
// Voters missing from roster are grouped too, roster members without a
// ballot always end up as singletons.
func FormGroups(
	ballots entity.Ballots,
	blocked entity.BlockedPairs,
	roster entity.Roster,
	thresholds value.Thresholds,
) []entity.Group {
	if blocked == nil {
		blocked = make(entity.BlockedPairs)
	}

	e := &engine{
		ballots:    ballots,
		blocked:    blocked,
		thresholds: thresholds.Normalized(),
		grouped:    make(map[entity.StudentID]bool),
	}

	e.seedPairs()
	e.expand()
	e.pairResidual()
	e.complete(roster)

	return e.result()
}

func (e *engine) free(id entity.StudentID) bool {
	return !e.grouped[id]
}

func (e *engine) voted(id entity.StudentID) bool {
	_, ok := e.ballots[id]
	return ok
}

func (e *engine) add(phase entity.Phase, members ...entity.StudentID) {
	for _, m := range members {
		e.grouped[m] = true
	}
	e.groups = append(e.groups, entity.Group{Members: members, Phase: phase})
}

func (e *engine) freeVoters() []entity.StudentID {
	var out []entity.StudentID
	for _, v := range e.ballots.Voters() {
		if e.free(v) {
			out = append(out, v)
		}
	}
	return out
}

// seedPairs is phase 1.
func (e *engine) seedPairs() {
	pairs, _ := affinity.Build(e.ballots)
	affinity.Rank(pairs)

	for _, p := range pairs {
		if p.Average < e.thresholds.SeedPairing {
			// ranked by average, nothing below can qualify
			break
		}
		if !e.free(p.A) || !e.free(p.B) {
			continue
		}
		if !e.voted(p.A) || !e.voted(p.B) {
			continue
		}
		if e.blocked.Blocks(p.A, p.B) {
			continue
		}
		e.add(entity.PhaseSeedPairing, p.A, p.B)
	}
}

// expand is phase 2.
func (e *engine) expand() {
	for _, voter := range e.freeVoters() {
		best := -1
		bestScore := 0.0

		for i, g := range e.groups {
			if g.Size() >= e.thresholds.GroupCap {
				continue
			}
			if e.blocked.BlocksAny(voter, g.Members) {
				continue
			}

			score, ok := e.meanToward(voter, g.Members)
			if !ok || score < e.thresholds.Expansion {
				continue
			}
			if best == -1 || score > bestScore {
				best, bestScore = i, score
			}
		}

		if best == -1 {
			continue
		}

		e.groups[best].Members = append(e.groups[best].Members, voter)
		e.grouped[voter] = true
	}
}

// meanToward is the mean of voter's own scores for the members it rated.
func (e *engine) meanToward(voter entity.StudentID, members []entity.StudentID) (float64, bool) {
	sum, n := 0, 0
	for _, m := range members {
		if s, ok := e.ballots.Score(voter, m); ok {
			sum += s
			n++
		}
	}
	if n == 0 {
		return 0, false
	}
	return float64(sum) / float64(n), true
}

// pairResidual is phase 3. Walking the ranked candidates once is the same as
// repeatedly taking the best pair whose members are both still free.
func (e *engine) pairResidual() {
	free := e.freeVoters()

	var candidates []entity.AffinityPair
	for i, a := range free {
		for _, b := range free[i+1:] {
			if e.blocked.Blocks(a, b) {
				continue
			}
			p, ok := affinity.Pair(e.ballots, a, b)
			if !ok || p.Average < e.thresholds.Residual {
				continue
			}
			candidates = append(candidates, p)
		}
	}

	affinity.Rank(candidates)

	for _, p := range candidates {
		if e.free(p.A) && e.free(p.B) {
			e.add(entity.PhaseResidual, p.A, p.B)
		}
	}
}

// complete is phase 4.
func (e *engine) complete(roster entity.Roster) {
	for _, v := range e.freeVoters() {
		e.add(entity.PhaseCompletion, v)
	}
	for _, s := range roster {
		if e.free(s) {
			e.add(entity.PhaseCompletion, s)
		}
	}
}

func (e *engine) result() []entity.Group {
	slices.SortStableFunc(e.groups, func(x, y entity.Group) int {
		return y.Size() - x.Size()
	})

	for i := range e.groups {
		e.groups[i].ID = i + 1
	}

	return e.groups
}
