package entity

import (
	"slices"
	"time"
)

// Ballot is everything one voter submitted: a score per rated peer and
// at most one blocked peer.
type Ballot struct {
	Ratings map[StudentID]int `json:"ratings"`
	Blocked *StudentID        `json:"blocked,omitempty"`
	CastAt  time.Time         `json:"cast_at,omitempty"`
}

// Score returns the voter's score for target and whether it exists.
func (b Ballot) Score(target StudentID) (int, bool) {
	s, ok := b.Ratings[target]
	return s, ok
}

// Targets returns the rated peers in lexicographic order.
func (b Ballot) Targets() []StudentID {
	out := make([]StudentID, 0, len(b.Ratings))
	for t := range b.Ratings {
		out = append(out, t)
	}
	slices.Sort(out)
	return out
}

// Ballots maps voter to ballot ("ratings by voter").
type Ballots map[StudentID]Ballot

// Voters returns the voters in lexicographic order.
func (b Ballots) Voters() []StudentID {
	out := make([]StudentID, 0, len(b))
	for v := range b {
		out = append(out, v)
	}
	slices.Sort(out)
	return out
}

// Score returns voter's score for target.
func (b Ballots) Score(voter, target StudentID) (int, bool) {
	ballot, ok := b[voter]
	if !ok {
		return 0, false
	}
	return ballot.Score(target)
}
