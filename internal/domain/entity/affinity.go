package entity

// AffinityPair is an unordered pair of students who rated each other.
// A is always lexicographically smaller than B.
type AffinityPair struct {
	A          StudentID `json:"a"`
	B          StudentID `json:"b"`
	Average    float64   `json:"average"`
	Difference int       `json:"difference"`
}

// BlockedPair is a one-directional "do not group me with" constraint.
type BlockedPair struct {
	Voter  StudentID
	Target StudentID
}

// BlockedPairs is the set of registered blocks.
type BlockedPairs map[BlockedPair]struct{}

func (b BlockedPairs) Add(voter, target StudentID) {
	b[BlockedPair{Voter: voter, Target: target}] = struct{}{}
}

// Blocks reports whether a block exists between x and y in either direction.
func (b BlockedPairs) Blocks(x, y StudentID) bool {
	if _, ok := b[BlockedPair{Voter: x, Target: y}]; ok {
		return true
	}
	_, ok := b[BlockedPair{Voter: y, Target: x}]
	return ok
}

// BlocksAny reports whether id is blocked against any of members.
func (b BlockedPairs) BlocksAny(id StudentID, members []StudentID) bool {
	for _, m := range members {
		if b.Blocks(id, m) {
			return true
		}
	}
	return false
}
