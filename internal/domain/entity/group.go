package entity

import "slices"

// Phase tells which grouping step created a group.
type Phase int

const (
	PhaseSeedPairing Phase = iota + 1
	PhaseExpansion
	PhaseResidual
	PhaseCompletion
)

func (p Phase) String() string {
	switch p {
	case PhaseSeedPairing:
		return "seed-pairing"
	case PhaseExpansion:
		return "expansion"
	case PhaseResidual:
		return "residual"
	case PhaseCompletion:
		return "completion"
	default:
		return "unknown"
	}
}

// Group is a set of students seated and working together.
// Phase records the step that created the group; expansion only adds members.
type Group struct {
	ID      int         `json:"id"`
	Members []StudentID `json:"members"`
	Phase   Phase       `json:"phase"`
}

func (g Group) Size() int {
	return len(g.Members)
}

func (g Group) Has(id StudentID) bool {
	return slices.Contains(g.Members, id)
}
