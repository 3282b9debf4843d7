package entity

import "slices"

// StudentID identifies a student inside one cohort.
type StudentID string

func (s StudentID) String() string {
	return string(s)
}

// Roster is the ordered list of students of a cohort.
type Roster []StudentID

func (r Roster) Contains(id StudentID) bool {
	return slices.Contains(r, id)
}

// Sorted returns a lexicographically sorted copy.
func (r Roster) Sorted() Roster {
	out := slices.Clone(r)
	slices.Sort(out)
	return out
}
