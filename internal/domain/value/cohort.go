package value

import (
	"errors"
	"regexp"
	"strings"
)

var ErrInvalidCohort = errors.New("invalid cohort")

var cohortPattern = regexp.MustCompile(`^[\p{L}\p{N}_\-]{1,50}$`) //nolint:gochecknoglobals

// Cohort is the name of a class year ("sexto", "2024-A").
type Cohort string

func (c Cohort) String() string {
	return string(c)
}

func ParseCohort(s string) (Cohort, error) {
	s = strings.TrimSpace(s)
	if !cohortPattern.MatchString(s) {
		return "", ErrInvalidCohort
	}
	return Cohort(s), nil
}
