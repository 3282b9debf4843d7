package handler

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"seatplan/internal/domain/value"
)

const callbackShuffle = "shuffle:"

var ErrUsage = errors.New("wrong number of arguments")

// ParseGroupsArgs reads "/groups <cohort>".
func ParseGroupsArgs(text string) (value.Cohort, error) {
	args := strings.Fields(text)
	if len(args) != 2 {
		return "", ErrUsage
	}

	return value.ParseCohort(args[1])
}

// ParseLayoutArgs reads "/layout <cohort> [columns]". Zero columns selects
// the configured width.
func ParseLayoutArgs(text string) (value.Cohort, int, error) {
	args := strings.Fields(text)
	if len(args) < 2 || len(args) > 3 {
		return "", 0, ErrUsage
	}

	cohort, err := value.ParseCohort(args[1])
	if err != nil {
		return "", 0, err
	}

	if len(args) == 2 {
		return cohort, 0, nil
	}

	columns, err := strconv.Atoi(args[2])
	if err != nil || columns < 1 {
		return "", 0, fmt.Errorf("columns %q: %w", args[2], ErrUsage)
	}

	return cohort, columns, nil
}

// ShuffleData is the callback payload of the shuffle button.
func ShuffleData(cohort value.Cohort, columns int) string {
	return fmt.Sprintf("%s%s:%d", callbackShuffle, cohort, columns)
}

func ParseShuffleData(data string) (value.Cohort, int, error) {
	rest, ok := strings.CutPrefix(data, callbackShuffle)
	if !ok {
		return "", 0, ErrUsage
	}

	i := strings.LastIndexByte(rest, ':')
	if i < 0 {
		return "", 0, ErrUsage
	}

	cohort, err := value.ParseCohort(rest[:i])
	if err != nil {
		return "", 0, err
	}

	columns, err := strconv.Atoi(rest[i+1:])
	if err != nil || columns < 0 {
		return "", 0, ErrUsage
	}

	return cohort, columns, nil
}
