package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"seatplan/internal/domain/entity"
)

const sample = `{
  "roster": ["A", "B", "C", "D"],
  "ballots": {
    "A": {"ratings": {"B": 5, "C": 2}},
    "B": {"ratings": {"A": 4, "D": 1}, "blocked": "D"},
    "C": {"ratings": {"D": 5}},
    "D": {"ratings": {"C": 4}}
  }
}`

func TestRunText(t *testing.T) {
	t.Parallel()
	rq := require.New(t)

	var out bytes.Buffer
	rq.NoError(run([]string{"-columns", "2"}, strings.NewReader(sample), &out))

	text := out.String()
	rq.Contains(text, "4 students in 2 groups, 2 successful (100.0%)")
	rq.Contains(text, "1. A, B (seed-pairing)")
	rq.Contains(text, "2. C, D (seed-pairing)")
	rq.Contains(text, "seed 42, 1x2")
}

func TestRunJSON(t *testing.T) {
	t.Parallel()
	rq := require.New(t)

	var out bytes.Buffer
	rq.NoError(run([]string{"-json", "-seed", "7"}, strings.NewReader(sample), &out))

	var got output
	rq.NoError(json.Unmarshal(out.Bytes(), &got))
	rq.Len(got.Groups, 2)
	rq.Equal(int64(7), got.Layout.Seed)
	rq.ElementsMatch([]entity.StudentID{"A", "B", "C", "D"}, got.Layout.Students())
}

func TestRunStrict(t *testing.T) {
	t.Parallel()

	in := `{"roster": ["A", "B", "C"], "ballots": {"A": {"ratings": {"B": 3, "C": 3}}}}`

	var out bytes.Buffer
	require.Error(t, run([]string{"-strict"}, strings.NewReader(in), &out))
	require.NoError(t, run(nil, strings.NewReader(in), &out))
}

func TestRosterFromBallots(t *testing.T) {
	t.Parallel()

	in := input{Ballots: entity.Ballots{
		"C": {Ratings: map[entity.StudentID]int{"A": 5}},
		"B": {Ratings: map[entity.StudentID]int{"C": 4}},
	}}

	require.Equal(t, entity.Roster{"A", "B", "C"}, in.roster())
}

func TestRunBadInput(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	require.Error(t, run(nil, strings.NewReader("{"), &out))
	require.Error(t, run([]string{"-nope"}, strings.NewReader(sample), &out))
}
