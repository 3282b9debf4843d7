package persistence

import (
	"fmt"
	"time"

	jsoniter "github.com/json-iterator/go"

	"seatplan/internal/domain/entity"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary //nolint:gochecknoglobals // skip

type studentSchema struct {
	Cohort    string `db:"cohort"`
	Position  int    `db:"position"`
	StudentID string `db:"student_id"`
}

// ballotSchema is a row of ballots. ratings is stored as a JSON object of
// student id to score.
type ballotSchema struct {
	Cohort  string    `db:"cohort"`
	Voter   string    `db:"voter"`
	Ratings []byte    `db:"ratings"`
	Blocked *string   `db:"blocked"`
	CastAt  time.Time `db:"cast_at"`
}

func fromBallot(cohort string, voter entity.StudentID, b entity.Ballot) (ballotSchema, error) {
	ratings, err := json.Marshal(b.Ratings)
	if err != nil {
		return ballotSchema{}, fmt.Errorf("json.Marshal: %w", err)
	}

	s := ballotSchema{
		Cohort:  cohort,
		Voter:   voter.String(),
		Ratings: ratings,
		CastAt:  b.CastAt,
	}

	if b.Blocked != nil {
		blocked := b.Blocked.String()
		s.Blocked = &blocked
	}

	return s, nil
}

func (s ballotSchema) toDomain() (entity.Ballot, error) {
	b := entity.Ballot{CastAt: s.CastAt}

	if err := json.Unmarshal(s.Ratings, &b.Ratings); err != nil {
		return entity.Ballot{}, fmt.Errorf("json.Unmarshal: %w", err)
	}

	if s.Blocked != nil {
		blocked := entity.StudentID(*s.Blocked)
		b.Blocked = &blocked
	}

	return b, nil
}

type arrangementSchema struct {
	ID        int64     `db:"id"`
	Cohort    string    `db:"cohort"`
	Name      string    `db:"name"`
	Layout    []byte    `db:"layout"`
	Rows      int       `db:"grid_rows"`
	Columns   int       `db:"grid_columns"`
	Seed      int64     `db:"seed"`
	Students  int       `db:"students"`
	IsCurrent bool      `db:"is_current"`
	CreatedAt time.Time `db:"created_at"`
}

func fromArrangement(a entity.Arrangement) (arrangementSchema, error) {
	layout, err := json.Marshal(a.Layout)
	if err != nil {
		return arrangementSchema{}, fmt.Errorf("json.Marshal: %w", err)
	}

	return arrangementSchema{
		ID:        a.ID,
		Cohort:    a.Cohort,
		Name:      a.Name,
		Layout:    layout,
		Rows:      a.Layout.Rows,
		Columns:   a.Layout.Columns,
		Seed:      a.Layout.Seed,
		Students:  a.Students,
		IsCurrent: a.IsCurrent,
		CreatedAt: a.CreatedAt,
	}, nil
}

func (s arrangementSchema) toDomain() (entity.Arrangement, error) {
	a := entity.Arrangement{
		ID:        s.ID,
		Cohort:    s.Cohort,
		Name:      s.Name,
		Students:  s.Students,
		IsCurrent: s.IsCurrent,
		CreatedAt: s.CreatedAt,
	}

	if err := json.Unmarshal(s.Layout, &a.Layout); err != nil {
		return entity.Arrangement{}, fmt.Errorf("json.Unmarshal: %w", err)
	}

	return a, nil
}
