package view_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"seatplan/internal/domain/entity"
	"seatplan/internal/domain/service/planner"
	"seatplan/internal/transport/bot/view"
)

func TestSummary(t *testing.T) {
	t.Parallel()
	rq := require.New(t)

	plan := planner.Plan{
		Cohort: "6A",
		Groups: []entity.Group{
			{ID: 1, Members: []entity.StudentID{"Ana", "<b>"}, Phase: entity.PhaseSeedPairing},
		},
		Quality: entity.Quality{TotalGroups: 1, TotalStudents: 2, SuccessfulGroups: 1, SuccessRate: 100, MeanAffinity: 4.5},
	}
	layout := entity.ClassroomLayout{
		Rows:    1,
		Columns: 2,
		Seed:    42,
		Seats: []entity.Seat{
			{Occupants: []entity.StudentID{"Ana", "<b>"}, GroupID: 1, Occupied: true},
			{Column: 1},
		},
	}

	text := view.Summary(plan, layout)

	rq.Contains(text, "<b>6A</b>: 2 students in 1 groups")
	rq.Contains(text, "Success rate 100.0%, mean affinity 4.50")
	rq.Contains(text, "1. Ana, &lt;b&gt; <i>(seed-pairing)</i>")
	rq.Contains(text, "Grid 1x2, 1 seats used, seed <code>42</code>")
}

func TestGrid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		layout entity.ClassroomLayout
		want   string
	}{
		{
			name: "pads columns",
			layout: entity.ClassroomLayout{
				Rows:    2,
				Columns: 2,
				Seats: []entity.Seat{
					{Occupants: []entity.StudentID{"Ana", "Bo"}, Occupied: true},
					{Column: 1, Occupants: []entity.StudentID{"Cy"}, Occupied: true},
					{Row: 1, Occupants: []entity.StudentID{"D"}, Occupied: true},
					{Row: 1, Column: 1},
				},
			},
			want: "<pre>Ana+Bo | Cy\nD      | -\n</pre>",
		},
		{
			name:   "empty",
			layout: entity.ClassroomLayout{},
			want:   "<pre></pre>",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tt.want, view.Grid(tt.layout))
		})
	}
}
