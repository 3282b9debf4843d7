// Package view renders planner results as Telegram HTML.
package view

import (
	"fmt"
	"html"
	"strings"

	"seatplan/internal/domain/entity"
	"seatplan/internal/domain/service/planner"
)

const (
	StartMessage = "<b>Seat planner</b>\n\n" +
		"/groups <code>cohort</code> shows the current groups\n" +
		"/layout <code>cohort</code> [columns] shows the seating grid"

	UsageGroups   = "Usage: /groups <code>cohort</code>"
	UsageLayout   = "Usage: /layout <code>cohort</code> [columns]"
	InvalidCohort = "Cohort names use letters, digits, '-' and '_'."
	Failed        = "Could not build the plan: %s"
	Regenerate    = "🔄 Shuffle"
	emptySeat     = "-"
)

// Summary is the headline of a plan followed by its groups and grid size.
func Summary(plan planner.Plan, layout entity.ClassroomLayout) string {
	var sb strings.Builder

	sb.WriteString(Quality(plan))

	if len(plan.Groups) > 0 {
		sb.WriteString("\n")
		sb.WriteString(Groups(plan.Groups))
	}

	fmt.Fprintf(&sb, "\nGrid %dx%d, %d seats used, seed <code>%d</code>",
		layout.Rows, layout.Columns, layout.OccupiedSeats(), layout.Seed)

	return sb.String()
}

func Quality(plan planner.Plan) string {
	return fmt.Sprintf("<b>%s</b>: %d students in %d groups\nSuccess rate %.1f%%, mean affinity %.2f\n",
		html.EscapeString(plan.Cohort.String()),
		plan.Quality.TotalStudents,
		plan.Quality.TotalGroups,
		plan.Quality.SuccessRate,
		plan.Quality.MeanAffinity,
	)
}

// Groups renders one line per group.
func Groups(groups []entity.Group) string {
	var sb strings.Builder

	for _, g := range groups {
		fmt.Fprintf(&sb, "%d. %s <i>(%s)</i>\n", g.ID, html.EscapeString(members(g.Members, ", ")), g.Phase)
	}

	return sb.String()
}

// Grid draws the layout row by row inside a pre block, one column per desk.
func Grid(layout entity.ClassroomLayout) string {
	if layout.Columns == 0 {
		return "<pre></pre>"
	}

	cells := make([]string, len(layout.Seats))
	widths := make([]int, layout.Columns)

	for i, seat := range layout.Seats {
		cell := emptySeat
		if seat.Occupied {
			cell = members(seat.Occupants, "+")
		}

		cells[i] = cell
		widths[i%layout.Columns] = max(widths[i%layout.Columns], len([]rune(cell)))
	}

	var sb strings.Builder

	sb.WriteString("<pre>")

	for row := range layout.Rows {
		line := make([]string, layout.Columns)
		for col := range layout.Columns {
			cell := cells[row*layout.Columns+col]
			line[col] = cell + strings.Repeat(" ", widths[col]-len([]rune(cell)))
		}

		sb.WriteString(html.EscapeString(strings.TrimRight(strings.Join(line, " | "), " ")))
		sb.WriteString("\n")
	}

	sb.WriteString("</pre>")

	return sb.String()
}

func members(ids []entity.StudentID, sep string) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = id.String()
	}
	return strings.Join(parts, sep)
}
