// Command seatplan groups a class and prints a seating plan from a JSON
// file holding the roster and the ballots:
//
//	seatplan [-columns 6] [-seed 42] [-capacity 2] [-strict] [-json] ballots.json
//
// With no file the input is read from stdin.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"
	"text/tabwriter"

	jsoniter "github.com/json-iterator/go"
	"github.com/samber/lo"

	"seatplan/internal/domain/entity"
	"seatplan/internal/domain/service/planner"
	"seatplan/internal/domain/service/seating"
	"seatplan/internal/domain/value"
	"seatplan/pkg/logx"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary //nolint:gochecknoglobals

type input struct {
	Roster  []entity.StudentID `json:"roster"`
	Ballots entity.Ballots     `json:"ballots"`
}

type output struct {
	Groups  []entity.Group         `json:"groups"`
	Quality entity.Quality         `json:"quality"`
	Pairs   []entity.AffinityPair  `json:"pairs"`
	Layout  entity.ClassroomLayout `json:"layout"`
}

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}

		logx.NewLogger("info").Error("seatplan failed", logx.Error(err))
		os.Exit(1)
	}
}

func run(args []string, stdin io.Reader, stdout io.Writer) error {
	fs := flag.NewFlagSet("seatplan", flag.ContinueOnError)

	columns := fs.Int("columns", value.DefaultColumns, "seats per row")
	seed := fs.Int64("seed", int64(value.DefaultSeed), "shuffle seed")
	capacity := fs.Int("capacity", value.DefaultSeatCapacity, "students per seat")
	strict := fs.Bool("strict", false, "reject ballots with repeated scores or unknown students")
	asJSON := fs.Bool("json", false, "print JSON instead of text")

	if err := fs.Parse(args); err != nil {
		return err
	}

	in, err := readInput(fs.Arg(0), stdin)
	if err != nil {
		return err
	}

	roster := in.roster()

	if *strict {
		for _, voter := range in.Ballots.Voters() {
			if err = planner.ValidateBallot(roster, voter, in.Ballots[voter], value.MaxScore); err != nil {
				return fmt.Errorf("ballot of %s: %w", voter, err)
			}
		}
	}

	plan := planner.Compute(roster, in.Ballots, value.DefaultThresholds())
	layout := seating.AssignSeats(plan.Groups, *columns, *capacity, value.Seed(*seed))

	if *asJSON {
		enc := json.NewEncoder(stdout)
		enc.SetIndent("", "  ")

		return enc.Encode(output{Groups: plan.Groups, Quality: plan.Quality, Pairs: plan.Pairs, Layout: layout})
	}

	return printText(stdout, plan, layout)
}

func readInput(path string, stdin io.Reader) (input, error) {
	r := stdin

	if path != "" && path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return input{}, fmt.Errorf("os.Open: %w", err)
		}
		defer f.Close()

		r = f
	}

	var in input
	if err := json.NewDecoder(r).Decode(&in); err != nil {
		return input{}, fmt.Errorf("json.Decode: %w", err)
	}

	return in, nil
}

// roster falls back to everyone named in the ballots, sorted.
func (in input) roster() entity.Roster {
	if len(in.Roster) > 0 {
		return lo.Uniq(in.Roster)
	}

	var ids []entity.StudentID
	for voter, b := range in.Ballots {
		ids = append(ids, voter)
		ids = append(ids, b.Targets()...)
	}

	ids = lo.Uniq(ids)
	slices.Sort(ids)

	return ids
}

func printText(w io.Writer, plan planner.Plan, layout entity.ClassroomLayout) error {
	q := plan.Quality

	fmt.Fprintf(w, "%d students in %d groups, %d successful (%.1f%%), mean affinity %.2f\n\n",
		q.TotalStudents, q.TotalGroups, q.SuccessfulGroups, q.SuccessRate, q.MeanAffinity)

	for _, g := range plan.Groups {
		fmt.Fprintf(w, "%2d. %s (%s)\n", g.ID, strings.Join(lo.Map(g.Members, func(id entity.StudentID, _ int) string {
			return id.String()
		}), ", "), g.Phase)
	}

	fmt.Fprintf(w, "\nseed %d, %dx%d\n", layout.Seed, layout.Rows, layout.Columns)

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	for row := range layout.Rows {
		cells := make([]string, layout.Columns)
		for col := range layout.Columns {
			seat := layout.At(row, col)

			cells[col] = "-"
			if seat.Occupied {
				cells[col] = strings.Join(lo.Map(seat.Occupants, func(id entity.StudentID, _ int) string {
					return id.String()
				}), "+")
			}
		}

		fmt.Fprintln(tw, strings.Join(cells, "\t"))
	}

	return tw.Flush()
}
