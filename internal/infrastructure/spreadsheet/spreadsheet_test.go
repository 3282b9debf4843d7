package spreadsheet_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"seatplan/internal/domain/entity"
	"seatplan/internal/infrastructure/spreadsheet"
)

func rosterFile(t *testing.T, rows [][]any) *bytes.Buffer {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow(sheet, cell, &row))
	}

	buf, err := f.WriteToBuffer()
	require.NoError(t, err)

	return buf
}

func TestReadRoster(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		rows [][]any
		want []entity.StudentID
	}{
		{
			name: "header skipped",
			rows: [][]any{{"id", "name"}, {"S01", "Ana"}, {"S02", "Beto"}},
			want: []entity.StudentID{"S01", "S02"},
		},
		{
			name: "blank cells and spaces",
			rows: [][]any{{"id"}, {" S01 "}, {""}, {"S03"}},
			want: []entity.StudentID{"S01", "S03"},
		},
		{
			name: "header only",
			rows: [][]any{{"id"}},
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			rq := require.New(t)

			ids, err := spreadsheet.ReadRoster(rosterFile(t, tt.rows))
			rq.NoError(err)
			rq.Equal(tt.want, ids)
		})
	}
}

func TestReadRosterNotXLSX(t *testing.T) {
	t.Parallel()

	_, err := spreadsheet.ReadRoster(bytes.NewBufferString("id\nS01\n"))
	require.Error(t, err)
}

func TestWriteLayout(t *testing.T) {
	t.Parallel()
	rq := require.New(t)

	layout := entity.ClassroomLayout{
		Rows:    1,
		Columns: 2,
		Seats: []entity.Seat{
			{Row: 0, Column: 0, Occupants: []entity.StudentID{"A", "B"}, GroupID: 1, Occupied: true},
			{Row: 0, Column: 1},
		},
	}
	groups := []entity.Group{{ID: 1, Members: []entity.StudentID{"A", "B"}, Phase: entity.PhaseSeedPairing}}

	var buf bytes.Buffer
	rq.NoError(spreadsheet.WriteLayout(&buf, layout, groups))

	f, err := excelize.OpenReader(&buf)
	rq.NoError(err)
	defer f.Close()

	rq.Equal([]string{spreadsheet.SheetLayout, spreadsheet.SheetGroups}, f.GetSheetList())

	v, err := f.GetCellValue(spreadsheet.SheetLayout, "A1")
	rq.NoError(err)
	rq.Equal("A, B", v)

	v, err = f.GetCellValue(spreadsheet.SheetLayout, "B1")
	rq.NoError(err)
	rq.Empty(v)

	rows, err := f.GetRows(spreadsheet.SheetGroups)
	rq.NoError(err)
	rq.Equal([][]string{{"Group", "Phase", "Members"}, {"1", "seed-pairing", "A, B"}}, rows)
}
