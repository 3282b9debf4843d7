// Package spreadsheet reads rosters from and writes layouts to xlsx files.
package spreadsheet

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"seatplan/internal/domain/entity"
)

const (
	SheetLayout = "Layout"
	SheetGroups = "Groups"

	ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

var ErrNoSheet = errors.New("spreadsheet has no sheets")

// ReadRoster takes student ids from column A of the first sheet. The first
// row is a header; blank cells are skipped.
func ReadRoster(r io.Reader) ([]entity.StudentID, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("excelize.OpenReader: %w", err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	if sheet == "" {
		return nil, ErrNoSheet
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("f.GetRows(%s): %w", sheet, err)
	}

	var ids []entity.StudentID

	for i, row := range rows {
		if i == 0 || len(row) == 0 {
			continue
		}

		if id := strings.TrimSpace(row[0]); id != "" {
			ids = append(ids, entity.StudentID(id))
		}
	}

	return ids, nil
}

// WriteLayout writes the seat grid to the Layout sheet, one cell per seat,
// and the member list of each group to the Groups sheet.
func WriteLayout(w io.Writer, layout entity.ClassroomLayout, groups []entity.Group) (err error) {
	f := excelize.NewFile()
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("f.Close: %w", cerr)
		}
	}()

	if err := f.SetSheetName(f.GetSheetName(0), SheetLayout); err != nil {
		return fmt.Errorf("f.SetSheetName: %w", err)
	}

	for _, seat := range layout.Seats {
		if !seat.Occupied {
			continue
		}

		cell, err := excelize.CoordinatesToCellName(seat.Column+1, seat.Row+1)
		if err != nil {
			return fmt.Errorf("excelize.CoordinatesToCellName: %w", err)
		}

		if err = f.SetCellValue(SheetLayout, cell, joinIDs(seat.Occupants)); err != nil {
			return fmt.Errorf("f.SetCellValue: %w", err)
		}
	}

	if _, err := f.NewSheet(SheetGroups); err != nil {
		return fmt.Errorf("f.NewSheet: %w", err)
	}

	header := []any{"Group", "Phase", "Members"}
	if err := f.SetSheetRow(SheetGroups, "A1", &header); err != nil {
		return fmt.Errorf("f.SetSheetRow: %w", err)
	}

	for i, g := range groups {
		row := []any{g.ID, g.Phase.String(), joinIDs(g.Members)}
		if err := f.SetSheetRow(SheetGroups, "A"+strconv.Itoa(i+2), &row); err != nil {
			return fmt.Errorf("f.SetSheetRow: %w", err)
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("f.Write: %w", err)
	}

	return nil
}

func joinIDs(ids []entity.StudentID) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = id.String()
	}
	return strings.Join(parts, ", ")
}
