package importer

import (
	"github.com/urlaubsplaner/urlaubsplaner/internal"
	"github.com/urlaubsplaner/urlaubsplaner/internal/overview"
	"github.com/urlaubsplaner/urlaubsplaner/internal/user"
	"github.com/urlaubsplaner/urlaubsplaner/internal/vacation"
	"github.com/xuri/excelize/v2"
)

// ExportUsers writes the user list as a workbook with the same column names
// the import contract expects, so an exported file can be imported again.
func ExportUsers(users []user.User, path string) error {
	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	headers := []string{ColID, ColFirstName, ColLastName, ColEmail, ColPhone, ColDeptNo, ColPosition, ColBirthday, ColEntryDate}
	for i, h := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return internal.NewInternalError("export users", err)
		}
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return internal.NewInternalError("export users", err)
		}
	}

	for r, u := range users {
		values := []any{
			u.UserID, u.FirstName, u.LastName,
			deref(u.Email), deref(u.Phone), deref(u.Department),
			deref(u.Position), deref(u.Birthday), deref(u.EntryDate),
		}
		for c, v := range values {
			if v == nil {
				continue
			}
			cell, err := excelize.CoordinatesToCellName(c+1, r+2)
			if err != nil {
				return internal.NewInternalError("export users", err)
			}
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return internal.NewInternalError("export users", err)
			}
		}
	}

	if err := f.SaveAs(path); err != nil {
		return internal.NewInternalError("save user export", err)
	}
	return nil
}

// ExportOverview writes the annual grid as a colored workbook: one row per
// team or employee, one narrow column per day, fills matching the overview
// palette.
func ExportOverview(g *overview.Grid, path string) error {
	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)

	styles := map[string]int{}
	styleFor := func(color string) (int, error) {
		if id, ok := styles[color]; ok {
			return id, nil
		}
		id, err := f.NewStyle(&excelize.Style{
			Fill: excelize.Fill{Type: "pattern", Color: []string{color}, Pattern: 1},
		})
		if err != nil {
			return 0, err
		}
		styles[color] = id
		return id, nil
	}

	for col, header := range g.Headers {
		if header == "" {
			continue
		}
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return internal.NewInternalError("export overview", err)
		}
		if err := f.SetCellValue(sheet, cell, header); err != nil {
			return internal.NewInternalError("export overview", err)
		}
	}

	for r, row := range g.Rows {
		nameCell, err := excelize.CoordinatesToCellName(1, r+2)
		if err != nil {
			return internal.NewInternalError("export overview", err)
		}
		if err := f.SetCellValue(sheet, nameCell, row.Name); err != nil {
			return internal.NewInternalError("export overview", err)
		}

		for c, cell := range row.Cells {
			color := cellColor(cell)
			if color == "" {
				continue
			}
			styleID, err := styleFor(color)
			if err != nil {
				return internal.NewInternalError("export overview", err)
			}
			name, err := excelize.CoordinatesToCellName(c+2, r+2)
			if err != nil {
				return internal.NewInternalError("export overview", err)
			}
			if err := f.SetCellStyle(sheet, name, name, styleID); err != nil {
				return internal.NewInternalError("export overview", err)
			}
		}
	}

	if err := f.SetColWidth(sheet, "A", "A", 24); err != nil {
		return internal.NewInternalError("export overview", err)
	}
	lastCol, err := excelize.ColumnNumberToName(g.Columns())
	if err == nil {
		// Day columns stay narrow so a whole year fits on screen.
		if err := f.SetColWidth(sheet, "B", lastCol, 2.5); err != nil {
			return internal.NewInternalError("export overview", err)
		}
	}

	if err := f.SaveAs(path); err != nil {
		return internal.NewInternalError("save overview export", err)
	}
	return nil
}

func deref(p *string) any {
	if p == nil {
		return nil
	}
	return *p
}

// cellColor follows the same precedence as the terminal renderer: vacation
// status, then today marker, then day kind.
func cellColor(c overview.Cell) string {
	switch c.Status {
	case vacation.StatusApproved:
		return overview.ColorApproved
	case vacation.StatusPending:
		return overview.ColorPending
	case vacation.StatusRejected:
		return overview.ColorRejected
	}
	if c.Today {
		return overview.ColorToday
	}
	switch c.Kind {
	case overview.DayWeekend:
		return overview.ColorWeekend
	case overview.DayHoliday:
		return overview.ColorHoliday
	}
	return ""
}
