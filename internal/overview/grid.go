package overview

import (
	"time"

	"github.com/urlaubsplaner/urlaubsplaner/internal/team"
	"github.com/urlaubsplaner/urlaubsplaner/internal/user"
	"github.com/urlaubsplaner/urlaubsplaner/internal/vacation"
)

// ViewMode selects what a grid row represents.
type ViewMode string

const (
	ViewByTeam     ViewMode = "team"
	ViewByEmployee ViewMode = "employee"
)

// DayKind is the calendar classification of a cell, independent of any
// vacation overlay.
type DayKind int

const (
	DayRegular DayKind = iota
	DayWeekend
	DayHoliday
)

// HolidaySet maps ISO dates (YYYY-MM-DD) to holiday names. The zero value
// marks nothing.
type HolidaySet map[string]string

func (h HolidaySet) Contains(day time.Time) bool {
	_, ok := h[day.Format(vacation.DateLayout)]
	return ok
}

// Cell is one day for one row. Status is empty when no vacation request
// covers the day. Today is metadata: it never replaces a vacation fill,
// the renderer decides how to show it.
type Cell struct {
	Date   time.Time
	Kind   DayKind
	Status vacation.Status
	Today  bool
}

// Row is one team or employee line of the grid.
type Row struct {
	ID    string
	Name  string
	Cells []Cell
}

// Grid is the fully built annual overview. Headers has one leading entry
// for the label column followed by one entry per day: the month
// abbreviation on the first of each month, blank otherwise, so the header
// reads as a sparse month ruler. TodayColumn is the column index of today
// (counting the label column as 0), or -1 when the grid is not for the
// current year.
type Grid struct {
	Year        int
	Headers     []string
	Rows        []Row
	TodayColumn int
}

// Columns returns the total column count, label column included.
func (g *Grid) Columns() int {
	return len(g.Headers)
}

// Params are the inputs of one build. The grid is rebuilt from scratch
// whenever any of them changes.
type Params struct {
	Year       int
	Department string // empty or "all" means no filter
	View       ViewMode
	Holidays   HolidaySet
}

// DaysInYear returns 366 for leap years, 365 otherwise.
func DaysInYear(year int) int {
	if year%4 == 0 && (year%100 != 0 || year%400 == 0) {
		return 366
	}
	return 365
}

// Builder projects teams, users and vacation requests from the store into
// annual grids. It owns no data.
type Builder struct {
	teams     *team.Service
	users     *user.Service
	vacations *vacation.Service
	now       func() time.Time
}

func NewBuilder(teams *team.Service, users *user.Service, vacations *vacation.Service) *Builder {
	return &Builder{
		teams:     teams,
		users:     users,
		vacations: vacations,
		now:       time.Now,
	}
}

// Build constructs the grid for one year. Years far in the past or future
// are fine: the grid has the right shape, just no overlays. Zero rows is a
// valid result, not an error.
func (b *Builder) Build(p Params) *Grid {
	if p.View == "" {
		p.View = ViewByTeam
	}

	days := DaysInYear(p.Year)
	start := time.Date(p.Year, time.January, 1, 0, 0, 0, 0, time.UTC)

	dates := make([]time.Time, days)
	for i := range dates {
		dates[i] = start.AddDate(0, 0, i)
	}

	headers := make([]string, days+1)
	for i, d := range dates {
		if d.Day() == 1 {
			headers[i+1] = d.Format("Jan")
		}
	}

	requests := b.requestsByKey(p.View)

	grid := &Grid{
		Year:        p.Year,
		Headers:     headers,
		TodayColumn: -1,
	}

	for _, spec := range b.rowSpecs(p) {
		row := Row{ID: spec.id, Name: spec.name, Cells: make([]Cell, days)}
		for i, d := range dates {
			cell := Cell{Date: d}
			switch {
			case d.Weekday() == time.Saturday || d.Weekday() == time.Sunday:
				cell.Kind = DayWeekend
			case p.Holidays.Contains(d):
				cell.Kind = DayHoliday
			}
			for _, req := range requests[spec.id] {
				if req.Covers(d) {
					cell.Status = req.Status
					break
				}
			}
			row.Cells[i] = cell
		}
		grid.Rows = append(grid.Rows, row)
	}

	if today := b.now(); today.Year() == p.Year {
		offset := int(time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC).Sub(start).Hours() / 24)
		grid.TodayColumn = offset + 1
		for i := range grid.Rows {
			grid.Rows[i].Cells[offset].Today = true
		}
	}

	return grid
}

type rowSpec struct {
	id   string
	name string
}

func (b *Builder) rowSpecs(p Params) []rowSpec {
	var specs []rowSpec
	if p.View == ViewByEmployee {
		for _, u := range b.users.ByDepartment(p.Department) {
			specs = append(specs, rowSpec{id: u.UserID, name: u.FullName()})
		}
		return specs
	}
	for _, t := range b.teams.ByDepartment(p.Department) {
		specs = append(specs, rowSpec{id: t.ID, name: t.Name})
	}
	return specs
}

// requestsByKey indexes requests by team or user, depending on the view.
// Requests with an unknown status are skipped rather than painted.
func (b *Builder) requestsByKey(view ViewMode) map[string][]vacation.Request {
	byKey := make(map[string][]vacation.Request)
	for _, req := range b.vacations.All() {
		if !req.Status.Valid() {
			continue
		}
		key := req.TeamID
		if view == ViewByEmployee {
			key = req.UserID
		}
		if key == "" {
			continue
		}
		byKey[key] = append(byKey[key], req)
	}
	return byKey
}
