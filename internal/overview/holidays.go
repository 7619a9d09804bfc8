package overview

import (
	"time"
)

// GermanHolidaysNRW returns the public holidays of North Rhine-Westphalia
// for the given year as a HolidaySet, usable as the injectable holiday
// input of the grid builder.
func GermanHolidaysNRW(year int) HolidaySet {
	holidays := HolidaySet{}

	// Fixed holidays
	holidays[isoDate(year, 1, 1)] = "Neujahr"
	holidays[isoDate(year, 5, 1)] = "Tag der Arbeit"
	holidays[isoDate(year, 10, 3)] = "Tag der Deutschen Einheit"
	holidays[isoDate(year, 11, 1)] = "Allerheiligen"
	holidays[isoDate(year, 12, 25)] = "1. Weihnachtstag"
	holidays[isoDate(year, 12, 26)] = "2. Weihnachtstag"

	// Easter-based holidays (movable)
	easter := easterSunday(year)
	holidays[isoFromTime(easter.AddDate(0, 0, -2))] = "Karfreitag"
	holidays[isoFromTime(easter.AddDate(0, 0, 1))] = "Ostermontag"
	holidays[isoFromTime(easter.AddDate(0, 0, 39))] = "Christi Himmelfahrt"
	holidays[isoFromTime(easter.AddDate(0, 0, 50))] = "Pfingstmontag"
	holidays[isoFromTime(easter.AddDate(0, 0, 60))] = "Fronleichnam"

	return holidays
}

// easterSunday calculates Easter Sunday using the Meeus/Jones/Butcher
// algorithm.
func easterSunday(year int) time.Time {
	a := year % 19
	b := year / 100
	c := year % 100
	d := b / 4
	e := b % 4
	f := (b + 8) / 25
	g := (b - f + 1) / 3
	h := (19*a + b - d - g + 15) % 30
	i := c / 4
	k := c % 4
	l := (32 + 2*e + 2*i - h - k) % 7
	m := (a + 11*h + 22*l) / 451
	month := (h + l - 7*m + 114) / 31
	day := ((h + l - 7*m + 114) % 31) + 1

	// Noon avoids timezone edge cases when formatting to YYYY-MM-DD.
	return time.Date(year, time.Month(month), day, 12, 0, 0, 0, time.UTC)
}

func isoDate(year, month, day int) string {
	return time.Date(year, time.Month(month), day, 12, 0, 0, 0, time.UTC).Format("2006-01-02")
}

func isoFromTime(t time.Time) string {
	return t.Format("2006-01-02")
}
