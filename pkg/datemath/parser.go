package datemath

import (
	"errors"
	"fmt"
	"time"
	_ "time/tzdata"
)

// ErrInvalidDayOfMonth is returned when a day-of-month falls outside 1..31.
var ErrInvalidDayOfMonth = errors.New("invalid day of month")

// maxMonthLookahead bounds the search for a month containing a given day.
// Every day 1..31 exists in at least one of any two consecutive months.
const maxMonthLookahead = 12

// Parser does calendar arithmetic in a fixed timezone.
type Parser struct {
	location *time.Location
}

// NewParser creates a new date parser for the given IANA timezone string.
// e.g. "Europe/Paris"
func NewParser(timezone string) (*Parser, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	return &Parser{location: loc}, nil
}

// Location returns the parser's timezone.
func (p *Parser) Location() *time.Location {
	return p.location
}

// Today returns midnight of now's calendar day in the parser's timezone.
func (p *Parser) Today(now time.Time) time.Time {
	return p.startOfDay(now)
}

// AddDays moves day by n calendar days and returns midnight of the result.
func (p *Parser) AddDays(day time.Time, n int) time.Time {
	return p.startOfDay(day.In(p.location).AddDate(0, 0, n))
}

// NextOrSameWeekday returns the first day on or after from that falls on target.
func (p *Parser) NextOrSameWeekday(from time.Time, target time.Weekday) time.Time {
	start := p.startOfDay(from)
	daysUntil := (int(target) - int(start.Weekday()) + 7) % 7
	return start.AddDate(0, 0, daysUntil)
}

// DayOfMonthOnOrAfter resolves a bare day-of-month against from: the same month
// when that day is not already past, otherwise the next month that has such a day.
// "le 31" on April 10 resolves to May 31; "le 30" on February 3 resolves to March 30.
func (p *Parser) DayOfMonthOnOrAfter(from time.Time, day int) (time.Time, error) {
	if day < 1 || day > 31 {
		return time.Time{}, ErrInvalidDayOfMonth
	}

	start := p.startOfDay(from)
	year, month := start.Year(), start.Month()

	for i := 0; i <= maxMonthLookahead; i++ {
		y, m := year, month+time.Month(i)
		if day > daysIn(y, m) {
			continue
		}
		candidate := time.Date(y, m, day, 0, 0, 0, 0, p.location)
		if !candidate.Before(start) {
			return candidate, nil
		}
	}

	return time.Time{}, ErrInvalidDayOfMonth
}

// StartOfWeek returns Monday 00:00 of the week containing t.
func (p *Parser) StartOfWeek(t time.Time) time.Time {
	start := p.startOfDay(t)
	offset := (int(start.Weekday()) + 6) % 7
	return start.AddDate(0, 0, -offset)
}

// SameDay reports whether a and b fall on the same calendar day in the parser's timezone.
func (p *Parser) SameDay(a, b time.Time) bool {
	return p.startOfDay(a).Equal(p.startOfDay(b))
}

// startOfDay returns midnight at the start of the given day in the parser's timezone.
func (p *Parser) startOfDay(t time.Time) time.Time {
	t = t.In(p.location)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, p.location)
}

// daysIn returns the number of days in month m of year y. Month overflow is normalised.
func daysIn(y int, m time.Month) int {
	return time.Date(y, m+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
