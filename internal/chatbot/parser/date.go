package parser

import (
	"regexp"
	"strconv"
	"time"

	"productivity-assistant/pkg/datemath"
)

// dateRule resolves a date from normalized text relative to today.
type dateRule struct {
	name    string
	resolve func(dm *datemath.Parser, text string, today time.Time) (time.Time, bool)
}

var (
	reToday       = regexp.MustCompile(`\baujourd'?hui\b`)
	reAfterTmrw   = regexp.MustCompile(`\bapres[- ]demain\b`)
	reTomorrow    = regexp.MustCompile(`\bdemain\b`)
	reInDays      = regexp.MustCompile(`\bdans\s+(\d{1,3})\s+jours?\b`)
	reWeekday     = regexp.MustCompile(`\b(?:pour\s+)?(lundi|mardi|mercredi|jeudi|vendredi|samedi|dimanche)\b`)
	reDayOfMonth  = regexp.MustCompile(`\ble\s+(\d{1,2})(?:er)?\b`)
	frenchWeekday = map[string]time.Weekday{
		"lundi":    time.Monday,
		"mardi":    time.Tuesday,
		"mercredi": time.Wednesday,
		"jeudi":    time.Thursday,
		"vendredi": time.Friday,
		"samedi":   time.Saturday,
		"dimanche": time.Sunday,
	}
)

var dateRules = []dateRule{
	{
		name: "today",
		resolve: func(dm *datemath.Parser, text string, today time.Time) (time.Time, bool) {
			return dm.Today(today), reToday.MatchString(text)
		},
	},
	{
		name: "day-after-tomorrow",
		resolve: func(dm *datemath.Parser, text string, today time.Time) (time.Time, bool) {
			return dm.AddDays(today, 2), reAfterTmrw.MatchString(text)
		},
	},
	{
		name: "tomorrow",
		resolve: func(dm *datemath.Parser, text string, today time.Time) (time.Time, bool) {
			return dm.AddDays(today, 1), reTomorrow.MatchString(text)
		},
	},
	{
		name: "in-n-days",
		resolve: func(dm *datemath.Parser, text string, today time.Time) (time.Time, bool) {
			m := reInDays.FindStringSubmatch(text)
			if m == nil {
				return time.Time{}, false
			}
			n, err := strconv.Atoi(m[1])
			if err != nil {
				return time.Time{}, false
			}
			return dm.AddDays(today, n), true
		},
	},
	{
		name: "weekday",
		resolve: func(dm *datemath.Parser, text string, today time.Time) (time.Time, bool) {
			m := reWeekday.FindStringSubmatch(text)
			if m == nil {
				return time.Time{}, false
			}
			return dm.NextOrSameWeekday(today, frenchWeekday[m[1]]), true
		},
	},
	{
		name: "day-of-month",
		resolve: func(dm *datemath.Parser, text string, today time.Time) (time.Time, bool) {
			m := reDayOfMonth.FindStringSubmatch(text)
			if m == nil {
				return time.Time{}, false
			}
			day, err := strconv.Atoi(m[1])
			if err != nil {
				return time.Time{}, false
			}
			d, err := dm.DayOfMonthOnOrAfter(today, day)
			if err != nil {
				return time.Time{}, false
			}
			return d, true
		},
	},
}

// ExtractDate applies the date rules in order and returns the first resolved date.
// text must already be normalized.
func (p *Parser) ExtractDate(text string, today time.Time) (time.Time, bool) {
	for _, rule := range dateRules {
		if d, ok := rule.resolve(p.dates, text, today); ok {
			return d, true
		}
	}
	return time.Time{}, false
}
