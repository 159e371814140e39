package parser

import (
	"regexp"
	"strconv"

	"productivity-assistant/internal/model"
)

type clockRule struct {
	name    string
	resolve func(text string) (model.TimeOfDay, bool)
}

var (
	reHourMark  = regexp.MustCompile(`\b([01]?\d|2[0-3])\s?h(?:eures?)?\s?([0-5]\d)?\b`)
	reColonTime = regexp.MustCompile(`\b([01]?\d|2[0-3]):([0-5]\d)\b`)
	reAfternoon = regexp.MustCompile(`\bapres[- ]midi\b`)
	reNoon      = regexp.MustCompile(`\bmidi\b`)
	reEvening   = regexp.MustCompile(`\bsoir(?:ee)?\b`)

	// a quantity of hours ("2 heures par jour", "10h de forfait", "pendant 3h") is not a clock time
	reDurationAfter  = regexp.MustCompile(`^\s*(par|de|d')\b`)
	reDurationBefore = regexp.MustCompile(`\b(pendant|durant)\s*$`)
)

var clockRules = []clockRule{
	{name: "hour-mark", resolve: explicitClock(reHourMark)},
	{name: "colon", resolve: explicitClock(reColonTime)},
	{name: "afternoon", resolve: fixedClock(reAfternoon, 14, 0)},
	{name: "noon", resolve: fixedClock(reNoon, 12, 0)},
	{name: "evening", resolve: fixedClock(reEvening, 18, 0)},
}

func explicitClock(re *regexp.Regexp) func(string) (model.TimeOfDay, bool) {
	return func(text string) (model.TimeOfDay, bool) {
		for _, loc := range re.FindAllStringSubmatchIndex(text, -1) {
			if isDuration(text, loc[0], loc[1]) {
				continue
			}
			hour, _ := strconv.Atoi(text[loc[2]:loc[3]])
			minute := 0
			if loc[4] >= 0 {
				minute, _ = strconv.Atoi(text[loc[4]:loc[5]])
			}
			t, err := model.NewTimeOfDay(hour, minute)
			if err != nil {
				continue
			}
			return t, true
		}
		return model.TimeOfDay{}, false
	}
}

func isDuration(text string, start, end int) bool {
	return reDurationAfter.MatchString(text[end:]) || reDurationBefore.MatchString(text[:start])
}

func fixedClock(re *regexp.Regexp, hour, minute int) func(string) (model.TimeOfDay, bool) {
	return func(text string) (model.TimeOfDay, bool) {
		return model.TimeOfDay{Hour: hour, Minute: minute}, re.MatchString(text)
	}
}

// ExtractTime returns the time of day of the first matching rule.
// text must already be normalized.
func ExtractTime(text string) (model.TimeOfDay, bool) {
	for _, rule := range clockRules {
		if t, ok := rule.resolve(text); ok {
			return t, true
		}
	}
	return model.TimeOfDay{}, false
}
