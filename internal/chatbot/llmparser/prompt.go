package llmparser

import (
	"fmt"
	"time"
)

var frenchWeekdays = [...]string{
	time.Sunday:    "dimanche",
	time.Monday:    "lundi",
	time.Tuesday:   "mardi",
	time.Wednesday: "mercredi",
	time.Thursday:  "jeudi",
	time.Friday:    "vendredi",
	time.Saturday:  "samedi",
}

// Prompt builds the system prompt anchored on today.
func Prompt(today time.Time) string {
	return fmt.Sprintf(PromptSystem, today.Format(replyDateFormat), frenchWeekdays[today.Weekday()])
}
