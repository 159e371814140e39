package parser

import (
	"regexp"

	"productivity-assistant/internal/model"
)

type priorityRule struct {
	name     string
	priority model.Priority
	match    func(text string) bool
}

var (
	reUrgentWord    = regexp.MustCompile(`\b(urgente?s?|urgence)\b`)
	reImportantWord = regexp.MustCompile(`\bimportante?s?\b`)
	reNegation      = regexp.MustCompile(`\b(pas|non|peu|pas\s+tres|pas\s+si)\s*$`)
)

var priorityRules = []priorityRule{
	{
		name:     "urgent",
		priority: model.PriorityUrgent,
		match: either(
			affirmed(reUrgentWord),
			anyOf(`\basap\b`, `\bau\s+plus\s+vite\b`, `\btout\s+de\s+suite\b`),
		),
	},
	{
		name:     "high",
		priority: model.PriorityHigh,
		match: either(
			affirmed(reImportantWord),
			anyOf(`\bhaute\s+priorite\b`, `\bpriorite\s+haute\b`, `\bprioritaire\b`),
		),
	},
	{
		name:     "low",
		priority: model.PriorityLow,
		match: either(
			negated(reUrgentWord),
			negated(reImportantWord),
			anyOf(`\b(basse|faible)\s+priorite\b`, `\bpriorite\s+(basse|faible)\b`, `\bquand\s+j'?ai\s+le\s+temps\b`),
		),
	},
	{
		name:     "medium",
		priority: model.PriorityMedium,
		match:    anyOf(`\bpriorite\s+(normale|moyenne)\b`, `\b(normale|moyenne)\s+priorite\b`),
	},
}

// affirmed matches when re occurs at least once without a negation right before it.
func affirmed(re *regexp.Regexp) func(string) bool {
	return func(text string) bool {
		for _, loc := range re.FindAllStringIndex(text, -1) {
			if !reNegation.MatchString(text[:loc[0]]) {
				return true
			}
		}
		return false
	}
}

// negated matches when re occurs right after a negation ("pas urgent").
func negated(re *regexp.Regexp) func(string) bool {
	return func(text string) bool {
		for _, loc := range re.FindAllStringIndex(text, -1) {
			if reNegation.MatchString(text[:loc[0]]) {
				return true
			}
		}
		return false
	}
}

func either(preds ...func(string) bool) func(string) bool {
	return func(text string) bool {
		for _, p := range preds {
			if p(text) {
				return true
			}
		}
		return false
	}
}

// ExtractPriority returns the priority of the first matching rule and whether
// the message stated one. Without a cue the priority is MEDIUM, not explicit.
// text must already be normalized.
func ExtractPriority(text string) (model.Priority, bool) {
	for _, rule := range priorityRules {
		if rule.match(text) {
			return rule.priority, true
		}
	}
	return model.PriorityMedium, false
}
