package parser

import "productivity-assistant/internal/chatbot"

// IntentRule maps a keyword predicate to an intent.
type IntentRule struct {
	Name   string
	Intent chatbot.Intent
	Match  func(text string) bool
}

// intentRules are evaluated top to bottom and the first match wins.
// Explicit creation verbs beat queries, and event nouns come last because
// "reunion" or "rdv" often show up inside the title of a task.
var intentRules = []IntentRule{
	{
		Name:   "create-task",
		Intent: chatbot.IntentCreateTask,
		Match: anyOf(
			`\b(creer|cree|ajouter|ajoute|nouvelle)\s+(une\s+)?taches?\b`,
			`\btaches?\s*:`,
			`\brappelle[- ]moi\b`,
		),
	},
	{
		Name:   "create-goal",
		Intent: chatbot.IntentCreateGoal,
		Match: anyOf(
			`\b(definir|fixer|creer|ajouter)\s+(un\s+|mon\s+)?(nouvel\s+)?objectif\b`,
			`\bnouvel\s+objectif\b`,
			`\bobjectif\s*:`,
		),
	},
	{
		Name:   "create-note",
		Intent: chatbot.IntentCreateNote,
		Match: anyOf(
			`\bnote\s*:`,
			`\b(prendre|creer|ajouter)\s+(une\s+)?note\b`,
			`\bnoter\s+que\b`,
		),
	},
	{
		Name:   "query-stats",
		Intent: chatbot.IntentQueryStats,
		Match: anyOf(
			`\bcombien\s+de\s+taches\b.*\b(completees?|terminees?|finies?|faites?|accomplies?)\b`,
			`\bstatistiques?\b`,
			`\bstats\b`,
			`\bproductivite\b`,
		),
	},
	{
		Name:   "query-tasks",
		Intent: chatbot.IntentQueryTasks,
		Match: anyOf(
			`\bquelles?\s+sont\s+mes\s+taches\b`,
			`\bmes\s+taches\b`,
			`\bliste\s+des\s+taches\b`,
			`\bqu'?est[- ]ce\s+que\s+(j'?ai|je\s+dois)\s+(a\s+)?faire\b`,
		),
	},
	{
		Name:   "create-event",
		Intent: chatbot.IntentCreateEvent,
		Match: anyOf(
			`\brdv\b`,
			`\brendez[- ]vous\b`,
			`\breunions?\b`,
			`\bevenements?\b`,
		),
	},
}

// IntentRules returns the classifier rules in evaluation order.
func IntentRules() []IntentRule {
	out := make([]IntentRule, len(intentRules))
	copy(out, intentRules)
	return out
}

// ClassifyIntent returns the intent of the first matching rule, or IntentUnknown.
// text must already be normalized.
func ClassifyIntent(text string) chatbot.Intent {
	for _, rule := range intentRules {
		if rule.Match(text) {
			return rule.Intent
		}
	}
	return chatbot.IntentUnknown
}
