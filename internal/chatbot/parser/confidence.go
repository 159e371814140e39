package parser

import "productivity-assistant/internal/chatbot"

const (
	baseConfidence     = 0.5
	dateWeight         = 0.15
	timeWeight         = 0.15
	priorityWeight     = 0.10
	titleWeight        = 0.15
	maxConfidenceScore = 1.0
)

// Score rates how much of a message the rules understood.
// Unknown intents always score zero.
func Score(msg chatbot.ParsedMessage) float64 {
	if msg.Intent == chatbot.IntentUnknown || msg.Intent == "" {
		return 0
	}
	score := baseConfidence
	if msg.Date != nil {
		score += dateWeight
	}
	if msg.Time != nil {
		score += timeWeight
	}
	if msg.PriorityExplicit {
		score += priorityWeight
	}
	if msg.Title != "" {
		score += titleWeight
	}
	if score > maxConfidenceScore {
		score = maxConfidenceScore
	}
	return score
}
