package llmparser

import (
	"context"
	"time"

	"productivity-assistant/internal/chatbot"
)

// Parse asks the model once to read message. ok is false whenever the reply
// cannot be used: the port failed, no JSON object was found, or it was malformed.
func (p *Parser) Parse(ctx context.Context, message string, history []chatbot.Exchange, today time.Time) (chatbot.ParsedMessage, bool) {
	raw, err := p.llm.Generate(ctx, Prompt(today), message, history)
	if err != nil {
		p.l.Warnf(ctx, "%s: %s: %v", LogPrefixParse, WarnMsgLLMCallFailed, err)
		return chatbot.ParsedMessage{}, false
	}

	msg, err := Decode(raw, today)
	if err != nil {
		p.l.Warnf(ctx, "%s: %s: %v", LogPrefixParse, WarnMsgDecodeFailed, err)
		return chatbot.ParsedMessage{}, false
	}

	p.l.Debugf(ctx, "%s: intent=%s confidence=%.2f", LogPrefixParse, msg.Intent, msg.Confidence)
	return msg, true
}
