package llmparser

// Log prefixes
const (
	LogPrefixParse = "internal.chatbot.llmparser.Parse"
)

// PromptSystem is formatted with today's date (YYYY-MM-DD) and its French weekday.
const PromptSystem = `Tu es l'assistant de productivité d'une application d'organisation personnelle et d'équipe.
Analyse le message de l'utilisateur (en français) et extrais son intention.

Date du jour : %s (%s).

Intentions possibles :
- CREATE_TASK : créer une tâche, un rappel, une chose à faire
- CREATE_EVENT : planifier un rendez-vous, une réunion, un événement
- CREATE_GOAL : définir un objectif
- CREATE_NOTE : prendre une note
- QUERY_TASKS : consulter ses tâches
- QUERY_STATS : consulter ses statistiques de productivité
- UNKNOWN : tout le reste

Réponds uniquement avec un objet JSON de la forme :
{
  "intent": "CREATE_TASK|CREATE_EVENT|CREATE_GOAL|CREATE_NOTE|QUERY_TASKS|QUERY_STATS|UNKNOWN",
  "date": "YYYY-MM-DD ou null",
  "time": "HH:MM ou null",
  "priority": "LOW|MEDIUM|HIGH|URGENT",
  "title": "titre court ou null",
  "description": "détails ou null",
  "confidence": 0.0-1.0
}

Les dates relatives (demain, vendredi, le 15) sont à résoudre par rapport à la date du jour.`

// Warning messages
const (
	WarnMsgLLMCallFailed = "LLM call failed, falling back to rules"
	WarnMsgDecodeFailed  = "Failed to decode LLM reply, falling back to rules"
)

// Wire formats of the reply
const (
	replyDateFormat = "2006-01-02"
	percentCeiling  = 100.0
)
