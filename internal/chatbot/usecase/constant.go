package usecase

import (
	"productivity-assistant/internal/chatbot"
	"productivity-assistant/internal/model"
)

// Log prefixes
const (
	LogPrefixProcessMessage = "internal.chatbot.usecase.ProcessMessage"
	LogPrefixDispatch       = "internal.chatbot.usecase.dispatch"
)

// Titles used when the message did not name the resource
const (
	DefaultTaskTitle  = "Nouvelle tâche"
	DefaultEventTitle = "Nouvel événement"
	DefaultGoalTitle  = "Nouvel objectif"
	DefaultNoteTitle  = "Nouvelle note"
)

// Event defaults
const (
	defaultEventHour     = 9
	defaultEventDuration = 60 // minutes
)

// User-facing messages
const (
	MsgNotUnderstood = "Je n'ai pas compris votre demande. Voici quelques exemples de ce que je sais faire :"

	MsgOrganizationRequiredTask  = "Une organisation est requise pour créer une tâche."
	MsgOrganizationRequiredEvent = "Une organisation est requise pour créer un événement."
	MsgOrganizationRequiredGoal  = "Une organisation est requise pour créer un objectif."

	msgTaskCreated     = "Tâche « %s » créée"
	msgEventCreated    = "Événement « %s » planifié %s à %s"
	msgGoalCreated     = "Objectif « %s » enregistré"
	msgNoteCreated     = "Note enregistrée : « %s »"
	msgNoTasks         = "Aucune tâche prévue pour %s."
	msgTasksHeader     = "Vous avez %d tâche(s) pour %s :"
	msgStats           = "Cette semaine, vous avez terminé %d tâche(s). Score de productivité : %d/100."
	msgStatsBacklog    = "Tâches en attente : %d, dont %d en retard."
	msgCalendarLink    = "Lien agenda : %s"
	displayDateLayout  = "02/01/2006"
	labelToday         = "aujourd'hui"
	labelTomorrow      = "demain"
	labelDayPrefix     = "le "
	labelDueDatePrefix = " pour "
	labelTimePrefix    = " à "
	labelGoalDeadline  = " (échéance : %s)"
	labelPriority      = " (priorité %s)"
)

var organizationRequired = map[chatbot.Intent]string{
	chatbot.IntentCreateTask:  MsgOrganizationRequiredTask,
	chatbot.IntentCreateEvent: MsgOrganizationRequiredEvent,
	chatbot.IntentCreateGoal:  MsgOrganizationRequiredGoal,
}

// QuickActions are suggested when a message is not understood.
var QuickActions = []string{
	"Créer une tâche : préparer la réunion",
	"Rdv demain à 14h",
	"Définir un objectif : courir 10 km",
	"Note : idées pour le projet",
	"Quelles sont mes tâches aujourd'hui ?",
	"Combien de tâches ai-je complétées cette semaine ?",
}

var priorityLabels = map[model.Priority]string{
	model.PriorityLow:    "basse",
	model.PriorityMedium: "moyenne",
	model.PriorityHigh:   "haute",
	model.PriorityUrgent: "urgente",
}
