package telegram

const (
	LogPrefixHandleWebhook = "internal.chatbot.delivery.telegram.HandleWebhook"

	userIDFormat = "telegram_%d"

	commandStart = "/start"
	commandHelp  = "/help"
	commandReset = "/reset"

	statusAccepted = "accepted"
	statusIgnored  = "ignored"
)

const (
	msgWelcome = "👋 Bienvenue ! Je suis votre assistant de productivité.\n\n" +
		"Écrivez-moi naturellement et je créerai vos tâches, événements, objectifs et notes."
	msgHelpHeader = "Quelques exemples :"
	msgReset      = "🧹 Historique de conversation effacé."
	msgFailure    = "Une erreur est survenue lors du traitement de votre demande. Veuillez réessayer."
	errorPrefix   = "⚠️ "
	bullet        = "• "
)
