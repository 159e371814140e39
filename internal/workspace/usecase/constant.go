package usecase

// Log prefixes
const (
	LogPrefixCreateTask   = "internal.workspace.usecase.CreateTask"
	LogPrefixListTasks    = "internal.workspace.usecase.ListTasks"
	LogPrefixCompleteTask = "internal.workspace.usecase.CompleteTask"
	LogPrefixCreateEvent  = "internal.workspace.usecase.CreateEvent"
	LogPrefixCreateGoal   = "internal.workspace.usecase.CreateGoal"
	LogPrefixCreateNote   = "internal.workspace.usecase.CreateNote"
	LogPrefixStats        = "internal.workspace.usecase.GetProductivityStats"
)

const maxTitleLength = 200
