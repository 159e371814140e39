package usecase

import (
	"fmt"
	"strings"
	"time"

	"productivity-assistant/internal/model"
)

// dayLabel names day relative to today: "aujourd'hui", "demain" or "le 02/05/2024".
func (uc *implUseCase) dayLabel(day, today time.Time) string {
	switch {
	case uc.dates.SameDay(day, today):
		return labelToday
	case uc.dates.SameDay(day, uc.dates.AddDays(today, 1)):
		return labelTomorrow
	}
	return labelDayPrefix + day.In(uc.dates.Location()).Format(displayDateLayout)
}

func (uc *implUseCase) taskCreatedText(task model.Task, today time.Time) string {
	var b strings.Builder
	fmt.Fprintf(&b, msgTaskCreated, task.Title)
	if task.DueDate != nil {
		b.WriteString(labelDueDatePrefix + uc.dayLabel(*task.DueDate, today))
	}
	if task.DueTime != nil {
		b.WriteString(labelTimePrefix + task.DueTime.String())
	}
	if task.Priority != model.PriorityMedium {
		fmt.Fprintf(&b, labelPriority, priorityLabels[task.Priority])
	}
	b.WriteString(".")
	return b.String()
}

func (uc *implUseCase) eventCreatedText(event model.Event, today time.Time) string {
	text := fmt.Sprintf(msgEventCreated, event.Title, uc.dayLabel(event.StartsAt, today), event.StartsAt.Format("15:04")) + "."
	if event.CalendarLink != "" {
		text += "\n" + fmt.Sprintf(msgCalendarLink, event.CalendarLink)
	}
	return text
}

func goalCreatedText(goal model.Goal) string {
	text := fmt.Sprintf(msgGoalCreated, goal.Title)
	if goal.TargetDate != nil {
		text += fmt.Sprintf(labelGoalDeadline, goal.TargetDate.Format(displayDateLayout))
	}
	return text + "."
}

func noteCreatedText(note model.Note) string {
	return fmt.Sprintf(msgNoteCreated, note.Title)
}

func (uc *implUseCase) tasksText(tasks []model.Task, day, today time.Time) string {
	label := uc.dayLabel(day, today)
	if len(tasks) == 0 {
		return fmt.Sprintf(msgNoTasks, label)
	}

	var b strings.Builder
	fmt.Fprintf(&b, msgTasksHeader, len(tasks), label)
	for _, t := range tasks {
		b.WriteString("\n• " + t.Title)
		if t.DueTime != nil {
			b.WriteString(" (" + t.DueTime.String() + ")")
		}
	}
	return b.String()
}

func statsText(stats model.ProductivityStats) string {
	text := fmt.Sprintf(msgStats, stats.TasksCompletedThisWeek, stats.ProductivityScore)
	if stats.PendingTasks > 0 {
		text += " " + fmt.Sprintf(msgStatsBacklog, stats.PendingTasks, stats.OverdueTasks)
	}
	return text
}
