package sqlite

import (
	"strings"

	repo "productivity-assistant/internal/workspace/repository"
)

// ownerConditions selects every task of the owner's organization, or the
// user's own personal tasks when there is no organization.
func ownerConditions(o repo.Owner) ([]string, []any) {
	if o.OrganizationID != "" {
		return []string{"organization_id = ?"}, []any{o.OrganizationID}
	}
	return []string{"user_id = ?", "organization_id = ''"}, []any{o.UserID}
}

// buildOneQuery builds the WHERE clause + args matching one visible task.
func buildOneQuery(o repo.Owner, id string) (string, []any) {
	conditions, args := ownerConditions(o)
	conditions = append([]string{"id = ?"}, conditions...)
	return strings.Join(conditions, " AND "), append([]any{id}, args...)
}

// buildListQuery builds the full WHERE + ORDER + LIMIT clause for ListTasks.
func (r *implRepository) buildListQuery(opt repo.ListTasksOptions) (string, []any) {
	conditions, args := ownerConditions(opt.Owner)

	if opt.DueOn != nil {
		conditions = append(conditions, "due_date = ?")
		args = append(args, r.formatDate(*opt.DueOn))
	}
	if opt.Status != "" {
		conditions = append(conditions, "status = ?")
		args = append(args, string(opt.Status))
	}

	parts := []string{"WHERE " + strings.Join(conditions, " AND ")}

	orderBy := opt.OrderBy
	if orderBy == "" {
		orderBy = "due_time IS NULL, due_time, created_at"
	}
	parts = append(parts, "ORDER BY "+orderBy)

	if opt.Limit > 0 {
		parts = append(parts, "LIMIT ?")
		args = append(args, opt.Limit)
	}
	return strings.Join(parts, " "), args
}

// buildCountQuery builds the WHERE clause + args for CountTasks.
func (r *implRepository) buildCountQuery(opt repo.CountTasksOptions) (string, []any) {
	conditions, args := ownerConditions(opt.Owner)

	if opt.Status != "" {
		conditions = append(conditions, "status = ?")
		args = append(args, string(opt.Status))
	}
	if opt.CreatedFrom != nil {
		conditions = append(conditions, "created_at >= ?")
		args = append(args, opt.CreatedFrom.UnixMilli())
	}
	if opt.CompletedFrom != nil {
		conditions = append(conditions, "completed_at IS NOT NULL AND completed_at >= ?")
		args = append(args, opt.CompletedFrom.UnixMilli())
	}
	if opt.DueBefore != nil {
		conditions = append(conditions, "due_date IS NOT NULL AND due_date < ?")
		args = append(args, r.formatDate(*opt.DueBefore))
	}
	return strings.Join(conditions, " AND "), args
}
