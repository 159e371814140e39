package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"productivity-assistant/internal/model"
	repo "productivity-assistant/internal/workspace/repository"
)

const taskColumns = `id, user_id, organization_id, title, description, due_date, due_time, priority, status, created_at, completed_at`

type rowScanner interface {
	Scan(dest ...any) error
}

func (r *implRepository) scanTask(s rowScanner) (model.Task, error) {
	var (
		t           model.Task
		priority    string
		status      string
		dueDate     sql.NullString
		dueTime     sql.NullString
		createdAt   int64
		completedAt sql.NullInt64
	)
	if err := s.Scan(&t.ID, &t.UserID, &t.OrganizationID, &t.Title, &t.Description,
		&dueDate, &dueTime, &priority, &status, &createdAt, &completedAt); err != nil {
		return model.Task{}, err
	}

	t.Priority, _ = model.ParsePriority(priority)
	t.Status = model.TaskStatus(status)
	t.DueDate = r.parseDate(dueDate)
	t.DueTime = parseClock(dueTime)
	t.CreatedAt = r.fromMillis(createdAt)
	if completedAt.Valid {
		at := r.fromMillis(completedAt.Int64)
		t.CompletedAt = &at
	}
	return t, nil
}

// CreateTask inserts a pending task and returns it.
func (r *implRepository) CreateTask(ctx context.Context, opt repo.CreateTaskOptions) (model.Task, error) {
	const query = `
		INSERT INTO tasks (` + taskColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, NULL)
		RETURNING ` + taskColumns

	row := r.db.QueryRowContext(ctx, query,
		r.newID(), opt.Owner.UserID, opt.Owner.OrganizationID, opt.Title, opt.Description,
		r.nullDate(opt.DueDate), nullClock(opt.DueTime), string(opt.Priority),
		string(model.TaskStatusPending), opt.CreatedAt.UnixMilli(),
	)
	t, err := r.scanTask(row)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateTask"), err)
		return model.Task{}, repo.ErrFailedToInsert
	}
	return t, nil
}

// GetOneTask returns the task with the given ID if the owner can see it.
// Returns zero-value Task (ID == "") when not found.
func (r *implRepository) GetOneTask(ctx context.Context, opt repo.GetOneTaskOptions) (model.Task, error) {
	where, args := buildOneQuery(opt.Owner, opt.ID)
	query := fmt.Sprintf(`SELECT %s FROM tasks WHERE %s LIMIT 1`, taskColumns, where)

	t, err := r.scanTask(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return model.Task{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetOneTask"), err)
		return model.Task{}, repo.ErrFailedToGet
	}
	return t, nil
}

// ListTasks returns the owner's tasks matching the filters.
func (r *implRepository) ListTasks(ctx context.Context, opt repo.ListTasksOptions) ([]model.Task, error) {
	mods, args := r.buildListQuery(opt)
	query := fmt.Sprintf(`SELECT %s FROM tasks %s`, taskColumns, mods)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListTasks"), err)
		return nil, repo.ErrFailedToList
	}
	defer rows.Close()

	var tasks []model.Task
	for rows.Next() {
		t, err := r.scanTask(rows)
		if err != nil {
			r.l.Errorf(ctx, "%s scan: %v", r.dsn("ListTasks"), err)
			return nil, repo.ErrFailedToList
		}
		tasks = append(tasks, t)
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "%s rows: %v", r.dsn("ListTasks"), err)
		return nil, repo.ErrFailedToList
	}
	return tasks, nil
}

// CountTasks counts the owner's tasks matching the filters.
func (r *implRepository) CountTasks(ctx context.Context, opt repo.CountTasksOptions) (int, error) {
	mods, args := r.buildCountQuery(opt)
	query := fmt.Sprintf(`SELECT COUNT(*) FROM tasks WHERE %s`, mods)

	var n int
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&n); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CountTasks"), err)
		return 0, repo.ErrFailedToCount
	}
	return n, nil
}

// CompleteTask marks a pending task as completed and returns it.
// Returns zero-value Task when no pending task matched.
func (r *implRepository) CompleteTask(ctx context.Context, opt repo.CompleteTaskOptions) (model.Task, error) {
	where, whereArgs := buildOneQuery(opt.Owner, opt.ID)
	query := fmt.Sprintf(`
		UPDATE tasks
		SET status = ?, completed_at = ?
		WHERE %s AND status = ?
		RETURNING %s`, where, taskColumns)

	args := append([]any{string(model.TaskStatusCompleted), opt.CompletedAt.UnixMilli()}, whereArgs...)
	row := r.db.QueryRowContext(ctx, query, append(args, string(model.TaskStatusPending))...)
	t, err := r.scanTask(row)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Task{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CompleteTask"), err)
		return model.Task{}, repo.ErrFailedToUpdate
	}
	return t, nil
}
