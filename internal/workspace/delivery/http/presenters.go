package http

import (
	"time"

	"productivity-assistant/internal/model"
	"productivity-assistant/internal/workspace"
	"productivity-assistant/pkg/response"
)

// --- Request DTOs ---

type listTasksReq struct {
	Date   string `form:"date"`
	Status string `form:"status" binding:"omitempty,oneof=PENDING COMPLETED"`
	Limit  int    `form:"limit"  binding:"omitempty,min=1,max=100"`

	dueOn *time.Time // parsed from Date
}

func (r listTasksReq) validate() error { return nil }

func (r listTasksReq) toInput() workspace.ListTasksInput {
	return workspace.ListTasksInput{
		DueOn:  r.dueOn,
		Status: model.TaskStatus(r.Status),
		Limit:  r.Limit,
	}
}

// --- Response DTOs ---

type taskResp struct {
	ID             string             `json:"id"`
	OrganizationID string             `json:"organization_id,omitempty"`
	Title          string             `json:"title"`
	Description    string             `json:"description,omitempty"`
	DueDate        *response.Date     `json:"due_date,omitempty"`
	DueTime        string             `json:"due_time,omitempty"`
	Priority       string             `json:"priority"`
	Status         string             `json:"status"`
	CreatedAt      response.DateTime  `json:"created_at"`
	CompletedAt    *response.DateTime `json:"completed_at,omitempty"`
}

func newTaskResp(t model.Task) taskResp {
	resp := taskResp{
		ID:             t.ID,
		OrganizationID: t.OrganizationID,
		Title:          t.Title,
		Description:    t.Description,
		Priority:       string(t.Priority),
		Status:         string(t.Status),
		CreatedAt:      response.DateTime(t.CreatedAt),
	}
	if t.DueDate != nil {
		d := response.Date(*t.DueDate)
		resp.DueDate = &d
	}
	if t.DueTime != nil {
		resp.DueTime = t.DueTime.String()
	}
	if t.CompletedAt != nil {
		c := response.DateTime(*t.CompletedAt)
		resp.CompletedAt = &c
	}
	return resp
}

type listTasksResp struct {
	Items []taskResp `json:"items"`
	Total int        `json:"total"`
}

func (h *handler) newListTasksResp(tasks []model.Task) listTasksResp {
	items := make([]taskResp, len(tasks))
	for i, t := range tasks {
		items[i] = newTaskResp(t)
	}
	return listTasksResp{Items: items, Total: len(items)}
}

type completeTaskResp struct {
	Task taskResp `json:"task"`
}

func (h *handler) newCompleteTaskResp(t model.Task) completeTaskResp {
	return completeTaskResp{Task: newTaskResp(t)}
}

type statsResp struct {
	TasksCompletedThisWeek int `json:"tasks_completed_this_week"`
	TasksCreatedThisWeek   int `json:"tasks_created_this_week"`
	PendingTasks           int `json:"pending_tasks"`
	OverdueTasks           int `json:"overdue_tasks"`
	ProductivityScore      int `json:"productivity_score"`
}

func (h *handler) newStatsResp(s model.ProductivityStats) statsResp {
	return statsResp{
		TasksCompletedThisWeek: s.TasksCompletedThisWeek,
		TasksCreatedThisWeek:   s.TasksCreatedThisWeek,
		PendingTasks:           s.PendingTasks,
		OverdueTasks:           s.OverdueTasks,
		ProductivityScore:      s.ProductivityScore,
	}
}
