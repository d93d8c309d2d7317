package task

import (
	"context"
	"time"

	domain "github.com/example/team-task-manager/domain/task"
)

// CreateTaskRequest is the request for creating a task. New tasks always
// start in ToDo.
type CreateTaskRequest struct {
	Title            string          `json:"title"`
	Description      string          `json:"description"`
	Priority         domain.Priority `json:"priority"`
	AssignedToUserID int             `json:"assigned_to_user_id"`
	CreatedByUserID  int             `json:"created_by_user_id"`
	DueDate          *time.Time      `json:"due_date,omitempty"`
}

// GetTaskRequest is the request for getting a task.
type GetTaskRequest struct {
	TaskID int `json:"task_id"`
}

// GetTaskResponse is the response for getting a task. An unknown id yields
// Found=false, not an error.
type GetTaskResponse struct {
	Task  *TaskResponse `json:"task,omitempty"`
	Found bool          `json:"found"`
}

// ListTasksRequest is the request for listing tasks, optionally restricted
// to one assignee.
type ListTasksRequest struct {
	AssignedToUserID *int `json:"assigned_to_user_id,omitempty"`
}

// ListByStatusRequest is the request for listing tasks in a given status.
type ListByStatusRequest struct {
	Status domain.Status `json:"status"`
}

// ListByPriorityRequest is the request for listing tasks with a given
// priority, ordered by due date ascending.
type ListByPriorityRequest struct {
	Priority domain.Priority `json:"priority"`
}

// ListOverdueRequest is the request for listing overdue tasks.
type ListOverdueRequest struct{}

// ListStarredRequest is the request for listing starred tasks.
type ListStarredRequest struct{}

// ListTasksResponse is the response for any task listing.
type ListTasksResponse struct {
	Tasks []TaskResponse `json:"tasks"`
	Total int            `json:"total"`
}

// UpdateTaskRequest is the request for a whole-task update. It carries the
// repository update semantics: an unknown TaskID is a silent no-op.
type UpdateTaskRequest struct {
	TaskID           int             `json:"task_id"`
	Title            string          `json:"title"`
	Description      string          `json:"description"`
	Status           domain.Status   `json:"status"`
	Priority         domain.Priority `json:"priority"`
	AssignedToUserID int             `json:"assigned_to_user_id"`
	IsStarred        bool            `json:"is_starred"`
	DueDate          *time.Time      `json:"due_date,omitempty"`
}

// UpdateTaskResponse is the response for a whole-task update.
type UpdateTaskResponse struct {
	Task    *TaskResponse `json:"task,omitempty"`
	Updated bool          `json:"updated"`
}

// UpdateStatusRequest is the request for a single-task status change.
// Unlike bulk update, a single-task change may revert a Done task.
type UpdateStatusRequest struct {
	TaskID    int           `json:"task_id"`
	NewStatus domain.Status `json:"new_status"`
}

// DeleteTaskRequest is the request for deleting a task.
type DeleteTaskRequest struct {
	TaskID int `json:"task_id"`
}

// DeleteTaskResponse is the response for deleting a task.
type DeleteTaskResponse struct {
	Deleted bool `json:"deleted"`
}

// StarTaskRequest is the request for starring or unstarring a task.
type StarTaskRequest struct {
	TaskID int `json:"task_id"`
}

// SearchTasksRequest is the request for a composed search.
type SearchTasksRequest struct {
	Options SearchOptions `json:"options"`
}

// BulkUpdateStatusRequest is the request for applying one status to a set of
// tasks.
type BulkUpdateStatusRequest struct {
	TaskIDs   []int         `json:"task_ids"`
	NewStatus domain.Status `json:"new_status"`
}

// BulkUpdateStatusResponse is the response for a bulk status update.
type BulkUpdateStatusResponse struct {
	UpdatedCount int `json:"updated_count"`
}

// GetReportRequest is the request for the aggregate report.
type GetReportRequest struct{}

// ReportUserEntry is one per-assignee ranking entry with the assignee's name
// resolved from the user directory ("unknown user" for dangling ids).
type ReportUserEntry struct {
	UserID   int    `json:"user_id"`
	UserName string `json:"user_name"`
	Count    int    `json:"count"`
}

// ReportResponse is the response for the aggregate report.
type ReportResponse struct {
	Total       int               `json:"total"`
	Todo        int               `json:"todo"`
	InProgress  int               `json:"in_progress"`
	Testing     int               `json:"testing"`
	Done        int               `json:"done"`
	Low         int               `json:"low"`
	Medium      int               `json:"medium"`
	High        int               `json:"high"`
	Critical    int               `json:"critical"`
	Overdue     int               `json:"overdue"`
	Progress    float64           `json:"progress"`
	TasksByUser []ReportUserEntry `json:"tasks_by_user"`
}

// TaskResponse is the wire form of a single task.
type TaskResponse struct {
	ID               int             `json:"id"`
	Title            string          `json:"title"`
	Description      string          `json:"description"`
	Status           domain.Status   `json:"status"`
	Priority         domain.Priority `json:"priority"`
	CreatedDate      time.Time       `json:"created_date"`
	DueDate          *time.Time      `json:"due_date,omitempty"`
	AssignedToUserID int             `json:"assigned_to_user_id"`
	CreatedByUserID  int             `json:"created_by_user_id"`
	IsStarred        bool            `json:"is_starred"`
}

// ToDomain converts the wire form back to a domain task.
func (r *TaskResponse) ToDomain() *domain.Task {
	t := &domain.Task{
		ID:               r.ID,
		Title:            r.Title,
		Description:      r.Description,
		Status:           r.Status,
		Priority:         r.Priority,
		CreatedDate:      r.CreatedDate,
		AssignedToUserID: r.AssignedToUserID,
		CreatedByUserID:  r.CreatedByUserID,
		IsStarred:        r.IsStarred,
	}
	if r.DueDate != nil {
		due := *r.DueDate
		t.DueDate = &due
	}
	return t
}

// TaskPort defines the interface for task operations (hexagonal port).
// Driving adapters and dependent modules use it to reach the core domain.
type TaskPort interface {
	CreateTask(ctx context.Context, req *CreateTaskRequest) (*TaskResponse, error)
	GetTask(ctx context.Context, taskID int) (*TaskResponse, error)
	ListTasks(ctx context.Context, assignedToUserID *int) (*ListTasksResponse, error)
	ListTasksByStatus(ctx context.Context, status domain.Status) (*ListTasksResponse, error)
	ListTasksByPriority(ctx context.Context, priority domain.Priority) (*ListTasksResponse, error)
	ListOverdueTasks(ctx context.Context) (*ListTasksResponse, error)
	ListStarredTasks(ctx context.Context) (*ListTasksResponse, error)
	UpdateTask(ctx context.Context, req *UpdateTaskRequest) (*UpdateTaskResponse, error)
	UpdateTaskStatus(ctx context.Context, taskID int, newStatus domain.Status) (*TaskResponse, error)
	DeleteTask(ctx context.Context, taskID int) (bool, error)
	StarTask(ctx context.Context, taskID int) (*TaskResponse, error)
	UnstarTask(ctx context.Context, taskID int) (*TaskResponse, error)
	SearchTasks(ctx context.Context, opts SearchOptions) (*ListTasksResponse, error)
	BulkUpdateStatus(ctx context.Context, taskIDs []int, newStatus domain.Status) (int, error)
	GetReport(ctx context.Context) (*ReportResponse, error)
}
