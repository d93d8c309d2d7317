package task

import (
	"context"
	"encoding/json"
	"fmt"

	domain "github.com/example/team-task-manager/domain/task"
	"github.com/go-monolith/mono"
	"github.com/go-monolith/mono/pkg/helper"
)

// taskAdapter wraps ServiceContainer for type-safe cross-module communication.
// This is the adapter that implements the TaskPort interface.
type taskAdapter struct {
	container mono.ServiceContainer
}

// NewTaskAdapter creates a new adapter for task services.
// container is the ServiceContainer from the task module received via
// SetDependencyServiceContainer.
func NewTaskAdapter(container mono.ServiceContainer) TaskPort {
	if container == nil {
		panic("task adapter requires non-nil ServiceContainer")
	}
	return &taskAdapter{container: container}
}

func (a *taskAdapter) call(ctx context.Context, service string, req, resp any) error {
	if err := helper.CallRequestReplyService(
		ctx,
		a.container,
		service,
		json.Marshal,
		json.Unmarshal,
		req,
		&resp,
	); err != nil {
		return fmt.Errorf("%s service call failed: %w", service, err)
	}
	return nil
}

// CreateTask creates a new task via the create-task service.
func (a *taskAdapter) CreateTask(ctx context.Context, req *CreateTaskRequest) (*TaskResponse, error) {
	var resp TaskResponse
	if err := a.call(ctx, "create-task", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// GetTask retrieves a task by id via the get-task service. A missing task
// returns nil, not an error.
func (a *taskAdapter) GetTask(ctx context.Context, taskID int) (*TaskResponse, error) {
	var resp GetTaskResponse
	if err := a.call(ctx, "get-task", &GetTaskRequest{TaskID: taskID}, &resp); err != nil {
		return nil, err
	}
	if !resp.Found {
		return nil, nil
	}
	return resp.Task, nil
}

// ListTasks lists all tasks, optionally restricted to one assignee.
func (a *taskAdapter) ListTasks(ctx context.Context, assignedToUserID *int) (*ListTasksResponse, error) {
	var resp ListTasksResponse
	req := ListTasksRequest{AssignedToUserID: assignedToUserID}
	if err := a.call(ctx, "list-tasks", &req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// ListTasksByStatus lists tasks in the given status.
func (a *taskAdapter) ListTasksByStatus(ctx context.Context, status domain.Status) (*ListTasksResponse, error) {
	var resp ListTasksResponse
	if err := a.call(ctx, "list-tasks-by-status", &ListByStatusRequest{Status: status}, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// ListTasksByPriority lists tasks with the given priority, due date ascending.
func (a *taskAdapter) ListTasksByPriority(ctx context.Context, priority domain.Priority) (*ListTasksResponse, error) {
	var resp ListTasksResponse
	if err := a.call(ctx, "list-tasks-by-priority", &ListByPriorityRequest{Priority: priority}, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// ListOverdueTasks lists tasks whose due date has passed and are not Done.
func (a *taskAdapter) ListOverdueTasks(ctx context.Context) (*ListTasksResponse, error) {
	var resp ListTasksResponse
	if err := a.call(ctx, "list-overdue-tasks", &ListOverdueRequest{}, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// ListStarredTasks lists starred tasks.
func (a *taskAdapter) ListStarredTasks(ctx context.Context) (*ListTasksResponse, error) {
	var resp ListTasksResponse
	if err := a.call(ctx, "list-starred-tasks", &ListStarredRequest{}, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// UpdateTask overwrites a task's mutable fields via the update-task service.
func (a *taskAdapter) UpdateTask(ctx context.Context, req *UpdateTaskRequest) (*UpdateTaskResponse, error) {
	var resp UpdateTaskResponse
	if err := a.call(ctx, "update-task", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// UpdateTaskStatus changes a single task's status via the update-status
// service.
func (a *taskAdapter) UpdateTaskStatus(ctx context.Context, taskID int, newStatus domain.Status) (*TaskResponse, error) {
	var resp TaskResponse
	req := UpdateStatusRequest{TaskID: taskID, NewStatus: newStatus}
	if err := a.call(ctx, "update-status", &req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// DeleteTask deletes a task via the delete-task service and reports whether
// a removal occurred.
func (a *taskAdapter) DeleteTask(ctx context.Context, taskID int) (bool, error) {
	var resp DeleteTaskResponse
	if err := a.call(ctx, "delete-task", &DeleteTaskRequest{TaskID: taskID}, &resp); err != nil {
		return false, err
	}
	return resp.Deleted, nil
}

// StarTask marks a task as starred via the star-task service.
func (a *taskAdapter) StarTask(ctx context.Context, taskID int) (*TaskResponse, error) {
	var resp TaskResponse
	if err := a.call(ctx, "star-task", &StarTaskRequest{TaskID: taskID}, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// UnstarTask clears a task's star via the unstar-task service.
func (a *taskAdapter) UnstarTask(ctx context.Context, taskID int) (*TaskResponse, error) {
	var resp TaskResponse
	if err := a.call(ctx, "unstar-task", &StarTaskRequest{TaskID: taskID}, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// SearchTasks runs a composed search via the search-tasks service.
func (a *taskAdapter) SearchTasks(ctx context.Context, opts SearchOptions) (*ListTasksResponse, error) {
	var resp ListTasksResponse
	if err := a.call(ctx, "search-tasks", &SearchTasksRequest{Options: opts}, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// BulkUpdateStatus applies one status to a set of tasks via the
// bulk-update-status service and returns the number updated.
func (a *taskAdapter) BulkUpdateStatus(ctx context.Context, taskIDs []int, newStatus domain.Status) (int, error) {
	var resp BulkUpdateStatusResponse
	req := BulkUpdateStatusRequest{TaskIDs: taskIDs, NewStatus: newStatus}
	if err := a.call(ctx, "bulk-update-status", &req, &resp); err != nil {
		return resp.UpdatedCount, err
	}
	return resp.UpdatedCount, nil
}

// GetReport fetches the aggregate report via the get-report service.
func (a *taskAdapter) GetReport(ctx context.Context) (*ReportResponse, error) {
	var resp ReportResponse
	if err := a.call(ctx, "get-report", &GetReportRequest{}, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
