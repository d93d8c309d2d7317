package task

import (
	"context"
	"log"
	"strings"
	"time"

	domain "github.com/example/team-task-manager/domain/task"
	"github.com/example/team-task-manager/events"
	"github.com/go-monolith/mono"
)

// createTask handles the create-task service request. The blank-title check
// lives here, before an id is assigned; assignee and creator ids are
// deliberately not validated against the user directory.
func (m *TaskModule) createTask(_ context.Context, req CreateTaskRequest, _ *mono.Msg) (TaskResponse, error) {
	if strings.TrimSpace(req.Title) == "" {
		return TaskResponse{}, domain.ErrEmptyTitle
	}

	newTask := &domain.Task{
		Title:            req.Title,
		Description:      req.Description,
		Status:           domain.StatusToDo,
		Priority:         req.Priority,
		AssignedToUserID: req.AssignedToUserID,
		CreatedByUserID:  req.CreatedByUserID,
		DueDate:          req.DueDate,
	}
	m.repo.Add(newTask)

	if m.eventBus != nil {
		event := events.TaskCreatedEvent{
			TaskID:           newTask.ID,
			Title:            newTask.Title,
			AssignedToUserID: newTask.AssignedToUserID,
			CreatedByUserID:  newTask.CreatedByUserID,
			CreatedAt:        newTask.CreatedDate,
		}
		if err := events.TaskCreatedV1.Publish(m.eventBus, event, nil); err != nil {
			// Event publishing is best-effort; log but don't fail the operation
			log.Printf("[task] Warning: failed to publish TaskCreated event for task %d: %v", newTask.ID, err)
		}
	}

	return toTaskResponse(newTask), nil
}

// getTask handles the get-task service request. A missing id is an empty
// result, never an error.
func (m *TaskModule) getTask(_ context.Context, req GetTaskRequest, _ *mono.Msg) (GetTaskResponse, error) {
	t, found := m.repo.FindByID(req.TaskID)
	if !found {
		return GetTaskResponse{Found: false}, nil
	}
	resp := toTaskResponse(t)
	return GetTaskResponse{Task: &resp, Found: true}, nil
}

// listTasks handles the list-tasks service request.
func (m *TaskModule) listTasks(_ context.Context, req ListTasksRequest, _ *mono.Msg) (ListTasksResponse, error) {
	var tasks []*domain.Task
	if req.AssignedToUserID != nil {
		tasks = m.repo.FindByUser(*req.AssignedToUserID)
	} else {
		tasks = m.repo.FindAll()
	}
	return toListResponse(tasks), nil
}

// listTasksByStatus handles the list-tasks-by-status service request.
func (m *TaskModule) listTasksByStatus(_ context.Context, req ListByStatusRequest, _ *mono.Msg) (ListTasksResponse, error) {
	return toListResponse(m.repo.FindByStatus(req.Status)), nil
}

// listTasksByPriority handles the list-tasks-by-priority service request.
// Results are ordered by due date ascending, undated tasks last.
func (m *TaskModule) listTasksByPriority(_ context.Context, req ListByPriorityRequest, _ *mono.Msg) (ListTasksResponse, error) {
	priority := req.Priority
	tasks := Search(m.repo.FindAll(), SearchOptions{
		Priority: &priority,
		SortBy:   SortByDueDateAsc,
	}, time.Now())
	return toListResponse(tasks), nil
}

// listOverdueTasks handles the list-overdue-tasks service request.
func (m *TaskModule) listOverdueTasks(_ context.Context, _ ListOverdueRequest, _ *mono.Msg) (ListTasksResponse, error) {
	now := time.Now()
	var overdue []*domain.Task
	for _, t := range m.repo.FindAll() {
		if t.IsOverdue(now) {
			overdue = append(overdue, t)
		}
	}
	return toListResponse(overdue), nil
}

// listStarredTasks handles the list-starred-tasks service request.
func (m *TaskModule) listStarredTasks(_ context.Context, _ ListStarredRequest, _ *mono.Msg) (ListTasksResponse, error) {
	var starred []*domain.Task
	for _, t := range m.repo.FindAll() {
		if t.IsStarred {
			starred = append(starred, t)
		}
	}
	return toListResponse(starred), nil
}

// updateTask handles the update-task service request. It carries the
// repository's update semantics: an unknown id is a silent no-op reported
// through the Updated flag, not an error.
func (m *TaskModule) updateTask(_ context.Context, req UpdateTaskRequest, _ *mono.Msg) (UpdateTaskResponse, error) {
	if _, found := m.repo.FindByID(req.TaskID); !found {
		return UpdateTaskResponse{Updated: false}, nil
	}

	m.repo.Update(&domain.Task{
		ID:               req.TaskID,
		Title:            req.Title,
		Description:      req.Description,
		Status:           req.Status,
		Priority:         req.Priority,
		AssignedToUserID: req.AssignedToUserID,
		IsStarred:        req.IsStarred,
		DueDate:          req.DueDate,
	})

	t, _ := m.repo.FindByID(req.TaskID)
	resp := toTaskResponse(t)
	return UpdateTaskResponse{Task: &resp, Updated: true}, nil
}

// updateStatus handles the update-status service request. Single-task status
// changes have no terminal-state restriction; only bulk updates treat Done as
// terminal.
func (m *TaskModule) updateStatus(_ context.Context, req UpdateStatusRequest, _ *mono.Msg) (TaskResponse, error) {
	t, found := m.repo.FindByID(req.TaskID)
	if !found {
		return TaskResponse{}, &domain.NotFoundError{ID: req.TaskID}
	}

	oldStatus := t.Status
	t.Status = req.NewStatus
	m.repo.Update(t)
	m.emitStatusChanged(t.ID, oldStatus, req.NewStatus)

	return toTaskResponse(t), nil
}

// deleteTask handles the delete-task service request. Deleting an absent id
// reports Deleted=false and changes nothing.
func (m *TaskModule) deleteTask(_ context.Context, req DeleteTaskRequest, _ *mono.Msg) (DeleteTaskResponse, error) {
	deleted := m.repo.Delete(req.TaskID)

	if deleted && m.eventBus != nil {
		event := events.TaskDeletedEvent{
			TaskID:    req.TaskID,
			DeletedAt: time.Now(),
		}
		if err := events.TaskDeletedV1.Publish(m.eventBus, event, nil); err != nil {
			log.Printf("[task] Warning: failed to publish TaskDeleted event for task %d: %v", req.TaskID, err)
		}
	}

	return DeleteTaskResponse{Deleted: deleted}, nil
}

// starTask handles the star-task service request.
func (m *TaskModule) starTask(_ context.Context, req StarTaskRequest, _ *mono.Msg) (TaskResponse, error) {
	return m.setStarred(req.TaskID, true)
}

// unstarTask handles the unstar-task service request.
func (m *TaskModule) unstarTask(_ context.Context, req StarTaskRequest, _ *mono.Msg) (TaskResponse, error) {
	return m.setStarred(req.TaskID, false)
}

func (m *TaskModule) setStarred(taskID int, starred bool) (TaskResponse, error) {
	t, found := m.repo.FindByID(taskID)
	if !found {
		return TaskResponse{}, &domain.NotFoundError{ID: taskID}
	}
	t.IsStarred = starred
	m.repo.Update(t)
	return toTaskResponse(t), nil
}

// searchTasks handles the search-tasks service request.
func (m *TaskModule) searchTasks(_ context.Context, req SearchTasksRequest, _ *mono.Msg) (ListTasksResponse, error) {
	tasks := Search(m.repo.FindAll(), req.Options, time.Now())
	return toListResponse(tasks), nil
}

// bulkUpdateStatus handles the bulk-update-status service request.
//
// Not atomic: ids are processed in the given order and the first failure
// (unknown id, or reverting a Done task) stops the run, leaving earlier
// updates in place. UpdatedCount reports how many ids were applied.
func (m *TaskModule) bulkUpdateStatus(_ context.Context, req BulkUpdateStatusRequest, _ *mono.Msg) (BulkUpdateStatusResponse, error) {
	if len(req.TaskIDs) == 0 {
		return BulkUpdateStatusResponse{}, domain.ErrNoTaskIDs
	}

	updated := 0
	for _, id := range req.TaskIDs {
		t, found := m.repo.FindByID(id)
		if !found {
			return BulkUpdateStatusResponse{UpdatedCount: updated}, &domain.NotFoundError{ID: id}
		}
		if t.Status == domain.StatusDone && req.NewStatus != domain.StatusDone {
			return BulkUpdateStatusResponse{UpdatedCount: updated}, &domain.IllegalTransitionError{ID: id}
		}

		oldStatus := t.Status
		t.Status = req.NewStatus
		m.repo.Update(t)
		m.emitStatusChanged(t.ID, oldStatus, req.NewStatus)
		updated++
	}

	return BulkUpdateStatusResponse{UpdatedCount: updated}, nil
}

// getReport handles the get-report service request. Assignee names are
// resolved through the user directory; a dangling assignee id renders as
// "unknown user" rather than erroring.
func (m *TaskModule) getReport(ctx context.Context, _ GetReportRequest, _ *mono.Msg) (ReportResponse, error) {
	report := BuildReport(m.repo.FindAll(), time.Now())

	resp := ReportResponse{
		Total:       report.Total,
		Todo:        report.Todo,
		InProgress:  report.InProgress,
		Testing:     report.Testing,
		Done:        report.Done,
		Low:         report.Low,
		Medium:      report.Medium,
		High:        report.High,
		Critical:    report.Critical,
		Overdue:     report.Overdue,
		Progress:    report.Progress,
		TasksByUser: make([]ReportUserEntry, 0, len(report.TasksByUser)),
	}

	for _, entry := range report.TasksByUser {
		name := "unknown user"
		if m.userPort != nil {
			if u, err := m.userPort.GetUser(ctx, entry.UserID); err == nil && u != nil {
				name = u.Name
			}
		}
		resp.TasksByUser = append(resp.TasksByUser, ReportUserEntry{
			UserID:   entry.UserID,
			UserName: name,
			Count:    entry.Count,
		})
	}

	return resp, nil
}

func (m *TaskModule) emitStatusChanged(taskID int, oldStatus, newStatus domain.Status) {
	if m.eventBus == nil {
		return
	}
	event := events.TaskStatusChangedEvent{
		TaskID:    taskID,
		OldStatus: oldStatus.String(),
		NewStatus: newStatus.String(),
		ChangedAt: time.Now(),
	}
	if err := events.TaskStatusChangedV1.Publish(m.eventBus, event, nil); err != nil {
		log.Printf("[task] Warning: failed to publish TaskStatusChanged event for task %d: %v", taskID, err)
	}
}

// toTaskResponse converts a domain Task to a TaskResponse.
func toTaskResponse(t *domain.Task) TaskResponse {
	return TaskResponse{
		ID:               t.ID,
		Title:            t.Title,
		Description:      t.Description,
		Status:           t.Status,
		Priority:         t.Priority,
		CreatedDate:      t.CreatedDate,
		DueDate:          t.DueDate,
		AssignedToUserID: t.AssignedToUserID,
		CreatedByUserID:  t.CreatedByUserID,
		IsStarred:        t.IsStarred,
	}
}

func toListResponse(tasks []*domain.Task) ListTasksResponse {
	resp := ListTasksResponse{
		Tasks: make([]TaskResponse, 0, len(tasks)),
		Total: len(tasks),
	}
	for _, t := range tasks {
		resp.Tasks = append(resp.Tasks, toTaskResponse(t))
	}
	return resp
}
