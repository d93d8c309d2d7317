package task

import (
	"testing"
	"time"

	domain "github.com/example/team-task-manager/domain/task"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildReport_Counts(t *testing.T) {
	now := time.Now()
	tasks := []*domain.Task{
		{ID: 1, Status: domain.StatusToDo, Priority: domain.PriorityHigh, AssignedToUserID: 3},
		{ID: 2, Status: domain.StatusToDo, Priority: domain.PriorityHigh, AssignedToUserID: 3},
		{ID: 3, Status: domain.StatusInProgress, Priority: domain.PriorityLow, AssignedToUserID: 4},
	}

	report := BuildReport(tasks, now)

	assert.Equal(t, 3, report.Total)
	assert.Equal(t, 2, report.Todo)
	assert.Equal(t, 1, report.InProgress)
	assert.Equal(t, 0, report.Testing)
	assert.Equal(t, 0, report.Done)
	assert.Equal(t, 2, report.High)
	assert.Equal(t, 1, report.Low)
	assert.Equal(t, 0, report.Overdue)
}

func TestBuildReport_OverdueExcludesDone(t *testing.T) {
	now := time.Now()
	past := now.AddDate(0, 0, -1)
	tasks := []*domain.Task{
		{ID: 1, Status: domain.StatusToDo, DueDate: &past},
		{ID: 2, Status: domain.StatusDone, DueDate: &past},
		{ID: 3, Status: domain.StatusInProgress},
	}

	report := BuildReport(tasks, now)
	assert.Equal(t, 1, report.Overdue, "Done tasks are never overdue")
}

func TestBuildReport_TasksByUserRankedByCountDesc(t *testing.T) {
	now := time.Now()
	tasks := []*domain.Task{
		{ID: 1, AssignedToUserID: 4},
		{ID: 2, AssignedToUserID: 3},
		{ID: 3, AssignedToUserID: 3},
		{ID: 4, AssignedToUserID: 7},
	}

	report := BuildReport(tasks, now)
	require.Len(t, report.TasksByUser, 3)

	assert.Equal(t, TasksPerUser{UserID: 3, Count: 2}, report.TasksByUser[0])
	// Users 4 and 7 tie at one task each; first-seen order breaks the tie.
	assert.Equal(t, TasksPerUser{UserID: 4, Count: 1}, report.TasksByUser[1])
	assert.Equal(t, TasksPerUser{UserID: 7, Count: 1}, report.TasksByUser[2])
}

func TestBuildReport_Progress(t *testing.T) {
	now := time.Now()

	empty := BuildReport(nil, now)
	assert.Equal(t, 0, empty.Total)
	assert.Equal(t, 0.0, empty.Progress, "empty store must not divide by zero")

	tasks := []*domain.Task{
		{ID: 1, Status: domain.StatusDone},
		{ID: 2, Status: domain.StatusToDo},
		{ID: 3, Status: domain.StatusDone},
		{ID: 4, Status: domain.StatusTesting},
	}
	report := BuildReport(tasks, now)
	assert.InDelta(t, 50.0, report.Progress, 0.001)
}
