package analytics

import (
	"context"
	"testing"
	"time"

	domain "github.com/example/team-task-manager/domain/task"
	"github.com/example/team-task-manager/modules/task"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeTaskPort serves a fixed snapshot; only the methods the analytics module
// uses are implemented.
type fakeTaskPort struct {
	task.TaskPort
	tasks []task.TaskResponse
}

func (f *fakeTaskPort) GetTask(_ context.Context, taskID int) (*task.TaskResponse, error) {
	for i := range f.tasks {
		if f.tasks[i].ID == taskID {
			return &f.tasks[i], nil
		}
	}
	return nil, nil
}

func (f *fakeTaskPort) ListTasks(_ context.Context, assignedToUserID *int) (*task.ListTasksResponse, error) {
	resp := &task.ListTasksResponse{}
	for _, t := range f.tasks {
		if assignedToUserID == nil || t.AssignedToUserID == *assignedToUserID {
			resp.Tasks = append(resp.Tasks, t)
		}
	}
	resp.Total = len(resp.Tasks)
	return resp, nil
}

func newModuleWithTasks(tasks ...task.TaskResponse) *AnalyticsModule {
	m := NewModule()
	m.taskPort = &fakeTaskPort{tasks: tasks}
	return m
}

func TestEvaluateStatusService_UnknownTaskIsInvalid(t *testing.T) {
	m := newModuleWithTasks()

	resp, err := m.evaluateStatus(context.Background(), EvaluateStatusRequest{TaskID: 42}, nil)
	require.NoError(t, err, "an unknown task classifies, it does not error")
	assert.Equal(t, "Invalid", resp.Result)
}

func TestEvaluateStatusService_ClassifiesStoredTask(t *testing.T) {
	m := newModuleWithTasks(task.TaskResponse{ID: 1, Title: "done", Status: domain.StatusDone})

	resp, err := m.evaluateStatus(context.Background(), EvaluateStatusRequest{TaskID: 1}, nil)
	require.NoError(t, err)
	assert.Equal(t, "Completed", resp.Result)
}

func TestPredictDelayRiskService_UnknownTask(t *testing.T) {
	m := newModuleWithTasks()

	resp, err := m.predictDelayRisk(context.Background(), PredictDelayRiskRequest{TaskID: 42}, nil)
	require.NoError(t, err)
	assert.Equal(t, RiskUnknown, resp.Result)
}

func TestUserSummaryService(t *testing.T) {
	past := time.Now().AddDate(0, 0, -1)
	m := newModuleWithTasks(
		task.TaskResponse{ID: 1, Status: domain.StatusDone, AssignedToUserID: 3},
		task.TaskResponse{ID: 2, Status: domain.StatusToDo, AssignedToUserID: 3, DueDate: &past},
		task.TaskResponse{ID: 3, Status: domain.StatusDone, AssignedToUserID: 4},
	)

	resp, err := m.userSummary(context.Background(), UserSummaryRequest{UserID: 3}, nil)
	require.NoError(t, err)
	assert.Equal(t, 1, resp.Summary["Done"])
	assert.Equal(t, 1, resp.Summary["ToDo"])
	assert.Equal(t, 1, resp.Summary["Overdue"])

	empty, err := m.userSummary(context.Background(), UserSummaryRequest{UserID: 99}, nil)
	require.NoError(t, err)
	assert.Equal(t, map[string]int{SummaryKeyNoTasks: 0}, empty.Summary)
}

func TestTeamPerformanceService_EmptyStore(t *testing.T) {
	m := newModuleWithTasks()

	resp, err := m.teamPerformance(context.Background(), TeamPerformanceRequest{}, nil)
	require.NoError(t, err)
	assert.Equal(t, "Nema podataka.", resp.Result)
}
