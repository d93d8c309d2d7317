package analytics

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	domain "github.com/example/team-task-manager/domain/task"
	"github.com/example/team-task-manager/modules/task"
	"github.com/go-monolith/mono"
	"github.com/go-monolith/mono/pkg/helper"
)

// AnalyticsModule exposes the task classifiers as services. It is a pure
// read-only consumer of task snapshots obtained through the task port.
type AnalyticsModule struct {
	taskPort task.TaskPort
}

var _ mono.Module = (*AnalyticsModule)(nil)
var _ mono.ServiceProviderModule = (*AnalyticsModule)(nil)
var _ mono.DependentModule = (*AnalyticsModule)(nil)

func NewModule() *AnalyticsModule {
	return &AnalyticsModule{}
}

func (m *AnalyticsModule) Name() string {
	return "analytics"
}

func (m *AnalyticsModule) Dependencies() []string {
	return []string{"task"}
}

func (m *AnalyticsModule) SetDependencyServiceContainer(dependency string, container mono.ServiceContainer) {
	if dependency == "task" {
		m.taskPort = task.NewTaskAdapter(container)
	}
}

func (m *AnalyticsModule) RegisterServices(container mono.ServiceContainer) error {
	if err := helper.RegisterTypedRequestReplyService(
		container, "evaluate-status", json.Unmarshal, json.Marshal, m.evaluateStatus,
	); err != nil {
		return fmt.Errorf("failed to register evaluate-status service: %w", err)
	}

	if err := helper.RegisterTypedRequestReplyService(
		container, "predict-delay-risk", json.Unmarshal, json.Marshal, m.predictDelayRisk,
	); err != nil {
		return fmt.Errorf("failed to register predict-delay-risk service: %w", err)
	}

	if err := helper.RegisterTypedRequestReplyService(
		container, "user-summary", json.Unmarshal, json.Marshal, m.userSummary,
	); err != nil {
		return fmt.Errorf("failed to register user-summary service: %w", err)
	}

	if err := helper.RegisterTypedRequestReplyService(
		container, "team-performance", json.Unmarshal, json.Marshal, m.teamPerformance,
	); err != nil {
		return fmt.Errorf("failed to register team-performance service: %w", err)
	}

	log.Printf("[analytics] Registered services: evaluate-status, predict-delay-risk, user-summary, team-performance")
	return nil
}

// evaluateStatus handles the evaluate-status service request. An unknown
// task id classifies as "Invalid", not an error.
func (m *AnalyticsModule) evaluateStatus(ctx context.Context, req EvaluateStatusRequest, _ *mono.Msg) (ClassificationResponse, error) {
	t, err := m.lookupTask(ctx, req.TaskID)
	if err != nil {
		return ClassificationResponse{}, err
	}
	return ClassificationResponse{Result: EvaluateTaskStatus(t, time.Now())}, nil
}

// predictDelayRisk handles the predict-delay-risk service request. An
// unknown task id scores as "Nepoznat", not an error.
func (m *AnalyticsModule) predictDelayRisk(ctx context.Context, req PredictDelayRiskRequest, _ *mono.Msg) (ClassificationResponse, error) {
	t, err := m.lookupTask(ctx, req.TaskID)
	if err != nil {
		return ClassificationResponse{}, err
	}
	return ClassificationResponse{Result: PredictDelayRisk(t, time.Now())}, nil
}

// userSummary handles the user-summary service request.
func (m *AnalyticsModule) userSummary(ctx context.Context, req UserSummaryRequest, _ *mono.Msg) (UserSummaryResponse, error) {
	userID := req.UserID
	list, err := m.taskPort.ListTasks(ctx, &userID)
	if err != nil {
		return UserSummaryResponse{}, fmt.Errorf("failed to list tasks for user %d: %w", userID, err)
	}
	return UserSummaryResponse{Summary: SummarizeUserTasks(toDomainTasks(list.Tasks), time.Now())}, nil
}

// teamPerformance handles the team-performance service request.
func (m *AnalyticsModule) teamPerformance(ctx context.Context, _ TeamPerformanceRequest, _ *mono.Msg) (ClassificationResponse, error) {
	list, err := m.taskPort.ListTasks(ctx, nil)
	if err != nil {
		return ClassificationResponse{}, fmt.Errorf("failed to list tasks: %w", err)
	}
	return ClassificationResponse{Result: RateTeamPerformance(toDomainTasks(list.Tasks), time.Now())}, nil
}

// lookupTask fetches a task through the port; a missing task comes back nil
// so the classifiers can apply their absent-task result.
func (m *AnalyticsModule) lookupTask(ctx context.Context, taskID int) (*domain.Task, error) {
	resp, err := m.taskPort.GetTask(ctx, taskID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch task %d: %w", taskID, err)
	}
	if resp == nil {
		return nil, nil
	}
	return resp.ToDomain(), nil
}

func toDomainTasks(tasks []task.TaskResponse) []*domain.Task {
	result := make([]*domain.Task, 0, len(tasks))
	for i := range tasks {
		result = append(result, tasks[i].ToDomain())
	}
	return result
}

func (m *AnalyticsModule) Start(_ context.Context) error {
	if m.taskPort == nil {
		return fmt.Errorf("taskPort dependency not set")
	}
	log.Println("[analytics] Module started (depends on: task)")
	return nil
}

func (m *AnalyticsModule) Stop(_ context.Context) error {
	log.Println("[analytics] Module stopped")
	return nil
}
