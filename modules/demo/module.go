// Package demo is the driving adapter for local runs: it seeds a handful of
// tasks through the task port and walks the read paths, logging the results.
// Nothing in the core depends on it.
package demo

import (
	"context"
	"fmt"
	"log"
	"time"

	domain "github.com/example/team-task-manager/domain/task"
	"github.com/example/team-task-manager/modules/analytics"
	"github.com/example/team-task-manager/modules/comment"
	"github.com/example/team-task-manager/modules/task"
	"github.com/go-monolith/mono"
)

// DemoModule seeds demo data and exercises the service surface on startup.
type DemoModule struct {
	taskPort      task.TaskPort
	analyticsPort analytics.AnalyticsPort
	commentPort   comment.CommentPort
}

var _ mono.Module = (*DemoModule)(nil)
var _ mono.DependentModule = (*DemoModule)(nil)

func NewModule() *DemoModule {
	return &DemoModule{}
}

func (m *DemoModule) Name() string {
	return "demo"
}

func (m *DemoModule) Dependencies() []string {
	return []string{"task", "analytics", "comment"}
}

func (m *DemoModule) SetDependencyServiceContainer(dependency string, container mono.ServiceContainer) {
	switch dependency {
	case "task":
		m.taskPort = task.NewTaskAdapter(container)
	case "analytics":
		m.analyticsPort = analytics.NewAnalyticsAdapter(container)
	case "comment":
		m.commentPort = comment.NewCommentAdapter(container)
	}
}

func (m *DemoModule) Start(ctx context.Context) error {
	if m.taskPort == nil || m.analyticsPort == nil || m.commentPort == nil {
		return fmt.Errorf("demo module dependencies not set")
	}

	if err := m.seed(ctx); err != nil {
		return fmt.Errorf("failed to seed demo data: %w", err)
	}
	m.walkthrough(ctx)

	log.Println("[demo] Module started")
	return nil
}

func (m *DemoModule) seed(ctx context.Context) error {
	in7 := time.Now().AddDate(0, 0, 7)
	in3 := time.Now().AddDate(0, 0, 3)
	ago2 := time.Now().AddDate(0, 0, -2)

	seeds := []task.CreateTaskRequest{
		{
			Title:            "Implementacija login funkcionalnosti",
			Description:      "Kreirati login formu sa validacijom",
			Priority:         domain.PriorityHigh,
			AssignedToUserID: 3,
			CreatedByUserID:  1,
			DueDate:          &in7,
		},
		{
			Title:            "Dizajn baze podataka",
			Description:      "Kreirati ER dijagram za projekat",
			Priority:         domain.PriorityCritical,
			AssignedToUserID: 4,
			CreatedByUserID:  2,
			DueDate:          &in3,
		},
		{
			Title:            "Testiranje API endpointa",
			Description:      "Unit testovi za sve API metode",
			Priority:         domain.PriorityMedium,
			AssignedToUserID: 3,
			CreatedByUserID:  1,
			DueDate:          &ago2,
		},
	}

	for i := range seeds {
		if _, err := m.taskPort.CreateTask(ctx, &seeds[i]); err != nil {
			return err
		}
	}
	return nil
}

func (m *DemoModule) walkthrough(ctx context.Context) {
	if report, err := m.taskPort.GetReport(ctx); err == nil {
		log.Printf("[demo] Report: %d tasks total, %d overdue, progress %.1f%%",
			report.Total, report.Overdue, report.Progress)
		for _, entry := range report.TasksByUser {
			log.Printf("[demo]   %s: %d task(s)", entry.UserName, entry.Count)
		}
	} else {
		log.Printf("[demo] Warning: get-report failed: %v", err)
	}

	if rating, err := m.analyticsPort.TeamPerformance(ctx); err == nil {
		log.Printf("[demo] %s", rating)
	} else {
		log.Printf("[demo] Warning: team-performance failed: %v", err)
	}

	if risk, err := m.analyticsPort.PredictDelayRisk(ctx, 3); err == nil {
		log.Printf("[demo] Delay risk for task 3: %s", risk)
	} else {
		log.Printf("[demo] Warning: predict-delay-risk failed: %v", err)
	}

	if _, err := m.commentPort.AddComment(ctx, 1, 2, "Molim prioritetno."); err != nil {
		log.Printf("[demo] Warning: add-comment failed: %v", err)
	}
	if comments, err := m.commentPort.GetComments(ctx, 1); err == nil {
		log.Printf("[demo] Task 1 has %d comment(s)", len(comments))
	}
}

func (m *DemoModule) Stop(_ context.Context) error {
	log.Println("[demo] Module stopped")
	return nil
}
