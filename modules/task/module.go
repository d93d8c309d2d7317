package task

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/example/team-task-manager/events"
	"github.com/example/team-task-manager/modules/user"
	"github.com/go-monolith/mono"
	"github.com/go-monolith/mono/pkg/helper"
)

// TaskModule provides task tracking services (core domain). It owns the
// in-memory task store and depends on the user module only to resolve
// assignee names for reporting.
type TaskModule struct {
	repo     *TaskRepository
	userPort user.UserPort
	eventBus mono.EventBus
}

var _ mono.Module = (*TaskModule)(nil)
var _ mono.ServiceProviderModule = (*TaskModule)(nil)
var _ mono.DependentModule = (*TaskModule)(nil)
var _ mono.EventEmitterModule = (*TaskModule)(nil)

func NewModule() *TaskModule {
	return &TaskModule{
		repo: NewTaskRepository(),
	}
}

func (m *TaskModule) Name() string {
	return "task"
}

func (m *TaskModule) Dependencies() []string {
	return []string{"user"}
}

func (m *TaskModule) SetDependencyServiceContainer(dependency string, container mono.ServiceContainer) {
	if dependency == "user" {
		m.userPort = user.NewUserAdapter(container)
	}
}

func (m *TaskModule) SetEventBus(bus mono.EventBus) {
	m.eventBus = bus
}

func (m *TaskModule) EmitEvents() []mono.BaseEventDefinition {
	return []mono.BaseEventDefinition{
		events.TaskCreatedV1.ToBase(),
		events.TaskStatusChangedV1.ToBase(),
		events.TaskDeletedV1.ToBase(),
	}
}

func (m *TaskModule) RegisterServices(container mono.ServiceContainer) error {
	services := []struct {
		name     string
		register func() error
	}{
		{"create-task", func() error {
			return helper.RegisterTypedRequestReplyService(container, "create-task", json.Unmarshal, json.Marshal, m.createTask)
		}},
		{"get-task", func() error {
			return helper.RegisterTypedRequestReplyService(container, "get-task", json.Unmarshal, json.Marshal, m.getTask)
		}},
		{"list-tasks", func() error {
			return helper.RegisterTypedRequestReplyService(container, "list-tasks", json.Unmarshal, json.Marshal, m.listTasks)
		}},
		{"list-tasks-by-status", func() error {
			return helper.RegisterTypedRequestReplyService(container, "list-tasks-by-status", json.Unmarshal, json.Marshal, m.listTasksByStatus)
		}},
		{"list-tasks-by-priority", func() error {
			return helper.RegisterTypedRequestReplyService(container, "list-tasks-by-priority", json.Unmarshal, json.Marshal, m.listTasksByPriority)
		}},
		{"list-overdue-tasks", func() error {
			return helper.RegisterTypedRequestReplyService(container, "list-overdue-tasks", json.Unmarshal, json.Marshal, m.listOverdueTasks)
		}},
		{"list-starred-tasks", func() error {
			return helper.RegisterTypedRequestReplyService(container, "list-starred-tasks", json.Unmarshal, json.Marshal, m.listStarredTasks)
		}},
		{"update-task", func() error {
			return helper.RegisterTypedRequestReplyService(container, "update-task", json.Unmarshal, json.Marshal, m.updateTask)
		}},
		{"update-status", func() error {
			return helper.RegisterTypedRequestReplyService(container, "update-status", json.Unmarshal, json.Marshal, m.updateStatus)
		}},
		{"delete-task", func() error {
			return helper.RegisterTypedRequestReplyService(container, "delete-task", json.Unmarshal, json.Marshal, m.deleteTask)
		}},
		{"star-task", func() error {
			return helper.RegisterTypedRequestReplyService(container, "star-task", json.Unmarshal, json.Marshal, m.starTask)
		}},
		{"unstar-task", func() error {
			return helper.RegisterTypedRequestReplyService(container, "unstar-task", json.Unmarshal, json.Marshal, m.unstarTask)
		}},
		{"search-tasks", func() error {
			return helper.RegisterTypedRequestReplyService(container, "search-tasks", json.Unmarshal, json.Marshal, m.searchTasks)
		}},
		{"bulk-update-status", func() error {
			return helper.RegisterTypedRequestReplyService(container, "bulk-update-status", json.Unmarshal, json.Marshal, m.bulkUpdateStatus)
		}},
		{"get-report", func() error {
			return helper.RegisterTypedRequestReplyService(container, "get-report", json.Unmarshal, json.Marshal, m.getReport)
		}},
	}

	for _, svc := range services {
		if err := svc.register(); err != nil {
			return fmt.Errorf("failed to register %s service: %w", svc.name, err)
		}
	}

	log.Printf("[task] Registered %d services", len(services))
	return nil
}

func (m *TaskModule) Start(_ context.Context) error {
	if m.userPort == nil {
		return fmt.Errorf("userPort dependency not set")
	}
	if m.eventBus == nil {
		log.Println("[task] Warning: eventBus not set, events will not be published")
	}
	log.Println("[task] Module started (depends on: user)")
	return nil
}

func (m *TaskModule) Stop(_ context.Context) error {
	log.Println("[task] Module stopped")
	return nil
}
