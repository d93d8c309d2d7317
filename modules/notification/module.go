package notification

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/example/team-task-manager/events"
	"github.com/go-monolith/mono"
	"github.com/go-monolith/mono/pkg/helper"
	"github.com/google/uuid"
)

// NotificationLog represents a logged notification.
type NotificationLog struct {
	ID        string    `json:"id"`
	Type      string    `json:"type"`
	Message   string    `json:"message"`
	Channel   string    `json:"channel"`
	Timestamp time.Time `json:"timestamp"`
}

// NotificationModule is a driven adapter that subscribes to domain events and
// keeps an in-memory notification log.
type NotificationModule struct {
	notifications []NotificationLog
	mu            sync.RWMutex
}

var _ mono.Module = (*NotificationModule)(nil)
var _ mono.EventConsumerModule = (*NotificationModule)(nil)

func NewModule() *NotificationModule {
	return &NotificationModule{
		notifications: make([]NotificationLog, 0),
	}
}

func (m *NotificationModule) Name() string {
	return "notification"
}

func (m *NotificationModule) RegisterEventConsumers(registry mono.EventRegistry) error {
	if err := helper.RegisterTypedEventConsumer(registry, events.TaskCreatedV1, m.handleTaskCreated, m); err != nil {
		return fmt.Errorf("failed to register TaskCreated consumer: %w", err)
	}
	if err := helper.RegisterTypedEventConsumer(registry, events.TaskStatusChangedV1, m.handleTaskStatusChanged, m); err != nil {
		return fmt.Errorf("failed to register TaskStatusChanged consumer: %w", err)
	}
	if err := helper.RegisterTypedEventConsumer(registry, events.TaskDeletedV1, m.handleTaskDeleted, m); err != nil {
		return fmt.Errorf("failed to register TaskDeleted consumer: %w", err)
	}
	if err := helper.RegisterTypedEventConsumer(registry, events.CommentAddedV1, m.handleCommentAdded, m); err != nil {
		return fmt.Errorf("failed to register CommentAdded consumer: %w", err)
	}

	log.Printf("[notification] Registered event consumers: TaskCreated, TaskStatusChanged, TaskDeleted, CommentAdded")
	return nil
}

func (m *NotificationModule) handleTaskCreated(_ context.Context, event events.TaskCreatedEvent, _ *mono.Msg) error {
	log.Printf("[notification] Task created: %d - %s", event.TaskID, event.Title)
	m.logNotification("task_created", fmt.Sprintf("New task '%s' assigned to user %d", event.Title, event.AssignedToUserID))
	return nil
}

func (m *NotificationModule) handleTaskStatusChanged(_ context.Context, event events.TaskStatusChangedEvent, _ *mono.Msg) error {
	log.Printf("[notification] Task %d status: %s -> %s", event.TaskID, event.OldStatus, event.NewStatus)
	m.logNotification("task_status_changed", fmt.Sprintf("Task %d moved from %s to %s", event.TaskID, event.OldStatus, event.NewStatus))
	return nil
}

func (m *NotificationModule) handleTaskDeleted(_ context.Context, event events.TaskDeletedEvent, _ *mono.Msg) error {
	log.Printf("[notification] Task deleted: %d", event.TaskID)
	m.logNotification("task_deleted", fmt.Sprintf("Task %d deleted", event.TaskID))
	return nil
}

func (m *NotificationModule) handleCommentAdded(_ context.Context, event events.CommentAddedEvent, _ *mono.Msg) error {
	log.Printf("[notification] Comment %d added to task %d by user %d", event.CommentID, event.TaskID, event.UserID)
	m.logNotification("comment_added", fmt.Sprintf("User %d commented on task %d", event.UserID, event.TaskID))
	return nil
}

func (m *NotificationModule) logNotification(notificationType, message string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.notifications = append(m.notifications, NotificationLog{
		ID:        uuid.New().String(),
		Type:      notificationType,
		Message:   message,
		Channel:   "event",
		Timestamp: time.Now(),
	})
}

// GetNotifications returns a snapshot of the notification log.
func (m *NotificationModule) GetNotifications() []NotificationLog {
	m.mu.RLock()
	defer m.mu.RUnlock()

	result := make([]NotificationLog, len(m.notifications))
	copy(result, m.notifications)
	return result
}

func (m *NotificationModule) Start(_ context.Context) error {
	log.Println("[notification] Module started - listening for task events")
	return nil
}

func (m *NotificationModule) Stop(_ context.Context) error {
	log.Println("[notification] Module stopped")
	return nil
}
