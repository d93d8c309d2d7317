package comment

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	domain "github.com/example/team-task-manager/domain/task"
	"github.com/example/team-task-manager/events"
	"github.com/example/team-task-manager/modules/task"
	"github.com/example/team-task-manager/modules/user"
	"github.com/go-monolith/mono"
	"github.com/go-monolith/mono/pkg/helper"
)

// CommentModule provides the append-only comment log. Adding a comment
// requires both the task and the author to exist, unlike task assignment
// which tolerates dangling user ids.
type CommentModule struct {
	repo     *CommentRepository
	taskPort task.TaskPort
	userPort user.UserPort
	eventBus mono.EventBus
}

var _ mono.Module = (*CommentModule)(nil)
var _ mono.ServiceProviderModule = (*CommentModule)(nil)
var _ mono.DependentModule = (*CommentModule)(nil)
var _ mono.EventEmitterModule = (*CommentModule)(nil)

func NewModule() *CommentModule {
	return &CommentModule{
		repo: NewCommentRepository(),
	}
}

func (m *CommentModule) Name() string {
	return "comment"
}

func (m *CommentModule) Dependencies() []string {
	return []string{"task", "user"}
}

func (m *CommentModule) SetDependencyServiceContainer(dependency string, container mono.ServiceContainer) {
	switch dependency {
	case "task":
		m.taskPort = task.NewTaskAdapter(container)
	case "user":
		m.userPort = user.NewUserAdapter(container)
	}
}

func (m *CommentModule) SetEventBus(bus mono.EventBus) {
	m.eventBus = bus
}

func (m *CommentModule) EmitEvents() []mono.BaseEventDefinition {
	return []mono.BaseEventDefinition{
		events.CommentAddedV1.ToBase(),
	}
}

func (m *CommentModule) RegisterServices(container mono.ServiceContainer) error {
	if err := helper.RegisterTypedRequestReplyService(
		container, "add-comment", json.Unmarshal, json.Marshal, m.addComment,
	); err != nil {
		return fmt.Errorf("failed to register add-comment service: %w", err)
	}

	if err := helper.RegisterTypedRequestReplyService(
		container, "get-comments", json.Unmarshal, json.Marshal, m.getComments,
	); err != nil {
		return fmt.Errorf("failed to register get-comments service: %w", err)
	}

	log.Printf("[comment] Registered services: add-comment, get-comments")
	return nil
}

// addComment handles the add-comment service request.
func (m *CommentModule) addComment(ctx context.Context, req AddCommentRequest, _ *mono.Msg) (AddCommentResponse, error) {
	t, err := m.taskPort.GetTask(ctx, req.TaskID)
	if err != nil {
		return AddCommentResponse{}, fmt.Errorf("failed to fetch task %d: %w", req.TaskID, err)
	}
	if t == nil {
		return AddCommentResponse{}, &domain.NotFoundError{ID: req.TaskID}
	}

	valid, err := m.userPort.ValidateUser(ctx, req.UserID)
	if err != nil {
		return AddCommentResponse{}, fmt.Errorf("failed to validate user %d: %w", req.UserID, err)
	}
	if !valid {
		return AddCommentResponse{}, &UnknownUserError{ID: req.UserID}
	}

	c, err := m.repo.Add(Comment{
		TaskID: req.TaskID,
		UserID: req.UserID,
		Text:   req.Text,
	})
	if err != nil {
		return AddCommentResponse{}, err
	}

	if m.eventBus != nil {
		event := events.CommentAddedEvent{
			CommentID: c.ID,
			TaskID:    c.TaskID,
			UserID:    c.UserID,
			CreatedAt: c.Created,
		}
		if err := events.CommentAddedV1.Publish(m.eventBus, event, nil); err != nil {
			log.Printf("[comment] Warning: failed to publish CommentAdded event for comment %d: %v", c.ID, err)
		}
	}

	return AddCommentResponse{Comment: c}, nil
}

// getComments handles the get-comments service request.
func (m *CommentModule) getComments(_ context.Context, req GetCommentsRequest, _ *mono.Msg) (GetCommentsResponse, error) {
	return GetCommentsResponse{Comments: m.repo.ForTask(req.TaskID)}, nil
}

func (m *CommentModule) Start(_ context.Context) error {
	if m.taskPort == nil {
		return fmt.Errorf("taskPort dependency not set")
	}
	if m.userPort == nil {
		return fmt.Errorf("userPort dependency not set")
	}
	log.Println("[comment] Module started (depends on: task, user)")
	return nil
}

func (m *CommentModule) Stop(_ context.Context) error {
	log.Println("[comment] Module stopped")
	return nil
}
