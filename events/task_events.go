package events

import (
	"time"

	"github.com/go-monolith/mono/pkg/helper"
)

// TaskCreatedEvent is emitted when a new task is created.
type TaskCreatedEvent struct {
	TaskID           int       `json:"task_id"`
	Title            string    `json:"title"`
	AssignedToUserID int       `json:"assigned_to_user_id"`
	CreatedByUserID  int       `json:"created_by_user_id"`
	CreatedAt        time.Time `json:"created_at"`
}

// TaskCreatedV1 is the typed event definition for task creation.
// Subject: events.task.v1.task-created
var TaskCreatedV1 = helper.EventDefinition[TaskCreatedEvent](
	"task", "TaskCreated", "v1",
)

// TaskStatusChangedEvent is emitted when a task's status changes, either via
// a single-task update or as part of a bulk update.
type TaskStatusChangedEvent struct {
	TaskID    int       `json:"task_id"`
	OldStatus string    `json:"old_status"`
	NewStatus string    `json:"new_status"`
	ChangedAt time.Time `json:"changed_at"`
}

// TaskStatusChangedV1 is the typed event definition for status changes.
// Subject: events.task.v1.task-status-changed
var TaskStatusChangedV1 = helper.EventDefinition[TaskStatusChangedEvent](
	"task", "TaskStatusChanged", "v1",
)

// TaskDeletedEvent is emitted when a task is deleted.
type TaskDeletedEvent struct {
	TaskID    int       `json:"task_id"`
	DeletedAt time.Time `json:"deleted_at"`
}

// TaskDeletedV1 is the typed event definition for task deletion.
// Subject: events.task.v1.task-deleted
var TaskDeletedV1 = helper.EventDefinition[TaskDeletedEvent](
	"task", "TaskDeleted", "v1",
)

// CommentAddedEvent is emitted when a comment is appended to a task.
type CommentAddedEvent struct {
	CommentID int       `json:"comment_id"`
	TaskID    int       `json:"task_id"`
	UserID    int       `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
}

// CommentAddedV1 is the typed event definition for comment creation.
// Subject: events.comment.v1.comment-added
var CommentAddedV1 = helper.EventDefinition[CommentAddedEvent](
	"comment", "CommentAdded", "v1",
)
