package comment

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// ErrEmptyText is returned when a comment is added with blank text.
var ErrEmptyText = errors.New("comment text must not be empty")

// UnknownUserError indicates the commenting user does not exist in the
// directory. Unlike task assignees, comment authors must be known users.
type UnknownUserError struct {
	ID int
}

func (e *UnknownUserError) Error() string {
	return fmt.Sprintf("user %d not found", e.ID)
}

// Comment is an append-only log entry attached to a task.
type Comment struct {
	ID      int       `json:"id"`
	TaskID  int       `json:"task_id"`
	UserID  int       `json:"user_id"`
	Text    string    `json:"text"`
	Created time.Time `json:"created"`
}

// AddCommentRequest is the request for appending a comment to a task.
type AddCommentRequest struct {
	TaskID int    `json:"task_id"`
	UserID int    `json:"user_id"`
	Text   string `json:"text"`
}

// AddCommentResponse is the response for appending a comment.
type AddCommentResponse struct {
	Comment Comment `json:"comment"`
}

// GetCommentsRequest is the request for listing a task's comments.
type GetCommentsRequest struct {
	TaskID int `json:"task_id"`
}

// GetCommentsResponse is the response for listing a task's comments,
// ordered by creation time ascending.
type GetCommentsResponse struct {
	Comments []Comment `json:"comments"`
}

// CommentPort defines the interface for comment operations.
type CommentPort interface {
	AddComment(ctx context.Context, taskID, userID int, text string) (*Comment, error)
	GetComments(ctx context.Context, taskID int) ([]Comment, error)
}
