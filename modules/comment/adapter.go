package comment

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/go-monolith/mono"
	"github.com/go-monolith/mono/pkg/helper"
)

// commentAdapter wraps ServiceContainer for type-safe cross-module
// communication with the comment module.
type commentAdapter struct {
	container mono.ServiceContainer
}

// NewCommentAdapter creates a new adapter for comment services.
func NewCommentAdapter(container mono.ServiceContainer) CommentPort {
	if container == nil {
		panic("comment adapter requires non-nil ServiceContainer")
	}
	return &commentAdapter{container: container}
}

// AddComment appends a comment via the add-comment service.
func (a *commentAdapter) AddComment(ctx context.Context, taskID, userID int, text string) (*Comment, error) {
	req := AddCommentRequest{TaskID: taskID, UserID: userID, Text: text}
	var resp AddCommentResponse
	if err := helper.CallRequestReplyService(
		ctx,
		a.container,
		"add-comment",
		json.Marshal,
		json.Unmarshal,
		&req,
		&resp,
	); err != nil {
		return nil, fmt.Errorf("add-comment service call failed: %w", err)
	}
	return &resp.Comment, nil
}

// GetComments lists a task's comments via the get-comments service.
func (a *commentAdapter) GetComments(ctx context.Context, taskID int) ([]Comment, error) {
	req := GetCommentsRequest{TaskID: taskID}
	var resp GetCommentsResponse
	if err := helper.CallRequestReplyService(
		ctx,
		a.container,
		"get-comments",
		json.Marshal,
		json.Unmarshal,
		&req,
		&resp,
	); err != nil {
		return nil, fmt.Errorf("get-comments service call failed: %w", err)
	}
	return resp.Comments, nil
}
