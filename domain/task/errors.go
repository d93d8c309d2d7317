package task

import (
	"errors"
	"fmt"
)

// Validation errors: the input itself is malformed.
var (
	// ErrEmptyTitle is returned when a task is created with a blank or
	// whitespace-only title.
	ErrEmptyTitle = errors.New("task title must not be empty")

	// ErrNoTaskIDs is returned when a bulk operation receives an empty id list.
	ErrNoTaskIDs = errors.New("task id list must not be empty")
)

// NotFoundError indicates that a referenced task does not exist.
type NotFoundError struct {
	ID int
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("task %d not found", e.ID)
}

// IllegalTransitionError indicates an attempt to move a Done task back to an
// earlier status via bulk update. Done is terminal for bulk updates.
type IllegalTransitionError struct {
	ID int
}

func (e *IllegalTransitionError) Error() string {
	return fmt.Sprintf("task %d is already done and cannot be reverted", e.ID)
}
