package task

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClone_IsIndependent(t *testing.T) {
	due := time.Now().AddDate(0, 0, 3)
	original := &Task{ID: 1, Title: "original", DueDate: &due}

	clone := original.Clone()
	clone.Title = "changed"
	*clone.DueDate = clone.DueDate.AddDate(0, 0, 10)

	assert.Equal(t, "original", original.Title)
	require.NotNil(t, original.DueDate)
	assert.True(t, original.DueDate.Equal(due), "due date must be deep-copied")
}

func TestClone_NilDueDate(t *testing.T) {
	clone := (&Task{ID: 1, Title: "undated"}).Clone()
	assert.Nil(t, clone.DueDate)
}

func TestIsOverdue(t *testing.T) {
	now := time.Now()
	past := now.AddDate(0, 0, -1)
	future := now.AddDate(0, 0, 1)

	assert.True(t, (&Task{Status: StatusToDo, DueDate: &past}).IsOverdue(now))
	assert.False(t, (&Task{Status: StatusDone, DueDate: &past}).IsOverdue(now), "Done is never overdue")
	assert.False(t, (&Task{Status: StatusToDo, DueDate: &future}).IsOverdue(now))
	assert.False(t, (&Task{Status: StatusToDo}).IsOverdue(now), "no due date means not overdue")
	assert.False(t, (&Task{Status: StatusToDo, DueDate: &now}).IsOverdue(now), "the boundary is strict")
}

func TestEnumStrings(t *testing.T) {
	assert.Equal(t, "ToDo", StatusToDo.String())
	assert.Equal(t, "Done", StatusDone.String())
	assert.Equal(t, "Low", PriorityLow.String())
	assert.Equal(t, "Critical", PriorityCritical.String())
}
