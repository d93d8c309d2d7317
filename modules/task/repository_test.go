package task

import (
	"testing"
	"time"

	domain "github.com/example/team-task-manager/domain/task"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTask(title string) *domain.Task {
	return &domain.Task{
		Title:            title,
		Status:           domain.StatusToDo,
		Priority:         domain.PriorityMedium,
		AssignedToUserID: 3,
		CreatedByUserID:  1,
	}
}

func TestAdd_AssignsSequentialIDs(t *testing.T) {
	repo := NewTaskRepository()

	id1 := repo.Add(newTask("first"))
	id2 := repo.Add(newTask("second"))
	id3 := repo.Add(newTask("third"))

	assert.Equal(t, 1, id1)
	assert.Equal(t, 2, id2)
	assert.Equal(t, 3, id3)
}

func TestAdd_IDsNeverReusedAfterDelete(t *testing.T) {
	repo := NewTaskRepository()

	repo.Add(newTask("first"))
	repo.Add(newTask("second"))
	require.True(t, repo.Delete(2))

	id := repo.Add(newTask("third"))
	assert.Equal(t, 3, id, "deleted ids must not be reused")
}

func TestAdd_StampsCreatedDate(t *testing.T) {
	repo := NewTaskRepository()

	before := time.Now()
	task := newTask("stamped")
	repo.Add(task)
	after := time.Now()

	stored, found := repo.FindByID(task.ID)
	require.True(t, found)
	assert.False(t, stored.CreatedDate.Before(before))
	assert.False(t, stored.CreatedDate.After(after))
}

func TestFindByID_MissingIsEmptyResultNotError(t *testing.T) {
	repo := NewTaskRepository()

	task, found := repo.FindByID(42)
	assert.Nil(t, task)
	assert.False(t, found)
}

func TestFindByID_ReturnsIndependentCopy(t *testing.T) {
	repo := NewTaskRepository()
	repo.Add(newTask("original"))

	copy1, found := repo.FindByID(1)
	require.True(t, found)
	copy1.Title = "mutated"

	copy2, found := repo.FindByID(1)
	require.True(t, found)
	assert.Equal(t, "original", copy2.Title, "mutating a returned task must not affect the store")
}

func TestFindAll_SnapshotInInsertionOrder(t *testing.T) {
	repo := NewTaskRepository()
	repo.Add(newTask("a"))
	repo.Add(newTask("b"))
	repo.Add(newTask("c"))

	all := repo.FindAll()
	require.Len(t, all, 3)
	assert.Equal(t, []int{1, 2, 3}, []int{all[0].ID, all[1].ID, all[2].ID})

	// Mutating the snapshot leaves the store untouched.
	all[0].Title = "mutated"
	fresh, _ := repo.FindByID(1)
	assert.Equal(t, "a", fresh.Title)
}

func TestFindByUser_And_FindByStatus(t *testing.T) {
	repo := NewTaskRepository()

	t1 := newTask("for user 3")
	repo.Add(t1)

	t2 := newTask("for user 4")
	t2.AssignedToUserID = 4
	t2.Status = domain.StatusDone
	repo.Add(t2)

	byUser := repo.FindByUser(4)
	require.Len(t, byUser, 1)
	assert.Equal(t, t2.ID, byUser[0].ID)

	byStatus := repo.FindByStatus(domain.StatusDone)
	require.Len(t, byStatus, 1)
	assert.Equal(t, t2.ID, byStatus[0].ID)

	assert.Empty(t, repo.FindByUser(99))
}

func TestUpdate_OverwritesMutableFieldsOnly(t *testing.T) {
	repo := NewTaskRepository()
	original := newTask("before")
	repo.Add(original)

	stored, _ := repo.FindByID(original.ID)
	createdDate := stored.CreatedDate

	due := time.Now().AddDate(0, 0, 5)
	repo.Update(&domain.Task{
		ID:               original.ID,
		Title:            "after",
		Description:      "updated",
		Status:           domain.StatusInProgress,
		Priority:         domain.PriorityCritical,
		AssignedToUserID: 4,
		IsStarred:        true,
		DueDate:          &due,
		// A caller may hand in a different creator; it must be ignored.
		CreatedByUserID: 99,
	})

	updated, found := repo.FindByID(original.ID)
	require.True(t, found)
	assert.Equal(t, "after", updated.Title)
	assert.Equal(t, "updated", updated.Description)
	assert.Equal(t, domain.StatusInProgress, updated.Status)
	assert.Equal(t, domain.PriorityCritical, updated.Priority)
	assert.Equal(t, 4, updated.AssignedToUserID)
	assert.True(t, updated.IsStarred)
	require.NotNil(t, updated.DueDate)
	assert.True(t, updated.DueDate.Equal(due))

	assert.Equal(t, original.ID, updated.ID)
	assert.True(t, updated.CreatedDate.Equal(createdDate), "update must never change CreatedDate")
	assert.Equal(t, 1, updated.CreatedByUserID, "update must never change CreatedByUserID")
}

func TestUpdate_UnknownIDIsSilentNoOp(t *testing.T) {
	repo := NewTaskRepository()
	repo.Add(newTask("only"))

	repo.Update(&domain.Task{ID: 99, Title: "ghost"})

	all := repo.FindAll()
	require.Len(t, all, 1)
	assert.Equal(t, "only", all[0].Title)
}

func TestDelete(t *testing.T) {
	repo := NewTaskRepository()
	repo.Add(newTask("doomed"))

	assert.True(t, repo.Delete(1))

	_, found := repo.FindByID(1)
	assert.False(t, found)

	assert.False(t, repo.Delete(1), "deleting an absent id reports false")
	assert.Empty(t, repo.FindAll())
}
