package task

import (
	"testing"
	"time"

	domain "github.com/example/team-task-manager/domain/task"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func searchFixture(now time.Time) []*domain.Task {
	past := now.AddDate(0, 0, -3)
	soon := now.AddDate(0, 0, 2)
	later := now.AddDate(0, 0, 10)

	return []*domain.Task{
		{ID: 1, Title: "Login form", Description: "validation rules", Status: domain.StatusToDo,
			Priority: domain.PriorityHigh, CreatedDate: now.Add(-4 * time.Hour), DueDate: &later, AssignedToUserID: 3},
		{ID: 2, Title: "Database schema", Description: "ER diagram", Status: domain.StatusInProgress,
			Priority: domain.PriorityCritical, CreatedDate: now.Add(-3 * time.Hour), DueDate: &soon, AssignedToUserID: 4},
		{ID: 3, Title: "API tests", Description: "unit tests for login endpoints", Status: domain.StatusToDo,
			Priority: domain.PriorityMedium, CreatedDate: now.Add(-2 * time.Hour), DueDate: &past, AssignedToUserID: 3},
		{ID: 4, Title: "Release notes", Description: "", Status: domain.StatusDone,
			Priority: domain.PriorityLow, CreatedDate: now.Add(-1 * time.Hour), DueDate: &past, AssignedToUserID: 4},
		{ID: 5, Title: "Backlog grooming", Description: "", Status: domain.StatusTesting,
			Priority: domain.PriorityLow, CreatedDate: now, AssignedToUserID: 3},
	}
}

func ids(tasks []*domain.Task) []int {
	out := make([]int, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, t.ID)
	}
	return out
}

func TestSearch_TextMatchesTitleOrDescriptionCaseInsensitive(t *testing.T) {
	now := time.Now()
	tasks := searchFixture(now)

	result := Search(tasks, SearchOptions{Text: "LOGIN"}, now)

	// Task 1 matches on title, task 3 on description.
	assert.Equal(t, []int{1, 3}, ids(result))
}

func TestSearch_AssigneeFilter(t *testing.T) {
	now := time.Now()
	tasks := searchFixture(now)

	userID := 4
	result := Search(tasks, SearchOptions{AssignedToUserID: &userID}, now)
	assert.Equal(t, []int{2, 4}, ids(result))
}

func TestSearch_PriorityFilter(t *testing.T) {
	now := time.Now()
	tasks := searchFixture(now)

	priority := domain.PriorityLow
	result := Search(tasks, SearchOptions{Priority: &priority}, now)
	assert.Equal(t, []int{4, 5}, ids(result))
}

func TestSearch_OnlyNotOverdue(t *testing.T) {
	now := time.Now()
	tasks := searchFixture(now)

	result := Search(tasks, SearchOptions{OnlyNotOverdue: true}, now)

	// Task 3 is past due and not Done, so it drops. Task 4 is past due but
	// Done, and task 5 has no due date; both stay.
	assert.Equal(t, []int{1, 2, 4, 5}, ids(result))
}

func TestSearch_DueDateExactlyNowIsNotOverdue(t *testing.T) {
	now := time.Now()
	atNow := now
	tasks := []*domain.Task{
		{ID: 1, Title: "boundary", Status: domain.StatusToDo, DueDate: &atNow},
	}

	result := Search(tasks, SearchOptions{OnlyNotOverdue: true}, now)
	assert.Equal(t, []int{1}, ids(result))
}

func TestSearch_FiltersCompose(t *testing.T) {
	now := time.Now()
	tasks := searchFixture(now)

	userID := 3
	result := Search(tasks, SearchOptions{
		Text:             "login",
		AssignedToUserID: &userID,
		OnlyNotOverdue:   true,
	}, now)

	// Of the two "login" matches for user 3, only task 1 is not overdue.
	assert.Equal(t, []int{1}, ids(result))

	// AND composition: the combined result equals the intersection of each
	// filter's standalone result, so application order cannot matter.
	byText := map[int]bool{}
	for _, task := range Search(tasks, SearchOptions{Text: "login"}, now) {
		byText[task.ID] = true
	}
	byUser := map[int]bool{}
	for _, task := range Search(tasks, SearchOptions{AssignedToUserID: &userID}, now) {
		byUser[task.ID] = true
	}
	byDue := map[int]bool{}
	for _, task := range Search(tasks, SearchOptions{OnlyNotOverdue: true}, now) {
		byDue[task.ID] = true
	}
	var intersection []int
	for _, task := range tasks {
		if byText[task.ID] && byUser[task.ID] && byDue[task.ID] {
			intersection = append(intersection, task.ID)
		}
	}
	assert.Equal(t, intersection, ids(result))
}

func TestSearch_SortByDueDateAsc_UndatedLast(t *testing.T) {
	now := time.Now()
	tasks := searchFixture(now)

	result := Search(tasks, SearchOptions{SortBy: SortByDueDateAsc}, now)
	require.Len(t, result, 5)

	// Past (3, 4 share a date and keep input order), soon (2), later (1),
	// then the undated task (5) last.
	assert.Equal(t, []int{3, 4, 2, 1, 5}, ids(result))
}

func TestSearch_SortByPriorityDesc(t *testing.T) {
	now := time.Now()
	tasks := searchFixture(now)

	result := Search(tasks, SearchOptions{SortBy: SortByPriorityDesc}, now)

	// Critical, High, Medium, then the two Low tasks in input order.
	assert.Equal(t, []int{2, 1, 3, 4, 5}, ids(result))
}

func TestSearch_SortByCreatedDateDesc(t *testing.T) {
	now := time.Now()
	tasks := searchFixture(now)

	result := Search(tasks, SearchOptions{SortBy: SortByCreatedDateDesc}, now)
	assert.Equal(t, []int{5, 4, 3, 2, 1}, ids(result))
}

func TestSearch_NoSortPreservesFilteredOrder(t *testing.T) {
	now := time.Now()
	tasks := searchFixture(now)

	result := Search(tasks, SearchOptions{}, now)
	assert.Equal(t, []int{1, 2, 3, 4, 5}, ids(result))
}
