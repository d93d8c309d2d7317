package task

import (
	"sort"
	"strings"
	"time"

	domain "github.com/example/team-task-manager/domain/task"
)

// SortOption selects the ordering applied after filtering. Only one sort key
// may be active at a time.
type SortOption int

const (
	SortNone SortOption = iota
	SortByDueDateAsc
	SortByPriorityDesc
	SortByCreatedDateDesc
)

// SearchOptions is a set of independently optional filters composed with
// logical AND, plus an optional sort.
type SearchOptions struct {
	// Text matches case-insensitively as a substring of title or description.
	Text string `json:"text,omitempty"`
	// AssignedToUserID filters on exact assignee match when set.
	AssignedToUserID *int `json:"assigned_to_user_id,omitempty"`
	// Priority filters on exact priority match when set.
	Priority *domain.Priority `json:"priority,omitempty"`
	// OnlyNotOverdue keeps tasks with no due date, a due date at or after
	// now, or status Done. Done tasks are never considered overdue.
	OnlyNotOverdue bool `json:"only_not_overdue,omitempty"`
	// SortBy orders the filtered result.
	SortBy SortOption `json:"sort_by,omitempty"`
}

// Search filters and sorts a snapshot of tasks. Filters are ANDed, so their
// evaluation order does not affect the result set. The sort is stable; with
// SortNone the filtered input order is preserved. The input slice is never
// modified.
func Search(tasks []*domain.Task, opts SearchOptions, now time.Time) []*domain.Task {
	result := make([]*domain.Task, 0, len(tasks))

	text := strings.ToLower(strings.TrimSpace(opts.Text))

	for _, t := range tasks {
		if text != "" {
			titleMatch := strings.Contains(strings.ToLower(t.Title), text)
			descMatch := strings.Contains(strings.ToLower(t.Description), text)
			if !titleMatch && !descMatch {
				continue
			}
		}
		if opts.AssignedToUserID != nil && t.AssignedToUserID != *opts.AssignedToUserID {
			continue
		}
		if opts.Priority != nil && t.Priority != *opts.Priority {
			continue
		}
		if opts.OnlyNotOverdue {
			keep := t.DueDate == nil || !t.DueDate.Before(now) || t.Status == domain.StatusDone
			if !keep {
				continue
			}
		}
		result = append(result, t)
	}

	switch opts.SortBy {
	case SortByDueDateAsc:
		// Tasks without a due date sort as if due at the maximum instant.
		sort.SliceStable(result, func(i, j int) bool {
			di, dj := dueOrMax(result[i]), dueOrMax(result[j])
			return di.Before(dj)
		})
	case SortByPriorityDesc:
		sort.SliceStable(result, func(i, j int) bool {
			return result[i].Priority > result[j].Priority
		})
	case SortByCreatedDateDesc:
		sort.SliceStable(result, func(i, j int) bool {
			return result[i].CreatedDate.After(result[j].CreatedDate)
		})
	}

	return result
}

var maxInstant = time.Unix(1<<62, 0)

func dueOrMax(t *domain.Task) time.Time {
	if t.DueDate == nil {
		return maxInstant
	}
	return *t.DueDate
}
