package task

import (
	"sort"
	"time"

	domain "github.com/example/team-task-manager/domain/task"
)

// TasksPerUser is one entry of the per-assignee ranking.
type TasksPerUser struct {
	UserID int `json:"user_id"`
	Count  int `json:"count"`
}

// Report holds count-based statistics over a task snapshot. TasksByUser is
// the full ranked list; taking a top-N of it is a presentation concern.
type Report struct {
	Total       int            `json:"total"`
	Todo        int            `json:"todo"`
	InProgress  int            `json:"in_progress"`
	Testing     int            `json:"testing"`
	Done        int            `json:"done"`
	Low         int            `json:"low"`
	Medium      int            `json:"medium"`
	High        int            `json:"high"`
	Critical    int            `json:"critical"`
	Overdue     int            `json:"overdue"`
	Progress    float64        `json:"progress"`
	TasksByUser []TasksPerUser `json:"tasks_by_user"`
}

// BuildReport aggregates a snapshot into a Report. The per-assignee list is
// sorted by count descending; ties keep the order in which assignees first
// appear in the snapshot.
func BuildReport(tasks []*domain.Task, now time.Time) *Report {
	report := &Report{
		Total:       len(tasks),
		TasksByUser: []TasksPerUser{},
	}

	perUser := make(map[int]int)
	for _, t := range tasks {
		switch t.Status {
		case domain.StatusToDo:
			report.Todo++
		case domain.StatusInProgress:
			report.InProgress++
		case domain.StatusTesting:
			report.Testing++
		case domain.StatusDone:
			report.Done++
		}

		switch t.Priority {
		case domain.PriorityLow:
			report.Low++
		case domain.PriorityMedium:
			report.Medium++
		case domain.PriorityHigh:
			report.High++
		case domain.PriorityCritical:
			report.Critical++
		}

		if t.IsOverdue(now) {
			report.Overdue++
		}

		if _, seen := perUser[t.AssignedToUserID]; !seen {
			report.TasksByUser = append(report.TasksByUser, TasksPerUser{UserID: t.AssignedToUserID})
		}
		perUser[t.AssignedToUserID]++
	}

	for i := range report.TasksByUser {
		report.TasksByUser[i].Count = perUser[report.TasksByUser[i].UserID]
	}
	sort.SliceStable(report.TasksByUser, func(i, j int) bool {
		return report.TasksByUser[i].Count > report.TasksByUser[j].Count
	})

	if report.Total > 0 {
		report.Progress = float64(report.Done) / float64(report.Total) * 100
	}

	return report
}
