// Package analytics implements heuristic task classification: per-task status
// evaluation and delay-risk scoring, per-user workload summaries, and a
// whole-team performance rating. All classifiers are pure functions over
// snapshots; the module wires them to the task port.
//
// The rating and risk strings are kept verbatim from the legacy system,
// including the Bosnian wording, since downstream consumers match on them.
package analytics

import (
	"time"

	domain "github.com/example/team-task-manager/domain/task"
)

// Risk classification strings.
const (
	RiskUnknown  = "Nepoznat"
	RiskLow      = "NIZAK RIZIK"
	RiskModerate = "UMJEREN RIZIK"
	RiskHigh     = "VISOK RIZIK"
	RiskVeryHigh = "VEOMA VISOK RIZIK"
)

// Summary keys that are not plain status buckets.
const (
	SummaryKeyNoTasks = "Nema zadataka"
	SummaryKeyGrade   = "Ocjena"
)

// EvaluateTaskStatus classifies a single task into a display status.
//
// Overdue is evaluated before on-track, and both boundaries are strict: a
// task due exactly at now falls into neither branch and comes out as
// "In progress".
func EvaluateTaskStatus(t *domain.Task, now time.Time) string {
	if t == nil {
		return "Invalid"
	}

	if t.Status == domain.StatusDone {
		return "Completed"
	}

	if t.DueDate == nil {
		return "No deadline"
	}

	if t.DueDate.Before(now) && t.Status != domain.StatusDone {
		switch t.Priority {
		case domain.PriorityCritical:
			return "CRITICAL - Overdue!"
		case domain.PriorityHigh:
			return "High Priority Overdue"
		case domain.PriorityMedium:
			return "Medium Priority Overdue"
		default:
			return "Overdue"
		}
	} else if t.DueDate.After(now) && t.Status == domain.StatusInProgress {
		switch {
		case t.Priority == domain.PriorityHigh || t.Priority == domain.PriorityCritical:
			return "On track (High)"
		case t.Priority == domain.PriorityLow:
			return "On track (Low)"
		default:
			return "On track (Normal)"
		}
	}

	return "In progress"
}

// PredictDelayRisk scores a task's risk of slipping. Priority, time left
// until the due date, and status each contribute to an integer score that is
// banded highest-first with inclusive lower bounds.
func PredictDelayRisk(t *domain.Task, now time.Time) string {
	if t == nil {
		return RiskUnknown
	}

	score := 0

	switch t.Priority {
	case domain.PriorityCritical:
		score += 3
	case domain.PriorityHigh:
		score += 2
	case domain.PriorityMedium:
		score += 1
	}

	if t.DueDate == nil {
		score++
	} else {
		daysLeft := t.DueDate.Sub(now).Hours() / 24
		switch {
		case daysLeft < 0:
			score += 4
		case daysLeft <= 2:
			score += 3
		case daysLeft <= 5:
			score += 2
		}
	}

	switch t.Status {
	case domain.StatusToDo:
		score += 2
	case domain.StatusInProgress:
		score++
	}

	switch {
	case score >= 8:
		return RiskVeryHigh
	case score >= 5:
		return RiskHigh
	case score >= 3:
		return RiskModerate
	default:
		return RiskLow
	}
}

// SummarizeUserTasks counts one user's tasks per status plus overdue. A user
// with no tasks gets a single placeholder entry instead of zero-filled
// buckets. When there are tasks, a coarse 1-3 grade is appended; the grade
// ratio is computed over the sum of all bucket values, so overdue tasks
// count twice. That matches the legacy behavior and is relied on by callers.
func SummarizeUserTasks(tasks []*domain.Task, now time.Time) map[string]int {
	if len(tasks) == 0 {
		return map[string]int{SummaryKeyNoTasks: 0}
	}

	summary := map[string]int{
		"ToDo":       0,
		"InProgress": 0,
		"Testing":    0,
		"Done":       0,
		"Overdue":    0,
	}
	for _, t := range tasks {
		switch t.Status {
		case domain.StatusToDo:
			summary["ToDo"]++
		case domain.StatusInProgress:
			summary["InProgress"]++
		case domain.StatusTesting:
			summary["Testing"]++
		case domain.StatusDone:
			summary["Done"]++
		}
		if t.IsOverdue(now) {
			summary["Overdue"]++
		}
	}

	total := 0
	for _, v := range summary {
		total += v
	}
	if total > 0 {
		doneRatio := float64(summary["Done"]) / float64(total)
		switch {
		case doneRatio < 0.3:
			summary[SummaryKeyGrade] = 1
		case doneRatio < 0.6:
			summary[SummaryKeyGrade] = 2
		default:
			summary[SummaryKeyGrade] = 3
		}
	}

	return summary
}

// RateTeamPerformance rates the whole snapshot from the done/total ratio and
// appends at most one qualifier. The thirds and halves use integer division,
// matching the legacy cut-offs exactly.
func RateTeamPerformance(tasks []*domain.Task, now time.Time) string {
	if len(tasks) == 0 {
		return "Nema podataka."
	}

	total := len(tasks)
	done, inProgress, overdue := 0, 0, 0
	for _, t := range tasks {
		switch t.Status {
		case domain.StatusDone:
			done++
		case domain.StatusInProgress:
			inProgress++
		}
		if t.IsOverdue(now) {
			overdue++
		}
	}

	var rating string
	switch {
	case done == 0:
		rating = "Loše"
	case done < total/3:
		rating = "Slabo"
	case done < total/2:
		rating = "Umjereno"
	case float64(done) < float64(total)*0.8:
		rating = "Dobro"
	default:
		rating = "Odlično"
	}

	// Only the first matching qualifier is appended.
	if overdue > done/2 {
		rating += " (Previše van roka)"
	} else if inProgress > done {
		rating += " (Još dosta posla)"
	} else if done == total {
		rating += " (Sve završeno)"
	}

	return "Učinkovitost tima: " + rating
}
