package task

import (
	"sync"
	"time"

	domain "github.com/example/team-task-manager/domain/task"
)

// TaskRepository provides in-memory task storage. It owns the canonical task
// collection: ids are assigned here, monotonically increasing and never
// reused, and every read returns independent copies so callers can never
// mutate stored state.
//
// All structural mutations and snapshot reads are serialized through a single
// lock; a snapshot always observes one point-in-time view.
type TaskRepository struct {
	tasks  []*domain.Task
	nextID int
	mu     sync.RWMutex
}

// NewTaskRepository creates an empty repository with the id counter at 1.
func NewTaskRepository() *TaskRepository {
	return &TaskRepository{
		nextID: 1,
	}
}

// Add assigns the next sequential id, stamps CreatedDate, and stores the
// task. The id is returned and also written back to the caller's task.
// Input validation (non-blank title) is the service layer's responsibility.
func (r *TaskRepository) Add(task *domain.Task) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	task.ID = r.nextID
	r.nextID++
	task.CreatedDate = time.Now()

	r.tasks = append(r.tasks, task.Clone())
	return task.ID
}

// FindByID returns a copy of the matching task, or false if no task has the
// given id. A missing task is an empty result, never an error.
func (r *TaskRepository) FindByID(taskID int) (*domain.Task, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, t := range r.tasks {
		if t.ID == taskID {
			return t.Clone(), true
		}
	}
	return nil, false
}

// FindAll returns a snapshot of all tasks in insertion order.
func (r *TaskRepository) FindAll() []*domain.Task {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*domain.Task, 0, len(r.tasks))
	for _, t := range r.tasks {
		result = append(result, t.Clone())
	}
	return result
}

// FindByUser returns a snapshot of the tasks assigned to the given user,
// in insertion order.
func (r *TaskRepository) FindByUser(userID int) []*domain.Task {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var result []*domain.Task
	for _, t := range r.tasks {
		if t.AssignedToUserID == userID {
			result = append(result, t.Clone())
		}
	}
	return result
}

// FindByStatus returns a snapshot of the tasks in the given status,
// in insertion order.
func (r *TaskRepository) FindByStatus(status domain.Status) []*domain.Task {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var result []*domain.Task
	for _, t := range r.tasks {
		if t.Status == status {
			result = append(result, t.Clone())
		}
	}
	return result
}

// Update overwrites the mutable fields of the stored task matching task.ID:
// title, description, status, priority, due date, assignee, and star flag.
// ID, CreatedDate, and CreatedByUserID are never touched. An unknown id is a
// silent no-op; not every caller checks existence first.
func (r *TaskRepository) Update(task *domain.Task) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.tasks {
		if existing.ID == task.ID {
			existing.Title = task.Title
			existing.Description = task.Description
			existing.Status = task.Status
			existing.Priority = task.Priority
			existing.AssignedToUserID = task.AssignedToUserID
			existing.IsStarred = task.IsStarred
			if task.DueDate != nil {
				due := *task.DueDate
				existing.DueDate = &due
			} else {
				existing.DueDate = nil
			}
			return
		}
	}
}

// Delete removes the task with the given id and reports whether a removal
// occurred. Deleting an absent id returns false and changes nothing.
func (r *TaskRepository) Delete(taskID int) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, t := range r.tasks {
		if t.ID == taskID {
			r.tasks = append(r.tasks[:i], r.tasks[i+1:]...)
			return true
		}
	}
	return false
}
