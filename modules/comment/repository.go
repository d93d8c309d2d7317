package comment

import (
	"sort"
	"strings"
	"sync"
	"time"
)

// CommentRepository provides append-only in-memory comment storage. Comments
// are never updated or deleted.
type CommentRepository struct {
	comments []Comment
	nextID   int
	mu       sync.RWMutex
}

// NewCommentRepository creates an empty repository with the id counter at 1.
func NewCommentRepository() *CommentRepository {
	return &CommentRepository{
		nextID: 1,
	}
}

// Add assigns the next sequential id, stamps the creation time, and appends
// the comment. Blank or whitespace-only text is rejected.
func (r *CommentRepository) Add(c Comment) (Comment, error) {
	if strings.TrimSpace(c.Text) == "" {
		return Comment{}, ErrEmptyText
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	c.ID = r.nextID
	r.nextID++
	c.Created = time.Now()

	r.comments = append(r.comments, c)
	return c, nil
}

// ForTask returns the comments attached to a task, ordered by creation time
// ascending.
func (r *CommentRepository) ForTask(taskID int) []Comment {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var result []Comment
	for _, c := range r.comments {
		if c.TaskID == taskID {
			result = append(result, c)
		}
	}
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Created.Before(result[j].Created)
	})
	return result
}
