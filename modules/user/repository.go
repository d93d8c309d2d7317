package user

import (
	"sort"
	"sync"
)

// UserRepository holds the fixed, read-only user directory. The directory is
// seeded once per service instance; the core never creates, updates, or
// deletes users.
type UserRepository struct {
	users map[int]*UserInfo
	mu    sync.RWMutex
}

// NewUserRepository creates a new user repository.
func NewUserRepository() *UserRepository {
	return &UserRepository{
		users: make(map[int]*UserInfo),
	}
}

// Seed populates the directory with the fixed team roster.
func (r *UserRepository) Seed() {
	r.mu.Lock()
	defer r.mu.Unlock()

	roster := []*UserInfo{
		{ID: 1, Name: "Adin Mustafić", Email: "admin@test.ba", Role: RoleAdmin},
		{ID: 2, Name: "Lejla Hodžić", Email: "manager@test.ba", Role: RoleManager},
		{ID: 3, Name: "Emir Kovač", Email: "dev1@test.ba", Role: RoleDeveloper},
		{ID: 4, Name: "Sara Begić", Email: "dev2@test.ba", Role: RoleDeveloper},
	}

	for _, u := range roster {
		r.users[u.ID] = u
	}
}

// FindByID finds a user by ID.
func (r *UserRepository) FindByID(userID int) (*UserInfo, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, found := r.users[userID]
	return user, found
}

// Exists checks if a user exists.
func (r *UserRepository) Exists(userID int) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, found := r.users[userID]
	return found
}

// All returns the directory as a snapshot ordered by user ID.
func (r *UserRepository) All() []UserInfo {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]UserInfo, 0, len(r.users))
	for _, u := range r.users {
		result = append(result, *u)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result
}
