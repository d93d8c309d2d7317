package user

// Role classifies a user within the team.
type Role int

const (
	RoleAdmin Role = iota
	RoleManager
	RoleDeveloper
)

// String returns the display name of the role.
func (r Role) String() string {
	switch r {
	case RoleAdmin:
		return "Admin"
	case RoleManager:
		return "Manager"
	case RoleDeveloper:
		return "Developer"
	default:
		return "Unknown"
	}
}

// UserInfo represents a member of the fixed user directory.
type UserInfo struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  Role   `json:"role"`
}

// GetUserRequest is the request for getting a user.
type GetUserRequest struct {
	UserID int `json:"user_id"`
}

// GetUserResponse is the response for getting a user.
type GetUserResponse struct {
	User  *UserInfo `json:"user,omitempty"`
	Found bool      `json:"found"`
}

// ValidateUserRequest is the request for validating a user.
type ValidateUserRequest struct {
	UserID int `json:"user_id"`
}

// ValidateUserResponse is the response for validating a user.
type ValidateUserResponse struct {
	Valid bool `json:"valid"`
}

// ListUsersRequest is the request for listing all users.
type ListUsersRequest struct{}

// ListUsersResponse is the response for listing all users.
type ListUsersResponse struct {
	Users []UserInfo `json:"users"`
}
