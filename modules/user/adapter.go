package user

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/go-monolith/mono"
	"github.com/go-monolith/mono/pkg/helper"
)

// UserPort defines the interface for user-directory lookups used by other
// modules (the "port" in hexagonal architecture).
type UserPort interface {
	GetUser(ctx context.Context, userID int) (*UserInfo, error)
	ValidateUser(ctx context.Context, userID int) (bool, error)
	ListUsers(ctx context.Context) ([]UserInfo, error)
}

// userAdapter wraps ServiceContainer for type-safe cross-module communication.
type userAdapter struct {
	container mono.ServiceContainer
}

// NewUserAdapter creates a new adapter for user services.
// container is the ServiceContainer from the user module received via
// SetDependencyServiceContainer.
func NewUserAdapter(container mono.ServiceContainer) UserPort {
	if container == nil {
		panic("user adapter requires non-nil ServiceContainer")
	}
	return &userAdapter{container: container}
}

// GetUser retrieves user information by ID via the get-user service.
// An unknown id returns a nil user, not an error.
func (a *userAdapter) GetUser(ctx context.Context, userID int) (*UserInfo, error) {
	req := GetUserRequest{UserID: userID}
	var resp GetUserResponse

	if err := helper.CallRequestReplyService(
		ctx,
		a.container,
		"get-user",
		json.Marshal,
		json.Unmarshal,
		&req,
		&resp,
	); err != nil {
		return nil, fmt.Errorf("get-user service call failed: %w", err)
	}

	if !resp.Found {
		return nil, nil
	}
	return resp.User, nil
}

// ValidateUser checks if a user exists via the validate-user service.
func (a *userAdapter) ValidateUser(ctx context.Context, userID int) (bool, error) {
	req := ValidateUserRequest{UserID: userID}
	var resp ValidateUserResponse

	if err := helper.CallRequestReplyService(
		ctx,
		a.container,
		"validate-user",
		json.Marshal,
		json.Unmarshal,
		&req,
		&resp,
	); err != nil {
		return false, fmt.Errorf("validate-user service call failed: %w", err)
	}

	return resp.Valid, nil
}

// ListUsers returns the full directory via the list-users service.
func (a *userAdapter) ListUsers(ctx context.Context) ([]UserInfo, error) {
	var resp ListUsersResponse
	if err := helper.CallRequestReplyService(
		ctx,
		a.container,
		"list-users",
		json.Marshal,
		json.Unmarshal,
		&ListUsersRequest{},
		&resp,
	); err != nil {
		return nil, fmt.Errorf("list-users service call failed: %w", err)
	}
	return resp.Users, nil
}
