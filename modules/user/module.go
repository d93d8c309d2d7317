package user

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/go-monolith/mono"
	"github.com/go-monolith/mono/pkg/helper"
)

// UserModule serves the fixed user directory.
type UserModule struct {
	repo *UserRepository
}

// Compile-time interface checks.
var _ mono.Module = (*UserModule)(nil)
var _ mono.ServiceProviderModule = (*UserModule)(nil)

// NewModule creates a new UserModule.
func NewModule() *UserModule {
	return &UserModule{
		repo: NewUserRepository(),
	}
}

// Name returns the module name.
func (m *UserModule) Name() string {
	return "user"
}

// RegisterServices registers request-reply services in the service container.
func (m *UserModule) RegisterServices(container mono.ServiceContainer) error {
	if err := helper.RegisterTypedRequestReplyService(
		container, "get-user", json.Unmarshal, json.Marshal, m.getUser,
	); err != nil {
		return fmt.Errorf("failed to register get-user service: %w", err)
	}

	if err := helper.RegisterTypedRequestReplyService(
		container, "validate-user", json.Unmarshal, json.Marshal, m.validateUser,
	); err != nil {
		return fmt.Errorf("failed to register validate-user service: %w", err)
	}

	if err := helper.RegisterTypedRequestReplyService(
		container, "list-users", json.Unmarshal, json.Marshal, m.listUsers,
	); err != nil {
		return fmt.Errorf("failed to register list-users service: %w", err)
	}

	log.Printf("[user] Registered services: get-user, validate-user, list-users")
	return nil
}

// getUser handles the get-user service request. An unknown id yields an empty
// result, not an error.
func (m *UserModule) getUser(_ context.Context, req GetUserRequest, _ *mono.Msg) (GetUserResponse, error) {
	user, found := m.repo.FindByID(req.UserID)
	if !found {
		return GetUserResponse{Found: false}, nil
	}
	return GetUserResponse{User: user, Found: true}, nil
}

// validateUser handles the validate-user service request.
func (m *UserModule) validateUser(_ context.Context, req ValidateUserRequest, _ *mono.Msg) (ValidateUserResponse, error) {
	return ValidateUserResponse{Valid: m.repo.Exists(req.UserID)}, nil
}

// listUsers handles the list-users service request.
func (m *UserModule) listUsers(_ context.Context, _ ListUsersRequest, _ *mono.Msg) (ListUsersResponse, error) {
	return ListUsersResponse{Users: m.repo.All()}, nil
}

// Start seeds the directory.
func (m *UserModule) Start(_ context.Context) error {
	m.repo.Seed()
	log.Println("[user] Module started with seeded team roster")
	return nil
}

// Stop shuts down the module.
func (m *UserModule) Stop(_ context.Context) error {
	log.Println("[user] Module stopped")
	return nil
}
