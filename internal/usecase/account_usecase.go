// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"brokerage/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// RegisterInput defines the data required to register a new account.
// Agents additionally supply their license number and agency.
type RegisterInput struct {
	Name          string          `json:"name" validate:"required"`
	Email         string          `json:"email" validate:"required,email"`
	Password      string          `json:"password" validate:"required,min=6"`
	Phone         string          `json:"phone"`
	Role          entity.UserRole `json:"role" validate:"required"`
	LicenseNumber string          `json:"license_number"`
	Agency        string          `json:"agency"`
}

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// UpdateProfileInput defines the editable profile fields. Nil fields are
// left unchanged.
type UpdateProfileInput struct {
	Name   *string `json:"name"`
	Phone  *string `json:"phone"`
	Avatar *string `json:"avatar"`
}

// --- Output DTOs ---

// RegisterOutput returns the newly created account. AccessToken is set only
// when registration logs the account in immediately (everyone but agents,
// whose applications await admin review).
type RegisterOutput struct {
	User        *entity.User `json:"user"`
	AccessToken string       `json:"access_token,omitempty"`
}

// LoginOutput returns the session token after a successful login.
type LoginOutput struct {
	User        *entity.User `json:"user"`
	AccessToken string       `json:"access_token"`
}

// AccountUsecase defines the interface for identity and agent-moderation
// operations. This is the contract the delivery layer depends on.
type AccountUsecase interface {
	// Register creates an account. Agent registrations start pending;
	// everyone else is active and logged in immediately.
	Register(ctx context.Context, input *RegisterInput) (*RegisterOutput, error)

	// Login matches the plaintext credentials against the user collection,
	// sets the persisted current-user pointer and issues a session token.
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)

	// Logout clears the persisted current-user pointer.
	Logout(ctx context.Context) error

	// CurrentUser resolves the persisted current-user pointer, or
	// ErrUserNotFound when no session is active.
	CurrentUser(ctx context.Context) (*entity.User, error)

	// GetUser retrieves one user by ID.
	GetUser(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// ListUsers returns every account, for admin user management.
	ListUsers(ctx context.Context) ([]*entity.User, error)

	// PendingAgents returns agent applications awaiting review.
	PendingAgents(ctx context.Context) ([]*entity.User, error)

	// UpdateProfile merges the supplied fields into the user's record.
	UpdateProfile(ctx context.Context, userID uuid.UUID, input *UpdateProfileInput) (*entity.User, error)

	// ApproveAgent activates a pending agent application and notifies the
	// agent.
	ApproveAgent(ctx context.Context, agentID uuid.UUID) (*entity.User, error)

	// RejectAgent turns down a pending agent application with a reason and
	// notifies the agent.
	RejectAgent(ctx context.Context, agentID uuid.UUID, reason string) (*entity.User, error)
}
