package impl

import (
	"context"
	"testing"

	"brokerage/internal/domain/entity"
	domainerrors "brokerage/internal/domain/errors"
	"brokerage/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccountService_RegisterCustomerLogsInImmediately(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	output, err := env.accounts.Register(ctx, &usecase.RegisterInput{
		Name:     "Juan dela Cruz",
		Email:    "Juan@Example.COM",
		Password: "secret123",
		Role:     entity.RoleCustomer,
	})
	require.NoError(t, err)

	assert.Equal(t, entity.UserStatusActive, output.User.Status)
	assert.Equal(t, "juan@example.com", output.User.Email)
	assert.Empty(t, output.User.Password)
	assert.NotEmpty(t, output.AccessToken)

	sessionID, err := env.sessionRepo.CurrentUserID(ctx)
	require.NoError(t, err)
	assert.Equal(t, output.User.ID, sessionID)
}

func TestAccountService_RegisterAgentAwaitsApproval(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	output, err := env.accounts.Register(ctx, &usecase.RegisterInput{
		Name:          "Maria Santos",
		Email:         "maria@example.com",
		Password:      "secret123",
		Role:          entity.RoleAgent,
		LicenseNumber: "PRC-0012345",
		Agency:        "Santos Realty",
	})
	require.NoError(t, err)

	assert.Equal(t, entity.UserStatusPending, output.User.Status)
	assert.Empty(t, output.AccessToken)

	sessionID, err := env.sessionRepo.CurrentUserID(ctx)
	require.NoError(t, err)
	assert.Equal(t, uuid.Nil, sessionID)
}

func TestAccountService_RegisterRejectsDuplicateEmail(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	input := &usecase.RegisterInput{
		Name:     "Juan dela Cruz",
		Email:    "juan@example.com",
		Password: "secret123",
		Role:     entity.RoleCustomer,
	}
	_, err := env.accounts.Register(ctx, input)
	require.NoError(t, err)

	_, err = env.accounts.Register(ctx, &usecase.RegisterInput{
		Name:     "Impostor",
		Email:    "JUAN@example.com",
		Password: "other456",
		Role:     entity.RoleCustomer,
	})
	assert.ErrorIs(t, err, domainerrors.ErrEmailTaken)
}

func TestAccountService_RegisterRejectsAdminRole(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.accounts.Register(context.Background(), &usecase.RegisterInput{
		Name:     "Sneaky",
		Email:    "sneaky@example.com",
		Password: "secret123",
		Role:     entity.RoleAdmin,
	})

	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestAccountService_LoginChecksPlaintextCredential(t *testing.T) {
	env := newTestEnv(t)
	customer := env.createCustomer(t)
	ctx := context.Background()

	_, err := env.accounts.Login(ctx, &usecase.LoginInput{
		Email:    customer.Email,
		Password: "wrong",
	})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)

	_, err = env.accounts.Login(ctx, &usecase.LoginInput{
		Email:    "nobody@example.com",
		Password: "secret123",
	})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)

	output, err := env.accounts.Login(ctx, &usecase.LoginInput{
		Email:    customer.Email,
		Password: "secret123",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, output.AccessToken)
	assert.Empty(t, output.User.Password)
}

func TestAccountService_LoginBlocksUnapprovedAgent(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	pending := env.createUser(t, entity.RoleAgent, entity.UserStatusPending, "Pending Agent")
	_, err := env.accounts.Login(ctx, &usecase.LoginInput{Email: pending.Email, Password: "secret123"})
	assert.ErrorIs(t, err, domainerrors.ErrAgentNotApproved)

	rejected := env.createUser(t, entity.RoleAgent, entity.UserStatusRejected, "Rejected Agent")
	_, err = env.accounts.Login(ctx, &usecase.LoginInput{Email: rejected.Email, Password: "secret123"})
	assert.ErrorIs(t, err, domainerrors.ErrAgentNotApproved)
}

func TestAccountService_LogoutClearsSession(t *testing.T) {
	env := newTestEnv(t)
	customer := env.createCustomer(t)
	ctx := context.Background()

	_, err := env.accounts.Login(ctx, &usecase.LoginInput{Email: customer.Email, Password: "secret123"})
	require.NoError(t, err)

	require.NoError(t, env.accounts.Logout(ctx))

	_, err = env.accounts.CurrentUser(ctx)
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)

	// Logging out twice is harmless.
	require.NoError(t, env.accounts.Logout(ctx))
}

func TestAccountService_UpdateProfileMergesFields(t *testing.T) {
	env := newTestEnv(t)
	customer := env.createCustomer(t)
	ctx := context.Background()

	newPhone := "+63 917 000 0000"
	updated, err := env.accounts.UpdateProfile(ctx, customer.ID, &usecase.UpdateProfileInput{
		Phone: &newPhone,
	})
	require.NoError(t, err)

	assert.Equal(t, newPhone, updated.Phone)
	assert.Equal(t, customer.Name, updated.Name)
}

func TestAccountService_ApproveAgentLifecycle(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	pending := env.createUser(t, entity.RoleAgent, entity.UserStatusPending, "Pending Agent")

	approved, err := env.accounts.ApproveAgent(ctx, pending.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.UserStatusActive, approved.Status)

	feed := env.notificationsFor(t, pending.ID)
	require.Len(t, feed, 1)
	assert.Equal(t, "Agent Application Approved", feed[0].Title)

	// A decided application cannot be decided again.
	_, err = env.accounts.ApproveAgent(ctx, pending.ID)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidTransition)
	_, err = env.accounts.RejectAgent(ctx, pending.ID, "Too late")
	assert.ErrorIs(t, err, domainerrors.ErrInvalidTransition)
}

func TestAccountService_RejectAgentRequiresReason(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	pending := env.createUser(t, entity.RoleAgent, entity.UserStatusPending, "Pending Agent")

	_, err := env.accounts.RejectAgent(ctx, pending.ID, " ")
	assert.ErrorIs(t, err, domainerrors.ErrReasonRequired)

	rejected, err := env.accounts.RejectAgent(ctx, pending.ID, "License could not be verified")
	require.NoError(t, err)
	assert.Equal(t, entity.UserStatusRejected, rejected.Status)

	feed := env.notificationsFor(t, pending.ID)
	require.Len(t, feed, 1)
	assert.Equal(t, "Agent Application Rejected", feed[0].Title)
	assert.Contains(t, feed[0].Message, "License could not be verified")
}

func TestAccountService_PendingAgentsFiltersByRoleAndStatus(t *testing.T) {
	env := newTestEnv(t)

	env.createCustomer(t)
	env.createAgent(t)
	pending := env.createUser(t, entity.RoleAgent, entity.UserStatusPending, "Pending Agent")

	agents, err := env.accounts.PendingAgents(context.Background())
	require.NoError(t, err)
	require.Len(t, agents, 1)
	assert.Equal(t, pending.ID, agents[0].ID)
	assert.Empty(t, agents[0].Password)
}
