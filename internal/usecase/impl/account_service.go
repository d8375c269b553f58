// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	deliverycontext "brokerage/internal/delivery/context"
	"brokerage/internal/domain/entity"
	domainerrors "brokerage/internal/domain/errors"
	"brokerage/internal/domain/repository"
	"brokerage/internal/domain/service"
	"brokerage/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// accountService implements the AccountUsecase interface.
type accountService struct {
	userRepo     repository.UserRepository
	sessionRepo  repository.SessionRepository
	tokenService service.TokenService
	notifier     service.Notifier
	logger       *slog.Logger
}

// AccountServiceParams holds dependencies for accountService, injected by Fx.
type AccountServiceParams struct {
	fx.In

	UserRepo     repository.UserRepository
	SessionRepo  repository.SessionRepository
	TokenService service.TokenService
	Notifier     service.Notifier
	Logger       *slog.Logger
}

// NewAccountService is the constructor for accountService.
func NewAccountService(params AccountServiceParams) usecase.AccountUsecase {
	return &accountService{
		userRepo:     params.UserRepo,
		sessionRepo:  params.SessionRepo,
		tokenService: params.TokenService,
		notifier:     params.Notifier,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise the service's own.
func (srv *accountService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register creates an account. Agents land in pending and must wait for
// admin approval; customers and admins are active and logged in immediately.
func (srv *accountService) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.RegisterOutput, error) {
	// Admin accounts are provisioned by seeding, never self-registered.
	if input.Role != entity.RoleCustomer && input.Role != entity.RoleAgent {
		return nil, domainerrors.ErrValidationFailed.WithDetails("unknown role: " + input.Role.String())
	}

	email := strings.TrimSpace(strings.ToLower(input.Email))
	if _, err := srv.userRepo.FindByEmail(ctx, email); err == nil {
		return nil, domainerrors.ErrEmailTaken
	} else if !errors.Is(err, repository.ErrUserNotFound) {
		return nil, errors.Wrap(err, "failed to check email uniqueness")
	}

	status := entity.UserStatusActive
	if input.Role == entity.RoleAgent {
		status = entity.UserStatusPending
	}

	now := time.Now()
	user := &entity.User{
		ID:            uuid.New(),
		Email:         email,
		Password:      input.Password,
		Name:          input.Name,
		Phone:         input.Phone,
		Role:          input.Role,
		Status:        status,
		LicenseNumber: input.LicenseNumber,
		Agency:        input.Agency,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := srv.userRepo.Create(ctx, user); err != nil {
		return nil, errors.Wrap(err, "failed to create user")
	}

	srv.log(ctx).Info("Account registered",
		slog.Any("userID", user.ID), slog.Any("role", user.Role), slog.Any("status", user.Status))

	output := &usecase.RegisterOutput{User: user.Sanitized()}
	if status != entity.UserStatusActive {
		return output, nil
	}

	if err := srv.sessionRepo.SetCurrentUser(ctx, user.ID); err != nil {
		return nil, errors.Wrap(err, "failed to set session after registration")
	}

	token, err := srv.tokenService.GenerateToken(user.ID, user.Role.String())
	if err != nil {
		return nil, errors.Wrap(err, "failed to issue token after registration")
	}
	output.AccessToken = token

	return output, nil
}

// Login matches the plaintext credentials against the user collection. The
// credential comparison is verbatim on purpose; see entity.User.
func (srv *accountService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	email := strings.TrimSpace(strings.ToLower(input.Email))

	user, err := srv.userRepo.FindByEmail(ctx, email)
	if errors.Is(err, repository.ErrUserNotFound) {
		return nil, domainerrors.ErrInvalidCredentials
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to look up user for login")
	}

	if user.Password != input.Password {
		srv.log(ctx).Warn("Login rejected, password mismatch", slog.String("email", email))

		return nil, domainerrors.ErrInvalidCredentials
	}

	if user.Role == entity.RoleAgent && user.Status != entity.UserStatusActive {
		return nil, domainerrors.ErrAgentNotApproved
	}

	if err := srv.sessionRepo.SetCurrentUser(ctx, user.ID); err != nil {
		return nil, errors.Wrap(err, "failed to set session")
	}

	token, err := srv.tokenService.GenerateToken(user.ID, user.Role.String())
	if err != nil {
		return nil, errors.Wrap(err, "failed to issue token")
	}

	srv.log(ctx).Info("User logged in", slog.Any("userID", user.ID), slog.Any("role", user.Role))

	return &usecase.LoginOutput{User: user.Sanitized(), AccessToken: token}, nil
}

// Logout clears the persisted current-user pointer. Logging out with no
// active session is not an error.
func (srv *accountService) Logout(ctx context.Context) error {
	if err := srv.sessionRepo.ClearCurrentUser(ctx); err != nil {
		return errors.Wrap(err, "failed to clear session")
	}

	return nil
}

// CurrentUser resolves the persisted current-user pointer.
func (srv *accountService) CurrentUser(ctx context.Context) (*entity.User, error) {
	id, err := srv.sessionRepo.CurrentUserID(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read session")
	}
	if id == uuid.Nil {
		return nil, domainerrors.ErrUserNotFound.WrapMessage("no active session")
	}

	user, err := srv.userRepo.FindByID(ctx, id)
	if errors.Is(err, repository.ErrUserNotFound) {
		// Stale pointer, e.g. the store was reseeded underneath the session.
		return nil, domainerrors.ErrUserNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to load current user")
	}

	return user.Sanitized(), nil
}

// GetUser retrieves one user by ID.
func (srv *accountService) GetUser(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	user, err := srv.userRepo.FindByID(ctx, id)
	if errors.Is(err, repository.ErrUserNotFound) {
		return nil, domainerrors.ErrUserNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to load user")
	}

	return user.Sanitized(), nil
}

// ListUsers returns every account, credentials blanked.
func (srv *accountService) ListUsers(ctx context.Context) ([]*entity.User, error) {
	users, err := srv.userRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list users")
	}

	sanitized := make([]*entity.User, 0, len(users))
	for _, u := range users {
		sanitized = append(sanitized, u.Sanitized())
	}

	return sanitized, nil
}

// PendingAgents returns agent applications awaiting review.
func (srv *accountService) PendingAgents(ctx context.Context) ([]*entity.User, error) {
	users, err := srv.userRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list users")
	}

	pending := make([]*entity.User, 0)
	for _, u := range users {
		if u.Role == entity.RoleAgent && u.Status == entity.UserStatusPending {
			pending = append(pending, u.Sanitized())
		}
	}

	return pending, nil
}

// UpdateProfile merges the supplied fields into the user's record.
func (srv *accountService) UpdateProfile(ctx context.Context, userID uuid.UUID, input *usecase.UpdateProfileInput) (*entity.User, error) {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if errors.Is(err, repository.ErrUserNotFound) {
		return nil, domainerrors.ErrUserNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to load user for profile update")
	}

	if input.Name != nil {
		user.Name = *input.Name
	}
	if input.Phone != nil {
		user.Phone = *input.Phone
	}
	if input.Avatar != nil {
		user.Avatar = *input.Avatar
	}

	if err := srv.userRepo.Update(ctx, user); err != nil {
		return nil, errors.Wrap(err, "failed to update profile")
	}

	return user.Sanitized(), nil
}

// ApproveAgent activates a pending agent application and notifies the agent.
func (srv *accountService) ApproveAgent(ctx context.Context, agentID uuid.UUID) (*entity.User, error) {
	agent, err := srv.pendingAgent(ctx, agentID)
	if err != nil {
		return nil, err
	}

	agent.Status = entity.UserStatusActive
	if err := srv.userRepo.Update(ctx, agent); err != nil {
		return nil, errors.Wrap(err, "failed to approve agent")
	}

	srv.log(ctx).Info("Agent application approved", slog.Any("agentID", agent.ID))
	srv.notifier.AgentApproved(ctx, agent.ID)

	return agent.Sanitized(), nil
}

// RejectAgent turns down a pending agent application with a reason.
func (srv *accountService) RejectAgent(ctx context.Context, agentID uuid.UUID, reason string) (*entity.User, error) {
	if strings.TrimSpace(reason) == "" {
		return nil, domainerrors.ErrReasonRequired
	}

	agent, err := srv.pendingAgent(ctx, agentID)
	if err != nil {
		return nil, err
	}

	agent.Status = entity.UserStatusRejected
	if err := srv.userRepo.Update(ctx, agent); err != nil {
		return nil, errors.Wrap(err, "failed to reject agent")
	}

	srv.log(ctx).Info("Agent application rejected", slog.Any("agentID", agent.ID))
	srv.notifier.AgentRejected(ctx, agent.ID, reason)

	return agent.Sanitized(), nil
}

// pendingAgent loads an agent account and verifies it is still awaiting
// review. Moderating an already-decided application is a state conflict.
func (srv *accountService) pendingAgent(ctx context.Context, agentID uuid.UUID) (*entity.User, error) {
	agent, err := srv.userRepo.FindByID(ctx, agentID)
	if errors.Is(err, repository.ErrUserNotFound) {
		return nil, domainerrors.ErrUserNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to load agent application")
	}

	if agent.Role != entity.RoleAgent {
		return nil, domainerrors.ErrValidationFailed.WithDetails("user is not an agent")
	}
	if agent.Status != entity.UserStatusPending {
		return nil, domainerrors.ErrInvalidTransition.WithDetails(
			"agent application already " + agent.Status.String())
	}

	return agent, nil
}
