package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"brokerage/config"
	"brokerage/internal/domain/entity"
	"brokerage/internal/domain/repository"
	"brokerage/internal/domain/service"
	"brokerage/internal/infra/auth"
	"brokerage/internal/infra/notification"
	"brokerage/internal/infra/persistence/localstore"
	"brokerage/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// testEnv wires every service against real in-memory repositories so tests
// exercise the same persistence semantics production sees.
type testEnv struct {
	cfg *config.Config

	userRepo         repository.UserRepository
	sessionRepo      repository.SessionRepository
	propertyRepo     repository.PropertyRepository
	appointmentRepo  repository.AppointmentRepository
	reviewRepo       repository.ReviewRepository
	notificationRepo repository.NotificationRepository

	accounts      usecase.AccountUsecase
	listings      usecase.ListingUsecase
	bookings      usecase.BookingUsecase
	reviews       usecase.ReviewUsecase
	notifications usecase.NotificationUsecase
	dashboards    usecase.DashboardUsecase

	// clock is what the booking service reads as "now".
	clock time.Time
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	cfg := &config.Config{}
	cfg.SecretKey.Access = "test-secret"
	cfg.Lifecycle = config.LifecycleConfig{NotifyCascadeCancel: true}

	return newTestEnvWithConfig(t, cfg)
}

func newTestEnvWithConfig(t *testing.T, cfg *config.Config) *testEnv {
	t.Helper()

	ctx := context.Background()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	mirror := localstore.NewMemoryMirror()

	userRepo, err := localstore.NewUserRepository(ctx, mirror, cfg)
	require.NoError(t, err)
	sessionRepo := localstore.NewSessionRepository(mirror)
	propertyRepo, err := localstore.NewPropertyRepository(ctx, mirror, cfg)
	require.NoError(t, err)
	appointmentRepo, err := localstore.NewAppointmentRepository(ctx, mirror)
	require.NoError(t, err)
	reviewRepo, err := localstore.NewReviewRepository(ctx, mirror)
	require.NoError(t, err)
	notificationRepo, err := localstore.NewNotificationRepository(ctx, mirror)
	require.NoError(t, err)

	notifier := notification.NewDispatcher(notificationRepo, logger)
	tokenService := newTestTokenService(t, cfg)

	env := &testEnv{
		cfg:              cfg,
		userRepo:         userRepo,
		sessionRepo:      sessionRepo,
		propertyRepo:     propertyRepo,
		appointmentRepo:  appointmentRepo,
		reviewRepo:       reviewRepo,
		notificationRepo: notificationRepo,
		clock:            time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC),
	}

	env.accounts = NewAccountService(AccountServiceParams{
		UserRepo:     userRepo,
		SessionRepo:  sessionRepo,
		TokenService: tokenService,
		Notifier:     notifier,
		Logger:       logger,
	})
	env.listings = NewListingService(ListingServiceParams{
		PropertyRepo:    propertyRepo,
		AppointmentRepo: appointmentRepo,
		UserRepo:        userRepo,
		Notifier:        notifier,
		Config:          cfg,
		Logger:          logger,
	})
	env.bookings = NewBookingService(BookingServiceParams{
		AppointmentRepo: appointmentRepo,
		PropertyRepo:    propertyRepo,
		UserRepo:        userRepo,
		Notifier:        notifier,
		Logger:          logger,
	})
	env.bookings.(*bookingService).now = func() time.Time { return env.clock }
	env.reviews = NewReviewService(ReviewServiceParams{
		ReviewRepo:      reviewRepo,
		AppointmentRepo: appointmentRepo,
		PropertyRepo:    propertyRepo,
		UserRepo:        userRepo,
		Notifier:        notifier,
		Logger:          logger,
	})
	env.notifications = NewNotificationService(NotificationServiceParams{
		NotificationRepo: notificationRepo,
		Logger:           logger,
	})
	env.dashboards = NewDashboardService(DashboardServiceParams{
		UserRepo:        userRepo,
		PropertyRepo:    propertyRepo,
		AppointmentRepo: appointmentRepo,
		ReviewRepo:      reviewRepo,
		Logger:          logger,
	})

	return env
}

func newTestTokenService(t *testing.T, cfg *config.Config) service.TokenService {
	t.Helper()

	tokenService, err := auth.NewJWTService(cfg)
	require.NoError(t, err)

	return tokenService
}

// tomorrow returns the first bookable viewing day relative to the test clock.
func (env *testEnv) tomorrow() time.Time {
	return time.Date(env.clock.Year(), env.clock.Month(), env.clock.Day(), 0, 0, 0, 0, env.clock.Location()).AddDate(0, 0, 1)
}

func (env *testEnv) createUser(t *testing.T, role entity.UserRole, status entity.UserStatus, name string) *entity.User {
	t.Helper()

	user := &entity.User{
		ID:        uuid.New(),
		Email:     uuid.New().String() + "@example.com",
		Password:  "secret123",
		Name:      name,
		Role:      role,
		Status:    status,
		CreatedAt: env.clock,
		UpdatedAt: env.clock,
	}
	require.NoError(t, env.userRepo.Create(context.Background(), user))

	return user
}

func (env *testEnv) createAgent(t *testing.T) *entity.User {
	return env.createUser(t, entity.RoleAgent, entity.UserStatusActive, "Test Agent")
}

func (env *testEnv) createCustomer(t *testing.T) *entity.User {
	return env.createUser(t, entity.RoleCustomer, entity.UserStatusActive, "Test Customer")
}

func (env *testEnv) createAdmin(t *testing.T) *entity.User {
	return env.createUser(t, entity.RoleAdmin, entity.UserStatusActive, "Test Admin")
}

// createActiveListing walks a submission through admin approval so the
// listing reaches customers the same way it does in production.
func (env *testEnv) createActiveListing(t *testing.T, agent *entity.User) *entity.Property {
	t.Helper()

	listing := env.submitListing(t, agent)
	approved, err := env.listings.Approve(context.Background(), listing.ID)
	require.NoError(t, err)

	return approved
}

func (env *testEnv) submitListing(t *testing.T, agent *entity.User) *entity.Property {
	t.Helper()

	listing, err := env.listings.Submit(context.Background(), &usecase.SubmitListingInput{
		AgentID:   agent.ID,
		Title:     "Two-Bedroom Condo in Makati",
		Type:      entity.PropertyTypeCondo,
		Price:     4_500_000,
		Location:  "Makati City",
		Bedrooms:  2,
		Bathrooms: 1,
		Area:      54.5,
	})
	require.NoError(t, err)

	return listing
}

// bookViewing creates a pending appointment for the first bookable day.
func (env *testEnv) bookViewing(t *testing.T, customer *entity.User, property *entity.Property) *entity.Appointment {
	t.Helper()

	appointment, err := env.bookings.Book(context.Background(), &usecase.BookInput{
		PropertyID: property.ID,
		CustomerID: customer.ID,
		Date:       env.tomorrow(),
		TimeSlot:   "10:00 AM",
	})
	require.NoError(t, err)

	return appointment
}

// completedViewing walks an appointment through confirm and complete.
func (env *testEnv) completedViewing(t *testing.T, customer *entity.User, agent *entity.User, property *entity.Property) *entity.Appointment {
	t.Helper()

	ctx := context.Background()
	appointment := env.bookViewing(t, customer, property)
	_, err := env.bookings.Confirm(ctx, agent.ID, appointment.ID)
	require.NoError(t, err)
	completed, err := env.bookings.Complete(ctx, agent.ID, appointment.ID)
	require.NoError(t, err)

	return completed
}

func (env *testEnv) notificationsFor(t *testing.T, userID uuid.UUID) []*entity.Notification {
	t.Helper()

	notifications, err := env.notificationRepo.FindByUser(context.Background(), userID)
	require.NoError(t, err)

	return notifications
}
