package impl

import (
	"context"
	"log/slog"

	"brokerage/internal/domain/entity"
	domainerrors "brokerage/internal/domain/errors"
	"brokerage/internal/domain/repository"
	"brokerage/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// dashboardService implements the DashboardUsecase interface. Every number
// it serves is recomputed from the base collections on each call; nothing
// here is cached or stored.
type dashboardService struct {
	userRepo        repository.UserRepository
	propertyRepo    repository.PropertyRepository
	appointmentRepo repository.AppointmentRepository
	reviewRepo      repository.ReviewRepository
	logger          *slog.Logger
}

// DashboardServiceParams holds dependencies for dashboardService, injected
// by Fx.
type DashboardServiceParams struct {
	fx.In

	UserRepo        repository.UserRepository
	PropertyRepo    repository.PropertyRepository
	AppointmentRepo repository.AppointmentRepository
	ReviewRepo      repository.ReviewRepository
	Logger          *slog.Logger
}

// NewDashboardService is the constructor for dashboardService.
func NewDashboardService(params DashboardServiceParams) usecase.DashboardUsecase {
	return &dashboardService{
		userRepo:        params.UserRepo,
		propertyRepo:    params.PropertyRepo,
		appointmentRepo: params.AppointmentRepo,
		reviewRepo:      params.ReviewRepo,
		logger:          params.Logger,
	}
}

// AgentStats computes the agent's dashboard counters.
func (srv *dashboardService) AgentStats(ctx context.Context, agentID uuid.UUID) (*usecase.AgentStats, error) {
	agent, err := srv.userRepo.FindByID(ctx, agentID)
	if errors.Is(err, repository.ErrUserNotFound) {
		return nil, domainerrors.ErrUserNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to load agent")
	}
	if agent.Role != entity.RoleAgent {
		return nil, domainerrors.ErrValidationFailed.WithDetails("user is not an agent")
	}

	listings, err := srv.propertyRepo.FindByAgent(ctx, agentID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load agent listings")
	}

	appointments, err := srv.appointmentRepo.FindByAgent(ctx, agentID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load agent appointments")
	}

	stats := &usecase.AgentStats{TotalListings: len(listings)}
	for _, p := range listings {
		switch p.Status {
		case entity.PropertyStatusActive:
			stats.ActiveListings++
		case entity.PropertyStatusPending:
			stats.PendingListings++
		case entity.PropertyStatusSold:
			stats.SoldListings++
		case entity.PropertyStatusRejected:
			stats.RejectedListings++
		}
	}

	for _, a := range appointments {
		switch a.Status {
		case entity.AppointmentStatusPending:
			stats.PendingAppointments++
		case entity.AppointmentStatusConfirmed:
			stats.ConfirmedAppointments++
		case entity.AppointmentStatusCompleted:
			stats.CompletedAppointments++
		}
	}

	stats.ReviewCount, stats.AverageRating, err = srv.agentRating(ctx, listings)
	if err != nil {
		return nil, err
	}

	return stats, nil
}

// agentRating averages the ratings across every listing the agent owns.
// Zero reviews average to exactly 0.
func (srv *dashboardService) agentRating(ctx context.Context, listings []*entity.Property) (int, float64, error) {
	var count, sum int
	for _, p := range listings {
		reviews, err := srv.reviewRepo.FindByProperty(ctx, p.ID)
		if err != nil {
			return 0, 0, errors.Wrap(err, "failed to load reviews for agent rating")
		}

		for _, r := range reviews {
			count++
			sum += r.Rating
		}
	}

	if count == 0 {
		return 0, 0, nil
	}

	return count, float64(sum) / float64(count), nil
}

// AdminStats computes the platform-wide dashboard counters.
func (srv *dashboardService) AdminStats(ctx context.Context) (*usecase.AdminStats, error) {
	users, err := srv.userRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list users")
	}

	listings, err := srv.propertyRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list listings")
	}

	appointments, err := srv.appointmentRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list appointments")
	}

	reviews, err := srv.reviewRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list reviews")
	}

	stats := &usecase.AdminStats{
		TotalUsers:        len(users),
		TotalListings:     len(listings),
		TotalAppointments: len(appointments),
		TotalReviews:      len(reviews),
	}

	for _, u := range users {
		switch u.Role {
		case entity.RoleCustomer:
			stats.TotalCustomers++
		case entity.RoleAgent:
			stats.TotalAgents++
			if u.Status == entity.UserStatusPending {
				stats.PendingAgents++
			}
		}
	}

	for _, p := range listings {
		switch p.Status {
		case entity.PropertyStatusPending:
			stats.PendingListings++
		case entity.PropertyStatusActive:
			stats.ActiveListings++
		case entity.PropertyStatusSold:
			stats.SoldListings++
		}
	}

	for _, r := range reviews {
		if r.Flagged {
			stats.FlaggedReviews++
		}
	}

	return stats, nil
}
