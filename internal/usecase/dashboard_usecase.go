package usecase

import (
	"context"

	"github.com/google/uuid"
)

// AgentStats aggregates an agent's catalog and appointment book for their
// dashboard.
type AgentStats struct {
	TotalListings    int `json:"total_listings"`
	ActiveListings   int `json:"active_listings"`
	PendingListings  int `json:"pending_listings"`
	SoldListings     int `json:"sold_listings"`
	RejectedListings int `json:"rejected_listings"`

	PendingAppointments   int `json:"pending_appointments"`
	ConfirmedAppointments int `json:"confirmed_appointments"`
	CompletedAppointments int `json:"completed_appointments"`

	ReviewCount   int     `json:"review_count"`
	AverageRating float64 `json:"average_rating"`
}

// AdminStats aggregates platform-wide counters for the admin dashboard.
type AdminStats struct {
	TotalUsers     int `json:"total_users"`
	TotalCustomers int `json:"total_customers"`
	TotalAgents    int `json:"total_agents"`
	PendingAgents  int `json:"pending_agents"`

	TotalListings   int `json:"total_listings"`
	PendingListings int `json:"pending_listings"`
	ActiveListings  int `json:"active_listings"`
	SoldListings    int `json:"sold_listings"`

	TotalAppointments int `json:"total_appointments"`
	TotalReviews      int `json:"total_reviews"`
	FlaggedReviews    int `json:"flagged_reviews"`
}

// DashboardUsecase defines the interface for derived, read-only dashboard
// views. Everything here is computed from the base collections on demand.
type DashboardUsecase interface {
	// AgentStats computes the agent's dashboard counters.
	AgentStats(ctx context.Context, agentID uuid.UUID) (*AgentStats, error)

	// AdminStats computes the platform-wide dashboard counters.
	AdminStats(ctx context.Context) (*AdminStats, error)
}
