package localstore

import (
	"time"

	"brokerage/internal/domain/entity"

	"github.com/google/uuid"
)

// Fixed identities for the demo fixture dataset, stable across runs so the
// collections can reference each other.
var (
	SeedAdminID    = uuid.MustParse("3e0c2b6a-0a5a-4cf0-9d95-1d8b3a8f0001")
	SeedAgentID    = uuid.MustParse("3e0c2b6a-0a5a-4cf0-9d95-1d8b3a8f0002")
	SeedCustomerID = uuid.MustParse("3e0c2b6a-0a5a-4cf0-9d95-1d8b3a8f0003")

	seedHouseID = uuid.MustParse("6f1d4c7b-1b6b-4d01-8ea6-2e9c4b9f0001")
	seedCondoID = uuid.MustParse("6f1d4c7b-1b6b-4d01-8ea6-2e9c4b9f0002")
	seedLotID   = uuid.MustParse("6f1d4c7b-1b6b-4d01-8ea6-2e9c4b9f0003")

	seedTime = time.Date(2025, time.January, 6, 9, 0, 0, 0, time.UTC)
)

// seedUsers returns the demo accounts installed on first run: one of each
// role, all active, with deliberately guessable demo credentials.
func seedUsers() []*entity.User {
	return []*entity.User{
		{
			ID:        SeedAdminID,
			Email:     "admin@tes.ph",
			Password:  "admin123",
			Name:      "Tes Admin",
			Phone:     "+63 917 555 0100",
			Role:      entity.RoleAdmin,
			Status:    entity.UserStatusActive,
			CreatedAt: seedTime,
			UpdatedAt: seedTime,
		},
		{
			ID:            SeedAgentID,
			Email:         "agent@tes.ph",
			Password:      "agent123",
			Name:          "Maria Santos",
			Phone:         "+63 917 555 0101",
			Role:          entity.RoleAgent,
			Status:        entity.UserStatusActive,
			LicenseNumber: "PRC-0045821",
			Agency:        "Santos Realty Group",
			CreatedAt:     seedTime,
			UpdatedAt:     seedTime,
		},
		{
			ID:        SeedCustomerID,
			Email:     "customer@tes.ph",
			Password:  "customer123",
			Name:      "Juan dela Cruz",
			Phone:     "+63 917 555 0102",
			Role:      entity.RoleCustomer,
			Status:    entity.UserStatusActive,
			CreatedAt: seedTime,
			UpdatedAt: seedTime,
		},
	}
}

// seedProperties returns the demo listings installed on first run, all owned
// by the seed agent and already approved so customers have something to
// browse immediately.
func seedProperties() []*entity.Property {
	return []*entity.Property{
		{
			ID:          seedHouseID,
			AgentID:     SeedAgentID,
			Title:       "Modern Family Home in Alabang",
			Type:        entity.PropertyTypeHouse,
			Price:       12_500_000,
			Location:    "Alabang, Muntinlupa",
			Bedrooms:    4,
			Bathrooms:   3,
			Area:        220,
			Description: "Two-storey home with a landscaped garden and a two-car garage.",
			Photos: []string{
				"https://images.tes.ph/listings/alabang-house-1.jpg",
				"https://images.tes.ph/listings/alabang-house-2.jpg",
			},
			Status:    entity.PropertyStatusActive,
			Views:     42,
			CreatedAt: seedTime,
			UpdatedAt: seedTime,
		},
		{
			ID:          seedCondoID,
			AgentID:     SeedAgentID,
			Title:       "BGC One-Bedroom Condo",
			Type:        entity.PropertyTypeCondo,
			Price:       8_900_000,
			Location:    "Bonifacio Global City, Taguig",
			Bedrooms:    1,
			Bathrooms:   1,
			Area:        48,
			Description: "High-floor unit with city views, walking distance to High Street.",
			Photos: []string{
				"https://images.tes.ph/listings/bgc-condo-1.jpg",
			},
			Status:    entity.PropertyStatusActive,
			Views:     67,
			CreatedAt: seedTime,
			UpdatedAt: seedTime,
		},
		{
			ID:          seedLotID,
			AgentID:     SeedAgentID,
			Title:       "Residential Lot in Tagaytay",
			Type:        entity.PropertyTypeLot,
			Price:       4_200_000,
			Location:    "Tagaytay, Cavite",
			Area:        300,
			Description: "Cool-climate lot on a paved road, ready for construction.",
			Photos: []string{
				"https://images.tes.ph/listings/tagaytay-lot-1.jpg",
			},
			Status:    entity.PropertyStatusPending,
			CreatedAt: seedTime,
			UpdatedAt: seedTime,
		},
	}
}
