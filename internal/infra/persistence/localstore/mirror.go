// Package localstore implements the persistence layer as in-memory entity
// collections backed by a durable key-value mirror: one key per collection,
// value = the full JSON-serialized list, overwritten on every mutation.
package localstore

import "context"

// Collection keys in the durable mirror. The "tes_" prefix is the product's
// historical storage namespace and is kept for data compatibility.
const (
	KeyUsers         = "tes_users"
	KeyProperties    = "tes_properties"
	KeyAppointments  = "tes_appointments"
	KeyReviews       = "tes_reviews"
	KeyNotifications = "tes_notifications"
	KeyCurrentUser   = "tes_current_user"

	// Reserved for the auxiliary CRUD collections that live outside this
	// core (same load/save contract, no entity surface here).
	KeyPayments    = "tes_payments"
	KeyContracts   = "tes_contracts"
	KeyMaintenance = "tes_maintenance"
	KeyInquiries   = "tes_inquiries"
	KeyEquipment   = "tes_equipment"
	KeyVehicles    = "tes_vehicles"
)

// Mirror is the durable key-value medium behind the entity stores.
// Implementations must make a completed Save visible to any later Load.
type Mirror interface {
	// Load returns the value stored under key, or (nil, nil) when the key
	// has never been written.
	Load(ctx context.Context, key string) ([]byte, error)

	// Save overwrites the value stored under key.
	Save(ctx context.Context, key string, value []byte) error

	// Delete removes key and its value.
	Delete(ctx context.Context, key string) error
}
