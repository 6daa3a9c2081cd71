package userRepo

import "cleanly/models"

// UserRepository defines methods for user data access.
type UserRepository interface {
	// GetByID retrieves a user by its unique ID; nil if absent.
	GetByID(id string) (*models.User, error)
	// GetByEmail retrieves a user by its email address; nil if absent.
	GetByEmail(email string) (*models.User, error)
	// List retrieves users matching the query with the total count.
	List(q models.ListQuery) ([]models.User, int64, error)
	// ListApprovedProviders retrieves approved providers for the public listing.
	ListApprovedProviders() ([]models.PublicProvider, error)
	// Count returns the total number of users.
	Count() (int64, error)
	// CountPendingProviders returns providers still awaiting approval.
	CountPendingProviders() (int64, error)
	// Create inserts a new user record.
	Create(user *models.User) error
	// Update modifies an existing user record.
	Update(user *models.User) error
	// Delete removes a user record by its ID.
	Delete(id string) error
}
