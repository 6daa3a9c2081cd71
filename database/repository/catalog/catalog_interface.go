package catalogRepo

import "cleanly/models"

// ServiceRepository defines methods for service catalog data access.
type ServiceRepository interface {
	// GetByID retrieves a service by its unique ID; nil if absent.
	GetByID(id string) (*models.Service, error)
	// GetAllActive retrieves every active catalog entry.
	GetAllActive() ([]models.Service, error)
	// Create inserts a new service record.
	Create(svc *models.Service) error
	// Update overwrites an existing service record.
	Update(svc *models.Service) error
	// Archive clears the active flag without deleting the document.
	Archive(id string) error
	// Delete removes a service record by its ID.
	Delete(id string) error
}
