package catalog

import (
	"fmt"

	bookingRepo "cleanly/database/repository/booking"
	catalogRepo "cleanly/database/repository/catalog"
	"cleanly/models"
	"cleanly/utils"

	"github.com/google/uuid"
)

// ServiceInput carries the writable catalog fields.
type ServiceInput struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	BasePrice   float64 `json:"basePrice"`
	Duration    string  `json:"duration"`
}

// CatalogService manages the service catalog.
type CatalogService interface {
	// Create validates and persists a new catalog entry.
	Create(in ServiceInput) (*models.Service, error)
	// Get returns a service by id.
	Get(id string) (*models.Service, error)
	// List returns all active services.
	List() ([]models.Service, error)
	// Update overwrites every writable field of an existing service.
	Update(id string, in ServiceInput) (*models.Service, error)
	// Delete removes an unreferenced service, or archives it when bookings
	// reference it. Reports whether the service was archived.
	Delete(id string) (archived bool, err error)
}

// DefaultCatalogService is the standard CatalogService implementation.
type DefaultCatalogService struct {
	Repo     catalogRepo.ServiceRepository
	Bookings bookingRepo.BookingRepository
}

// Create validates and persists a new catalog entry.
func (s *DefaultCatalogService) Create(in ServiceInput) (*models.Service, error) {
	if err := validate(in); err != nil {
		return nil, err
	}

	svc := &models.Service{
		ID:          uuid.New().String(),
		Name:        in.Name,
		Description: in.Description,
		BasePrice:   in.BasePrice,
		Duration:    in.Duration,
		Active:      true,
	}
	if err := s.Repo.Create(svc); err != nil {
		return nil, fmt.Errorf("failed to persist service: %w", err)
	}
	return svc, nil
}

// Get returns a service by id.
func (s *DefaultCatalogService) Get(id string) (*models.Service, error) {
	svc, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("failed to look up service: %w", err)
	}
	if svc == nil {
		return nil, utils.NotFoundError{Resource: "Service"}
	}
	return svc, nil
}

// List returns all active services.
func (s *DefaultCatalogService) List() ([]models.Service, error) {
	services, err := s.Repo.GetAllActive()
	if err != nil {
		return nil, fmt.Errorf("failed to list services: %w", err)
	}
	return services, nil
}

// Update overwrites every writable field of an existing service. Existing
// bookings keep their stored price; the new base price applies only to
// bookings created afterwards.
func (s *DefaultCatalogService) Update(id string, in ServiceInput) (*models.Service, error) {
	if err := validate(in); err != nil {
		return nil, err
	}

	svc, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("failed to look up service: %w", err)
	}
	if svc == nil {
		return nil, utils.NotFoundError{Resource: "Service"}
	}

	svc.Name = in.Name
	svc.Description = in.Description
	svc.BasePrice = in.BasePrice
	svc.Duration = in.Duration

	if err := s.Repo.Update(svc); err != nil {
		return nil, fmt.Errorf("failed to update service: %w", err)
	}
	return svc, nil
}

// Delete removes an unreferenced service. Once any booking references the
// service it is archived instead, so those bookings never dangle.
func (s *DefaultCatalogService) Delete(id string) (bool, error) {
	svc, err := s.Repo.GetByID(id)
	if err != nil {
		return false, fmt.Errorf("failed to look up service: %w", err)
	}
	if svc == nil {
		return false, utils.NotFoundError{Resource: "Service"}
	}

	referenced, err := s.Bookings.CountByService(id)
	if err != nil {
		return false, fmt.Errorf("failed to count bookings for service: %w", err)
	}
	if referenced > 0 {
		if err := s.Repo.Archive(id); err != nil {
			return false, fmt.Errorf("failed to archive service: %w", err)
		}
		return true, nil
	}

	if err := s.Repo.Delete(id); err != nil {
		return false, fmt.Errorf("failed to delete service: %w", err)
	}
	return false, nil
}

func validate(in ServiceInput) error {
	if in.Name == "" {
		return utils.ValidationError{Reason: "Service name is required"}
	}
	if in.BasePrice <= 0 {
		return utils.ValidationError{Reason: "Base price must be positive"}
	}
	return nil
}
