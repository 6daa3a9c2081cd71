package bookingRepo

import (
	"time"

	"cleanly/models"
)

// BookingRepository defines methods for booking data access.
type BookingRepository interface {
	// Create inserts a new booking record; losing the provider/date
	// uniqueness race yields a ConflictError.
	Create(b *models.Booking) error
	// GetByID retrieves a booking by its unique ID; nil if absent.
	GetByID(id string) (*models.Booking, error)
	// UpdateStatus overwrites a booking's status.
	UpdateStatus(id, status string) error
	// ListByUser retrieves all bookings owned by the given customer.
	ListByUser(userID string) ([]models.Booking, error)
	// List retrieves bookings matching the query with the total count.
	List(q models.ListQuery) ([]models.Booking, int64, error)
	// CountByStatus returns the number of bookings in the given status.
	CountByStatus(status string) (int64, error)
	// CountByService returns the number of bookings referencing a service.
	CountByService(serviceID string) (int64, error)
	// HasProviderBooking reports whether the provider already holds a
	// non-cancelled booking at the given date.
	HasProviderBooking(providerID string, date time.Time) (bool, error)
	// SumCompletedTotal sums the stored totalPrice over Completed bookings.
	SumCompletedTotal() (float64, error)
}
