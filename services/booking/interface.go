package booking

import (
	"time"

	"cleanly/models"
)

// CreateBookingInput is the customer-facing booking request payload.
type CreateBookingInput struct {
	ProviderID  string          `json:"providerId" binding:"required"`
	ServiceID   string          `json:"serviceId" binding:"required"`
	BookingDate time.Time       `json:"bookingDate" binding:"required"`
	Options     map[string]bool `json:"options"`
	CouponCode  string          `json:"couponCode"`
}

// BookingPage is one page of the admin booking listing.
type BookingPage struct {
	Bookings      []models.BookingDetail `json:"bookings"`
	TotalBookings int64                  `json:"totalBookings"`
	CurrentPage   int                    `json:"currentPage"`
	TotalPages    int                    `json:"totalPages"`
}

// ReminderScheduler schedules a reminder to fire at the booking date.
// The asynq-backed implementation lives in the cron package.
type ReminderScheduler interface {
	ScheduleBookingReminder(b *models.Booking) error
}

// BookingService manages the booking lifecycle.
type BookingService interface {
	// Create prices and persists a new Pending booking for the customer.
	Create(customerID string, in CreateBookingInput) (*models.Booking, error)
	// UpdateStatus applies a status transition and returns the updated booking.
	UpdateStatus(id, status string) (*models.Booking, error)
	// ListForCustomer returns all bookings owned by the given customer.
	ListForCustomer(userID string) ([]models.Booking, error)
	// ListAll returns the admin listing with filter, sort and pagination.
	ListAll(q models.ListQuery) (*BookingPage, error)
	// Get returns a booking with user and service summaries resolved.
	Get(id string) (*models.BookingDetail, error)
}
