package booking

import (
	"fmt"

	bookingRepo "cleanly/database/repository/booking"
	catalogRepo "cleanly/database/repository/catalog"
	userRepo "cleanly/database/repository/user"
	"cleanly/models"
	"cleanly/services/pricing"
	"cleanly/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// DefaultBookingService is the standard BookingService implementation.
type DefaultBookingService struct {
	Repo      bookingRepo.BookingRepository
	Catalog   catalogRepo.ServiceRepository
	Users     userRepo.UserRepository
	Pricing   *pricing.Engine
	Reminders ReminderScheduler
}

// Create prices and persists a new Pending booking for the customer. The
// referenced service must exist and be active, and the provider must be free
// at the requested date.
func (s *DefaultBookingService) Create(customerID string, in CreateBookingInput) (*models.Booking, error) {
	svc, err := s.Catalog.GetByID(in.ServiceID)
	if err != nil {
		return nil, fmt.Errorf("failed to look up service: %w", err)
	}
	if svc == nil || !svc.Active {
		return nil, utils.NotFoundError{Resource: "Service"}
	}

	taken, err := s.Repo.HasProviderBooking(in.ProviderID, in.BookingDate)
	if err != nil {
		return nil, fmt.Errorf("failed to check provider availability: %w", err)
	}
	if taken {
		return nil, utils.ConflictError{Reason: "Provider is already booked for this date"}
	}

	total, err := s.Pricing.Quote(svc, in.Options, in.CouponCode)
	if err != nil {
		return nil, fmt.Errorf("failed to compute price: %w", err)
	}

	b := &models.Booking{
		ID:          uuid.New().String(),
		UserID:      customerID,
		ProviderID:  in.ProviderID,
		ServiceID:   in.ServiceID,
		Status:      models.BookingPending,
		BookingDate: in.BookingDate,
		Options:     in.Options,
		TotalPrice:  total,
	}
	if err := s.Repo.Create(b); err != nil {
		return nil, fmt.Errorf("failed to persist booking: %w", err)
	}

	if s.Reminders != nil {
		if err := s.Reminders.ScheduleBookingReminder(b); err != nil {
			// The booking stands even when the reminder queue is down.
			utils.GetLogger().Warn("failed to schedule booking reminder",
				zap.String("bookingId", b.ID), zap.Error(err))
		}
	}
	return b, nil
}

// UpdateStatus applies a status transition and returns the updated booking.
// Illegal moves (e.g. Completed back to Pending) are rejected.
func (s *DefaultBookingService) UpdateStatus(id, status string) (*models.Booking, error) {
	if !IsValidStatus(status) {
		return nil, utils.ValidationError{Reason: fmt.Sprintf("Invalid status %q", status)}
	}

	b, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("failed to look up booking: %w", err)
	}
	if b == nil {
		return nil, utils.NotFoundError{Resource: "Booking"}
	}
	if !CanTransition(b.Status, status) {
		return nil, utils.ValidationError{
			Reason: fmt.Sprintf("Cannot change booking status from %s to %s", b.Status, status),
		}
	}

	if err := s.Repo.UpdateStatus(id, status); err != nil {
		return nil, fmt.Errorf("failed to update booking status: %w", err)
	}
	b.Status = status
	return b, nil
}

// ListForCustomer returns all bookings owned by the given customer. A
// customer without bookings gets an empty list, never null.
func (s *DefaultBookingService) ListForCustomer(userID string) ([]models.Booking, error) {
	bookings, err := s.Repo.ListByUser(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list bookings: %w", err)
	}
	if bookings == nil {
		bookings = []models.Booking{}
	}
	return bookings, nil
}

// ListAll returns the admin listing with filter, sort and pagination, each
// booking carrying its user and service summaries.
func (s *DefaultBookingService) ListAll(q models.ListQuery) (*BookingPage, error) {
	bookings, total, err := s.Repo.List(q)
	if err != nil {
		return nil, fmt.Errorf("failed to list bookings: %w", err)
	}

	details := make([]models.BookingDetail, 0, len(bookings))
	for i := range bookings {
		details = append(details, s.decorate(&bookings[i]))
	}

	return &BookingPage{
		Bookings:      details,
		TotalBookings: total,
		CurrentPage:   q.Page,
		TotalPages:    q.TotalPages(total),
	}, nil
}

// Get returns a booking with user and service summaries resolved.
func (s *DefaultBookingService) Get(id string) (*models.BookingDetail, error) {
	b, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("failed to look up booking: %w", err)
	}
	if b == nil {
		return nil, utils.NotFoundError{Resource: "Booking"}
	}
	detail := s.decorate(b)
	return &detail, nil
}

// decorate attaches user and service summaries for display. Lookups that
// fail (e.g. a deleted account) leave the summary empty rather than failing
// the whole listing.
func (s *DefaultBookingService) decorate(b *models.Booking) models.BookingDetail {
	detail := models.BookingDetail{Booking: *b}

	if u, err := s.Users.GetByID(b.UserID); err == nil && u != nil {
		detail.User = &models.UserSummary{ID: u.ID, Name: u.Name, Email: u.Email}
	}
	if svc, err := s.Catalog.GetByID(b.ServiceID); err == nil && svc != nil {
		detail.Service = &models.ServiceSummary{ID: svc.ID, Name: svc.Name, BasePrice: svc.BasePrice}
	}
	return detail
}
