package models

import "time"

// Booking lifecycle statuses.
const (
	BookingPending   = "Pending"
	BookingAccepted  = "Accepted"
	BookingCompleted = "Completed"
	BookingCancelled = "Cancelled"
)

// Booking is a scheduled engagement between a customer and a provider.
// TotalPrice is computed once at creation from the service price, selected
// options and coupon, and is never recomputed afterwards.
type Booking struct {
	ID          string          `bson:"id" json:"id"`
	UserID      string          `bson:"userId" json:"userId"`
	ProviderID  string          `bson:"providerId" json:"providerId"`
	ServiceID   string          `bson:"serviceId" json:"serviceId"`
	Status      string          `bson:"status" json:"status"`
	BookingDate time.Time       `bson:"bookingDate" json:"bookingDate"`
	Options     map[string]bool `bson:"options,omitempty" json:"options,omitempty"`
	TotalPrice  float64         `bson:"totalPrice" json:"totalPrice"`
	CreatedAt   time.Time       `bson:"created_at" json:"createdAt"`
	UpdatedAt   time.Time       `bson:"updated_at" json:"updatedAt"`
}

// BookingDetail is a booking with user and service summaries resolved,
// used by the admin listing and detail endpoints.
type BookingDetail struct {
	Booking
	User    *UserSummary    `json:"user,omitempty"`
	Service *ServiceSummary `json:"service,omitempty"`
}
