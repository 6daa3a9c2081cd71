package models

import "time"

// Service is a catalog entry for a bookable cleaning service.
// Active is cleared instead of deleting the document once bookings reference
// it, so historical bookings never point at nothing.
type Service struct {
	ID          string    `bson:"id" json:"id"`
	Name        string    `bson:"name" json:"name"`
	Description string    `bson:"description" json:"description"`
	BasePrice   float64   `bson:"basePrice" json:"basePrice"`
	Duration    string    `bson:"duration" json:"duration"`
	Active      bool      `bson:"active" json:"active"`
	CreatedAt   time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt   time.Time `bson:"updated_at" json:"updatedAt"`
}

// ServiceSummary is the denormalized service view attached to admin booking listings.
type ServiceSummary struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	BasePrice float64 `json:"basePrice"`
}
