package models

import "time"

// Roles a user account can hold.
const (
	RoleCustomer = "customer"
	RoleProvider = "provider"
	RoleAdmin    = "admin"
)

// User represents a platform account: customers, providers and admins share
// one collection, discriminated by Role.
type User struct {
	ID           string    `bson:"id" json:"id"`
	Name         string    `bson:"name" json:"name"`
	Email        string    `bson:"email" json:"email"`
	PasswordHash string    `bson:"passwordHash" json:"-"`
	Role         string    `bson:"role" json:"role"`
	IsApproved   bool      `bson:"isApproved" json:"isApproved"`
	CreatedAt    time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt    time.Time `bson:"updated_at" json:"updatedAt"`
}

// PublicProvider is the provider shape exposed on the public listing.
type PublicProvider struct {
	ID   string `bson:"id" json:"id"`
	Name string `bson:"name" json:"name"`
}

// UserSummary is the denormalized user view attached to admin booking listings.
type UserSummary struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}
