package models

import "time"

// Coupon is a named discount rule. IsPercent selects percentage-of-total
// versus flat-amount semantics for Discount.
type Coupon struct {
	ID        string    `bson:"id" json:"id"`
	Code      string    `bson:"code" json:"code"`
	Discount  float64   `bson:"discount" json:"discount"`
	IsPercent bool      `bson:"isPercent" json:"isPercent"`
	IsActive  bool      `bson:"isActive" json:"isActive"`
	CreatedAt time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt time.Time `bson:"updated_at" json:"updatedAt"`
}
