package pricing

import (
	"fmt"

	couponRepo "cleanly/database/repository/coupon"
	"cleanly/models"
)

// Surcharge amounts for the recognized add-on options. Unrecognized flags
// are ignored.
var surcharges = map[string]float64{
	"windows":     20,
	"deepKitchen": 30,
}

// Engine computes booking totals. It is pure apart from a single coupon
// lookup when a code is supplied.
type Engine struct {
	Coupons couponRepo.CouponRepository
}

// NewEngine creates a pricing engine over the given coupon source.
func NewEngine(coupons couponRepo.CouponRepository) *Engine {
	return &Engine{Coupons: coupons}
}

// Quote computes the total price for a service booking: the service's base
// price, plus flat surcharges for selected options, minus the coupon
// discount. A missing or inactive coupon applies no discount and is not an
// error. The result never goes below zero.
func (e *Engine) Quote(svc *models.Service, options map[string]bool, couponCode string) (float64, error) {
	total := svc.BasePrice

	for name, selected := range options {
		if !selected {
			continue
		}
		if amount, ok := surcharges[name]; ok {
			total += amount
		}
	}

	if couponCode != "" {
		coupon, err := e.Coupons.GetActiveByCode(couponCode)
		if err != nil {
			return 0, fmt.Errorf("coupon lookup failed: %w", err)
		}
		if coupon != nil {
			if coupon.IsPercent {
				total -= total * coupon.Discount / 100
			} else {
				total -= coupon.Discount
			}
		}
	}

	if total < 0 {
		total = 0
	}
	return total, nil
}
