package pricing

import (
	"testing"

	"cleanly/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memCoupons is an in-memory CouponRepository for tests.
type memCoupons struct {
	coupons map[string]models.Coupon
}

func (m *memCoupons) GetActiveByCode(code string) (*models.Coupon, error) {
	c, ok := m.coupons[code]
	if !ok || !c.IsActive {
		return nil, nil
	}
	return &c, nil
}

func (m *memCoupons) GetByID(id string) (*models.Coupon, error) { return nil, nil }
func (m *memCoupons) GetAll() ([]models.Coupon, error)          { return nil, nil }
func (m *memCoupons) Create(c *models.Coupon) error             { return nil }
func (m *memCoupons) SetActive(id string, active bool) error    { return nil }
func (m *memCoupons) Delete(id string) error                    { return nil }

func newEngine(coupons ...models.Coupon) *Engine {
	m := &memCoupons{coupons: make(map[string]models.Coupon)}
	for _, c := range coupons {
		m.coupons[c.Code] = c
	}
	return NewEngine(m)
}

func TestQuoteSurcharges(t *testing.T) {
	e := newEngine()
	svc := &models.Service{BasePrice: 50}

	t.Run("NoOptions", func(t *testing.T) {
		total, err := e.Quote(svc, nil, "")
		require.NoError(t, err)
		assert.Equal(t, 50.0, total)
	})

	t.Run("Windows", func(t *testing.T) {
		total, err := e.Quote(svc, map[string]bool{"windows": true}, "")
		require.NoError(t, err)
		assert.Equal(t, 70.0, total)
	})

	t.Run("DeepKitchen", func(t *testing.T) {
		total, err := e.Quote(svc, map[string]bool{"deepKitchen": true}, "")
		require.NoError(t, err)
		assert.Equal(t, 80.0, total)
	})

	t.Run("Both", func(t *testing.T) {
		total, err := e.Quote(svc, map[string]bool{"windows": true, "deepKitchen": true}, "")
		require.NoError(t, err)
		assert.Equal(t, 100.0, total)
	})

	t.Run("DeselectedFlagIgnored", func(t *testing.T) {
		total, err := e.Quote(svc, map[string]bool{"windows": false}, "")
		require.NoError(t, err)
		assert.Equal(t, 50.0, total)
	})

	t.Run("UnknownFlagIgnored", func(t *testing.T) {
		total, err := e.Quote(svc, map[string]bool{"chandeliers": true}, "")
		require.NoError(t, err)
		assert.Equal(t, 50.0, total)
	})
}

func TestQuoteCoupons(t *testing.T) {
	e := newEngine(
		models.Coupon{Code: "TEN", Discount: 10, IsPercent: true, IsActive: true},
		models.Coupon{Code: "FLAT15", Discount: 15, IsActive: true},
		models.Coupon{Code: "EXPIRED", Discount: 50, IsActive: false},
		models.Coupon{Code: "HUGE", Discount: 500, IsActive: true},
	)
	svc := &models.Service{BasePrice: 50}

	t.Run("PercentDiscount", func(t *testing.T) {
		// basePrice=50, windows +20, 10% off -> 63.
		total, err := e.Quote(svc, map[string]bool{"windows": true}, "TEN")
		require.NoError(t, err)
		assert.Equal(t, 63.0, total)
	})

	t.Run("FlatDiscount", func(t *testing.T) {
		total, err := e.Quote(svc, nil, "FLAT15")
		require.NoError(t, err)
		assert.Equal(t, 35.0, total)
	})

	t.Run("UnknownCodeNoDiscount", func(t *testing.T) {
		total, err := e.Quote(svc, nil, "NOPE")
		require.NoError(t, err)
		assert.Equal(t, 50.0, total)
	})

	t.Run("InactiveCodeNoDiscount", func(t *testing.T) {
		total, err := e.Quote(svc, nil, "EXPIRED")
		require.NoError(t, err)
		assert.Equal(t, 50.0, total)
	})

	t.Run("DiscountClampedAtZero", func(t *testing.T) {
		total, err := e.Quote(svc, nil, "HUGE")
		require.NoError(t, err)
		assert.Equal(t, 0.0, total)
	})
}
