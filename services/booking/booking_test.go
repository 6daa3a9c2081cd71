package booking

import (
	"errors"
	"testing"
	"time"

	"cleanly/models"
	"cleanly/services/pricing"
	"cleanly/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memBookings is an in-memory BookingRepository for tests.
type memBookings struct {
	bookings []models.Booking
}

func (m *memBookings) Create(b *models.Booking) error {
	m.bookings = append(m.bookings, *b)
	return nil
}

func (m *memBookings) GetByID(id string) (*models.Booking, error) {
	for i := range m.bookings {
		if m.bookings[i].ID == id {
			b := m.bookings[i]
			return &b, nil
		}
	}
	return nil, nil
}

func (m *memBookings) UpdateStatus(id, status string) error {
	for i := range m.bookings {
		if m.bookings[i].ID == id {
			m.bookings[i].Status = status
			return nil
		}
	}
	return errors.New("not found")
}

func (m *memBookings) ListByUser(userID string) ([]models.Booking, error) {
	var out []models.Booking
	for _, b := range m.bookings {
		if b.UserID == userID {
			out = append(out, b)
		}
	}
	return out, nil
}

func (m *memBookings) List(q models.ListQuery) ([]models.Booking, int64, error) {
	var matched []models.Booking
	for _, b := range m.bookings {
		if q.Status != "" && b.Status != q.Status {
			continue
		}
		matched = append(matched, b)
	}
	total := int64(len(matched))
	start := q.Skip()
	if start > len(matched) {
		start = len(matched)
	}
	end := start + q.Limit
	if end > len(matched) {
		end = len(matched)
	}
	return matched[start:end], total, nil
}

func (m *memBookings) CountByStatus(status string) (int64, error) {
	var n int64
	for _, b := range m.bookings {
		if b.Status == status {
			n++
		}
	}
	return n, nil
}

func (m *memBookings) CountByService(serviceID string) (int64, error) {
	var n int64
	for _, b := range m.bookings {
		if b.ServiceID == serviceID {
			n++
		}
	}
	return n, nil
}

func (m *memBookings) HasProviderBooking(providerID string, date time.Time) (bool, error) {
	for _, b := range m.bookings {
		if b.ProviderID == providerID && b.BookingDate.Equal(date) && b.Status != models.BookingCancelled {
			return true, nil
		}
	}
	return false, nil
}

func (m *memBookings) SumCompletedTotal() (float64, error) {
	var sum float64
	for _, b := range m.bookings {
		if b.Status == models.BookingCompleted {
			sum += b.TotalPrice
		}
	}
	return sum, nil
}

// racingBookings simulates losing the provider/date uniqueness race: the
// availability check sees a free slot but the insert is rejected.
type racingBookings struct {
	memBookings
}

func (r *racingBookings) HasProviderBooking(providerID string, date time.Time) (bool, error) {
	return false, nil
}

func (r *racingBookings) Create(b *models.Booking) error {
	return utils.ConflictError{Reason: "Provider is already booked for this date"}
}

// memServices is an in-memory ServiceRepository for tests.
type memServices struct {
	services map[string]models.Service
}

func (m *memServices) GetByID(id string) (*models.Service, error) {
	svc, ok := m.services[id]
	if !ok {
		return nil, nil
	}
	return &svc, nil
}

func (m *memServices) GetAllActive() ([]models.Service, error) { return nil, nil }
func (m *memServices) Create(svc *models.Service) error        { return nil }
func (m *memServices) Update(svc *models.Service) error        { return nil }
func (m *memServices) Archive(id string) error                 { return nil }
func (m *memServices) Delete(id string) error                  { return nil }

// memUsers is an in-memory UserRepository for tests.
type memUsers struct {
	users map[string]models.User
}

func (m *memUsers) GetByID(id string) (*models.User, error) {
	u, ok := m.users[id]
	if !ok {
		return nil, nil
	}
	return &u, nil
}

func (m *memUsers) GetByEmail(email string) (*models.User, error)             { return nil, nil }
func (m *memUsers) List(q models.ListQuery) ([]models.User, int64, error)     { return nil, 0, nil }
func (m *memUsers) ListApprovedProviders() ([]models.PublicProvider, error)   { return nil, nil }
func (m *memUsers) Count() (int64, error)                                     { return 0, nil }
func (m *memUsers) CountPendingProviders() (int64, error)                     { return 0, nil }
func (m *memUsers) Create(user *models.User) error                            { return nil }
func (m *memUsers) Update(user *models.User) error                            { return nil }
func (m *memUsers) Delete(id string) error                                    { return nil }

// memCoupons backs the pricing engine in booking tests.
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

func newTestService() (*DefaultBookingService, *memBookings) {
	repo := &memBookings{}
	svc := &DefaultBookingService{
		Repo: repo,
		Catalog: &memServices{services: map[string]models.Service{
			"svc-1": {ID: "svc-1", Name: "Standard Clean", BasePrice: 50, Active: true},
			"svc-2": {ID: "svc-2", Name: "Retired Clean", BasePrice: 40, Active: false},
		}},
		Users: &memUsers{users: map[string]models.User{
			"cust-1": {ID: "cust-1", Name: "Ann", Email: "ann@example.com", Role: models.RoleCustomer},
		}},
		Pricing: pricing.NewEngine(&memCoupons{coupons: map[string]models.Coupon{
			"TEN": {Code: "TEN", Discount: 10, IsPercent: true, IsActive: true},
		}}),
	}
	return svc, repo
}

func TestCreateBooking(t *testing.T) {
	date := time.Date(2026, 9, 15, 10, 0, 0, 0, time.UTC)

	t.Run("Success", func(t *testing.T) {
		svc, repo := newTestService()
		b, err := svc.Create("cust-1", CreateBookingInput{
			ProviderID:  "prov-1",
			ServiceID:   "svc-1",
			BookingDate: date,
			Options:     map[string]bool{"windows": true},
			CouponCode:  "TEN",
		})
		require.NoError(t, err)
		assert.NotEmpty(t, b.ID)
		assert.Equal(t, "cust-1", b.UserID)
		assert.Equal(t, models.BookingPending, b.Status)
		assert.Equal(t, 63.0, b.TotalPrice)
		assert.Len(t, repo.bookings, 1)
	})

	t.Run("UnknownService", func(t *testing.T) {
		svc, repo := newTestService()
		_, err := svc.Create("cust-1", CreateBookingInput{
			ProviderID:  "prov-1",
			ServiceID:   "no-such",
			BookingDate: date,
		})
		var nf utils.NotFoundError
		require.ErrorAs(t, err, &nf)
		assert.Empty(t, repo.bookings)
	})

	t.Run("ArchivedService", func(t *testing.T) {
		svc, repo := newTestService()
		_, err := svc.Create("cust-1", CreateBookingInput{
			ProviderID:  "prov-1",
			ServiceID:   "svc-2",
			BookingDate: date,
		})
		var nf utils.NotFoundError
		require.ErrorAs(t, err, &nf)
		assert.Empty(t, repo.bookings)
	})

	t.Run("ProviderDoubleBooked", func(t *testing.T) {
		svc, repo := newTestService()
		_, err := svc.Create("cust-1", CreateBookingInput{
			ProviderID: "prov-1", ServiceID: "svc-1", BookingDate: date,
		})
		require.NoError(t, err)

		_, err = svc.Create("cust-1", CreateBookingInput{
			ProviderID: "prov-1", ServiceID: "svc-1", BookingDate: date,
		})
		var conflict utils.ConflictError
		require.ErrorAs(t, err, &conflict)
		assert.Len(t, repo.bookings, 1)
	})

	t.Run("InsertRaceSurfacesConflict", func(t *testing.T) {
		// The availability pre-check can pass on both sides of a race; the
		// unique provider/date index rejects the second insert and the
		// repository reports it as a conflict.
		svc, _ := newTestService()
		svc.Repo = &racingBookings{}
		_, err := svc.Create("cust-1", CreateBookingInput{
			ProviderID: "prov-1", ServiceID: "svc-1", BookingDate: date,
		})
		var conflict utils.ConflictError
		require.ErrorAs(t, err, &conflict)
		assert.Equal(t, "Provider is already booked for this date", conflict.Reason)
	})

	t.Run("CancelledBookingFreesSlot", func(t *testing.T) {
		svc, _ := newTestService()
		first, err := svc.Create("cust-1", CreateBookingInput{
			ProviderID: "prov-1", ServiceID: "svc-1", BookingDate: date,
		})
		require.NoError(t, err)

		_, err = svc.UpdateStatus(first.ID, models.BookingCancelled)
		require.NoError(t, err)

		_, err = svc.Create("cust-1", CreateBookingInput{
			ProviderID: "prov-1", ServiceID: "svc-1", BookingDate: date,
		})
		assert.NoError(t, err)
	})
}

func TestListForCustomer(t *testing.T) {
	t.Run("NoBookingsYieldsEmptyList", func(t *testing.T) {
		svc, _ := newTestService()
		bookings, err := svc.ListForCustomer("cust-1")
		require.NoError(t, err)
		assert.NotNil(t, bookings)
		assert.Empty(t, bookings)
	})
}

func TestUpdateStatus(t *testing.T) {
	date := time.Date(2026, 9, 15, 10, 0, 0, 0, time.UTC)

	t.Run("LegalTransition", func(t *testing.T) {
		svc, _ := newTestService()
		b, err := svc.Create("cust-1", CreateBookingInput{
			ProviderID: "prov-1", ServiceID: "svc-1", BookingDate: date,
		})
		require.NoError(t, err)

		updated, err := svc.UpdateStatus(b.ID, models.BookingAccepted)
		require.NoError(t, err)
		assert.Equal(t, models.BookingAccepted, updated.Status)
	})

	t.Run("IllegalTransition", func(t *testing.T) {
		svc, repo := newTestService()
		b, err := svc.Create("cust-1", CreateBookingInput{
			ProviderID: "prov-1", ServiceID: "svc-1", BookingDate: date,
		})
		require.NoError(t, err)

		_, err = svc.UpdateStatus(b.ID, models.BookingCompleted)
		var ve utils.ValidationError
		require.ErrorAs(t, err, &ve)

		stored, err := repo.GetByID(b.ID)
		require.NoError(t, err)
		assert.Equal(t, models.BookingPending, stored.Status)
	})

	t.Run("UnknownStatus", func(t *testing.T) {
		svc, _ := newTestService()
		_, err := svc.UpdateStatus("any", "Shipped")
		var ve utils.ValidationError
		assert.ErrorAs(t, err, &ve)
	})

	t.Run("MissingBooking", func(t *testing.T) {
		svc, _ := newTestService()
		_, err := svc.UpdateStatus("no-such", models.BookingAccepted)
		var nf utils.NotFoundError
		assert.ErrorAs(t, err, &nf)
	})

	t.Run("PriceImmutableAcrossTransitions", func(t *testing.T) {
		svc, repo := newTestService()
		b, err := svc.Create("cust-1", CreateBookingInput{
			ProviderID: "prov-1", ServiceID: "svc-1", BookingDate: date,
			Options: map[string]bool{"deepKitchen": true},
		})
		require.NoError(t, err)
		require.Equal(t, 80.0, b.TotalPrice)

		_, err = svc.UpdateStatus(b.ID, models.BookingAccepted)
		require.NoError(t, err)
		_, err = svc.UpdateStatus(b.ID, models.BookingCompleted)
		require.NoError(t, err)

		stored, err := repo.GetByID(b.ID)
		require.NoError(t, err)
		assert.Equal(t, 80.0, stored.TotalPrice)
	})
}

func TestListAll(t *testing.T) {
	svc, repo := newTestService()
	base := time.Date(2026, 9, 1, 9, 0, 0, 0, time.UTC)
	for i := 0; i < 25; i++ {
		repo.bookings = append(repo.bookings, models.Booking{
			ID:          "b-" + string(rune('a'+i)),
			UserID:      "cust-1",
			ProviderID:  "prov-1",
			ServiceID:   "svc-1",
			Status:      models.BookingPending,
			BookingDate: base.AddDate(0, 0, i),
			TotalPrice:  50,
		})
	}

	t.Run("DefaultPage", func(t *testing.T) {
		page, err := svc.ListAll(models.ListQuery{Page: 1, Limit: 10})
		require.NoError(t, err)
		assert.Len(t, page.Bookings, 10)
		assert.Equal(t, int64(25), page.TotalBookings)
		assert.Equal(t, 1, page.CurrentPage)
		assert.Equal(t, 3, page.TotalPages)
	})

	t.Run("LastPartialPage", func(t *testing.T) {
		page, err := svc.ListAll(models.ListQuery{Page: 3, Limit: 10})
		require.NoError(t, err)
		assert.Len(t, page.Bookings, 5)
		assert.Equal(t, 3, page.CurrentPage)
	})

	t.Run("SummariesResolved", func(t *testing.T) {
		page, err := svc.ListAll(models.ListQuery{Page: 1, Limit: 1})
		require.NoError(t, err)
		require.Len(t, page.Bookings, 1)
		detail := page.Bookings[0]
		require.NotNil(t, detail.User)
		assert.Equal(t, "Ann", detail.User.Name)
		require.NotNil(t, detail.Service)
		assert.Equal(t, "Standard Clean", detail.Service.Name)
	})

	t.Run("StatusFilter", func(t *testing.T) {
		repo.bookings[0].Status = models.BookingCompleted
		page, err := svc.ListAll(models.ListQuery{Status: models.BookingCompleted, Page: 1, Limit: 10})
		require.NoError(t, err)
		assert.Equal(t, int64(1), page.TotalBookings)
	})
}
