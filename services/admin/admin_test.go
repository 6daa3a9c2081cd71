package admin

import (
	"testing"
	"time"

	"cleanly/models"
	"cleanly/utils"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memUsers is an in-memory UserRepository for tests.
type memUsers struct {
	users map[string]models.User
}

func newMemUsers() *memUsers {
	return &memUsers{users: make(map[string]models.User)}
}

func (m *memUsers) GetByID(id string) (*models.User, error) {
	u, ok := m.users[id]
	if !ok {
		return nil, nil
	}
	return &u, nil
}

func (m *memUsers) GetByEmail(email string) (*models.User, error) { return nil, nil }

func (m *memUsers) List(q models.ListQuery) ([]models.User, int64, error) {
	var matched []models.User
	for _, u := range m.users {
		if q.Role != "" && u.Role != q.Role {
			continue
		}
		matched = append(matched, u)
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

func (m *memUsers) ListApprovedProviders() ([]models.PublicProvider, error) { return nil, nil }

func (m *memUsers) Count() (int64, error) { return int64(len(m.users)), nil }

func (m *memUsers) CountPendingProviders() (int64, error) {
	var n int64
	for _, u := range m.users {
		if u.Role == models.RoleProvider && !u.IsApproved {
			n++
		}
	}
	return n, nil
}

func (m *memUsers) Create(user *models.User) error { m.users[user.ID] = *user; return nil }
func (m *memUsers) Update(user *models.User) error { m.users[user.ID] = *user; return nil }
func (m *memUsers) Delete(id string) error         { delete(m.users, id); return nil }

// memBookings is an in-memory BookingRepository for tests.
type memBookings struct {
	bookings []models.Booking
}

func (m *memBookings) Create(b *models.Booking) error             { return nil }
func (m *memBookings) GetByID(id string) (*models.Booking, error) { return nil, nil }
func (m *memBookings) UpdateStatus(id, status string) error       { return nil }
func (m *memBookings) ListByUser(userID string) ([]models.Booking, error) {
	return nil, nil
}
func (m *memBookings) List(q models.ListQuery) ([]models.Booking, int64, error) {
	return nil, 0, nil
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

func (m *memBookings) CountByService(serviceID string) (int64, error) { return 0, nil }

func (m *memBookings) HasProviderBooking(providerID string, date time.Time) (bool, error) {
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

// memCoupons is an in-memory CouponRepository for tests.
type memCoupons struct {
	coupons map[string]models.Coupon
}

func newMemCoupons() *memCoupons {
	return &memCoupons{coupons: make(map[string]models.Coupon)}
}

func (m *memCoupons) GetActiveByCode(code string) (*models.Coupon, error) { return nil, nil }

func (m *memCoupons) GetByID(id string) (*models.Coupon, error) {
	c, ok := m.coupons[id]
	if !ok {
		return nil, nil
	}
	return &c, nil
}

func (m *memCoupons) GetAll() ([]models.Coupon, error) {
	var out []models.Coupon
	for _, c := range m.coupons {
		out = append(out, c)
	}
	return out, nil
}

func (m *memCoupons) Create(c *models.Coupon) error {
	for _, existing := range m.coupons {
		if existing.Code == c.Code {
			return utils.ConflictError{Reason: "Coupon code already exists"}
		}
	}
	m.coupons[c.ID] = *c
	return nil
}

func (m *memCoupons) SetActive(id string, active bool) error {
	c := m.coupons[id]
	c.IsActive = active
	m.coupons[id] = c
	return nil
}

func (m *memCoupons) Delete(id string) error { delete(m.coupons, id); return nil }

func newTestAdmin(t *testing.T) (*DefaultAdminService, *memUsers, *memBookings) {
	t.Helper()
	mr := miniredis.RunT(t)
	users := newMemUsers()
	bookings := &memBookings{}
	return &DefaultAdminService{
		Users:    users,
		Bookings: bookings,
		Coupons:  newMemCoupons(),
		Cache:    redis.NewClient(&redis.Options{Addr: mr.Addr()}),
	}, users, bookings
}

func TestDashboardStats(t *testing.T) {
	svc, users, bookings := newTestAdmin(t)
	users.users["c1"] = models.User{ID: "c1", Role: models.RoleCustomer}
	users.users["p1"] = models.User{ID: "p1", Role: models.RoleProvider}
	users.users["p2"] = models.User{ID: "p2", Role: models.RoleProvider, IsApproved: true}
	bookings.bookings = []models.Booking{
		{ID: "b1", Status: models.BookingPending, TotalPrice: 50},
		{ID: "b2", Status: models.BookingCompleted, TotalPrice: 70},
		{ID: "b3", Status: models.BookingCompleted, TotalPrice: 63},
		{ID: "b4", Status: models.BookingCancelled, TotalPrice: 80},
	}

	stats, err := svc.DashboardStats()
	require.NoError(t, err)
	assert.Equal(t, int64(3), stats.TotalUsers)
	assert.Equal(t, int64(1), stats.PendingProviders)
	assert.Equal(t, int64(1), stats.PendingBookings)
	// Revenue counts only Completed bookings, at their stored totals.
	assert.Equal(t, 133.0, stats.TotalRevenue)

	t.Run("CachedBetweenCalls", func(t *testing.T) {
		bookings.bookings = append(bookings.bookings, models.Booking{
			ID: "b5", Status: models.BookingCompleted, TotalPrice: 100,
		})
		cached, err := svc.DashboardStats()
		require.NoError(t, err)
		assert.Equal(t, 133.0, cached.TotalRevenue)
	})
}

func TestApproveProvider(t *testing.T) {
	svc, users, _ := newTestAdmin(t)
	users.users["p1"] = models.User{ID: "p1", Name: "Pat", Role: models.RoleProvider}
	users.users["c1"] = models.User{ID: "c1", Name: "Ann", Role: models.RoleCustomer}

	t.Run("Success", func(t *testing.T) {
		approved, err := svc.ApproveProvider("p1")
		require.NoError(t, err)
		assert.True(t, approved.IsApproved)
		assert.True(t, users.users["p1"].IsApproved)
	})

	t.Run("CustomerIsNotAProvider", func(t *testing.T) {
		_, err := svc.ApproveProvider("c1")
		var nf utils.NotFoundError
		assert.ErrorAs(t, err, &nf)
	})

	t.Run("MissingUser", func(t *testing.T) {
		_, err := svc.ApproveProvider("no-such")
		var nf utils.NotFoundError
		assert.ErrorAs(t, err, &nf)
	})
}

func TestListUsers(t *testing.T) {
	svc, users, _ := newTestAdmin(t)
	for i := 0; i < 12; i++ {
		id := "u-" + string(rune('a'+i))
		role := models.RoleCustomer
		if i < 3 {
			role = models.RoleProvider
		}
		users.users[id] = models.User{ID: id, Role: role}
	}

	t.Run("Pagination", func(t *testing.T) {
		page, err := svc.ListUsers(models.ListQuery{Page: 2, Limit: 10})
		require.NoError(t, err)
		assert.Len(t, page.Users, 2)
		assert.Equal(t, int64(12), page.TotalUsers)
		assert.Equal(t, 2, page.CurrentPage)
		assert.Equal(t, 2, page.TotalPages)
	})

	t.Run("RoleFilter", func(t *testing.T) {
		page, err := svc.ListUsers(models.ListQuery{Role: models.RoleProvider, Page: 1, Limit: 10})
		require.NoError(t, err)
		assert.Equal(t, int64(3), page.TotalUsers)
	})
}

func TestUpdateUser(t *testing.T) {
	role := models.RoleProvider
	badRole := "superuser"
	approved := true

	t.Run("RoleChange", func(t *testing.T) {
		svc, users, _ := newTestAdmin(t)
		users.users["u1"] = models.User{ID: "u1", Role: models.RoleCustomer}

		updated, err := svc.UpdateUser("u1", UserUpdateInput{Role: &role, IsApproved: &approved})
		require.NoError(t, err)
		assert.Equal(t, models.RoleProvider, updated.Role)
		assert.True(t, updated.IsApproved)
	})

	t.Run("UnknownRole", func(t *testing.T) {
		svc, users, _ := newTestAdmin(t)
		users.users["u1"] = models.User{ID: "u1", Role: models.RoleCustomer}

		_, err := svc.UpdateUser("u1", UserUpdateInput{Role: &badRole})
		var ve utils.ValidationError
		assert.ErrorAs(t, err, &ve)
	})

	t.Run("MissingUser", func(t *testing.T) {
		svc, _, _ := newTestAdmin(t)
		_, err := svc.UpdateUser("no-such", UserUpdateInput{Role: &role})
		var nf utils.NotFoundError
		assert.ErrorAs(t, err, &nf)
	})
}

func TestDeleteUser(t *testing.T) {
	svc, users, _ := newTestAdmin(t)
	users.users["u1"] = models.User{ID: "u1"}

	require.NoError(t, svc.DeleteUser("u1"))
	assert.Empty(t, users.users)

	var nf utils.NotFoundError
	assert.ErrorAs(t, svc.DeleteUser("u1"), &nf)
}

func TestCoupons(t *testing.T) {
	t.Run("CreateAndList", func(t *testing.T) {
		svc, _, _ := newTestAdmin(t)
		created, err := svc.CreateCoupon(CouponInput{Code: "TEN", Discount: 10, IsPercent: true, IsActive: true})
		require.NoError(t, err)
		assert.NotEmpty(t, created.ID)

		coupons, err := svc.ListCoupons()
		require.NoError(t, err)
		assert.Len(t, coupons, 1)
	})

	t.Run("Validation", func(t *testing.T) {
		svc, _, _ := newTestAdmin(t)
		var ve utils.ValidationError

		_, err := svc.CreateCoupon(CouponInput{Discount: 10})
		assert.ErrorAs(t, err, &ve)

		_, err = svc.CreateCoupon(CouponInput{Code: "ZERO", Discount: 0})
		assert.ErrorAs(t, err, &ve)

		_, err = svc.CreateCoupon(CouponInput{Code: "BIG", Discount: 150, IsPercent: true})
		assert.ErrorAs(t, err, &ve)

		_, err = svc.CreateCoupon(CouponInput{Code: "FLAT150", Discount: 150})
		assert.NoError(t, err)
	})

	t.Run("DuplicateCodeConflict", func(t *testing.T) {
		svc, _, _ := newTestAdmin(t)
		_, err := svc.CreateCoupon(CouponInput{Code: "TEN", Discount: 10})
		require.NoError(t, err)

		_, err = svc.CreateCoupon(CouponInput{Code: "TEN", Discount: 20})
		var conflict utils.ConflictError
		require.ErrorAs(t, err, &conflict)
		assert.Equal(t, "Coupon code already exists", conflict.Reason)
	})

	t.Run("Toggle", func(t *testing.T) {
		svc, _, _ := newTestAdmin(t)
		created, err := svc.CreateCoupon(CouponInput{Code: "TEN", Discount: 10, IsActive: true})
		require.NoError(t, err)

		toggled, err := svc.SetCouponActive(created.ID, false)
		require.NoError(t, err)
		assert.False(t, toggled.IsActive)

		_, err = svc.SetCouponActive("no-such", true)
		var nf utils.NotFoundError
		assert.ErrorAs(t, err, &nf)
	})

	t.Run("Delete", func(t *testing.T) {
		svc, _, _ := newTestAdmin(t)
		created, err := svc.CreateCoupon(CouponInput{Code: "TEN", Discount: 10})
		require.NoError(t, err)

		require.NoError(t, svc.DeleteCoupon(created.ID))

		var nf utils.NotFoundError
		assert.ErrorAs(t, svc.DeleteCoupon(created.ID), &nf)
	})
}
