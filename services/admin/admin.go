package admin

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	bookingRepo "cleanly/database/repository/booking"
	couponRepo "cleanly/database/repository/coupon"
	userRepo "cleanly/database/repository/user"
	"cleanly/models"
	"cleanly/utils"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	statsCacheKey = "dashboardStats"
	statsCacheTTL = 60 * time.Second
)

// DashboardStats aggregates the counters shown on the admin dashboard.
// TotalRevenue sums the stored totalPrice over Completed bookings, so a
// later catalog price change never rewrites past revenue.
type DashboardStats struct {
	TotalUsers       int64   `json:"totalUsers"`
	PendingProviders int64   `json:"pendingProviders"`
	PendingBookings  int64   `json:"pendingBookings"`
	TotalRevenue     float64 `json:"totalRevenue"`
}

// UserPage is one page of the admin user listing.
type UserPage struct {
	Users       []models.User `json:"users"`
	TotalUsers  int64         `json:"totalUsers"`
	CurrentPage int           `json:"currentPage"`
	TotalPages  int           `json:"totalPages"`
}

// UserUpdateInput carries the only fields an admin may change on a user.
type UserUpdateInput struct {
	Role       *string `json:"role"`
	IsApproved *bool   `json:"isApproved"`
}

// CouponInput carries the writable coupon fields.
type CouponInput struct {
	Code      string  `json:"code"`
	Discount  float64 `json:"discount"`
	IsPercent bool    `json:"isPercent"`
	IsActive  bool    `json:"isActive"`
}

// AdminService covers the admin-only management surface.
type AdminService interface {
	DashboardStats() (*DashboardStats, error)
	ApproveProvider(id string) (*models.User, error)
	ListUsers(q models.ListQuery) (*UserPage, error)
	GetUser(id string) (*models.User, error)
	UpdateUser(id string, in UserUpdateInput) (*models.User, error)
	DeleteUser(id string) error

	CreateCoupon(in CouponInput) (*models.Coupon, error)
	ListCoupons() ([]models.Coupon, error)
	SetCouponActive(id string, active bool) (*models.Coupon, error)
	DeleteCoupon(id string) error
}

// DefaultAdminService is the standard AdminService implementation.
type DefaultAdminService struct {
	Users    userRepo.UserRepository
	Bookings bookingRepo.BookingRepository
	Coupons  couponRepo.CouponRepository
	Cache    *redis.Client
}

// DashboardStats aggregates dashboard counters, cached briefly in redis so a
// busy dashboard does not hammer four collections per refresh.
func (s *DefaultAdminService) DashboardStats() (*DashboardStats, error) {
	ctx := context.Background()

	if s.Cache != nil {
		if data, err := s.Cache.Get(ctx, statsCacheKey).Result(); err == nil {
			var cached DashboardStats
			if err := json.Unmarshal([]byte(data), &cached); err == nil {
				return &cached, nil
			}
		}
	}

	totalUsers, err := s.Users.Count()
	if err != nil {
		return nil, fmt.Errorf("failed to count users: %w", err)
	}
	pendingProviders, err := s.Users.CountPendingProviders()
	if err != nil {
		return nil, fmt.Errorf("failed to count pending providers: %w", err)
	}
	pendingBookings, err := s.Bookings.CountByStatus(models.BookingPending)
	if err != nil {
		return nil, fmt.Errorf("failed to count pending bookings: %w", err)
	}
	revenue, err := s.Bookings.SumCompletedTotal()
	if err != nil {
		return nil, fmt.Errorf("failed to sum revenue: %w", err)
	}

	stats := &DashboardStats{
		TotalUsers:       totalUsers,
		PendingProviders: pendingProviders,
		PendingBookings:  pendingBookings,
		TotalRevenue:     revenue,
	}

	if s.Cache != nil {
		if data, err := json.Marshal(stats); err == nil {
			if err := s.Cache.Set(ctx, statsCacheKey, data, statsCacheTTL).Err(); err != nil {
				utils.GetLogger().Warn("failed to cache dashboard stats", zap.Error(err))
			}
		}
	}
	return stats, nil
}

// ApproveProvider flips isApproved on a user that actually holds the
// provider role; anything else is reported as not found.
func (s *DefaultAdminService) ApproveProvider(id string) (*models.User, error) {
	user, err := s.Users.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch user: %w", err)
	}
	if user == nil || user.Role != models.RoleProvider {
		return nil, utils.NotFoundError{Resource: "Provider"}
	}

	user.IsApproved = true
	if err := s.Users.Update(user); err != nil {
		return nil, fmt.Errorf("failed to approve provider: %w", err)
	}
	return user, nil
}

// ListUsers returns the admin user listing with filter, sort and pagination.
func (s *DefaultAdminService) ListUsers(q models.ListQuery) (*UserPage, error) {
	users, total, err := s.Users.List(q)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return &UserPage{
		Users:       users,
		TotalUsers:  total,
		CurrentPage: q.Page,
		TotalPages:  q.TotalPages(total),
	}, nil
}

// GetUser returns a user by id.
func (s *DefaultAdminService) GetUser(id string) (*models.User, error) {
	user, err := s.Users.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch user: %w", err)
	}
	if user == nil {
		return nil, utils.NotFoundError{Resource: "User"}
	}
	return user, nil
}

// UpdateUser changes a user's role and/or approval state. This is the only
// path that elevates an account beyond customer.
func (s *DefaultAdminService) UpdateUser(id string, in UserUpdateInput) (*models.User, error) {
	user, err := s.Users.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch user: %w", err)
	}
	if user == nil {
		return nil, utils.NotFoundError{Resource: "User"}
	}

	if in.Role != nil {
		switch *in.Role {
		case models.RoleCustomer, models.RoleProvider, models.RoleAdmin:
			user.Role = *in.Role
		default:
			return nil, utils.ValidationError{Reason: fmt.Sprintf("Unknown role %q", *in.Role)}
		}
	}
	if in.IsApproved != nil {
		user.IsApproved = *in.IsApproved
	}

	if err := s.Users.Update(user); err != nil {
		return nil, fmt.Errorf("failed to update user: %w", err)
	}
	return user, nil
}

// DeleteUser removes a user account.
func (s *DefaultAdminService) DeleteUser(id string) error {
	user, err := s.Users.GetByID(id)
	if err != nil {
		return fmt.Errorf("failed to fetch user: %w", err)
	}
	if user == nil {
		return utils.NotFoundError{Resource: "User"}
	}
	if err := s.Users.Delete(id); err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}
	return nil
}

// CreateCoupon validates and persists a new discount rule.
func (s *DefaultAdminService) CreateCoupon(in CouponInput) (*models.Coupon, error) {
	if in.Code == "" {
		return nil, utils.ValidationError{Reason: "Coupon code is required"}
	}
	if in.Discount <= 0 {
		return nil, utils.ValidationError{Reason: "Discount must be positive"}
	}
	if in.IsPercent && in.Discount > 100 {
		return nil, utils.ValidationError{Reason: "Percentage discount cannot exceed 100"}
	}

	coupon := &models.Coupon{
		ID:        uuid.New().String(),
		Code:      in.Code,
		Discount:  in.Discount,
		IsPercent: in.IsPercent,
		IsActive:  in.IsActive,
	}
	if err := s.Coupons.Create(coupon); err != nil {
		return nil, fmt.Errorf("failed to create coupon: %w", err)
	}
	return coupon, nil
}

// ListCoupons returns every coupon.
func (s *DefaultAdminService) ListCoupons() ([]models.Coupon, error) {
	coupons, err := s.Coupons.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to list coupons: %w", err)
	}
	return coupons, nil
}

// SetCouponActive toggles a coupon's eligibility.
func (s *DefaultAdminService) SetCouponActive(id string, active bool) (*models.Coupon, error) {
	coupon, err := s.Coupons.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch coupon: %w", err)
	}
	if coupon == nil {
		return nil, utils.NotFoundError{Resource: "Coupon"}
	}
	if err := s.Coupons.SetActive(id, active); err != nil {
		return nil, fmt.Errorf("failed to toggle coupon: %w", err)
	}
	coupon.IsActive = active
	return coupon, nil
}

// DeleteCoupon removes a coupon.
func (s *DefaultAdminService) DeleteCoupon(id string) error {
	coupon, err := s.Coupons.GetByID(id)
	if err != nil {
		return fmt.Errorf("failed to fetch coupon: %w", err)
	}
	if coupon == nil {
		return utils.NotFoundError{Resource: "Coupon"}
	}
	if err := s.Coupons.Delete(id); err != nil {
		return fmt.Errorf("failed to delete coupon: %w", err)
	}
	return nil
}
