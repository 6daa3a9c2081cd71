package handlers

import (
	"net/http"
	"strconv"

	"cleanly/models"
	"cleanly/services/admin"
	"cleanly/services/booking"
	"cleanly/utils"

	"github.com/gin-gonic/gin"
)

// AdminHandler encapsulates elevated admin-level operations.
type AdminHandler struct {
	Admin    admin.AdminService
	Bookings booking.BookingService
}

// NewAdminHandler creates a new AdminHandler.
func NewAdminHandler(adm admin.AdminService, bookings booking.BookingService) *AdminHandler {
	return &AdminHandler{Admin: adm, Bookings: bookings}
}

// Stats handles GET /api/admin/stats and GET /api/admin/dashboard.
func (h *AdminHandler) Stats(c *gin.Context) {
	stats, err := h.Admin.DashboardStats()
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

// ApproveProvider handles PUT /api/admin/approve-provider/:id.
func (h *AdminHandler) ApproveProvider(c *gin.Context) {
	user, err := h.Admin.ApproveProvider(c.Param("id"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

// ListUsers handles GET /api/admin/users.
func (h *AdminHandler) ListUsers(c *gin.Context) {
	q := models.ParseListQuery(
		c.Query("role"), "",
		c.Query("sortBy"), c.Query("page"), c.Query("limit"),
	)
	page, err := h.Admin.ListUsers(q)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, page)
}

// GetUser handles GET /api/admin/users/:id.
func (h *AdminHandler) GetUser(c *gin.Context) {
	user, err := h.Admin.GetUser(c.Param("id"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

// UpdateUser handles PUT /api/admin/users/:id (role and approval only).
func (h *AdminHandler) UpdateUser(c *gin.Context) {
	var req admin.UserUpdateInput
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request: "+err.Error())
		return
	}

	user, err := h.Admin.UpdateUser(c.Param("id"), req)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "User updated successfully", "user": user})
}

// DeleteUser handles DELETE /api/admin/users/:id.
func (h *AdminHandler) DeleteUser(c *gin.Context) {
	if err := h.Admin.DeleteUser(c.Param("id")); err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "User deleted successfully"})
}

// ListBookings handles GET /api/admin/bookings.
func (h *AdminHandler) ListBookings(c *gin.Context) {
	q := models.ParseListQuery(
		"", c.Query("status"),
		c.Query("sortBy"), c.Query("page"), c.Query("limit"),
	)
	page, err := h.Bookings.ListAll(q)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, page)
}

// GetBooking handles GET /api/admin/bookings/:id.
func (h *AdminHandler) GetBooking(c *gin.Context) {
	detail, err := h.Bookings.Get(c.Param("id"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, detail)
}

// UpdateBookingStatus handles PUT /api/admin/bookings/:id, returning the
// booking with its user/service summaries repopulated for display.
func (h *AdminHandler) UpdateBookingStatus(c *gin.Context) {
	var req struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request: "+err.Error())
		return
	}

	if _, err := h.Bookings.UpdateStatus(c.Param("id"), req.Status); err != nil {
		utils.RespondError(c, err)
		return
	}
	detail, err := h.Bookings.Get(c.Param("id"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Booking status updated successfully", "booking": detail})
}

// CreateCoupon handles POST /api/admin/coupons.
func (h *AdminHandler) CreateCoupon(c *gin.Context) {
	var req admin.CouponInput
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request: "+err.Error())
		return
	}

	coupon, err := h.Admin.CreateCoupon(req)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, coupon)
}

// ListCoupons handles GET /api/admin/coupons.
func (h *AdminHandler) ListCoupons(c *gin.Context) {
	coupons, err := h.Admin.ListCoupons()
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, coupons)
}

// SetCouponActive handles PUT /api/admin/coupons/:id.
func (h *AdminHandler) SetCouponActive(c *gin.Context) {
	active, err := strconv.ParseBool(c.DefaultQuery("active", "true"))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid active flag")
		return
	}

	coupon, err := h.Admin.SetCouponActive(c.Param("id"), active)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, coupon)
}

// DeleteCoupon handles DELETE /api/admin/coupons/:id.
func (h *AdminHandler) DeleteCoupon(c *gin.Context) {
	if err := h.Admin.DeleteCoupon(c.Param("id")); err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Coupon deleted successfully"})
}
