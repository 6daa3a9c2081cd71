package handlers

import (
	"net/http"

	"cleanly/middleware"
	"cleanly/services/booking"
	"cleanly/utils"

	"github.com/gin-gonic/gin"
)

// BookingHandler exposes the customer-facing booking endpoints.
type BookingHandler struct {
	Bookings booking.BookingService
}

// NewBookingHandler creates a new BookingHandler.
func NewBookingHandler(bookings booking.BookingService) *BookingHandler {
	return &BookingHandler{Bookings: bookings}
}

// Create handles POST /api/bookings.
func (h *BookingHandler) Create(c *gin.Context) {
	var req booking.CreateBookingInput
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request: "+err.Error())
		return
	}

	created, err := h.Bookings.Create(c.GetString(middleware.CtxUserID), req)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// List handles GET /api/bookings, returning the caller's own bookings.
func (h *BookingHandler) List(c *gin.Context) {
	bookings, err := h.Bookings.ListForCustomer(c.GetString(middleware.CtxUserID))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, bookings)
}

// UpdateStatus handles PUT /api/bookings/:id/status (admin or provider).
func (h *BookingHandler) UpdateStatus(c *gin.Context) {
	var req struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request: "+err.Error())
		return
	}

	updated, err := h.Bookings.UpdateStatus(c.Param("id"), req.Status)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}
