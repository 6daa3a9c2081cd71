package handlers

import (
	"net/http"

	"cleanly/middleware"
	"cleanly/services/account"
	"cleanly/utils"

	"github.com/gin-gonic/gin"
)

// UserHandler exposes self-service profile and public provider endpoints.
type UserHandler struct {
	Accounts account.AccountService
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(accounts account.AccountService) *UserHandler {
	return &UserHandler{Accounts: accounts}
}

// ListProviders handles GET /api/users/providers (public).
func (h *UserHandler) ListProviders(c *gin.Context) {
	providers, err := h.Accounts.ListProviders()
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, providers)
}

// UpdateProfile handles PUT /api/users/profile.
func (h *UserHandler) UpdateProfile(c *gin.Context) {
	var req account.ProfileInput
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request: "+err.Error())
		return
	}

	user, err := h.Accounts.UpdateProfile(c.GetString(middleware.CtxUserID), req)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}
