package handlers

import (
	"net/http"

	"cleanly/services/catalog"
	"cleanly/utils"

	"github.com/gin-gonic/gin"
)

// ServiceHandler exposes the service catalog endpoints.
type ServiceHandler struct {
	Catalog catalog.CatalogService
}

// NewServiceHandler creates a new ServiceHandler.
func NewServiceHandler(cat catalog.CatalogService) *ServiceHandler {
	return &ServiceHandler{Catalog: cat}
}

// List handles GET /api/services (public).
func (h *ServiceHandler) List(c *gin.Context) {
	services, err := h.Catalog.List()
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, services)
}

// Get handles GET /api/services/:id (public).
func (h *ServiceHandler) Get(c *gin.Context) {
	svc, err := h.Catalog.Get(c.Param("id"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, svc)
}

// Create handles POST /api/services (admin).
func (h *ServiceHandler) Create(c *gin.Context) {
	var req catalog.ServiceInput
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request: "+err.Error())
		return
	}

	svc, err := h.Catalog.Create(req)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, svc)
}

// Update handles PUT /api/services/:id (admin).
func (h *ServiceHandler) Update(c *gin.Context) {
	var req catalog.ServiceInput
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request: "+err.Error())
		return
	}

	svc, err := h.Catalog.Update(c.Param("id"), req)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, svc)
}

// Delete handles DELETE /api/services/:id (admin).
func (h *ServiceHandler) Delete(c *gin.Context) {
	archived, err := h.Catalog.Delete(c.Param("id"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	if archived {
		c.JSON(http.StatusOK, gin.H{"message": "Service archived"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Service removed"})
}
