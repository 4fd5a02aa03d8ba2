package handlers

import (
	"net/http"

	"reloading-bench-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// BarrelHandler handles HTTP requests for barrel operations
type BarrelHandler struct {
	barrelService service.BarrelServiceInterface
}

// NewBarrelHandler creates a new barrel handler
func NewBarrelHandler(barrelService service.BarrelServiceInterface) *BarrelHandler {
	return &BarrelHandler{
		barrelService: barrelService,
	}
}

// ListBarrels handles GET /barrels
// @Summary List barrels with derived round counts
// @Description Round counts are recomputed from box history on every call
// @Tags barrels
// @Produce json
// @Param actionId query string false "Filter by parent action"
// @Success 200 {array} service.BarrelResponse
// @Router /barrels [get]
func (h *BarrelHandler) ListBarrels(c *gin.Context) {
	barrels, err := h.barrelService.List(c.Query("actionId"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, barrels)
}

// GetBarrel handles GET /barrels/:id
// @Summary Get one barrel with assigned boxes and round count
// @Tags barrels
// @Produce json
// @Param id path string true "Barrel ID"
// @Success 200 {object} service.BarrelDetailResponse
// @Failure 404 {object} map[string]interface{}
// @Router /barrels/{id} [get]
func (h *BarrelHandler) GetBarrel(c *gin.Context) {
	barrel, err := h.barrelService.Get(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, barrel)
}

// CreateBarrel handles POST /barrels
func (h *BarrelHandler) CreateBarrel(c *gin.Context) {
	var req service.CreateBarrelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	barrel, err := h.barrelService.Create(req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, barrel)
}

// UpdateBarrel handles PUT /barrels/:id
func (h *BarrelHandler) UpdateBarrel(c *gin.Context) {
	var req service.UpdateBarrelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	barrel, err := h.barrelService.Update(c.Param("id"), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, barrel)
}

// DeleteBarrel handles DELETE /barrels/:id
// @Summary Delete a barrel
// @Description Refused with 409 while boxes are assigned
// @Tags barrels
// @Param id path string true "Barrel ID"
// @Success 204
// @Failure 409 {object} map[string]interface{}
// @Router /barrels/{id} [delete]
func (h *BarrelHandler) DeleteBarrel(c *gin.Context) {
	if err := h.barrelService.Delete(c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
