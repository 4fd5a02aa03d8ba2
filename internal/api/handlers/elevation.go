package handlers

import (
	"net/http"

	"reloading-bench-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// ElevationHandler handles HTTP requests for DOPE records
type ElevationHandler struct {
	elevationService service.ElevationServiceInterface
}

// NewElevationHandler creates a new elevation handler
func NewElevationHandler(elevationService service.ElevationServiceInterface) *ElevationHandler {
	return &ElevationHandler{
		elevationService: elevationService,
	}
}

// ListElevations handles GET /elevations
// @Summary List DOPE records
// @Description Sorted by distance ascending, then recording time descending
// @Tags elevations
// @Produce json
// @Param barrelId query string false "Filter by barrel"
// @Param loadId query string false "Filter by saved load"
// @Success 200 {array} models.Elevation
// @Router /elevations [get]
func (h *ElevationHandler) ListElevations(c *gin.Context) {
	elevations, err := h.elevationService.List(c.Query("barrelId"), c.Query("loadId"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, elevations)
}

// GetElevation handles GET /elevations/:id
func (h *ElevationHandler) GetElevation(c *gin.Context) {
	elevation, err := h.elevationService.Get(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, elevation)
}

// CreateElevation handles POST /elevations
// @Summary Record a DOPE data point
// @Description Both barrelId and loadId must reference existing records
// @Tags elevations
// @Accept json
// @Produce json
// @Param elevation body service.CreateElevationRequest true "Elevation to record"
// @Success 201 {object} models.Elevation
// @Failure 404 {object} map[string]interface{}
// @Router /elevations [post]
func (h *ElevationHandler) CreateElevation(c *gin.Context) {
	var req service.CreateElevationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	elevation, err := h.elevationService.Create(req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, elevation)
}

// UpdateElevation handles PUT /elevations/:id
func (h *ElevationHandler) UpdateElevation(c *gin.Context) {
	var req service.UpdateElevationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	elevation, err := h.elevationService.Update(c.Param("id"), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, elevation)
}

// DeleteElevation handles DELETE /elevations/:id
func (h *ElevationHandler) DeleteElevation(c *gin.Context) {
	if err := h.elevationService.Delete(c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
