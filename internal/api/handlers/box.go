package handlers

import (
	"net/http"

	"reloading-bench-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// BoxHandler handles HTTP requests for ammo box operations
type BoxHandler struct {
	boxService service.BoxServiceInterface
}

// NewBoxHandler creates a new box handler
func NewBoxHandler(boxService service.BoxServiceInterface) *BoxHandler {
	return &BoxHandler{
		boxService: boxService,
	}
}

// ListBoxes handles GET /boxes
// @Summary List ammo boxes
// @Description Get all ammo boxes, optionally filtered
// @Tags boxes
// @Produce json
// @Param search query string false "Match box number, brand or barrel name"
// @Param barrelId query string false "Filter by assigned barrel"
// @Param status query string false "Filter by status (active|retired)"
// @Param brand query string false "Filter by brand"
// @Success 200 {array} models.AmmoBox
// @Router /boxes [get]
func (h *BoxHandler) ListBoxes(c *gin.Context) {
	filter := service.BoxFilter{
		Search:   c.Query("search"),
		BarrelID: c.Query("barrelId"),
		Status:   c.Query("status"),
		Brand:    c.Query("brand"),
	}

	boxes, err := h.boxService.List(filter)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, boxes)
}

// GetBox handles GET /boxes/:id
// @Summary Get one ammo box
// @Tags boxes
// @Produce json
// @Param id path string true "Box ID"
// @Success 200 {object} models.AmmoBox
// @Failure 404 {object} map[string]interface{}
// @Router /boxes/{id} [get]
func (h *BoxHandler) GetBox(c *gin.Context) {
	box, err := h.boxService.Get(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, box)
}

// CreateBox handles POST /boxes
// @Summary Create an ammo box
// @Tags boxes
// @Accept json
// @Produce json
// @Param box body service.CreateBoxRequest true "Box to create"
// @Success 201 {object} models.AmmoBox
// @Failure 400 {object} map[string]interface{}
// @Router /boxes [post]
func (h *BoxHandler) CreateBox(c *gin.Context) {
	var req service.CreateBoxRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	box, err := h.boxService.Create(req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, box)
}

// UpdateBox handles PUT /boxes/:id
// @Summary Update an ammo box
// @Tags boxes
// @Accept json
// @Produce json
// @Param id path string true "Box ID"
// @Param box body service.UpdateBoxRequest true "Fields to update"
// @Success 200 {object} models.AmmoBox
// @Failure 404 {object} map[string]interface{}
// @Router /boxes/{id} [put]
func (h *BoxHandler) UpdateBox(c *gin.Context) {
	var req service.UpdateBoxRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	box, err := h.boxService.Update(c.Param("id"), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, box)
}

// DeleteBox handles DELETE /boxes/:id
// @Summary Delete an ammo box
// @Tags boxes
// @Param id path string true "Box ID"
// @Success 204
// @Failure 404 {object} map[string]interface{}
// @Router /boxes/{id} [delete]
func (h *BoxHandler) DeleteBox(c *gin.Context) {
	if err := h.boxService.Delete(c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ReloadBox handles POST /boxes/:id/reload
// @Summary Reload a box with a new load
// @Description Archive the current load into history and install a new one
// @Tags boxes
// @Accept json
// @Produce json
// @Param id path string true "Box ID"
// @Param reload body service.ReloadRequest true "New load"
// @Success 200 {object} models.AmmoBox
// @Failure 400 {object} map[string]interface{}
// @Router /boxes/{id}/reload [post]
func (h *BoxHandler) ReloadBox(c *gin.Context) {
	var req service.ReloadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	box, err := h.boxService.Reload(c.Param("id"), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, box)
}

// AssignBarrel handles POST /boxes/:id/assign-barrel
// @Summary Assign the box to a barrel
// @Description Close the open assignment period and start a new one. A null barrelId unassigns.
// @Tags boxes
// @Accept json
// @Produce json
// @Param id path string true "Box ID"
// @Param assignment body service.AssignBarrelRequest true "Target barrel"
// @Success 200 {object} models.AmmoBox
// @Failure 404 {object} map[string]interface{}
// @Router /boxes/{id}/assign-barrel [post]
func (h *BoxHandler) AssignBarrel(c *gin.Context) {
	var req service.AssignBarrelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	box, err := h.boxService.AssignBarrel(c.Param("id"), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, box)
}

// statusRequest is the PATCH /boxes/:id/status payload
type statusRequest struct {
	Status string `json:"status"`
}

// SetBoxStatus handles PATCH /boxes/:id/status
// @Summary Set box status
// @Tags boxes
// @Accept json
// @Produce json
// @Param id path string true "Box ID"
// @Param status body statusRequest true "active or retired"
// @Success 200 {object} models.AmmoBox
// @Failure 400 {object} map[string]interface{}
// @Router /boxes/{id}/status [patch]
func (h *BoxHandler) SetBoxStatus(c *gin.Context) {
	var req statusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	box, err := h.boxService.SetStatus(c.Param("id"), req.Status)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, box)
}
