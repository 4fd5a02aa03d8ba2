package handlers

import (
	"net/http"

	"reloading-bench-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// SavedLoadHandler handles HTTP requests for saved load recipes
type SavedLoadHandler struct {
	savedLoadService service.SavedLoadServiceInterface
}

// NewSavedLoadHandler creates a new saved load handler
func NewSavedLoadHandler(savedLoadService service.SavedLoadServiceInterface) *SavedLoadHandler {
	return &SavedLoadHandler{
		savedLoadService: savedLoadService,
	}
}

// ListSavedLoads handles GET /loads
// @Summary List saved load recipes
// @Tags loads
// @Produce json
// @Success 200 {array} models.SavedLoad
// @Router /loads [get]
func (h *SavedLoadHandler) ListSavedLoads(c *gin.Context) {
	loads, err := h.savedLoadService.List()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, loads)
}

// GetSavedLoad handles GET /loads/:id
func (h *SavedLoadHandler) GetSavedLoad(c *gin.Context) {
	load, err := h.savedLoadService.Get(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, load)
}

// CreateSavedLoad handles POST /loads
func (h *SavedLoadHandler) CreateSavedLoad(c *gin.Context) {
	var req service.CreateSavedLoadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	load, err := h.savedLoadService.Create(req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, load)
}

// UpdateSavedLoad handles PUT /loads/:id
func (h *SavedLoadHandler) UpdateSavedLoad(c *gin.Context) {
	var req service.UpdateSavedLoadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	load, err := h.savedLoadService.Update(c.Param("id"), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, load)
}

// DeleteSavedLoad handles DELETE /loads/:id
func (h *SavedLoadHandler) DeleteSavedLoad(c *gin.Context) {
	if err := h.savedLoadService.Delete(c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
