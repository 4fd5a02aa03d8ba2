package handlers

import (
	"net/http"
	"strconv"

	"reloading-bench-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// ComponentHandler handles HTTP requests for the component lists
type ComponentHandler struct {
	componentService service.ComponentServiceInterface
}

// NewComponentHandler creates a new component handler
func NewComponentHandler(componentService service.ComponentServiceInterface) *ComponentHandler {
	return &ComponentHandler{
		componentService: componentService,
	}
}

// componentNameRequest carries the free-text name for add/rename
type componentNameRequest struct {
	Name string `json:"name"`
}

// GetComponents handles GET /components
// @Summary Get all component lists
// @Tags components
// @Produce json
// @Success 200 {object} models.Components
// @Router /components [get]
func (h *ComponentHandler) GetComponents(c *gin.Context) {
	components, err := h.componentService.Get()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, components)
}

// AddComponent handles POST /components/:type
func (h *ComponentHandler) AddComponent(c *gin.Context) {
	var req componentNameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	components, err := h.componentService.Add(c.Param("type"), req.Name)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, components)
}

// RenameComponent handles PUT /components/:type/:index
func (h *ComponentHandler) RenameComponent(c *gin.Context) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid index"})
		return
	}

	var req componentNameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	components, err := h.componentService.Rename(c.Param("type"), index, req.Name)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, components)
}

// RemoveComponent handles DELETE /components/:type/:index
func (h *ComponentHandler) RemoveComponent(c *gin.Context) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid index"})
		return
	}

	components, err := h.componentService.Remove(c.Param("type"), index)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, components)
}
