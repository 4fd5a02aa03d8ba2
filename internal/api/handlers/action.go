package handlers

import (
	"net/http"

	"reloading-bench-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// ActionHandler handles HTTP requests for firearm action operations
type ActionHandler struct {
	actionService service.ActionServiceInterface
}

// NewActionHandler creates a new action handler
func NewActionHandler(actionService service.ActionServiceInterface) *ActionHandler {
	return &ActionHandler{
		actionService: actionService,
	}
}

// ListActions handles GET /actions
// @Summary List actions
// @Tags actions
// @Produce json
// @Success 200 {array} models.Action
// @Router /actions [get]
func (h *ActionHandler) ListActions(c *gin.Context) {
	actions, err := h.actionService.List()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, actions)
}

// GetAction handles GET /actions/:id
// @Summary Get one action with its barrels
// @Tags actions
// @Produce json
// @Param id path string true "Action ID"
// @Success 200 {object} service.ActionDetailResponse
// @Failure 404 {object} map[string]interface{}
// @Router /actions/{id} [get]
func (h *ActionHandler) GetAction(c *gin.Context) {
	action, err := h.actionService.Get(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, action)
}

// CreateAction handles POST /actions
func (h *ActionHandler) CreateAction(c *gin.Context) {
	var req service.CreateActionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	action, err := h.actionService.Create(req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, action)
}

// UpdateAction handles PUT /actions/:id
func (h *ActionHandler) UpdateAction(c *gin.Context) {
	var req service.UpdateActionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	action, err := h.actionService.Update(c.Param("id"), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, action)
}

// DeleteAction handles DELETE /actions/:id
// @Summary Delete an action
// @Description Refused with 409 while barrels are attached
// @Tags actions
// @Param id path string true "Action ID"
// @Success 204
// @Failure 409 {object} map[string]interface{}
// @Router /actions/{id} [delete]
func (h *ActionHandler) DeleteAction(c *gin.Context) {
	if err := h.actionService.Delete(c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
