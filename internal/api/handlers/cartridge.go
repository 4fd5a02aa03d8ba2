package handlers

import (
	"net/http"

	"reloading-bench-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// CartridgeHandler handles HTTP requests for factory cartridges
type CartridgeHandler struct {
	cartridgeService service.CartridgeServiceInterface
}

// NewCartridgeHandler creates a new cartridge handler
func NewCartridgeHandler(cartridgeService service.CartridgeServiceInterface) *CartridgeHandler {
	return &CartridgeHandler{
		cartridgeService: cartridgeService,
	}
}

// ListCartridges handles GET /cartridges
// @Summary List factory cartridges
// @Tags cartridges
// @Produce json
// @Success 200 {array} models.Cartridge
// @Router /cartridges [get]
func (h *CartridgeHandler) ListCartridges(c *gin.Context) {
	cartridges, err := h.cartridgeService.List()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, cartridges)
}

// GetCartridge handles GET /cartridges/:id
func (h *CartridgeHandler) GetCartridge(c *gin.Context) {
	cartridge, err := h.cartridgeService.Get(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, cartridge)
}

// CreateCartridge handles POST /cartridges
func (h *CartridgeHandler) CreateCartridge(c *gin.Context) {
	var req service.CreateCartridgeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	cartridge, err := h.cartridgeService.Create(req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, cartridge)
}

// UpdateCartridge handles PUT /cartridges/:id
func (h *CartridgeHandler) UpdateCartridge(c *gin.Context) {
	var req service.UpdateCartridgeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	cartridge, err := h.cartridgeService.Update(c.Param("id"), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, cartridge)
}

// DeleteCartridge handles DELETE /cartridges/:id
func (h *CartridgeHandler) DeleteCartridge(c *gin.Context) {
	if err := h.cartridgeService.Delete(c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
