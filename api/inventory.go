package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/peacekuria/smartmove/internal/domain"
	"github.com/peacekuria/smartmove/internal/service/inventory"
)

// InventoryHandler serves the per-user packing checklist.
type InventoryHandler struct {
	service inventory.InventoryUseCase
}

type addItemRequest struct {
	Text string `json:"text"`
}

type applyTemplateRequest struct {
	Name string `json:"name"`
}

type inventoryResponse struct {
	Items     []domain.InventoryItem `json:"items"`
	Completed int                    `json:"completed"`
	Progress  int                    `json:"progress"`
}

func toInventoryResponse(items []domain.InventoryItem) inventoryResponse {
	completed, percent := domain.InventoryProgress(items)
	return inventoryResponse{Items: items, Completed: completed, Progress: percent}
}

func NewInventoryHandler(service inventory.InventoryUseCase) *InventoryHandler {
	return &InventoryHandler{service: service}
}

func (h *InventoryHandler) Register(router *gin.RouterGroup) {
	router.GET("", h.list)
	router.POST("", h.add)
	router.POST("/template", h.applyTemplate)
	router.POST("/:index/toggle", h.toggle)
	router.DELETE("/:index", h.remove)
}

func (h *InventoryHandler) list(c *gin.Context) {
	items, err := h.service.List(c.Request.Context(), Actor(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toInventoryResponse(items))
}

func (h *InventoryHandler) add(c *gin.Context) {
	var req addItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	items, err := h.service.AddItem(c.Request.Context(), Actor(c), req.Text)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toInventoryResponse(items))
}

func (h *InventoryHandler) applyTemplate(c *gin.Context) {
	var req applyTemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	items, err := h.service.ApplyTemplate(c.Request.Context(), Actor(c), req.Name)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toInventoryResponse(items))
}

func (h *InventoryHandler) toggle(c *gin.Context) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid index"})
		return
	}

	items, err := h.service.ToggleItem(c.Request.Context(), Actor(c), index)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toInventoryResponse(items))
}

func (h *InventoryHandler) remove(c *gin.Context) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid index"})
		return
	}

	items, err := h.service.RemoveItem(c.Request.Context(), Actor(c), index)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toInventoryResponse(items))
}
