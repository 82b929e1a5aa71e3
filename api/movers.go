package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/peacekuria/smartmove/internal/service/movers"
)

type MoverHandler struct {
	service movers.MoverUseCase
}

func NewMoverHandler(service movers.MoverUseCase) *MoverHandler {
	return &MoverHandler{service: service}
}

func (h *MoverHandler) Register(router *gin.RouterGroup) {
	router.GET("", h.list)
	router.GET("/:id", h.get)
}

func (h *MoverHandler) list(c *gin.Context) {
	movers, err := h.service.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, movers)
}

func (h *MoverHandler) get(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	mover, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, mover)
}
