package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/peacekuria/smartmove/internal/service/tracking"
)

type MapsHandler struct {
	service tracking.TrackingUseCase
}

type reportPositionRequest struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

func NewMapsHandler(service tracking.TrackingUseCase) *MapsHandler {
	return &MapsHandler{service: service}
}

// Register mounts the tracking routes; reportGuard middleware (role checks)
// applies to position reports only.
func (h *MapsHandler) Register(router *gin.RouterGroup, reportGuard ...gin.HandlerFunc) {
	router.GET("/track/:reference", h.track)

	report := append(append([]gin.HandlerFunc{}, reportGuard...), h.report)
	router.POST("/position/:reference", report...)
}

func (h *MapsHandler) track(c *gin.Context) {
	pos, err := h.service.Latest(c.Request.Context(), c.Param("reference"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, pos)
}

func (h *MapsHandler) report(c *gin.Context) {
	var req reportPositionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	pos, err := h.service.Report(c.Request.Context(), c.Param("reference"), req.Lat, req.Lng)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, pos)
}
