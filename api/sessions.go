package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/peacekuria/smartmove/internal/domain"
	"github.com/peacekuria/smartmove/internal/service/wizard"
)

// SessionHandler drives the booking wizard over HTTP: one draft per session
// token, advanced and retreated one step at a time.
type SessionHandler struct {
	service wizard.WizardUseCase
}

type sessionResponse struct {
	Token string               `json:"token"`
	Draft *domain.BookingDraft `json:"draft"`
}

type stepResponse struct {
	Step      int              `json:"step"`
	Label     string           `json:"label"`
	Confirmed bool             `json:"confirmed"`
	Exited    bool             `json:"exited"`
	Landing   string           `json:"landing,omitempty"`
	Booking   *bookingResponse `json:"booking,omitempty"`
}

func toStepResponse(r *wizard.StepResult) stepResponse {
	out := stepResponse{
		Step:      int(r.Step),
		Label:     r.Label,
		Confirmed: r.Confirmed,
		Exited:    r.Exited,
		Landing:   r.Landing,
	}
	if r.Booking != nil {
		b := toBookingResponse(r.Booking)
		out.Booking = &b
	}
	return out
}

func NewSessionHandler(service wizard.WizardUseCase) *SessionHandler {
	return &SessionHandler{service: service}
}

func (h *SessionHandler) Register(router *gin.RouterGroup) {
	router.POST("", h.start)
	router.GET("/:token", h.get)
	router.PATCH("/:token", h.update)
	router.POST("/:token/advance", h.advance)
	router.POST("/:token/retreat", h.retreat)
}

func (h *SessionHandler) start(c *gin.Context) {
	token, draft, err := h.service.Start(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, sessionResponse{Token: token, Draft: draft})
}

func (h *SessionHandler) get(c *gin.Context) {
	draft, err := h.service.Get(c.Request.Context(), c.Param("token"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, sessionResponse{Token: c.Param("token"), Draft: draft})
}

func (h *SessionHandler) update(c *gin.Context) {
	var patch wizard.DraftPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	draft, err := h.service.Update(c.Request.Context(), c.Param("token"), patch)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, sessionResponse{Token: c.Param("token"), Draft: draft})
}

func (h *SessionHandler) advance(c *gin.Context) {
	result, err := h.service.Advance(c.Request.Context(), c.Param("token"), Actor(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toStepResponse(result))
}

func (h *SessionHandler) retreat(c *gin.Context) {
	result, err := h.service.Retreat(c.Request.Context(), c.Param("token"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toStepResponse(result))
}
