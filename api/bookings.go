package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/peacekuria/smartmove/internal/domain"
	"github.com/peacekuria/smartmove/internal/service/booking"
)

type BookingHandler struct {
	service booking.BookingUseCase
}

type bookingResponse struct {
	Reference     string                  `json:"reference"`
	CreatedAt     string                  `json:"created_at"`
	Route         domain.Route            `json:"route"`
	MoveDate      string                  `json:"move_date"`
	AmountCents   int64                   `json:"amount_cents"`
	Status        string                  `json:"status"`
	PaymentMethod string                  `json:"payment_method"`
	Services      domain.ServiceSelection `json:"services"`
	User          *domain.UserSnapshot    `json:"user,omitempty"`
}

func toBookingResponse(b *domain.BookingRecord) bookingResponse {
	return bookingResponse{
		Reference:     b.Reference,
		CreatedAt:     b.CreatedAt.Format(time.RFC3339),
		Route:         b.Route,
		MoveDate:      b.MoveDate,
		AmountCents:   b.AmountCents,
		Status:        string(b.Status),
		PaymentMethod: b.PaymentMethod,
		Services:      b.Services,
		User:          b.User,
	}
}

func NewBookingHandler(service booking.BookingUseCase) *BookingHandler {
	return &BookingHandler{service: service}
}

func (h *BookingHandler) Register(router *gin.RouterGroup) {
	router.GET("", h.list)
	router.GET("/:reference", h.get)
	router.DELETE("/:reference", h.remove)
}

func (h *BookingHandler) list(c *gin.Context) {
	records, err := h.service.List(c.Request.Context(), Actor(c))
	if err != nil {
		respondError(c, err)
		return
	}

	out := make([]bookingResponse, 0, len(records))
	for i := range records {
		out = append(out, toBookingResponse(&records[i]))
	}
	c.JSON(http.StatusOK, out)
}

func (h *BookingHandler) get(c *gin.Context) {
	record, err := h.service.GetByReference(c.Request.Context(), c.Param("reference"), Actor(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toBookingResponse(record))
}

func (h *BookingHandler) remove(c *gin.Context) {
	if err := h.service.Remove(c.Request.Context(), c.Param("reference"), Actor(c)); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"removed": c.Param("reference")})
}
