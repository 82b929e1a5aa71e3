package api

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/peacekuria/smartmove/internal/cache"
	"github.com/peacekuria/smartmove/internal/domain"
	"github.com/peacekuria/smartmove/internal/kvstore"
	"github.com/peacekuria/smartmove/internal/repository"
	authsvc "github.com/peacekuria/smartmove/internal/service/auth"
	"github.com/peacekuria/smartmove/internal/service/booking"
	"github.com/peacekuria/smartmove/internal/service/inventory"
	"github.com/peacekuria/smartmove/internal/service/movers"
	"github.com/peacekuria/smartmove/internal/service/tracking"
	"github.com/peacekuria/smartmove/internal/service/wizard"
)

// newSmokeRouter wires the full router over in-memory backends, the same
// shape cmd/app builds in demo mode.
func newSmokeRouter(t *testing.T) *gin.Engine {
	t.Helper()

	store := cache.NewMemoryCache(time.Minute, time.Minute, time.Minute)
	bookingRepo := repository.NewKVBookingRepository(kvstore.NewMemory(), "")
	userRepo := repository.NewMemoryUserRepository()
	moverRepo := repository.NewMemoryMoverRepository()
	inventoryRepo := repository.NewKVInventoryRepository(kvstore.NewMemory(), "")

	bookingService := booking.NewBookingService(
		bookingRepo, store, nil, "", domain.DefaultPricing(), "mpesa-sandbox", 30*time.Second,
	)
	wizardService := wizard.NewWizardService(store, bookingService)
	authService := authsvc.NewAuthService(userRepo, "test-secret", time.Hour)
	moverService := movers.NewMoverService(moverRepo, store)
	trackingService := tracking.NewTrackingService(store, bookingRepo, time.Second)
	inventoryService := inventory.NewInventoryService(inventoryRepo)

	return NewRouter(authService, Handlers{
		Auth:      NewAuthHandler(authService),
		Bookings:  NewBookingHandler(bookingService),
		Sessions:  NewSessionHandler(wizardService),
		Movers:    NewMoverHandler(moverService),
		Maps:      NewMapsHandler(trackingService),
		Inventory: NewInventoryHandler(inventoryService),
	})
}

func TestRouter_GroupRootsServeWithoutRedirect(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := newSmokeRouter(t)

	cases := []struct {
		method string
		path   string
		status int
	}{
		{http.MethodPost, "/api/bookings/sessions", http.StatusCreated},
		{http.MethodGet, "/api/movers", http.StatusOK},
		{http.MethodGet, "/api/bookings", http.StatusUnauthorized},
		{http.MethodGet, "/api/inventory", http.StatusUnauthorized},
		{http.MethodGet, "/healthz", http.StatusOK},
	}

	for _, tc := range cases {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(tc.method, tc.path, nil)
		router.ServeHTTP(rec, req)

		assert.Equalf(t, tc.status, rec.Code, "%s %s", tc.method, tc.path)
		assert.NotEqualf(t, http.StatusTemporaryRedirect, rec.Code, "%s %s must not redirect", tc.method, tc.path)
	}
}
