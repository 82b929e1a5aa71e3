package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/peacekuria/smartmove/internal/domain"
	"github.com/peacekuria/smartmove/internal/service/auth"
)

// Handlers bundles everything NewRouter mounts.
type Handlers struct {
	Auth      *AuthHandler
	Bookings  *BookingHandler
	Sessions  *SessionHandler
	Movers    *MoverHandler
	Maps      *MapsHandler
	Inventory *InventoryHandler
}

// NewRouter assembles the public API. The wizard is open to anonymous
// visitors; listing and tracking require a signed-in actor; position reports
// are for movers (and admins).
func NewRouter(authService auth.AuthUseCase, h Handlers) *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery())

	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	apiGroup := router.Group("/api")

	h.Auth.Register(apiGroup.Group("/auth"))
	h.Movers.Register(apiGroup.Group("/movers"))

	sessions := apiGroup.Group("/bookings/sessions")
	sessions.Use(Authenticate(authService, false))
	h.Sessions.Register(sessions)

	bookings := apiGroup.Group("/bookings")
	bookings.Use(Authenticate(authService, true))
	h.Bookings.Register(bookings)

	maps := apiGroup.Group("/maps")
	maps.Use(Authenticate(authService, true))
	h.Maps.Register(maps, RequireRoles(domain.RoleMover, domain.RoleAdmin))

	inv := apiGroup.Group("/inventory")
	inv.Use(Authenticate(authService, true))
	h.Inventory.Register(inv)

	return router
}
