package routes

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"sweetcrumb/handlers"
)

// HandlerBundle collects the handlers the router wires up.
type HandlerBundle struct {
	Availability *handlers.AvailabilityHandler
	Booking      *handlers.BookingHandler
	Reviews      *handlers.ReviewHandler
	Subscribe    *handlers.SubscribeHandler
}

// CORS builds the cross-origin policy from the allowed-origin list. With no
// configured origins every origin is allowed, which suits local development.
func CORS(origins []string) gin.HandlerFunc {
	cfg := cors.Config{
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}
	if len(origins) == 0 {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = origins
	}
	return cors.New(cfg)
}

// RegisterRoutes attaches every endpoint to the router.
func RegisterRoutes(r *gin.Engine, hb *HandlerBundle) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	{
		api.GET("/availability", hb.Availability.Window)

		api.POST("/bookings/cash", hb.Booking.BookCash)
		api.POST("/payments/intent", hb.Booking.CreateIntent)
		api.POST("/payments/confirm", hb.Booking.ConfirmPayment)
		api.GET("/payments/config", hb.Booking.GatewayConfig)

		api.GET("/reviews", hb.Reviews.List)
		api.POST("/reviews", hb.Reviews.Create)

		api.POST("/subscribe", hb.Subscribe.Subscribe)
	}
}
