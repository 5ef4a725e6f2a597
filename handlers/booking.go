package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"sweetcrumb/models"
	"sweetcrumb/services/booking"
)

// BookingHandler serves the booking and payment endpoints.
type BookingHandler struct {
	svc            booking.Service
	publishableKey string
	logger         *zap.Logger
}

func NewBookingHandler(svc booking.Service, publishableKey string, logger *zap.Logger) *BookingHandler {
	return &BookingHandler{svc: svc, publishableKey: publishableKey, logger: logger}
}

// BookCash handles POST /api/bookings/cash.
func (h *BookingHandler) BookCash(c *gin.Context) {
	var req models.BookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c)
		return
	}

	b, err := h.svc.BookCash(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"date":    b.Date,
		"method":  b.Method,
	})
}

// CreateIntent handles POST /api/payments/intent. Creating an intent never
// reserves the date; only ConfirmPayment writes a booking.
func (h *BookingHandler) CreateIntent(c *gin.Context) {
	var req models.BookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c)
		return
	}

	intent, err := h.svc.CreateIntent(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"intentId":     intent.ID,
		"clientSecret": intent.ClientSecret,
	})
}

// ConfirmPayment handles POST /api/payments/confirm.
func (h *BookingHandler) ConfirmPayment(c *gin.Context) {
	var req models.ConfirmRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c)
		return
	}

	b, err := h.svc.ConfirmCard(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"date":    b.Date,
		"method":  b.Method,
	})
}

// GatewayConfig handles GET /api/payments/config, exposing the publishable
// key the payment widget needs. The key is an empty string when Stripe is
// not configured.
func (h *BookingHandler) GatewayConfig(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"publishableKey": h.publishableKey})
}
