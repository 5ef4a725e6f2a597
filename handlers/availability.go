package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"sweetcrumb/services/availability"
	"sweetcrumb/utils"
)

// AvailabilityHandler serves the booking calendar.
type AvailabilityHandler struct {
	svc         availability.Service
	defaultDays int
	logger      *zap.Logger
}

func NewAvailabilityHandler(svc availability.Service, defaultDays int, logger *zap.Logger) *AvailabilityHandler {
	return &AvailabilityHandler{svc: svc, defaultDays: defaultDays, logger: logger}
}

// Window handles GET /api/availability?days=N.
func (h *AvailabilityHandler) Window(c *gin.Context) {
	days := h.defaultDays
	if raw := c.Query("days"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			utils.JSONError(c, http.StatusBadRequest, "days must be a positive number")
			return
		}
		days = parsed
	}

	window, err := h.svc.Window(time.Now(), days)
	if err != nil {
		respondServiceError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"days": window})
}
