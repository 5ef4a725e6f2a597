package handlers

import (
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"sweetcrumb/database/subscribers"
	"sweetcrumb/models"
	"sweetcrumb/utils"
)

var subscribeEmailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// SubscribeHandler serves the email-signup list.
type SubscribeHandler struct {
	store  subscribers.Store
	logger *zap.Logger
}

func NewSubscribeHandler(store subscribers.Store, logger *zap.Logger) *SubscribeHandler {
	return &SubscribeHandler{store: store, logger: logger}
}

// Subscribe handles POST /api/subscribe. Re-subscribing an address already on
// the list succeeds without adding a duplicate.
func (h *SubscribeHandler) Subscribe(c *gin.Context) {
	var req struct {
		Email string `json:"email"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c)
		return
	}

	email := strings.TrimSpace(req.Email)
	if email == "" || len(email) > 254 || !subscribeEmailPattern.MatchString(email) {
		utils.JSONError(c, http.StatusBadRequest, "email address is not valid")
		return
	}

	sub := models.Subscriber{
		ID:        uuid.New().String(),
		Email:     email,
		CreatedAt: time.Now().UTC(),
	}
	if err := h.store.Add(sub); err != nil {
		respondServiceError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
