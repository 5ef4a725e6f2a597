package handlers

import (
	"net/http"
	"sort"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"sweetcrumb/database/reviews"
	"sweetcrumb/models"
	"sweetcrumb/utils"
)

const maxCommentLength = 1000

// ReviewHandler serves customer reviews for the marketing site.
type ReviewHandler struct {
	store  reviews.Store
	logger *zap.Logger
}

func NewReviewHandler(store reviews.Store, logger *zap.Logger) *ReviewHandler {
	return &ReviewHandler{store: store, logger: logger}
}

// Create handles POST /api/reviews.
func (h *ReviewHandler) Create(c *gin.Context) {
	var req struct {
		Name    string `json:"name"`
		Rating  int    `json:"rating"`
		Comment string `json:"comment"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c)
		return
	}

	name := strings.TrimSpace(req.Name)
	switch {
	case name == "":
		utils.JSONError(c, http.StatusBadRequest, "name is required")
		return
	case req.Rating < 1 || req.Rating > 5:
		utils.JSONError(c, http.StatusBadRequest, "rating must be between 1 and 5")
		return
	case len(req.Comment) > maxCommentLength:
		utils.JSONError(c, http.StatusBadRequest, "comment is too long")
		return
	}

	review := models.Review{
		ID:        uuid.New().String(),
		Name:      name,
		Rating:    req.Rating,
		Comment:   strings.TrimSpace(req.Comment),
		CreatedAt: time.Now().UTC(),
	}
	if err := h.store.Append(review); err != nil {
		respondServiceError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "id": review.ID})
}

// List handles GET /api/reviews, newest first.
func (h *ReviewHandler) List(c *gin.Context) {
	all, err := h.store.ReadAll()
	if err != nil {
		respondServiceError(c, h.logger, err)
		return
	}

	sort.Slice(all, func(i, j int) bool {
		return all[i].CreatedAt.After(all[j].CreatedAt)
	})
	if all == nil {
		all = []models.Review{}
	}

	c.JSON(http.StatusOK, gin.H{"reviews": all})
}
