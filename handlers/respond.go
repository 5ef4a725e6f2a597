package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"sweetcrumb/services/booking"
	"sweetcrumb/services/payment"
	"sweetcrumb/utils"
)

// respondServiceError maps service errors onto the response taxonomy:
// validation 400, conflict 409, payment incomplete 402, everything else
// (gateway or storage trouble) 503 with a generic message. Raw error text
// never reaches the client.
func respondServiceError(c *gin.Context, logger *zap.Logger, err error) {
	var (
		validationErr *booking.ValidationError
		conflictErr   *booking.ConflictError
		incompleteErr *booking.PaymentIncompleteError
		gatewayErr    *payment.UnavailableError
	)

	switch {
	case errors.As(err, &validationErr):
		utils.JSONError(c, http.StatusBadRequest, validationErr.Message)
	case errors.As(err, &conflictErr):
		utils.JSONError(c, http.StatusConflict, "That date has just been booked. Please pick another day.")
	case errors.As(err, &incompleteErr):
		utils.JSONError(c, http.StatusPaymentRequired, "The payment has not completed. Please finish paying and try again.")
	case errors.As(err, &gatewayErr):
		utils.JSONError(c, http.StatusServiceUnavailable, "Payments are temporarily unavailable. Please try again shortly.")
	default:
		logger.Error("request failed", zap.Error(err))
		utils.JSONError(c, http.StatusServiceUnavailable, "Service temporarily unavailable. Please try again shortly.")
	}
}

func bindError(c *gin.Context) {
	utils.JSONError(c, http.StatusBadRequest, "Invalid request body.")
}
