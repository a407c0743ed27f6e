package helpers

import (
	"errors"
	"fmt"
	"net/http"

	"listing-engine/internal/listingerrors"
	"listing-engine/utils"

	"github.com/gin-gonic/gin"
)

// HandleBindError sends a standardized JSON error for binding failures
func HandleBindError(c *gin.Context, handlerName string, err error) {
	wrappedErr := fmt.Errorf("invalid request payload: %w", err)
	utils.JSONError(c, http.StatusBadRequest, wrappedErr, "invalid request payload")
	utils.Warn(handlerName+": binding error", map[string]any{"error": err.Error()})
}

// MapErrorToHTTP maps domain/service errors to HTTP status code and message
func MapErrorToHTTP(err error) (int, string) {
	switch {
	case errors.Is(err, listingerrors.ErrNotFound):
		return http.StatusNotFound, "not found"
	case errors.Is(err, listingerrors.ErrInvalidSchedule):
		return http.StatusBadRequest, "listing schedule out of order"
	case errors.Is(err, listingerrors.ErrZeroQuantity):
		return http.StatusBadRequest, "quantity must be positive"
	case errors.Is(err, listingerrors.ErrInsufficientFee):
		return http.StatusPaymentRequired, "payment does not match the required amount"
	case errors.Is(err, listingerrors.ErrInsufficientMerit):
		return http.StatusForbidden, "merit tier too low for this listing"
	case errors.Is(err, listingerrors.ErrWrongPhase):
		return http.StatusConflict, "operation not allowed in the current phase"
	case errors.Is(err, listingerrors.ErrAlreadyRevealed):
		return http.StatusConflict, "bid already revealed"
	case errors.Is(err, listingerrors.ErrAlreadySettled):
		return http.StatusConflict, "listing already settled"
	case errors.Is(err, listingerrors.ErrDuplicateUser):
		return http.StatusConflict, "account already registered"
	case errors.Is(err, listingerrors.ErrDuplicateToken):
		return http.StatusConflict, "token already minted"
	case errors.Is(err, listingerrors.ErrNotParticipating):
		return http.StatusNotFound, "caller is not participating in this listing"
	case errors.Is(err, listingerrors.ErrNothingToWithdraw):
		return http.StatusConflict, "nothing to withdraw"
	default:
		return http.StatusInternalServerError, "internal server error"
	}
}

// LogSuccess is a small helper to standardize logging of successful operations
func LogSuccess(handlerName, message string, ctx map[string]any) {
	utils.Info(handlerName+": "+message, ctx)
}
