package helpers

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	model "rewear/internal/models"
	"rewear/internal/swaperrors"
	"rewear/utils"

	"github.com/gin-gonic/gin"
)

// Gin context keys set by the auth middleware
const (
	ContextUserID = "user_id"
	ContextRole   = "role"
)

// CurrentActorID returns the authenticated user's id from the request context
func CurrentActorID(c *gin.Context) string {
	return c.GetString(ContextUserID)
}

// HandleBindError sends a standardized JSON error for binding failures
func HandleBindError(c *gin.Context, handlerName string, err error) {
	wrappedErr := fmt.Errorf("invalid request payload: %w", err)
	utils.JSONError(c, http.StatusBadRequest, wrappedErr, "invalid request payload")
	utils.Warn(handlerName+": binding error", map[string]any{"error": err.Error()})
}

// MapErrorToHTTP maps domain/service errors to HTTP status code and message
func MapErrorToHTTP(err error) (int, string) {
	switch {
	case errors.Is(err, swaperrors.ErrUserNotFound):
		return http.StatusNotFound, "user not found"
	case errors.Is(err, swaperrors.ErrItemNotFound):
		return http.StatusNotFound, "item not found"
	case errors.Is(err, swaperrors.ErrSwapNotFound):
		return http.StatusNotFound, "swap not found"
	case errors.Is(err, swaperrors.ErrInvalidRequest):
		return http.StatusBadRequest, "invalid request details"
	case errors.Is(err, swaperrors.ErrInvalidState):
		return http.StatusConflict, "item is no longer in the required state"
	case errors.Is(err, swaperrors.ErrAlreadyDecided):
		return http.StatusConflict, "swap has already been decided"
	case errors.Is(err, swaperrors.ErrStoreConflict):
		return http.StatusConflict, "operation lost a concurrent update, retry"
	case errors.Is(err, swaperrors.ErrInsufficientPoints):
		return http.StatusPaymentRequired, "insufficient points balance"
	case errors.Is(err, swaperrors.ErrUnauthorized):
		return http.StatusForbidden, "not allowed for this user"
	case errors.Is(err, swaperrors.ErrEmailTaken):
		return http.StatusConflict, "email already registered"
	case errors.Is(err, swaperrors.ErrInvalidCredentials):
		return http.StatusUnauthorized, "invalid email or password"
	default:
		return http.StatusInternalServerError, "internal server error"
	}
}

// RespondServiceError maps a service error, sends it, and logs it
func RespondServiceError(c *gin.Context, handlerName string, err error, ctx map[string]any) {
	status, message := MapErrorToHTTP(err)
	utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
	if ctx == nil {
		ctx = map[string]any{}
	}
	ctx["handler"] = handlerName
	ctx["error"] = err.Error()
	utils.Warn(handlerName+": request failed", ctx)
}

// NewSwapResponse converts a swap record to its wire form
func NewSwapResponse(swap model.Swap) SwapResponse {
	return SwapResponse{
		SwapID:        swap.SwapID,
		ItemID:        swap.ItemID,
		OfferedItemID: swap.OfferedItemID,
		RequesterID:   swap.RequesterID,
		OwnerID:       swap.OwnerID,
		Status:        string(swap.Status),
		CreatedAt:     swap.CreatedAt.UTC().Format(time.RFC3339),
	}
}

// NewSwapResponses converts a slice of swap records
func NewSwapResponses(swaps []model.Swap) []SwapResponse {
	out := make([]SwapResponse, 0, len(swaps))
	for _, swap := range swaps {
		out = append(out, NewSwapResponse(swap))
	}
	return out
}

// LogSuccess is a small helper to standardize logging of successful operations
func LogSuccess(handlerName, message string, ctx map[string]any) {
	utils.Info(handlerName+": "+message, ctx)
}
