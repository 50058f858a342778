package helpers

import (
	"errors"
	"fmt"
	"net/http"

	"domain-market/internal/marketerrors"
	"domain-market/utils"

	"github.com/gin-gonic/gin"
)

// HandleBindError sends a standardized JSON error for binding failures
func HandleBindError(c *gin.Context, handlerName string, err error) {
	wrappedErr := fmt.Errorf("invalid request payload: %w", err)
	utils.JSONError(c, http.StatusBadRequest, wrappedErr, "invalid request payload")
	utils.Warn(handlerName+": binding error", map[string]any{"error": err.Error()})
}

// MapErrorToHTTP maps domain/service errors to HTTP status code and message.
// More specific kinds must be checked before the kinds they wrap.
func MapErrorToHTTP(err error) (int, string) {
	switch {
	case errors.Is(err, marketerrors.ErrNotFound):
		return http.StatusNotFound, "not found"
	case errors.Is(err, marketerrors.ErrInvalidAuction):
		return http.StatusBadRequest, "invalid auction details"
	case errors.Is(err, marketerrors.ErrInvalidBid):
		return http.StatusBadRequest, "invalid bid details"
	case errors.Is(err, marketerrors.ErrInvalidEscrow):
		return http.StatusBadRequest, "invalid escrow details"
	case errors.Is(err, marketerrors.ErrInvalidProof):
		return http.StatusBadRequest, "invalid settlement proof"
	case errors.Is(err, marketerrors.ErrInvalidAsset):
		return http.StatusBadRequest, "invalid asset details"
	case errors.Is(err, marketerrors.ErrInvalidTransfer):
		return http.StatusBadRequest, "invalid transfer details"
	case errors.Is(err, marketerrors.ErrNotOwner):
		return http.StatusForbidden, "not the owner of this asset"
	case errors.Is(err, marketerrors.ErrBidTooLow):
		return http.StatusConflict, "bid amount too low"
	case errors.Is(err, marketerrors.ErrDuplicateAuction):
		return http.StatusConflict, "auction already exists"
	case errors.Is(err, marketerrors.ErrAlreadyRegistered):
		return http.StatusConflict, "asset already registered"
	case errors.Is(err, marketerrors.ErrDuplicateID):
		return http.StatusConflict, "duplicate id"
	case errors.Is(err, marketerrors.ErrAuctionNotStarted):
		return http.StatusConflict, "auction has not started"
	case errors.Is(err, marketerrors.ErrAuctionWindowClosed):
		return http.StatusConflict, "auction window closed"
	case errors.Is(err, marketerrors.ErrAuctionNotActive):
		return http.StatusConflict, "auction not active"
	case errors.Is(err, marketerrors.ErrAuctionNotEnded):
		return http.StatusConflict, "auction has not ended"
	case errors.Is(err, marketerrors.ErrAssetLocked):
		return http.StatusConflict, "asset is under auction"
	case errors.Is(err, marketerrors.ErrInvalidState):
		return http.StatusConflict, "operation not allowed in current state"
	case errors.Is(err, marketerrors.ErrNoWinner):
		return http.StatusConflict, "auction has no winner"
	case errors.Is(err, marketerrors.ErrSettlementUnverified):
		return http.StatusUnprocessableEntity, "settlement could not be verified"
	default:
		return http.StatusInternalServerError, "internal server error"
	}
}

// RespondError writes the mapped error response and logs it
func RespondError(c *gin.Context, handlerName string, err error, fields map[string]any) {
	status, message := MapErrorToHTTP(err)
	utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
	logFailure(handlerName, status, err, fields)
}

// RespondErrorWithData is RespondError for operations that failed after
// committing part of their work; data describes that committed part.
func RespondErrorWithData(c *gin.Context, handlerName string, err error, data any, fields map[string]any) {
	status, message := MapErrorToHTTP(err)
	utils.JSONErrorWithData(c, status, fmt.Errorf("%s: %w", message, err), message, data)
	logFailure(handlerName, status, err, fields)
}

func logFailure(handlerName string, status int, err error, fields map[string]any) {
	if fields == nil {
		fields = map[string]any{}
	}
	fields["handler"] = handlerName
	fields["status"] = status
	fields["error"] = err.Error()
	if status >= http.StatusInternalServerError {
		utils.Error(handlerName+": request failed", fields)
		return
	}
	utils.Warn(handlerName+": request rejected", fields)
}

// LogSuccess is a small helper to standardize logging of successful operations
func LogSuccess(handlerName, message string, ctx map[string]any) {
	utils.Info(handlerName+": "+message, ctx)
}
