package utils

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type APIResponse struct {
	Status  string      `json:"status"`
	Code    int         `json:"code"`
	Message string      `json:"message,omitempty"`
	TraceID string      `json:"trace_id,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

func RespondSuccess(c *gin.Context, data interface{}, message string) {
	c.JSON(http.StatusOK, APIResponse{
		Status:  "success",
		Code:    http.StatusOK,
		Message: message,
		TraceID: c.GetString("trace_id"),
		Data:    data,
	})
}

func RespondError(c *gin.Context, code int, message string) {
	c.JSON(code, APIResponse{
		Status:  "error",
		Code:    code,
		Message: message,
		TraceID: c.GetString("trace_id"),
	})
}

// HandleServiceError maps service sentinel errors to HTTP responses.
// Anything unrecognized is logged and reported as a 500 without leaking
// internals.
func HandleServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrAccountNotFound),
		errors.Is(err, ErrRecordNotFound),
		errors.Is(err, ErrPlanNotFound),
		errors.Is(err, ErrTemplateNotFound),
		errors.Is(err, ErrProfileNotFound),
		errors.Is(err, ErrProductNotFound),
		errors.Is(err, ErrTransactionNotFound),
		errors.Is(err, ErrSubscriptionNotFound):
		RespondError(c, http.StatusNotFound, err.Error())

	case errors.Is(err, ErrInvalidCredentials),
		errors.Is(err, ErrInvalidResetToken):
		RespondError(c, http.StatusUnauthorized, err.Error())

	case errors.Is(err, ErrEmailAlreadyExists),
		errors.Is(err, ErrCustomURLTaken),
		errors.Is(err, ErrTransactionSettled):
		RespondError(c, http.StatusConflict, err.Error())

	case errors.Is(err, ErrQuotaExceeded),
		errors.Is(err, ErrTemplateTierLocked),
		errors.Is(err, ErrInsufficientBalance):
		RespondError(c, http.StatusForbidden, err.Error())

	case errors.Is(err, ErrAmountOutOfBounds),
		errors.Is(err, ErrInvalidReferralCode),
		errors.Is(err, ErrUnknownResource),
		errors.Is(err, ErrUnknownTier),
		errors.Is(err, ErrNoFreePlan):
		RespondError(c, http.StatusBadRequest, err.Error())

	case errors.Is(err, ErrDatabaseError):
		zap.L().Error("database error", zap.Error(err))
		RespondError(c, http.StatusInternalServerError, "Internal server error")

	default:
		zap.L().Error("unhandled service error", zap.Error(err))
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	}
}
