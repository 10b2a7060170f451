package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/SscSPs/ledger_core/internal/apperrors"
	"github.com/SscSPs/ledger_core/internal/core/domain"
	"github.com/SscSPs/ledger_core/internal/dto"
	"github.com/SscSPs/ledger_core/internal/middleware"
	"github.com/gin-gonic/gin"
)

// respondServiceError maps a service error to a status code and writes it.
func respondServiceError(c *gin.Context, logger *slog.Logger, err error, failureMsg string) {
	var appErr *apperrors.AppError
	switch {
	case errors.Is(err, apperrors.ErrValidation):
		logger.Warn("Validation error", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrNotFound):
		logger.Warn("Resource not found", slog.String("error", err.Error()))
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrDuplicate), errors.Is(err, apperrors.ErrConflict), errors.Is(err, domain.ErrYearNotReady):
		logger.Warn("Conflicting request", slog.String("error", err.Error()))
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.As(err, &appErr) && appErr.Code == http.StatusServiceUnavailable:
		logger.Warn("Ledger busy", slog.String("error", err.Error()))
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": appErr.Message})
	default:
		logger.Error(failureMsg, slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": failureMsg})
	}
}

// postResultStatus picks the HTTP status of a post or reverse outcome.
func postResultStatus(result domain.PostResult) int {
	switch {
	case result.Success:
		return http.StatusCreated
	case result.HasCode(domain.ErrCodeDBError):
		return http.StatusInternalServerError
	case result.HasCode(domain.ErrCodeNotFound):
		return http.StatusNotFound
	case result.HasCode(domain.ErrCodeAlreadyReversed):
		return http.StatusConflict
	default:
		return http.StatusUnprocessableEntity
	}
}

func respondPostResult(c *gin.Context, logger *slog.Logger, result domain.PostResult) {
	status := postResultStatus(result)
	if result.Success {
		logger.Info("Entry posted", slog.Int64("entry_id", *result.EntryID), slog.String("protocol", result.Protocol))
	} else {
		logger.Warn("Entry rejected", slog.Int("status", status), slog.Int("error_count", len(result.Errors)))
	}
	c.JSON(status, dto.ToPostResultResponse(result))
}

// bindDateRange reads the from/to query parameters.
func bindDateRange(c *gin.Context) (time.Time, time.Time, error) {
	var params dto.DateRangeParams
	if err := c.ShouldBindQuery(&params); err != nil {
		return time.Time{}, time.Time{}, err
	}
	from, err := domain.ParseDate(params.From)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	to, err := domain.ParseDate(params.To)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	return from, to, nil
}

func intParam(c *gin.Context, name string) (int, error) {
	return strconv.Atoi(c.Param(name))
}

// requireUserID returns the acting user set by AuthMiddleware, writing 401 if absent.
func requireUserID(c *gin.Context, logger *slog.Logger) (string, bool) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
	}
	return userID, ok
}
