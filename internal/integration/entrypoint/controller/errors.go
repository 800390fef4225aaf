package controller

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	domainerror "github.com/ibadah-tracker/backend/internal/domain/error"
	"github.com/ibadah-tracker/backend/internal/integration/entrypoint/dto"
	"github.com/ibadah-tracker/backend/internal/integration/entrypoint/middleware"
)

// codedError extracts the code and message of any domain error.
func codedError(err error) (code, message string, ok bool) {
	var (
		prayerErr     *domainerror.PrayerError
		habitErr      *domainerror.HabitError
		rewardErr     *domainerror.RewardError
		statsErr      *domainerror.StatsError
		zakatErr      *domainerror.ZakatError
		collectionErr *domainerror.CollectionError
		profileErr    *domainerror.ProfileError
		syncErr       *domainerror.SyncError
		authErr       *domainerror.AuthError
	)
	switch {
	case errors.As(err, &prayerErr):
		return string(prayerErr.Code), prayerErr.Message, true
	case errors.As(err, &habitErr):
		return string(habitErr.Code), habitErr.Message, true
	case errors.As(err, &rewardErr):
		return string(rewardErr.Code), rewardErr.Message, true
	case errors.As(err, &statsErr):
		return string(statsErr.Code), statsErr.Message, true
	case errors.As(err, &zakatErr):
		return string(zakatErr.Code), zakatErr.Message, true
	case errors.As(err, &collectionErr):
		return string(collectionErr.Code), collectionErr.Message, true
	case errors.As(err, &profileErr):
		return string(profileErr.Code), profileErr.Message, true
	case errors.As(err, &syncErr):
		return string(syncErr.Code), syncErr.Message, true
	case errors.As(err, &authErr):
		return string(authErr.Code), authErr.Message, true
	}
	return "", "", false
}

// statusForCode maps the category digits of an XXX-CCYYYY code to an HTTP status.
func statusForCode(code string) int {
	_, rest, found := strings.Cut(code, "-")
	if !found || len(rest) < 2 {
		return http.StatusInternalServerError
	}
	switch rest[:2] {
	case "01":
		return http.StatusBadRequest
	case "02":
		return http.StatusServiceUnavailable
	case "03":
		return http.StatusUnauthorized
	case "04":
		return http.StatusTooManyRequests
	default:
		return http.StatusInternalServerError
	}
}

// handleError writes the response for a use case error.
func handleError(ctx *gin.Context, err error) {
	code, message, ok := codedError(err)
	if !ok {
		slog.Error("Unhandled error", "path", ctx.FullPath(), "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "An internal error occurred",
		})
		return
	}

	status := statusForCode(code)
	if status >= http.StatusInternalServerError {
		slog.Error("Request failed", "path", ctx.FullPath(), "code", code, "error", err)
	}
	ctx.JSON(status, dto.ErrorResponse{
		Error: message,
		Code:  code,
	})
}

// requireUser returns the authenticated profile id, writing a 401 when absent.
func requireUser(ctx *gin.Context) (uuid.UUID, bool) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return uuid.Nil, false
	}
	return userID, true
}

// badRequest writes a 400 for an unreadable request body.
func badRequest(ctx *gin.Context, err error, code string) {
	ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
		Error:   "Invalid request body",
		Code:    code,
		Details: err.Error(),
	})
}
