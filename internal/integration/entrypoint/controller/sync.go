package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ibadah-tracker/backend/internal/application/usecase/retention"
	syncuc "github.com/ibadah-tracker/backend/internal/application/usecase/sync"
	domainerror "github.com/ibadah-tracker/backend/internal/domain/error"
	"github.com/ibadah-tracker/backend/internal/integration/entrypoint/dto"
)

// SyncController handles sync and retention endpoints.
// The sync use cases are nil when no sync remote is configured.
type SyncController struct {
	pushUseCase    *syncuc.PushBundleUseCase
	pullUseCase    *syncuc.PullAndMergeUseCase
	cleanupUseCase *retention.CleanupOldLogsUseCase
}

// NewSyncController creates a new sync controller instance.
func NewSyncController(
	pushUseCase *syncuc.PushBundleUseCase,
	pullUseCase *syncuc.PullAndMergeUseCase,
	cleanupUseCase *retention.CleanupOldLogsUseCase,
) *SyncController {
	return &SyncController{
		pushUseCase:    pushUseCase,
		pullUseCase:    pullUseCase,
		cleanupUseCase: cleanupUseCase,
	}
}

// Push handles POST /sync/push requests.
func (c *SyncController) Push(ctx *gin.Context) {
	userID, ok := requireUser(ctx)
	if !ok {
		return
	}
	if c.pushUseCase == nil {
		syncDisabled(ctx)
		return
	}

	output, err := c.pushUseCase.Execute(ctx.Request.Context(), syncuc.PushBundleInput{UserID: userID})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.DataResponse{Data: output})
}

// Pull handles POST /sync/pull requests.
func (c *SyncController) Pull(ctx *gin.Context) {
	userID, ok := requireUser(ctx)
	if !ok {
		return
	}
	if c.pullUseCase == nil {
		syncDisabled(ctx)
		return
	}

	output, err := c.pullUseCase.Execute(ctx.Request.Context(), syncuc.PullAndMergeInput{UserID: userID})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.DataResponse{Data: output})
}

// Cleanup handles POST /retention/cleanup requests.
func (c *SyncController) Cleanup(ctx *gin.Context) {
	userID, ok := requireUser(ctx)
	if !ok {
		return
	}

	var req dto.RetentionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, err, string(domainerror.ErrCodeInvalidRetention))
		return
	}

	output, err := c.cleanupUseCase.Execute(ctx.Request.Context(), retention.CleanupOldLogsInput{
		UserID:   userID,
		KeepDays: req.KeepDays,
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.DataResponse{Data: output})
}

func syncDisabled(ctx *gin.Context) {
	ctx.JSON(http.StatusServiceUnavailable, dto.ErrorResponse{
		Error: "Sync remote is not configured",
		Code:  string(domainerror.ErrCodeSyncRemoteUnavailable),
	})
}
