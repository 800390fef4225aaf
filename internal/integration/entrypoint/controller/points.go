package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ibadah-tracker/backend/internal/application/usecase/points"
	"github.com/ibadah-tracker/backend/internal/application/usecase/streak"
	"github.com/ibadah-tracker/backend/internal/domain/entity"
	domainerror "github.com/ibadah-tracker/backend/internal/domain/error"
	"github.com/ibadah-tracker/backend/internal/integration/entrypoint/dto"
)

// PointsController handles points, levels, rewards and streak endpoints.
type PointsController struct {
	getUseCase         *points.GetPointsUseCase
	recalculateUseCase *points.RecalculatePointsUseCase
	awardUseCase       *points.AwardPointsUseCase
	streakUseCase      *streak.UpdateStreakUseCase
}

// NewPointsController creates a new points controller instance.
func NewPointsController(
	getUseCase *points.GetPointsUseCase,
	recalculateUseCase *points.RecalculatePointsUseCase,
	awardUseCase *points.AwardPointsUseCase,
	streakUseCase *streak.UpdateStreakUseCase,
) *PointsController {
	return &PointsController{
		getUseCase:         getUseCase,
		recalculateUseCase: recalculateUseCase,
		awardUseCase:       awardUseCase,
		streakUseCase:      streakUseCase,
	}
}

// Get handles GET /points requests.
func (c *PointsController) Get(ctx *gin.Context) {
	userID, ok := requireUser(ctx)
	if !ok {
		return
	}

	output, err := c.getUseCase.Execute(ctx.Request.Context(), points.GetPointsInput{UserID: userID})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.DataResponse{Data: output})
}

// Levels handles GET /points/levels requests.
func (c *PointsController) Levels(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, dto.LevelsResponse{Levels: entity.Levels})
}

// Table handles GET /points/table requests.
func (c *PointsController) Table(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, dto.PointsTableResponse{Actions: entity.PointsTable})
}

// Recalculate handles POST /points/recalculate requests.
func (c *PointsController) Recalculate(ctx *gin.Context) {
	userID, ok := requireUser(ctx)
	if !ok {
		return
	}

	output, err := c.recalculateUseCase.Execute(ctx.Request.Context(), points.RecalculatePointsInput{UserID: userID})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.DataResponse{Data: output})
}

// Award handles POST /rewards requests. A duplicate reward is a successful response with awarded=false.
func (c *PointsController) Award(ctx *gin.Context) {
	userID, ok := requireUser(ctx)
	if !ok {
		return
	}

	var req dto.AwardRewardRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, err, string(domainerror.ErrCodeInvalidRewardKind))
		return
	}

	output, err := c.awardUseCase.Execute(ctx.Request.Context(), points.AwardPointsInput{
		UserID:     userID,
		Kind:       entity.RewardKind(req.Kind),
		Identifier: req.Identifier,
		Points:     req.Points,
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	status := http.StatusOK
	if output.Awarded {
		status = http.StatusCreated
	}
	ctx.JSON(status, dto.DataResponse{Data: output})
}

// UpdateStreak handles POST /streak requests.
func (c *PointsController) UpdateStreak(ctx *gin.Context) {
	userID, ok := requireUser(ctx)
	if !ok {
		return
	}

	output, err := c.streakUseCase.Execute(ctx.Request.Context(), streak.UpdateStreakInput{UserID: userID})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.DataResponse{Data: output})
}
