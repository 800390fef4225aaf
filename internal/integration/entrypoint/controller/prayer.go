package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ibadah-tracker/backend/internal/application/usecase/prayer"
	"github.com/ibadah-tracker/backend/internal/domain/entity"
	domainerror "github.com/ibadah-tracker/backend/internal/domain/error"
	"github.com/ibadah-tracker/backend/internal/integration/entrypoint/dto"
)

// PrayerController handles prayer log endpoints.
type PrayerController struct {
	getDayUseCase    *prayer.GetPrayerDayUseCase
	markUseCase      *prayer.MarkPrayerUseCase
	setStatusUseCase *prayer.SetPrayerStatusUseCase
}

// NewPrayerController creates a new prayer controller instance.
func NewPrayerController(
	getDayUseCase *prayer.GetPrayerDayUseCase,
	markUseCase *prayer.MarkPrayerUseCase,
	setStatusUseCase *prayer.SetPrayerStatusUseCase,
) *PrayerController {
	return &PrayerController{
		getDayUseCase:    getDayUseCase,
		markUseCase:      markUseCase,
		setStatusUseCase: setStatusUseCase,
	}
}

// GetDay handles GET /prayers/:date requests.
func (c *PrayerController) GetDay(ctx *gin.Context) {
	userID, ok := requireUser(ctx)
	if !ok {
		return
	}

	output, err := c.getDayUseCase.Execute(ctx.Request.Context(), prayer.GetPrayerDayInput{
		UserID: userID,
		Date:   ctx.Param("date"),
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.DataResponse{Data: output})
}

// Mark handles POST /prayers/:date/:prayer/mark requests.
// Locked and cleared outcomes are successful responses; the body carries the outcome.
func (c *PrayerController) Mark(ctx *gin.Context) {
	userID, ok := requireUser(ctx)
	if !ok {
		return
	}

	output, err := c.markUseCase.Execute(ctx.Request.Context(), prayer.MarkPrayerInput{
		UserID: userID,
		Date:   ctx.Param("date"),
		Prayer: entity.PrayerName(ctx.Param("prayer")),
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.DataResponse{Data: output})
}

// SetStatus handles PUT /prayers/:date/:prayer requests.
func (c *PrayerController) SetStatus(ctx *gin.Context) {
	userID, ok := requireUser(ctx)
	if !ok {
		return
	}

	var req dto.SetPrayerStatusRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, err, string(domainerror.ErrCodeInvalidPrayerStatus))
		return
	}

	output, err := c.setStatusUseCase.Execute(ctx.Request.Context(), prayer.SetPrayerStatusInput{
		UserID: userID,
		Date:   ctx.Param("date"),
		Prayer: entity.PrayerName(ctx.Param("prayer")),
		Status: entity.PrayerStatus(req.Status),
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.DataResponse{Data: output})
}
