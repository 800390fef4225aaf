package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ibadah-tracker/backend/internal/application/usecase/habit"
	"github.com/ibadah-tracker/backend/internal/domain/entity"
	"github.com/ibadah-tracker/backend/internal/integration/entrypoint/dto"
)

// HabitController handles habit log endpoints.
type HabitController struct {
	getDayUseCase *habit.GetHabitDayUseCase
	toggleUseCase *habit.ToggleHabitUseCase
}

// NewHabitController creates a new habit controller instance.
func NewHabitController(getDayUseCase *habit.GetHabitDayUseCase, toggleUseCase *habit.ToggleHabitUseCase) *HabitController {
	return &HabitController{
		getDayUseCase: getDayUseCase,
		toggleUseCase: toggleUseCase,
	}
}

// GetDay handles GET /habits/:date requests.
func (c *HabitController) GetDay(ctx *gin.Context) {
	userID, ok := requireUser(ctx)
	if !ok {
		return
	}

	output, err := c.getDayUseCase.Execute(ctx.Request.Context(), habit.GetHabitDayInput{
		UserID: userID,
		Date:   ctx.Param("date"),
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.DataResponse{Data: output})
}

// Toggle handles POST /habits/:date/:habit/toggle requests.
func (c *HabitController) Toggle(ctx *gin.Context) {
	userID, ok := requireUser(ctx)
	if !ok {
		return
	}

	output, err := c.toggleUseCase.Execute(ctx.Request.Context(), habit.ToggleHabitInput{
		UserID: userID,
		Date:   ctx.Param("date"),
		Habit:  entity.HabitName(ctx.Param("habit")),
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.DataResponse{Data: output})
}
