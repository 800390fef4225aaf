package controller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/ibadah-tracker/backend/internal/application/usecase/stats"
	domainerror "github.com/ibadah-tracker/backend/internal/domain/error"
	"github.com/ibadah-tracker/backend/internal/integration/entrypoint/dto"
)

// StatsController handles aggregation endpoints.
type StatsController struct {
	dailyUseCase    *stats.GetDailyStatsUseCase
	rangeUseCase    *stats.GetRangeStatsUseCase
	weeklyUseCase   *stats.GetWeeklyStatsUseCase
	monthlyUseCase  *stats.GetMonthlyStatsUseCase
	calendarUseCase *stats.GetCalendarUseCase
}

// NewStatsController creates a new stats controller instance.
func NewStatsController(
	dailyUseCase *stats.GetDailyStatsUseCase,
	rangeUseCase *stats.GetRangeStatsUseCase,
	weeklyUseCase *stats.GetWeeklyStatsUseCase,
	monthlyUseCase *stats.GetMonthlyStatsUseCase,
	calendarUseCase *stats.GetCalendarUseCase,
) *StatsController {
	return &StatsController{
		dailyUseCase:    dailyUseCase,
		rangeUseCase:    rangeUseCase,
		weeklyUseCase:   weeklyUseCase,
		monthlyUseCase:  monthlyUseCase,
		calendarUseCase: calendarUseCase,
	}
}

// Daily handles GET /stats/daily requests.
func (c *StatsController) Daily(ctx *gin.Context) {
	userID, ok := requireUser(ctx)
	if !ok {
		return
	}

	output, err := c.dailyUseCase.Execute(ctx.Request.Context(), stats.GetDailyStatsInput{
		UserID: userID,
		Date:   ctx.Query("date"),
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.DataResponse{Data: output})
}

// Range handles GET /stats/range requests.
func (c *StatsController) Range(ctx *gin.Context) {
	userID, ok := requireUser(ctx)
	if !ok {
		return
	}

	output, err := c.rangeUseCase.Execute(ctx.Request.Context(), stats.GetRangeStatsInput{
		UserID:      userID,
		StartDate:   ctx.Query("start_date"),
		EndDate:     ctx.Query("end_date"),
		Granularity: stats.Granularity(ctx.Query("granularity")),
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.DataResponse{Data: output})
}

// Weekly handles GET /stats/weekly requests.
func (c *StatsController) Weekly(ctx *gin.Context) {
	userID, ok := requireUser(ctx)
	if !ok {
		return
	}

	output, err := c.weeklyUseCase.Execute(ctx.Request.Context(), stats.GetWeeklyStatsInput{
		UserID: userID,
		Date:   ctx.Query("date"),
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.DataResponse{Data: output})
}

// Monthly handles GET /stats/monthly requests.
func (c *StatsController) Monthly(ctx *gin.Context) {
	userID, ok := requireUser(ctx)
	if !ok {
		return
	}

	input := stats.GetMonthlyStatsInput{UserID: userID}
	for name, target := range map[string]*int{"year": &input.Year, "month": &input.Month} {
		raw := ctx.Query(name)
		if raw == "" {
			continue
		}
		value, err := strconv.Atoi(raw)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid " + name,
				Code:  string(domainerror.ErrCodeInvalidMonth),
			})
			return
		}
		*target = value
	}

	output, err := c.monthlyUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.DataResponse{Data: output})
}

// Calendar handles GET /stats/calendar requests.
func (c *StatsController) Calendar(ctx *gin.Context) {
	userID, ok := requireUser(ctx)
	if !ok {
		return
	}

	output, err := c.calendarUseCase.Execute(ctx.Request.Context(), stats.GetCalendarInput{
		UserID:    userID,
		StartDate: ctx.Query("start_date"),
		EndDate:   ctx.Query("end_date"),
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.DataResponse{Data: output})
}
