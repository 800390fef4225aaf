package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ibadah-tracker/backend/internal/application/usecase/profile"
	domainerror "github.com/ibadah-tracker/backend/internal/domain/error"
	"github.com/ibadah-tracker/backend/internal/integration/entrypoint/dto"
)

// ProfileController handles device registration and profile endpoints.
type ProfileController struct {
	registerUseCase *profile.RegisterDeviceUseCase
	getUseCase      *profile.GetProfileUseCase
	updateUseCase   *profile.UpdateProfileUseCase
	resetUseCase    *profile.ResetAllDataUseCase
	refreshUseCase  *profile.RefreshProfileUseCase
}

// NewProfileController creates a new profile controller instance.
func NewProfileController(
	registerUseCase *profile.RegisterDeviceUseCase,
	getUseCase *profile.GetProfileUseCase,
	updateUseCase *profile.UpdateProfileUseCase,
	resetUseCase *profile.ResetAllDataUseCase,
	refreshUseCase *profile.RefreshProfileUseCase,
) *ProfileController {
	return &ProfileController{
		registerUseCase: registerUseCase,
		getUseCase:      getUseCase,
		updateUseCase:   updateUseCase,
		resetUseCase:    resetUseCase,
		refreshUseCase:  refreshUseCase,
	}
}

// Register handles POST /devices requests.
func (c *ProfileController) Register(ctx *gin.Context) {
	var req dto.RegisterDeviceRequest
	if ctx.Request.ContentLength != 0 {
		if err := ctx.ShouldBindJSON(&req); err != nil {
			badRequest(ctx, err, string(domainerror.ErrCodeInvalidProfileName))
			return
		}
	}

	output, err := c.registerUseCase.Execute(ctx.Request.Context(), profile.RegisterDeviceInput{
		Name:       req.Name,
		City:       req.City,
		Latitude:   req.Latitude,
		Longitude:  req.Longitude,
		ExternalID: req.ExternalID,
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToDeviceResponse(output))
}

// Get handles GET /profile requests.
func (c *ProfileController) Get(ctx *gin.Context) {
	userID, ok := requireUser(ctx)
	if !ok {
		return
	}

	output, err := c.getUseCase.Execute(ctx.Request.Context(), profile.GetProfileInput{UserID: userID})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToProfileResponse(output))
}

// Update handles PATCH /profile requests.
func (c *ProfileController) Update(ctx *gin.Context) {
	userID, ok := requireUser(ctx)
	if !ok {
		return
	}

	var req dto.UpdateProfileRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, err, string(domainerror.ErrCodeInvalidProfileName))
		return
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), profile.UpdateProfileInput{
		UserID:     userID,
		Name:       req.Name,
		City:       req.City,
		Latitude:   req.Latitude,
		Longitude:  req.Longitude,
		ExternalID: req.ExternalID,
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToProfileResponse(output))
}

// Reset handles DELETE /profile requests.
func (c *ProfileController) Reset(ctx *gin.Context) {
	userID, ok := requireUser(ctx)
	if !ok {
		return
	}

	if err := c.resetUseCase.Execute(ctx.Request.Context(), profile.ResetAllDataInput{UserID: userID}); err != nil {
		handleError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// Refresh handles POST /refresh requests.
func (c *ProfileController) Refresh(ctx *gin.Context) {
	userID, ok := requireUser(ctx)
	if !ok {
		return
	}

	output, err := c.refreshUseCase.Execute(ctx.Request.Context(), profile.RefreshProfileInput{UserID: userID})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToProfileResponse(output))
}
