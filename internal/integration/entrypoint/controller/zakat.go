package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/ibadah-tracker/backend/internal/application/usecase/zakat"
	domainerror "github.com/ibadah-tracker/backend/internal/domain/error"
	"github.com/ibadah-tracker/backend/internal/integration/entrypoint/dto"
)

// ZakatController handles zakat ledger endpoints.
type ZakatController struct {
	getAssetsUseCase   *zakat.GetZakatAssetsUseCase
	setAssetsUseCase   *zakat.SetZakatAssetsUseCase
	setPricesUseCase   *zakat.SetZakatPricesUseCase
	calculateUseCase   *zakat.CalculateZakatUseCase
	addEntryUseCase    *zakat.AddZakatEntryUseCase
	listEntriesUseCase *zakat.ListZakatEntriesUseCase
	markPaidUseCase    *zakat.MarkZakatPaidUseCase
}

// NewZakatController creates a new zakat controller instance.
func NewZakatController(
	getAssetsUseCase *zakat.GetZakatAssetsUseCase,
	setAssetsUseCase *zakat.SetZakatAssetsUseCase,
	setPricesUseCase *zakat.SetZakatPricesUseCase,
	calculateUseCase *zakat.CalculateZakatUseCase,
	addEntryUseCase *zakat.AddZakatEntryUseCase,
	listEntriesUseCase *zakat.ListZakatEntriesUseCase,
	markPaidUseCase *zakat.MarkZakatPaidUseCase,
) *ZakatController {
	return &ZakatController{
		getAssetsUseCase:   getAssetsUseCase,
		setAssetsUseCase:   setAssetsUseCase,
		setPricesUseCase:   setPricesUseCase,
		calculateUseCase:   calculateUseCase,
		addEntryUseCase:    addEntryUseCase,
		listEntriesUseCase: listEntriesUseCase,
		markPaidUseCase:    markPaidUseCase,
	}
}

// GetAssets handles GET /zakat/assets requests.
func (c *ZakatController) GetAssets(ctx *gin.Context) {
	userID, ok := requireUser(ctx)
	if !ok {
		return
	}

	output, err := c.getAssetsUseCase.Execute(ctx.Request.Context(), zakat.GetZakatAssetsInput{UserID: userID})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.DataResponse{Data: output})
}

// SetAssets handles PUT /zakat/assets requests.
func (c *ZakatController) SetAssets(ctx *gin.Context) {
	userID, ok := requireUser(ctx)
	if !ok {
		return
	}

	var req dto.ZakatAssetsRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, err, string(domainerror.ErrCodeInvalidAmount))
		return
	}

	output, err := c.setAssetsUseCase.Execute(ctx.Request.Context(), zakat.SetZakatAssetsInput{
		UserID: userID,
		Assets: req.ToEntity(),
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.DataResponse{Data: output})
}

// SetPrices handles PUT /zakat/prices requests.
func (c *ZakatController) SetPrices(ctx *gin.Context) {
	userID, ok := requireUser(ctx)
	if !ok {
		return
	}

	var req dto.ZakatPricesRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, err, string(domainerror.ErrCodeInvalidAmount))
		return
	}

	output, err := c.setPricesUseCase.Execute(ctx.Request.Context(), zakat.SetZakatPricesInput{
		UserID: userID,
		Prices: req.ToEntity(),
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.DataResponse{Data: output})
}

// Calculate handles POST /zakat/calculate requests. Nothing is stored.
func (c *ZakatController) Calculate(ctx *gin.Context) {
	userID, ok := requireUser(ctx)
	if !ok {
		return
	}

	var req dto.CalculateZakatRequest
	if ctx.Request.ContentLength != 0 {
		if err := ctx.ShouldBindJSON(&req); err != nil {
			badRequest(ctx, err, string(domainerror.ErrCodeInvalidAmount))
			return
		}
	}

	output, err := c.calculateUseCase.Execute(ctx.Request.Context(), zakat.CalculateZakatInput{
		UserID: userID,
		Assets: dto.AssetsEntity(req.Assets),
		Prices: dto.PricesEntity(req.Prices),
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.DataResponse{Data: output})
}

// AddEntry handles POST /zakat/entries requests.
func (c *ZakatController) AddEntry(ctx *gin.Context) {
	userID, ok := requireUser(ctx)
	if !ok {
		return
	}

	var req dto.AddZakatEntryRequest
	if ctx.Request.ContentLength != 0 {
		if err := ctx.ShouldBindJSON(&req); err != nil {
			badRequest(ctx, err, string(domainerror.ErrCodeInvalidAmount))
			return
		}
	}

	output, err := c.addEntryUseCase.Execute(ctx.Request.Context(), zakat.AddZakatEntryInput{
		UserID: userID,
		Date:   req.Date,
		Assets: dto.AssetsEntity(req.Assets),
		Prices: dto.PricesEntity(req.Prices),
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.DataResponse{Data: output})
}

// ListEntries handles GET /zakat/entries requests.
func (c *ZakatController) ListEntries(ctx *gin.Context) {
	userID, ok := requireUser(ctx)
	if !ok {
		return
	}

	output, err := c.listEntriesUseCase.Execute(ctx.Request.Context(), zakat.ListZakatEntriesInput{UserID: userID})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.DataResponse{Data: output})
}

// MarkPaid handles POST /zakat/entries/:id/paid requests.
// An unknown or already-paid entry is a successful response describing what happened.
func (c *ZakatController) MarkPaid(ctx *gin.Context) {
	userID, ok := requireUser(ctx)
	if !ok {
		return
	}

	entryID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid zakat entry ID format",
			Code:  string(domainerror.ErrCodeInvalidZakatEntry),
		})
		return
	}

	output, err := c.markPaidUseCase.Execute(ctx.Request.Context(), zakat.MarkZakatPaidInput{
		UserID:  userID,
		EntryID: entryID,
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.DataResponse{Data: output})
}
