package zakat

import (
	"context"

	"github.com/google/uuid"

	"github.com/ibadah-tracker/backend/internal/application/adapter"
	"github.com/ibadah-tracker/backend/internal/domain/entity"
)

// GetZakatAssetsInput represents the input for reading the asset snapshot.
type GetZakatAssetsInput struct {
	UserID uuid.UUID
}

// GetZakatAssetsOutput is the live snapshot with its prices and current calculation.
type GetZakatAssetsOutput struct {
	Assets      entity.ZakatAssets      `json:"assets"`
	Prices      entity.ZakatPrices      `json:"prices"`
	Calculation entity.ZakatCalculation `json:"calculation"`
}

// GetZakatAssetsUseCase reads the live asset snapshot.
type GetZakatAssetsUseCase struct {
	zakatRepo adapter.ZakatRepository
}

// NewGetZakatAssetsUseCase creates a new GetZakatAssetsUseCase instance.
func NewGetZakatAssetsUseCase(zakatRepo adapter.ZakatRepository) *GetZakatAssetsUseCase {
	return &GetZakatAssetsUseCase{
		zakatRepo: zakatRepo,
	}
}

// Execute reads the snapshot. Missing records read as zero.
func (uc *GetZakatAssetsUseCase) Execute(ctx context.Context, input GetZakatAssetsInput) (*GetZakatAssetsOutput, error) {
	assets := uc.zakatRepo.GetAssets(ctx, input.UserID)
	prices := uc.zakatRepo.GetPrices(ctx, input.UserID)

	return &GetZakatAssetsOutput{
		Assets:      assets,
		Prices:      prices,
		Calculation: entity.CalculateZakat(assets, prices),
	}, nil
}
