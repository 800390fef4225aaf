package zakat

import (
	"context"

	"github.com/google/uuid"

	"github.com/ibadah-tracker/backend/internal/application/adapter"
	"github.com/ibadah-tracker/backend/internal/domain/entity"
)

// CalculateZakatInput represents the input for a calculation preview.
type CalculateZakatInput struct {
	UserID uuid.UUID
	Assets *entity.ZakatAssets // Optional, defaults to the stored snapshot
	Prices *entity.ZakatPrices // Optional, defaults to the stored prices
}

// CalculateZakatUseCase previews a calculation without writing anything.
type CalculateZakatUseCase struct {
	zakatRepo adapter.ZakatRepository
}

// NewCalculateZakatUseCase creates a new CalculateZakatUseCase instance.
func NewCalculateZakatUseCase(zakatRepo adapter.ZakatRepository) *CalculateZakatUseCase {
	return &CalculateZakatUseCase{
		zakatRepo: zakatRepo,
	}
}

// Execute computes the preview.
func (uc *CalculateZakatUseCase) Execute(ctx context.Context, input CalculateZakatInput) (*GetZakatAssetsOutput, error) {
	assets, prices, err := resolve(ctx, uc.zakatRepo, input.UserID, input.Assets, input.Prices)
	if err != nil {
		return nil, err
	}

	return &GetZakatAssetsOutput{
		Assets:      assets,
		Prices:      prices,
		Calculation: entity.CalculateZakat(assets, prices),
	}, nil
}

// resolve picks the supplied assets and prices, falling back to the stored ones.
func resolve(ctx context.Context, repo adapter.ZakatRepository, userID uuid.UUID, assets *entity.ZakatAssets, prices *entity.ZakatPrices) (entity.ZakatAssets, entity.ZakatPrices, error) {
	var a entity.ZakatAssets
	if assets != nil {
		a = *assets
	} else {
		a = repo.GetAssets(ctx, userID)
	}
	var p entity.ZakatPrices
	if prices != nil {
		p = *prices
	} else {
		p = repo.GetPrices(ctx, userID)
	}
	if a.HasNegative() || p.HasNegative() {
		return a, p, negativeAmountError()
	}
	return a, p, nil
}
