// Package zakat contains zakat ledger use cases.
package zakat

import (
	"context"

	"github.com/google/uuid"

	"github.com/ibadah-tracker/backend/internal/application/adapter"
	"github.com/ibadah-tracker/backend/internal/domain/entity"
	domainerror "github.com/ibadah-tracker/backend/internal/domain/error"
)

// SetZakatAssetsInput represents the input for overwriting the asset snapshot.
type SetZakatAssetsInput struct {
	UserID uuid.UUID
	Assets entity.ZakatAssets
}

// SetZakatAssetsUseCase overwrites the live asset snapshot in place.
type SetZakatAssetsUseCase struct {
	zakatRepo adapter.ZakatRepository
	locker    adapter.OwnerLocker
}

// NewSetZakatAssetsUseCase creates a new SetZakatAssetsUseCase instance.
func NewSetZakatAssetsUseCase(zakatRepo adapter.ZakatRepository, locker adapter.OwnerLocker) *SetZakatAssetsUseCase {
	return &SetZakatAssetsUseCase{
		zakatRepo: zakatRepo,
		locker:    locker,
	}
}

// Execute stores the snapshot and returns the calculation it yields with the stored prices.
func (uc *SetZakatAssetsUseCase) Execute(ctx context.Context, input SetZakatAssetsInput) (*GetZakatAssetsOutput, error) {
	if input.Assets.HasNegative() {
		return nil, negativeAmountError()
	}

	unlock := uc.locker.Lock(input.UserID)
	defer unlock()

	if err := uc.zakatRepo.SaveAssets(ctx, input.UserID, input.Assets); err != nil {
		return nil, domainerror.NewZakatError(
			domainerror.ErrCodeZakatInternalError,
			"failed to save zakat assets",
			err,
		)
	}

	prices := uc.zakatRepo.GetPrices(ctx, input.UserID)
	return &GetZakatAssetsOutput{
		Assets:      input.Assets,
		Prices:      prices,
		Calculation: entity.CalculateZakat(input.Assets, prices),
	}, nil
}

func negativeAmountError() error {
	return domainerror.NewZakatError(
		domainerror.ErrCodeNegativeAmount,
		"amounts must not be negative",
		domainerror.ErrNegativeAmount,
	)
}
