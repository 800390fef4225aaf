package zakat

import (
	"context"

	"github.com/google/uuid"

	"github.com/ibadah-tracker/backend/internal/application/adapter"
	"github.com/ibadah-tracker/backend/internal/domain/entity"
	domainerror "github.com/ibadah-tracker/backend/internal/domain/error"
)

// SetZakatPricesInput represents the input for storing market prices and nisab.
type SetZakatPricesInput struct {
	UserID uuid.UUID
	Prices entity.ZakatPrices
}

// SetZakatPricesUseCase stores the prices used by calculations.
type SetZakatPricesUseCase struct {
	zakatRepo adapter.ZakatRepository
	locker    adapter.OwnerLocker
}

// NewSetZakatPricesUseCase creates a new SetZakatPricesUseCase instance.
func NewSetZakatPricesUseCase(zakatRepo adapter.ZakatRepository, locker adapter.OwnerLocker) *SetZakatPricesUseCase {
	return &SetZakatPricesUseCase{
		zakatRepo: zakatRepo,
		locker:    locker,
	}
}

// Execute stores the prices.
func (uc *SetZakatPricesUseCase) Execute(ctx context.Context, input SetZakatPricesInput) (*entity.ZakatPrices, error) {
	if input.Prices.HasNegative() {
		return nil, negativeAmountError()
	}

	unlock := uc.locker.Lock(input.UserID)
	defer unlock()

	if err := uc.zakatRepo.SavePrices(ctx, input.UserID, input.Prices); err != nil {
		return nil, domainerror.NewZakatError(
			domainerror.ErrCodeZakatInternalError,
			"failed to save zakat prices",
			err,
		)
	}
	return &input.Prices, nil
}
