package zakat

import (
	"context"

	"github.com/google/uuid"

	"github.com/ibadah-tracker/backend/internal/application/adapter"
	"github.com/ibadah-tracker/backend/internal/domain/entity"
)

// ListZakatEntriesInput represents the input for listing the history.
type ListZakatEntriesInput struct {
	UserID uuid.UUID
}

// ListZakatEntriesOutput represents the history, newest first.
type ListZakatEntriesOutput struct {
	Entries []*entity.ZakatEntry `json:"entries"`
}

// ListZakatEntriesUseCase lists the zakat history.
type ListZakatEntriesUseCase struct {
	zakatRepo adapter.ZakatRepository
}

// NewListZakatEntriesUseCase creates a new ListZakatEntriesUseCase instance.
func NewListZakatEntriesUseCase(zakatRepo adapter.ZakatRepository) *ListZakatEntriesUseCase {
	return &ListZakatEntriesUseCase{
		zakatRepo: zakatRepo,
	}
}

// Execute lists the entries, newest first.
func (uc *ListZakatEntriesUseCase) Execute(ctx context.Context, input ListZakatEntriesInput) (*ListZakatEntriesOutput, error) {
	stored := uc.zakatRepo.ListEntries(ctx, input.UserID)

	entries := make([]*entity.ZakatEntry, 0, len(stored))
	for i := len(stored) - 1; i >= 0; i-- {
		entries = append(entries, stored[i])
	}
	return &ListZakatEntriesOutput{
		Entries: entries,
	}, nil
}
