package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/ibadah-tracker/backend/internal/domain/entity"
)

// ZakatRepository defines the interface for zakat snapshot and history persistence.
type ZakatRepository interface {
	GetAssets(ctx context.Context, userID uuid.UUID) entity.ZakatAssets
	SaveAssets(ctx context.Context, userID uuid.UUID, assets entity.ZakatAssets) error

	GetPrices(ctx context.Context, userID uuid.UUID) entity.ZakatPrices
	SavePrices(ctx context.Context, userID uuid.UUID, prices entity.ZakatPrices) error

	// ListEntries returns the history in insertion order.
	ListEntries(ctx context.Context, userID uuid.UUID) []*entity.ZakatEntry

	// SaveEntries replaces the stored history.
	SaveEntries(ctx context.Context, userID uuid.UUID, entries []*entity.ZakatEntry) error
}
