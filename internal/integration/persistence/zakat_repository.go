package persistence

import (
	"context"

	"github.com/google/uuid"

	"github.com/ibadah-tracker/backend/internal/application/adapter"
	"github.com/ibadah-tracker/backend/internal/domain/entity"
)

// zakatRepository implements the adapter.ZakatRepository interface.
type zakatRepository struct {
	records *Records
}

// NewZakatRepository creates a new zakat repository instance.
func NewZakatRepository(records *Records) adapter.ZakatRepository {
	return &zakatRepository{
		records: records,
	}
}

func (r *zakatRepository) GetAssets(ctx context.Context, userID uuid.UUID) entity.ZakatAssets {
	return GetRecord(ctx, r.records, Namespace(userID), KeyZakatAssets, entity.ZakatAssets{})
}

func (r *zakatRepository) SaveAssets(ctx context.Context, userID uuid.UUID, assets entity.ZakatAssets) error {
	_, err := SetRecord(ctx, r.records, Namespace(userID), KeyZakatAssets, assets)
	return err
}

func (r *zakatRepository) GetPrices(ctx context.Context, userID uuid.UUID) entity.ZakatPrices {
	return GetRecord(ctx, r.records, Namespace(userID), KeyZakatPrices, entity.ZakatPrices{})
}

func (r *zakatRepository) SavePrices(ctx context.Context, userID uuid.UUID, prices entity.ZakatPrices) error {
	_, err := SetRecord(ctx, r.records, Namespace(userID), KeyZakatPrices, prices)
	return err
}

// ListEntries returns the zakat history in insertion order.
func (r *zakatRepository) ListEntries(ctx context.Context, userID uuid.UUID) []*entity.ZakatEntry {
	entries := GetRecord(ctx, r.records, Namespace(userID), KeyZakatHistory, []*entity.ZakatEntry{})
	valid := make([]*entity.ZakatEntry, 0, len(entries))
	for _, e := range entries {
		if e != nil {
			valid = append(valid, e)
		}
	}
	return valid
}

// SaveEntries replaces the stored zakat history.
func (r *zakatRepository) SaveEntries(ctx context.Context, userID uuid.UUID, entries []*entity.ZakatEntry) error {
	_, err := SetRecord(ctx, r.records, Namespace(userID), KeyZakatHistory, entries)
	return err
}
