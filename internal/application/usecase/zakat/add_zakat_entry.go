package zakat

import (
	"context"
	"strconv"

	"github.com/google/uuid"

	"github.com/ibadah-tracker/backend/internal/application/adapter"
	"github.com/ibadah-tracker/backend/internal/application/usecase/progress"
	"github.com/ibadah-tracker/backend/internal/domain/entity"
	domainerror "github.com/ibadah-tracker/backend/internal/domain/error"
	"github.com/ibadah-tracker/backend/internal/domain/valueobject"
)

// AddZakatEntryInput represents the input for appending a history entry.
type AddZakatEntryInput struct {
	UserID uuid.UUID
	Date   string              // Optional, defaults to today
	Assets *entity.ZakatAssets // Optional, defaults to the stored snapshot
	Prices *entity.ZakatPrices // Optional, defaults to the stored prices
}

// AddZakatEntryOutput represents the output of appending a history entry.
type AddZakatEntryOutput struct {
	Entry         *entity.ZakatEntry `json:"entry"`
	PointsAwarded int                `json:"points_awarded"`
	TotalPoints   int                `json:"total_points"`
}

// AddZakatEntryUseCase appends an immutable calculation record and rewards logging it.
type AddZakatEntryUseCase struct {
	zakatRepo adapter.ZakatRepository
	engine    *progress.Engine
	locker    adapter.OwnerLocker
	sink      adapter.AnalyticsSink
}

// NewAddZakatEntryUseCase creates a new AddZakatEntryUseCase instance.
func NewAddZakatEntryUseCase(
	zakatRepo adapter.ZakatRepository,
	engine *progress.Engine,
	locker adapter.OwnerLocker,
	sink adapter.AnalyticsSink,
) *AddZakatEntryUseCase {
	return &AddZakatEntryUseCase{
		zakatRepo: zakatRepo,
		engine:    engine,
		locker:    locker,
		sink:      sink,
	}
}

// Execute appends the entry. The zakat_logged reward is keyed by the entry id.
func (uc *AddZakatEntryUseCase) Execute(ctx context.Context, input AddZakatEntryInput) (*AddZakatEntryOutput, error) {
	date := input.Date
	if date == "" {
		date = uc.engine.Today()
	}
	if !valueobject.IsDateKey(date) {
		return nil, domainerror.NewZakatError(
			domainerror.ErrCodeInvalidZakatDate,
			"invalid date format, expected YYYY-MM-DD",
			domainerror.ErrInvalidDateFormat,
		)
	}

	unlock := uc.locker.Lock(input.UserID)
	defer unlock()

	assets, prices, err := resolve(ctx, uc.zakatRepo, input.UserID, input.Assets, input.Prices)
	if err != nil {
		return nil, err
	}

	entry := entity.NewZakatEntry(date, assets, entity.CalculateZakat(assets, prices), uc.engine.Now())
	entries := append(uc.zakatRepo.ListEntries(ctx, input.UserID), entry)
	if err := uc.zakatRepo.SaveEntries(ctx, input.UserID, entries); err != nil {
		return nil, domainerror.NewZakatError(
			domainerror.ErrCodeZakatInternalError,
			"failed to save zakat history",
			err,
		)
	}

	points := entity.RewardZakatLogged.DefaultPoints()
	awarded, profile, err := uc.engine.Award(ctx, input.UserID, entity.RewardZakatLogged, entry.ID.String(), points)
	if err != nil {
		return nil, domainerror.NewZakatError(
			domainerror.ErrCodeZakatInternalError,
			"failed to award zakat points",
			err,
		)
	}
	if !awarded {
		points = 0
	}

	progress.Emit(ctx, uc.sink, entity.NewActionEvent(
		entity.EventZakatLogged,
		input.UserID,
		date,
		uc.engine.Now(),
		map[string]string{
			"entry_id":     entry.ID.String(),
			"meets_nisab":  strconv.FormatBool(entry.MeetsNisab),
			"zakat_amount": entry.ZakatAmount.StringFixed(2),
		},
	))

	return &AddZakatEntryOutput{
		Entry:         entry,
		PointsAwarded: points,
		TotalPoints:   profile.TotalPoints,
	}, nil
}

