package zakat

import (
	"context"

	"github.com/google/uuid"

	"github.com/ibadah-tracker/backend/internal/application/adapter"
	"github.com/ibadah-tracker/backend/internal/application/usecase/progress"
	"github.com/ibadah-tracker/backend/internal/domain/entity"
	domainerror "github.com/ibadah-tracker/backend/internal/domain/error"
)

// MarkZakatPaidInput represents the input for marking an entry paid.
type MarkZakatPaidInput struct {
	UserID  uuid.UUID
	EntryID uuid.UUID
}

// MarkZakatPaidOutput represents the output of marking an entry paid.
type MarkZakatPaidOutput struct {
	Found   bool               `json:"found"`
	Changed bool               `json:"changed"`
	Entry   *entity.ZakatEntry `json:"entry,omitempty"`
}

// MarkZakatPaidUseCase flips an entry's paid flag. There is no way back.
type MarkZakatPaidUseCase struct {
	zakatRepo adapter.ZakatRepository
	clock     adapter.Clock
	locker    adapter.OwnerLocker
	sink      adapter.AnalyticsSink
}

// NewMarkZakatPaidUseCase creates a new MarkZakatPaidUseCase instance.
func NewMarkZakatPaidUseCase(
	zakatRepo adapter.ZakatRepository,
	clock adapter.Clock,
	locker adapter.OwnerLocker,
	sink adapter.AnalyticsSink,
) *MarkZakatPaidUseCase {
	return &MarkZakatPaidUseCase{
		zakatRepo: zakatRepo,
		clock:     clock,
		locker:    locker,
		sink:      sink,
	}
}

// Execute marks the entry. Unknown ids report Found false; already paid entries report Changed false.
func (uc *MarkZakatPaidUseCase) Execute(ctx context.Context, input MarkZakatPaidInput) (*MarkZakatPaidOutput, error) {
	if input.EntryID == uuid.Nil {
		return nil, domainerror.NewZakatError(
			domainerror.ErrCodeInvalidZakatEntry,
			"invalid zakat entry id",
			domainerror.ErrInvalidZakatEntryID,
		)
	}

	unlock := uc.locker.Lock(input.UserID)
	defer unlock()

	entries := uc.zakatRepo.ListEntries(ctx, input.UserID)
	for _, entry := range entries {
		if entry.ID != input.EntryID {
			continue
		}
		if !entry.MarkPaid(uc.clock.Now()) {
			return &MarkZakatPaidOutput{Found: true, Entry: entry}, nil
		}
		if err := uc.zakatRepo.SaveEntries(ctx, input.UserID, entries); err != nil {
			return nil, domainerror.NewZakatError(
				domainerror.ErrCodeZakatInternalError,
				"failed to save zakat history",
				err,
			)
		}

		progress.Emit(ctx, uc.sink, entity.NewActionEvent(
			entity.EventZakatPaid,
			input.UserID,
			entry.Date,
			uc.clock.Now(),
			map[string]string{"entry_id": entry.ID.String()},
		))
		return &MarkZakatPaidOutput{Found: true, Changed: true, Entry: entry}, nil
	}

	return &MarkZakatPaidOutput{}, nil
}
