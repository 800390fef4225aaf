package adapter

import (
	"context"

	"github.com/ibadah-tracker/backend/internal/domain/entity"
)

// AnalyticsSink records discrete user actions. It is never a source of points.
type AnalyticsSink interface {
	Track(ctx context.Context, event entity.ActionEvent) error
}
