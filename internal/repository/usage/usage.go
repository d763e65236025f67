// Package usage persists usage statistics events.
package usage

import (
	"context"

	"github.com/vidnotes/vidnotes/internal/model"
)

// Repository records usage events. Events are append-only; there is no
// read path in the application, statistics are queried out of band.
type Repository interface {
	// Record inserts a usage event for the given user.
	Record(ctx context.Context, stat *model.UsageStatistic) error
}
