package summary

import (
	"context"

	"github.com/google/uuid"

	"github.com/vidnotes/vidnotes/internal/model"
)

// ListFilter narrows List results. Zero values mean "no filter".
type ListFilter struct {
	Query        string // matched case-insensitively against title and summary text
	Tag          string
	FavoriteOnly bool
	Limit        int
	Offset       int
}

// Repository defines operations for Summary persistence. Every read,
// update and delete is scoped to the owning user: a record is only
// visible to the user identified by userID.
type Repository interface {
	// Create persists a fully assembled summary in one insert
	Create(ctx context.Context, summary *model.Summary) error

	// GetByID retrieves one summary owned by userID
	GetByID(ctx context.Context, id, userID uuid.UUID) (*model.Summary, error)

	// List retrieves the user's summaries, newest first
	List(ctx context.Context, userID uuid.UUID, filter ListFilter) ([]*model.Summary, error)

	// ExistsByVideoID reports whether the user already has a summary
	// for the given video
	ExistsByVideoID(ctx context.Context, userID uuid.UUID, videoID string) (bool, error)

	// UpdateTags replaces the tag list of one summary
	UpdateTags(ctx context.Context, id, userID uuid.UUID, tags []string) error

	// SetFavorite sets the favorite flag of one summary
	SetFavorite(ctx context.Context, id, userID uuid.UUID, favorite bool) error

	// Delete removes one summary owned by userID
	Delete(ctx context.Context, id, userID uuid.UUID) error
}
