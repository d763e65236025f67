package summary

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	apperrors "github.com/vidnotes/vidnotes/internal/errors"
	"github.com/vidnotes/vidnotes/internal/model"
	"github.com/vidnotes/vidnotes/internal/repository/common"
)

// Pool interface for abstracting pgx connection pool
type Pool interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

const summaryColumns = `id, user_id, youtube_url, video_id, video_title, channel_title, duration, thumbnail_url, transcript_text, summary_text, processing_time_ms, is_favorite, tags, created_at`

// summaryRepository implements Repository using PostgreSQL
type summaryRepository struct {
	pool Pool
}

// NewRepository creates a new instance of Repository
func NewRepository(pool Pool) Repository {
	return &summaryRepository{
		pool: pool,
	}
}

// Create persists a fully assembled summary in one insert
func (r *summaryRepository) Create(ctx context.Context, summary *model.Summary) error {
	sql := `INSERT INTO summaries (` + summaryColumns + `) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`
	_, err := r.pool.Exec(ctx, sql,
		summary.ID,
		summary.UserID,
		summary.YoutubeURL,
		summary.VideoID,
		summary.VideoTitle,
		summary.ChannelTitle,
		summary.Duration,
		summary.ThumbnailURL,
		summary.TranscriptText,
		summary.SummaryText,
		summary.ProcessingTimeMs,
		summary.IsFavorite,
		summary.Tags,
		summary.CreatedAt,
	)
	if err != nil {
		return common.HandlePostgreSQLError(err, "failed to create summary")
	}
	return nil
}

// GetByID retrieves one summary owned by userID
func (r *summaryRepository) GetByID(ctx context.Context, id, userID uuid.UUID) (*model.Summary, error) {
	sql := `SELECT ` + summaryColumns + ` FROM summaries WHERE id = $1 AND user_id = $2`
	row := r.pool.QueryRow(ctx, sql, id, userID)

	summary, err := scanSummary(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.Wrap(err, apperrors.CodeNotFound, "summary not found")
		}
		return nil, common.HandlePostgreSQLError(err, "failed to get summary")
	}

	return summary, nil
}

// List retrieves the user's summaries, newest first
func (r *summaryRepository) List(ctx context.Context, userID uuid.UUID, filter ListFilter) ([]*model.Summary, error) {
	where := []string{"user_id = $1"}
	args := []any{userID}

	if filter.Query != "" {
		args = append(args, "%"+filter.Query+"%")
		n := len(args)
		where = append(where, fmt.Sprintf("(video_title ILIKE $%d OR summary_text ILIKE $%d)", n, n))
	}
	if filter.Tag != "" {
		args = append(args, filter.Tag)
		where = append(where, fmt.Sprintf("$%d ILIKE ANY (tags)", len(args)))
	}
	if filter.FavoriteOnly {
		where = append(where, "is_favorite = TRUE")
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = 20
	}
	offset := filter.Offset
	if offset < 0 {
		offset = 0
	}
	args = append(args, limit, offset)

	sql := fmt.Sprintf(`SELECT %s FROM summaries WHERE %s ORDER BY created_at DESC LIMIT $%d OFFSET $%d`,
		summaryColumns, strings.Join(where, " AND "), len(args)-1, len(args))

	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, common.HandlePostgreSQLError(err, "failed to list summaries")
	}
	defer rows.Close()

	summaries := []*model.Summary{}
	for rows.Next() {
		summary, err := scanSummary(rows)
		if err != nil {
			return nil, common.HandlePostgreSQLError(err, "failed to scan summary row")
		}
		summaries = append(summaries, summary)
	}

	if err := rows.Err(); err != nil {
		return nil, common.HandlePostgreSQLError(err, "failed to iterate summary rows")
	}

	return summaries, nil
}

// ExistsByVideoID reports whether the user already has a summary for
// the given video
func (r *summaryRepository) ExistsByVideoID(ctx context.Context, userID uuid.UUID, videoID string) (bool, error) {
	sql := `SELECT EXISTS (SELECT 1 FROM summaries WHERE user_id = $1 AND video_id = $2)`
	var exists bool
	if err := r.pool.QueryRow(ctx, sql, userID, videoID).Scan(&exists); err != nil {
		return false, common.HandlePostgreSQLError(err, "failed to check summary existence")
	}
	return exists, nil
}

// UpdateTags replaces the tag list of one summary
func (r *summaryRepository) UpdateTags(ctx context.Context, id, userID uuid.UUID, tags []string) error {
	sql := `UPDATE summaries SET tags = $3 WHERE id = $1 AND user_id = $2`
	tag, err := r.pool.Exec(ctx, sql, id, userID, tags)
	if err != nil {
		return common.HandlePostgreSQLError(err, "failed to update tags")
	}
	if tag.RowsAffected() == 0 {
		return apperrors.New(apperrors.CodeNotFound, "summary not found")
	}
	return nil
}

// SetFavorite sets the favorite flag of one summary
func (r *summaryRepository) SetFavorite(ctx context.Context, id, userID uuid.UUID, favorite bool) error {
	sql := `UPDATE summaries SET is_favorite = $3 WHERE id = $1 AND user_id = $2`
	tag, err := r.pool.Exec(ctx, sql, id, userID, favorite)
	if err != nil {
		return common.HandlePostgreSQLError(err, "failed to set favorite flag")
	}
	if tag.RowsAffected() == 0 {
		return apperrors.New(apperrors.CodeNotFound, "summary not found")
	}
	return nil
}

// Delete removes one summary owned by userID
func (r *summaryRepository) Delete(ctx context.Context, id, userID uuid.UUID) error {
	sql := `DELETE FROM summaries WHERE id = $1 AND user_id = $2`
	tag, err := r.pool.Exec(ctx, sql, id, userID)
	if err != nil {
		return common.HandlePostgreSQLError(err, "failed to delete summary")
	}
	if tag.RowsAffected() == 0 {
		return apperrors.New(apperrors.CodeNotFound, "summary not found")
	}
	return nil
}

func scanSummary(row pgx.Row) (*model.Summary, error) {
	var s model.Summary
	err := row.Scan(
		&s.ID,
		&s.UserID,
		&s.YoutubeURL,
		&s.VideoID,
		&s.VideoTitle,
		&s.ChannelTitle,
		&s.Duration,
		&s.ThumbnailURL,
		&s.TranscriptText,
		&s.SummaryText,
		&s.ProcessingTimeMs,
		&s.IsFavorite,
		&s.Tags,
		&s.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &s, nil
}
