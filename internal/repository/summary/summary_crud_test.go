package summary

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/vidnotes/vidnotes/internal/errors"
	"github.com/vidnotes/vidnotes/internal/model"
)

var (
	testID     = uuid.MustParse("11111111-1111-1111-1111-111111111111")
	testUserID = uuid.MustParse("22222222-2222-2222-2222-222222222222")
)

func testSummary() *model.Summary {
	return &model.Summary{
		ID:               testID,
		UserID:           testUserID,
		YoutubeURL:       "https://youtu.be/dQw4w9WgXcQ",
		VideoID:          "dQw4w9WgXcQ",
		VideoTitle:       "Test",
		ChannelTitle:     "Test Channel",
		Duration:         "PT3M32S",
		ThumbnailURL:     "https://img.youtube.com/vi/dQw4w9WgXcQ/maxresdefault.jpg",
		TranscriptText:   "Hello world",
		SummaryText:      "## Итоги\nКраткое изложение.",
		ProcessingTimeMs: 4200,
		IsFavorite:       false,
		Tags:             []string{"music"},
		CreatedAt:        time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
	}
}

func TestSummaryRepository_Create(t *testing.T) {
	tests := []struct {
		name    string
		setup   func(mock pgxmock.PgxPoolIface, s *model.Summary)
		wantErr bool
	}{
		{
			name: "successful creation",
			setup: func(mock pgxmock.PgxPoolIface, s *model.Summary) {
				mock.ExpectExec("INSERT INTO summaries").
					WithArgs(s.ID, s.UserID, s.YoutubeURL, s.VideoID, s.VideoTitle, s.ChannelTitle, s.Duration,
						s.ThumbnailURL, s.TranscriptText, s.SummaryText, s.ProcessingTimeMs, s.IsFavorite, s.Tags, s.CreatedAt).
					WillReturnResult(pgxmock.NewResult("INSERT", 1))
			},
		},
		{
			name: "database error",
			setup: func(mock pgxmock.PgxPoolIface, s *model.Summary) {
				mock.ExpectExec("INSERT INTO summaries").
					WithArgs(s.ID, s.UserID, s.YoutubeURL, s.VideoID, s.VideoTitle, s.ChannelTitle, s.Duration,
						s.ThumbnailURL, s.TranscriptText, s.SummaryText, s.ProcessingTimeMs, s.IsFavorite, s.Tags, s.CreatedAt).
					WillReturnError(assert.AnError)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock, err := pgxmock.NewPool()
			require.NoError(t, err)
			defer mock.Close()

			s := testSummary()
			tt.setup(mock, s)

			repo := NewRepository(mock)

			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()

			err = repo.Create(ctx, s)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestSummaryRepository_GetByID(t *testing.T) {
	columns := []string{"id", "user_id", "youtube_url", "video_id", "video_title", "channel_title", "duration",
		"thumbnail_url", "transcript_text", "summary_text", "processing_time_ms", "is_favorite", "tags", "created_at"}

	tests := []struct {
		name    string
		setup   func(mock pgxmock.PgxPoolIface)
		want    *model.Summary
		wantErr string
	}{
		{
			name: "summary found",
			setup: func(mock pgxmock.PgxPoolIface) {
				s := testSummary()
				rows := pgxmock.NewRows(columns).
					AddRow(s.ID, s.UserID, s.YoutubeURL, s.VideoID, s.VideoTitle, s.ChannelTitle, s.Duration,
						s.ThumbnailURL, s.TranscriptText, s.SummaryText, s.ProcessingTimeMs, s.IsFavorite, s.Tags, s.CreatedAt)
				mock.ExpectQuery("SELECT (.+) FROM summaries WHERE id = \\$1 AND user_id = \\$2").
					WithArgs(testID, testUserID).
					WillReturnRows(rows)
			},
			want: testSummary(),
		},
		{
			name: "summary not found",
			setup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectQuery("SELECT (.+) FROM summaries WHERE id = \\$1 AND user_id = \\$2").
					WithArgs(testID, testUserID).
					WillReturnRows(pgxmock.NewRows(columns))
			},
			wantErr: apperrors.CodeNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock, err := pgxmock.NewPool()
			require.NoError(t, err)
			defer mock.Close()

			tt.setup(mock)

			repo := NewRepository(mock)

			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()

			got, err := repo.GetByID(ctx, testID, testUserID)

			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Equal(t, tt.wantErr, apperrors.Code(err))
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.want, got)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestSummaryRepository_UpdateTags(t *testing.T) {
	tests := []struct {
		name    string
		setup   func(mock pgxmock.PgxPoolIface)
		wantErr string
	}{
		{
			name: "successful update",
			setup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectExec("UPDATE summaries SET tags = \\$3 WHERE id = \\$1 AND user_id = \\$2").
					WithArgs(testID, testUserID, []string{"go", "ai"}).
					WillReturnResult(pgxmock.NewResult("UPDATE", 1))
			},
		},
		{
			name: "no row for this user",
			setup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectExec("UPDATE summaries SET tags = \\$3 WHERE id = \\$1 AND user_id = \\$2").
					WithArgs(testID, testUserID, []string{"go", "ai"}).
					WillReturnResult(pgxmock.NewResult("UPDATE", 0))
			},
			wantErr: apperrors.CodeNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock, err := pgxmock.NewPool()
			require.NoError(t, err)
			defer mock.Close()

			tt.setup(mock)

			repo := NewRepository(mock)
			err = repo.UpdateTags(context.Background(), testID, testUserID, []string{"go", "ai"})

			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Equal(t, tt.wantErr, apperrors.Code(err))
			} else {
				assert.NoError(t, err)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestSummaryRepository_SetFavorite(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectExec("UPDATE summaries SET is_favorite = \\$3 WHERE id = \\$1 AND user_id = \\$2").
		WithArgs(testID, testUserID, true).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	repo := NewRepository(mock)
	require.NoError(t, repo.SetFavorite(context.Background(), testID, testUserID, true))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSummaryRepository_Delete(t *testing.T) {
	tests := []struct {
		name    string
		rows    int64
		wantErr string
	}{
		{name: "successful deletion", rows: 1},
		{name: "not found", rows: 0, wantErr: apperrors.CodeNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock, err := pgxmock.NewPool()
			require.NoError(t, err)
			defer mock.Close()

			mock.ExpectExec("DELETE FROM summaries WHERE id = \\$1 AND user_id = \\$2").
				WithArgs(testID, testUserID).
				WillReturnResult(pgxmock.NewResult("DELETE", tt.rows))

			repo := NewRepository(mock)
			err = repo.Delete(context.Background(), testID, testUserID)

			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Equal(t, tt.wantErr, apperrors.Code(err))
			} else {
				assert.NoError(t, err)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
