// Package summary orchestrates the transcript-to-summary pipeline and
// the CRUD operations around stored summaries.
package summary

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	apperrors "github.com/vidnotes/vidnotes/internal/errors"
	"github.com/vidnotes/vidnotes/internal/model"
	summaryrepo "github.com/vidnotes/vidnotes/internal/repository/summary"
	"github.com/vidnotes/vidnotes/internal/service/summarizer"
	"github.com/vidnotes/vidnotes/internal/service/youtube"
)

const relatedVideoLimit = 3

// TranscriptFetcher retrieves the plain-text transcript of a video
type TranscriptFetcher interface {
	FetchTranscript(ctx context.Context, videoID string) (string, error)
}

// MetadataFetcher retrieves video metadata
type MetadataFetcher interface {
	FetchMetadata(ctx context.Context, videoID string) (*model.VideoMetadata, error)
}

// Summarizer turns a transcript into a titled summary
type Summarizer interface {
	Summarize(ctx context.Context, transcript, videoTitle string) (*summarizer.Result, error)
}

// RelatedProvider looks up videos related to a given one by searching
// on query, normally the source video's title. Implementations must
// not fail: enrichment is best-effort.
type RelatedProvider interface {
	FetchRelated(ctx context.Context, videoID string, max int, query string) []model.RelatedVideo
}

// UsageRecorder records usage events
type UsageRecorder interface {
	Record(ctx context.Context, stat *model.UsageStatistic) error
}

// Service defines the summary application service
type Service interface {
	CreateSummary(ctx context.Context, userID uuid.UUID, youtubeURL string) (*model.Summary, error)
	GetSummary(ctx context.Context, id, userID uuid.UUID) (*model.Summary, error)
	ListSummaries(ctx context.Context, userID uuid.UUID, filter summaryrepo.ListFilter) ([]*model.Summary, error)
	SummaryExists(ctx context.Context, userID uuid.UUID, videoID string) (bool, error)
	DeleteSummary(ctx context.Context, id, userID uuid.UUID) error
	UpdateTags(ctx context.Context, id, userID uuid.UUID, tags []string) ([]string, error)
	SetFavorite(ctx context.Context, id, userID uuid.UUID, favorite bool) error
	RelatedVideos(ctx context.Context, videoID string, max int, query string) ([]model.RelatedVideo, error)
	RecordExport(ctx context.Context, userID, summaryID uuid.UUID, format string)
}

type summaryService struct {
	repo       summaryrepo.Repository
	usage      UsageRecorder
	transcript TranscriptFetcher
	metadata   MetadataFetcher
	summarizer Summarizer
	related    RelatedProvider
	logger     *slog.Logger
}

// NewService creates a new summary service. related may be nil, in which
// case summaries are created without the related-videos section.
func NewService(
	repo summaryrepo.Repository,
	usage UsageRecorder,
	transcript TranscriptFetcher,
	metadata MetadataFetcher,
	sum Summarizer,
	related RelatedProvider,
	logger *slog.Logger,
) Service {
	return &summaryService{
		repo:       repo,
		usage:      usage,
		transcript: transcript,
		metadata:   metadata,
		summarizer: sum,
		related:    related,
		logger:     logger,
	}
}

// CreateSummary runs the full pipeline: extract the video ID, fetch
// transcript and metadata concurrently, summarize, enrich with related
// videos and persist the result.
func (s *summaryService) CreateSummary(ctx context.Context, userID uuid.UUID, youtubeURL string) (*model.Summary, error) {
	start := time.Now()

	videoID, err := youtube.ExtractVideoID(youtubeURL)
	if err != nil {
		return nil, err
	}

	var (
		transcript string
		meta       *model.VideoMetadata
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		transcript, err = s.transcript.FetchTranscript(gctx, videoID)
		return err
	})
	g.Go(func() error {
		var err error
		meta, err = s.metadata.FetchMetadata(gctx, videoID)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	result, err := s.summarizer.Summarize(ctx, transcript, meta.Title)
	if err != nil {
		return nil, err
	}

	title := result.Title
	if title == "" || title == summarizer.PlaceholderTitle {
		title = meta.Title
	}

	summaryText := result.Summary
	if section := s.relatedSection(ctx, videoID, meta.Title); section != "" {
		summaryText += section
	}

	summary := &model.Summary{
		ID:               uuid.New(),
		UserID:           userID,
		YoutubeURL:       youtubeURL,
		VideoID:          videoID,
		VideoTitle:       title,
		ChannelTitle:     meta.ChannelTitle,
		Duration:         meta.Duration,
		ThumbnailURL:     meta.ThumbnailURL,
		TranscriptText:   transcript,
		SummaryText:      summaryText,
		ProcessingTimeMs: time.Since(start).Milliseconds(),
		Tags:             []string{},
		CreatedAt:        time.Now().UTC(),
	}

	if err := s.repo.Create(ctx, summary); err != nil {
		return nil, err
	}

	s.recordUsage(ctx, userID, model.ActionSummaryCreated, map[string]any{
		"video_id":           videoID,
		"processing_time_ms": summary.ProcessingTimeMs,
	})

	return summary, nil
}

// relatedSection builds the related-videos Markdown section, or returns
// an empty string when enrichment is disabled or yields nothing.
func (s *summaryService) relatedSection(ctx context.Context, videoID, videoTitle string) string {
	if s.related == nil {
		return ""
	}

	videos := s.related.FetchRelated(ctx, videoID, relatedVideoLimit, videoTitle)
	if len(videos) == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n\n## Похожие видео\n")
	for _, v := range videos {
		fmt.Fprintf(&b, "- [%s](https://www.youtube.com/watch?v=%s)\n", v.Title, v.VideoID)
	}
	return strings.TrimRight(b.String(), "\n")
}

func (s *summaryService) GetSummary(ctx context.Context, id, userID uuid.UUID) (*model.Summary, error) {
	return s.repo.GetByID(ctx, id, userID)
}

func (s *summaryService) ListSummaries(ctx context.Context, userID uuid.UUID, filter summaryrepo.ListFilter) ([]*model.Summary, error) {
	return s.repo.List(ctx, userID, filter)
}

func (s *summaryService) SummaryExists(ctx context.Context, userID uuid.UUID, videoID string) (bool, error) {
	if videoID == "" {
		return false, apperrors.New(apperrors.CodeInvalidArg, "video id is required")
	}
	return s.repo.ExistsByVideoID(ctx, userID, videoID)
}

func (s *summaryService) DeleteSummary(ctx context.Context, id, userID uuid.UUID) error {
	if err := s.repo.Delete(ctx, id, userID); err != nil {
		return err
	}

	s.recordUsage(ctx, userID, model.ActionSummaryDeleted, map[string]any{
		"summary_id": id.String(),
	})
	return nil
}

// UpdateTags validates and normalizes the tag list before storing it,
// and returns the normalized list.
func (s *summaryService) UpdateTags(ctx context.Context, id, userID uuid.UUID, tags []string) ([]string, error) {
	normalized, err := NormalizeTags(tags)
	if err != nil {
		return nil, err
	}

	if err := s.repo.UpdateTags(ctx, id, userID, normalized); err != nil {
		return nil, err
	}
	return normalized, nil
}

func (s *summaryService) SetFavorite(ctx context.Context, id, userID uuid.UUID, favorite bool) error {
	return s.repo.SetFavorite(ctx, id, userID, favorite)
}

// RelatedVideos returns videos related to the given one, found by
// searching on query.
func (s *summaryService) RelatedVideos(ctx context.Context, videoID string, max int, query string) ([]model.RelatedVideo, error) {
	if videoID == "" {
		return nil, apperrors.New(apperrors.CodeInvalidArg, "video id is required")
	}

	if s.related == nil {
		return []model.RelatedVideo{}, nil
	}
	videos := s.related.FetchRelated(ctx, videoID, max, query)
	if videos == nil {
		videos = []model.RelatedVideo{}
	}
	return videos, nil
}

// RecordExport records an export usage event
func (s *summaryService) RecordExport(ctx context.Context, userID, summaryID uuid.UUID, format string) {
	s.recordUsage(ctx, userID, model.ActionExport, map[string]any{
		"summary_id": summaryID.String(),
		"format":     format,
	})
}

// recordUsage writes a usage event. Failures are logged and never
// surfaced: statistics must not break the main flow.
func (s *summaryService) recordUsage(ctx context.Context, userID uuid.UUID, action string, metadata map[string]any) {
	stat := &model.UsageStatistic{
		UserID:    userID,
		Action:    action,
		Metadata:  metadata,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.usage.Record(ctx, stat); err != nil {
		s.logger.Warn("failed to record usage statistic", "action", action, "error", err)
	}
}
