package summary

import (
	"context"

	"github.com/google/uuid"

	"github.com/vidnotes/vidnotes/internal/model"
	summaryrepo "github.com/vidnotes/vidnotes/internal/repository/summary"
	"github.com/vidnotes/vidnotes/internal/service/summarizer"
)

// Mock collaborators for testing

// mockSummaryRepo mocks summaryrepo.Repository
type mockSummaryRepo struct {
	CreateFunc          func(ctx context.Context, summary *model.Summary) error
	GetByIDFunc         func(ctx context.Context, id, userID uuid.UUID) (*model.Summary, error)
	ListFunc            func(ctx context.Context, userID uuid.UUID, filter summaryrepo.ListFilter) ([]*model.Summary, error)
	ExistsByVideoIDFunc func(ctx context.Context, userID uuid.UUID, videoID string) (bool, error)
	UpdateTagsFunc      func(ctx context.Context, id, userID uuid.UUID, tags []string) error
	SetFavoriteFunc     func(ctx context.Context, id, userID uuid.UUID, favorite bool) error
	DeleteFunc          func(ctx context.Context, id, userID uuid.UUID) error
}

func (m *mockSummaryRepo) Create(ctx context.Context, summary *model.Summary) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, summary)
	}
	return nil
}

func (m *mockSummaryRepo) GetByID(ctx context.Context, id, userID uuid.UUID) (*model.Summary, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id, userID)
	}
	return nil, nil
}

func (m *mockSummaryRepo) List(ctx context.Context, userID uuid.UUID, filter summaryrepo.ListFilter) ([]*model.Summary, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, userID, filter)
	}
	return []*model.Summary{}, nil
}

func (m *mockSummaryRepo) ExistsByVideoID(ctx context.Context, userID uuid.UUID, videoID string) (bool, error) {
	if m.ExistsByVideoIDFunc != nil {
		return m.ExistsByVideoIDFunc(ctx, userID, videoID)
	}
	return false, nil
}

func (m *mockSummaryRepo) UpdateTags(ctx context.Context, id, userID uuid.UUID, tags []string) error {
	if m.UpdateTagsFunc != nil {
		return m.UpdateTagsFunc(ctx, id, userID, tags)
	}
	return nil
}

func (m *mockSummaryRepo) SetFavorite(ctx context.Context, id, userID uuid.UUID, favorite bool) error {
	if m.SetFavoriteFunc != nil {
		return m.SetFavoriteFunc(ctx, id, userID, favorite)
	}
	return nil
}

func (m *mockSummaryRepo) Delete(ctx context.Context, id, userID uuid.UUID) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id, userID)
	}
	return nil
}

// mockUsageRecorder mocks UsageRecorder
type mockUsageRecorder struct {
	RecordFunc func(ctx context.Context, stat *model.UsageStatistic) error
}

func (m *mockUsageRecorder) Record(ctx context.Context, stat *model.UsageStatistic) error {
	if m.RecordFunc != nil {
		return m.RecordFunc(ctx, stat)
	}
	return nil
}

// mockTranscriptFetcher mocks TranscriptFetcher
type mockTranscriptFetcher struct {
	FetchTranscriptFunc func(ctx context.Context, videoID string) (string, error)
}

func (m *mockTranscriptFetcher) FetchTranscript(ctx context.Context, videoID string) (string, error) {
	if m.FetchTranscriptFunc != nil {
		return m.FetchTranscriptFunc(ctx, videoID)
	}
	return "Hello world", nil
}

// mockMetadataFetcher mocks MetadataFetcher
type mockMetadataFetcher struct {
	FetchMetadataFunc func(ctx context.Context, videoID string) (*model.VideoMetadata, error)
}

func (m *mockMetadataFetcher) FetchMetadata(ctx context.Context, videoID string) (*model.VideoMetadata, error) {
	if m.FetchMetadataFunc != nil {
		return m.FetchMetadataFunc(ctx, videoID)
	}
	return &model.VideoMetadata{
		VideoID:      videoID,
		Title:        "Test Video",
		ChannelTitle: "Test Channel",
		Duration:     "PT3M32S",
		ThumbnailURL: "https://img.youtube.com/vi/" + videoID + "/maxresdefault.jpg",
	}, nil
}

// mockSummarizer mocks Summarizer
type mockSummarizer struct {
	SummarizeFunc func(ctx context.Context, transcript, videoTitle string) (*summarizer.Result, error)
}

func (m *mockSummarizer) Summarize(ctx context.Context, transcript, videoTitle string) (*summarizer.Result, error) {
	if m.SummarizeFunc != nil {
		return m.SummarizeFunc(ctx, transcript, videoTitle)
	}
	return &summarizer.Result{Title: "Test Video", Summary: "## Итоги\nКраткое изложение."}, nil
}

// mockRelatedProvider mocks RelatedProvider
type mockRelatedProvider struct {
	FetchRelatedFunc func(ctx context.Context, videoID string, max int, query string) []model.RelatedVideo
}

func (m *mockRelatedProvider) FetchRelated(ctx context.Context, videoID string, max int, query string) []model.RelatedVideo {
	if m.FetchRelatedFunc != nil {
		return m.FetchRelatedFunc(ctx, videoID, max, query)
	}
	return nil
}
