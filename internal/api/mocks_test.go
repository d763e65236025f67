package api

import (
	"context"

	"github.com/google/uuid"

	"github.com/vidnotes/vidnotes/internal/model"
	summaryrepo "github.com/vidnotes/vidnotes/internal/repository/summary"
)

// mockSummaryService mocks summarysvc.Service
type mockSummaryService struct {
	CreateSummaryFunc func(ctx context.Context, userID uuid.UUID, youtubeURL string) (*model.Summary, error)
	GetSummaryFunc    func(ctx context.Context, id, userID uuid.UUID) (*model.Summary, error)
	ListSummariesFunc func(ctx context.Context, userID uuid.UUID, filter summaryrepo.ListFilter) ([]*model.Summary, error)
	SummaryExistsFunc func(ctx context.Context, userID uuid.UUID, videoID string) (bool, error)
	DeleteSummaryFunc func(ctx context.Context, id, userID uuid.UUID) error
	UpdateTagsFunc    func(ctx context.Context, id, userID uuid.UUID, tags []string) ([]string, error)
	SetFavoriteFunc   func(ctx context.Context, id, userID uuid.UUID, favorite bool) error
	RelatedVideosFunc func(ctx context.Context, videoID string, max int, query string) ([]model.RelatedVideo, error)
	RecordExportFunc  func(ctx context.Context, userID, summaryID uuid.UUID, format string)
}

func (m *mockSummaryService) CreateSummary(ctx context.Context, userID uuid.UUID, youtubeURL string) (*model.Summary, error) {
	if m.CreateSummaryFunc != nil {
		return m.CreateSummaryFunc(ctx, userID, youtubeURL)
	}
	return nil, nil
}

func (m *mockSummaryService) GetSummary(ctx context.Context, id, userID uuid.UUID) (*model.Summary, error) {
	if m.GetSummaryFunc != nil {
		return m.GetSummaryFunc(ctx, id, userID)
	}
	return nil, nil
}

func (m *mockSummaryService) ListSummaries(ctx context.Context, userID uuid.UUID, filter summaryrepo.ListFilter) ([]*model.Summary, error) {
	if m.ListSummariesFunc != nil {
		return m.ListSummariesFunc(ctx, userID, filter)
	}
	return []*model.Summary{}, nil
}

func (m *mockSummaryService) SummaryExists(ctx context.Context, userID uuid.UUID, videoID string) (bool, error) {
	if m.SummaryExistsFunc != nil {
		return m.SummaryExistsFunc(ctx, userID, videoID)
	}
	return false, nil
}

func (m *mockSummaryService) DeleteSummary(ctx context.Context, id, userID uuid.UUID) error {
	if m.DeleteSummaryFunc != nil {
		return m.DeleteSummaryFunc(ctx, id, userID)
	}
	return nil
}

func (m *mockSummaryService) UpdateTags(ctx context.Context, id, userID uuid.UUID, tags []string) ([]string, error) {
	if m.UpdateTagsFunc != nil {
		return m.UpdateTagsFunc(ctx, id, userID, tags)
	}
	return tags, nil
}

func (m *mockSummaryService) SetFavorite(ctx context.Context, id, userID uuid.UUID, favorite bool) error {
	if m.SetFavoriteFunc != nil {
		return m.SetFavoriteFunc(ctx, id, userID, favorite)
	}
	return nil
}

func (m *mockSummaryService) RelatedVideos(ctx context.Context, videoID string, max int, query string) ([]model.RelatedVideo, error) {
	if m.RelatedVideosFunc != nil {
		return m.RelatedVideosFunc(ctx, videoID, max, query)
	}
	return []model.RelatedVideo{}, nil
}

func (m *mockSummaryService) RecordExport(ctx context.Context, userID, summaryID uuid.UUID, format string) {
	if m.RecordExportFunc != nil {
		m.RecordExportFunc(ctx, userID, summaryID, format)
	}
}

// mockPDFRenderer mocks PDFRenderer
type mockPDFRenderer struct {
	RenderFunc func(s *model.Summary) ([]byte, error)
}

func (m *mockPDFRenderer) Render(s *model.Summary) ([]byte, error) {
	if m.RenderFunc != nil {
		return m.RenderFunc(s)
	}
	return []byte("%PDF-mock"), nil
}

// mockBrowserPDFRenderer mocks BrowserPDFRenderer
type mockBrowserPDFRenderer struct {
	RenderFunc func(ctx context.Context, s *model.Summary) ([]byte, error)
}

func (m *mockBrowserPDFRenderer) Render(ctx context.Context, s *model.Summary) ([]byte, error) {
	if m.RenderFunc != nil {
		return m.RenderFunc(ctx, s)
	}
	return []byte("%PDF-browser-mock"), nil
}
