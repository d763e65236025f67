package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/vidnotes/vidnotes/internal/errors"
	"github.com/vidnotes/vidnotes/internal/model"
	summaryrepo "github.com/vidnotes/vidnotes/internal/repository/summary"
)

var (
	testUserID    = uuid.MustParse("22222222-2222-2222-2222-222222222222")
	testSummaryID = uuid.MustParse("11111111-1111-1111-1111-111111111111")
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestRouter(svc *mockSummaryService) *gin.Engine {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	h := NewHandler(svc, &mockPDFRenderer{}, &mockBrowserPDFRenderer{}, logger)
	r := gin.New()
	h.RegisterRoutes(r)
	return r
}

func doRequest(r *gin.Engine, method, path string, body any, authenticated bool) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != nil {
		payload, _ := json.Marshal(body)
		reader = bytes.NewReader(payload)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if authenticated {
		req.Header.Set(UserIDHeader, testUserID.String())
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func apiTestSummary() *model.Summary {
	return &model.Summary{
		ID:           testSummaryID,
		UserID:       testUserID,
		YoutubeURL:   "https://youtu.be/dQw4w9WgXcQ",
		VideoID:      "dQw4w9WgXcQ",
		VideoTitle:   "Test Video",
		ChannelTitle: "Test Channel",
		Duration:     "PT3M32S",
		SummaryText:  "## Итоги",
		Tags:         []string{},
		CreatedAt:    time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
	}
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func TestHealthCheck(t *testing.T) {
	r := newTestRouter(&mockSummaryService{})

	w := doRequest(r, http.MethodGet, "/health", nil, false)

	assert.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, true, body["success"])
}

func TestAuthRequired(t *testing.T) {
	r := newTestRouter(&mockSummaryService{})

	w := doRequest(r, http.MethodGet, "/api/v1/summaries", nil, false)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestCreateSummary(t *testing.T) {
	svc := &mockSummaryService{
		CreateSummaryFunc: func(ctx context.Context, userID uuid.UUID, youtubeURL string) (*model.Summary, error) {
			assert.Equal(t, testUserID, userID)
			assert.Equal(t, "https://youtu.be/dQw4w9WgXcQ", youtubeURL)
			return apiTestSummary(), nil
		},
	}
	r := newTestRouter(svc)

	w := doRequest(r, http.MethodPost, "/api/v1/summaries", gin.H{"url": "https://youtu.be/dQw4w9WgXcQ"}, true)

	assert.Equal(t, http.StatusCreated, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, true, body["success"])
	data := body["data"].(map[string]any)
	assert.Equal(t, "dQw4w9WgXcQ", data["video_id"])
}

func TestCreateSummary_MissingURL(t *testing.T) {
	r := newTestRouter(&mockSummaryService{})

	w := doRequest(r, http.MethodPost, "/api/v1/summaries", gin.H{}, true)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateSummary_ErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		code       string
		wantStatus int
	}{
		{name: "no transcript", code: apperrors.CodeNoTranscript, wantStatus: http.StatusUnprocessableEntity},
		{name: "video not found", code: apperrors.CodeVideoNotFound, wantStatus: http.StatusNotFound},
		{name: "transcript forbidden", code: apperrors.CodeTranscriptForbidden, wantStatus: http.StatusForbidden},
		{name: "summary timeout", code: apperrors.CodeSummaryTimeout, wantStatus: http.StatusGatewayTimeout},
		{name: "config missing", code: apperrors.CodeConfigMissing, wantStatus: http.StatusInternalServerError},
		{name: "duplicate video", code: apperrors.CodeConflict, wantStatus: http.StatusConflict},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &mockSummaryService{
				CreateSummaryFunc: func(ctx context.Context, userID uuid.UUID, youtubeURL string) (*model.Summary, error) {
					return nil, apperrors.New(tt.code, "")
				},
			}
			r := newTestRouter(svc)

			w := doRequest(r, http.MethodPost, "/api/v1/summaries", gin.H{"url": "https://youtu.be/dQw4w9WgXcQ"}, true)

			assert.Equal(t, tt.wantStatus, w.Code)
			body := decodeBody(t, w)
			assert.Equal(t, false, body["success"])
			assert.Equal(t, tt.code, body["code"])
			assert.NotEmpty(t, body["error"])
		})
	}
}

func TestListSummaries_Filters(t *testing.T) {
	var gotFilter summaryrepo.ListFilter
	svc := &mockSummaryService{
		ListSummariesFunc: func(ctx context.Context, userID uuid.UUID, filter summaryrepo.ListFilter) ([]*model.Summary, error) {
			gotFilter = filter
			return []*model.Summary{apiTestSummary()}, nil
		},
	}
	r := newTestRouter(svc)

	w := doRequest(r, http.MethodGet, "/api/v1/summaries?q=go&tag=dev&favorite=true&limit=5&offset=10", nil, true)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, summaryrepo.ListFilter{Query: "go", Tag: "dev", FavoriteOnly: true, Limit: 5, Offset: 10}, gotFilter)
}

func TestListSummaries_InvalidLimit(t *testing.T) {
	r := newTestRouter(&mockSummaryService{})

	w := doRequest(r, http.MethodGet, "/api/v1/summaries?limit=999", nil, true)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSummaryExists(t *testing.T) {
	svc := &mockSummaryService{
		SummaryExistsFunc: func(ctx context.Context, userID uuid.UUID, videoID string) (bool, error) {
			return videoID == "dQw4w9WgXcQ", nil
		},
	}
	r := newTestRouter(svc)

	tests := []struct {
		name string
		path string
	}{
		{name: "by video id", path: "/api/v1/summaries/exists?videoId=dQw4w9WgXcQ"},
		{name: "by url", path: "/api/v1/summaries/exists?url=https://youtu.be/dQw4w9WgXcQ"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doRequest(r, http.MethodGet, tt.path, nil, true)

			assert.Equal(t, http.StatusOK, w.Code)
			data := decodeBody(t, w)["data"].(map[string]any)
			assert.Equal(t, true, data["exists"])
			assert.Equal(t, "dQw4w9WgXcQ", data["videoId"])
		})
	}
}

func TestGetSummary_NotFound(t *testing.T) {
	svc := &mockSummaryService{
		GetSummaryFunc: func(ctx context.Context, id, userID uuid.UUID) (*model.Summary, error) {
			return nil, apperrors.New(apperrors.CodeNotFound, "summary not found")
		},
	}
	r := newTestRouter(svc)

	w := doRequest(r, http.MethodGet, "/api/v1/summaries/"+testSummaryID.String(), nil, true)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetSummary_InvalidID(t *testing.T) {
	r := newTestRouter(&mockSummaryService{})

	w := doRequest(r, http.MethodGet, "/api/v1/summaries/not-a-uuid", nil, true)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpdateTags(t *testing.T) {
	svc := &mockSummaryService{
		UpdateTagsFunc: func(ctx context.Context, id, userID uuid.UUID, tags []string) ([]string, error) {
			assert.Equal(t, testSummaryID, id)
			return []string{"go", "ai"}, nil
		},
	}
	r := newTestRouter(svc)

	w := doRequest(r, http.MethodPatch, "/api/v1/summaries/"+testSummaryID.String()+"/tags",
		gin.H{"tags": []string{"go", "ai"}}, true)

	assert.Equal(t, http.StatusOK, w.Code)
	data := decodeBody(t, w)["data"].(map[string]any)
	assert.Equal(t, []any{"go", "ai"}, data["tags"])
}

func TestSetFavorite(t *testing.T) {
	var gotFavorite bool
	svc := &mockSummaryService{
		SetFavoriteFunc: func(ctx context.Context, id, userID uuid.UUID, favorite bool) error {
			gotFavorite = favorite
			return nil
		},
	}
	r := newTestRouter(svc)

	w := doRequest(r, http.MethodPatch, "/api/v1/summaries/"+testSummaryID.String()+"/favorite",
		gin.H{"isFavorite": true}, true)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, gotFavorite)
}

func TestSetFavorite_MissingBody(t *testing.T) {
	r := newTestRouter(&mockSummaryService{})

	w := doRequest(r, http.MethodPatch, "/api/v1/summaries/"+testSummaryID.String()+"/favorite", gin.H{}, true)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDeleteSummary(t *testing.T) {
	deleted := false
	svc := &mockSummaryService{
		DeleteSummaryFunc: func(ctx context.Context, id, userID uuid.UUID) error {
			deleted = true
			return nil
		},
	}
	r := newTestRouter(svc)

	w := doRequest(r, http.MethodDelete, "/api/v1/summaries/"+testSummaryID.String(), nil, true)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, deleted)
}
