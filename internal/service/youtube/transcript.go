package youtube

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"golang.org/x/sync/singleflight"

	apperrors "github.com/vidnotes/vidnotes/internal/errors"
	"github.com/vidnotes/vidnotes/internal/model"
	"github.com/vidnotes/vidnotes/internal/sanitize"
)

// Client talks to the transcript provider. One provider call carries
// both the transcript tracks and the video metadata, so FetchTranscript
// and FetchMetadata share the same request: concurrent fetches for the
// same video collapse into a single POST.
type Client struct {
	apiURL     string
	apiKey     string
	httpClient *http.Client
	group      singleflight.Group
	logger     *slog.Logger
}

// NewClient creates a transcript provider client
func NewClient(apiURL, apiKey string, logger *slog.Logger) *Client {
	return &Client{
		apiURL: apiURL,
		apiKey: apiKey,
		httpClient: &http.Client{
			Timeout: 60 * time.Second,
		},
		logger: logger,
	}
}

// providerVideo is the provider's per-video response entry
type providerVideo struct {
	ID           string          `json:"id"`
	Title        string          `json:"title"`
	Description  string          `json:"description"`
	Duration     string          `json:"duration"`
	Thumbnail    string          `json:"thumbnail"`
	ChannelTitle string          `json:"channelTitle"`
	Tracks       []providerTrack `json:"tracks"`
}

type providerTrack struct {
	Transcript []model.TranscriptSegment `json:"transcript"`
}

// FetchTranscript retrieves the caption track for videoID, joins its
// segments with single spaces and sanitizes the result. An empty
// sanitized transcript is NO_TRANSCRIPT, not an empty-string success.
func (c *Client) FetchTranscript(ctx context.Context, videoID string) (string, error) {
	videos, err := c.fetch(ctx, videoID)
	if err != nil {
		return "", err
	}

	video := videos[0]
	if len(video.Tracks) == 0 || len(video.Tracks[0].Transcript) == 0 {
		return "", apperrors.New(apperrors.CodeNoTranscript, "")
	}

	var buf bytes.Buffer
	for i, segment := range video.Tracks[0].Transcript {
		if i > 0 {
			buf.WriteByte(' ')
		}
		buf.WriteString(segment.Text)
	}

	text := sanitize.Text(buf.String())
	if text == "" {
		return "", apperrors.New(apperrors.CodeNoTranscript, "")
	}

	c.logger.Info("transcript fetched", "video_id", videoID, "length", len(text))
	return text, nil
}

// FetchMetadata retrieves the video metadata from the same provider
// call, applying placeholder defaults for absent optional fields.
func (c *Client) FetchMetadata(ctx context.Context, videoID string) (*model.VideoMetadata, error) {
	videos, err := c.fetch(ctx, videoID)
	if err != nil {
		return nil, err
	}

	video := videos[0]
	if video.ID == "" {
		return nil, apperrors.New(apperrors.CodeVideoNotFound, "")
	}

	md := &model.VideoMetadata{
		VideoID:      video.ID,
		Title:        video.Title,
		Description:  video.Description,
		Duration:     video.Duration,
		ThumbnailURL: video.Thumbnail,
		ChannelTitle: video.ChannelTitle,
	}
	applyMetadataDefaults(md, videoID)

	return md, nil
}

func applyMetadataDefaults(md *model.VideoMetadata, videoID string) {
	if md.Title == "" {
		md.Title = "Видео " + videoID
	}
	if md.Duration == "" {
		md.Duration = "PT0S"
	}
	if md.ThumbnailURL == "" {
		md.ThumbnailURL = fmt.Sprintf("https://img.youtube.com/vi/%s/maxresdefault.jpg", videoID)
	}
	if md.ChannelTitle == "" {
		md.ChannelTitle = "Неизвестный канал"
	}
}

// fetch collapses concurrent calls for the same video into one
// provider request and hands every caller the shared result.
func (c *Client) fetch(ctx context.Context, videoID string) ([]providerVideo, error) {
	v, err, _ := c.group.Do(videoID, func() (any, error) {
		return c.fetchOne(ctx, videoID)
	})
	if err != nil {
		return nil, err
	}
	return v.([]providerVideo), nil
}

// fetchOne performs the single provider call and validates the response
// down to a non-empty video list. No retries: each pipeline run makes
// at most one attempt.
func (c *Client) fetchOne(ctx context.Context, videoID string) ([]providerVideo, error) {
	if c.apiKey == "" {
		return nil, apperrors.New(apperrors.CodeConfigMissing, "API ключ для получения транскрипта не настроен")
	}

	body, err := json.Marshal(map[string][]string{"ids": {videoID}})
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.CodeInternal, "")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.apiURL, bytes.NewReader(body))
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.CodeInternal, "")
	}
	req.Header.Set("Authorization", "Basic "+c.apiKey)
	req.Header.Set("Content-Type", "application/json; charset=utf-8")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.CodeTranscriptAPIError, "")
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, apperrors.New(apperrors.CodeVideoNotFound, "")
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return nil, apperrors.New(apperrors.CodeTranscriptForbidden, "")
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		c.logger.Error("transcript provider error", "status", resp.StatusCode, "video_id", videoID)
		return nil, apperrors.New(apperrors.CodeTranscriptAPIError, "")
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.CodeTranscriptAPIError, "")
	}

	var videos []providerVideo
	if err := json.Unmarshal(raw, &videos); err != nil {
		c.logger.Error("transcript provider returned invalid JSON", "video_id", videoID)
		return nil, apperrors.Wrap(err, apperrors.CodeTranscriptAPIError, "")
	}
	if len(videos) == 0 {
		return nil, apperrors.New(apperrors.CodeTranscriptAPIError, "")
	}

	return videos, nil
}
