package youtube

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"google.golang.org/api/googleapi"
	youtubeapi "google.golang.org/api/youtube/v3"

	apperrors "github.com/vidnotes/vidnotes/internal/errors"
	"github.com/vidnotes/vidnotes/internal/model"
)

// DataAPI fetches video metadata through the YouTube Data API. It is
// the alternative to the transcript-provider metadata path, used when
// a dedicated API key is configured.
type DataAPI struct {
	service *youtubeapi.Service
	logger  *slog.Logger
}

// NewDataAPI wraps an initialized YouTube API service
func NewDataAPI(service *youtubeapi.Service, logger *slog.Logger) *DataAPI {
	return &DataAPI{
		service: service,
		logger:  logger,
	}
}

// FetchMetadata looks up snippet and duration for videoID, with the
// same defaults and error taxonomy as the transcript-provider path.
func (d *DataAPI) FetchMetadata(ctx context.Context, videoID string) (*model.VideoMetadata, error) {
	if d.service == nil {
		return nil, apperrors.New(apperrors.CodeConfigMissing, "API ключ YouTube не настроен")
	}

	resp, err := d.service.Videos.
		List([]string{"snippet", "contentDetails"}).
		Id(videoID).
		Context(ctx).
		Do()
	if err != nil {
		return nil, mapGoogleAPIError(err)
	}
	if len(resp.Items) == 0 {
		return nil, apperrors.New(apperrors.CodeVideoNotFound, "")
	}

	item := resp.Items[0]
	md := &model.VideoMetadata{
		VideoID: videoID,
	}
	if item.Snippet != nil {
		md.Title = item.Snippet.Title
		md.Description = item.Snippet.Description
		md.ChannelTitle = item.Snippet.ChannelTitle
		md.ThumbnailURL = bestThumbnail(item.Snippet.Thumbnails)
	}
	if item.ContentDetails != nil {
		md.Duration = item.ContentDetails.Duration
	}
	applyMetadataDefaults(md, videoID)

	return md, nil
}

func bestThumbnail(details *youtubeapi.ThumbnailDetails) string {
	if details == nil {
		return ""
	}
	for _, t := range []*youtubeapi.Thumbnail{details.Maxres, details.High, details.Medium, details.Default} {
		if t != nil && t.Url != "" {
			return t.Url
		}
	}
	return ""
}

func mapGoogleAPIError(err error) error {
	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) {
		switch apiErr.Code {
		case http.StatusNotFound:
			return apperrors.Wrap(err, apperrors.CodeVideoNotFound, "")
		case http.StatusUnauthorized, http.StatusForbidden:
			return apperrors.Wrap(err, apperrors.CodeTranscriptForbidden, "")
		}
	}
	return apperrors.Wrap(err, apperrors.CodeTranscriptAPIError, "")
}
