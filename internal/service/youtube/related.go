package youtube

import (
	"context"
	"log/slog"

	youtubeapi "google.golang.org/api/youtube/v3"

	"github.com/vidnotes/vidnotes/internal/model"
)

// Related-result count bounds
const (
	minRelated = 1
	maxRelated = 5
)

// RelatedFetcher finds videos related to a given video via a text
// search seeded with the video's title. It is a best-effort
// enrichment: any failure degrades to an empty list and never fails
// the calling pipeline.
type RelatedFetcher struct {
	service *youtubeapi.Service
	logger  *slog.Logger
}

// NewRelatedFetcher wraps an initialized YouTube API service
func NewRelatedFetcher(service *youtubeapi.Service, logger *slog.Logger) *RelatedFetcher {
	return &RelatedFetcher{
		service: service,
		logger:  logger,
	}
}

// FetchRelated returns up to max videos similar to videoID, excluding
// the video itself. The lookup is a search on query, normally the
// source video's title; with an empty query there is nothing to
// search by and the result is empty.
func (f *RelatedFetcher) FetchRelated(ctx context.Context, videoID string, max int, query string) []model.RelatedVideo {
	if f.service == nil || query == "" {
		return nil
	}
	if max < minRelated {
		max = minRelated
	}
	if max > maxRelated {
		max = maxRelated
	}

	call := f.service.Search.
		List([]string{"snippet"}).
		Type("video").
		Q(query).
		MaxResults(int64(max + 1)). // one extra in case the source video comes back
		Context(ctx)

	resp, err := call.Do()
	if err != nil {
		f.logger.Warn("related video search failed", "video_id", videoID, "err", err)
		return nil
	}

	related := make([]model.RelatedVideo, 0, max)
	for _, item := range resp.Items {
		if item.Id == nil || item.Id.VideoId == "" || item.Id.VideoId == videoID {
			continue
		}
		title := ""
		if item.Snippet != nil {
			title = item.Snippet.Title
		}
		related = append(related, model.RelatedVideo{
			VideoID: item.Id.VideoId,
			Title:   title,
		})
		if len(related) == max {
			break
		}
	}

	return related
}
