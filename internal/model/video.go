package model

// VideoMetadata is the per-run value object fetched alongside the
// transcript; it is folded into a Summary and never stored on its own.
type VideoMetadata struct {
	VideoID      string `json:"video_id"`
	Title        string `json:"title"`
	Description  string `json:"description"`
	Duration     string `json:"duration"` // ISO-8601
	ThumbnailURL string `json:"thumbnail_url"`
	ChannelTitle string `json:"channel_title"`
}

// TranscriptSegment is one timed caption unit from the transcript
// provider; segments are joined and discarded within a pipeline run.
type TranscriptSegment struct {
	Text string `json:"text"`
}

// RelatedVideo is one best-effort related-video candidate
type RelatedVideo struct {
	VideoID string `json:"videoId"`
	Title   string `json:"title"`
}
