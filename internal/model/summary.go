package model

import (
	"time"

	"github.com/google/uuid"
)

// Tag constraints enforced on update
const (
	MaxTags      = 3
	MaxTagLength = 24
)

// Summary represents one stored summarization result. A summary is
// assembled fully in memory during a pipeline run and persisted in a
// single insert; afterwards only tags and the favorite flag change.
type Summary struct {
	ID               uuid.UUID `json:"id" db:"id"`
	UserID           uuid.UUID `json:"user_id" db:"user_id"`
	YoutubeURL       string    `json:"youtube_url" db:"youtube_url"`
	VideoID          string    `json:"video_id" db:"video_id"`
	VideoTitle       string    `json:"video_title" db:"video_title"`
	ChannelTitle     string    `json:"channel_title" db:"channel_title"`
	Duration         string    `json:"duration" db:"duration"` // ISO-8601, e.g. PT13M37S
	ThumbnailURL     string    `json:"thumbnail_url" db:"thumbnail_url"`
	TranscriptText   string    `json:"transcript_text" db:"transcript_text"`
	SummaryText      string    `json:"summary_text" db:"summary_text"`
	ProcessingTimeMs int64     `json:"processing_time" db:"processing_time_ms"`
	IsFavorite       bool      `json:"is_favorite" db:"is_favorite"`
	Tags             []string  `json:"tags" db:"tags"`
	CreatedAt        time.Time `json:"created_at" db:"created_at"`
}

// UsageStatistic is one append-only telemetry entry
type UsageStatistic struct {
	ID        int64          `json:"id" db:"id"`
	UserID    uuid.UUID      `json:"user_id" db:"user_id"`
	Action    string         `json:"action" db:"action"`
	Metadata  map[string]any `json:"metadata" db:"metadata"`
	CreatedAt time.Time      `json:"created_at" db:"created_at"`
}

// Usage statistic action names
const (
	ActionSummaryCreated = "summary_created"
	ActionSummaryDeleted = "summary_deleted"
	ActionExport         = "export"
)
